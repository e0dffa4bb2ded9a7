package interp

import "testing"

func TestIsTruthy(t *testing.T) {
	cases := []struct {
		v    Value
		want bool
	}{
		{nil, false},
		{false, false},
		{true, true},
		{float64(0), true},
		{"", true},
	}
	for _, c := range cases {
		if got := isTruthy(c.v); got != c.want {
			t.Errorf("isTruthy(%#v) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestIsEqualNoCoercion(t *testing.T) {
	if isEqual(float64(1), "1") {
		t.Error("number and string of the same digits should not be equal")
	}
	if !isEqual(nil, nil) {
		t.Error("nil should equal nil")
	}
	if !isEqual(float64(2), float64(2)) {
		t.Error("equal numbers should compare equal")
	}
	if isEqual(float64(2), float64(3)) {
		t.Error("unequal numbers should not compare equal")
	}
}

func TestStringifyFormatsNumbersWithoutTrailingZero(t *testing.T) {
	if got := Stringify(float64(4)); got != "4" {
		t.Errorf("Stringify(4.0) = %q, want 4", got)
	}
	if got := Stringify(float64(4.25)); got != "4.25" {
		t.Errorf("Stringify(4.25) = %q, want 4.25", got)
	}
}

func TestStringifyNilAndBool(t *testing.T) {
	if got := Stringify(nil); got != "nil" {
		t.Errorf("Stringify(nil) = %q, want nil", got)
	}
	if got := Stringify(true); got != "true" {
		t.Errorf("Stringify(true) = %q, want true", got)
	}
}
