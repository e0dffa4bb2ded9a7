package interp

import "fmt"

// Value is a Lox runtime value. The representation is deliberately Go's
// native types rather than a hand-rolled wrapper per variant: nil is Lox
// nil, bool and float64 and string are Lox bool/number/string directly,
// and *Function / *Class / *Instance / *NativeFunction cover the callable
// and object variants. This keeps equality and type assertions as plain
// Go comparisons and type switches instead of boilerplate accessors.
type Value any

// Stringify renders a Value the way print and the REPL display it.
func Stringify(v Value) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case bool:
		if val {
			return "true"
		}
		return "false"
	case float64:
		return formatNumber(val)
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}

// formatNumber prints the shortest round-trip decimal, with
// integer-valued floats printed without a trailing ".0".
func formatNumber(n float64) string {
	return trimNumber(n)
}

// isTruthy applies Lox's truthiness rule: only nil and false are falsy.
func isTruthy(v Value) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	default:
		return true
	}
}

// isEqual compares two values with no coercion: different tags are
// never equal, nil == nil, and same-tag values compare structurally.
// Class/Callable equality falls back to display-name identity; an
// Instance is its own tag and compares by pointer identity only — two
// distinct instances of the same class are never equal, matching Lox's
// object-identity semantics.
func isEqual(a, b Value) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}

	switch av := a.(type) {
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case *Instance:
		bv, ok := b.(*Instance)
		return ok && av == bv
	case fmt.Stringer:
		bv, ok := b.(fmt.Stringer)
		return ok && sameDisplayIdentity(av, bv)
	default:
		return false
	}
}

// sameDisplayIdentity compares the kind and displayed name of two
// Stringer values (Function/NativeFunction/Class); two callables are
// equal only if they are the same kind with the same display name.
func sameDisplayIdentity(a, b fmt.Stringer) bool {
	switch a.(type) {
	case *Function:
		_, ok := b.(*Function)
		return ok && a.String() == b.String()
	case *NativeFunction:
		_, ok := b.(*NativeFunction)
		return ok && a.String() == b.String()
	case *Class:
		_, ok := b.(*Class)
		return ok && a.String() == b.String()
	default:
		return false
	}
}
