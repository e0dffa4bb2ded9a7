package interp

import "strconv"

// trimNumber formats a number as the shortest round-trip decimal, with
// integer-valued floats printed without a fractional part (e.g. 3, not
// 3.0).
func trimNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
