package prettybytes

import "math"

const decimalBase = 1000

// Decimal converts a byte count to its decimal (base-10) scaled form, with
// units from B through YB. places gives the number of decimal places to
// round the magnitude to; pass a negative places to leave it unrounded.
// Rounding never promotes the result to the next unit, so 999999 bytes at
// zero places reports "1000 KB" rather than "1 MB".
func Decimal(n uint64, places int) Value {
	return scale(float64(n), decimalBase, decimalUnits, places)
}

// DecimalFloat is Decimal for fractional byte counts. The fractional part of
// the count is truncated before scaling, so DecimalFloat(5.9, -1) reports
// 5 B and DecimalFloat(-5.9, -1) reports -5 B.
func DecimalFloat(n float64, places int) Value {
	return scale(math.Trunc(n), decimalBase, decimalUnits, places)
}

// DecimalSigned is Decimal for signed byte counts: the magnitude of the
// result carries the sign of n.
func DecimalSigned(n int64, places int) Value {
	u := uint64(n)
	if n < 0 {
		u = -u
	}
	v := Decimal(u, places)
	if n < 0 {
		v.Num = -v.Num
	}
	return v
}
