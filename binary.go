package prettybytes

import "math"

const binaryBase = 1024

// Binary converts a byte count to its binary (base-2) scaled form, with
// units from B through YiB: successive units differ by a factor of 1024
// rather than 1000. places behaves as in Decimal.
func Binary(n uint64, places int) Value {
	return scale(float64(n), binaryBase, binaryUnits, places)
}

// BinaryFloat is Binary for fractional byte counts, truncating the
// fractional part of the count before scaling.
func BinaryFloat(n float64, places int) Value {
	return scale(math.Trunc(n), binaryBase, binaryUnits, places)
}

// BinarySigned is Binary for signed byte counts: the magnitude of the
// result carries the sign of n.
func BinarySigned(n int64, places int) Value {
	u := uint64(n)
	if n < 0 {
		u = -u
	}
	v := Binary(u, places)
	if n < 0 {
		v.Num = -v.Num
	}
	return v
}
