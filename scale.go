package prettybytes

import "math"

// Rounding beyond maxRoundPlaces decimal places cannot change a float64, so
// larger values skip rounding entirely. This also keeps the 10^places scale
// factor finite.
const maxRoundPlaces = 15

// scale expresses num in the largest unit of units that keeps the magnitude
// below base, clamping to the last unit when num is too large for the set.
// A non-negative places rounds the magnitude to that many decimal places.
func scale(num, base float64, units []Unit, places int) Value {
	neg := math.Signbit(num)
	num = math.Abs(num)

	div, exp := 1.0, 0
	for num >= div*base && exp < len(units)-1 {
		div *= base
		exp++
	}
	num /= div

	if places >= 0 {
		num = roundTo(num, places)
	}
	if neg {
		num = -num
	}
	return Value{Num: num, Unit: units[exp]}
}

// roundTo rounds num to places decimal places, ties away from zero.
func roundTo(num float64, places int) float64 {
	if places > maxRoundPlaces {
		return num
	}
	pow := math.Pow(10, float64(places))
	return math.Round(num*pow) / pow
}
