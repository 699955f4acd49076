// Package prettybytes converts raw byte counts into unit-scaled values such
// as "1 MiB" or "3.05 MB", in both the decimal (base-10) and binary (base-2)
// unit systems.
//
// Every conversion is pure and total: zero, negative, NaN and infinite
// inputs all produce a defined Value, and calls are safe from any number of
// goroutines.
package prettybytes

import (
	"fmt"
	"strconv"
)

// Unit is a byte-scale suffix such as KB or MiB.
type Unit string

// Decimal units, each 1000 times the previous.
const (
	B  Unit = "B"
	KB Unit = "KB"
	MB Unit = "MB"
	GB Unit = "GB"
	TB Unit = "TB"
	PB Unit = "PB"
	EB Unit = "EB"
	ZB Unit = "ZB"
	YB Unit = "YB"
)

// Binary units, each 1024 times the previous.
const (
	KiB Unit = "KiB"
	MiB Unit = "MiB"
	GiB Unit = "GiB"
	TiB Unit = "TiB"
	PiB Unit = "PiB"
	EiB Unit = "EiB"
	ZiB Unit = "ZiB"
	YiB Unit = "YiB"
)

// Ordered by exponent: decimalUnits[k] labels 1000^k bytes and
// binaryUnits[k] labels 1024^k bytes.
var (
	decimalUnits = []Unit{B, KB, MB, GB, TB, PB, EB, ZB, YB}
	binaryUnits  = []Unit{B, KiB, MiB, GiB, TiB, PiB, EiB, ZiB, YiB}
)

// MarshalText implements encoding.TextMarshaler.
func (u Unit) MarshalText() ([]byte, error) {
	return []byte(u), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Symbols outside the
// defined unit sets are rejected.
func (u *Unit) UnmarshalText(text []byte) error {
	s := Unit(text)
	for _, known := range decimalUnits {
		if s == known {
			*u = known
			return nil
		}
	}
	for _, known := range binaryUnits {
		if s == known {
			*u = known
			return nil
		}
	}
	return fmt.Errorf("unknown byte unit %q", string(text))
}

// Value is a scaled byte count paired with the unit it is expressed in.
type Value struct {
	Num  float64 `json:"num"`
	Unit Unit    `json:"unit"`
}

// String renders the value as "<num> <unit>", e.g. "3.05 MiB". The magnitude
// uses its shortest decimal form, with no forced trailing zeros.
func (v Value) String() string {
	return strconv.FormatFloat(v.Num, 'f', -1, 64) + " " + string(v.Unit)
}
