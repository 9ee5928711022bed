package layout

import (
	"fmt"
	"math"
)

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitAuto    Unit = iota // Size determined by content
	UnitFixed               // Absolute size
	UnitPercent             // Percentage of the space left by non-percentage items
)

// Value represents an item dimension that can be fixed, percentage, or auto.
type Value struct {
	Amount float64
	Unit   Unit
}

// Auto returns a Value that should be computed from content.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Fixed returns a Value representing an absolute size.
func Fixed(n float64) Value {
	return Value{Amount: n, Unit: UnitFixed}
}

// Percent returns a Value representing a percentage of available space.
// The value is on a 0-100 scale (50.0 = 50%).
func Percent(p float64) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// Resolve computes the actual value given available space.
// For UnitAuto, returns the fallback value.
func (v Value) Resolve(available, fallback float64) float64 {
	switch v.Unit {
	case UnitFixed:
		return v.Amount
	case UnitPercent:
		return available * v.Amount / 100.0
	default:
		return fallback
	}
}

// IsAuto returns true if this value should be computed from content.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

// IsPercent returns true if this value is a percentage.
func (v Value) IsPercent() bool {
	return v.Unit == UnitPercent
}

// Dim is a dimension that is either explicit or unspecified.
// The zero value is unspecified.
type Dim struct {
	value float64
	set   bool
}

// Unset returns an unspecified Dim.
func Unset() Dim {
	return Dim{}
}

// Explicit returns a Dim holding n. It panics on NaN, which has no meaning
// as a concrete bound.
func Explicit(n float64) Dim {
	if math.IsNaN(n) {
		panic("layout: Explicit called with NaN")
	}
	return Dim{value: n, set: true}
}

// Get returns the value and whether it is set.
func (d Dim) Get() (float64, bool) {
	return d.value, d.set
}

// IsSet returns true if the dimension holds a concrete value.
func (d Dim) IsSet() bool {
	return d.set
}

// Or returns the value if set, otherwise fallback.
func (d Dim) Or(fallback float64) float64 {
	if d.set {
		return d.value
	}
	return fallback
}

// String implements fmt.Stringer.
func (d Dim) String() string {
	if !d.set {
		return "auto"
	}
	return fmt.Sprintf("%g", d.value)
}

// maxOr returns the value of a maximum bound, or +Inf when unbounded.
func (d Dim) maxOr() float64 {
	return d.Or(math.Inf(1))
}
