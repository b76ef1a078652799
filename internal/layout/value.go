package layout

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitAuto    Unit = iota // Size determined by content
	UnitFixed               // Absolute pixels
	UnitPercent             // Percentage of the parent's available space
)

// Value represents a dimension that can be fixed, percentage, or auto.
type Value struct {
	Amount float64
	Unit   Unit
}

// Auto returns a Value that should be computed from content.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Fixed returns a Value representing an absolute number of pixels.
func Fixed(px float64) Value {
	return Value{Amount: px, Unit: UnitFixed}
}

// Percent returns a Value representing a percentage of available space.
// The value is on a 0-100 scale (50.0 = 50%).
func Percent(p float64) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// Resolve computes the pixel value given available space.
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

// IsFixed returns true if this value is an absolute pixel size.
func (v Value) IsFixed() bool {
	return v.Unit == UnitFixed
}

// IsPercent returns true if this value is relative to the parent.
func (v Value) IsPercent() bool {
	return v.Unit == UnitPercent
}
