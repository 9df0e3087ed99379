package layout

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitAuto  Unit = iota // Size derived from the ruler
	UnitFixed             // Absolute pixels
)

// Value represents a bar dimension that is either fixed or derived.
type Value struct {
	Amount float64
	Unit   Unit
}

// Auto returns a Value that should be computed from the ruler.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Fixed returns a Value representing an absolute number of pixels.
func Fixed(px float64) Value {
	return Value{Amount: px, Unit: UnitFixed}
}

// Resolve returns the fixed amount, or fallback for auto values.
// A fixed amount that is not positive is treated as unset.
func (v Value) Resolve(fallback float64) float64 {
	switch v.Unit {
	case UnitFixed:
		if v.Amount > 0 {
			return v.Amount
		}
		return fallback
	default:
		return fallback
	}
}

// IsAuto returns true if this value should be computed from the ruler.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}
