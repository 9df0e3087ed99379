package candlestick

// Interpolator returns the value between from and to at eased progress
// ease. Hosts plug their own easing helpers in here.
type Interpolator func(from, to, ease float64) float64

// Linear interpolates on a straight line.
func Linear(from, to, ease float64) float64 {
	return from + (to-from)*ease
}

// geometryFields lists the numeric geometry fields of a view in a fixed
// order so transitions can walk begin/end pairs.
func geometryFields(v *View) [6]*float64 {
	return [6]*float64{
		&v.X,
		&v.Width,
		&v.BodyTopY,
		&v.BodyBottomY,
		&v.ShadowTopY,
		&v.ShadowBottomY,
	}
}

// FieldTransition is the begin/end pair of one geometry field.
type FieldTransition struct {
	Name     string
	From, To float64
}

var geometryFieldNames = [6]string{"x", "width", "bodyTopY", "bodyBottomY", "shadowTopY", "shadowBottomY"}

// PendingTransition returns the begin/end values of every geometry field
// for the transition in progress. It returns nil when the element has
// settled.
func (e *CandleElement) PendingTransition() []FieldTransition {
	if !e.hasView || !e.moving {
		return nil
	}
	from, to := geometryFields(&e.start), geometryFields(&e.model)
	out := make([]FieldTransition, len(from))
	for i := range from {
		out[i] = FieldTransition{Name: geometryFieldNames[i], From: *from[i], To: *to[i]}
	}
	return out
}
