// Package gallery implements the before/after transformation gallery: the
// comparison-slider position math and the static transformation catalog.
package gallery

// Rect is the slider container's bounding box in client coordinates.
type Rect struct {
	Left  float64
	Width float64
}

// PointerEvent is a drag sample. For touch input Touches carries the active
// touch points and the first one wins; otherwise ClientX is the mouse
// position.
type PointerEvent struct {
	ClientX float64
	Touches []float64
}

func (e PointerEvent) x() float64 {
	if len(e.Touches) > 0 {
		return e.Touches[0]
	}
	return e.ClientX
}

// Position maps a pointer sample to the revealed percentage of the before
// image, clamped to [0,100] so dragging past the container edges pins the
// slider to an edge.
func Position(r Rect, e PointerEvent) float64 {
	if r.Width <= 0 {
		return 0
	}

	pct := (e.x() - r.Left) / r.Width * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
