package isocurve

// Line is a line segment from P0 to P1. Boxes report their sides as lines.
type Line struct {
	P0 Point
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

func (l Line) Midpoint() Point {
	return l.P0.Midpoint(l.P1)
}

// SignChange reports whether f has opposite signs at the two endpoints of the
// line. A value of exactly zero counts as positive, so a curve passing through
// an endpoint is attributed to only one of the edges meeting there.
func (l Line) SignChange(f Polynomial) bool {
	v0 := f.Eval(l.P0)
	v1 := f.Eval(l.P1)
	if v0 == 0 {
		v0 = 1
	}
	if v1 == 0 {
		v1 = 1
	}
	return v0*v1 < 0
}
