package isocurve

import (
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
)

// SDF returns b as an sdfx bounding box.
func (b Box) SDF() sdf.Box2 {
	return sdf.Box2{
		Min: v2.Vec{X: b.X.Lower, Y: b.Y.Lower},
		Max: v2.Vec{X: b.X.Upper, Y: b.Y.Upper},
	}
}

// BoxFromSDF returns the box with the extents of bb.
func BoxFromSDF(bb sdf.Box2) Box {
	return Box{
		X: Iv(bb.Min.X, bb.Max.X),
		Y: Iv(bb.Min.Y, bb.Max.Y),
	}
}

// Implicit adapts the curve F = 0 within Bounds to sdfx's [sdf.SDF2], so that
// it can be rendered or combined with sdfx shapes.
//
// Polynomials aren't distance functions. Evaluate returns the first-order
// distance estimate f / |∇f|, which has the sign of f and approaches the true
// distance near regular points of the curve.
type Implicit struct {
	F      Polynomial
	Bounds Box
}

var _ sdf.SDF2 = Implicit{}

func (im Implicit) Evaluate(p v2.Vec) float64 {
	pt := Pt(p.X, p.Y)
	v := im.F.Eval(pt)
	g := Gradient(im.F, pt).Hypot()
	if g == 0 {
		return v
	}
	return v / g
}

func (im Implicit) BoundingBox() sdf.Box2 {
	return im.Bounds.SDF()
}
