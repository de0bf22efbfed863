package isocurve_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"honnef.co/go/isocurve"
	"honnef.co/go/isocurve/poly"
)

func TestEvaluateCircle(t *testing.T) {
	got, err := isocurve.Evaluate(circle(1), box(0, 1, 0, 1))
	require.NoError(t, err)
	// f(m) = -0.5, first order terms [-1, 1], second order terms [0, 0.5].
	require.Equal(t, isocurve.Iv(-1.5, 1), got)
}

func TestEvaluateEncloses(t *testing.T) {
	x, y := poly.X(), poly.Y()
	fns := []poly.Poly{
		circle(1),
		// x³ − 2xy + y²
		x.Mul(x).Mul(x).Sub(x.Mul(y).Scale(2)).Add(y.Mul(y)),
		poly.FromGraded([]float64{0.5, -1, 2, 0, 3, -1, 1, 0, 0, -2}),
		poly.Const(4),
	}
	boxes := []isocurve.Box{
		box(0, 1, 0, 1),
		box(-1, 2, 0.5, 1),
		box(-0.3, -0.1, -5, 5),
		box(1e-3, 2e-3, 7, 7.5),
	}

	const steps = 8
	for _, f := range fns {
		for _, b := range boxes {
			enc, err := isocurve.Evaluate(f, b)
			require.NoError(t, err)
			// Rounding isn't directed, so allow for a few ulps at the bounds.
			tol := 1e-12 * max(1, math.Abs(enc.Lower), math.Abs(enc.Upper))
			enc = isocurve.Iv(enc.Lower-tol, enc.Upper+tol)
			for i := range steps + 1 {
				for j := range steps + 1 {
					pt := isocurve.Pt(
						b.X.Lower+float64(i)*b.X.Width()/steps,
						b.Y.Lower+float64(j)*b.Y.Width()/steps,
					)
					if v := f.Eval(pt); !enc.ContainsValue(v) {
						t.Errorf("%v at %v = %g, outside of enclosure %v over %v", f, pt, v, enc, b)
					}
				}
			}
		}
	}
}

func TestEvaluateShrinks(t *testing.T) {
	f := circle(1)
	b := box(0.5, 1.5, 0.25, 1.25)
	prev := -1.0
	for range 6 {
		enc, err := isocurve.Evaluate(f, b)
		require.NoError(t, err)
		if prev >= 0 {
			require.Less(t, enc.Width(), prev)
		}
		prev = enc.Width()
		b = b.Subdivide()[2]
	}
}

func TestEvaluatePoint(t *testing.T) {
	// Over a degenerate box the enclosure is the exact value.
	got, err := isocurve.Evaluate(circle(2), box(1, 1, 3, 3))
	require.NoError(t, err)
	require.Equal(t, isocurve.Iv(6, 6), got)
}
