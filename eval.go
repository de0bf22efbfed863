package isocurve

// Evaluate returns an interval enclosing the range of f over b.
//
// It uses the centered (Taylor) form about the box's midpoint m:
//
//	f(m) + Σ ∂ⁱₓ∂ʲᵧf(m) · (X − mₓ)ⁱ · (Y − mᵧ)ʲ / (i! j!)
//
// summed over 0 ≤ i, j ≤ deg f with i + j > 0, with every term bounded in
// interval arithmetic. For polynomials the expansion is exact, and each term
// shrinks with the box to the order of its degree, which makes the enclosure
// much tighter than evaluating f naively over the box's intervals.
func Evaluate(f Polynomial, b Box) (Interval, error) {
	m := b.Midpoint()
	deg := f.Degree()

	fact := make([]float64, deg+1)
	fact[0] = 1
	for i := 1; i <= deg; i++ {
		fact[i] = fact[i-1] * float64(i)
	}

	dx := b.X.SubScalar(m.X)
	dy := b.Y.SubScalar(m.Y)

	sum := Interval{}
	for i := 0; i <= deg; i++ {
		fx := f.Derivative(X, i)
		xi, err := dx.Pow(i)
		if err != nil {
			return Interval{}, err
		}
		for j := 0; j <= deg; j++ {
			if i+j == 0 {
				continue
			}
			c := fx.Derivative(Y, j).Eval(m)
			if c == 0 {
				continue
			}
			yj, err := dy.Pow(j)
			if err != nil {
				return Interval{}, err
			}
			term, err := xi.MulScalar(c).Mul(yj).DivScalar(fact[i] * fact[j])
			if err != nil {
				return Interval{}, err
			}
			sum = sum.Add(term)
		}
	}
	return sum.AddScalar(f.Eval(m)), nil
}
