package isocurve

// C0 reports whether b provably contains no zero of any of fns, that is,
// whether none of the enclosures computed by [Evaluate] contain zero.
func C0(fns []Polynomial, b Box) (bool, error) {
	for _, f := range fns {
		r, err := Evaluate(f, b)
		if err != nil {
			return false, err
		}
		if r.ContainsZero() {
			return false, nil
		}
	}
	return true, nil
}

// C1 reports whether the gradient of every function in fns provably doesn't
// vanish anywhere in b. The test is that the interval sum of squares of the
// two partial derivatives' enclosures excludes zero.
func C1(fns []Polynomial, b Box) (bool, error) {
	for _, f := range fns {
		fx, err := Evaluate(f.Derivative(X, 1), b)
		if err != nil {
			return false, err
		}
		fy, err := Evaluate(f.Derivative(Y, 1), b)
		if err != nil {
			return false, err
		}
		if fx.Mul(fx).Add(fy.Mul(fy)).ContainsZero() {
			return false, nil
		}
	}
	return true, nil
}

// C0C1 is the mixed test used by [Subdivide]. It counts the functions that
// individually satisfy [C0] on b. If more than one does, it fails. If exactly
// one does, the remaining functions must satisfy [C1]. If none do, it
// succeeds.
func C0C1(fns []Polynomial, b Box) (bool, error) {
	var rest []Polynomial
	n := 0
	for _, f := range fns {
		ok, err := C0([]Polynomial{f}, b)
		if err != nil {
			return false, err
		}
		if !ok {
			rest = append(rest, f)
			continue
		}
		n++
		if n > 1 {
			return false, nil
		}
	}
	if n == 1 {
		return C1(rest, b)
	}
	return true, nil
}

// Cross reports whether the gradients of f and g are provably never parallel
// in b, by checking that the enclosure of fₓgᵧ − fᵧgₓ excludes zero. Branches
// of f and g that meet in b then cross transversally.
func Cross(f, g Polynomial, b Box) (bool, error) {
	var d [4]Interval
	parts := [4]Polynomial{
		f.Derivative(X, 1),
		f.Derivative(Y, 1),
		g.Derivative(X, 1),
		g.Derivative(Y, 1),
	}
	for i, p := range parts {
		r, err := Evaluate(p, b)
		if err != nil {
			return false, err
		}
		d[i] = r
	}
	fx, fy, gx, gy := d[0], d[1], d[2], d[3]
	return !fx.Mul(gy).Sub(fy.Mul(gx)).ContainsZero(), nil
}
