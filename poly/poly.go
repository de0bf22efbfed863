// Package poly implements sparse bivariate polynomials with float64
// coefficients. [Poly] satisfies [isocurve.Polynomial].
package poly

import (
	"cmp"
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"

	"honnef.co/go/isocurve"
)

// Monomial is the monomial xⁱyʲ, identified by its exponents.
type Monomial struct {
	I, J int
}

// Degree returns the total degree I + J.
func (m Monomial) Degree() int { return m.I + m.J }

// Poly is a bivariate polynomial. The zero value is the zero polynomial.
//
// Polys are immutable; all operations return new polynomials. Terms with a
// zero coefficient are never stored.
type Poly struct {
	terms map[Monomial]float64
}

var _ isocurve.Polynomial = Poly{}

// New returns the polynomial with the given coefficients.
func New(coeffs map[Monomial]float64) Poly {
	p := Poly{terms: make(map[Monomial]float64, len(coeffs))}
	for m, c := range coeffs {
		if m.I < 0 || m.J < 0 {
			panic(fmt.Sprintf("negative exponent in monomial %v", m))
		}
		p.set(m, c)
	}
	return p
}

// FromGraded returns the polynomial whose coefficients are listed in graded
// order: 1, x, y, x², xy, y², x³, x²y, …
func FromGraded(coeffs []float64) Poly {
	p := Poly{terms: make(map[Monomial]float64, len(coeffs))}
	d, k := 0, 0
	for _, c := range coeffs {
		p.set(Monomial{I: d - k, J: k}, c)
		k++
		if k > d {
			d++
			k = 0
		}
	}
	return p
}

// Const returns the constant polynomial c.
func Const(c float64) Poly { return New(map[Monomial]float64{{0, 0}: c}) }

// X returns the polynomial x.
func X() Poly { return New(map[Monomial]float64{{1, 0}: 1}) }

// Y returns the polynomial y.
func Y() Poly { return New(map[Monomial]float64{{0, 1}: 1}) }

func (p *Poly) set(m Monomial, c float64) {
	if c == 0 {
		delete(p.terms, m)
		return
	}
	p.terms[m] = c
}

// Coefficients returns a copy of p's non-zero coefficients.
func (p Poly) Coefficients() map[Monomial]float64 {
	return maps.Clone(p.terms)
}

// Coefficient returns the coefficient of m.
func (p Poly) Coefficient(m Monomial) float64 {
	return p.terms[m]
}

func (p Poly) IsZero() bool { return len(p.terms) == 0 }

// Degree returns the total degree of p. The zero polynomial has degree 0.
func (p Poly) Degree() int {
	d := 0
	for m := range p.terms {
		d = max(d, m.Degree())
	}
	return d
}

func (p Poly) Eval(pt isocurve.Point) float64 {
	var sum float64
	for m, c := range p.terms {
		sum += c * ipow(pt.X, m.I) * ipow(pt.Y, m.J)
	}
	return sum
}

func ipow(x float64, n int) float64 {
	switch n {
	case 0:
		return 1
	case 1:
		return x
	case 2:
		return x * x
	default:
		return math.Pow(x, float64(n))
	}
}

// Diff differentiates p order times along axis.
func (p Poly) Diff(axis isocurve.Axis, order int) Poly {
	if order < 0 {
		panic(fmt.Sprintf("negative derivative order %d", order))
	}
	if order == 0 {
		return p
	}
	out := Poly{terms: make(map[Monomial]float64, len(p.terms))}
	for m, c := range p.terms {
		e := m.I
		if axis == isocurve.Y {
			e = m.J
		}
		if e < order {
			continue
		}
		// e!/(e-order)!
		f := 1.0
		for k := e - order + 1; k <= e; k++ {
			f *= float64(k)
		}
		if axis == isocurve.X {
			m.I -= order
		} else {
			m.J -= order
		}
		out.set(m, c*f)
	}
	return out
}

// Derivative implements isocurve.Polynomial.
func (p Poly) Derivative(axis isocurve.Axis, order int) isocurve.Polynomial {
	return p.Diff(axis, order)
}

// Gradient returns the partial derivatives ∂p/∂x and ∂p/∂y.
func (p Poly) Gradient() [2]Poly {
	return [2]Poly{p.Diff(isocurve.X, 1), p.Diff(isocurve.Y, 1)}
}

func (p Poly) Add(o Poly) Poly {
	out := Poly{terms: maps.Clone(p.terms)}
	if out.terms == nil {
		out.terms = make(map[Monomial]float64, len(o.terms))
	}
	for m, c := range o.terms {
		out.set(m, out.terms[m]+c)
	}
	return out
}

func (p Poly) Sub(o Poly) Poly {
	return p.Add(o.Scale(-1))
}

func (p Poly) Mul(o Poly) Poly {
	out := Poly{terms: make(map[Monomial]float64, len(p.terms)*len(o.terms))}
	for m1, c1 := range p.terms {
		for m2, c2 := range o.terms {
			m := Monomial{I: m1.I + m2.I, J: m1.J + m2.J}
			out.set(m, out.terms[m]+c1*c2)
		}
	}
	return out
}

// Scale returns f·p.
func (p Poly) Scale(f float64) Poly {
	out := Poly{terms: make(map[Monomial]float64, len(p.terms))}
	for m, c := range p.terms {
		out.set(m, c*f)
	}
	return out
}

// Equal reports whether p and o have identical coefficients.
func (p Poly) Equal(o Poly) bool {
	return maps.Equal(p.terms, o.terms)
}

// CrossGradient returns fₓgᵧ − fᵧgₓ, the cross product of the gradients of f
// and g. It vanishes exactly where the two gradients are parallel.
func CrossGradient(f, g Poly) Poly {
	df, dg := f.Gradient(), g.Gradient()
	return df[0].Mul(dg[1]).Sub(df[1].Mul(dg[0]))
}

// String formats p with terms in decreasing degree, such as "x^2 + 2xy - 1".
func (p Poly) String() string {
	if p.IsZero() {
		return "0"
	}
	ms := slices.Collect(maps.Keys(p.terms))
	slices.SortFunc(ms, func(a, b Monomial) int {
		if c := cmp.Compare(b.Degree(), a.Degree()); c != 0 {
			return c
		}
		return cmp.Compare(b.I, a.I)
	})

	var sb strings.Builder
	for i, m := range ms {
		c := p.terms[m]
		switch {
		case i == 0 && c < 0:
			sb.WriteString("-")
		case i > 0 && c < 0:
			sb.WriteString(" - ")
		case i > 0:
			sb.WriteString(" + ")
		}
		c = math.Abs(c)
		if c != 1 || m.Degree() == 0 {
			fmt.Fprintf(&sb, "%g", c)
		}
		writeVar(&sb, "x", m.I)
		writeVar(&sb, "y", m.J)
	}
	return sb.String()
}

func writeVar(sb *strings.Builder, name string, e int) {
	switch e {
	case 0:
	case 1:
		sb.WriteString(name)
	default:
		fmt.Fprintf(sb, "%s^%d", name, e)
	}
}
