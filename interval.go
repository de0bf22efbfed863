package isocurve

import (
	"fmt"
	"math"

	"github.com/aukilabs/go-tooling/pkg/errors"
)

// Interval is the closed set of reals [Lower, Upper].
//
// Intervals are values; every operation returns a new interval. The bounds are
// computed with ordinary float64 arithmetic and no directed rounding, so an
// enclosure may miss the true range by a few ulps.
type Interval struct {
	Lower float64
	Upper float64
}

// Empty is the interval returned when there is no valid result, such as the
// intersection of two disjoint intervals. Its width is -1.
var Empty = Interval{Lower: math.Inf(-1), Upper: math.Inf(-1)}

// Iv returns the interval [min(a, b), max(a, b)].
func Iv(a, b float64) Interval {
	return Interval{Lower: min(a, b), Upper: max(a, b)}
}

// Symmetric returns the interval [-|c|, |c|].
func Symmetric(c float64) Interval {
	return Interval{Lower: -math.Abs(c), Upper: math.Abs(c)}
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%g, %g]", iv.Lower, iv.Upper)
}

// IsEmpty reports whether iv is the [Empty] sentinel.
func (iv Interval) IsEmpty() bool {
	return math.IsInf(iv.Lower, -1) && math.IsInf(iv.Upper, -1)
}

// IsInf reports whether at least one bound is infinite.
func (iv Interval) IsInf() bool {
	return math.IsInf(iv.Lower, 0) || math.IsInf(iv.Upper, 0)
}

// IsNaN reports whether at least one bound is NaN.
func (iv Interval) IsNaN() bool {
	return math.IsNaN(iv.Lower) || math.IsNaN(iv.Upper)
}

func (iv Interval) Add(o Interval) Interval {
	return Iv(iv.Lower+o.Lower, iv.Upper+o.Upper)
}

// AddScalar returns iv + c. Addition commutes, so this also serves c + iv.
func (iv Interval) AddScalar(c float64) Interval {
	return Iv(iv.Lower+c, iv.Upper+c)
}

// Sub returns iv - o, which is [iv.Lower - o.Upper, iv.Upper - o.Lower].
func (iv Interval) Sub(o Interval) Interval {
	return Iv(iv.Lower-o.Upper, iv.Upper-o.Lower)
}

func (iv Interval) SubScalar(c float64) Interval {
	return Iv(iv.Lower-c, iv.Upper-c)
}

// SubFromScalar returns c - iv.
func (iv Interval) SubFromScalar(c float64) Interval {
	return Iv(c-iv.Upper, c-iv.Lower)
}

func (iv Interval) Mul(o Interval) Interval {
	a := iv.Lower * o.Lower
	b := iv.Lower * o.Upper
	c := iv.Upper * o.Lower
	d := iv.Upper * o.Upper
	return Interval{
		Lower: min(a, b, c, d),
		Upper: max(a, b, c, d),
	}
}

// MulScalar returns iv * c. Negative factors swap the bounds.
func (iv Interval) MulScalar(c float64) Interval {
	return Iv(iv.Lower*c, iv.Upper*c)
}

// Div returns iv / o, computed as iv * [1/o.Upper, 1/o.Lower]. It fails with
// [ErrTypeDivisionByZero] if o contains zero.
func (iv Interval) Div(o Interval) (Interval, error) {
	if o.ContainsZero() {
		return Interval{}, errors.New("division by an interval containing zero").
			WithType(ErrTypeDivisionByZero).
			WithTag("divisor", o.String())
	}
	return iv.Mul(Iv(1/o.Upper, 1/o.Lower)), nil
}

// DivScalar returns iv / c. It fails with [ErrTypeDivisionByZero] if c is zero.
func (iv Interval) DivScalar(c float64) (Interval, error) {
	if c == 0 {
		return Interval{}, errors.New("division by zero").
			WithType(ErrTypeDivisionByZero)
	}
	return iv.MulScalar(1 / c), nil
}

// ScalarDiv would return c / iv. It has no implementation and always fails
// with [ErrTypeUnsupported].
func (iv Interval) ScalarDiv(c float64) (Interval, error) {
	return Interval{}, errors.New("division of a scalar by an interval is not implemented").
		WithType(ErrTypeUnsupported).
		WithTag("numerator", c)
}

// Pow raises iv to the integer power n.
//
// Even powers are taken of [Interval.Abs] so that intervals straddling zero
// get a lower bound of zero. Negative powers are the reciprocal of the
// corresponding positive power and fail with [ErrTypeDivisionByZero] if iv
// contains zero. Pow(0) is [1, 1].
func (iv Interval) Pow(n int) (Interval, error) {
	switch {
	case n == 0:
		return Interval{Lower: 1, Upper: 1}, nil
	case n > 0:
		return iv.pow(n), nil
	default:
		if iv.ContainsZero() {
			return Interval{}, errors.New("interval raised to a negative power contains zero").
				WithType(ErrTypeDivisionByZero).
				WithTag("interval", iv.String()).
				WithTag("exponent", n)
		}
		p := iv.pow(-n)
		return Iv(1/p.Upper, 1/p.Lower), nil
	}
}

func (iv Interval) pow(n int) Interval {
	if n%2 == 0 {
		a := iv.Abs()
		return Iv(powi(a.Lower, n), powi(a.Upper, n))
	}
	return Iv(powi(iv.Lower, n), powi(iv.Upper, n))
}

// powi computes x**n for n >= 0 by repeated squaring.
func powi(x float64, n int) float64 {
	r := 1.0
	for n > 0 {
		if n&1 == 1 {
			r *= x
		}
		x *= x
		n >>= 1
	}
	return r
}

// PowFloat is like [Interval.Pow] but accepts a float64 exponent. Exponents
// that aren't integers fail with [ErrTypeUnsupported].
func (iv Interval) PowFloat(e float64) (Interval, error) {
	if e != math.Trunc(e) || math.IsInf(e, 0) {
		return Interval{}, errors.New("exponentiation with a non-integer exponent is not supported").
			WithType(ErrTypeUnsupported).
			WithTag("exponent", e)
	}
	return iv.Pow(int(e))
}

// PowInterval always fails with [ErrTypeUnsupported]; interval exponents have
// no extension here.
func (iv Interval) PowInterval(e Interval) (Interval, error) {
	return Interval{}, errors.New("exponentiation with an interval as the exponent is not supported").
		WithType(ErrTypeUnsupported).
		WithTag("exponent", e.String())
}

// Root returns the n-th root of iv. The root of a negative bound is the
// negated root of its magnitude. Root fails with [ErrTypeInvalidArgument] for
// n == 0 and for even n when iv.Lower is negative.
func (iv Interval) Root(n int) (Interval, error) {
	if n == 0 {
		return Interval{}, errors.New("cannot take the 0th root of an interval").
			WithType(ErrTypeInvalidArgument)
	}
	if n%2 == 0 && iv.Lower < 0 {
		return Interval{}, errors.New("cannot take an even root of an interval containing negative numbers").
			WithType(ErrTypeInvalidArgument).
			WithTag("interval", iv.String()).
			WithTag("root", n)
	}
	root := func(x float64) float64 {
		if x >= 0 {
			return math.Pow(x, 1/float64(n))
		}
		return -math.Pow(-x, 1/float64(n))
	}
	return Iv(root(iv.Lower), root(iv.Upper)), nil
}

func (iv Interval) ContainsZero() bool {
	return iv.Lower <= 0 && 0 <= iv.Upper
}

// Contains reports whether o is a subset of iv.
func (iv Interval) Contains(o Interval) bool {
	return iv.Lower <= o.Lower && iv.Upper >= o.Upper
}

func (iv Interval) ContainsValue(x float64) bool {
	return iv.Lower <= x && x <= iv.Upper
}

// Width returns Upper - Lower. It returns -1 for [Empty] and whenever the
// width is NaN; callers must treat -1 as "no valid interval".
func (iv Interval) Width() float64 {
	if iv.IsEmpty() {
		return -1
	}
	w := iv.Upper - iv.Lower
	if math.IsNaN(w) {
		return -1
	}
	return w
}

func (iv Interval) Midpoint() float64 {
	return (iv.Lower + iv.Upper) / 2
}

// Abs returns the image of iv under |x|.
func (iv Interval) Abs() Interval {
	lo, hi := math.Abs(iv.Lower), math.Abs(iv.Upper)
	if iv.ContainsZero() {
		return Interval{Lower: 0, Upper: max(lo, hi)}
	}
	return Interval{Lower: min(lo, hi), Upper: max(lo, hi)}
}

// Intersect returns the intersection of iv and o, or [Empty] if they are
// disjoint. Intervals that share only an endpoint intersect in a single point.
func (iv Interval) Intersect(o Interval) Interval {
	if o.Lower > iv.Upper || iv.Lower > o.Upper {
		return Empty
	}
	return Interval{
		Lower: max(iv.Lower, o.Lower),
		Upper: min(iv.Upper, o.Upper),
	}
}
