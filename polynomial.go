package isocurve

// Axis selects a coordinate direction for differentiation.
type Axis int

const (
	X Axis = 0
	Y Axis = 1
)

func (a Axis) String() string {
	switch a {
	case X:
		return "x"
	case Y:
		return "y"
	default:
		return "Axis(?)"
	}
}

// Polynomial is the capability the range evaluator needs from a bivariate
// polynomial. Package poly provides an implementation; any other algebra
// backend can be plugged in by satisfying this interface.
type Polynomial interface {
	// Degree returns the total degree. It bounds the order of the Taylor
	// expansion used by [Evaluate].
	Degree() int

	// Eval returns the exact value at p.
	Eval(p Point) float64

	// Derivative differentiates order times along axis. Derivatives must
	// compose, so that mixed partials can be obtained by chaining calls.
	// Derivative(axis, 0) returns the polynomial unchanged.
	Derivative(axis Axis, order int) Polynomial
}

// Gradient returns ∇f evaluated at p.
func Gradient(f Polynomial, p Point) Vec2 {
	return Vec2{
		X: f.Derivative(X, 1).Eval(p),
		Y: f.Derivative(Y, 1).Eval(p),
	}
}
