// Package isocurve certifies where implicit algebraic curves lie within a
// rectangular region of the plane. It subdivides the region into a quadtree
// of boxes, each of which provably contains either no curve at all or a
// single smooth branch of each curve passing through it, possibly crossing one
// other curve transversally. Such a subdivision is the input to
// topologically faithful (isotopic) curve approximation: connecting the points
// where the curves cross box edges yields a piecewise linear curve that is
// homeomorphic to the true one.
//
// # Interval arithmetic
//
// All certification is done with closed intervals of float64 ([Interval]).
// Operations on intervals return intervals that enclose every result of the
// operation applied to members of the operands. Operations that can't produce
// such an enclosure, such as dividing by an interval containing zero, return
// errors instead. Rounding is not directed, so enclosures are exact only up
// to floating-point error.
//
// # Polynomials and range evaluation
//
// Curves are the zero sets of bivariate polynomials. The package only needs
// the small capability described by [Polynomial]; package
// honnef.co/go/isocurve/poly provides a sparse implementation.
//
// [Evaluate] bounds the range of a polynomial over a [Box] using the centered
// Taylor form. The predicates [C0], [C1], [C0C1] and [Cross] are built on it.
//
// # Subdivision
//
// [Subdivide] and [SubdivideCrossing] drive the subdivision, breadth first,
// until every box is classified or the limits in [Options] are reached. The
// resulting [Tree] is an arena of nodes addressed by [NodeID]. It can be
// balanced with [Result.Balance], so that neighboring leaves differ in size by
// at most a factor of two, and exported as JSON with [Result.WriteJSON].
//
// Boxes and polynomials interoperate with sdfx: see [Box.SDF] and [Implicit].
//
// # Literature
//
// The subdivision criteria follow "Isotopic approximation of implicit curves
// and surfaces" by Plantinga and Vegter.
package isocurve
