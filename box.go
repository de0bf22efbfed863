package isocurve

import (
	"fmt"
	"math"
)

// Box is an axis-aligned rectangle X × Y. It is the geometry of a quadtree
// node; the tree structure itself lives in [Tree].
//
// Two boxes are equal if their intervals are equal, so boxes can be compared
// with ==.
type Box struct {
	X Interval
	Y Interval
}

// emptyBox is returned by [Box.Intersect] for disjoint boxes.
var emptyBox = Box{X: Empty, Y: Empty}

func NewBox(x, y Interval) Box {
	return Box{X: x, Y: y}
}

func (b Box) String() string {
	return fmt.Sprintf("X: %s, Y: %s", b.X, b.Y)
}

// Edge names one of the four sides of a box.
type Edge uint8

const (
	NoEdge Edge = iota
	RightEdge
	TopEdge
	LeftEdge
	BottomEdge
)

func (e Edge) String() string {
	switch e {
	case NoEdge:
		return "none"
	case RightEdge:
		return "right"
	case TopEdge:
		return "top"
	case LeftEdge:
		return "left"
	case BottomEdge:
		return "bottom"
	default:
		return fmt.Sprintf("Edge(%d)", uint8(e))
	}
}

// Sides returns the four sides of the box in the order right, top, left,
// bottom, walking the boundary counter-clockwise starting at the bottom-right
// corner. Sides()[e-1] is the side for edge e.
func (b Box) Sides() [4]Line {
	bl, br, tr, tl := b.corners()
	return [4]Line{
		{br, tr},
		{tr, tl},
		{tl, bl},
		{bl, br},
	}
}

// Side returns the line for edge e. It panics for [NoEdge].
func (b Box) Side(e Edge) Line {
	if e == NoEdge || e > BottomEdge {
		panic(fmt.Sprintf("invalid edge %s", e))
	}
	return b.Sides()[e-1]
}

// SignChanges returns the edges of b along which f has opposite signs at the
// two endpoints, in the order of [Box.Sides]. See [Line.SignChange] for the
// treatment of zeros at the corners.
func (b Box) SignChanges(f Polynomial) []Edge {
	var out []Edge
	for i, l := range b.Sides() {
		if l.SignChange(f) {
			out = append(out, Edge(i+1))
		}
	}
	return out
}

// Vertices returns the corners of the box in the order bottom-left,
// bottom-right, top-right, top-left.
func (b Box) Vertices() [4]Point {
	bl, br, tr, tl := b.corners()
	return [4]Point{bl, br, tr, tl}
}

func (b Box) corners() (bl, br, tr, tl Point) {
	bl = Pt(b.X.Lower, b.Y.Lower)
	br = Pt(b.X.Upper, b.Y.Lower)
	tr = Pt(b.X.Upper, b.Y.Upper)
	tl = Pt(b.X.Lower, b.Y.Upper)
	return bl, br, tr, tl
}

// WhichSide reports which side of the box pt lies on, by exact comparison
// against the box's bounds. Sides are tested in the order right, top, left,
// bottom and the first match wins, so a corner is reported as only one of the
// two sides meeting there (the top-left corner is [TopEdge], for example).
// Points on no side yield [NoEdge].
func (b Box) WhichSide(pt Point) Edge {
	switch {
	case pt.X == b.X.Upper:
		return RightEdge
	case pt.Y == b.Y.Upper:
		return TopEdge
	case pt.X == b.X.Lower:
		return LeftEdge
	case pt.Y == b.Y.Lower:
		return BottomEdge
	default:
		return NoEdge
	}
}

func (b Box) Midpoint() Point {
	return Pt(b.X.Midpoint(), b.Y.Midpoint())
}

// ContainsPoint reports whether pt lies in the closed box.
func (b Box) ContainsPoint(pt Point) bool {
	return b.X.ContainsValue(pt.X) && b.Y.ContainsValue(pt.Y)
}

// Intersect returns the intersection of two boxes. If they are disjoint along
// either axis, the result is a box made of two [Empty] intervals.
func (b Box) Intersect(o Box) Box {
	x := b.X.Intersect(o.X)
	y := b.Y.Intersect(o.Y)
	if x.Width() >= 0 && y.Width() >= 0 {
		return Box{X: x, Y: y}
	}
	return emptyBox
}

// IsEmpty reports whether b is the result of intersecting disjoint boxes.
func (b Box) IsEmpty() bool {
	return b.X.IsEmpty() || b.Y.IsEmpty()
}

// IsNeighbor reports whether b and o share a side of positive length. Boxes
// that overlap in area, or that touch only at a corner, are not neighbors.
func (b Box) IsNeighbor(o Box) bool {
	in := b.Intersect(o)
	xw, yw := in.X.Width(), in.Y.Width()
	return (xw == 0 && yw > 0) || (yw == 0 && xw > 0)
}

// Neighbors returns the boxes in boxes that are neighbors of b.
func (b Box) Neighbors(boxes []Box) []Box {
	var out []Box
	for _, o := range boxes {
		if b.IsNeighbor(o) {
			out = append(out, o)
		}
	}
	return out
}

// Width returns the smaller of the two side lengths.
func (b Box) Width() float64 {
	return min(b.X.Width(), b.Y.Width())
}

// Diameter returns the length of the box's diagonal.
func (b Box) Diameter() float64 {
	return math.Hypot(b.X.Width(), b.Y.Width())
}

// Subdivide splits the box at its midpoint into four quadrants, returned in
// the order upper-right, upper-left, lower-left, lower-right.
func (b Box) Subdivide() [4]Box {
	mx, my := b.Midpoint().Splat()
	left := Interval{Lower: b.X.Lower, Upper: mx}
	right := Interval{Lower: mx, Upper: b.X.Upper}
	lower := Interval{Lower: b.Y.Lower, Upper: my}
	upper := Interval{Lower: my, Upper: b.Y.Upper}
	return [4]Box{
		{right, upper},
		{left, upper},
		{left, lower},
		{right, lower},
	}
}

// Inflate expands the box by dx on the left and right and by dy on the top
// and bottom.
func (b Box) Inflate(dx, dy float64) Box {
	return Box{
		X: Iv(b.X.Lower-dx, b.X.Upper+dx),
		Y: Iv(b.Y.Lower-dy, b.Y.Upper+dy),
	}
}

// Neighborhood returns the box enlarged by w times its width on every side.
// The crossing-aware subdivision tests transversality on this enlarged box.
func (b Box) Neighborhood(w float64) Box {
	d := w * b.Width()
	return b.Inflate(d, d)
}

// IsBoundaryOf reports whether b shares at least one side with bounds.
func (b Box) IsBoundaryOf(bounds Box) bool {
	return b.X.Lower == bounds.X.Lower ||
		b.X.Upper == bounds.X.Upper ||
		b.Y.Lower == bounds.Y.Lower ||
		b.Y.Upper == bounds.Y.Upper
}

// BoundarySides returns the sides of bounds that b lies on, in the order
// right, top, left, bottom.
func (b Box) BoundarySides(bounds Box) []Edge {
	var out []Edge
	if b.X.Upper == bounds.X.Upper {
		out = append(out, RightEdge)
	}
	if b.Y.Upper == bounds.Y.Upper {
		out = append(out, TopEdge)
	}
	if b.X.Lower == bounds.X.Lower {
		out = append(out, LeftEdge)
	}
	if b.Y.Lower == bounds.Y.Lower {
		out = append(out, BottomEdge)
	}
	return out
}

func (b Box) IsInf() bool {
	return b.X.IsInf() || b.Y.IsInf()
}

func (b Box) IsNaN() bool {
	return b.X.IsNaN() || b.Y.IsNaN()
}
