package isocurve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unitBox() Box { return NewBox(Iv(0, 1), Iv(0, 1)) }

func TestBoxSidesAndVertices(t *testing.T) {
	b := NewBox(Iv(0, 2), Iv(0, 1))
	diff(t, [4]Line{
		{Pt(2, 0), Pt(2, 1)}, // right
		{Pt(2, 1), Pt(0, 1)}, // top
		{Pt(0, 1), Pt(0, 0)}, // left
		{Pt(0, 0), Pt(2, 0)}, // bottom
	}, b.Sides())
	diff(t, [4]Point{Pt(0, 0), Pt(2, 0), Pt(2, 1), Pt(0, 1)}, b.Vertices())
	diff(t, Line{Pt(2, 1), Pt(0, 1)}, b.Side(TopEdge))
	require.Panics(t, func() { b.Side(NoEdge) })

	var perimeter float64
	for _, l := range b.Sides() {
		perimeter += l.Length()
	}
	require.Equal(t, 6.0, perimeter)
}

func TestBoxWhichSide(t *testing.T) {
	b := unitBox()
	tests := []struct {
		pt   Point
		want Edge
	}{
		{Pt(1, 0.5), RightEdge},
		{Pt(0.5, 1), TopEdge},
		{Pt(0, 0.5), LeftEdge},
		{Pt(0.5, 0), BottomEdge},
		{Pt(0.5, 0.5), NoEdge},
		{Pt(3, 3), NoEdge},
		// Corners go to the first matching side in the order right, top,
		// left, bottom.
		{Pt(1, 1), RightEdge},
		{Pt(1, 0), RightEdge},
		{Pt(0, 1), TopEdge},
		{Pt(0, 0), LeftEdge},
	}
	for _, tt := range tests {
		if got := b.WhichSide(tt.pt); got != tt.want {
			t.Errorf("WhichSide(%v) = %v, want %v", tt.pt, got, tt.want)
		}
	}
}

func TestBoxGeometry(t *testing.T) {
	b := NewBox(Iv(0, 4), Iv(1, 4))
	diff(t, Pt(2, 2.5), b.Midpoint())
	require.Equal(t, 3.0, b.Width())
	require.Equal(t, 5.0, b.Diameter())
	require.True(t, b.ContainsPoint(Pt(0, 1)))
	require.True(t, b.ContainsPoint(Pt(4, 4)))
	require.False(t, b.ContainsPoint(Pt(4.1, 2)))

	diff(t, NewBox(Iv(-1, 5), Iv(-2, 7)), b.Inflate(1, 3))
	// The neighborhood grows by w times the width on every side.
	diff(t, NewBox(Iv(-6, 10), Iv(-5, 10)), b.Neighborhood(2))
}

func TestBoxIntersect(t *testing.T) {
	for _, b := range []Box{unitBox(), NewBox(Iv(-3, 2), Iv(5, 9))} {
		if got := b.Intersect(b); got != b {
			t.Errorf("%v ∩ itself = %v", b, got)
		}
	}

	a := NewBox(Iv(0, 2), Iv(0, 2))
	diff(t, NewBox(Iv(1, 2), Iv(1, 2)), a.Intersect(NewBox(Iv(1, 3), Iv(1, 3))))

	got := a.Intersect(NewBox(Iv(3, 4), Iv(0, 2)))
	require.True(t, got.IsEmpty())
	require.Equal(t, -1.0, got.X.Width())
	require.Equal(t, -1.0, got.Y.Width())
}

func TestBoxIsNeighbor(t *testing.T) {
	a := unitBox()
	boxes := []Box{
		NewBox(Iv(1, 2), Iv(0, 1)),       // shares the right side
		NewBox(Iv(0, 1), Iv(1, 2)),       // shares the top side
		NewBox(Iv(-1, 0), Iv(0.5, 3)),    // partially shares the left side
		NewBox(Iv(1, 2), Iv(1, 2)),       // corner only
		NewBox(Iv(0.5, 2), Iv(0, 1)),     // overlaps
		NewBox(Iv(2, 3), Iv(0, 1)),       // disjoint
		NewBox(Iv(0.25, 0.5), Iv(-1, 0)), // shares part of the bottom side
		a,
	}
	want := []bool{true, true, true, false, false, false, true, false}
	for i, b := range boxes {
		if got := a.IsNeighbor(b); got != want[i] {
			t.Errorf("%v.IsNeighbor(%v) = %t, want %t", a, b, got, want[i])
		}
		if a.IsNeighbor(b) != b.IsNeighbor(a) {
			t.Errorf("IsNeighbor isn't symmetric for %v and %v", a, b)
		}
	}

	diff(t, []Box{boxes[0], boxes[1], boxes[2], boxes[6]}, a.Neighbors(boxes))
}

func TestBoxSubdivide(t *testing.T) {
	b := NewBox(Iv(-1, 3), Iv(2, 4))
	kids := b.Subdivide()
	diff(t, [4]Box{
		NewBox(Iv(1, 3), Iv(3, 4)),
		NewBox(Iv(-1, 1), Iv(3, 4)),
		NewBox(Iv(-1, 1), Iv(2, 3)),
		NewBox(Iv(1, 3), Iv(2, 3)),
	}, kids)

	var area float64
	for i, k := range kids {
		area += k.X.Width() * k.Y.Width()
		require.True(t, b.X.Contains(k.X) && b.Y.Contains(k.Y), "child %d escapes parent", i)
		for j, o := range kids {
			if i == j {
				continue
			}
			// Siblings meet along sides or corners, never in area.
			in := k.Intersect(o)
			require.False(t, in.X.Width() > 0 && in.Y.Width() > 0, "children %d and %d overlap", i, j)
		}
	}
	require.Equal(t, b.X.Width()*b.Y.Width(), area)
}

func TestBoxBoundary(t *testing.T) {
	bounds := NewBox(Iv(0, 4), Iv(0, 4))
	kids := bounds.Subdivide()

	assert.Equal(t, []Edge{RightEdge, TopEdge}, kids[0].BoundarySides(bounds))
	assert.Equal(t, []Edge{TopEdge, LeftEdge}, kids[1].BoundarySides(bounds))
	assert.Equal(t, []Edge{LeftEdge, BottomEdge}, kids[2].BoundarySides(bounds))
	assert.Equal(t, []Edge{RightEdge, BottomEdge}, kids[3].BoundarySides(bounds))

	inner := NewBox(Iv(1, 2), Iv(1, 2))
	assert.False(t, inner.IsBoundaryOf(bounds))
	assert.Empty(t, inner.BoundarySides(bounds))
	assert.True(t, kids[0].IsBoundaryOf(bounds))
}

func TestBoxDegenerate(t *testing.T) {
	require.True(t, NewBox(Iv(0, math.Inf(1)), Iv(0, 1)).IsInf())
	require.True(t, NewBox(Iv(0, 1), Interval{math.NaN(), 1}).IsNaN())
	require.False(t, unitBox().IsEmpty())
}
