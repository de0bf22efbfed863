package isocurve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLineLength(t *testing.T) {
	l := Line{Pt(0.0, 0.0), Pt(1.0, 1.0)}
	require.Equal(t, math.Sqrt(2), l.Length())
	diff(t, Pt(0.5, 0.5), l.Midpoint())
}

func TestLineSignChange(t *testing.T) {
	f := linear{1, 0, -0.5} // x - 0.5
	tests := []struct {
		l    Line
		want bool
	}{
		{Line{Pt(0, 0), Pt(1, 0)}, true},
		{Line{Pt(1, 0), Pt(0, 0)}, true},
		{Line{Pt(0, 0), Pt(0, 1)}, false},
		{Line{Pt(0.6, 0), Pt(2, 3)}, false},
		// Zeros count as positive.
		{Line{Pt(0.5, 0), Pt(1, 0)}, false},
		{Line{Pt(0, 0), Pt(0.5, 0)}, true},
	}
	for _, tt := range tests {
		if got := tt.l.SignChange(f); got != tt.want {
			t.Errorf("%v.SignChange(x - 0.5) = %t, want %t", tt.l, got, tt.want)
		}
	}
}

func TestBoxSignChanges(t *testing.T) {
	b := unitBox()
	require.Equal(t, []Edge{TopEdge, BottomEdge}, b.SignChanges(linear{1, 0, -0.5}))
	require.Equal(t, []Edge{RightEdge, LeftEdge}, b.SignChanges(linear{0, 1, -0.5}))
	require.Empty(t, b.SignChanges(linear{1, 0, -10}))

	// The curve x = 0 runs along the left side, where f is zero and thus
	// positive, like everywhere else in the box.
	require.Empty(t, b.SignChanges(linear{1, 0, 0}))
}
