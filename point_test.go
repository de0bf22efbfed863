package isocurve

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Vec(-10, 2), Pt(0, 3).Sub(Pt(10, 1)))
	diff(t, Pt(1, 2), Pt(0, 3).Midpoint(Pt(2, 1)))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestPointIsInf(t *testing.T) {
	if Pt(1, 2).IsInf() || Pt(1, 2).IsNaN() {
		t.Error("finite point reported as infinite or NaN")
	}
	if !Pt(math.Inf(-1), 2).IsInf() {
		t.Error("point is finite but shouldn't be")
	}
	if !Pt(1, math.NaN()).IsNaN() {
		t.Error("point isn't NaN but should be")
	}
}

func TestVec2(t *testing.T) {
	if h := Vec(3, -4).Hypot(); h != 5 {
		t.Errorf("got magnitude %v, want 5", h)
	}
	if c := Vec(1, 0).Cross(Vec(0, 1)); c != 1 {
		t.Errorf("got cross product %v, want 1", c)
	}
	if c := Vec(2, 4).Cross(Vec(-1, -2)); c != 0 {
		t.Errorf("parallel vectors have cross product %v", c)
	}
}

func TestGradient(t *testing.T) {
	diff(t, Vec(2, -1), Gradient(linear{2, -1, 3}, Pt(5, 7)))
	diff(t, Vec(0, 0), Gradient(linear{c: 1}, Pt(5, 7)))
}
