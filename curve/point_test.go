package curve

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
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

func TestPointFinite(t *testing.T) {
	tests := []struct {
		pt       Point
		inf, nan bool
	}{
		{Pt(1, 2), false, false},
		{Pt(math.Inf(1), 0), true, false},
		{Pt(0, math.Inf(-1)), true, false},
		{Pt(math.NaN(), 0), false, true},
		{Pt(math.Inf(1), math.NaN()), true, true},
	}
	for _, tt := range tests {
		if got := tt.pt.IsInf(); got != tt.inf {
			t.Errorf("%v.IsInf() = %t, want %t", tt.pt, got, tt.inf)
		}
		if got := tt.pt.IsNaN(); got != tt.nan {
			t.Errorf("%v.IsNaN() = %t, want %t", tt.pt, got, tt.nan)
		}
		if got := tt.pt.IsFinite(); got != (!tt.inf && !tt.nan) {
			t.Errorf("%v.IsFinite() = %t", tt.pt, got)
		}
	}
}

func TestPointEquals(t *testing.T) {
	p := Pt(1, 2)
	if !p.Equals(Pt(1+1e-9, 2-1e-9), 1e-6) {
		t.Error("nearby points should be equal")
	}
	if p.Equals(Pt(1, 2+1e-3), 1e-6) {
		t.Error("distant points shouldn't be equal")
	}
}
