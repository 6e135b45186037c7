package curve

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func quarterCircle() Bezier {
	// The quarter of the unit circle from (1, 0) to (0, 1).
	return RationalQuad(Pt(1, 0), Pt(1, 1), Pt(0, 1), math.Sqrt2/2)
}

func TestBezierEvalMatchesCubic(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(1, 2), Pt(3, 2), Pt(4, 0)}
	b := BezierFrom(c.P0, c.P1, c.P2, c.P3)
	if b.IsRational() {
		t.Fatal("polynomial cubic reported as rational")
	}
	const n = 10
	for i := range n + 1 {
		ts := float64(i) / n
		assertNear(t, c.Eval(ts), b.Eval(ts), 1e-12)
		assertNear(t, Point(c.Differentiate().Eval(ts)), Point(b.Deriv(ts)), 1e-12)
	}
}

func TestBezierRationalIsCircular(t *testing.T) {
	b := quarterCircle()
	if !b.IsRational() {
		t.Fatal("arc reported as polynomial")
	}
	if _, ok := b.Cubic(); ok {
		t.Error("rational curve converted to a polynomial cubic")
	}
	const n = 16
	for i := range n + 1 {
		ts := float64(i) / n
		p := b.Eval(ts)
		if d := math.Abs(Vec2(p).Hypot() - 1); d > 1e-12 {
			t.Errorf("point %v at t=%g is %g off the circle", p, ts, d)
		}
		// The tangent of a circle is perpendicular to the radius.
		if dot := b.Deriv(ts).Dot(Vec2(p)); math.Abs(dot) > 1e-9 {
			t.Errorf("derivative at t=%g not tangent: dot %g", ts, dot)
		}
	}
	assertNear(t, b.Eval(0.5), Pt(math.Sqrt2/2, math.Sqrt2/2), 1e-12)
}

func TestBezierDerivNumeric(t *testing.T) {
	for _, b := range []Bezier{
		BezierLine(Pt(1, 1), Pt(4, 5)),
		quarterCircle(),
		BezierFrom(Pt(0, 0), Pt(1, 2), Pt(3, -2), Pt(4, 0)),
	} {
		const delta = 1e-6
		for _, ts := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
			approx := b.Eval(ts + delta).Sub(b.Eval(ts - delta)).Mul(0.5 / delta)
			if d := b.Deriv(ts).Sub(approx).Hypot(); d > 1e-6 {
				t.Errorf("%v: derivative at %g off by %g", b, ts, d)
			}
		}
	}
}

func TestBezierSplitAt(t *testing.T) {
	for _, b := range []Bezier{
		BezierLine(Pt(0, 0), Pt(2, 2)),
		RationalQuad(Pt(0, 0), Pt(1, 2), Pt(2, 0), 3),
		quarterCircle(),
		BezierFrom(Pt(0, 0), Pt(1, 2), Pt(3, -2), Pt(4, 0)),
	} {
		for _, at := range []float64{0.2, 0.5, 0.9} {
			l, r := b.SplitAt(at)
			if l.End() != r.Start() {
				t.Errorf("%v: halves don't meet: %v != %v", b, l.End(), r.Start())
			}
			assertNear(t, b.Eval(at), l.End(), 1e-12)
			assertNear(t, b.Start(), l.Start(), 1e-12)
			assertNear(t, b.End(), r.End(), 1e-12)
			diff(t, 1.0, l.W[0])
			diff(t, 1.0, r.W[0])
			const n = 8
			for i := range n + 1 {
				u := float64(i) / n
				assertNear(t, b.Eval(at*u), l.Eval(u), 1e-9)
				assertNear(t, b.Eval(at+(1-at)*u), r.Eval(u), 1e-9)
			}
		}
	}
}

func TestBezierCubicRaise(t *testing.T) {
	b := BezierLine(Pt(0, 0), Pt(3, 3))
	c, ok := b.Cubic()
	if !ok {
		t.Fatal("line not convertible to cubic")
	}
	diff(t, CubicBez{Pt(0, 0), Pt(1, 1), Pt(2, 2), Pt(3, 3)}, c, cmpopts.EquateApprox(0, 1e-12))
}

func TestBezierClosestPointTo(t *testing.T) {
	c := BezierFrom(Pt(0, 0), Pt(1, 2), Pt(3, 2), Pt(4, 0))
	for _, want := range []float64{0, 0.1, 0.35, 0.5, 0.8, 1} {
		got := c.ClosestPointTo(c.Eval(want), false)
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("got t=%g, want %g", got, want)
		}
	}

	// Off-curve targets project onto the curve.
	l := BezierLine(Pt(0, 0), Pt(4, 0))
	diff(t, 0.25, l.ClosestPointTo(Pt(1, 3), false), cmpopts.EquateApprox(0, 1e-12))

	// Beyond the end, the parameter is clamped unless extrapolation is
	// allowed.
	diff(t, 1.0, l.ClosestPointTo(Pt(6, 1), false))
	diff(t, 1.5, l.ClosestPointTo(Pt(6, 1), true), cmpopts.EquateApprox(0, 1e-9))

	arc := quarterCircle()
	got := arc.ClosestPointTo(Pt(2, 2), false)
	assertNear(t, arc.Eval(got), Pt(math.Sqrt2/2, math.Sqrt2/2), 1e-9)
}

func TestBezierBoundingBox(t *testing.T) {
	b := BezierFrom(Pt(0, 0), Pt(1, 2), Pt(3, -1), Pt(4, 0))
	diff(t, Rect{X0: 0, Y0: -1, X1: 4, Y1: 2}, b.BoundingBox())
}
