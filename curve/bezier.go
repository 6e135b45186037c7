package curve

import (
	"fmt"
	"math"
)

// closestSamples is the number of uniform samples used to seed Newton
// iteration in [Bezier.ClosestPointTo] for curves without an analytic
// nearest-point solver.
const closestSamples = 32

// Bezier is a possibly rational Bézier curve of degree 1, 2 or 3.
//
// P holds the control points and W their weights. Entries past Degree are
// ignored. All weights must be positive; a curve whose weights are all equal
// is polynomial. Rational curves are needed to represent circular arcs
// exactly.
type Bezier struct {
	Degree int
	P      [4]Point
	W      [4]float64
}

// BezierLine returns the degree 1 curve from p0 to p1.
func BezierLine(p0, p1 Point) Bezier {
	return Bezier{
		Degree: 1,
		P:      [4]Point{p0, p1},
		W:      [4]float64{1, 1},
	}
}

// RationalQuad returns a rational quadratic curve. The end points have weight
// one and the middle control point has weight w1.
func RationalQuad(p0, p1, p2 Point, w1 float64) Bezier {
	return Bezier{
		Degree: 2,
		P:      [4]Point{p0, p1, p2},
		W:      [4]float64{1, w1, 1},
	}
}

// BezierFrom returns the polynomial cubic with the given control points.
func BezierFrom(p0, p1, p2, p3 Point) Bezier {
	return Bezier{
		Degree: 3,
		P:      [4]Point{p0, p1, p2, p3},
		W:      [4]float64{1, 1, 1, 1},
	}
}

func (b Bezier) String() string {
	if b.IsRational() {
		return fmt.Sprintf("Bezier%d%v%v", b.Degree, b.P[:b.Degree+1], b.W[:b.Degree+1])
	}
	return fmt.Sprintf("Bezier%d%v", b.Degree, b.P[:b.Degree+1])
}

func (b Bezier) Start() Point { return b.P[0] }
func (b Bezier) End() Point   { return b.P[b.Degree] }

// IsRational reports whether the weights differ from each other.
func (b Bezier) IsRational() bool {
	for i := 1; i <= b.Degree; i++ {
		if b.W[i] != b.W[0] {
			return true
		}
	}
	return false
}

// Cubic returns the curve as a polynomial cubic. Lines and quadratics are
// degree-elevated, which preserves their parametrization. It returns false
// for rational curves.
func (b Bezier) Cubic() (CubicBez, bool) {
	if b.IsRational() {
		return CubicBez{}, false
	}
	switch b.Degree {
	case 1:
		return CubicBez{b.P[0], b.P[0].Lerp(b.P[1], 1.0/3.0), b.P[0].Lerp(b.P[1], 2.0/3.0), b.P[1]}, true
	case 2:
		return QuadBez{b.P[0], b.P[1], b.P[2]}.Raise(), true
	case 3:
		return CubicBez{b.P[0], b.P[1], b.P[2], b.P[3]}, true
	default:
		panic(fmt.Sprintf("unsupported Bézier degree %d", b.Degree))
	}
}

// hpoint is a control point in homogeneous coordinates, (w·x, w·y, w).
type hpoint struct {
	x, y, w float64
}

func (p hpoint) lerp(o hpoint, t float64) hpoint {
	return hpoint{
		x: p.x + (o.x-p.x)*t,
		y: p.y + (o.y-p.y)*t,
		w: p.w + (o.w-p.w)*t,
	}
}

func (p hpoint) point() Point {
	return Point{X: p.x / p.w, Y: p.y / p.w}
}

func (b Bezier) hull() [4]hpoint {
	var out [4]hpoint
	for i := 0; i <= b.Degree; i++ {
		w := b.W[i]
		out[i] = hpoint{b.P[i].X * w, b.P[i].Y * w, w}
	}
	return out
}

// casteljau runs de Casteljau's algorithm at t on the homogeneous control
// polygon, returning the polygons of both halves and the point at t.
func (b Bezier) casteljau(t float64) (left, right [4]hpoint, at hpoint) {
	pts := b.hull()
	n := b.Degree
	left[0] = pts[0]
	right[n] = pts[n]
	for k := 1; k <= n; k++ {
		for i := 0; i <= n-k; i++ {
			pts[i] = pts[i].lerp(pts[i+1], t)
		}
		left[k] = pts[0]
		right[n-k] = pts[n-k]
	}
	return left, right, pts[0]
}

func fromHull(degree int, h [4]hpoint) Bezier {
	out := Bezier{Degree: degree}
	for i := 0; i <= degree; i++ {
		out.P[i] = h[i].point()
		out.W[i] = h[i].w
	}
	return out
}

// Eval evaluates the curve at parameter t.
func (b Bezier) Eval(t float64) Point {
	_, _, at := b.casteljau(t)
	return at.point()
}

// Deriv returns the first derivative of the curve at t.
func (b Bezier) Deriv(t float64) Vec2 {
	pts := b.hull()
	n := b.Degree
	var d [4]hpoint
	for i := 0; i < n; i++ {
		d[i] = hpoint{
			x: float64(n) * (pts[i+1].x - pts[i].x),
			y: float64(n) * (pts[i+1].y - pts[i].y),
			w: float64(n) * (pts[i+1].w - pts[i].w),
		}
	}
	for k := 1; k < n; k++ {
		for i := 0; i < n-k; i++ {
			d[i] = d[i].lerp(d[i+1], t)
		}
	}
	_, _, h := b.casteljau(t)
	p := h.point()
	// Quotient rule: C = H.xy / H.w, so C' = (H'.xy − C·H'.w) / H.w.
	return Vec2{
		X: (d[0].x - p.X*d[0].w) / h.w,
		Y: (d[0].y - p.Y*d[0].w) / h.w,
	}
}

// SplitAt splits the curve at t into the parts [0, t] and [t, 1]. The end of
// the first part and the start of the second are both exactly Eval(t).
func (b Bezier) SplitAt(t float64) (Bezier, Bezier) {
	left, right, _ := b.casteljau(t)
	return fromHull(b.Degree, left).normalized(), fromHull(b.Degree, right).normalized()
}

// normalized scales the weights so that the first one is 1. This doesn't
// change the curve.
func (b Bezier) normalized() Bezier {
	w0 := b.W[0]
	if w0 == 1 || w0 == 0 {
		return b
	}
	for i := 0; i <= b.Degree; i++ {
		b.W[i] /= w0
	}
	return b
}

// BoundingBox returns a rectangle enclosing the curve. It is the bounding box
// of the control polygon, which contains the curve when all weights are
// positive.
func (b Bezier) BoundingBox() Rect {
	r := NewRectFromPoints(b.P[0], b.P[0])
	for i := 1; i <= b.Degree; i++ {
		r = r.UnionPoint(b.P[i])
	}
	return r
}

// flatness returns the largest distance of an inner control point from the
// chord. Because the curve lies within its control polygon, it deviates from
// the chord by no more than this.
func (b Bezier) flatness() float64 {
	chord := Line{b.Start(), b.End()}
	var worst float64
	for i := 1; i < b.Degree; i++ {
		distSq, _ := chord.Nearest(b.P[i], 0)
		worst = max(worst, distSq)
	}
	return math.Sqrt(worst)
}

// ClosestPointTo returns the parameter of the point on the curve closest to
// pt. The target doesn't have to lie on the curve. If extrapolate is true,
// the result may lie outside [0, 1] when the closest point of the curve's
// extension is beyond an end point.
func (b Bezier) ClosestPointTo(pt Point, extrapolate bool) float64 {
	var t float64
	if c, ok := b.Cubic(); ok {
		_, t = c.Nearest(pt, DefaultAccuracy)
	} else {
		best := math.Inf(1)
		for i := range closestSamples + 1 {
			ti := float64(i) / closestSamples
			if d := b.Eval(ti).DistanceSquared(pt); d < best {
				best = d
				t = ti
			}
		}
	}

	// Polish with Newton's method on (C(t) − pt)·C'(t) = 0.
	for range 16 {
		d := b.Deriv(t)
		dd := d.Hypot2()
		if dd == 0 {
			break
		}
		step := pt.Sub(b.Eval(t)).Dot(d) / dd
		t += step
		if !extrapolate {
			t = min(max(t, 0), 1)
		}
		if math.Abs(step) < 1e-14 {
			break
		}
	}
	return t
}
