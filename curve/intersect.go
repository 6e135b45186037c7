package curve

import (
	"cmp"
	"math"
	"slices"
)

// maxIntersectDepth bounds the recursion of the subdivision intersector.
const maxIntersectDepth = 48

// BezierList is an ordered sequence of curves, such as the pieces an entity
// is made of.
type BezierList []Bezier

// Intersection is a point at which a curve of one [BezierList] meets a curve
// of another.
type Intersection struct {
	Point Point
	// A is the index of the curve in the receiver list, TA the parameter on it.
	A  int
	TA float64
	// B is the index of the curve in the other list, TB the parameter on it.
	B  int
	TB float64
}

// BoundingBox returns a rectangle enclosing all curves of the list.
func (l BezierList) BoundingBox() Rect {
	if len(l) == 0 {
		return Rect{}
	}
	r := l[0].BoundingBox()
	for _, b := range l[1:] {
		r = r.Union(b.BoundingBox())
	}
	return r
}

// AllIntersectionsWith returns the points where curves of l meet curves of o.
//
// Points closer than tol to an earlier point are reported once. The result is
// sorted by position along l: first by curve index, then by parameter. Since
// adjacent curves of a list share end points, an intersection at such a joint
// is attributed to the earlier curve.
//
// Overlapping collinear or concentric pieces don't have isolated
// intersections and contribute nothing.
func (l BezierList) AllIntersectionsWith(o BezierList, tol float64) []Intersection {
	var out []Intersection
	for i, a := range l {
		for j, b := range o {
			x := intersector{a: a, b: b, ai: i, bi: j, tol: tol, out: out}
			x.run()
			out = x.out
		}
	}
	slices.SortStableFunc(out, func(x, y Intersection) int {
		if c := cmp.Compare(x.A, y.A); c != 0 {
			return c
		}
		return cmp.Compare(x.TA, y.TA)
	})

	deduped := out[:0]
outer:
	for _, z := range out {
		for _, prev := range deduped {
			if z.Point.Equals(prev.Point, tol) {
				continue outer
			}
		}
		deduped = append(deduped, z)
	}
	return deduped
}

type intersector struct {
	a, b   Bezier
	ai, bi int
	tol    float64
	out    []Intersection
}

func (x *intersector) run() {
	switch {
	case x.a.Degree == 1 && x.b.Degree == 1:
		la := Line{x.a.Start(), x.a.End()}
		lb := Line{x.b.Start(), x.b.End()}
		xs, n := la.IntersectLine(lb)
		for _, z := range xs[:n] {
			x.refine(z.SegmentT, z.LineT)
		}
		return
	case x.a.Degree == 1:
		if c, ok := x.b.Cubic(); ok {
			xs, n := c.IntersectLine(Line{x.a.Start(), x.a.End()})
			for _, z := range xs[:n] {
				x.refine(z.LineT, z.SegmentT)
			}
			return
		}
	case x.b.Degree == 1:
		if c, ok := x.a.Cubic(); ok {
			xs, n := c.IntersectLine(Line{x.b.Start(), x.b.End()})
			for _, z := range xs[:n] {
				x.refine(z.SegmentT, z.LineT)
			}
			return
		}
	}
	x.subdivide(span{x.a, 0, 1}, span{x.b, 0, 1}, 0)
}

// span is a piece of a curve together with its parameter range on the
// original curve.
type span struct {
	c      Bezier
	t0, t1 float64
}

func (s span) split() (span, span) {
	l, r := s.c.SplitAt(0.5)
	tm := 0.5 * (s.t0 + s.t1)
	return span{l, s.t0, tm}, span{r, tm, s.t1}
}

func (x *intersector) subdivide(a, b span, depth int) {
	if !a.c.BoundingBox().Inflate(x.tol, x.tol).Overlaps(b.c.BoundingBox()) {
		return
	}
	flatA := a.c.flatness() <= x.tol
	flatB := b.c.flatness() <= x.tol
	if (flatA && flatB) || depth >= maxIntersectDepth {
		la := Line{a.c.Start(), a.c.End()}
		lb := Line{b.c.Start(), b.c.End()}
		xs, n := la.IntersectLine(lb)
		for _, z := range xs[:n] {
			x.refine(
				a.t0+z.SegmentT*(a.t1-a.t0),
				b.t0+z.LineT*(b.t1-b.t0),
			)
		}
		return
	}

	switch {
	case flatA:
		b0, b1 := b.split()
		x.subdivide(a, b0, depth+1)
		x.subdivide(a, b1, depth+1)
	case flatB:
		a0, a1 := a.split()
		x.subdivide(a0, b, depth+1)
		x.subdivide(a1, b, depth+1)
	default:
		a0, a1 := a.split()
		b0, b1 := b.split()
		x.subdivide(a0, b0, depth+1)
		x.subdivide(a0, b1, depth+1)
		x.subdivide(a1, b0, depth+1)
		x.subdivide(a1, b1, depth+1)
	}
}

// refine polishes an approximate intersection with Newton's method on
// A(ta) − B(tb) = 0 and records it if the curves really meet there.
func (x *intersector) refine(ta, tb float64) {
	clamp := func(t float64) float64 { return min(max(t, 0), 1) }
	ta, tb = clamp(ta), clamp(tb)
	for range 16 {
		f := x.a.Eval(ta).Sub(x.b.Eval(tb))
		if f.Hypot() <= 1e-15 {
			break
		}
		da := x.a.Deriv(ta)
		db := x.b.Deriv(tb)
		det := -da.Cross(db)
		if math.Abs(det) < 1e-300 {
			break
		}
		dta := (f.X*db.Y - db.X*f.Y) / det
		dtb := (-da.X*f.Y + da.Y*f.X) / det
		ta, tb = clamp(ta+dta), clamp(tb+dtb)
		if math.Abs(dta) < 1e-15 && math.Abs(dtb) < 1e-15 {
			break
		}
	}
	pa := x.a.Eval(ta)
	if pa.Distance(x.b.Eval(tb)) > x.tol {
		return
	}
	x.out = append(x.out, Intersection{
		Point: pa,
		A:     x.ai,
		TA:    ta,
		B:     x.bi,
		TB:    tb,
	})
}
