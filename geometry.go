package sketch

import (
	"fmt"
	"math"

	"honnef.co/go/sketch/curve"
)

// BezierCurves returns the curve entity h as a list of possibly rational
// Béziers. Points have no curves.
func (s *Sketch) BezierCurves(h EntityHandle) curve.BezierList {
	e := s.Entity(h)
	pos := func(i int) curve.Point { return s.PointPos(e.Point[i]) }
	switch e.Kind {
	case EntityPoint:
		return nil
	case EntityLineSegment:
		return curve.BezierList{curve.BezierLine(pos(0), pos(1))}
	case EntityCubic:
		return curve.BezierList{curve.BezierFrom(pos(0), pos(1), pos(2), pos(3))}
	case EntityCircle:
		return curve.Circle{Center: pos(0), Radius: e.Radius}.Beziers()
	case EntityArcOfCircle:
		return curve.ArcFromPoints(pos(0), pos(1), pos(2)).Beziers()
	default:
		panic(fmt.Sprintf("unreachable: %s", e.Kind))
	}
}

// Endpoints returns where the curve entity h starts and ends. Circles and
// points have no end points.
func (s *Sketch) Endpoints(h EntityHandle) []curve.Point {
	e := s.Entity(h)
	switch e.Kind {
	case EntityPoint, EntityCircle:
		return nil
	case EntityLineSegment:
		return []curve.Point{s.PointPos(e.Point[0]), s.PointPos(e.Point[1])}
	case EntityArcOfCircle:
		return []curve.Point{s.PointPos(e.Point[1]), s.PointPos(e.Point[2])}
	case EntityCubic:
		return []curve.Point{s.PointPos(e.Point[0]), s.PointPos(e.Point[3])}
	default:
		panic(fmt.Sprintf("unreachable: %s", e.Kind))
	}
}

// finite reports whether every coordinate of h, and its radius if it is a
// circle, is finite.
func (s *Sketch) finite(h EntityHandle) bool {
	e := s.Entity(h)
	if e.Kind == EntityPoint {
		return e.Pos.IsFinite()
	}
	for _, hp := range e.Points() {
		if !s.PointPos(hp).IsFinite() {
			return false
		}
	}
	return !math.IsInf(e.Radius, 0) && !math.IsNaN(e.Radius)
}
