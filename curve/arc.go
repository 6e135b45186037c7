package curve

import (
	"math"
)

// CircularArc is an arc of a circle. It starts at StartAngle and sweeps
// SweepAngle radians, anticlockwise in a y-up coordinate system for positive
// sweeps.
type CircularArc struct {
	Center     Point
	Radius     float64
	StartAngle float64
	SweepAngle float64
}

// ArcFromPoints returns the arc around center that runs anticlockwise from
// start to finish. The radius is the distance from center to start; finish
// only contributes its direction. When start and finish point in the same
// direction, the arc is a full turn.
func ArcFromPoints(center, start, finish Point) CircularArc {
	v0 := start.Sub(center)
	v1 := finish.Sub(center)
	th0 := v0.Angle()
	sweep := math.Mod(v1.Angle()-th0, 2*math.Pi)
	if sweep < 0 {
		sweep += 2 * math.Pi
	}
	if sweep < 1e-9 || 2*math.Pi-sweep < 1e-9 {
		sweep = 2 * math.Pi
	}
	return CircularArc{
		Center:     center,
		Radius:     v0.Hypot(),
		StartAngle: th0,
		SweepAngle: sweep,
	}
}

func (a CircularArc) pointAt(angle float64) Point {
	return a.Center.Translate(VecFromAngle(angle).Mul(a.Radius))
}

func (a CircularArc) Start() Point { return a.pointAt(a.StartAngle) }
func (a CircularArc) End() Point   { return a.pointAt(a.StartAngle + a.SweepAngle) }

// Beziers returns the exact representation of the arc as rational quadratic
// Béziers, each spanning at most a quarter turn.
func (a CircularArc) Beziers() BezierList {
	n := max(int(math.Ceil(math.Abs(a.SweepAngle)/(math.Pi/2)-1e-9)), 1)
	step := a.SweepAngle / float64(n)
	// The middle control point sits where the tangents at both ends meet; its
	// weight is the cosine of half the segment's angle.
	half := 0.5 * step
	w := math.Cos(half)
	out := make(BezierList, 0, n)
	p0 := a.pointAt(a.StartAngle)
	for i := range n {
		th0 := a.StartAngle + float64(i)*step
		p2 := a.pointAt(th0 + step)
		p1 := a.Center.Translate(VecFromAngle(th0 + half).Mul(a.Radius / w))
		out = append(out, RationalQuad(p0, p1, p2, w))
		p0 = p2
	}
	return out
}
