package curve

import (
	"math"
)

type Circle struct {
	Center Point
	Radius float64
}

// Beziers returns the circle as four rational quadratic Béziers, starting
// and ending at angle 0.
func (c Circle) Beziers() BezierList {
	return CircularArc{
		Center:     c.Center,
		Radius:     math.Abs(c.Radius),
		SweepAngle: 2 * math.Pi,
	}.Beziers()
}
