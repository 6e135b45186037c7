package sketch

import (
	"fmt"
	"math"

	"honnef.co/go/sketch/curve"

	"go.uber.org/zap"
)

// MakeTangentArc rounds the corner at the selected point, where exactly two
// non-construction line segments of the active group must meet.
//
// The two lines become construction geometry. They are replaced by two
// shortened lines, each constrained onto its original, and an arc tangent to
// both. The radius is chosen so that no more than a third of either line is
// cut away.
func (ed *Editor) MakeTangentArc(sel Selection) error {
	s := ed.Sketch
	reject := func(err error) error {
		ed.log.Debug("tangent arc rejected", zap.Error(err))
		return err
	}
	if s.Workplane == nil {
		return reject(fmt.Errorf("%w: must be sketching in workplane to create tangent arc", ErrNotInWorkplane))
	}
	gs := s.GroupSelection(sel)
	if gs.N != 1 || gs.Points != 1 {
		return reject(fmt.Errorf("%w: select a single point where two line segments join", ErrSelection))
	}
	pshared := s.PointPos(gs.Point[0])
	eps := ed.Config.LengthEpsilon

	// Find the two lines that join at pshared.
	var (
		line   [2]Entity
		point1 [2]bool
		c      int
	)
	for r := range s.Requests() {
		if r.Group != s.ActiveGroup || r.Kind != RequestLineSegment || r.Construction {
			continue
		}
		e := s.Entity(r.Entity)
		p0, p1 := s.PointPos(e.Point[0]), s.PointPos(e.Point[1])
		if p0.Equals(pshared, eps) || p1.Equals(pshared, eps) {
			if c < 2 {
				line[c] = e
				point1[c] = p1.Equals(pshared, eps)
			}
			c++
		}
	}
	if c != 2 {
		return reject(fmt.Errorf("%w: to create a tangent arc, select a point where "+
			"two non-construction line segments join (found %d)", ErrSelection, c))
	}

	other := func(i int) EntityHandle {
		if point1[i] {
			return line[i].Point[0]
		}
		return line[i].Point[1]
	}
	hother0, hother1 := other(0), other(1)
	pother0, pother1 := s.PointPos(hother0), s.PointPos(hother1)
	v0shared := pshared.Sub(pother0)
	v1shared := pshared.Sub(pother1)
	// The cross product of the unit directions is the sine of the angle
	// between them.
	if v0shared.Hypot() < eps || v1shared.Hypot() < eps ||
		math.Abs(v0shared.Normalize().Cross(v1shared.Normalize())) < math.Sin(ed.Config.AngleEpsilon) {
		return reject(fmt.Errorf("%w: can't round the corner between parallel or zero-length lines", ErrSelection))
	}
	srcline0, srcline1 := line[0].Handle, line[1].Handle

	ed.remember()

	s.SetConstruction(line[0].Request, true)
	s.SetConstruction(line[1].Request, true)

	wn := s.Workplane.Normal()
	// The sign of vv tells whether the shorter way around is clockwise.
	v := wn.Cross(v0shared.Lift()).WithMagnitude(1)
	vv := v1shared.Lift().Dot(v)

	dot := v0shared.Normalize().Dot(v1shared.Normalize())
	theta := math.Acos(min(max(dot, -1), 1))
	r := ed.Config.TangentArcRadius / ed.Scale
	r = min(r, v0shared.Hypot()*math.Tan(theta/2)/3)
	r = min(r, v1shared.Hypot()*math.Tan(theta/2)/3)
	el := r / math.Tan(theta/2)

	rln0 := s.AddRequest(RequestLineSegment, false)
	rln1 := s.AddRequest(RequestLineSegment, false)
	rarc := s.AddRequest(RequestArcOfCircle, false)
	ln0, ln1, arc := s.EntityOf(rln0), s.EntityOf(rln1), s.EntityOf(rarc)

	s.ForcePoint(ln0.Point[0], pother0)
	s.ConstrainCoincident(ln0.Point[0], hother0)
	s.ForcePoint(ln1.Point[0], pother1)
	s.ConstrainCoincident(ln1.Point[0], hother1)

	arc0 := pshared.Translate(v0shared.WithMagnitude(el).Negate())
	arc1 := pshared.Translate(v1shared.WithMagnitude(el).Negate())

	s.ForcePoint(ln0.Point[1], arc0)
	s.ForcePoint(ln1.Point[1], arc1)

	s.Constrain(PtOnLine, ln0.Point[1], NoEntity, srcline0, NoEntity, false)
	s.Constrain(PtOnLine, ln1.Point[1], NoEntity, srcline1, NoEntity, false)

	// Slots 1 and 2 of an arc are its start and finish. Which trimmed line
	// meets which slot depends on the turn direction.
	var (
		a, b   int
		center curve.Point
	)
	off := v0shared.Lift().Cross(wn).WithMagnitude(r).XY()
	if vv < 0 {
		a, b = 1, 2
		center = arc0.Translate(off.Negate())
	} else {
		a, b = 2, 1
		center = arc0.Translate(off)
	}

	s.ForcePoint(arc.Point[0], center)
	s.ForcePoint(arc.Point[a], arc0)
	s.ForcePoint(arc.Point[b], arc1)

	s.ConstrainCoincident(arc.Point[a], ln0.Point[1])
	s.ConstrainCoincident(arc.Point[b], ln1.Point[1])

	s.Constrain(ArcLineTangent, NoEntity, NoEntity, arc.Handle, ln0.Handle, a == 2)
	s.Constrain(ArcLineTangent, NoEntity, NoEntity, arc.Handle, ln1.Handle, b == 2)

	ed.Later.GenerateAll = true
	ed.log.Info("made tangent arc",
		zap.Stringer("point", gs.Point[0]),
		zap.Stringer("arc", rarc),
		zap.Float64("radius", r))
	return nil
}
