package sketch

import (
	"fmt"

	"honnef.co/go/sketch/curve"

	"go.uber.org/zap"
)

// SplitEntity replaces the curve entity he by two curves of the same kind
// that meet at pinter, which should lie on the curve. A full circle becomes
// a single closed arc instead. Coincidence constraints on the original end
// points move to the corresponding end points of the new curves, and the new
// curves are constrained to meet at the cut.
//
// The request that generated he is deleted unless it is marked as
// construction. SplitEntity returns the new point at the cut.
func (ed *Editor) SplitEntity(he EntityHandle, pinter curve.Point) (EntityHandle, error) {
	if err := ed.checkSplittable(he, pinter); err != nil {
		ed.log.Debug("split rejected", zap.Stringer("entity", he), zap.Error(err))
		return NoEntity, err
	}
	ed.remember()
	hp, err := ed.splitEntity(he, pinter)
	if err != nil {
		return NoEntity, err
	}
	ed.Later.GenerateAll = true
	ed.log.Info("split entity", zap.Stringer("entity", he), zap.Stringer("at", hp))
	return hp, nil
}

func (ed *Editor) checkSplittable(he EntityHandle, pinter curve.Point) error {
	e := ed.Sketch.Entity(he)
	if _, ok := e.Kind.RequestKind(); !ok {
		return fmt.Errorf("%w: %s is a %s", ErrUnsupportedEntity, he, e.Kind)
	}
	if !pinter.IsFinite() {
		return fmt.Errorf("%w: split point %s", ErrNonFinite, pinter)
	}
	if !ed.Sketch.finite(he) {
		return fmt.Errorf("%w: %s", ErrNonFinite, he)
	}
	return nil
}

func (ed *Editor) splitEntity(he EntityHandle, pinter curve.Point) (EntityHandle, error) {
	// e is a copy and stays valid while requests are added below.
	e := ed.Sketch.Entity(he)
	reqKind, ok := e.Kind.RequestKind()
	if !ok {
		return NoEntity, fmt.Errorf("%w: %s is a %s", ErrUnsupportedEntity, he, e.Kind)
	}

	var hp EntityHandle
	switch e.Kind {
	case EntityLineSegment:
		hp = ed.splitLine(e, pinter)
	case EntityCircle:
		hp = ed.splitCircle(e, pinter)
	case EntityArcOfCircle:
		hp = ed.splitArc(e, pinter)
	case EntityCubic:
		hp = ed.splitCubic(e, pinter)
	default:
		panic(fmt.Sprintf("unreachable: %s", e.Kind))
	}

	ed.deleteOriginal(he, reqKind)
	ed.log.Debug("split",
		zap.Stringer("entity", he),
		zap.Stringer("kind", e.Kind),
		zap.Stringer("pinter", pinter),
		zap.Stringer("point", hp))
	return hp, nil
}

// deleteOriginal deletes the first request of the active group that
// generates he, unless it is construction geometry.
func (ed *Editor) deleteOriginal(he EntityHandle, kind RequestKind) {
	s := ed.Sketch
	s.ClearTags()
	for r := range s.Requests() {
		if r.Group != s.ActiveGroup || r.Kind != kind {
			continue
		}
		if r.Entity == he && !r.Construction {
			s.Tag(r.Handle)
			break
		}
	}
	s.DeleteTaggedRequests()
}

func (ed *Editor) splitLine(e Entity, pinter curve.Point) EntityHandle {
	s := ed.Sketch
	hep0, hep1 := e.Point[0], e.Point[1]
	p0, p1 := s.PointPos(hep0), s.PointPos(hep1)

	r0i := s.AddRequest(RequestLineSegment, false)
	ri1 := s.AddRequest(RequestLineSegment, false)
	e0i, ei1 := s.EntityOf(r0i), s.EntityOf(ri1)

	s.ForcePoint(e0i.Point[0], p0)
	s.ForcePoint(e0i.Point[1], pinter)
	s.ForcePoint(ei1.Point[0], pinter)
	s.ForcePoint(ei1.Point[1], p1)

	ed.rewire(hep0, e0i.Point[0])
	ed.rewire(hep1, ei1.Point[1])
	s.ConstrainCoincident(e0i.Point[1], ei1.Point[0])
	return e0i.Point[1]
}

// splitCircle turns a full circle into an arc that starts and ends at
// pinter.
func (ed *Editor) splitCircle(e Entity, pinter curve.Point) EntityHandle {
	s := ed.Sketch
	center := s.PointPos(e.Point[0])

	hr := s.AddRequest(RequestArcOfCircle, false)
	arc := s.EntityOf(hr)

	s.ForcePoint(arc.Point[0], center)
	s.ForcePoint(arc.Point[1], pinter)
	s.ForcePoint(arc.Point[2], pinter)

	s.ConstrainCoincident(arc.Point[1], arc.Point[2])
	return arc.Point[1]
}

func (ed *Editor) splitArc(e Entity, pinter curve.Point) EntityHandle {
	s := ed.Sketch
	hc, hs, hf := e.Point[0], e.Point[1], e.Point[2]
	center, start, finish := s.PointPos(hc), s.PointPos(hs), s.PointPos(hf)

	hr0 := s.AddRequest(RequestArcOfCircle, false)
	hr1 := s.AddRequest(RequestArcOfCircle, false)
	arc0, arc1 := s.EntityOf(hr0), s.EntityOf(hr1)

	s.ForcePoint(arc0.Point[0], center)
	s.ForcePoint(arc0.Point[1], start)
	s.ForcePoint(arc0.Point[2], pinter)

	s.ForcePoint(arc1.Point[0], center)
	s.ForcePoint(arc1.Point[1], pinter)
	s.ForcePoint(arc1.Point[2], finish)

	ed.rewire(hs, arc0.Point[1])
	ed.rewire(hf, arc1.Point[2])
	s.ConstrainCoincident(arc0.Point[2], arc1.Point[1])
	return arc0.Point[2]
}

// splitCubic cuts the cubic at the parameter of the point closest to pinter.
func (ed *Editor) splitCubic(e Entity, pinter curve.Point) EntityHandle {
	s := ed.Sketch
	var p [4]curve.Point
	for i, hp := range e.Points() {
		p[i] = s.PointPos(hp)
	}
	b01 := curve.BezierFrom(p[0], p[1], p[2], p[3])
	t := b01.ClosestPointTo(pinter, true)
	b0i, bi1 := b01.SplitAt(t)

	r0i := s.AddRequest(RequestCubic, false)
	ri1 := s.AddRequest(RequestCubic, false)
	e0i, ei1 := s.EntityOf(r0i), s.EntityOf(ri1)

	for i := range 4 {
		s.ForcePoint(e0i.Point[i], b0i.P[i])
		s.ForcePoint(ei1.Point[i], bi1.P[i])
	}

	ed.rewire(e.Point[0], e0i.Point[0])
	ed.rewire(e.Point[3], ei1.Point[3])
	s.ConstrainCoincident(e0i.Point[3], ei1.Point[0])
	return e0i.Point[3]
}
