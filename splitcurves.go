package sketch

import (
	"fmt"
	"slices"

	"honnef.co/go/sketch/curve"

	"go.uber.org/zap"
)

// SplitLinesOrCurves splits the two selected curves where they intersect
// and joins the new curves at the cut. If the curves intersect more than
// once, the intersection that comes first along the first curve is used.
// Intersections at an end point of either curve are ignored, since cutting
// there would leave a degenerate piece.
func (ed *Editor) SplitLinesOrCurves(sel Selection) error {
	s := ed.Sketch
	if s.Workplane == nil {
		err := fmt.Errorf("%w: must be sketching in workplane to split", ErrNotInWorkplane)
		ed.log.Debug("split rejected", zap.Error(err))
		return err
	}

	gs := s.GroupSelection(sel)
	if !(gs.N == 2 && gs.LineSegments+gs.CirclesOrArcs+gs.Cubics == 2) || gs.Entity[0] == gs.Entity[1] {
		err := fmt.Errorf("%w: select two entities that intersect each other "+
			"(e.g. two lines or two circles or a circle and a line)", ErrSelection)
		ed.log.Debug("split rejected", zap.Error(err))
		return err
	}

	ha, hb := gs.Entity[0], gs.Entity[1]
	for _, he := range []EntityHandle{ha, hb} {
		if !s.finite(he) {
			err := fmt.Errorf("%w: %s", ErrNonFinite, he)
			ed.log.Debug("split rejected", zap.Error(err))
			return err
		}
	}
	sbla := s.BezierCurves(ha)
	sblb := s.BezierCurves(hb)
	all := sbla.AllIntersectionsWith(sblb, ed.Config.IntersectionTolerance)
	ends := append(s.Endpoints(ha), s.Endpoints(hb)...)
	var inters []curve.Intersection
	for _, x := range all {
		if !slices.ContainsFunc(ends, func(p curve.Point) bool {
			return p.Equals(x.Point, ed.Config.LengthEpsilon)
		}) {
			inters = append(inters, x)
		}
	}
	if len(inters) == 0 {
		ed.log.Debug("split rejected",
			zap.Stringer("a", ha),
			zap.Stringer("b", hb),
			zap.Int("ignored", len(all)),
			zap.Error(ErrNoIntersection))
		return ErrNoIntersection
	}

	ed.remember()
	pi := inters[0].Point
	hia, err := ed.splitEntity(ha, pi)
	if err != nil {
		return err
	}
	hib, err := ed.splitEntity(hb, pi)
	if err != nil {
		return err
	}
	if !hia.IsZero() && !hib.IsZero() {
		s.ConstrainCoincident(hia, hib)
	}
	ed.Later.GenerateAll = true

	ed.log.Info("split curves at intersection",
		zap.Stringer("a", ha),
		zap.Stringer("b", hb),
		zap.Stringer("at", pi),
		zap.Int("intersections", len(inters)))
	return nil
}
