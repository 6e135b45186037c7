package sketch

import (
	"go.uber.org/zap"
)

// Constraint relates points and curves. Which fields are meaningful depends
// on Kind; unused entity fields are [NoEntity].
type Constraint struct {
	Handle  ConstraintHandle
	Kind    ConstraintKind
	Group   Group
	PtA     EntityHandle
	PtB     EntityHandle
	EntityA EntityHandle
	EntityB EntityHandle
	// Other selects the other end of a curve, for example the finish rather
	// than the start of an arc in an ArcLineTangent constraint.
	Other bool
}

// Constrain adds a constraint to the active group.
func (s *Sketch) Constrain(kind ConstraintKind, ptA, ptB, entityA, entityB EntityHandle, other bool) ConstraintHandle {
	hc := ConstraintHandle{s.constraints.insert(Constraint{
		Kind:    kind,
		Group:   s.ActiveGroup,
		PtA:     ptA,
		PtB:     ptB,
		EntityA: entityA,
		EntityB: entityB,
		Other:   other,
	})}
	s.mustConstraint(hc).Handle = hc
	s.log.Debug("added constraint",
		zap.Stringer("constraint", hc),
		zap.Stringer("kind", kind),
		zap.Stringer("ptA", ptA),
		zap.Stringer("ptB", ptB),
		zap.Stringer("entityA", entityA),
		zap.Stringer("entityB", entityB))
	return hc
}

// ConstrainCoincident constrains two points to the same location.
func (s *Sketch) ConstrainCoincident(a, b EntityHandle) ConstraintHandle {
	return s.Constrain(PointsCoincident, a, b, NoEntity, NoEntity, false)
}

// ReplacePointInConstraints makes every coincidence constraint on oldPt
// refer to newPt instead. Other kinds of constraints keep referring to
// oldPt. It has to run before oldPt is deleted.
func (s *Sketch) ReplacePointInConstraints(oldPt, newPt EntityHandle) {
	s.replacePoint(oldPt, newPt, func(k ConstraintKind) bool { return k == PointsCoincident })
}

// ReplacePointInAllConstraints is like [Sketch.ReplacePointInConstraints]
// but rewrites the point references of constraints of every kind.
func (s *Sketch) ReplacePointInAllConstraints(oldPt, newPt EntityHandle) {
	s.replacePoint(oldPt, newPt, func(ConstraintKind) bool { return true })
}

func (s *Sketch) replacePoint(oldPt, newPt EntityHandle, match func(ConstraintKind) bool) {
	var n int
	s.constraints.each(func(_ handle, c *Constraint) {
		if !match(c.Kind) {
			return
		}
		if c.PtA == oldPt {
			c.PtA = newPt
			n++
		}
		if c.PtB == oldPt {
			c.PtB = newPt
			n++
		}
	})
	if n > 0 {
		s.log.Debug("rewired constraints",
			zap.Stringer("from", oldPt),
			zap.Stringer("to", newPt),
			zap.Int("references", n))
	}
}
