package sketch

import (
	"fmt"
)

// Selection is the set of items the user picked.
type Selection struct {
	Entities    []EntityHandle
	Constraints []ConstraintHandle
}

// GroupedSelection classifies a [Selection].
type GroupedSelection struct {
	// N is the number of selected items, constraints included.
	N             int
	Points        int
	LineSegments  int
	CirclesOrArcs int
	Cubics        int
	Constraints   int

	// Entity holds the selected non-point entities, Point the selected
	// points, both in selection order.
	Entity []EntityHandle
	Point  []EntityHandle
}

// GroupSelection counts the selected items by kind.
func (s *Sketch) GroupSelection(sel Selection) GroupedSelection {
	var gs GroupedSelection
	for _, h := range sel.Entities {
		e := s.Entity(h)
		gs.N++
		switch e.Kind {
		case EntityPoint:
			gs.Points++
			gs.Point = append(gs.Point, h)
			continue
		case EntityLineSegment:
			gs.LineSegments++
		case EntityCircle, EntityArcOfCircle:
			gs.CirclesOrArcs++
		case EntityCubic:
			gs.Cubics++
		default:
			panic(fmt.Sprintf("unreachable: %s", e.Kind))
		}
		gs.Entity = append(gs.Entity, h)
	}
	for _, h := range sel.Constraints {
		s.mustConstraint(h)
		gs.N++
		gs.Constraints++
	}
	return gs
}
