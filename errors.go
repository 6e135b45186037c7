package sketch

import (
	"errors"
)

var (
	// ErrNotInWorkplane is returned by operations that need an active
	// workplane.
	ErrNotInWorkplane = errors.New("not sketching in a workplane")
	// ErrSelection is returned when the selection doesn't have the shape an
	// operation needs.
	ErrSelection = errors.New("invalid selection")
	// ErrUnsupportedEntity is returned when asked to split something other
	// than a line, circle, arc or cubic.
	ErrUnsupportedEntity = errors.New("can't split entity; lines, circles, arcs or cubics only")
	// ErrNoIntersection is returned when two curves to be split don't meet.
	ErrNoIntersection = errors.New("can't split; no intersection found")
	// ErrNonFinite is returned when a split point or the geometry being
	// split has an infinite or NaN coordinate.
	ErrNonFinite = errors.New("non-finite coordinate")
)
