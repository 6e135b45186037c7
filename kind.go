package sketch

import (
	"fmt"
)

// RequestKind is the kind of construction a [Request] asks for.
type RequestKind int

const (
	RequestLineSegment RequestKind = iota + 1
	RequestCircle
	RequestArcOfCircle
	RequestCubic
)

func (k RequestKind) String() string {
	switch k {
	case RequestLineSegment:
		return "line"
	case RequestCircle:
		return "circle"
	case RequestArcOfCircle:
		return "arc"
	case RequestCubic:
		return "cubic"
	default:
		return fmt.Sprintf("RequestKind(%d)", int(k))
	}
}

// ParseRequestKind is the inverse of [RequestKind.String].
func ParseRequestKind(s string) (RequestKind, error) {
	for k := RequestLineSegment; k <= RequestCubic; k++ {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown request kind %q", s)
}

// EntityKind returns the kind of the curve entity generated by requests of
// kind k.
func (k RequestKind) EntityKind() EntityKind {
	switch k {
	case RequestLineSegment:
		return EntityLineSegment
	case RequestCircle:
		return EntityCircle
	case RequestArcOfCircle:
		return EntityArcOfCircle
	case RequestCubic:
		return EntityCubic
	default:
		panic(fmt.Sprintf("unreachable: %s", k))
	}
}

// EntityKind is the geometric kind of an [Entity].
type EntityKind int

const (
	EntityPoint EntityKind = iota + 1
	EntityLineSegment
	EntityCircle
	EntityArcOfCircle
	EntityCubic
)

func (k EntityKind) String() string {
	switch k {
	case EntityPoint:
		return "point"
	case EntityLineSegment:
		return "line"
	case EntityCircle:
		return "circle"
	case EntityArcOfCircle:
		return "arc"
	case EntityCubic:
		return "cubic"
	default:
		return fmt.Sprintf("EntityKind(%d)", int(k))
	}
}

// NumPoints returns the number of point entities that make up an entity of
// kind k. The meaning of each slot is fixed by the kind:
//
//   - line: start, end
//   - circle: center
//   - arc: center, start, finish
//   - cubic: the four control points
//
// Points themselves have no constituent points.
func (k EntityKind) NumPoints() int {
	switch k {
	case EntityPoint:
		return 0
	case EntityLineSegment:
		return 2
	case EntityCircle:
		return 1
	case EntityArcOfCircle:
		return 3
	case EntityCubic:
		return 4
	default:
		panic(fmt.Sprintf("unreachable: %s", k))
	}
}

// IsCircle reports whether k is a full circle or an arc of one.
func (k EntityKind) IsCircle() bool {
	return k == EntityCircle || k == EntityArcOfCircle
}

// RequestKind returns the request kind that generates curves of kind k. It
// returns false for points, which are never generated on their own.
func (k EntityKind) RequestKind() (RequestKind, bool) {
	switch k {
	case EntityLineSegment:
		return RequestLineSegment, true
	case EntityCircle:
		return RequestCircle, true
	case EntityArcOfCircle:
		return RequestArcOfCircle, true
	case EntityCubic:
		return RequestCubic, true
	case EntityPoint:
		return 0, false
	default:
		panic(fmt.Sprintf("unreachable: %s", k))
	}
}

// ConstraintKind is the relation a [Constraint] asserts.
type ConstraintKind int

const (
	// PointsCoincident: PtA and PtB are at the same location.
	PointsCoincident ConstraintKind = iota + 1
	// PtOnLine: PtA lies on the line EntityA.
	PtOnLine
	// ArcLineTangent: the arc EntityA is tangent to the line EntityB at the
	// arc's start, or at its finish if Other is set.
	ArcLineTangent
)

func (k ConstraintKind) String() string {
	switch k {
	case PointsCoincident:
		return "points-coincident"
	case PtOnLine:
		return "pt-on-line"
	case ArcLineTangent:
		return "arc-line-tangent"
	default:
		return fmt.Sprintf("ConstraintKind(%d)", int(k))
	}
}

// ParseConstraintKind is the inverse of [ConstraintKind.String].
func ParseConstraintKind(s string) (ConstraintKind, error) {
	for k := PointsCoincident; k <= ArcLineTangent; k++ {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown constraint kind %q", s)
}
