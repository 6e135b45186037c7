package sketch

import (
	"fmt"
	"iter"

	"honnef.co/go/sketch/curve"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Group identifies a construction group. The store only compares groups for
// equality.
type Group uint32

// Workplane is the plane new geometry is sketched in. Coordinates of points
// are expressed in the workplane's basis.
type Workplane struct {
	Group Group
}

// Normal returns the workplane's normal in its own basis.
func (wp *Workplane) Normal() curve.Vec3 { return curve.Vec3Z }

// Request is a construction directive that generates one curve entity.
type Request struct {
	Handle       RequestHandle
	Kind         RequestKind
	Group        Group
	Construction bool
	// Entity is the curve entity generated by the request.
	Entity EntityHandle
}

// Entity is a point or a curve.
type Entity struct {
	Handle  EntityHandle
	Kind    EntityKind
	Group   Group
	Request RequestHandle
	// Point holds the constituent point entities. Only the first
	// Kind.NumPoints() entries are used.
	Point [4]EntityHandle
	// Pos is the location of a point entity.
	Pos curve.Point
	// Radius is the radius of a circle entity.
	Radius float64
}

// Points returns the constituent point entities of e.
func (e Entity) Points() []EntityHandle {
	return e.Point[:e.Kind.NumPoints()]
}

// Sketch stores the requests, entities and constraints of one document.
//
// Records are only reachable through handles. The accessors return copies,
// so nothing obtained from a Sketch can observe or corrupt the store after a
// later mutation.
type Sketch struct {
	ID          uuid.UUID
	ActiveGroup Group
	// Workplane is the active workplane, or nil when sketching in 3D.
	Workplane *Workplane

	requests    arena[Request]
	entities    arena[Entity]
	constraints arena[Constraint]
	// tags holds the slot indices of tagged requests.
	tags *roaring.Bitmap

	log *zap.Logger
}

// Option configures a [Sketch].
type Option func(*Sketch)

// WithLogger sets the logger of the sketch.
func WithLogger(log *zap.Logger) Option {
	return func(s *Sketch) {
		if log != nil {
			s.log = log
		}
	}
}

// WithWorkplane makes the sketch start out locked in a workplane of the
// active group.
func WithWorkplane() Option {
	return func(s *Sketch) {
		s.Workplane = &Workplane{Group: s.ActiveGroup}
	}
}

// WithGroup sets the active group.
func WithGroup(g Group) Option {
	return func(s *Sketch) {
		s.ActiveGroup = g
		if s.Workplane != nil {
			s.Workplane.Group = g
		}
	}
}

// NewSketch returns an empty sketch.
func NewSketch(opts ...Option) *Sketch {
	s := &Sketch{
		ID:          uuid.New(),
		ActiveGroup: 1,
		tags:        roaring.New(),
		log:         zap.NewNop(),
	}
	for _, o := range opts {
		o(s)
	}
	s.log = s.log.With(zap.Stringer("sketch", s.ID))
	return s
}

// Logger returns the logger of the sketch.
func (s *Sketch) Logger() *zap.Logger { return s.log }

// AddRequest adds a request of the given kind to the active group, together
// with its curve entity and the curve's point entities. The points start
// out at the origin.
func (s *Sketch) AddRequest(kind RequestKind, construction bool) RequestHandle {
	ek := kind.EntityKind()
	hr := RequestHandle{s.requests.insert(Request{
		Kind:         kind,
		Group:        s.ActiveGroup,
		Construction: construction,
	})}

	curveEnt := Entity{
		Kind:    ek,
		Group:   s.ActiveGroup,
		Request: hr,
	}
	for i := range ek.NumPoints() {
		hp := EntityHandle{s.entities.insert(Entity{
			Kind:    EntityPoint,
			Group:   s.ActiveGroup,
			Request: hr,
		})}
		s.mustEntity(hp).Handle = hp
		curveEnt.Point[i] = hp
	}
	he := EntityHandle{s.entities.insert(curveEnt)}
	s.mustEntity(he).Handle = he

	r := s.mustRequest(hr)
	r.Handle = hr
	r.Entity = he

	s.log.Debug("added request",
		zap.Stringer("request", hr),
		zap.Stringer("kind", kind),
		zap.Stringer("entity", he),
		zap.Bool("construction", construction))
	return hr
}

func (s *Sketch) mustRequest(h RequestHandle) *Request {
	r, ok := s.requests.get(h.h)
	if !ok {
		panic(fmt.Sprintf("dangling request handle %s", h))
	}
	return r
}

func (s *Sketch) mustEntity(h EntityHandle) *Entity {
	e, ok := s.entities.get(h.h)
	if !ok {
		panic(fmt.Sprintf("dangling entity handle %s", h))
	}
	return e
}

func (s *Sketch) mustConstraint(h ConstraintHandle) *Constraint {
	c, ok := s.constraints.get(h.h)
	if !ok {
		panic(fmt.Sprintf("dangling constraint handle %s", h))
	}
	return c
}

// Request returns the request h refers to. It panics if h is dangling.
func (s *Sketch) Request(h RequestHandle) Request { return *s.mustRequest(h) }

// Entity returns the entity h refers to. It panics if h is dangling.
func (s *Sketch) Entity(h EntityHandle) Entity { return *s.mustEntity(h) }

// Constraint returns the constraint h refers to. It panics if h is dangling.
func (s *Sketch) Constraint(h ConstraintHandle) Constraint { return *s.mustConstraint(h) }

func (s *Sketch) HasRequest(h RequestHandle) bool {
	_, ok := s.requests.get(h.h)
	return ok
}

func (s *Sketch) HasEntity(h EntityHandle) bool {
	_, ok := s.entities.get(h.h)
	return ok
}

func (s *Sketch) HasConstraint(h ConstraintHandle) bool {
	_, ok := s.constraints.get(h.h)
	return ok
}

// EntityOf returns the curve entity generated by the request.
func (s *Sketch) EntityOf(h RequestHandle) Entity {
	return s.Entity(s.mustRequest(h).Entity)
}

// PointOf returns the i'th constituent point of the curve entity generated by
// the request.
func (s *Sketch) PointOf(h RequestHandle, i int) EntityHandle {
	return s.EntityOf(h).Points()[i]
}

// PointPos returns the location of a point entity.
func (s *Sketch) PointPos(h EntityHandle) curve.Point {
	e := s.mustEntity(h)
	if e.Kind != EntityPoint {
		panic(fmt.Sprintf("%s is a %s, not a point", h, e.Kind))
	}
	return e.Pos
}

// ForcePoint moves a point entity to p, bypassing the solver.
func (s *Sketch) ForcePoint(h EntityHandle, p curve.Point) {
	e := s.mustEntity(h)
	if e.Kind != EntityPoint {
		panic(fmt.Sprintf("%s is a %s, not a point", h, e.Kind))
	}
	e.Pos = p
}

// SetRadius sets the radius of a circle entity.
func (s *Sketch) SetRadius(h EntityHandle, r float64) {
	e := s.mustEntity(h)
	if e.Kind != EntityCircle {
		panic(fmt.Sprintf("%s is a %s, not a circle", h, e.Kind))
	}
	e.Radius = r
}

func (s *Sketch) SetConstruction(h RequestHandle, v bool) {
	s.mustRequest(h).Construction = v
}

// ClearTags untags all requests.
func (s *Sketch) ClearTags() { s.tags.Clear() }

// Tag marks the request for deletion by [Sketch.DeleteTaggedRequests].
func (s *Sketch) Tag(h RequestHandle) {
	s.mustRequest(h)
	s.tags.Add(h.h.index)
}

func (s *Sketch) Tagged(h RequestHandle) bool {
	return s.HasRequest(h) && s.tags.Contains(h.h.index)
}

// DeleteTaggedRequests deletes every tagged request along with the entities
// it generated, clears the tags and returns the number of deleted requests.
// Constraints referring to the deleted entities are left alone.
func (s *Sketch) DeleteTaggedRequests() int {
	var n int
	it := s.tags.Iterator()
	for it.HasNext() {
		idx := it.Next()
		if int(idx) >= len(s.requests.slots) || !s.requests.slots[idx].live {
			continue
		}
		sl := s.requests.slots[idx]
		hr := RequestHandle{handle{index: idx, gen: sl.gen}}
		he := sl.val.Entity
		for _, hp := range s.Entity(he).Points() {
			s.entities.remove(hp.h)
		}
		s.entities.remove(he.h)
		s.requests.remove(hr.h)
		n++
		s.log.Debug("deleted request", zap.Stringer("request", hr), zap.Stringer("entity", he))
	}
	s.tags.Clear()
	return n
}

// Requests yields all requests in creation-slot order.
func (s *Sketch) Requests() iter.Seq[Request] {
	return values(s.requests.all())
}

// Entities yields all entities, points included.
func (s *Sketch) Entities() iter.Seq[Entity] {
	return values(s.entities.all())
}

func (s *Sketch) Constraints() iter.Seq[Constraint] {
	return values(s.constraints.all())
}

func (s *Sketch) NumRequests() int    { return s.requests.len() }
func (s *Sketch) NumEntities() int    { return s.entities.len() }
func (s *Sketch) NumConstraints() int { return s.constraints.len() }

func values[T any](seq iter.Seq2[handle, T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range seq {
			if !yield(v) {
				return
			}
		}
	}
}
