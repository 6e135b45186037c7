package sketch

import (
	"testing"

	"honnef.co/go/sketch/curve"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestSketch(t *testing.T) *Sketch {
	t.Helper()
	return NewSketch(WithLogger(zaptest.NewLogger(t)), WithWorkplane())
}

// addLine adds a line request from p0 to p1.
func addLine(s *Sketch, p0, p1 curve.Point) RequestHandle {
	hr := s.AddRequest(RequestLineSegment, false)
	e := s.EntityOf(hr)
	s.ForcePoint(e.Point[0], p0)
	s.ForcePoint(e.Point[1], p1)
	return hr
}

func TestAddRequest(t *testing.T) {
	tests := []struct {
		kind   RequestKind
		entity EntityKind
		points int
	}{
		{RequestLineSegment, EntityLineSegment, 2},
		{RequestCircle, EntityCircle, 1},
		{RequestArcOfCircle, EntityArcOfCircle, 3},
		{RequestCubic, EntityCubic, 4},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			s := newTestSketch(t)
			hr := s.AddRequest(tt.kind, true)

			r := s.Request(hr)
			require.Equal(t, hr, r.Handle)
			require.Equal(t, tt.kind, r.Kind)
			require.Equal(t, s.ActiveGroup, r.Group)
			require.True(t, r.Construction)

			e := s.Entity(r.Entity)
			require.Equal(t, r.Entity, e.Handle)
			require.Equal(t, tt.entity, e.Kind)
			require.Equal(t, hr, e.Request)
			require.Len(t, e.Points(), tt.points)
			for _, hp := range e.Points() {
				p := s.Entity(hp)
				require.Equal(t, EntityPoint, p.Kind)
				require.Equal(t, hr, p.Request)
			}
			require.Equal(t, 1, s.NumRequests())
			require.Equal(t, tt.points+1, s.NumEntities())
		})
	}
}

func TestHandlesSurviveGrowth(t *testing.T) {
	s := newTestSketch(t)
	hr := addLine(s, curve.Pt(1, 2), curve.Pt(3, 4))
	before := s.EntityOf(hr)

	for i := range 1000 {
		addLine(s, curve.Pt(float64(i), 0), curve.Pt(0, float64(i)))
	}

	require.Equal(t, before, s.EntityOf(hr))
	require.Equal(t, curve.Pt(1, 2), s.PointPos(before.Point[0]))
	require.Equal(t, curve.Pt(3, 4), s.PointPos(before.Point[1]))
}

func TestCopiesDoNotAlias(t *testing.T) {
	s := newTestSketch(t)
	hr := addLine(s, curve.Pt(0, 0), curve.Pt(1, 0))
	e := s.EntityOf(hr)
	pts := e.Points()
	pts[0] = NoEntity
	require.NotEqual(t, NoEntity, s.EntityOf(hr).Point[0])
}

func TestStaleHandle(t *testing.T) {
	s := newTestSketch(t)
	old := addLine(s, curve.Pt(0, 0), curve.Pt(1, 0))
	oldEnt := s.Request(old).Entity

	s.ClearTags()
	s.Tag(old)
	require.Equal(t, 1, s.DeleteTaggedRequests())
	require.False(t, s.HasRequest(old))
	require.False(t, s.HasEntity(oldEnt))

	// The freed slots are reused by the next request.
	fresh := s.AddRequest(RequestCubic, false)
	require.NotEqual(t, old, fresh)
	require.False(t, s.HasRequest(old))
	require.False(t, s.HasEntity(oldEnt))
	require.Panics(t, func() { s.Request(old) })
	require.Panics(t, func() { s.Entity(oldEnt) })
	require.Equal(t, RequestCubic, s.Request(fresh).Kind)
}

func TestZeroHandles(t *testing.T) {
	s := newTestSketch(t)
	require.True(t, NoEntity.IsZero())
	require.False(t, s.HasEntity(NoEntity))
	require.False(t, s.HasRequest(RequestHandle{}))
	require.Equal(t, "e-", NoEntity.String())

	hr := s.AddRequest(RequestLineSegment, false)
	require.False(t, hr.IsZero())
	require.Equal(t, "r0.1", hr.String())
}

func TestDeleteTaggedRequests(t *testing.T) {
	s := newTestSketch(t)
	a := addLine(s, curve.Pt(0, 0), curve.Pt(1, 0))
	b := addLine(s, curve.Pt(0, 1), curve.Pt(1, 1))
	c := s.AddRequest(RequestArcOfCircle, false)
	bPts := s.EntityOf(b).Points()
	s.ConstrainCoincident(bPts[0], s.PointOf(a, 0))

	s.ClearTags()
	s.Tag(b)
	s.Tag(c)
	require.True(t, s.Tagged(b))
	require.False(t, s.Tagged(a))

	require.Equal(t, 2, s.DeleteTaggedRequests())
	require.Equal(t, 1, s.NumRequests())
	require.Equal(t, 3, s.NumEntities())
	require.True(t, s.HasRequest(a))
	for _, hp := range bPts {
		require.False(t, s.HasEntity(hp))
	}
	// Constraints are not fixed up.
	require.Equal(t, 1, s.NumConstraints())

	// Tags are cleared by the deletion.
	require.Equal(t, 0, s.DeleteTaggedRequests())
	require.False(t, s.Tagged(a))
}

func TestClearTags(t *testing.T) {
	s := newTestSketch(t)
	a := s.AddRequest(RequestLineSegment, false)
	s.Tag(a)
	s.ClearTags()
	require.Equal(t, 0, s.DeleteTaggedRequests())
	require.True(t, s.HasRequest(a))
}

func TestIteration(t *testing.T) {
	s := newTestSketch(t)
	var want []RequestHandle
	for range 5 {
		want = append(want, s.AddRequest(RequestLineSegment, false))
	}
	s.Tag(want[1])
	s.Tag(want[3])
	s.DeleteTaggedRequests()
	want = []RequestHandle{want[0], want[2], want[4]}

	var got []RequestHandle
	for r := range s.Requests() {
		got = append(got, r.Handle)
	}
	require.Equal(t, want, got)

	var points int
	for e := range s.Entities() {
		if e.Kind == EntityPoint {
			points++
		}
	}
	require.Equal(t, 6, points)
}

func TestForcePointOnCurvePanics(t *testing.T) {
	s := newTestSketch(t)
	hr := s.AddRequest(RequestLineSegment, false)
	require.Panics(t, func() { s.ForcePoint(s.Request(hr).Entity, curve.Pt(1, 1)) })
	require.Panics(t, func() { s.SetRadius(s.Request(hr).Entity, 1) })
}
