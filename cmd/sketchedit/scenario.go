package main

import (
	"fmt"
	"os"

	"honnef.co/go/sketch"
	"honnef.co/go/sketch/curve"

	"gopkg.in/yaml.v3"
)

// scenario is the YAML description of a sketch. Requests and their points
// are referred to by index.
type scenario struct {
	Workplane   bool                 `yaml:"workplane"`
	Requests    []scenarioRequest    `yaml:"requests"`
	Constraints []scenarioConstraint `yaml:"constraints,omitempty"`
}

type scenarioRequest struct {
	Kind         string       `yaml:"kind"`
	Construction bool         `yaml:"construction,omitempty"`
	Points       [][2]float64 `yaml:"points,flow"`
	Radius       float64      `yaml:"radius,omitempty"`
}

// scenarioConstraint refers to points as [request, point] pairs and to
// curves by request index. An unset or deleted point is [-1, -1], and an
// unset or deleted curve is -1, so that a second reference keeps its slot.
type scenarioConstraint struct {
	Kind     string   `yaml:"kind"`
	Points   [][2]int `yaml:"points,omitempty,flow"`
	Entities []int    `yaml:"entities,omitempty,flow"`
	Other    bool     `yaml:"other,omitempty"`
}

var noPoint = [2]int{-1, -1}

const noEntity = -1

func readScenario(path string) (*scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	var sc scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	return &sc, nil
}

// build creates the sketch described by sc. It returns the handles of the
// requests in scenario order.
func (sc *scenario) build(opts ...sketch.Option) (*sketch.Sketch, []sketch.RequestHandle, error) {
	if sc.Workplane {
		opts = append(opts, sketch.WithWorkplane())
	}
	sk := sketch.NewSketch(opts...)

	reqs := make([]sketch.RequestHandle, len(sc.Requests))
	for i, sr := range sc.Requests {
		kind, err := sketch.ParseRequestKind(sr.Kind)
		if err != nil {
			return nil, nil, fmt.Errorf("request %d: %w", i, err)
		}
		if want := kind.EntityKind().NumPoints(); len(sr.Points) != want {
			return nil, nil, fmt.Errorf("request %d: %s needs %d points, got %d", i, kind, want, len(sr.Points))
		}
		hr := sk.AddRequest(kind, sr.Construction)
		e := sk.EntityOf(hr)
		for j, p := range sr.Points {
			sk.ForcePoint(e.Point[j], curve.Pt(p[0], p[1]))
		}
		if kind == sketch.RequestCircle {
			sk.SetRadius(e.Handle, sr.Radius)
		}
		reqs[i] = hr
	}

	point := func(ref [2]int) (sketch.EntityHandle, error) {
		if ref == noPoint {
			return sketch.NoEntity, nil
		}
		if ref[0] < 0 || ref[0] >= len(reqs) {
			return sketch.NoEntity, fmt.Errorf("no request %d", ref[0])
		}
		pts := sk.EntityOf(reqs[ref[0]]).Points()
		if ref[1] < 0 || ref[1] >= len(pts) {
			return sketch.NoEntity, fmt.Errorf("request %d has no point %d", ref[0], ref[1])
		}
		return pts[ref[1]], nil
	}
	for i, scn := range sc.Constraints {
		kind, err := sketch.ParseConstraintKind(scn.Kind)
		if err != nil {
			return nil, nil, fmt.Errorf("constraint %d: %w", i, err)
		}
		if len(scn.Points) > 2 || len(scn.Entities) > 2 {
			return nil, nil, fmt.Errorf("constraint %d: too many references", i)
		}
		var pts, ents [2]sketch.EntityHandle
		for j, ref := range scn.Points {
			if pts[j], err = point(ref); err != nil {
				return nil, nil, fmt.Errorf("constraint %d: %w", i, err)
			}
		}
		for j, ri := range scn.Entities {
			if ri == noEntity {
				continue
			}
			if ri < 0 || ri >= len(reqs) {
				return nil, nil, fmt.Errorf("constraint %d: no request %d", i, ri)
			}
			ents[j] = sk.EntityOf(reqs[ri]).Handle
		}
		sk.Constrain(kind, pts[0], pts[1], ents[0], ents[1], scn.Other)
	}
	return sk, reqs, nil
}

// dumpScenario describes the current state of sk. Requests are numbered in
// slot order.
func dumpScenario(sk *sketch.Sketch) *scenario {
	sc := &scenario{Workplane: sk.Workplane != nil}
	reqIndex := map[sketch.EntityHandle]int{}
	pointRef := map[sketch.EntityHandle][2]int{}
	for r := range sk.Requests() {
		i := len(sc.Requests)
		e := sk.Entity(r.Entity)
		sr := scenarioRequest{
			Kind:         r.Kind.String(),
			Construction: r.Construction,
			Radius:       e.Radius,
		}
		for j, hp := range e.Points() {
			p := sk.PointPos(hp)
			sr.Points = append(sr.Points, [2]float64{p.X, p.Y})
			pointRef[hp] = [2]int{i, j}
		}
		reqIndex[e.Handle] = i
		sc.Requests = append(sc.Requests, sr)
	}

	for c := range sk.Constraints() {
		scn := scenarioConstraint{Kind: c.Kind.String(), Other: c.Other}
		if !c.PtA.IsZero() || !c.PtB.IsZero() {
			for _, hp := range []sketch.EntityHandle{c.PtA, c.PtB} {
				ref, ok := pointRef[hp]
				if !ok {
					ref = noPoint
				}
				scn.Points = append(scn.Points, ref)
			}
		}
		if !c.EntityA.IsZero() || !c.EntityB.IsZero() {
			for _, he := range []sketch.EntityHandle{c.EntityA, c.EntityB} {
				ri, ok := reqIndex[he]
				if !ok {
					ri = noEntity
				}
				scn.Entities = append(scn.Entities, ri)
			}
		}
		sc.Constraints = append(sc.Constraints, scn)
	}
	return sc
}
