// Package curve provides the planar geometry used by the sketch editor:
// points and vectors, line segments, polynomial and rational Bézier curves,
// exact circular arcs, nearest-point queries, splitting, and curve/curve
// intersection.
//
// # Béziers
//
// [Bezier] is the common currency. It represents lines (degree 1), rational
// quadratics (used for circular arcs, which polynomial curves can only
// approximate) and polynomial cubics. Entities of a sketch are converted to a
// [BezierList] to be intersected with each other.
//
// [CubicBez] and [QuadBez] are the polynomial special cases. They provide the
// analytic machinery (nearest point via cubic root finding, line
// intersection) that [Bezier] uses whenever a curve isn't rational.
//
// # Coordinates
//
// All coordinates are in the sketch's workplane. Angles are measured
// anticlockwise from the positive x axis with y pointing up, matching the
// right-handed orientation implied by a workplane normal of [Vec3Z].
//
// # Intersections
//
// [BezierList.AllIntersectionsWith] uses closed-form solutions for
// line/line and line/cubic pairs and recursive subdivision followed by
// Newton refinement otherwise. Results are ordered along the receiver list,
// so callers that take "the first" intersection get a deterministic answer.
package curve
