// Package sketch implements the editing core of a constraint-based 2D
// sketcher.
//
// A [Sketch] holds requests, the point and curve entities they generate, and
// constraints between them, all addressed by generation-checked handles. An
// [Editor] runs structural edits on a sketch: splitting curves where they
// intersect ([Editor.SplitLinesOrCurves]) and rounding the corner between
// two lines with a tangent arc ([Editor.MakeTangentArc]).
//
// Solving the constraints is left to the caller. Operations only force the
// positions of the points they create and set [Later.GenerateAll] to ask for
// a regeneration.
package sketch
