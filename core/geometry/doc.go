// Package geometry provides the small numeric helpers shared by the map
// features: polygon centroid computation for anchoring floating labels,
// and the clamping/normalization rules for size scalars and text fields.
//
// # Centroid
//
// PolygonCentroid uses the standard shoelace accumulation. Polygons whose
// signed area is below 0.001 are treated as degenerate (collinear) and the
// centroid degrades to the arithmetic mean of the vertices, which keeps the
// result finite without special-casing callers.
//
// # Normalization
//
// Two distinct size rules exist on purpose:
//   - ClampSize: clamps into an explicit [min, max] range; non-finite
//     input yields min. Used for title label sizes ([0.5, 3.0]).
//   - PointSize: any finite positive value passes through unchanged,
//     everything else defaults to 1.0. Used for point features.
package geometry
