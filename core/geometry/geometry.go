package geometry

import (
	"math"
	"strings"
)

// Point is a 2D map coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// degenerateArea is the threshold below which a polygon is treated as
// collinear and the centroid falls back to the vertex mean.
const degenerateArea = 0.001

// PolygonCentroid computes the signed-area-weighted centroid of a polygon
// using the shoelace accumulation. For a single point it returns that point.
// For an empty point list ok is false (no anchor). Degenerate polygons
// (|area| < 0.001) fall back to the arithmetic mean of the vertices so the
// result stays finite.
func PolygonCentroid(points []Point) (Point, bool) {
	switch len(points) {
	case 0:
		return Point{}, false
	case 1:
		return points[0], true
	case 2:
		return vertexMean(points), true
	}

	var area, cx, cy float64
	for i := range points {
		p := points[i]
		q := points[(i+1)%len(points)]
		cross := p.X*q.Y - q.X*p.Y
		area += cross
		cx += (p.X + q.X) * cross
		cy += (p.Y + q.Y) * cross
	}
	area /= 2

	if math.Abs(area) < degenerateArea {
		return vertexMean(points), true
	}

	return Point{X: cx / (6 * area), Y: cy / (6 * area)}, true
}

func vertexMean(points []Point) Point {
	var sum Point
	for _, p := range points {
		sum.X += p.X
		sum.Y += p.Y
	}
	n := float64(len(points))
	return Point{X: sum.X / n, Y: sum.Y / n}
}

// ClampSize normalizes a scalar into [min, max]. Non-finite input always
// yields min. Title sizes use [0.5, 3.0].
func ClampSize(v, min, max float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// PointSize normalizes a point-feature size scalar. Any finite positive
// value passes unchanged; everything else defaults to 1.0.
func PointSize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 1.0
	}
	return v
}

// CleanText trims surrounding whitespace and truncates to maxLen runes.
// Whitespace-only input becomes the empty string.
func CleanText(v string, maxLen int) string {
	v = strings.TrimSpace(v)
	if maxLen > 0 {
		runes := []rune(v)
		if len(runes) > maxLen {
			v = string(runes[:maxLen])
		}
	}
	return v
}

// CleanTextDefault is CleanText with a fallback for empty results, used
// for title names ("Untitled").
func CleanTextDefault(v string, maxLen int, fallback string) string {
	cleaned := CleanText(v, maxLen)
	if cleaned == "" {
		return fallback
	}
	return cleaned
}
