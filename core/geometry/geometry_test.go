package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolygonCentroid(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		_, ok := PolygonCentroid(nil)
		assert.False(t, ok)
	})

	t.Run("SinglePoint", func(t *testing.T) {
		c, ok := PolygonCentroid([]Point{{X: 10, Y: 20}})
		assert.True(t, ok)
		assert.Equal(t, Point{X: 10, Y: 20}, c)
	})

	t.Run("Square", func(t *testing.T) {
		c, ok := PolygonCentroid([]Point{
			{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4},
		})
		assert.True(t, ok)
		assert.InDelta(t, 2.0, c.X, 1e-9)
		assert.InDelta(t, 2.0, c.Y, 1e-9)
	})

	t.Run("WindingOrderIrrelevant", func(t *testing.T) {
		cw, _ := PolygonCentroid([]Point{
			{X: 0, Y: 0}, {X: 0, Y: 4}, {X: 4, Y: 4}, {X: 4, Y: 0},
		})
		assert.InDelta(t, 2.0, cw.X, 1e-9)
		assert.InDelta(t, 2.0, cw.Y, 1e-9)
	})

	t.Run("Triangle", func(t *testing.T) {
		c, ok := PolygonCentroid([]Point{
			{X: 0, Y: 0}, {X: 6, Y: 0}, {X: 0, Y: 6},
		})
		assert.True(t, ok)
		assert.InDelta(t, 2.0, c.X, 1e-9)
		assert.InDelta(t, 2.0, c.Y, 1e-9)
	})

	t.Run("CollinearFallsBackToMean", func(t *testing.T) {
		c, ok := PolygonCentroid([]Point{
			{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3},
		})
		assert.True(t, ok)
		assert.InDelta(t, 1.5, c.X, 1e-9)
		assert.InDelta(t, 1.5, c.Y, 1e-9)
	})

	t.Run("CentroidInsideConvexHull", func(t *testing.T) {
		// Irregular convex polygon; centroid must stay within the bounding box.
		pts := []Point{{X: 1, Y: 1}, {X: 7, Y: 2}, {X: 8, Y: 6}, {X: 3, Y: 8}, {X: 0, Y: 4}}
		c, ok := PolygonCentroid(pts)
		assert.True(t, ok)
		assert.Greater(t, c.X, 0.0)
		assert.Less(t, c.X, 8.0)
		assert.Greater(t, c.Y, 1.0)
		assert.Less(t, c.Y, 8.0)
	})
}

func TestClampSize(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"BelowMin", 0.1, 0.5},
		{"AboveMax", 99, 3.0},
		{"InRange", 1.25, 1.25},
		{"NaN", math.NaN(), 0.5},
		{"PosInf", math.Inf(1), 0.5},
		{"NegInf", math.Inf(-1), 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampSize(tt.in, 0.5, 3.0))
		})
	}
}

func TestPointSize(t *testing.T) {
	assert.Equal(t, 2.5, PointSize(2.5))
	assert.Equal(t, 0.25, PointSize(0.25))
	assert.Equal(t, 1.0, PointSize(0))
	assert.Equal(t, 1.0, PointSize(-3))
	assert.Equal(t, 1.0, PointSize(math.NaN()))
	assert.Equal(t, 1.0, PointSize(math.Inf(1)))
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "hello", CleanText("  hello  ", 128))
	assert.Equal(t, "", CleanText("   ", 128))
	assert.Equal(t, "abc", CleanText("abcdef", 3))
	assert.Equal(t, "Untitled", CleanTextDefault("   ", 128, "Untitled"))
	assert.Equal(t, "The Realm", CleanTextDefault(" The Realm ", 128, "Untitled"))
}
