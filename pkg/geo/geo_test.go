package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name     string
		a        Coordinate
		b        Coordinate
		expected float64
		delta    float64
	}{
		{
			name:     "same point",
			a:        Coordinate{Latitude: 52.52, Longitude: 13.405},
			b:        Coordinate{Latitude: 52.52, Longitude: 13.405},
			expected: 0,
			delta:    0.001,
		},
		{
			name: "one degree of latitude at the equator",
			a:    Coordinate{Latitude: 0, Longitude: 0},
			b:    Coordinate{Latitude: 1, Longitude: 0},
			// 一度纬线约 111.19 km
			expected: 111195,
			delta:    100,
		},
		{
			name:     "berlin to hamburg",
			a:        Coordinate{Latitude: 52.5200, Longitude: 13.4050},
			b:        Coordinate{Latitude: 53.5511, Longitude: 9.9937},
			expected: 255600,
			delta:    2000,
		},
		{
			name:     "short distance within a site",
			a:        Coordinate{Latitude: 48.85837, Longitude: 2.294481},
			b:        Coordinate{Latitude: 48.85937, Longitude: 2.294481},
			expected: 111.2,
			delta:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Distance(tt.a, tt.b), tt.delta)

			// 对称性
			assert.InDelta(t, Distance(tt.a, tt.b), Distance(tt.b, tt.a), 0.0001)
		})
	}
}

func TestIsOutside(t *testing.T) {
	fence := &Fence{
		Center:       Coordinate{Latitude: 48.8584, Longitude: 2.2945},
		RadiusMeters: 200,
	}

	inside := &Coordinate{Latitude: 48.8590, Longitude: 2.2945}   // ~67m
	outside := &Coordinate{Latitude: 48.8620, Longitude: 2.2945}  // ~400m

	assert.False(t, IsOutside(fence, inside))
	assert.True(t, IsOutside(fence, outside))
}

func TestIsOutsideMissingData(t *testing.T) {
	fence := &Fence{
		Center:       Coordinate{Latitude: 10, Longitude: 10},
		RadiusMeters: 50,
	}
	point := &Coordinate{Latitude: 20, Longitude: 20}

	// 缺围栏或缺坐标都不算越界
	assert.False(t, IsOutside(nil, point))
	assert.False(t, IsOutside(fence, nil))
	assert.False(t, IsOutside(nil, nil))
}

func TestIsOutsideBoundary(t *testing.T) {
	fence := &Fence{
		Center:       Coordinate{Latitude: 0, Longitude: 0},
		RadiusMeters: 111195,
	}

	// 正好压在半径上不算越界（> 才越界）
	onEdge := &Coordinate{Latitude: 1, Longitude: 0}
	d := Distance(fence.Center, *onEdge)
	fence.RadiusMeters = d
	assert.False(t, IsOutside(fence, onEdge))

	fence.RadiusMeters = d - 1
	assert.True(t, IsOutside(fence, onEdge))
}
