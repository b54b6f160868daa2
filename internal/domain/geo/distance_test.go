//go:build unit

package geo_test

import (
	"testing"

	"order-fulfillment/internal/domain/geo"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm(t *testing.T) {
	losAngeles := geo.NewCoordinate(33.9425, -118.408056)
	newYork := geo.NewCoordinate(40.639722, -73.778889)
	paris := geo.NewCoordinate(49.009722, 2.547778)

	testCases := []struct {
		name     string
		a, b     geo.Coordinate
		expected float64
		delta    float64
	}{
		{name: "same point", a: paris, b: paris, expected: 0, delta: 1e-9},
		{name: "LAX to JFK", a: losAngeles, b: newYork, expected: 3975, delta: 25},
		{name: "JFK to CDG", a: newYork, b: paris, expected: 5835, delta: 25},
		{name: "quarter meridian", a: geo.NewCoordinate(0, 0), b: geo.NewCoordinate(90, 0), expected: geo.EarthRadiusKm * 3.141592653589793 / 2, delta: 1e-6},
		{name: "antipodal", a: geo.NewCoordinate(0, 0), b: geo.NewCoordinate(0, 180), expected: geo.EarthRadiusKm * 3.141592653589793, delta: 1e-6},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := geo.DistanceKm(tc.a, tc.b)
			assert.InDelta(t, tc.expected, actual, tc.delta)
			assert.GreaterOrEqual(t, actual, 0.0)
		})
	}

	t.Run("symmetric", func(t *testing.T) {
		assert.InDelta(t, geo.DistanceKm(losAngeles, paris), geo.DistanceKm(paris, losAngeles), 1e-9)
	})
}
