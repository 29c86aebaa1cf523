package kernel_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCoordinates(t *testing.T) {
	t.Run("creates valid coordinates", func(t *testing.T) {
		coords, err := kernel.NewCoordinates(-23.5505, -46.6333)

		require.NoError(t, err)
		assert.InEpsilon(t, -23.5505, coords.Latitude(), 1e-9)
		assert.InEpsilon(t, -46.6333, coords.Longitude(), 1e-9)
		require.NoError(t, coords.Validate())
	})

	t.Run("accepts boundary values", func(t *testing.T) {
		testCases := []struct {
			name     string
			lat, lon float64
		}{
			{"north pole", 90, 0},
			{"south pole", -90, 0},
			{"antimeridian east", 0, 180},
			{"antimeridian west", 0, -180},
			{"origin", 0, 0},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := kernel.NewCoordinates(tc.lat, tc.lon)
				require.NoError(t, err)
			})
		}
	})

	t.Run("rejects out of range values", func(t *testing.T) {
		testCases := []struct {
			name     string
			lat, lon float64
		}{
			{"latitude too high", 90.1, 0},
			{"latitude too low", -90.1, 0},
			{"longitude too high", 0, 180.1},
			{"longitude too low", 0, -180.1},
			{"both invalid", 91, 181},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := kernel.NewCoordinates(tc.lat, tc.lon)
				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			})
		}
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var coords kernel.Coordinates

		err := coords.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrCoordinatesAreNotConstructed, err)
	})
}

func TestCoordinates_DistanceKmTo(t *testing.T) {
	t.Run("known city pair distance", func(t *testing.T) {
		// Sao Paulo downtown to Rio de Janeiro downtown, roughly 361 km.
		saoPaulo, _ := kernel.NewCoordinates(-23.5505, -46.6333)
		rio, _ := kernel.NewCoordinates(-22.9068, -43.1729)

		km, err := saoPaulo.DistanceKmTo(rio)

		require.NoError(t, err)
		assert.InDelta(t, 361, km, 5)
	})

	t.Run("distance to itself is zero", func(t *testing.T) {
		coords, _ := kernel.NewCoordinates(51.5074, -0.1278)

		km, err := coords.DistanceKmTo(coords)

		require.NoError(t, err)
		assert.InDelta(t, 0, km, 1e-9)
	})

	t.Run("distance is symmetric", func(t *testing.T) {
		a, _ := kernel.NewCoordinates(40.7128, -74.0060)
		b, _ := kernel.NewCoordinates(35.6762, 139.6503)

		ab, err := a.DistanceKmTo(b)
		require.NoError(t, err)

		ba, err := b.DistanceKmTo(a)
		require.NoError(t, err)

		assert.InEpsilon(t, ab, ba, 1e-12)
	})

	t.Run("crossing the antimeridian stays short", func(t *testing.T) {
		// Two points 2 degrees of longitude apart straddling the 180 meridian
		// must be ~222 km apart, not most of the way around the globe.
		east, _ := kernel.NewCoordinates(0, 179)
		west, _ := kernel.NewCoordinates(0, -179)

		km, err := east.DistanceKmTo(west)

		require.NoError(t, err)
		assert.InDelta(t, 222.4, km, 1)
	})

	t.Run("antipodal points are half the circumference away", func(t *testing.T) {
		a, _ := kernel.NewCoordinates(0, 0)
		b, _ := kernel.NewCoordinates(0, 180)

		km, err := a.DistanceKmTo(b)

		require.NoError(t, err)
		// pi * 6371.0
		assert.InDelta(t, 20015.1, km, 1)
	})

	t.Run("unconstructed coordinates fail", func(t *testing.T) {
		var zero kernel.Coordinates
		valid, _ := kernel.NewCoordinates(1, 1)

		_, err := valid.DistanceKmTo(zero)
		require.Error(t, err)

		_, err = zero.DistanceKmTo(valid)
		require.Error(t, err)
	})
}

func TestCoordinates_IsEqual(t *testing.T) {
	t.Run("equal coordinates", func(t *testing.T) {
		a, _ := kernel.NewCoordinates(10.5, 20.5)
		b, _ := kernel.NewCoordinates(10.5, 20.5)

		equal, err := a.IsEqual(b)

		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("different coordinates", func(t *testing.T) {
		a, _ := kernel.NewCoordinates(10.5, 20.5)
		b, _ := kernel.NewCoordinates(10.5, 21.5)

		equal, err := a.IsEqual(b)

		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("unconstructed comparison fails", func(t *testing.T) {
		a, _ := kernel.NewCoordinates(10.5, 20.5)
		var zero kernel.Coordinates

		_, err := a.IsEqual(zero)

		require.Error(t, err)
	})
}
