package kernel_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCoordinates(t *testing.T) kernel.Coordinates {
	t.Helper()
	coords, err := kernel.NewCoordinates(-23.5505, -46.6333)
	require.NoError(t, err)
	return coords
}

func TestNewAddress(t *testing.T) {
	t.Run("creates valid address", func(t *testing.T) {
		coords := validCoordinates(t)

		addr, err := kernel.NewAddress("Avenida Paulista", "1000", "Sao Paulo", "SP", "BR", "01310-100", coords)

		require.NoError(t, err)
		assert.Equal(t, "Avenida Paulista", addr.Street())
		assert.Equal(t, "1000", addr.Number())
		assert.Equal(t, "Sao Paulo", addr.City())
		assert.Equal(t, "SP", addr.State())
		assert.Equal(t, "BR", addr.Country())
		assert.Equal(t, "01310-100", addr.ZipCode())

		sameCoords, err := addr.Coordinates().IsEqual(coords)
		require.NoError(t, err)
		assert.True(t, sameCoords)
	})

	t.Run("rejects blank fields", func(t *testing.T) {
		coords := validCoordinates(t)

		testCases := []struct {
			name                                          string
			street, number, city, state, country, zipCode string
		}{
			{"blank street", "", "1", "City", "ST", "BR", "000"},
			{"blank number", "Street", "", "City", "ST", "BR", "000"},
			{"blank city", "Street", "1", "", "ST", "BR", "000"},
			{"blank state", "Street", "1", "City", "", "BR", "000"},
			{"blank country", "Street", "1", "City", "ST", "", "000"},
			{"blank zip", "Street", "1", "City", "ST", "BR", ""},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := kernel.NewAddress(tc.street, tc.number, tc.city, tc.state, tc.country, tc.zipCode, coords)
				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsRequired)
			})
		}
	})

	t.Run("rejects unconstructed coordinates", func(t *testing.T) {
		var zero kernel.Coordinates

		_, err := kernel.NewAddress("Street", "1", "City", "ST", "BR", "000", zero)

		require.Error(t, err)
	})

	t.Run("collects all validation errors", func(t *testing.T) {
		var zero kernel.Coordinates

		_, err := kernel.NewAddress("", "", "City", "ST", "BR", "000", zero)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "street")
		assert.Contains(t, err.Error(), "number")
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var addr kernel.Address

		err := addr.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrAddressIsNotConstructed, err)
	})
}

func TestAddress_IsEqual(t *testing.T) {
	coords := func(t *testing.T) kernel.Coordinates { return validCoordinates(t) }

	t.Run("equal addresses", func(t *testing.T) {
		a, _ := kernel.NewAddress("Street", "1", "City", "ST", "BR", "000", coords(t))
		b, _ := kernel.NewAddress("Street", "1", "City", "ST", "BR", "000", coords(t))

		equal, err := a.IsEqual(b)

		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("different addresses", func(t *testing.T) {
		a, _ := kernel.NewAddress("Street", "1", "City", "ST", "BR", "000", coords(t))
		b, _ := kernel.NewAddress("Street", "2", "City", "ST", "BR", "000", coords(t))

		equal, err := a.IsEqual(b)

		require.NoError(t, err)
		assert.False(t, equal)
	})
}
