package services_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/dc"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// destination is Sao Paulo downtown; centers below sit at known distances
// from it (roughly 10 km, 50 km, and 200 km going north).
func destinationAddress(t *testing.T) kernel.Address {
	t.Helper()
	return addressAt(t, -23.5505, -46.6333)
}

func addressAt(t *testing.T, lat, lon float64) kernel.Address {
	t.Helper()
	coords, err := kernel.NewCoordinates(lat, lon)
	require.NoError(t, err)
	addr, err := kernel.NewAddress("Rua Teste", "1", "Cidade", "SP", "BR", "00000-000", coords)
	require.NoError(t, err)
	return addr
}

func centerAt(t *testing.T, code string, lat, lon float64) dc.DistributionCenter {
	t.Helper()
	center, err := dc.NewDistributionCenter(code, "Hub "+code, addressAt(t, lat, lon))
	require.NoError(t, err)
	return center
}

func TestDistributionCenterSelector_Select(t *testing.T) {
	destination := destinationAddress(t)

	// 1 degree of latitude is ~111 km.
	near := centerAt(t, "DC-NEAR", -23.4605, -46.6333)  // ~10 km north
	middle := centerAt(t, "DC-MID", -23.1005, -46.6333) // ~50 km north
	far := centerAt(t, "DC-FAR", -21.7505, -46.6333)    // ~200 km north

	t.Run("selects the nearest candidate", func(t *testing.T) {
		selector := services.NewDistributionCenterSelector()

		selected, err := selector.Select([]dc.DistributionCenter{middle, near, far}, destination)

		require.NoError(t, err)
		assert.Equal(t, "DC-NEAR", selected.Code())
	})

	t.Run("selection is independent of input order", func(t *testing.T) {
		selector := services.NewDistributionCenterSelector()

		permutations := [][]dc.DistributionCenter{
			{near, middle, far},
			{middle, near, far},
			{far, middle, near},
			{far, near, middle},
		}

		for _, candidates := range permutations {
			selected, err := selector.Select(candidates, destination)
			require.NoError(t, err)
			assert.Equal(t, "DC-NEAR", selected.Code())
		}
	})

	t.Run("selection is deterministic", func(t *testing.T) {
		selector := services.NewDistributionCenterSelector()
		candidates := []dc.DistributionCenter{middle, near, far}

		first, err := selector.Select(candidates, destination)
		require.NoError(t, err)

		second, err := selector.Select(candidates, destination)
		require.NoError(t, err)

		assert.True(t, first.IsEqual(second))
	})

	t.Run("ties break by first seen order", func(t *testing.T) {
		selector := services.NewDistributionCenterSelector()

		// Two facilities at the identical location.
		twinA := centerAt(t, "DC-TWIN-A", -23.4605, -46.6333)
		twinB := centerAt(t, "DC-TWIN-B", -23.4605, -46.6333)

		selected, err := selector.Select([]dc.DistributionCenter{twinA, twinB}, destination)
		require.NoError(t, err)
		assert.Equal(t, "DC-TWIN-A", selected.Code())

		selected, err = selector.Select([]dc.DistributionCenter{twinB, twinA}, destination)
		require.NoError(t, err)
		assert.Equal(t, "DC-TWIN-B", selected.Code())
	})

	t.Run("empty candidate set is a caller error", func(t *testing.T) {
		selector := services.NewDistributionCenterSelector()

		_, err := selector.Select(nil, destination)

		require.Error(t, err)
		assert.Equal(t, services.ErrNoCandidates, err)
	})

	t.Run("unconstructed destination fails", func(t *testing.T) {
		selector := services.NewDistributionCenterSelector()
		var zero kernel.Address

		_, err := selector.Select([]dc.DistributionCenter{near}, zero)

		require.Error(t, err)
	})

	t.Run("unconstructed candidate fails", func(t *testing.T) {
		selector := services.NewDistributionCenterSelector()
		var zero dc.DistributionCenter

		_, err := selector.Select([]dc.DistributionCenter{zero}, destination)

		require.Error(t, err)
	})
}

func TestDistributionCenterSelector_Rank(t *testing.T) {
	destination := destinationAddress(t)

	near := centerAt(t, "DC-NEAR", -23.4605, -46.6333)
	middle := centerAt(t, "DC-MID", -23.1005, -46.6333)
	far := centerAt(t, "DC-FAR", -21.7505, -46.6333)

	t.Run("ranks nearest first", func(t *testing.T) {
		selector := services.NewDistributionCenterSelector()

		ranked, err := selector.Rank([]dc.DistributionCenter{far, near, middle}, destination)

		require.NoError(t, err)
		require.Len(t, ranked, 3)
		assert.Equal(t, "DC-NEAR", ranked[0].Code())
		assert.Equal(t, "DC-MID", ranked[1].Code())
		assert.Equal(t, "DC-FAR", ranked[2].Code())
		assert.Less(t, ranked[0].DistanceKm(), ranked[1].DistanceKm())
		assert.Less(t, ranked[1].DistanceKm(), ranked[2].DistanceKm())
	})

	t.Run("distances are plausible", func(t *testing.T) {
		selector := services.NewDistributionCenterSelector()

		ranked, err := selector.Rank([]dc.DistributionCenter{near, middle, far}, destination)

		require.NoError(t, err)
		assert.InDelta(t, 10, ranked[0].DistanceKm(), 2)
		assert.InDelta(t, 50, ranked[1].DistanceKm(), 3)
		assert.InDelta(t, 200, ranked[2].DistanceKm(), 5)
	})

	t.Run("empty input yields empty ranking", func(t *testing.T) {
		selector := services.NewDistributionCenterSelector()

		ranked, err := selector.Rank(nil, destination)

		require.NoError(t, err)
		assert.Empty(t, ranked)
	})

	t.Run("stable order for equidistant candidates", func(t *testing.T) {
		selector := services.NewDistributionCenterSelector()
		twinA := centerAt(t, "DC-TWIN-A", -23.4605, -46.6333)
		twinB := centerAt(t, "DC-TWIN-B", -23.4605, -46.6333)

		ranked, err := selector.Rank([]dc.DistributionCenter{twinA, twinB}, destination)

		require.NoError(t, err)
		assert.Equal(t, "DC-TWIN-A", ranked[0].Code())
		assert.Equal(t, "DC-TWIN-B", ranked[1].Code())
	})
}
