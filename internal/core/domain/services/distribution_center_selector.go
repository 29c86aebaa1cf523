package services

import (
	"errors"
	"math"
	"sort"

	"fulfillment/internal/core/domain/model/dc"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrNoCandidates is returned when selection is attempted against an
	// empty candidate set. Passing an empty set is a caller error: resolving
	// candidates happens before selection.
	ErrNoCandidates = errs.NewValueIsRequiredError("candidates")

	// ErrSelectionFailed signals an internal inconsistency where a non-empty
	// candidate scan produced no winner. This should be unreachable.
	ErrSelectionFailed = errors.New("no distribution center selected from non-empty candidate set")
)

// DistributionCenterSelector is a domain service responsible for picking the
// distribution center closest to a delivery address.
//
// Selection rules:
//   - Distance is the great-circle distance between the delivery address and
//     each facility's coordinates
//   - The minimum wins; ties break by first-seen order in the input list, so
//     selection is deterministic for a fixed input ordering
//
// Example usage:
//
//	selector := services.NewDistributionCenterSelector()
//	nearest, err := selector.Select(candidates, order.DeliveryAddress())
//	if err != nil {
//	    // empty candidate set or invalid inputs
//	}
type DistributionCenterSelector struct{}

// NewDistributionCenterSelector creates a new selector instance.
func NewDistributionCenterSelector() DistributionCenterSelector {
	return DistributionCenterSelector{}
}

// Select returns the candidate nearest to the destination address.
// Candidates must be non-empty and the destination properly constructed;
// violations are caller errors, not business failures. Given a non-empty
// input, Select always returns a winner.
func (s DistributionCenterSelector) Select(
	candidates []dc.DistributionCenter,
	destination kernel.Address,
) (dc.DistributionCenter, error) {
	if err := destination.Validate(); err != nil {
		return dc.DistributionCenter{}, err
	}
	if len(candidates) == 0 {
		return dc.DistributionCenter{}, ErrNoCandidates
	}

	var (
		best     *dc.DistributionCenter
		bestDist = math.MaxFloat64
	)

	for i := range candidates {
		if err := candidates[i].Validate(); err != nil {
			return dc.DistributionCenter{}, err
		}

		distance, err := destination.Coordinates().DistanceKmTo(candidates[i].Coordinates())
		if err != nil {
			return dc.DistributionCenter{}, err
		}

		if distance < bestDist {
			bestDist = distance
			best = &candidates[i]
		}
	}

	if best == nil {
		return dc.DistributionCenter{}, ErrSelectionFailed
	}

	return *best, nil
}

// Rank computes the full candidate list ordered nearest first. The result is
// the audit-trail projection recorded on each order item; it is informational
// and not authoritative for assignment. The sort is stable, so equidistant
// candidates keep their input order.
func (s DistributionCenterSelector) Rank(
	candidates []dc.DistributionCenter,
	destination kernel.Address,
) ([]dc.NearbyDistributionCenter, error) {
	if err := destination.Validate(); err != nil {
		return nil, err
	}

	ranked := make([]dc.NearbyDistributionCenter, 0, len(candidates))
	for i := range candidates {
		if err := candidates[i].Validate(); err != nil {
			return nil, err
		}

		distance, err := destination.Coordinates().DistanceKmTo(candidates[i].Coordinates())
		if err != nil {
			return nil, err
		}

		nearby, err := dc.NewNearbyDistributionCenter(candidates[i].Code(), distance)
		if err != nil {
			return nil, err
		}
		ranked = append(ranked, nearby)
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].DistanceKm() < ranked[b].DistanceKm()
	})

	return ranked, nil
}
