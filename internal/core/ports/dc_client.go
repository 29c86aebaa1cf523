package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/dc"
)

// DistributionCenterClient resolves the distribution centers able to serve a
// region. The region key is the grouping dimension of the delivery address
// (its state code), so every order shipped to the same state shares one
// candidate set.
type DistributionCenterClient interface {
	// GetByRegion returns the distribution centers serving the region.
	// An empty slice is a legitimate answer (the region has no coverage),
	// not an error. Transport and availability problems are reported as
	// errs.ExternalServiceError.
	GetByRegion(ctx context.Context, region string) ([]dc.DistributionCenter, error)
}
