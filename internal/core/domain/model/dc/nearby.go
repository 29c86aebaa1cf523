package dc

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrNearbyDistributionCenterIsNotConstructed is returned when attempting to
// use an improperly initialized NearbyDistributionCenter.
var ErrNearbyDistributionCenterIsNotConstructed = errs.NewValueIsRequiredError(
	"NearbyDistributionCenter must be created via NewNearbyDistributionCenter constructor")

// NearbyDistributionCenter is an immutable projection pairing a facility code
// with its computed distance from a delivery address. It is informational
// only: the ranked list reported on an order item is an audit trail, not the
// authority for assignment.
type NearbyDistributionCenter struct { //nolint:recvcheck //using for validation
	code       string
	distanceKm float64

	guard guard.ConstructorGuard
}

// NewNearbyDistributionCenter creates a projection with validation.
// Code must be non-blank and distance must not be negative.
func NewNearbyDistributionCenter(code string, distanceKm float64) (NearbyDistributionCenter, error) {
	if code == "" {
		return NearbyDistributionCenter{}, errs.NewValueIsRequiredError("code")
	}
	if distanceKm < 0 {
		return NearbyDistributionCenter{}, errs.NewValueIsInvalidErrorWithCause("distanceKm",
			fmt.Errorf("%f is negative", distanceKm))
	}

	return NearbyDistributionCenter{
		code:       code,
		distanceKm: distanceKm,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the projection was properly constructed.
func (n NearbyDistributionCenter) Validate() error {
	return n.guard.Validate(ErrNearbyDistributionCenterIsNotConstructed)
}

// Code returns the facility business key.
func (n NearbyDistributionCenter) Code() string {
	return n.code
}

// DistanceKm returns the computed great-circle distance in kilometers.
func (n NearbyDistributionCenter) DistanceKm() float64 {
	return n.distanceKm
}

// String returns "code@<distance>km". Implements the fmt.Stringer interface.
func (n NearbyDistributionCenter) String() string {
	return fmt.Sprintf("%s@%.2fkm", n.code, n.distanceKm)
}
