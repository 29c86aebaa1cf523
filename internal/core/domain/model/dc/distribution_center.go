package dc

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrDistributionCenterIsNotConstructed is returned when attempting to use an
// improperly initialized DistributionCenter. Instances must be created via the
// NewDistributionCenter constructor.
var ErrDistributionCenterIsNotConstructed = errs.NewValueIsRequiredError(
	"DistributionCenter must be created via NewDistributionCenter constructor")

// DistributionCenter is an immutable value object describing a fulfillment
// facility. The code is the unique business key; coordinates derive from the
// facility address.
//
// Example:
//
//	coords, _ := kernel.NewCoordinates(-23.4356, -46.4731)
//	addr, _ := kernel.NewAddress("Rua das Cargas", "500", "Guarulhos", "SP", "BR", "07000-000", coords)
//	center, err := dc.NewDistributionCenter("DC-GRU-1", "Guarulhos Hub", addr)
type DistributionCenter struct { //nolint:recvcheck //using for validation
	code    string
	name    string
	address kernel.Address

	guard guard.ConstructorGuard
}

// NewDistributionCenter creates a DistributionCenter with validation.
// Code and name must be non-blank and the address must be properly
// constructed.
func NewDistributionCenter(code, name string, address kernel.Address) (DistributionCenter, error) {
	center := DistributionCenter{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		center.setCode(code),
		center.setName(name),
		center.setAddress(address),
	); err != nil {
		return DistributionCenter{}, err
	}

	return center, nil
}

// Validate checks if the DistributionCenter was properly constructed.
// The zero value fails this validation.
func (d DistributionCenter) Validate() error {
	return d.guard.Validate(ErrDistributionCenterIsNotConstructed)
}

// Code returns the unique business key of the facility.
func (d DistributionCenter) Code() string {
	return d.code
}

// Name returns the human-readable facility name.
func (d DistributionCenter) Name() string {
	return d.name
}

// Address returns the facility address.
func (d DistributionCenter) Address() kernel.Address {
	return d.address
}

// Coordinates returns the geographic coordinates derived from the facility
// address.
func (d DistributionCenter) Coordinates() kernel.Coordinates {
	return d.address.Coordinates()
}

// String returns "code (name)". Implements the fmt.Stringer interface.
func (d DistributionCenter) String() string {
	return fmt.Sprintf("%s (%s)", d.code, d.name)
}

// IsEqual compares two distribution centers by business key.
func (d DistributionCenter) IsEqual(other DistributionCenter) bool {
	return d.code == other.code
}

func (d *DistributionCenter) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	d.code = code
	return nil
}

func (d *DistributionCenter) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}

func (d *DistributionCenter) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	d.address = address
	return nil
}
