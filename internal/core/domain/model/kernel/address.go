package kernel

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when attempting to use an improperly
// initialized Address. Addresses must be created via the NewAddress
// constructor to ensure validity.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address is an immutable postal address value object with validated
// geographic coordinates. Construction fails if any field is blank or the
// coordinates are out of range.
//
// Example:
//
//	coords, _ := kernel.NewCoordinates(-23.5505, -46.6333)
//	addr, err := kernel.NewAddress("Avenida Paulista", "1000", "Sao Paulo", "SP", "BR", "01310-100", coords)
//	if err != nil {
//	    // Handle validation error
//	}
type Address struct { //nolint:recvcheck //using for validation
	street      string
	number      string
	city        string
	state       string
	country     string
	zipCode     string
	coordinates Coordinates

	guard guard.ConstructorGuard
}

// NewAddress creates an Address with all fields required.
// State is the geographic grouping dimension used for distribution center
// lookups, so it must always be present.
func NewAddress(
	street, number, city, state, country, zipCode string,
	coordinates Coordinates,
) (Address, error) {
	address := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		address.setStreet(street),
		address.setNumber(number),
		address.setCity(city),
		address.setState(state),
		address.setCountry(country),
		address.setZipCode(zipCode),
		address.setCoordinates(coordinates),
	); err != nil {
		return Address{}, err
	}

	return address, nil
}

// Validate checks if the Address was properly constructed.
// The zero value fails this validation.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street name.
func (a Address) Street() string {
	return a.street
}

// Number returns the street number.
func (a Address) Number() string {
	return a.number
}

// City returns the city name.
func (a Address) City() string {
	return a.city
}

// State returns the state or province code.
func (a Address) State() string {
	return a.state
}

// Country returns the country code.
func (a Address) Country() string {
	return a.country
}

// ZipCode returns the postal code.
func (a Address) ZipCode() string {
	return a.zipCode
}

// Coordinates returns the geographic coordinates of the address.
func (a Address) Coordinates() Coordinates {
	return a.coordinates
}

// String returns a single-line human-readable representation.
// Implements the fmt.Stringer interface.
func (a Address) String() string {
	return fmt.Sprintf("%s %s, %s-%s, %s %s", a.street, a.number, a.city, a.state, a.country, a.zipCode)
}

// IsEqual compares two addresses field by field.
// Both addresses must be properly constructed for the comparison to succeed.
func (a Address) IsEqual(other Address) (bool, error) {
	if err := errors.Join(a.Validate(), other.Validate()); err != nil {
		return false, err
	}

	sameCoords, err := a.coordinates.IsEqual(other.coordinates)
	if err != nil {
		return false, err
	}

	return sameCoords &&
		a.street == other.street &&
		a.number == other.number &&
		a.city == other.city &&
		a.state == other.state &&
		a.country == other.country &&
		a.zipCode == other.zipCode, nil
}

func (a *Address) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	a.street = street
	return nil
}

func (a *Address) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("number")
	}
	a.number = number
	return nil
}

func (a *Address) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}

func (a *Address) setState(state string) error {
	if state == "" {
		return errs.NewValueIsRequiredError("state")
	}
	a.state = state
	return nil
}

func (a *Address) setCountry(country string) error {
	if country == "" {
		return errs.NewValueIsRequiredError("country")
	}
	a.country = country
	return nil
}

func (a *Address) setZipCode(zipCode string) error {
	if zipCode == "" {
		return errs.NewValueIsRequiredError("zipCode")
	}
	a.zipCode = zipCode
	return nil
}

func (a *Address) setCoordinates(coordinates Coordinates) error {
	if err := coordinates.Validate(); err != nil {
		return err
	}
	a.coordinates = coordinates
	return nil
}
