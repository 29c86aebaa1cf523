package kernel

import (
	"errors"
	"fmt"
	"math"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

const (
	// MinLatitude is the southernmost valid latitude in degrees.
	MinLatitude = -90.0
	// MaxLatitude is the northernmost valid latitude in degrees.
	MaxLatitude = 90.0
	// MinLongitude is the westernmost valid longitude in degrees.
	MinLongitude = -180.0
	// MaxLongitude is the easternmost valid longitude in degrees.
	MaxLongitude = 180.0

	// earthRadiusKm is the mean Earth radius used by the haversine formula.
	earthRadiusKm = 6371.0
)

// ErrCoordinatesAreNotConstructed is returned when attempting to use an
// improperly initialized Coordinates value. Coordinates must be created via
// the NewCoordinates constructor to ensure validity.
var ErrCoordinatesAreNotConstructed = errs.NewValueIsRequiredError(
	"coordinates must be created via NewCoordinates constructor")

// Coordinates represents a geographic point in decimal degrees.
// Coordinates is an immutable value object that ensures latitude and longitude
// are always within valid bounds. The zero value is invalid and fails
// validation - use the constructor to create instances.
//
// Example:
//
//	coords, err := kernel.NewCoordinates(-23.5505, -46.6333)
//	if err != nil {
//	    // Handle validation error
//	}
type Coordinates struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewCoordinates creates Coordinates with the specified latitude and longitude
// in decimal degrees. Latitude must be within [-90, 90] and longitude within
// [-180, 180]. Returns an error if either value is outside its valid bounds.
func NewCoordinates(latitude, longitude float64) (Coordinates, error) {
	coords := Coordinates{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(coords.setLatitude(latitude), coords.setLongitude(longitude)); err != nil {
		return Coordinates{}, err
	}

	return coords, nil
}

// Validate checks if the Coordinates value was properly constructed.
// The zero value fails this validation.
func (c Coordinates) Validate() error {
	return c.guard.Validate(ErrCoordinatesAreNotConstructed)
}

// Latitude returns the latitude in decimal degrees.
func (c Coordinates) Latitude() float64 {
	return c.latitude
}

// Longitude returns the longitude in decimal degrees.
func (c Coordinates) Longitude() float64 {
	return c.longitude
}

// String returns a human-readable representation in "lat,lon" form.
// Implements the fmt.Stringer interface.
func (c Coordinates) String() string {
	return fmt.Sprintf("Coordinates(%.6f,%.6f)", c.latitude, c.longitude)
}

// IsEqual compares two coordinate pairs for exact equality.
// Both values must be properly constructed for the comparison to succeed.
func (c Coordinates) IsEqual(other Coordinates) (bool, error) {
	if err := errors.Join(c.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return c.latitude == other.latitude && c.longitude == other.longitude, nil
}

// DistanceKmTo calculates the great-circle distance in kilometers between two
// coordinate pairs using the haversine formula with a mean Earth radius of
// 6371.0 km. The formula is numerically stable near antipodal points and
// across the antimeridian without special-casing.
//
// Both values must be properly constructed for the calculation to succeed.
//
// Example:
//
//	saoPaulo, _ := kernel.NewCoordinates(-23.5505, -46.6333)
//	rio, _ := kernel.NewCoordinates(-22.9068, -43.1729)
//
//	km, err := saoPaulo.DistanceKmTo(rio)
//	// km ≈ 361
func (c Coordinates) DistanceKmTo(other Coordinates) (float64, error) {
	if err := errors.Join(c.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	latA := degreesToRadians(c.latitude)
	latB := degreesToRadians(other.latitude)
	deltaLat := degreesToRadians(other.latitude - c.latitude)
	deltaLon := degreesToRadians(other.longitude - c.longitude)

	sinLat := math.Sin(deltaLat / 2)
	sinLon := math.Sin(deltaLon / 2)
	a := sinLat*sinLat + math.Cos(latA)*math.Cos(latB)*sinLon*sinLon
	centralAngle := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * centralAngle, nil
}

// setLatitude sets the latitude with validation.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers, to enable self-encapsulated validation during construction.
func (c *Coordinates) setLatitude(latitude float64) error {
	if latitude < MinLatitude || latitude > MaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, MinLatitude, MaxLatitude)
	}

	c.latitude = latitude
	return nil
}

// setLongitude sets the longitude with validation.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers, to enable self-encapsulated validation during construction.
func (c *Coordinates) setLongitude(longitude float64) error {
	if longitude < MinLongitude || longitude > MaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, MinLongitude, MaxLongitude)
	}

	c.longitude = longitude
	return nil
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
