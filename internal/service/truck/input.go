package truck

import (
	"math"

	"github.com/streetbite/foodtruck-backend/internal/domain"
)

// TruckInput holds the five mutable fields for create and upsert.
// All fields are mandatory; the transport layer rejects missing or
// wrong-typed JSON fields before constructing one of these.
type TruckInput struct {
	Name      string
	Latitude  float64
	Longitude float64
	DaysHours string
	FoodItems string
}

// Validate validates the mutation input.
func (i TruckInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if !domain.ValidLatitude(i.Latitude) {
		errs = append(errs, domain.FieldError{Field: "latitude", Message: "must be within [-90, 90]"})
	}
	if !domain.ValidLongitude(i.Longitude) {
		errs = append(errs, domain.FieldError{Field: "longitude", Message: "must be within [-180, 180]"})
	}
	if i.DaysHours == "" {
		errs = append(errs, domain.FieldError{Field: "days_hours", Message: "required"})
	}
	if i.FoodItems == "" {
		errs = append(errs, domain.FieldError{Field: "food_items", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SearchByLocationInput holds parameters for the proximity search.
// RadiusMeters is optional; nil selects the configured default.
type SearchByLocationInput struct {
	Latitude     float64
	Longitude    float64
	RadiusMeters *float64
	Name         *string
	Items        *string
}

// Validate validates the search input.
func (i SearchByLocationInput) Validate() error {
	var errs []domain.FieldError

	if !domain.ValidLatitude(i.Latitude) {
		errs = append(errs, domain.FieldError{Field: "latitude", Message: "must be within [-90, 90]"})
	}
	if !domain.ValidLongitude(i.Longitude) {
		errs = append(errs, domain.FieldError{Field: "longitude", Message: "must be within [-180, 180]"})
	}
	if i.RadiusMeters != nil {
		// NaN compares false against everything, so check finiteness
		// explicitly instead of relying on the range test.
		if r := *i.RadiusMeters; math.IsNaN(r) || math.IsInf(r, 0) || r < 0 {
			errs = append(errs, domain.FieldError{Field: "radius", Message: "must be a finite number >= 0"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
