package domain

import (
	"github.com/google/uuid"

	"github.com/streetbite/foodtruck-backend/internal/geo"
)

// Truck represents a registered food truck and its fixed location.
type Truck struct {
	// ID is caller-addressable: assigned by the database on create,
	// supplied by the caller on upsert.
	ID        int64
	Name      string
	Latitude  float64
	Longitude float64
	// DaysHours is a free-text schedule, e.g. "Mo-Fr:8AM-9AM".
	DaysHours string
	// FoodItems is a free-text menu description, searchable by substring.
	FoodItems string
	// OwnerID references the user that created the record.
	// nil means unowned: any authenticated user may mutate it.
	OwnerID *uuid.UUID
}

// DistanceFrom returns the great-circle distance in meters between the
// truck and the given coordinate.
func (t *Truck) DistanceFrom(lat, lon float64) float64 {
	return geo.Distance(lat, lon, t.Latitude, t.Longitude)
}

// HasValidCoordinate reports whether the truck's coordinate is within the
// valid decimal-degree ranges.
func (t *Truck) HasValidCoordinate() bool {
	return ValidLatitude(t.Latitude) && ValidLongitude(t.Longitude)
}

// CollectionStats summarizes the registry: entry count and the geographic
// bounding box of all records. Bounds are nil when the registry is empty.
type CollectionStats struct {
	Entries      int64
	MinLatitude  *float64
	MaxLatitude  *float64
	MinLongitude *float64
	MaxLongitude *float64
}

// ValidLatitude reports whether lat is a valid decimal latitude.
func ValidLatitude(lat float64) bool {
	return lat >= -90 && lat <= 90
}

// ValidLongitude reports whether lon is a valid decimal longitude.
func ValidLongitude(lon float64) bool {
	return lon >= -180 && lon <= 180
}
