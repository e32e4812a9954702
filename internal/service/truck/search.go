package truck

import (
	"context"
	"fmt"

	"github.com/streetbite/foodtruck-backend/internal/domain"
)

// SearchByName returns trucks whose name contains needle, case-insensitively.
func (s *Service) SearchByName(ctx context.Context, needle string) ([]domain.Truck, error) {
	if needle == "" {
		return nil, domain.NewValidationError("needle", "required")
	}
	return s.trucks.FindByName(ctx, needle)
}

// SearchByItems returns trucks whose menu contains needle, case-insensitively.
func (s *Service) SearchByItems(ctx context.Context, needle string) ([]domain.Truck, error) {
	if needle == "" {
		return nil, domain.NewValidationError("needle", "required")
	}
	return s.trucks.FindByItems(ctx, needle)
}

// SearchByLocation returns all trucks within the search radius of the given
// coordinate, optionally narrowed by name/items substrings, ordered by
// ascending distance. An empty result is an empty slice, never an error.
//
// Validation happens before any store access; the distance filtering and
// ordering run set-level in the store (the haversine formula lowered into
// the query), so the service never materializes out-of-radius records.
func (s *Service) SearchByLocation(ctx context.Context, input SearchByLocationInput) ([]domain.Truck, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	radius := s.cfg.DefaultRadiusMeters
	if input.RadiusMeters != nil {
		radius = *input.RadiusMeters
	}

	trucks, err := s.trucks.SearchWithinRadius(ctx, input.Latitude, input.Longitude, radius, input.Name, input.Items)
	if err != nil {
		return nil, fmt.Errorf("truck.SearchByLocation: %w", err)
	}

	return trucks, nil
}
