package truck

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/streetbite/foodtruck-backend/internal/domain"
)

// Create inserts a new truck with a store-assigned id. The authenticated
// subject becomes the owner. Validation precedes any store access.
func (s *Service) Create(ctx context.Context, input TruckInput) (*domain.Truck, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	subject, err := s.resolveSubject(ctx)
	if err != nil {
		return nil, err
	}

	ownerID := subject.ID
	created, err := s.trucks.Create(ctx, &domain.Truck{
		Name:      input.Name,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		DaysHours: input.DaysHours,
		FoodItems: input.FoodItems,
		OwnerID:   &ownerID,
	})
	if err != nil {
		return nil, fmt.Errorf("truck.Create: %w", err)
	}

	s.log.InfoContext(ctx, "truck created",
		slog.Int64("truck_id", created.ID),
		slog.String("owner_id", subject.ID.String()))

	return created, nil
}
