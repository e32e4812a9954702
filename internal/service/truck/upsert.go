package truck

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/streetbite/foodtruck-backend/internal/domain"
)

// Upsert creates or fully replaces the truck identified by a caller-supplied
// id. On create the subject becomes the owner; on update the owner is left
// untouched and the subject must own the record or hold the admin override.
//
// The read-then-write sequence runs in a single transaction. Two concurrent
// upserts of the same unused id race on the insert; the loser's unique
// violation is surfaced as domain.ErrConflict so the caller can retry.
func (s *Service) Upsert(ctx context.Context, id int64, input TruckInput) (*domain.Truck, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	subject, err := s.resolveSubject(ctx)
	if err != nil {
		return nil, err
	}

	var result *domain.Truck
	var created bool

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		existing, err := s.trucks.GetByID(txCtx, id)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			ownerID := subject.ID
			result, err = s.trucks.CreateWithID(txCtx, &domain.Truck{
				ID:        id,
				Name:      input.Name,
				Latitude:  input.Latitude,
				Longitude: input.Longitude,
				DaysHours: input.DaysHours,
				FoodItems: input.FoodItems,
				OwnerID:   &ownerID,
			})
			if err != nil {
				if errors.Is(err, domain.ErrAlreadyExists) {
					return fmt.Errorf("concurrent create of truck %d: %w", id, domain.ErrConflict)
				}
				return fmt.Errorf("create truck: %w", err)
			}
			created = true
			return nil

		case err != nil:
			return fmt.Errorf("get truck: %w", err)
		}

		if err := authorizeMutation(subject, existing); err != nil {
			return err
		}

		result, err = s.trucks.Update(txCtx, &domain.Truck{
			ID:        id,
			Name:      input.Name,
			Latitude:  input.Latitude,
			Longitude: input.Longitude,
			DaysHours: input.DaysHours,
			FoodItems: input.FoodItems,
		})
		if err != nil {
			return fmt.Errorf("update truck: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "truck upserted",
		slog.Int64("truck_id", id),
		slog.Bool("created", created),
		slog.String("subject_id", subject.ID.String()))

	return result, nil
}
