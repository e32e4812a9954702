package truck

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/streetbite/foodtruck-backend/internal/domain"
)

// Delete removes the truck with the given id. Deleting an absent id is a
// success, so retried deletes are harmless. The subject must own the record
// or hold the admin override; the ownership check still applies when the
// record exists.
func (s *Service) Delete(ctx context.Context, id int64) error {
	subject, err := s.resolveSubject(ctx)
	if err != nil {
		return err
	}

	var removed bool

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		existing, err := s.trucks.GetByID(txCtx, id)
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("get truck: %w", err)
		}

		if err := authorizeMutation(subject, existing); err != nil {
			return err
		}

		removed, err = s.trucks.Delete(txCtx, id)
		if err != nil {
			return fmt.Errorf("delete truck: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "truck deleted",
		slog.Int64("truck_id", id),
		slog.Bool("removed", removed),
		slog.String("subject_id", subject.ID.String()))

	return nil
}
