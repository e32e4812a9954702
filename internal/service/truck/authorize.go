package truck

import (
	"context"
	"errors"
	"fmt"

	"github.com/streetbite/foodtruck-backend/internal/domain"
	"github.com/streetbite/foodtruck-backend/pkg/ctxutil"
)

// resolveSubject loads the authenticated user for the current request.
// The admin flag is read from the store on every call, never trusted from
// token claims, so a demoted admin loses the override immediately.
// Returns ErrUnauthorized when no subject is present or the subject no
// longer resolves to a stored user.
func (s *Service) resolveSubject(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, fmt.Errorf("a valid token must be included: %w", domain.ErrUnauthorized)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("unknown subject: %w", domain.ErrUnauthorized)
		}
		return nil, fmt.Errorf("resolve subject: %w", err)
	}

	return user, nil
}

// authorizeMutation applies the ownership check for an existing record:
// allowed iff the subject owns the record, the record is unowned, or the
// subject is an admin. Returns ErrForbidden otherwise.
func authorizeMutation(subject *domain.User, t *domain.Truck) error {
	if !subject.CanModify(t.OwnerID) {
		return fmt.Errorf("not authorized to modify this resource: %w", domain.ErrForbidden)
	}
	return nil
}
