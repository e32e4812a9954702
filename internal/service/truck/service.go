// Package truck implements the registry operations: reads, proximity search,
// and ownership-checked mutations.
package truck

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/streetbite/foodtruck-backend/internal/config"
	"github.com/streetbite/foodtruck-backend/internal/domain"
)

// truckRepo defines the truck repository interface needed by the service.
type truckRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Truck, error)
	ListAll(ctx context.Context) ([]domain.Truck, error)
	FindByName(ctx context.Context, needle string) ([]domain.Truck, error)
	FindByItems(ctx context.Context, needle string) ([]domain.Truck, error)
	SearchWithinRadius(ctx context.Context, lat, lon, radiusMeters float64, name, items *string) ([]domain.Truck, error)
	Create(ctx context.Context, t *domain.Truck) (*domain.Truck, error)
	CreateWithID(ctx context.Context, t *domain.Truck) (*domain.Truck, error)
	Update(ctx context.Context, t *domain.Truck) (*domain.Truck, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Stats(ctx context.Context) (*domain.CollectionStats, error)
}

// userRepo defines the user repository interface needed by the service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// txManager defines the transaction manager interface needed by the service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the truck registry operations.
type Service struct {
	log    *slog.Logger
	trucks truckRepo
	users  userRepo
	tx     txManager
	cfg    config.SearchConfig
}

// NewService creates a new truck service instance.
func NewService(logger *slog.Logger, trucks truckRepo, users userRepo, tx txManager, cfg config.SearchConfig) *Service {
	return &Service{
		log:    logger.With("service", "truck"),
		trucks: trucks,
		users:  users,
		tx:     tx,
		cfg:    cfg,
	}
}

// List returns all trucks in insertion order.
func (s *Service) List(ctx context.Context) ([]domain.Truck, error) {
	return s.trucks.ListAll(ctx)
}

// Get returns the truck with the given id, or domain.ErrNotFound.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Truck, error) {
	return s.trucks.GetByID(ctx, id)
}

// Stats returns the collection metadata served by the root endpoint.
func (s *Service) Stats(ctx context.Context) (*domain.CollectionStats, error) {
	return s.trucks.Stats(ctx)
}
