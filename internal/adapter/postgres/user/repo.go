// Package user implements the user repository using PostgreSQL.
package user

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/streetbite/foodtruck-backend/internal/adapter/postgres"
	"github.com/streetbite/foodtruck-backend/internal/domain"
)

const table = "users"

var columns = []string{"id", "username", "password_hash", "admin", "registered_at"}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a user by primary key, or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query, args, err := psql.Select(columns...).From(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	u, err := scanUser(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", id.String())
	}

	return u, nil
}

// GetByUsername returns a user by unique username, or domain.ErrNotFound.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query, args, err := psql.Select(columns...).From(table).Where(sq.Eq{"username": username}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	u, err := scanUser(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", username)
	}

	return u, nil
}

// Create inserts a new user and returns the persisted record. A duplicate
// username surfaces as domain.ErrAlreadyExists via the unique constraint.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	query, args, err := psql.Insert(table).
		Columns(columns...).
		Values(u.ID, u.Username, u.PasswordHash, u.Admin, u.RegisteredAt).
		Suffix("RETURNING id, username, password_hash, admin, registered_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	created, err := scanUser(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", u.Username)
	}

	return created, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Admin, &u.RegisteredAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
