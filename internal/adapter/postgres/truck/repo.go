// Package truck implements the food-truck repository using PostgreSQL.
package truck

import (
	"context"
	"fmt"
	"strconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/streetbite/foodtruck-backend/internal/adapter/postgres"
	"github.com/streetbite/foodtruck-backend/internal/domain"
	"github.com/streetbite/foodtruck-backend/internal/geo"
)

const table = "food_trucks"

var columns = []string{"id", "name", "latitude", "longitude", "days_hours", "food_items", "owner_id"}

// psql builds queries with $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides food-truck persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new truck repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a truck by primary key, or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Truck, error) {
	query, args, err := psql.Select(columns...).From(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	t, err := scanTruck(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "truck", strconv.FormatInt(id, 10))
	}

	return t, nil
}

// ListAll returns every truck in insertion (id) order.
func (r *Repo) ListAll(ctx context.Context) ([]domain.Truck, error) {
	return r.list(ctx, psql.Select(columns...).From(table).OrderBy("id ASC"))
}

// FindByName returns trucks whose name contains needle, case-insensitively,
// in insertion order.
func (r *Repo) FindByName(ctx context.Context, needle string) ([]domain.Truck, error) {
	return r.list(ctx, psql.Select(columns...).From(table).
		Where(sq.ILike{"name": "%" + needle + "%"}).
		OrderBy("id ASC"))
}

// FindByItems returns trucks whose menu contains needle, case-insensitively,
// in insertion order.
func (r *Repo) FindByItems(ctx context.Context, needle string) ([]domain.Truck, error) {
	return r.list(ctx, psql.Select(columns...).From(table).
		Where(sq.ILike{"food_items": "%" + needle + "%"}).
		OrderBy("id ASC"))
}

// SearchWithinRadius returns trucks within radiusMeters of (lat, lon),
// optionally narrowed by case-insensitive substrings on name and food_items,
// ordered by ascending distance with id as the stable tie-break.
//
// The great-circle distance is evaluated inside PostgreSQL: the same
// haversine formula the service uses scalar-side is lowered into a SQL
// expression over the latitude/longitude columns.
func (r *Repo) SearchWithinRadius(ctx context.Context, lat, lon, radiusMeters float64, name, items *string) ([]domain.Truck, error) {
	dist := geo.DistanceSQL(lat, lon, "latitude", "longitude")

	query := psql.Select(columns...).
		Column(dist + " AS distance").
		From(table).
		Where(dist+" <= ?", radiusMeters)

	if name != nil && *name != "" {
		query = query.Where(sq.ILike{"name": "%" + *name + "%"})
	}
	if items != nil && *items != "" {
		query = query.Where(sq.ILike{"food_items": "%" + *items + "%"})
	}

	query = query.OrderBy("distance ASC", "id ASC")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, postgres.MapError(err, "truck", "")
	}
	defer rows.Close()

	var trucks []domain.Truck
	for rows.Next() {
		var t domain.Truck
		var distance float64
		if err := rows.Scan(&t.ID, &t.Name, &t.Latitude, &t.Longitude, &t.DaysHours, &t.FoodItems, &t.OwnerID, &distance); err != nil {
			return nil, postgres.MapError(err, "truck", "")
		}
		trucks = append(trucks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "truck", "")
	}

	return trucks, nil
}

// Create inserts a truck with a database-assigned id and returns the
// persisted record.
func (r *Repo) Create(ctx context.Context, t *domain.Truck) (*domain.Truck, error) {
	query, args, err := psql.Insert(table).
		Columns("name", "latitude", "longitude", "days_hours", "food_items", "owner_id").
		Values(t.Name, t.Latitude, t.Longitude, t.DaysHours, t.FoodItems, t.OwnerID).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	created, err := scanTruck(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "truck", "")
	}

	return created, nil
}

// CreateWithID inserts a truck under a caller-supplied id (the upsert create
// path). A concurrent insert of the same id surfaces as
// domain.ErrAlreadyExists via the unique violation.
func (r *Repo) CreateWithID(ctx context.Context, t *domain.Truck) (*domain.Truck, error) {
	query, args, err := psql.Insert(table).
		Columns(columns...).
		Values(t.ID, t.Name, t.Latitude, t.Longitude, t.DaysHours, t.FoodItems, t.OwnerID).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	created, err := scanTruck(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "truck", strconv.FormatInt(t.ID, 10))
	}

	return created, nil
}

// Update overwrites the five mutable fields of an existing truck.
// owner_id is never touched on update.
func (r *Repo) Update(ctx context.Context, t *domain.Truck) (*domain.Truck, error) {
	query, args, err := psql.Update(table).
		Set("name", t.Name).
		Set("latitude", t.Latitude).
		Set("longitude", t.Longitude).
		Set("days_hours", t.DaysHours).
		Set("food_items", t.FoodItems).
		Where(sq.Eq{"id": t.ID}).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	updated, err := scanTruck(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "truck", strconv.FormatInt(t.ID, 10))
	}

	return updated, nil
}

// Delete removes a truck by id. Returns false (and no error) when no row
// matched, which callers treat as an idempotent success.
func (r *Repo) Delete(ctx context.Context, id int64) (bool, error) {
	query, args, err := psql.Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, "truck", strconv.FormatInt(id, 10))
	}

	return tag.RowsAffected() > 0, nil
}

// Stats returns the collection size and the bounding box of all coordinates.
// The bounds are nil when the collection is empty.
func (r *Repo) Stats(ctx context.Context) (*domain.CollectionStats, error) {
	query, args, err := psql.Select(
		"count(*)",
		"min(latitude)", "max(latitude)",
		"min(longitude)", "max(longitude)",
	).From(table).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	var stats domain.CollectionStats
	err = q.QueryRow(ctx, query, args...).Scan(
		&stats.Entries,
		&stats.MinLatitude, &stats.MaxLatitude,
		&stats.MinLongitude, &stats.MaxLongitude,
	)
	if err != nil {
		return nil, postgres.MapError(err, "truck", "")
	}

	return &stats, nil
}

// list runs a select builder and collects the rows into domain trucks.
func (r *Repo) list(ctx context.Context, builder sq.SelectBuilder) ([]domain.Truck, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "truck", "")
	}
	defer rows.Close()

	var trucks []domain.Truck
	for rows.Next() {
		var t domain.Truck
		if err := rows.Scan(&t.ID, &t.Name, &t.Latitude, &t.Longitude, &t.DaysHours, &t.FoodItems, &t.OwnerID); err != nil {
			return nil, postgres.MapError(err, "truck", "")
		}
		trucks = append(trucks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "truck", "")
	}

	return trucks, nil
}

// scanTruck scans a single row in column order.
func scanTruck(row pgx.Row) (*domain.Truck, error) {
	var t domain.Truck
	err := row.Scan(&t.ID, &t.Name, &t.Latitude, &t.Longitude, &t.DaysHours, &t.FoodItems, &t.OwnerID)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func columnList() string {
	list := columns[0]
	for _, c := range columns[1:] {
		list += ", " + c
	}
	return list
}
