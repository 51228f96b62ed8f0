package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/BruksfildServices01/restaurant-hours/internal/domain/openhours"
)

// Querier is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// RestaurantSQLRepository runs a hand-written, parameterized query whose
// WHERE clause is rendered from openhours.Rule.
type RestaurantSQLRepository struct {
	db Querier
}

func NewRestaurantSQLRepository(db Querier) *RestaurantSQLRepository {
	return &RestaurantSQLRepository{db: db}
}

const openRestaurantsQuery = `
SELECT DISTINCT r.id, r.name
  FROM restaurants r
 INNER JOIN open_hours oh ON oh.restaurant_id = r.id
 WHERE %s
 ORDER BY r.name ASC, r.id ASC`

func (r *RestaurantSQLRepository) ListOpen(
	ctx context.Context,
	day openhours.Day,
	at openhours.Clock,
) ([]openhours.Restaurant, error) {

	where, args, err := renderSQL(openhours.Rule(day, at))
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, fmt.Sprintf(openRestaurantsQuery, where), args...)
	if err != nil {
		return nil, fmt.Errorf("query open restaurants: %w", err)
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (openhours.Restaurant, error) {
		var (
			id   int64
			name string
		)
		if err := row.Scan(&id, &name); err != nil {
			return openhours.Restaurant{}, err
		}
		return openhours.Restaurant{ID: uint(id), Name: name}, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan open restaurants: %w", err)
	}
	return out, nil
}

// Compile-time check
var _ openhours.Finder = (*RestaurantSQLRepository)(nil)
