package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/restaurant-hours/internal/domain/openhours"
	"github.com/BruksfildServices01/restaurant-hours/internal/models"
)

const insertBatchSize = 100

// RestaurantGormRepository persists restaurants and answers open-window
// queries through the gorm query builder.
type RestaurantGormRepository struct {
	db *gorm.DB
}

func NewRestaurantGormRepository(db *gorm.DB) *RestaurantGormRepository {
	return &RestaurantGormRepository{db: db}
}

// --------------------------------------------------
// Open window
// --------------------------------------------------

func (r *RestaurantGormRepository) ListOpen(
	ctx context.Context,
	day openhours.Day,
	at openhours.Clock,
) ([]openhours.Restaurant, error) {

	expr, err := gormExpr(openhours.Rule(day, at))
	if err != nil {
		return nil, err
	}

	var rows []models.Restaurant
	if err := r.db.WithContext(ctx).
		Model(&models.Restaurant{}).
		Distinct("restaurants.id", "restaurants.name").
		Joins("INNER JOIN open_hours " + openHoursAlias + " ON " + openHoursAlias + ".restaurant_id = restaurants.id").
		Where(expr).
		Order("restaurants.name ASC, restaurants.id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("query open restaurants: %w", err)
	}

	out := make([]openhours.Restaurant, 0, len(rows))
	for _, row := range rows {
		out = append(out, openhours.Restaurant{ID: row.ID, Name: row.Name})
	}
	return out, nil
}

// --------------------------------------------------
// Persistence
// --------------------------------------------------

// ReplaceAll deletes every restaurant (open_hours cascade) and inserts rs
// in one transaction, writing the new IDs back into rs.
func (r *RestaurantGormRepository) ReplaceAll(
	ctx context.Context,
	rs []openhours.Restaurant,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.OpenHours{}).Error; err != nil {
			return fmt.Errorf("clear open hours: %w", err)
		}
		if err := tx.Where("1 = 1").Delete(&models.Restaurant{}).Error; err != nil {
			return fmt.Errorf("clear restaurants: %w", err)
		}

		if len(rs) == 0 {
			return nil
		}

		rows := make([]models.Restaurant, 0, len(rs))
		for i := range rs {
			m := toModel(rs[i])
			m.ID = 0
			rows = append(rows, m)
		}

		if err := tx.CreateInBatches(&rows, insertBatchSize).Error; err != nil {
			return fmt.Errorf("insert restaurants: %w", err)
		}

		for i := range rows {
			rs[i].ID = rows[i].ID
		}
		return nil
	})
}

// ListAll loads every stored restaurant with its schedule.
func (r *RestaurantGormRepository) ListAll(
	ctx context.Context,
) ([]openhours.Restaurant, error) {

	var rows []models.Restaurant
	if err := r.db.WithContext(ctx).
		Preload("OpenHours").
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}

	out := make([]openhours.Restaurant, 0, len(rows))
	for _, row := range rows {
		rest, err := toDomain(row)
		if err != nil {
			return nil, err
		}
		out = append(out, rest)
	}
	return out, nil
}

// Compile-time check
var (
	_ openhours.Finder = (*RestaurantGormRepository)(nil)
	_ openhours.Store  = (*RestaurantGormRepository)(nil)
)
