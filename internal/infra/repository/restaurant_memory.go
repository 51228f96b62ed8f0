package repository

import (
	"context"
	"sync"

	"github.com/BruksfildServices01/restaurant-hours/internal/domain/openhours"
)

// RestaurantMemoryRepository answers from parsed schedules held in
// process. Replace swaps the whole set; the slices handed out are never
// mutated afterwards.
type RestaurantMemoryRepository struct {
	mu          sync.RWMutex
	restaurants []openhours.Restaurant
}

func NewRestaurantMemoryRepository(rs []openhours.Restaurant) *RestaurantMemoryRepository {
	r := &RestaurantMemoryRepository{}
	r.Replace(rs)
	return r
}

func (r *RestaurantMemoryRepository) Replace(rs []openhours.Restaurant) {
	cp := make([]openhours.Restaurant, len(rs))
	copy(cp, rs)

	r.mu.Lock()
	r.restaurants = cp
	r.mu.Unlock()
}

func (r *RestaurantMemoryRepository) All() []openhours.Restaurant {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.restaurants
}

func (r *RestaurantMemoryRepository) ListOpen(
	ctx context.Context,
	day openhours.Day,
	at openhours.Clock,
) ([]openhours.Restaurant, error) {

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := []openhours.Restaurant{}
	for _, rest := range r.All() {
		if openhours.IsOpen(rest.Schedule, day, at) {
			out = append(out, rest)
		}
	}
	return out, nil
}

// Compile-time check
var _ openhours.Finder = (*RestaurantMemoryRepository)(nil)
