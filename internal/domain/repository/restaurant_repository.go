package repository

import (
	"context"
	"errors"

	"bistro/internal/domain/entity"
)

// ErrRestaurantNotFound is returned when no restaurant matches the given ID.
var ErrRestaurantNotFound = errors.New("restaurant not found")

// RestaurantRepository defines read operations over the restaurant
// directory. Restaurants are seeded out-of-band, so there are no writes.
type RestaurantRepository interface {
	// List returns all restaurants joined with their rating aggregates,
	// ordered by average rating descending then name ascending. A non-empty
	// search filters name/description by case-insensitive substring.
	List(ctx context.Context, search string) ([]*entity.RestaurantSummary, error)

	// FindByID returns a single restaurant with its aggregate.
	FindByID(ctx context.Context, id int64) (*entity.RestaurantSummary, error)

	// Exists reports whether a restaurant row with the given ID exists.
	Exists(ctx context.Context, id int64) (bool, error)
}
