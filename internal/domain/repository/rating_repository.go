package repository

import (
	"context"
	"errors"

	"bistro/internal/domain/entity"
)

// ErrRatingNotFound is returned when no rating matches the given ID.
var ErrRatingNotFound = errors.New("rating not found")

// RatingRepository defines the operations for rating persistence.
type RatingRepository interface {
	// ListByRestaurant returns the ratings for a restaurant, newest first.
	ListByRestaurant(ctx context.Context, restaurantID int64) ([]*entity.Rating, error)

	// Create persists a new rating row and fills in the generated ID and
	// creation timestamp.
	Create(ctx context.Context, rating *entity.Rating) error

	// Delete removes a rating by ID, returning ErrRatingNotFound when no
	// row was affected.
	Delete(ctx context.Context, id int64) error

	// Stats recomputes the (average, count) aggregate for a restaurant.
	Stats(ctx context.Context, restaurantID int64) (*entity.RestaurantStats, error)
}
