package usecase

import (
	"context"

	"bistro/internal/domain/entity"
)

// RestaurantUsecase defines the read operations over the directory.
type RestaurantUsecase interface {
	// ListRestaurants returns all restaurants with their aggregates,
	// best-rated first; an empty list is a valid result.
	ListRestaurants(ctx context.Context, search string) ([]*entity.RestaurantSummary, error)

	// GetRestaurant returns one restaurant in the same shape as a list
	// element.
	GetRestaurant(ctx context.Context, id int64) (*entity.RestaurantSummary, error)

	// ListRatings returns a restaurant's ratings, newest first.
	ListRatings(ctx context.Context, restaurantID int64) ([]*entity.Rating, error)
}
