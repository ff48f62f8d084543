package usecase

import (
	"context"

	"bistro/internal/domain/entity"
)

// AddRatingInput defines the data required to rate a restaurant.
// UserID is nil for anonymous ratings.
type AddRatingInput struct {
	RestaurantID int64
	Score        int
	Comment      *string
	UserID       *int64
}

// AddRatingOutput returns the new rating's id and the freshly recomputed
// aggregate for the restaurant.
type AddRatingOutput struct {
	RatingID int64
	Stats    *entity.RestaurantStats
}

// RatingUsecase defines the rating write operations.
type RatingUsecase interface {
	AddRating(ctx context.Context, input *AddRatingInput) (*AddRatingOutput, error)
	DeleteRating(ctx context.Context, id int64) error
}
