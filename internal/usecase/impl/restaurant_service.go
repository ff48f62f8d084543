package impl

import (
	"context"
	"log/slog"

	deliverycontext "bistro/internal/delivery/context"
	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	"bistro/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// restaurantService implements the RestaurantUsecase interface.
type restaurantService struct {
	restaurantRepo repository.RestaurantRepository
	ratingRepo     repository.RatingRepository
	logger         *slog.Logger
}

// RestaurantServiceParams holds dependencies for restaurantService, injected by Fx.
type RestaurantServiceParams struct {
	fx.In

	RestaurantRepo repository.RestaurantRepository
	RatingRepo     repository.RatingRepository
	Logger         *slog.Logger
}

// NewRestaurantService is the constructor for restaurantService.
func NewRestaurantService(params RestaurantServiceParams) usecase.RestaurantUsecase {
	return &restaurantService{
		restaurantRepo: params.RestaurantRepo,
		ratingRepo:     params.RatingRepo,
		logger:         params.Logger,
	}
}

func (srv *restaurantService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListRestaurants returns all restaurants with their rating aggregates.
func (srv *restaurantService) ListRestaurants(ctx context.Context, search string) ([]*entity.RestaurantSummary, error) {
	summaries, err := srv.restaurantRepo.List(ctx, search)
	if err != nil {
		srv.log(ctx).Error("Failed to list restaurants", slog.String("search", search), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list restaurants")
	}

	return summaries, nil
}

// GetRestaurant returns one restaurant in the same shape as a list element.
func (srv *restaurantService) GetRestaurant(ctx context.Context, id int64) (*entity.RestaurantSummary, error) {
	summary, err := srv.restaurantRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrRestaurantNotFound) {
		return nil, domainerrors.ErrRestaurantNotFound
	}
	if err != nil {
		srv.log(ctx).Error("Failed to get restaurant", slog.Int64("restaurantID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to get restaurant")
	}

	return summary, nil
}

// ListRatings returns a restaurant's ratings, newest first.
func (srv *restaurantService) ListRatings(ctx context.Context, restaurantID int64) ([]*entity.Rating, error) {
	ratings, err := srv.ratingRepo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		srv.log(ctx).Error("Failed to list ratings", slog.Int64("restaurantID", restaurantID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list ratings")
	}

	return ratings, nil
}
