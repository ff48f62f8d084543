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

// ratingService implements the RatingUsecase interface.
type ratingService struct {
	txManager  repository.TransactionManager
	ratingRepo repository.RatingRepository
	logger     *slog.Logger
}

// RatingServiceParams holds dependencies for ratingService, injected by Fx.
type RatingServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	RatingRepo repository.RatingRepository
	Logger     *slog.Logger
}

// NewRatingService is the constructor for ratingService.
func NewRatingService(params RatingServiceParams) usecase.RatingUsecase {
	return &ratingService{
		txManager:  params.TxManager,
		ratingRepo: params.RatingRepo,
		logger:     params.Logger,
	}
}

func (srv *ratingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddRating validates and inserts a rating row, then recomputes the
// restaurant's aggregate for the response within the same transaction.
func (srv *ratingService) AddRating(ctx context.Context, input *usecase.AddRatingInput) (*usecase.AddRatingOutput, error) {
	// A zero score is treated as missing, same as any out-of-range value.
	if input.Score < entity.MinScore || input.Score > entity.MaxScore {
		return nil, domainerrors.ErrInvalidScore
	}

	output := new(usecase.AddRatingOutput)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		restaurantRepo := repoFactory.RestaurantRepo()
		ratingRepo := repoFactory.RatingRepo()

		exists, err := restaurantRepo.Exists(ctx, input.RestaurantID)
		if err != nil {
			return errors.Wrap(err, "failed to check restaurant existence")
		}
		if !exists {
			return domainerrors.ErrRestaurantNotFound
		}

		rating := &entity.Rating{
			UserID:       input.UserID,
			RestaurantID: input.RestaurantID,
			Score:        input.Score,
			Comment:      input.Comment,
		}
		if err := ratingRepo.Create(ctx, rating); err != nil {
			return errors.Wrap(err, "failed to create rating")
		}

		stats, err := ratingRepo.Stats(ctx, input.RestaurantID)
		if err != nil {
			return errors.Wrap(err, "failed to recompute restaurant stats")
		}

		output.RatingID = rating.ID
		output.Stats = stats

		return nil
	})
	if err != nil {
		var appErr domainerrors.AppError
		if !errors.As(err, &appErr) {
			srv.log(ctx).Error("Failed to execute add-rating transaction",
				slog.Int64("restaurantID", input.RestaurantID), slog.Any("error", err))
		}

		return nil, err
	}

	srv.log(ctx).Debug("Rating added",
		slog.Int64("restaurantID", input.RestaurantID), slog.Int64("ratingID", output.RatingID))

	return output, nil
}

// DeleteRating removes a rating by id.
func (srv *ratingService) DeleteRating(ctx context.Context, id int64) error {
	err := srv.ratingRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrRatingNotFound) {
		return domainerrors.ErrRatingNotFound
	}
	if err != nil {
		srv.log(ctx).Error("Failed to delete rating", slog.Int64("ratingID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete rating")
	}

	return nil
}
