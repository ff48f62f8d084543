package impl

import (
	"context"
	"testing"

	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	mockRepo "bistro/internal/mocks/repository"
	"bistro/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ratingServiceFixtures holds all test dependencies for rating service tests.
type ratingServiceFixtures struct {
	service    usecase.RatingUsecase
	txManager  *mockRepo.MockTransactionManager
	ratingRepo *mockRepo.MockRatingRepository
}

func createTestRatingService(t *testing.T) ratingServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	ratingRepo := mockRepo.NewMockRatingRepository(t)

	service := NewRatingService(RatingServiceParams{
		TxManager:  txManager,
		RatingRepo: ratingRepo,
		Logger:     newDiscardLogger(),
	})

	return ratingServiceFixtures{
		service:    service,
		txManager:  txManager,
		ratingRepo: ratingRepo,
	}
}

func TestRatingService_AddRating_Success(t *testing.T) {
	fx := createTestRatingService(t)

	ctx := context.Background()
	comment := "Great noodles"
	userID := int64(7)
	input := &usecase.AddRatingInput{
		RestaurantID: 3,
		Score:        5,
		Comment:      &comment,
		UserID:       &userID,
	}

	avg := 4.5
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRestaurantRepo := mockRepo.NewMockRestaurantRepository(t)
			mockRatingRepo := mockRepo.NewMockRatingRepository(t)

			mockFactory.EXPECT().RestaurantRepo().Return(mockRestaurantRepo)
			mockFactory.EXPECT().RatingRepo().Return(mockRatingRepo)

			mockRestaurantRepo.EXPECT().
				Exists(ctx, int64(3)).
				Return(true, nil)

			mockRatingRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Rating")).
				Run(func(ctx context.Context, rating *entity.Rating) {
					assert.Equal(t, 5, rating.Score)
					assert.Equal(t, int64(3), rating.RestaurantID)
					require.NotNil(t, rating.UserID)
					assert.Equal(t, int64(7), *rating.UserID)
					rating.ID = 11
				}).
				Return(nil)

			mockRatingRepo.EXPECT().
				Stats(ctx, int64(3)).
				Return(&entity.RestaurantStats{AvgRating: &avg, RatingCount: 2}, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.AddRating(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(11), output.RatingID)
	require.NotNil(t, output.Stats.AvgRating)
	assert.InDelta(t, 4.5, *output.Stats.AvgRating, 0.001)
	assert.Equal(t, int64(2), output.Stats.RatingCount)
}

func TestRatingService_AddRating_ScoreOutOfRange(t *testing.T) {
	fx := createTestRatingService(t)

	// A zero score means the field was absent from the request.
	for _, score := range []int{0, -1, 6, 100} {
		_, err := fx.service.AddRating(context.Background(), &usecase.AddRatingInput{
			RestaurantID: 3,
			Score:        score,
		})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidScore, "score %d must be rejected", score)
	}
}

func TestRatingService_AddRating_RestaurantMissing(t *testing.T) {
	fx := createTestRatingService(t)

	ctx := context.Background()
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRestaurantRepo := mockRepo.NewMockRestaurantRepository(t)
			mockRatingRepo := mockRepo.NewMockRatingRepository(t)

			mockFactory.EXPECT().RestaurantRepo().Return(mockRestaurantRepo)
			mockFactory.EXPECT().RatingRepo().Return(mockRatingRepo)

			mockRestaurantRepo.EXPECT().
				Exists(ctx, int64(99)).
				Return(false, nil)

			return fn(mockFactory)
		})

	_, err := fx.service.AddRating(ctx, &usecase.AddRatingInput{RestaurantID: 99, Score: 4})

	assert.ErrorIs(t, err, domainerrors.ErrRestaurantNotFound)
}

func TestRatingService_AddRating_AnonymousUser(t *testing.T) {
	fx := createTestRatingService(t)

	ctx := context.Background()
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRestaurantRepo := mockRepo.NewMockRestaurantRepository(t)
			mockRatingRepo := mockRepo.NewMockRatingRepository(t)

			mockFactory.EXPECT().RestaurantRepo().Return(mockRestaurantRepo)
			mockFactory.EXPECT().RatingRepo().Return(mockRatingRepo)

			mockRestaurantRepo.EXPECT().Exists(ctx, int64(3)).Return(true, nil)
			mockRatingRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Rating")).
				Run(func(ctx context.Context, rating *entity.Rating) {
					assert.Nil(t, rating.UserID)
					rating.ID = 12
				}).
				Return(nil)
			mockRatingRepo.EXPECT().
				Stats(ctx, int64(3)).
				Return(&entity.RestaurantStats{RatingCount: 1}, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.AddRating(ctx, &usecase.AddRatingInput{RestaurantID: 3, Score: 1})

	require.NoError(t, err)
	assert.Equal(t, int64(12), output.RatingID)
}

func TestRatingService_DeleteRating_Success(t *testing.T) {
	fx := createTestRatingService(t)

	ctx := context.Background()
	fx.ratingRepo.EXPECT().
		Delete(ctx, int64(11)).
		Return(nil)

	assert.NoError(t, fx.service.DeleteRating(ctx, 11))
}

func TestRatingService_DeleteRating_NotFound(t *testing.T) {
	fx := createTestRatingService(t)

	ctx := context.Background()
	fx.ratingRepo.EXPECT().
		Delete(ctx, int64(11)).
		Return(repository.ErrRatingNotFound)

	err := fx.service.DeleteRating(ctx, 11)

	assert.ErrorIs(t, err, domainerrors.ErrRatingNotFound)
}

func TestRatingService_DeleteRating_RepositoryFailure(t *testing.T) {
	fx := createTestRatingService(t)

	ctx := context.Background()
	fx.ratingRepo.EXPECT().
		Delete(ctx, int64(11)).
		Return(errors.New("connection reset"))

	err := fx.service.DeleteRating(ctx, 11)

	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrRatingNotFound)
}
