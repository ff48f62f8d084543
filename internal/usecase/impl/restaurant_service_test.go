package impl

import (
	"context"
	"testing"
	"time"

	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	mockRepo "bistro/internal/mocks/repository"
	"bistro/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// restaurantServiceFixtures holds all test dependencies for restaurant service tests.
type restaurantServiceFixtures struct {
	service        usecase.RestaurantUsecase
	restaurantRepo *mockRepo.MockRestaurantRepository
	ratingRepo     *mockRepo.MockRatingRepository
}

func createTestRestaurantService(t *testing.T) restaurantServiceFixtures {
	restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	ratingRepo := mockRepo.NewMockRatingRepository(t)

	service := NewRestaurantService(RestaurantServiceParams{
		RestaurantRepo: restaurantRepo,
		RatingRepo:     ratingRepo,
		Logger:         newDiscardLogger(),
	})

	return restaurantServiceFixtures{
		service:        service,
		restaurantRepo: restaurantRepo,
		ratingRepo:     ratingRepo,
	}
}

func TestRestaurantService_ListRestaurants(t *testing.T) {
	fx := createTestRestaurantService(t)

	ctx := context.Background()
	avg := 4.5
	summaries := []*entity.RestaurantSummary{
		{ID: 1, Name: "Noodle House", AvgRating: &avg, RatingCount: 12},
		{ID: 2, Name: "Quiet Corner", RatingCount: 0},
	}

	fx.restaurantRepo.EXPECT().
		List(ctx, "noodle").
		Return(summaries, nil)

	got, err := fx.service.ListRestaurants(ctx, "noodle")

	require.NoError(t, err)
	assert.Equal(t, summaries, got)
}

func TestRestaurantService_ListRestaurants_Empty(t *testing.T) {
	fx := createTestRestaurantService(t)

	ctx := context.Background()
	fx.restaurantRepo.EXPECT().
		List(ctx, "").
		Return([]*entity.RestaurantSummary{}, nil)

	got, err := fx.service.ListRestaurants(ctx, "")

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRestaurantService_ListRestaurants_RepositoryFailure(t *testing.T) {
	fx := createTestRestaurantService(t)

	ctx := context.Background()
	fx.restaurantRepo.EXPECT().
		List(ctx, "").
		Return(nil, errors.New("connection reset"))

	_, err := fx.service.ListRestaurants(ctx, "")

	assert.Error(t, err)
}

func TestRestaurantService_GetRestaurant(t *testing.T) {
	fx := createTestRestaurantService(t)

	ctx := context.Background()
	avg := 3.7
	summary := &entity.RestaurantSummary{ID: 3, Name: "Noodle House", AvgRating: &avg, RatingCount: 9}

	fx.restaurantRepo.EXPECT().
		FindByID(ctx, int64(3)).
		Return(summary, nil)

	got, err := fx.service.GetRestaurant(ctx, 3)

	require.NoError(t, err)
	assert.Equal(t, summary, got)
}

func TestRestaurantService_GetRestaurant_NotFound(t *testing.T) {
	fx := createTestRestaurantService(t)

	ctx := context.Background()
	fx.restaurantRepo.EXPECT().
		FindByID(ctx, int64(99)).
		Return(nil, repository.ErrRestaurantNotFound)

	_, err := fx.service.GetRestaurant(ctx, 99)

	assert.ErrorIs(t, err, domainerrors.ErrRestaurantNotFound)
}

func TestRestaurantService_ListRatings(t *testing.T) {
	fx := createTestRestaurantService(t)

	ctx := context.Background()
	comment := "Great noodles"
	ratings := []*entity.Rating{
		{ID: 2, RestaurantID: 3, Score: 5, Comment: &comment, CreatedAt: time.Now()},
		{ID: 1, RestaurantID: 3, Score: 3, CreatedAt: time.Now().Add(-time.Hour)},
	}

	fx.ratingRepo.EXPECT().
		ListByRestaurant(ctx, int64(3)).
		Return(ratings, nil)

	got, err := fx.service.ListRatings(ctx, 3)

	require.NoError(t, err)
	assert.Equal(t, ratings, got)
}
