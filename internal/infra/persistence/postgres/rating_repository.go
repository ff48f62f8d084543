package postgres

import (
	"context"

	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	"bistro/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ratingRepository implements the domain.RatingRepository interface using GORM.
type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository is the constructor for ratingRepository.
func NewRatingRepository(db *gorm.DB) repository.RatingRepository {
	return &ratingRepository{db: db}
}

// ListByRestaurant returns the ratings for a restaurant, newest first.
func (repo *ratingRepository) ListByRestaurant(ctx context.Context, restaurantID int64) ([]*entity.Rating, error) {
	var ratingsM []model.RatingModel
	err := repo.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("created_at DESC").
		Find(&ratingsM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ratings")
	}

	ratings := make([]*entity.Rating, 0, len(ratingsM))
	for i := range ratingsM {
		ratings = append(ratings, toRatingDomain(&ratingsM[i]))
	}

	return ratings, nil
}

// Create persists a new rating row.
func (repo *ratingRepository) Create(ctx context.Context, rating *entity.Rating) error {
	ratingM := fromRatingDomain(rating)

	if err := repo.db.WithContext(ctx).Create(ratingM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrRestaurantNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidScore.WrapMessage("score rejected by database constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create rating")
	}

	rating.ID = ratingM.ID
	rating.CreatedAt = ratingM.CreatedAt

	return nil
}

// Delete removes a rating by ID.
func (repo *ratingRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.RatingModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete rating")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRatingNotFound
	}

	return nil
}

// Stats recomputes the (average, count) aggregate for a restaurant.
func (repo *ratingRepository) Stats(ctx context.Context, restaurantID int64) (*entity.RestaurantStats, error) {
	var row struct {
		AvgRating   *float64
		RatingCount int64
	}
	err := repo.db.WithContext(ctx).
		Model(&model.RatingModel{}).
		Select("ROUND(AVG(score)::numeric, 1) AS avg_rating, COUNT(id) AS rating_count").
		Where("restaurant_id = ?", restaurantID).
		Scan(&row).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute restaurant stats")
	}

	return &entity.RestaurantStats{
		AvgRating:   row.AvgRating,
		RatingCount: row.RatingCount,
	}, nil
}

// --- Mapper Functions ---

func toRatingDomain(data *model.RatingModel) *entity.Rating {
	if data == nil {
		return nil
	}

	return &entity.Rating{
		ID:           data.ID,
		UserID:       data.UserID,
		RestaurantID: data.RestaurantID,
		Score:        data.Score,
		Comment:      data.Comment,
		CreatedAt:    data.CreatedAt,
	}
}

func fromRatingDomain(rating *entity.Rating) *model.RatingModel {
	if rating == nil {
		return nil
	}

	return &model.RatingModel{
		ID:           rating.ID,
		UserID:       rating.UserID,
		RestaurantID: rating.RestaurantID,
		Score:        rating.Score,
		Comment:      rating.Comment,
		CreatedAt:    rating.CreatedAt,
	}
}
