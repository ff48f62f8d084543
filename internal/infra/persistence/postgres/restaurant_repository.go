package postgres

import (
	"context"
	"strings"
	"time"

	"bistro/internal/domain/entity"
	"bistro/internal/domain/repository"
	"bistro/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// summaryColumns is the projection shared by List and FindByID. The
// aggregate is recomputed per read; avg_rating is NULL with zero ratings.
const summaryColumns = `
	restaurants.id,
	restaurants.name,
	restaurants.description,
	restaurants.image_url,
	restaurants.created_at,
	ROUND(AVG(ratings.score)::numeric, 1) AS avg_rating,
	COUNT(ratings.id) AS rating_count`

// restaurantSummaryRow is the scan target for the joined projection.
type restaurantSummaryRow struct {
	ID          int64
	Name        string
	Description string
	ImageURL    string
	CreatedAt   time.Time
	AvgRating   *float64
	RatingCount int64
}

// restaurantRepository implements the domain.RestaurantRepository interface using GORM.
type restaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository is the constructor for restaurantRepository.
func NewRestaurantRepository(db *gorm.DB) repository.RestaurantRepository {
	return &restaurantRepository{db: db}
}

// List returns all restaurants joined with their rating aggregates.
// Unrated restaurants sort last (NULLS LAST); ties break by name.
func (repo *restaurantRepository) List(ctx context.Context, search string) ([]*entity.RestaurantSummary, error) {
	query := repo.db.WithContext(ctx).
		Table("restaurants").
		Select(summaryColumns).
		Joins("LEFT JOIN ratings ON ratings.restaurant_id = restaurants.id")

	if trimmed := strings.TrimSpace(search); trimmed != "" {
		pattern := "%" + trimmed + "%"
		query = query.Where("restaurants.name ILIKE ? OR restaurants.description ILIKE ?", pattern, pattern)
	}

	var rows []restaurantSummaryRow
	err := query.
		Group("restaurants.id").
		Order("avg_rating DESC NULLS LAST, restaurants.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list restaurants")
	}

	summaries := make([]*entity.RestaurantSummary, 0, len(rows))
	for i := range rows {
		summaries = append(summaries, toRestaurantSummaryDomain(&rows[i]))
	}

	return summaries, nil
}

// FindByID returns a single restaurant with its aggregate.
func (repo *restaurantRepository) FindByID(ctx context.Context, id int64) (*entity.RestaurantSummary, error) {
	var row restaurantSummaryRow
	result := repo.db.WithContext(ctx).
		Table("restaurants").
		Select(summaryColumns).
		Joins("LEFT JOIN ratings ON ratings.restaurant_id = restaurants.id").
		Where("restaurants.id = ?", id).
		Group("restaurants.id").
		Scan(&row)

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to find restaurant by id")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrRestaurantNotFound
	}

	return toRestaurantSummaryDomain(&row), nil
}

// Exists reports whether a restaurant row with the given ID exists.
func (repo *restaurantRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.RestaurantModel{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check restaurant existence")
	}

	return count > 0, nil
}

func toRestaurantSummaryDomain(row *restaurantSummaryRow) *entity.RestaurantSummary {
	return &entity.RestaurantSummary{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		ImageURL:    row.ImageURL,
		CreatedAt:   row.CreatedAt,
		AvgRating:   row.AvgRating,
		RatingCount: row.RatingCount,
	}
}
