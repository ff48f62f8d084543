package entity

import "time"

// Restaurant is a directory entry. Rows are seeded out-of-band and are
// read-only through this API.
type Restaurant struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// RestaurantSummary is a restaurant joined with its rating aggregate.
// AvgRating is nil when the restaurant has no ratings; the aggregate is
// recomputed from rating rows on every read and never persisted.
type RestaurantSummary struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	AvgRating   *float64  `json:"avg_rating"`
	RatingCount int64     `json:"rating_count"`
}

// RestaurantStats is the aggregate pair returned after a rating write.
type RestaurantStats struct {
	AvgRating   *float64 `json:"avg_rating"`
	RatingCount int64    `json:"rating_count"`
}
