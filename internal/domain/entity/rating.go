package entity

import "time"

// Score bounds for a rating.
const (
	MinScore = 1
	MaxScore = 5
)

// Rating is a single star rating for a restaurant. UserID is nil for
// anonymous ratings; a user may rate the same restaurant more than once.
type Rating struct {
	ID           int64     `json:"id"`
	UserID       *int64    `json:"user_id,omitempty"`
	RestaurantID int64     `json:"restaurant_id"`
	Score        int       `json:"score"`
	Comment      *string   `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
}
