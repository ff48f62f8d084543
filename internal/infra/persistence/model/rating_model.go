package model

import "time"

// RatingModel mirrors the 'ratings' table. UserID is nullable: anonymous
// ratings are permitted, and deleting a user must not cascade to ratings.
type RatingModel struct {
	ID           int64   `gorm:"primaryKey;autoIncrement"`
	UserID       *int64  `gorm:"index"`
	RestaurantID int64   `gorm:"index;not null"`
	Score        int     `gorm:"not null;check:score >= 1 AND score <= 5"`
	Comment      *string `gorm:"type:text"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (RatingModel) TableName() string {
	return "ratings"
}
