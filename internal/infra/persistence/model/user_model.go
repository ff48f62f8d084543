package model

import (
	"time"
)

// UserModel mirrors the 'users' table. Rows are created on the first
// successful Google callback and refreshed on each later login.
type UserModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	GoogleID  string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Email     string `gorm:"type:varchar(255);not null"`
	Name      string `gorm:"type:varchar(255)"`
	Picture   string `gorm:"type:text"`
	LastLogin *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time

	Ratings []RatingModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
