package model

import "time"

// RestaurantModel mirrors the 'restaurants' table. Rows are seeded
// out-of-band; the API never writes to this table.
type RestaurantModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text"`
	ImageURL    string `gorm:"type:text"`
	CreatedAt   time.Time

	Ratings []RatingModel `gorm:"foreignKey:RestaurantID"`
}

// TableName explicitly sets the table name for GORM.
func (RestaurantModel) TableName() string {
	return "restaurants"
}
