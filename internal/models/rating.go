package models

import "gorm.io/gorm"

// Rating is one user's rating of one store. The composite unique index on
// (user_id, store_id) makes resubmission an update rather than a second row.
type Rating struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID     string `json:"user_id" gorm:"uniqueIndex:idx_ratings_user_store;type:varchar(36)" validate:"required"`
	StoreID    string `json:"store_id" gorm:"uniqueIndex:idx_ratings_user_store;type:varchar(36)" validate:"required"`
	Value      int    `json:"rating" gorm:"column:rating" validate:"required,gte=1,lte=5"`
	gorm.Model `json:"-"`
}
