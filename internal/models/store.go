package models

import "gorm.io/gorm"

// Store represents a rateable store belonging to a user with the owner role.
//
// OwnerID is deliberately NOT a unique column: the owner self-service path
// enforces one store per owner at write time, while the admin path may attach
// additional stores to an owner.
type Store struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string `json:"name" gorm:"type:varchar(100)" validate:"required,min=2,max=100"`
	Email      string `json:"email" gorm:"type:varchar(255)" validate:"omitempty,email"`
	Address    string `json:"address" gorm:"type:varchar(400)" validate:"required,max=400"`
	OwnerID    string `json:"owner_id" gorm:"index;type:varchar(36)" validate:"required"`
	gorm.Model `json:"-"`
}

// StoreWithRating is the admin projection of a store joined with its average
// rating. Rating is 0 when the store has no ratings yet.
type StoreWithRating struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Address string  `json:"address"`
	OwnerID string  `json:"owner_id"`
	Rating  float64 `json:"rating"`
}

// StoreForUser extends the rated-store projection with the requesting user's
// own rating. UserRating is nil when the user has not rated the store.
type StoreForUser struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Address    string  `json:"address"`
	Rating     float64 `json:"rating"`
	UserRating *int    `json:"user_rating"`
}

// RatingEntry is a single user's rating of a store, as shown to the store's
// owner.
type RatingEntry struct {
	UserID string `json:"user_id"`
	Value  int    `json:"rating"`
}

// StoreDetails is the owner's view of their store: the store itself, the
// average rating, and every individual rating it has received.
type StoreDetails struct {
	Store   Store         `json:"store"`
	Rating  float64       `json:"rating"`
	Ratings []RatingEntry `json:"ratings"`
}

// DashboardSummary holds the admin dashboard counters.
type DashboardSummary struct {
	UserCount   int64 `json:"userCount"`
	StoreCount  int64 `json:"storeCount"`
	RatingCount int64 `json:"ratingCount"`
}
