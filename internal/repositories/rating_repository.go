package repositories

import "ratehub/internal/models"

// RatingRepository defines the interface for rating data access.
type RatingRepository interface {
	// Upsert inserts the rating, or overwrites the value of the existing row
	// keyed on (user_id, store_id). This is a single atomic statement.
	Upsert(rating *models.Rating) error
	GetByUserAndStore(userID, storeID string) (*models.Rating, error)
	ListByStore(storeID string) ([]models.Rating, error)
	Count() (int64, error)
}
