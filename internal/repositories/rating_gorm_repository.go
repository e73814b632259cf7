package repositories

import (
	"errors"
	"fmt"
	"time"

	"ratehub/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMRatingRepository is a GORM implementation of RatingRepository.
type GORMRatingRepository struct {
	db *gorm.DB
}

// NewGORMRatingRepository creates a new instance of GORMRatingRepository.
func NewGORMRatingRepository(db *gorm.DB) *GORMRatingRepository {
	return &GORMRatingRepository{
		db: db,
	}
}

// Upsert writes the rating as a single INSERT ... ON CONFLICT DO UPDATE
// against the (user_id, store_id) unique index, so two submissions from the
// same user end up as one row holding the latest value.
func (r *GORMRatingRepository) Upsert(rating *models.Rating) error {
	if rating.ID == "" {
		rating.ID = uuid.New().String()
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "store_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"rating":     rating.Value,
			"updated_at": time.Now(),
		}),
	}).Create(rating).Error
	if err != nil {
		return fmt.Errorf("failed to upsert rating for store %s: %w", rating.StoreID, err)
	}
	return nil
}

// GetByUserAndStore retrieves a user's rating of a store, if any.
func (r *GORMRatingRepository) GetByUserAndStore(userID, storeID string) (*models.Rating, error) {
	var rating models.Rating
	if err := r.db.First(&rating, "user_id = ? AND store_id = ?", userID, storeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("rating by user %s for store %s: %w", userID, storeID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get rating by user %s for store %s: %w", userID, storeID, err)
	}
	return &rating, nil
}

// ListByStore retrieves all ratings a store has received.
func (r *GORMRatingRepository) ListByStore(storeID string) ([]models.Rating, error) {
	var ratings []models.Rating
	if err := r.db.Find(&ratings, "store_id = ?", storeID).Error; err != nil {
		return nil, fmt.Errorf("failed to list ratings for store %s: %w", storeID, err)
	}
	return ratings, nil
}

// Count returns the number of ratings.
func (r *GORMRatingRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Rating{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count ratings: %w", err)
	}
	return count, nil
}
