package repositories

import (
	"errors"
	"fmt"

	"ratehub/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMStoreRepository is a GORM implementation of StoreRepository.
type GORMStoreRepository struct {
	db *gorm.DB
}

// NewGORMStoreRepository creates a new instance of GORMStoreRepository.
func NewGORMStoreRepository(db *gorm.DB) *GORMStoreRepository {
	return &GORMStoreRepository{
		db: db,
	}
}

// Create inserts a store in the database.
func (r *GORMStoreRepository) Create(store *models.Store) error {
	if store.ID == "" {
		store.ID = uuid.New().String()
	}
	if err := r.db.Create(store).Error; err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}
	return nil
}

// CreateExclusive inserts a store only if its owner has none. The existence
// check and the insert share one transaction.
func (r *GORMStoreRepository) CreateExclusive(store *models.Store) error {
	if store.ID == "" {
		store.ID = uuid.New().String()
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Store{}).Where("owner_id = ?", store.OwnerID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check existing store for owner %s: %w", store.OwnerID, err)
		}
		if count > 0 {
			return fmt.Errorf("owner %s: %w", store.OwnerID, ErrOwnerHasStore)
		}
		if err := tx.Create(store).Error; err != nil {
			return fmt.Errorf("failed to create store: %w", err)
		}
		return nil
	})
	return err
}

// GetByID retrieves a single store by its ID.
func (r *GORMStoreRepository) GetByID(id string) (*models.Store, error) {
	var store models.Store
	if err := r.db.First(&store, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("store with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get store by ID %s: %w", id, err)
	}
	return &store, nil
}

// GetByOwnerID retrieves the store belonging to the given owner.
func (r *GORMStoreRepository) GetByOwnerID(ownerID string) (*models.Store, error) {
	var store models.Store
	if err := r.db.First(&store, "owner_id = ?", ownerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("store for owner %s: %w", ownerID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get store for owner %s: %w", ownerID, err)
	}
	return &store, nil
}

// GetAllWithRating returns all stores left-joined with their average rating.
// The rounding to one decimal happens in SQL so Postgres and SQLite agree.
func (r *GORMStoreRepository) GetAllWithRating() ([]models.StoreWithRating, error) {
	var stores []models.StoreWithRating
	err := r.db.Table("stores").
		Select("stores.id, stores.name, stores.email, stores.address, stores.owner_id, "+
			"COALESCE(ROUND(AVG(ratings.rating), 1), 0) AS rating").
		Joins("LEFT JOIN ratings ON ratings.store_id = stores.id AND ratings.deleted_at IS NULL").
		Where("stores.deleted_at IS NULL").
		Group("stores.id, stores.name, stores.email, stores.address, stores.owner_id").
		Scan(&stores).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get stores with ratings: %w", err)
	}
	return stores, nil
}

// GetAllForUser returns all stores with their average rating plus the given
// user's own rating, fetched via a correlated subquery.
func (r *GORMStoreRepository) GetAllForUser(userID string) ([]models.StoreForUser, error) {
	var stores []models.StoreForUser
	err := r.db.Table("stores").
		Select("stores.id, stores.name, stores.email, stores.address, "+
			"COALESCE(ROUND(AVG(ratings.rating), 1), 0) AS rating, "+
			"(SELECT own.rating FROM ratings own WHERE own.user_id = ? "+
			"AND own.store_id = stores.id AND own.deleted_at IS NULL LIMIT 1) AS user_rating", userID).
		Joins("LEFT JOIN ratings ON ratings.store_id = stores.id AND ratings.deleted_at IS NULL").
		Where("stores.deleted_at IS NULL").
		Group("stores.id, stores.name, stores.email, stores.address").
		Scan(&stores).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get stores for user %s: %w", userID, err)
	}
	return stores, nil
}

// Count returns the number of stores.
func (r *GORMStoreRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Store{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count stores: %w", err)
	}
	return count, nil
}
