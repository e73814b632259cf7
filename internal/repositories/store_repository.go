package repositories

import "ratehub/internal/models"

// StoreRepository defines the interface for store data access.
type StoreRepository interface {
	// Create inserts a store without any one-store-per-owner check. This is
	// the admin path: an admin may attach additional stores to an owner.
	Create(store *models.Store) error
	// CreateExclusive inserts a store only if the owner has none yet, failing
	// with ErrOwnerHasStore otherwise. Check and insert run in one
	// transaction so a concurrent identical request cannot slip through.
	CreateExclusive(store *models.Store) error
	GetByID(id string) (*models.Store, error)
	GetByOwnerID(ownerID string) (*models.Store, error)
	// GetAllWithRating returns every store joined with its average rating
	// rounded to one decimal; stores without ratings carry a 0 average.
	GetAllWithRating() ([]models.StoreWithRating, error)
	// GetAllForUser is GetAllWithRating plus the given user's own rating per
	// store (nil when the user has not rated it).
	GetAllForUser(userID string) ([]models.StoreForUser, error)
	Count() (int64, error)
}
