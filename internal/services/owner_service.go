package services

import (
	"errors"
	"fmt"
	"math"

	"ratehub/internal/models"
	"ratehub/internal/repositories"
)

// OwnerService handles the store-owner operations: the one-time self-service
// store creation and the owner's view of their store and its ratings.
type OwnerService struct {
	storeRepo  repositories.StoreRepository
	ratingRepo repositories.RatingRepository
}

// NewOwnerService creates a new OwnerService.
func NewOwnerService(storeRepo repositories.StoreRepository, ratingRepo repositories.RatingRepository) *OwnerService {
	return &OwnerService{
		storeRepo:  storeRepo,
		ratingRepo: ratingRepo,
	}
}

// CreateStore creates the owner's store. The owner ID comes from the
// authenticated identity, never from the request body. Fails with
// ErrAlreadyOwnsStore if the owner already has one; this is the path that
// enforces the one-store-per-owner invariant.
func (s *OwnerService) CreateStore(ownerID string, store *models.Store) error {
	if store.Name == "" || store.Email == "" || store.Address == "" {
		return fmt.Errorf("name, email and address are required: %w", ErrInvalidInput)
	}
	store.OwnerID = ownerID

	if err := s.storeRepo.CreateExclusive(store); err != nil {
		if errors.Is(err, repositories.ErrOwnerHasStore) {
			return fmt.Errorf("owner %s: %w", ownerID, ErrAlreadyOwnsStore)
		}
		return fmt.Errorf("failed to create store: %w", err)
	}
	return nil
}

// GetMyStore returns the owner's store with its average rating and each
// individual rating it has received. ErrStoreNotFound means the owner has no
// store yet; clients show the creation form rather than a hard error.
func (s *OwnerService) GetMyStore(ownerID string) (*models.StoreDetails, error) {
	store, err := s.storeRepo.GetByOwnerID(ownerID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("owner %s: %w", ownerID, ErrStoreNotFound)
		}
		return nil, fmt.Errorf("failed to get store for owner %s: %w", ownerID, err)
	}

	ratings, err := s.ratingRepo.ListByStore(store.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings for store %s: %w", store.ID, err)
	}

	details := &models.StoreDetails{
		Store:   *store,
		Ratings: make([]models.RatingEntry, 0, len(ratings)),
	}
	var sum int
	for _, r := range ratings {
		sum += r.Value
		details.Ratings = append(details.Ratings, models.RatingEntry{
			UserID: r.UserID,
			Value:  r.Value,
		})
	}
	if len(ratings) > 0 {
		// Same one-decimal rounding the SQL projections use.
		details.Rating = math.Round(float64(sum)/float64(len(ratings))*10) / 10
	}
	return details, nil
}
