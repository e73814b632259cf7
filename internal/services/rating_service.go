package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"ratehub/internal/models"
	"ratehub/internal/repositories"
	"ratehub/pkg/rabbitmq"
)

// RatingService handles the regular-user operations: browsing stores with
// their ratings and submitting (or revising) a rating.
type RatingService struct {
	storeRepo  repositories.StoreRepository
	ratingRepo repositories.RatingRepository
	mqClient   *rabbitmq.Client
}

// NewRatingService creates a new RatingService. mqClient may be nil, in which
// case event publication is skipped.
func NewRatingService(storeRepo repositories.StoreRepository, ratingRepo repositories.RatingRepository, mqClient *rabbitmq.Client) *RatingService {
	return &RatingService{
		storeRepo:  storeRepo,
		ratingRepo: ratingRepo,
		mqClient:   mqClient,
	}
}

// ListStoresWithRatings returns every store with its average rating and the
// requesting user's own rating where one exists.
func (s *RatingService) ListStoresWithRatings(userID string) ([]models.StoreForUser, error) {
	return s.storeRepo.GetAllForUser(userID)
}

// SubmitRating records the user's rating of a store as an atomic upsert on
// (user_id, store_id): first submission inserts, resubmission overwrites the
// value. Submitting the same value twice leaves the same stored state.
func (s *RatingService) SubmitRating(userID, storeID string, value int) error {
	if storeID == "" {
		return fmt.Errorf("store_id is required: %w", ErrInvalidInput)
	}
	if value < 1 || value > 5 {
		return fmt.Errorf("rating must be between 1 and 5, got %d: %w", value, ErrInvalidInput)
	}

	if _, err := s.storeRepo.GetByID(storeID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("store %s does not exist: %w", storeID, ErrInvalidInput)
		}
		return fmt.Errorf("failed to look up store %s: %w", storeID, err)
	}

	rating := &models.Rating{
		UserID:  userID,
		StoreID: storeID,
		Value:   value,
	}
	if err := s.ratingRepo.Upsert(rating); err != nil {
		return fmt.Errorf("failed to submit rating: %w", err)
	}

	s.publishSubmitted(userID, storeID, value)
	return nil
}

// publishSubmitted emits a rating.submitted event. Publication is best-effort:
// the rating is already durable, so a broker failure is only logged.
func (s *RatingService) publishSubmitted(userID, storeID string, value int) {
	if s.mqClient == nil {
		return
	}
	event := map[string]interface{}{
		"userID":  userID,
		"storeID": storeID,
		"rating":  value,
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal rating event: %v", err)
		return
	}
	if err := s.mqClient.Publish("rating.submitted", body); err != nil {
		log.Printf("Warning: failed to publish rating event for store %s: %v", storeID, err)
	}
}
