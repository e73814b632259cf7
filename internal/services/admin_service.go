package services

import (
	"errors"
	"fmt"

	"ratehub/internal/models"
	"ratehub/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// AdminService handles the administrator-only operations: dashboard counters,
// listings, and direct creation of users and stores.
type AdminService struct {
	userRepo   repositories.UserRepository
	storeRepo  repositories.StoreRepository
	ratingRepo repositories.RatingRepository
}

// NewAdminService creates a new AdminService.
func NewAdminService(userRepo repositories.UserRepository, storeRepo repositories.StoreRepository, ratingRepo repositories.RatingRepository) *AdminService {
	return &AdminService{
		userRepo:   userRepo,
		storeRepo:  storeRepo,
		ratingRepo: ratingRepo,
	}
}

// GetDashboardSummary returns the user, store and rating counts. Pure read.
func (s *AdminService) GetDashboardSummary() (*models.DashboardSummary, error) {
	userCount, err := s.userRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to build dashboard summary: %w", err)
	}
	storeCount, err := s.storeRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to build dashboard summary: %w", err)
	}
	ratingCount, err := s.ratingRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to build dashboard summary: %w", err)
	}
	return &models.DashboardSummary{
		UserCount:   userCount,
		StoreCount:  storeCount,
		RatingCount: ratingCount,
	}, nil
}

// ListUsers returns all users. Password hashes never leave the model's JSON
// projection.
func (s *AdminService) ListUsers() ([]models.User, error) {
	return s.userRepo.GetAll()
}

// ListStores returns all stores with their computed average rating; stores
// without ratings appear with a 0 average.
func (s *AdminService) ListStores() ([]models.StoreWithRating, error) {
	return s.storeRepo.GetAllWithRating()
}

// CreateUser creates an account with a caller-chosen role. Unlike
// self-registration, the admin may create other admins and owners directly.
func (s *AdminService) CreateUser(user *models.User) error {
	if user.Name == "" || user.Email == "" || user.Password == "" || user.Role == "" {
		return fmt.Errorf("name, email, password and role are required: %w", ErrInvalidInput)
	}
	if !models.ValidRole(user.Role) {
		return fmt.Errorf("unknown role %q: %w", user.Role, ErrInvalidInput)
	}

	if existing, err := s.userRepo.GetByEmail(user.Email); err == nil && existing != nil {
		return fmt.Errorf("email '%s': %w", user.Email, ErrDuplicateEmail)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashedPassword)

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return fmt.Errorf("email '%s': %w", user.Email, ErrDuplicateEmail)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// CreateStore attaches a store to an existing owner. The owner must be a user
// holding the owner role; beyond that, the admin path deliberately does not
// enforce one store per owner — only the self-service path does.
func (s *AdminService) CreateStore(store *models.Store) error {
	if store.Name == "" || store.Address == "" || store.OwnerID == "" {
		return fmt.Errorf("name, address and owner_id are required: %w", ErrInvalidInput)
	}

	owner, err := s.userRepo.GetByID(store.OwnerID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("owner %s: %w", store.OwnerID, ErrInvalidOwner)
		}
		return fmt.Errorf("failed to look up owner %s: %w", store.OwnerID, err)
	}
	if owner.Role != models.RoleOwner {
		return fmt.Errorf("user %s has role %q: %w", store.OwnerID, owner.Role, ErrInvalidOwner)
	}

	if err := s.storeRepo.Create(store); err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}
	return nil
}
