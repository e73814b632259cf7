package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"ratehub/internal/models"
	"ratehub/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration, login, and token validation.
type AuthService struct {
	userRepo   repositories.UserRepository
	jwtSecret  []byte
	tokenDurat time.Duration // Duration for which JWT is valid
}

// NewAuthService creates a new AuthService. The JWT secret is process-wide
// configuration, never derived per request.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour, // Token valid for 24 hours
	}
}

// Register creates a new account with a bcrypt-hashed password. The role
// defaults to "user"; self-registration may claim "owner" but never "admin" —
// admin accounts are created through the admin path only. Registration has no
// auto-login side effect.
func (s *AuthService) Register(user *models.User) error {
	if user.Name == "" || user.Email == "" || user.Password == "" {
		return fmt.Errorf("name, email and password are required: %w", ErrInvalidInput)
	}
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	if user.Role == models.RoleAdmin || !models.ValidRole(user.Role) {
		return fmt.Errorf("role %q is not allowed on registration: %w", user.Role, ErrInvalidInput)
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
		// The unique index on email backstops the check above against a
		// concurrent registration with the same address.
		if errors.Is(err, repositories.ErrDuplicate) {
			return fmt.Errorf("email '%s': %w", user.Email, ErrDuplicateEmail)
		}
		return fmt.Errorf("failed to register user: %w", err)
	}
	return nil
}

// Login authenticates a user and returns a signed token embedding the user's
// ID and role, plus the user record for the response body. The caller learns
// whether the account exists (ErrUserNotFound) or the password was wrong
// (ErrInvalidCredentials), mirroring the 404/401 split of the HTTP surface.
func (s *AuthService) Login(email, password string) (string, *models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", nil, fmt.Errorf("email %s: %w", email, ErrUserNotFound)
		}
		return "", nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(s.tokenDurat).Unix(),
		"iat":     time.Now().Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return tokenString, user, nil
}

// ValidateToken parses and validates a JWT token, returning the claims if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		log.Printf("Token validation error: %v", err)
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
