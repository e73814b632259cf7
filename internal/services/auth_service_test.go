package services_test

import (
	"fmt"
	"testing"
	"time"

	"ratehub/internal/models"
	"ratehub/internal/repositories"
	"ratehub/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "test_jwt_secret"

func TestAuthService_Register(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	// Successful registration defaults the role to "user" and stores a hash,
	// never the plaintext password.
	user := &models.User{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "password123",
		Address:  "1 Test Street",
	}
	mockRepo.On("GetByEmail", user.Email).Return(nil, fmt.Errorf("user: %w", repositories.ErrNotFound)).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	err := authService.Register(user)
	assert.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEqual(t, "password123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))
	mockRepo.AssertExpectations(t)

	// Email already registered.
	dup := &models.User{Name: "Other", Email: "test@example.com", Password: "password123"}
	mockRepo.On("GetByEmail", dup.Email).Return(&models.User{ID: "1"}, nil).Once()
	err = authService.Register(dup)
	assert.ErrorIs(t, err, services.ErrDuplicateEmail)
	mockRepo.AssertExpectations(t)

	// A concurrent duplicate that slips past the check is caught by the
	// unique index and still reported as a duplicate email.
	racer := &models.User{Name: "Racer", Email: "race@example.com", Password: "password123"}
	mockRepo.On("GetByEmail", racer.Email).Return(nil, fmt.Errorf("user: %w", repositories.ErrNotFound)).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(fmt.Errorf("user: %w", repositories.ErrDuplicate)).Once()
	err = authService.Register(racer)
	assert.ErrorIs(t, err, services.ErrDuplicateEmail)
	mockRepo.AssertExpectations(t)

	// Missing fields.
	err = authService.Register(&models.User{Email: "x@example.com"})
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	// Self-registration may not claim the admin role.
	err = authService.Register(&models.User{
		Name:     "Sneaky",
		Email:    "sneaky@example.com",
		Password: "password123",
		Role:     models.RoleAdmin,
	})
	assert.ErrorIs(t, err, services.ErrInvalidInput)
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       "user-123",
		Name:     "Test User",
		Email:    "test@example.com",
		Password: string(hashedPassword),
		Role:     models.RoleOwner,
	}

	// Successful login returns a token carrying the user's ID and role.
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	token, loggedIn, err := authService.Login(user.Email, "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, loggedIn.ID)

	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(testJWTSecret), nil
	})
	assert.NoError(t, err)
	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, user.ID, claims["user_id"])
	assert.Equal(t, models.RoleOwner, claims["role"])
	mockRepo.AssertExpectations(t)

	// The middleware sees the same identity the login embedded.
	validated, err := authService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, validated["user_id"])
	assert.Equal(t, models.RoleOwner, validated["role"])

	// Wrong password.
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	_, _, err = authService.Login(user.Email, "wrongpassword")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	mockRepo.AssertExpectations(t)

	// Unknown email is distinguishable from a bad password.
	mockRepo.On("GetByEmail", "nobody@example.com").Return(nil, fmt.Errorf("user: %w", repositories.ErrNotFound)).Once()
	_, _, err = authService.Login("nobody@example.com", "password123")
	assert.ErrorIs(t, err, services.ErrUserNotFound)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	// An expired token is rejected.
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "user-123",
		"role":    models.RoleUser,
		"exp":     time.Now().Add(-time.Hour).Unix(),
		"iat":     time.Now().Add(-25 * time.Hour).Unix(),
	})
	expiredString, err := expired.SignedString([]byte(testJWTSecret))
	assert.NoError(t, err)
	_, err = authService.ValidateToken(expiredString)
	assert.Error(t, err)

	// A token signed with a different secret is rejected.
	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "user-123",
		"role":    models.RoleAdmin,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	forgedString, err := forged.SignedString([]byte("other_secret"))
	assert.NoError(t, err)
	_, err = authService.ValidateToken(forgedString)
	assert.Error(t, err)

	// Garbage is rejected.
	_, err = authService.ValidateToken("not-a-token")
	assert.Error(t, err)
}
