package handlers

import (
	"log"

	"ratehub/internal/middleware"
	"ratehub/internal/models"
	"ratehub/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for regular-user operations.
type UserHandler struct {
	ratingService *services.RatingService
	validate      *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(ratingService *services.RatingService) *UserHandler {
	return &UserHandler{
		ratingService: ratingService,
		validate:      validator.New(),
	}
}

// RegisterRoutes registers the user routes behind the user role gate.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/user", middleware.RequireRole(models.RoleUser))
	userRoutes.Get("/stores", h.HandleListStores)
	userRoutes.Post("/rate", h.HandleRate)
}

// HandleListStores returns every store with its average rating and the
// caller's own rating where one exists.
func (h *UserHandler) HandleListStores(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.LocalUserID).(string)
	stores, err := h.ratingService.ListStoresWithRatings(userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stores)
}

// RateRequest represents the rating submission body.
type RateRequest struct {
	StoreID string `json:"store_id" validate:"required"`
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
}

// HandleRate submits or revises the caller's rating of a store.
func (h *UserHandler) HandleRate(c *fiber.Ctx) error {
	var req RateRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing rate request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	userID, _ := c.Locals(middleware.LocalUserID).(string)
	if err := h.ratingService.SubmitRating(userID, req.StoreID, req.Rating); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Rating submitted",
	})
}
