package handlers

import (
	"log"

	"ratehub/internal/middleware"
	"ratehub/internal/models"
	"ratehub/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OwnerHandler handles HTTP requests for store-owner operations.
type OwnerHandler struct {
	ownerService *services.OwnerService
	validate     *validator.Validate
}

// NewOwnerHandler creates a new OwnerHandler.
func NewOwnerHandler(ownerService *services.OwnerService) *OwnerHandler {
	return &OwnerHandler{
		ownerService: ownerService,
		validate:     validator.New(),
	}
}

// RegisterRoutes registers the owner routes behind the owner role gate.
func (h *OwnerHandler) RegisterRoutes(router fiber.Router) {
	ownerRoutes := router.Group("/owner", middleware.RequireRole(models.RoleOwner))
	ownerRoutes.Post("/store", h.HandleCreateStore)
	ownerRoutes.Get("/my-store", h.HandleMyStore)
}

// OwnerStoreRequest represents the self-service store-creation body. The
// owner is taken from the token, never from the body.
type OwnerStoreRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Address string `json:"address" validate:"required,max=400"`
}

// HandleCreateStore creates the authenticated owner's store, once.
func (h *OwnerHandler) HandleCreateStore(c *fiber.Ctx) error {
	var req OwnerStoreRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing owner store request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	ownerID, _ := c.Locals(middleware.LocalUserID).(string)
	store := models.Store{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
	}
	if err := h.ownerService.CreateStore(ownerID, &store); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Store created successfully",
		"store":   store,
	})
}

// HandleMyStore returns the owner's store with its average rating and the
// individual ratings. 404 means no store yet; clients show the creation form.
func (h *OwnerHandler) HandleMyStore(c *fiber.Ctx) error {
	ownerID, _ := c.Locals(middleware.LocalUserID).(string)
	details, err := h.ownerService.GetMyStore(ownerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(details)
}
