package handlers

import (
	"log"

	"ratehub/internal/middleware"
	"ratehub/internal/models"
	"ratehub/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles HTTP requests for administrator operations.
type AdminHandler struct {
	adminService *services.AdminService
	validate     *validator.Validate
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		validate:     validator.New(),
	}
}

// RegisterRoutes registers the admin routes. The router passed in must
// already carry AuthRequired; the role gate is applied here.
func (h *AdminHandler) RegisterRoutes(router fiber.Router) {
	adminRoutes := router.Group("/admin", middleware.RequireRole(models.RoleAdmin))
	adminRoutes.Get("/dashboard", h.HandleDashboard)
	adminRoutes.Get("/users", h.HandleListUsers)
	adminRoutes.Get("/stores", h.HandleListStores)
	adminRoutes.Post("/users", h.HandleCreateUser)
	adminRoutes.Post("/stores", h.HandleCreateStore)
}

// HandleDashboard returns the user/store/rating counters.
func (h *AdminHandler) HandleDashboard(c *fiber.Ctx) error {
	summary, err := h.adminService.GetDashboardSummary()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

// HandleListUsers returns all users. The password hash is excluded from the
// JSON projection at the model level.
func (h *AdminHandler) HandleListUsers(c *fiber.Ctx) error {
	users, err := h.adminService.ListUsers()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}

// HandleListStores returns all stores with their average rating.
func (h *AdminHandler) HandleListStores(c *fiber.Ctx) error {
	stores, err := h.adminService.ListStores()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stores)
}

// CreateUserRequest represents the admin user-creation body. Unlike
// registration, the role is required and may be any of the three.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Address  string `json:"address" validate:"omitempty,max=400"`
	Role     string `json:"role" validate:"required,oneof=admin owner user"`
}

// HandleCreateUser creates an account with a caller-chosen role.
func (h *AdminHandler) HandleCreateUser(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create-user request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Address:  req.Address,
		Role:     req.Role,
	}
	if err := h.adminService.CreateUser(&user); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User added successfully",
		"user":    user,
	})
}

// CreateStoreRequest represents the admin store-creation body. Email is
// optional on this path; name, address and the owner are not.
type CreateStoreRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"omitempty,email"`
	Address string `json:"address" validate:"required,max=400"`
	OwnerID string `json:"owner_id" validate:"required"`
}

// HandleCreateStore attaches a store to an existing owner.
func (h *AdminHandler) HandleCreateStore(c *fiber.Ctx) error {
	var req CreateStoreRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create-store request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return respondValidationErrors(c, err)
	}

	store := models.Store{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
		OwnerID: req.OwnerID,
	}
	if err := h.adminService.CreateStore(&store); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Store added successfully",
		"store":   store,
	})
}
