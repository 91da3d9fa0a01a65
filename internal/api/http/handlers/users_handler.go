package handlers

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/user-service/internal/api/dto"
	"github.com/spec-kit/user-service/internal/domain"
	"github.com/spec-kit/user-service/internal/service"
)

//go:generate mockgen -source=users_handler.go -destination=mock_users_handler_test.go -package=handlers

// UserGateway is the administrative user store.
type UserGateway interface {
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)
	Update(ctx context.Context, id string, req dto.UpdateUserRequest) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

// Authenticator handles login and self-registration.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*service.AuthResult, error)
	Signup(ctx context.Context, req dto.SignupRequest) (*service.AuthResult, error)
}

// UsersHandler exposes user CRUD and auth endpoints.
type UsersHandler struct {
	users UserGateway
	auth  Authenticator
}

// NewUsersHandler constructs handler.
func NewUsersHandler(users UserGateway, auth Authenticator) *UsersHandler {
	return &UsersHandler{users: users, auth: auth}
}

// List handles GET /users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.users.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.UsersResponse{Users: dto.NewUserResponses(users)})
}

// Create handles POST /users.
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.users.Create(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewUserResponse(user))
}

// Update handles PUT /users/:id.
func (h *UsersHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.users.Update(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUserResponse(user))
}

// Delete handles DELETE /users/:id.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	if err := h.users.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "User deleted successfully"})
}

// Login handles POST /users/login.
func (h *UsersHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	res, err := h.auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(dto.LoginResponse{
		Message: "Login successful",
		Token:   res.Token,
		User:    dto.NewUserResponse(res.User),
	})
}

// Register handles POST /users/register.
func (h *UsersHandler) Register(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	res, err := h.auth.Signup(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.SignupResponse{
		Message: "Signup successful",
		User:    dto.NewUserResponse(res.User),
		Token:   res.Token,
	})
}
