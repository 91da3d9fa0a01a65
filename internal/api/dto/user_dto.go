package dto

import (
	"time"

	"github.com/spec-kit/user-service/internal/domain"
)

// SignupRequest payload for self-registration.
type SignupRequest struct {
	FirstName     string `json:"firstName" validate:"required"`
	LastName      string `json:"lastName" validate:"required"`
	Age           *int   `json:"age"`
	Gender        string `json:"gender"`
	ContactNumber string `json:"contactNumber"`
	Email         string `json:"email" validate:"required"`
	Username      string `json:"username" validate:"required"`
	Address       string `json:"address"`
	Password      string `json:"password" validate:"required"`
	Type          string `json:"type"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateUserRequest is the field set accepted by administrative create.
type CreateUserRequest struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Age           *int   `json:"age"`
	Gender        string `json:"gender"`
	ContactNumber string `json:"contactNumber"`
	Email         string `json:"email"`
	Username      string `json:"username"`
	Address       string `json:"address"`
	Password      string `json:"password"`
	IsActive      *bool  `json:"isActive"`
	Type          string `json:"type"`
}

// UpdateUserRequest is a partial update; nil fields are left untouched.
type UpdateUserRequest struct {
	FirstName     *string `json:"firstName"`
	LastName      *string `json:"lastName"`
	Age           *int    `json:"age"`
	Gender        *string `json:"gender"`
	ContactNumber *string `json:"contactNumber"`
	Email         *string `json:"email"`
	Username      *string `json:"username"`
	Address       *string `json:"address"`
	Password      *string `json:"password"`
	IsActive      *bool   `json:"isActive"`
	Type          *string `json:"type"`
}

// UserResponse is the caller-facing view of a user. It has no credential field.
type UserResponse struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Age           *int      `json:"age,omitempty"`
	Gender        string    `json:"gender,omitempty"`
	ContactNumber string    `json:"contactNumber,omitempty"`
	Email         string    `json:"email"`
	Username      string    `json:"username"`
	Address       string    `json:"address,omitempty"`
	IsActive      bool      `json:"isActive"`
	Type          string    `json:"type"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// NewUserResponse strips the credential from a domain user.
func NewUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Age:           u.Age,
		Gender:        u.Gender,
		ContactNumber: u.ContactNumber,
		Email:         u.Email,
		Username:      u.Username,
		Address:       u.Address,
		IsActive:      u.IsActive,
		Type:          u.Type,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

// NewUserResponses converts a list of users.
func NewUserResponses(users []domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, NewUserResponse(&users[i]))
	}
	return out
}

// UsersResponse wraps the user list.
type UsersResponse struct {
	Users []UserResponse `json:"users"`
}

// LoginResponse is returned by POST /users/login.
type LoginResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

// SignupResponse is returned by POST /users/register.
type SignupResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
	Token   string       `json:"token"`
}

// MessageResponse carries a human-readable message.
type MessageResponse struct {
	Message string `json:"message"`
}
