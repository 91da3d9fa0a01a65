package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/user-service/internal/api/dto"
	"github.com/spec-kit/user-service/internal/auth"
	"github.com/spec-kit/user-service/internal/config"
	"github.com/spec-kit/user-service/internal/domain"
	"github.com/spec-kit/user-service/internal/repository"
	apperrors "github.com/spec-kit/user-service/pkg/util"
)

// UserService exposes administrative CRUD over stored users.
type UserService struct {
	users       repository.UserRepository
	bcryptCost  int
	defaultType string
	logger      *zap.Logger
}

// NewUserService builds the service.
func NewUserService(cfg config.Config, users repository.UserRepository, logger *zap.Logger) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{
		users:       users,
		bcryptCost:  cfg.Auth.BcryptCost,
		defaultType: defaultUserType(cfg.Auth),
		logger:      logger,
	}
}

// List returns every stored user.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return users, nil
}

// Create persists a new user from the allow-listed request fields.
func (s *UserService) Create(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	if req.Password == "" {
		return nil, apperrors.NewValidationError("Password is required")
	}

	hash, err := auth.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, hashError(err)
	}

	user := &domain.User{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Age:           req.Age,
		Gender:        req.Gender,
		ContactNumber: req.ContactNumber,
		Email:         req.Email,
		Username:      req.Username,
		Address:       req.Address,
		PasswordHash:  hash,
		IsActive:      true,
		Type:          req.Type,
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if user.Type == "" {
		user.Type = s.defaultType
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, writeError("failed to create user", err)
	}
	return user, nil
}

// Update applies a partial update to the user identified by id.
func (s *UserService) Update(ctx context.Context, id string, req dto.UpdateUserRequest) (*domain.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.NewBadRequest("Invalid user id", err)
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperrors.NewNotFound("User not found")
		}
		return nil, apperrors.NewBadRequest("failed to load user", err)
	}

	if req.Password != nil && *req.Password != "" {
		hash, err := auth.HashPassword(*req.Password, s.bcryptCost)
		if err != nil {
			return nil, hashError(err)
		}
		user.PasswordHash = hash
	}
	applyUpdate(user, req)

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperrors.NewNotFound("User not found")
		}
		return nil, writeError("failed to update user", err)
	}
	return user, nil
}

// Delete removes the user identified by id. Deleting a missing user succeeds.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.NewBadRequest("Invalid user id", err)
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return apperrors.NewBadRequest("failed to delete user", err)
	}
	s.logger.Info("user deleted", zap.String("user_id", id))
	return nil
}

func applyUpdate(user *domain.User, req dto.UpdateUserRequest) {
	setString(&user.FirstName, req.FirstName)
	setString(&user.LastName, req.LastName)
	setString(&user.Gender, req.Gender)
	setString(&user.ContactNumber, req.ContactNumber)
	setString(&user.Email, req.Email)
	setString(&user.Username, req.Username)
	setString(&user.Address, req.Address)
	setString(&user.Type, req.Type)
	if req.Age != nil {
		age := *req.Age
		user.Age = &age
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func writeError(message string, err error) error {
	if errors.Is(err, repository.ErrDuplicateUser) {
		return apperrors.NewBadRequest("Email or username already in use", err)
	}
	return apperrors.NewBadRequest(message, err)
}
