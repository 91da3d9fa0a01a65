package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/user-service/internal/api/dto"
	"github.com/spec-kit/user-service/internal/auth"
	"github.com/spec-kit/user-service/internal/config"
	"github.com/spec-kit/user-service/internal/domain"
	"github.com/spec-kit/user-service/internal/repository"
	apperrors "github.com/spec-kit/user-service/pkg/util"
)

// AuthResult is returned by successful login and signup.
type AuthResult struct {
	User      *domain.User
	Token     string
	ExpiresAt time.Time
}

// CredentialService coordinates signup and login flows.
type CredentialService struct {
	users       repository.UserRepository
	tokenMgr    *auth.TokenManager
	validate    *validator.Validate
	bcryptCost  int
	defaultType string
	logger      *zap.Logger
}

// NewCredentialService builds the service.
func NewCredentialService(cfg config.Config, users repository.UserRepository, logger *zap.Logger) *CredentialService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CredentialService{
		users:       users,
		tokenMgr:    auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL()),
		validate:    validator.New(),
		bcryptCost:  cfg.Auth.BcryptCost,
		defaultType: defaultUserType(cfg.Auth),
		logger:      logger,
	}
}

// Login authenticates a user by email and password.
func (s *CredentialService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperrors.NewNotFound("User not found")
		}
		return nil, apperrors.NewInternalError(err)
	}
	if !user.CanLogin() {
		return nil, apperrors.NewForbidden("Your account is inactive. Please contact support.")
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, apperrors.NewUnauthorized("Invalid credentials")
	}
	return s.issue(user)
}

// Signup registers a new active account and issues its first token.
func (s *CredentialService) Signup(ctx context.Context, req dto.SignupRequest) (*AuthResult, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("Please fill in all required fields")
	}

	if err := s.ensureAvailable(ctx, s.users.GetByEmail, req.Email, "Email already in use"); err != nil {
		return nil, err
	}
	if err := s.ensureAvailable(ctx, s.users.GetByUsername, req.Username, "Username already in use"); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, hashError(err)
	}

	userType := req.Type
	if userType == "" {
		userType = s.defaultType
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
		Type:          userType,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return nil, apperrors.NewConflict("Email or username already in use")
		}
		return nil, apperrors.NewInternalError(err)
	}

	s.logger.Info("user registered", zap.String("user_id", user.ID), zap.String("type", user.Type))
	return s.issue(user)
}

// TokenManager exposes the underlying token manager.
func (s *CredentialService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *CredentialService) ensureAvailable(
	ctx context.Context,
	lookup func(context.Context, string) (*domain.User, error),
	value, conflictMsg string,
) error {
	_, err := lookup(ctx, value)
	switch {
	case err == nil:
		return apperrors.NewConflict(conflictMsg)
	case errors.Is(err, repository.ErrUserNotFound):
		return nil
	default:
		return apperrors.NewInternalError(err)
	}
}

func (s *CredentialService) issue(user *domain.User) (*AuthResult, error) {
	token, exp, err := s.tokenMgr.GenerateToken(user.ID, user.Email, user.Type)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return &AuthResult{User: user, Token: token, ExpiresAt: exp}, nil
}

func defaultUserType(cfg config.AuthConfig) string {
	if cfg.DefaultUserType == "" {
		return domain.DefaultUserType
	}
	return cfg.DefaultUserType
}

func hashError(err error) error {
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return apperrors.NewValidationError("Password is too long")
	}
	return apperrors.NewInternalError(err)
}
