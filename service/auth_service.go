// api/service/auth_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/pulsecollective/pulse/api/dao"
	pulse_errors "github.com/pulsecollective/pulse/api/errors"
	logger "github.com/pulsecollective/pulse/api/logging"
	"github.com/pulsecollective/pulse/api/model"
	"github.com/pulsecollective/pulse/api/util"
)

type IAuthService interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.AuthPayload, error)
	Login(ctx context.Context, req model.LoginRequest) (*model.AuthPayload, error)
	Refresh(ctx context.Context, refreshToken string) (*model.AuthPayload, error)
	Me(ctx context.Context, userID string) (*model.User, error)
	UpdateProfile(ctx context.Context, userID string, req model.UpdateProfileRequest) (*model.User, error)
}

// AuthService handles registration, login and token rotation.
type AuthService struct {
	userDAO *dao.UserDAO
	tokens  *util.TokenService
}

func NewAuthService(userDAO *dao.UserDAO, tokens *util.TokenService) *AuthService {
	return &AuthService{userDAO: userDAO, tokens: tokens}
}

func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (*model.AuthPayload, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &model.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         model.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.userDAO.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("User registered", zap.String("userID", user.ID))
	return s.issuePayload(user)
}

func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (*model.AuthPayload, error) {
	user, err := s.userDAO.GetByEmail(ctx, req.Email)
	if errors.Is(err, pulse_errors.ErrUserNotFound) {
		return nil, pulse_errors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, pulse_errors.ErrInvalidCredentials
	}

	return s.issuePayload(user)
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*model.AuthPayload, error) {
	identity, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, err
	}

	// Re-read the user so a role change or deletion takes effect on rotation.
	user, err := s.userDAO.GetByID(ctx, identity.ID)
	if err != nil {
		return nil, err
	}
	return s.issuePayload(user)
}

func (s *AuthService) Me(ctx context.Context, userID string) (*model.User, error) {
	return s.userDAO.GetByID(ctx, userID)
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID string, req model.UpdateProfileRequest) (*model.User, error) {
	user, err := s.userDAO.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if err := s.userDAO.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) issuePayload(user *model.User) (*model.AuthPayload, error) {
	access, refresh, err := s.tokens.IssuePair(user)
	if err != nil {
		return nil, err
	}
	return &model.AuthPayload{User: user, AccessToken: access, RefreshToken: refresh}, nil
}
