// internal/services/auth_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/vastra/admin-backend/internal/config"
	"github.com/vastra/admin-backend/internal/models"
	"github.com/vastra/admin-backend/internal/utils"
)

// AuthService authenticates console admins and issues JWT token pairs.
type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"` // seconds
}

// Login accepts either the username or the email in the username field.
// Failed attempts get the same error regardless of which check failed.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*models.Admin, *TokenPair, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, nil, err
	}

	var admin models.Admin
	err := s.db.WithContext(ctx).
		Where("username = ? OR email = ?", req.Username, req.Username).
		First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, errors.New("invalid credentials")
		}
		return nil, nil, fmt.Errorf("database error: %w", err)
	}

	if admin.Status != models.AdminStatusActive {
		return nil, nil, errors.New("account is suspended")
	}

	if admin.CheckPassword(req.Password) != nil {
		return nil, nil, errors.New("invalid credentials")
	}

	tokens, err := s.issueTokens(admin)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	if err := s.db.WithContext(ctx).Model(&admin).
		Update("last_login_at", now).Error; err != nil {
		logrus.WithError(err).WithField("admin_id", admin.ID).
			Warn("Failed to record last login time")
	}
	admin.LastLoginAt = &now

	return &admin, tokens, nil
}

// Refresh exchanges a valid refresh token for a fresh token pair.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	adminID, err := utils.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, errors.New("invalid refresh token")
	}

	id, err := uuid.Parse(adminID)
	if err != nil {
		return nil, errors.New("invalid refresh token")
	}

	admin, err := s.GetAdmin(ctx, id)
	if err != nil {
		return nil, err
	}
	if admin.Status != models.AdminStatusActive {
		return nil, errors.New("account is suspended")
	}

	return s.issueTokens(*admin)
}

func (s *AuthService) GetAdmin(ctx context.Context, id uuid.UUID) (*models.Admin, error) {
	var admin models.Admin
	if err := s.db.WithContext(ctx).First(&admin, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("admin not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &admin, nil
}

func (s *AuthService) issueTokens(admin models.Admin) (*TokenPair, error) {
	access, err := utils.GenerateJWT(admin.ID, admin.Username, s.cfg.JWT.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refresh, err := utils.GenerateRefreshToken(admin.ID, s.cfg.JWT.RefreshTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    s.cfg.JWT.AccessTokenTTL * 3600,
	}, nil
}
