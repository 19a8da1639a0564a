// internal/services/auth_service_test.go
package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/vastra/admin-backend/internal/models"
	"github.com/vastra/admin-backend/internal/utils"
)

func seedAdmin(t *testing.T, db *gorm.DB, status models.AdminStatus) *models.Admin {
	t.Helper()
	admin := &models.Admin{
		Username: "ops",
		Email:    "ops@example.com",
		Status:   status,
	}
	require.NoError(t, admin.SetPassword("correct horse"))
	require.NoError(t, db.Create(admin).Error)
	return admin
}

func TestLoginIssuesTokens(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, newTestConfig())
	seedAdmin(t, db, models.AdminStatusActive)

	admin, tokens, err := svc.Login(context.Background(), LoginRequest{
		Username: "ops",
		Password: "correct horse",
	})
	require.NoError(t, err)
	require.NotNil(t, tokens)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.NotNil(t, admin.LastLoginAt)

	claims, err := utils.ValidateJWT(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, admin.ID.String(), claims.AdminID)
	assert.Equal(t, "ops", claims.Username)
}

func TestLoginAcceptsEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, newTestConfig())
	seedAdmin(t, db, models.AdminStatusActive)

	_, tokens, err := svc.Login(context.Background(), LoginRequest{
		Username: "ops@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, newTestConfig())
	seedAdmin(t, db, models.AdminStatusActive)

	_, _, err := svc.Login(context.Background(), LoginRequest{
		Username: "ops",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestLoginRejectsUnknownAdmin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, newTestConfig())

	_, _, err := svc.Login(context.Background(), LoginRequest{
		Username: "ghost",
		Password: "anything",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestLoginRejectsSuspendedAdmin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, newTestConfig())
	seedAdmin(t, db, models.AdminStatusSuspended)

	_, _, err := svc.Login(context.Background(), LoginRequest{
		Username: "ops",
		Password: "correct horse",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "suspended")
}

func TestRefreshRotatesTokens(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, newTestConfig())
	seedAdmin(t, db, models.AdminStatusActive)

	_, tokens, err := svc.Login(context.Background(), LoginRequest{
		Username: "ops",
		Password: "correct horse",
	})
	require.NoError(t, err)

	fresh, err := svc.Refresh(context.Background(), tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, fresh.AccessToken)
}

func TestRefreshRejectsGarbage(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, newTestConfig())

	_, err := svc.Refresh(context.Background(), "not-a-token")
	require.Error(t, err)
}
