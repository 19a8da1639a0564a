// internal/models/admin.go
package models

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Admin is a console operator account. Customer users (models.User) never
// authenticate against this API.
type Admin struct {
	BaseModel
	Username     string      `json:"username" gorm:"uniqueIndex;size:50;not null"`
	Email        string      `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string      `json:"-" gorm:"size:255;not null"`
	Status       AdminStatus `json:"status" gorm:"type:varchar(20);default:'active'"`
	LastLoginAt  *time.Time  `json:"last_login_at"`
}

func (a *Admin) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.PasswordHash = string(hashedPassword)
	return nil
}

func (a *Admin) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password))
}

// AuditLog records every mutating API request.
type AuditLog struct {
	BaseModel
	AdminID      *uuid.UUID `json:"admin_id" gorm:"type:uuid;index"`
	Action       string     `json:"action" gorm:"size:255;not null"`
	ResourceType string     `json:"resource_type" gorm:"size:100;index"`
	ResourceID   *uuid.UUID `json:"resource_id" gorm:"type:uuid"`
	IPAddress    string     `json:"ip_address" gorm:"size:45"`
	UserAgent    string     `json:"user_agent" gorm:"size:500"`
	NewValues    JSONB      `json:"new_values" gorm:"type:text"`
}
