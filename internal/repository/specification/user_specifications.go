package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BySessionID filters users by their opaque session identifier
type BySessionID struct {
	SessionID string
}

func (s BySessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionID)
}

// UserOwnedBy filters rows owned by a specific user
type UserOwnedBy struct {
	UserID uuid.UUID
}

func (s UserOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}
