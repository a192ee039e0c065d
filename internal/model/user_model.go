package model

import (
	"time"

	"github.com/google/uuid"
)

// User is the anonymous per-device identity. A row is created lazily on the
// first favorite-affecting request from a new session.
type User struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (User) TableName() string {
	return "users"
}
