package entity

import (
	"time"

	"github.com/google/uuid"
)

type Restaurant struct {
	Id           uuid.UUID
	Name         string
	Address      string
	Hours        *string
	Phone        *string
	MainImageUrl string
	OwnerMessage string
	Story        string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
