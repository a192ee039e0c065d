package model

import (
	"time"

	"github.com/google/uuid"
)

type Restaurant struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Address      string    `gorm:"type:varchar(500);not null"`
	Hours        *string   `gorm:"type:varchar(255)"`
	Phone        *string   `gorm:"type:varchar(50)"`
	MainImageUrl string    `gorm:"type:text;not null"`
	OwnerMessage string    `gorm:"type:text;not null"`
	Story        string    `gorm:"type:text;not null"`
	IsActive     bool      `gorm:"not null;default:true;index"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}
