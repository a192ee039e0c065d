package model

import (
	"time"

	"github.com/google/uuid"
)

// Favorite links a user to a restaurant. The composite unique index is the
// source of truth for the one-favorite-per-pair rule; service-level checks
// only exist to produce a friendlier response.
type Favorite struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_restaurant"`
	RestaurantId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_restaurant"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`

	Restaurant Restaurant `gorm:"foreignKey:RestaurantId"`
}

func (Favorite) TableName() string {
	return "favorites"
}
