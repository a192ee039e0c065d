package entity

import (
	"time"

	"github.com/google/uuid"
)

// Favorite expresses that a User has marked a Restaurant as favored.
// Restaurant is populated when the repository read preloads it.
type Favorite struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	RestaurantId uuid.UUID
	CreatedAt    time.Time

	Restaurant *Restaurant
}
