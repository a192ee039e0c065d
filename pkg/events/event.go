package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	FavoriteAdded   = "FAVORITE_ADDED"
	FavoriteRemoved = "FAVORITE_REMOVED"
)

// FavoriteEvent is published on the in-process bus after a favorite add or
// remove commits, so consumers can react without slowing the request.
type FavoriteEvent struct {
	Type         string    `json:"type"`
	FavoriteId   uuid.UUID `json:"favorite_id"`
	UserId       uuid.UUID `json:"user_id"`
	RestaurantId uuid.UUID `json:"restaurant_id"`
	OccurredAt   time.Time `json:"occurred_at"`
}
