package dto

import (
	"time"

	"github.com/google/uuid"
)

// RestaurantCard is the trimmed shape served to the swipe deck.
type RestaurantCard struct {
	Id           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	MainImageUrl string    `json:"mainImageUrl"`
	OwnerMessage string    `json:"ownerMessage"`
}

type RestaurantListResponse struct {
	Success bool             `json:"success"`
	Data    []RestaurantCard `json:"data"`
	Count   int              `json:"count"`
}

// RestaurantDetail is the detail-page shape: public fields plus the
// aggregated favorite count. The stored is_active flag stays internal.
type RestaurantDetail struct {
	Id            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Address       string     `json:"address"`
	Hours         *string    `json:"hours"`
	Phone         *string    `json:"phone"`
	MainImageUrl  string     `json:"mainImageUrl"`
	OwnerMessage  string     `json:"ownerMessage"`
	Story         string     `json:"story"`
	FavoriteCount int64      `json:"favoriteCount"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     *time.Time `json:"updatedAt"`
}

type RestaurantDetailResponse struct {
	Success bool             `json:"success"`
	Data    RestaurantDetail `json:"data"`
}

type CreateRestaurantRequest struct {
	Name         string  `json:"name" validate:"required"`
	Address      string  `json:"address" validate:"required"`
	Hours        *string `json:"hours"`
	Phone        *string `json:"phone"`
	MainImageUrl string  `json:"mainImageUrl" validate:"required"`
	OwnerMessage string  `json:"ownerMessage" validate:"required"`
	Story        string  `json:"story" validate:"required"`
}

// RestaurantData is the stored row as the registration endpoint echoes it.
type RestaurantData struct {
	Id           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Address      string     `json:"address"`
	Hours        *string    `json:"hours"`
	Phone        *string    `json:"phone"`
	MainImageUrl string     `json:"mainImageUrl"`
	OwnerMessage string     `json:"ownerMessage"`
	Story        string     `json:"story"`
	IsActive     bool       `json:"isActive"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    *time.Time `json:"updatedAt"`
}

type CreateRestaurantResponse struct {
	Success bool           `json:"success"`
	Data    RestaurantData `json:"data"`
	Message string         `json:"message"`
}
