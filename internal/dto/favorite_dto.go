package dto

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteRestaurantSummary is the restaurant block nested inside the
// favorites list. The add response uses the narrower AddedRestaurantSummary.
type FavoriteRestaurantSummary struct {
	Id           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	MainImageUrl string    `json:"mainImageUrl"`
	OwnerMessage string    `json:"ownerMessage"`
}

type FavoriteItem struct {
	Id           uuid.UUID                 `json:"id"`
	UserId       uuid.UUID                 `json:"userId"`
	RestaurantId uuid.UUID                 `json:"restaurantId"`
	CreatedAt    time.Time                 `json:"createdAt"`
	Restaurant   FavoriteRestaurantSummary `json:"restaurant"`
}

type FavoriteListResponse struct {
	Favorites []FavoriteItem `json:"favorites"`
	Count     int            `json:"count"`
	Message   string         `json:"message"`
}

type AddFavoriteRequest struct {
	RestaurantId string `json:"restaurantId"`
}

// AddedRestaurantSummary matches the add response's nested restaurant, which
// is narrower than the list's (no address).
type AddedRestaurantSummary struct {
	Id           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	MainImageUrl string    `json:"mainImageUrl"`
	OwnerMessage string    `json:"ownerMessage"`
}

type AddedFavorite struct {
	Id           uuid.UUID              `json:"id"`
	UserId       uuid.UUID              `json:"userId"`
	RestaurantId uuid.UUID              `json:"restaurantId"`
	CreatedAt    time.Time              `json:"createdAt"`
	Restaurant   AddedRestaurantSummary `json:"restaurant"`
}

type AddFavoriteResponse struct {
	Message  string        `json:"message"`
	Favorite AddedFavorite `json:"favorite"`
}

type DeletedFavorite struct {
	Id             uuid.UUID `json:"id"`
	RestaurantName string    `json:"restaurantName"`
}

type RemoveFavoriteResponse struct {
	Success         bool            `json:"success"`
	Message         string          `json:"message"`
	DeletedFavorite DeletedFavorite `json:"deletedFavorite"`
}
