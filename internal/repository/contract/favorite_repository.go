package contract

import (
	"context"
	"errors"

	"ichibetsu-be/internal/entity"
	"ichibetsu-be/internal/repository/specification"

	"github.com/google/uuid"
)

// ErrDuplicateFavorite is returned by Create when the (user, restaurant) pair
// already exists. It is the storage layer's translation of the unique-index
// violation, so a lost insert race surfaces the same way as a pre-checked
// duplicate.
var ErrDuplicateFavorite = errors.New("favorite already exists for this user and restaurant")

type FavoriteRepository interface {
	Create(ctx context.Context, favorite *entity.Favorite) error
	Exists(ctx context.Context, userId, restaurantId uuid.UUID) (bool, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Favorite, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Favorite, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CountByRestaurant(ctx context.Context, restaurantId uuid.UUID) (int64, error)
}
