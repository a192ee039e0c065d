package contract

import (
	"context"

	"ichibetsu-be/internal/entity"
	"ichibetsu-be/internal/repository/specification"
)

type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *entity.Restaurant) error
	Update(ctx context.Context, restaurant *entity.Restaurant) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Restaurant, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Restaurant, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
