package mapper

import (
	"ichibetsu-be/internal/entity"
	"ichibetsu-be/internal/model"

	"github.com/google/uuid"
)

type FavoriteMapper struct {
	restaurantMapper *RestaurantMapper
}

func NewFavoriteMapper() *FavoriteMapper {
	return &FavoriteMapper{
		restaurantMapper: NewRestaurantMapper(),
	}
}

func (m *FavoriteMapper) ToEntity(f *model.Favorite) *entity.Favorite {
	if f == nil {
		return nil
	}

	e := &entity.Favorite{
		Id:           f.Id,
		UserId:       f.UserId,
		RestaurantId: f.RestaurantId,
		CreatedAt:    f.CreatedAt,
	}

	// Restaurant is zero-valued unless the query preloaded it.
	if f.Restaurant.Id != uuid.Nil {
		e.Restaurant = m.restaurantMapper.ToEntity(&f.Restaurant)
	}

	return e
}

func (m *FavoriteMapper) ToModel(f *entity.Favorite) *model.Favorite {
	if f == nil {
		return nil
	}
	return &model.Favorite{
		Id:           f.Id,
		UserId:       f.UserId,
		RestaurantId: f.RestaurantId,
		CreatedAt:    f.CreatedAt,
	}
}

func (m *FavoriteMapper) ToEntities(favorites []*model.Favorite) []*entity.Favorite {
	entities := make([]*entity.Favorite, len(favorites))
	for i, f := range favorites {
		entities[i] = m.ToEntity(f)
	}
	return entities
}
