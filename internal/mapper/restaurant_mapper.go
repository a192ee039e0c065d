package mapper

import (
	"time"

	"ichibetsu-be/internal/entity"
	"ichibetsu-be/internal/model"
)

type RestaurantMapper struct{}

func NewRestaurantMapper() *RestaurantMapper {
	return &RestaurantMapper{}
}

func (m *RestaurantMapper) ToEntity(r *model.Restaurant) *entity.Restaurant {
	if r == nil {
		return nil
	}

	var updatedAt *time.Time
	if !r.UpdatedAt.IsZero() {
		t := r.UpdatedAt
		updatedAt = &t
	}

	return &entity.Restaurant{
		Id:           r.Id,
		Name:         r.Name,
		Address:      r.Address,
		Hours:        r.Hours,
		Phone:        r.Phone,
		MainImageUrl: r.MainImageUrl,
		OwnerMessage: r.OwnerMessage,
		Story:        r.Story,
		IsActive:     r.IsActive,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *RestaurantMapper) ToModel(r *entity.Restaurant) *model.Restaurant {
	if r == nil {
		return nil
	}

	var updatedAt time.Time
	if r.UpdatedAt != nil {
		updatedAt = *r.UpdatedAt
	}

	return &model.Restaurant{
		Id:           r.Id,
		Name:         r.Name,
		Address:      r.Address,
		Hours:        r.Hours,
		Phone:        r.Phone,
		MainImageUrl: r.MainImageUrl,
		OwnerMessage: r.OwnerMessage,
		Story:        r.Story,
		IsActive:     r.IsActive,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *RestaurantMapper) ToEntities(restaurants []*model.Restaurant) []*entity.Restaurant {
	entities := make([]*entity.Restaurant, len(restaurants))
	for i, r := range restaurants {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
