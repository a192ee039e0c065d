package implementation

import (
	"context"
	"errors"

	"ichibetsu-be/internal/entity"
	"ichibetsu-be/internal/mapper"
	"ichibetsu-be/internal/model"
	"ichibetsu-be/internal/repository/contract"
	"ichibetsu-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FavoriteRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FavoriteMapper
}

func NewFavoriteRepository(db *gorm.DB) contract.FavoriteRepository {
	return &FavoriteRepositoryImpl{
		db:     db,
		mapper: mapper.NewFavoriteMapper(),
	}
}

func (r *FavoriteRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// Create relies on TranslateError in the GORM config: a unique-index violation
// on (user_id, restaurant_id) comes back as gorm.ErrDuplicatedKey and is
// mapped to contract.ErrDuplicateFavorite.
func (r *FavoriteRepositoryImpl) Create(ctx context.Context, favorite *entity.Favorite) error {
	m := r.mapper.ToModel(favorite)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return contract.ErrDuplicateFavorite
		}
		return err
	}
	*favorite = *r.mapper.ToEntity(m)
	return nil
}

func (r *FavoriteRepositoryImpl) Exists(ctx context.Context, userId, restaurantId uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Favorite{}).
		Where("user_id = ? AND restaurant_id = ?", userId, restaurantId).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *FavoriteRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Favorite, error) {
	var m model.Favorite
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Restaurant"), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *FavoriteRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Favorite, error) {
	var models []*model.Favorite
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Restaurant"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *FavoriteRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Favorite{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *FavoriteRepositoryImpl) CountByRestaurant(ctx context.Context, restaurantId uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Favorite{}).
		Where("restaurant_id = ?", restaurantId).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
