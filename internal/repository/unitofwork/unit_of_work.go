package unitofwork

import (
	"context"

	"ichibetsu-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	RestaurantRepository() contract.RestaurantRepository
	FavoriteRepository() contract.FavoriteRepository
}
