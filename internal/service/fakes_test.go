package service

import (
	"context"
	"sort"

	"ichibetsu-be/internal/entity"
	"ichibetsu-be/internal/repository/contract"
	"ichibetsu-be/internal/repository/specification"
	"ichibetsu-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// In-memory repositories that interpret the same specifications the GORM
// implementations do, so services can be exercised without a database.

type fakeUserRepo struct {
	users []*entity.User
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.users = append(r.users, user)
	return nil
}

func (r *fakeUserRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, u := range r.users {
		if userMatches(u, specs) {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Count(_ context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	for _, u := range r.users {
		if userMatches(u, specs) {
			count++
		}
	}
	return count, nil
}

func (r *fakeUserRepo) GetOrCreateBySessionId(ctx context.Context, sessionId string) (*entity.User, error) {
	if u, _ := r.FindOne(ctx, specification.BySessionID{SessionID: sessionId}); u != nil {
		return u, nil
	}
	u := &entity.User{Id: uuid.New(), SessionId: sessionId}
	r.users = append(r.users, u)
	return u, nil
}

func userMatches(u *entity.User, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.BySessionID:
			if u.SessionId != s.SessionID {
				return false
			}
		case specification.ByID:
			if u.Id != s.ID {
				return false
			}
		}
	}
	return true
}

type fakeRestaurantRepo struct {
	restaurants []*entity.Restaurant
}

func (r *fakeRestaurantRepo) Create(_ context.Context, restaurant *entity.Restaurant) error {
	r.restaurants = append(r.restaurants, restaurant)
	return nil
}

func (r *fakeRestaurantRepo) Update(_ context.Context, restaurant *entity.Restaurant) error {
	for i, existing := range r.restaurants {
		if existing.Id == restaurant.Id {
			r.restaurants[i] = restaurant
			return nil
		}
	}
	return nil
}

func (r *fakeRestaurantRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Restaurant, error) {
	for _, rest := range r.restaurants {
		if restaurantMatches(rest, specs) {
			return rest, nil
		}
	}
	return nil, nil
}

func (r *fakeRestaurantRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Restaurant, error) {
	var result []*entity.Restaurant
	for _, rest := range r.restaurants {
		if restaurantMatches(rest, specs) {
			result = append(result, rest)
		}
	}
	return result, nil
}

func (r *fakeRestaurantRepo) Count(_ context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(context.Background(), specs...)
	return int64(len(all)), nil
}

func restaurantMatches(rest *entity.Restaurant, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if rest.Id != s.ID {
				return false
			}
		case specification.ActiveOnly:
			if !rest.IsActive {
				return false
			}
		}
	}
	return true
}

type fakeFavoriteRepo struct {
	favorites []*entity.Favorite

	// forceDuplicateOnCreate simulates losing the insert race: the pre-check
	// said no duplicate but the unique index rejects the write.
	forceDuplicateOnCreate bool
}

func (r *fakeFavoriteRepo) Create(_ context.Context, favorite *entity.Favorite) error {
	if r.forceDuplicateOnCreate {
		return contract.ErrDuplicateFavorite
	}
	for _, f := range r.favorites {
		if f.UserId == favorite.UserId && f.RestaurantId == favorite.RestaurantId {
			return contract.ErrDuplicateFavorite
		}
	}
	r.favorites = append(r.favorites, favorite)
	return nil
}

func (r *fakeFavoriteRepo) Exists(_ context.Context, userId, restaurantId uuid.UUID) (bool, error) {
	for _, f := range r.favorites {
		if f.UserId == userId && f.RestaurantId == restaurantId {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeFavoriteRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Favorite, error) {
	for _, f := range r.favorites {
		if favoriteMatches(f, specs) {
			return f, nil
		}
	}
	return nil, nil
}

func (r *fakeFavoriteRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Favorite, error) {
	var result []*entity.Favorite
	var order *specification.OrderBy
	for _, spec := range specs {
		if s, ok := spec.(specification.OrderBy); ok {
			order = &s
		}
	}
	for _, f := range r.favorites {
		if favoriteMatches(f, specs) {
			result = append(result, f)
		}
	}
	if order != nil && order.Field == "created_at" {
		sort.SliceStable(result, func(i, j int) bool {
			if order.Desc {
				return result[i].CreatedAt.After(result[j].CreatedAt)
			}
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		})
	}
	return result, nil
}

func (r *fakeFavoriteRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, f := range r.favorites {
		if f.Id == id {
			r.favorites = append(r.favorites[:i], r.favorites[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeFavoriteRepo) CountByRestaurant(_ context.Context, restaurantId uuid.UUID) (int64, error) {
	var count int64
	for _, f := range r.favorites {
		if f.RestaurantId == restaurantId {
			count++
		}
	}
	return count, nil
}

func favoriteMatches(f *entity.Favorite, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if f.Id != s.ID {
				return false
			}
		case specification.UserOwnedBy:
			if f.UserId != s.UserID {
				return false
			}
		}
	}
	return true
}

type fakeUnitOfWork struct {
	userRepo       *fakeUserRepo
	restaurantRepo *fakeRestaurantRepo
	favoriteRepo   *fakeFavoriteRepo
}

func (u *fakeUnitOfWork) Begin(_ context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                 { return nil }
func (u *fakeUnitOfWork) Rollback() error               { return nil }

func (u *fakeUnitOfWork) UserRepository() contract.UserRepository {
	return u.userRepo
}

func (u *fakeUnitOfWork) RestaurantRepository() contract.RestaurantRepository {
	return u.restaurantRepo
}

func (u *fakeUnitOfWork) FavoriteRepository() contract.FavoriteRepository {
	return u.favoriteRepo
}

type fakeUowFactory struct {
	uow *fakeUnitOfWork
}

func newFakeUowFactory() *fakeUowFactory {
	return &fakeUowFactory{
		uow: &fakeUnitOfWork{
			userRepo:       &fakeUserRepo{},
			restaurantRepo: &fakeRestaurantRepo{},
			favoriteRepo:   &fakeFavoriteRepo{},
		},
	}
}

func (f *fakeUowFactory) NewUnitOfWork(_ context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type fakePublisher struct {
	published [][]byte
	err       error
}

func (p *fakePublisher) Publish(_ context.Context, payload []byte) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, payload)
	return nil
}
