package service

import (
	"context"
	"math/rand"
	"time"

	"ichibetsu-be/internal/constant"
	"ichibetsu-be/internal/dto"
	"ichibetsu-be/internal/entity"
	"ichibetsu-be/internal/pkg/apperror"
	"ichibetsu-be/internal/pkg/cache"
	"ichibetsu-be/internal/repository/specification"
	"ichibetsu-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

const restaurantListCacheKey = "restaurant:list:active"

type IRestaurantService interface {
	List(ctx context.Context) (*dto.RestaurantListResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.RestaurantDetailResponse, error)
	Create(ctx context.Context, req *dto.CreateRestaurantRequest) (*dto.CreateRestaurantResponse, error)
}

type restaurantService struct {
	uowFactory unitofwork.RepositoryFactory
	listCache  *gocache.Cache
	countCache *cache.FavoriteCountCache
}

func NewRestaurantService(
	uowFactory unitofwork.RepositoryFactory,
	listCache *gocache.Cache,
	countCache *cache.FavoriteCountCache,
) IRestaurantService {
	return &restaurantService{
		uowFactory: uowFactory,
		listCache:  listCache,
		countCache: countCache,
	}
}

// List returns every active restaurant as swipe cards. The result set is
// cached briefly to absorb swipe-session bursts, but the shuffle happens per
// request so two clients never see the same deck order.
func (s *restaurantService) List(ctx context.Context) (*dto.RestaurantListResponse, error) {
	restaurants, err := s.loadActiveRestaurants(ctx)
	if err != nil {
		return nil, err
	}

	cards := make([]dto.RestaurantCard, len(restaurants))
	for i, r := range restaurants {
		cards[i] = dto.RestaurantCard{
			Id:           r.Id,
			Name:         r.Name,
			MainImageUrl: r.MainImageUrl,
			OwnerMessage: r.OwnerMessage,
		}
	}
	rand.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})

	return &dto.RestaurantListResponse{
		Success: true,
		Data:    cards,
		Count:   len(cards),
	}, nil
}

func (s *restaurantService) loadActiveRestaurants(ctx context.Context) ([]*entity.Restaurant, error) {
	if s.listCache != nil {
		if cached, found := s.listCache.Get(restaurantListCacheKey); found {
			if restaurants, ok := cached.([]*entity.Restaurant); ok {
				return restaurants, nil
			}
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	restaurants, err := uow.RestaurantRepository().FindAll(ctx, specification.ActiveOnly{})
	if err != nil {
		return nil, err
	}

	if s.listCache != nil {
		s.listCache.SetDefault(restaurantListCacheKey, restaurants)
	}
	return restaurants, nil
}

func (s *restaurantService) Show(ctx context.Context, id uuid.UUID) (*dto.RestaurantDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	restaurant, err := uow.RestaurantRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.ActiveOnly{},
	)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, apperror.NewNotFound(constant.CodeRestaurantNotFound, constant.ErrMsgRestaurantNotFound)
	}

	count, hit := s.countCache.Get(ctx, id)
	if !hit {
		count, err = uow.FavoriteRepository().CountByRestaurant(ctx, id)
		if err != nil {
			return nil, err
		}
		s.countCache.Set(ctx, id, count)
	}

	return &dto.RestaurantDetailResponse{
		Success: true,
		Data:    toRestaurantDetail(restaurant, count),
	}, nil
}

func (s *restaurantService) Create(ctx context.Context, req *dto.CreateRestaurantRequest) (*dto.CreateRestaurantResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	restaurant := entity.Restaurant{
		Id:           uuid.New(),
		Name:         req.Name,
		Address:      req.Address,
		Hours:        req.Hours,
		Phone:        req.Phone,
		MainImageUrl: req.MainImageUrl,
		OwnerMessage: req.OwnerMessage,
		Story:        req.Story,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}

	if err := uow.RestaurantRepository().Create(ctx, &restaurant); err != nil {
		return nil, err
	}

	// New rows must show up in the next deck load, not after TTL expiry.
	if s.listCache != nil {
		s.listCache.Delete(restaurantListCacheKey)
	}

	return &dto.CreateRestaurantResponse{
		Success: true,
		Data: dto.RestaurantData{
			Id:           restaurant.Id,
			Name:         restaurant.Name,
			Address:      restaurant.Address,
			Hours:        restaurant.Hours,
			Phone:        restaurant.Phone,
			MainImageUrl: restaurant.MainImageUrl,
			OwnerMessage: restaurant.OwnerMessage,
			Story:        restaurant.Story,
			IsActive:     restaurant.IsActive,
			CreatedAt:    restaurant.CreatedAt,
			UpdatedAt:    restaurant.UpdatedAt,
		},
		Message: constant.MsgRestaurantCreated,
	}, nil
}

func toRestaurantDetail(r *entity.Restaurant, favoriteCount int64) dto.RestaurantDetail {
	return dto.RestaurantDetail{
		Id:            r.Id,
		Name:          r.Name,
		Address:       r.Address,
		Hours:         r.Hours,
		Phone:         r.Phone,
		MainImageUrl:  r.MainImageUrl,
		OwnerMessage:  r.OwnerMessage,
		Story:         r.Story,
		FavoriteCount: favoriteCount,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}
