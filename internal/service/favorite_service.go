package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ichibetsu-be/internal/constant"
	"ichibetsu-be/internal/dto"
	"ichibetsu-be/internal/entity"
	"ichibetsu-be/internal/pkg/apperror"
	"ichibetsu-be/internal/pkg/logger"
	"ichibetsu-be/internal/repository/contract"
	"ichibetsu-be/internal/repository/specification"
	"ichibetsu-be/internal/repository/unitofwork"
	"ichibetsu-be/pkg/events"

	"github.com/google/uuid"
)

type IFavoriteService interface {
	List(ctx context.Context, sessionId string) (*dto.FavoriteListResponse, error)
	Add(ctx context.Context, sessionId string, req *dto.AddFavoriteRequest) (*dto.AddFavoriteResponse, error)
	Remove(ctx context.Context, sessionId string, favoriteId uuid.UUID) (*dto.RemoveFavoriteResponse, error)
}

type favoriteService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	log              logger.ILogger
}

func NewFavoriteService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	log logger.ILogger,
) IFavoriteService {
	return &favoriteService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		log:              log,
	}
}

// List returns the session's favorites, newest first. A session that never
// favorited anything has no user row yet; that is an empty list, not an error.
func (s *favoriteService) List(ctx context.Context, sessionId string) (*dto.FavoriteListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.BySessionID{SessionID: sessionId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return &dto.FavoriteListResponse{
			Favorites: []dto.FavoriteItem{},
			Count:     0,
			Message:   constant.MsgFavoritesEmpty,
		}, nil
	}

	favorites, err := uow.FavoriteRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: user.Id},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	items := make([]dto.FavoriteItem, 0, len(favorites))
	for _, f := range favorites {
		if f.Restaurant == nil {
			continue
		}
		items = append(items, dto.FavoriteItem{
			Id:           f.Id,
			UserId:       f.UserId,
			RestaurantId: f.RestaurantId,
			CreatedAt:    f.CreatedAt,
			Restaurant: dto.FavoriteRestaurantSummary{
				Id:           f.Restaurant.Id,
				Name:         f.Restaurant.Name,
				Address:      f.Restaurant.Address,
				MainImageUrl: f.Restaurant.MainImageUrl,
				OwnerMessage: f.Restaurant.OwnerMessage,
			},
		})
	}

	message := constant.MsgFavoritesEmpty
	if len(items) > 0 {
		message = fmt.Sprintf(constant.MsgFavoritesCountFmt, len(items))
	}

	return &dto.FavoriteListResponse{
		Favorites: items,
		Count:     len(items),
		Message:   message,
	}, nil
}

func (s *favoriteService) Add(ctx context.Context, sessionId string, req *dto.AddFavoriteRequest) (*dto.AddFavoriteResponse, error) {
	if req.RestaurantId == "" {
		return nil, apperror.NewBadRequest(constant.ErrMsgRestaurantIDRequired)
	}
	restaurantId, err := uuid.Parse(req.RestaurantId)
	if err != nil {
		return nil, apperror.NewNotFound(constant.CodeRestaurantNotFound, constant.ErrMsgRestaurantNotFound)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	restaurant, err := uow.RestaurantRepository().FindOne(ctx, specification.ByID{ID: restaurantId})
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, apperror.NewNotFound(constant.CodeRestaurantNotFound, constant.ErrMsgRestaurantNotFound)
	}

	user, err := uow.UserRepository().GetOrCreateBySessionId(ctx, sessionId)
	if err != nil {
		return nil, err
	}

	exists, err := uow.FavoriteRepository().Exists(ctx, user.Id, restaurantId)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.NewConflict(constant.ErrMsgAlreadyFavorited)
	}

	favorite := entity.Favorite{
		Id:           uuid.New(),
		UserId:       user.Id,
		RestaurantId: restaurantId,
		CreatedAt:    time.Now(),
	}
	if err := uow.FavoriteRepository().Create(ctx, &favorite); err != nil {
		// Another request for the same pair may have won the insert race
		// between the Exists check and here.
		if errors.Is(err, contract.ErrDuplicateFavorite) {
			return nil, apperror.NewConflict(constant.ErrMsgAlreadyFavorited)
		}
		return nil, err
	}

	s.publishEvent(ctx, events.FavoriteEvent{
		Type:         events.FavoriteAdded,
		FavoriteId:   favorite.Id,
		UserId:       user.Id,
		RestaurantId: restaurantId,
		OccurredAt:   time.Now(),
	})

	return &dto.AddFavoriteResponse{
		Message: constant.MsgFavoriteAdded,
		Favorite: dto.AddedFavorite{
			Id:           favorite.Id,
			UserId:       user.Id,
			RestaurantId: restaurantId,
			CreatedAt:    favorite.CreatedAt,
			Restaurant: dto.AddedRestaurantSummary{
				Id:           restaurant.Id,
				Name:         restaurant.Name,
				MainImageUrl: restaurant.MainImageUrl,
				OwnerMessage: restaurant.OwnerMessage,
			},
		},
	}, nil
}

func (s *favoriteService) Remove(ctx context.Context, sessionId string, favoriteId uuid.UUID) (*dto.RemoveFavoriteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.BySessionID{SessionID: sessionId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFound("", constant.ErrMsgUserNotFound)
	}

	favorite, err := uow.FavoriteRepository().FindOne(ctx, specification.ByID{ID: favoriteId})
	if err != nil {
		return nil, err
	}
	if favorite == nil {
		return nil, apperror.NewNotFound("", constant.ErrMsgFavoriteNotFound)
	}
	if favorite.UserId != user.Id {
		return nil, apperror.NewForbidden(constant.ErrMsgForbiddenFavorite)
	}

	if err := uow.FavoriteRepository().Delete(ctx, favorite.Id); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.FavoriteEvent{
		Type:         events.FavoriteRemoved,
		FavoriteId:   favorite.Id,
		UserId:       user.Id,
		RestaurantId: favorite.RestaurantId,
		OccurredAt:   time.Now(),
	})

	restaurantName := ""
	if favorite.Restaurant != nil {
		restaurantName = favorite.Restaurant.Name
	}

	return &dto.RemoveFavoriteResponse{
		Success: true,
		Message: fmt.Sprintf(constant.MsgFavoriteDeletedFmt, restaurantName),
		DeletedFavorite: dto.DeletedFavorite{
			Id:             favorite.Id,
			RestaurantName: restaurantName,
		},
	}, nil
}

// publishEvent is best effort. The favorite is already committed, so a bus
// failure only delays cache invalidation until the TTL expires.
func (s *favoriteService) publishEvent(ctx context.Context, evt events.FavoriteEvent) {
	payload, err := json.Marshal(evt)
	if err != nil {
		s.logWarn("failed to marshal favorite event", evt.Type, err)
		return
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.logWarn("failed to publish favorite event", evt.Type, err)
	}
}

func (s *favoriteService) logWarn(message, eventType string, err error) {
	if s.log == nil {
		return
	}
	s.log.Warn("favorite-service", message, map[string]interface{}{
		"event_type": eventType,
		"error":      err.Error(),
	})
}
