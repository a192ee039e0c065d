package controller

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ichibetsu-be/internal/constant"
	"ichibetsu-be/internal/dto"
	"ichibetsu-be/internal/pkg/apperror"
	"ichibetsu-be/internal/pkg/serverutils"
	"ichibetsu-be/internal/pkg/session"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFavoriteService struct {
	listRes *dto.FavoriteListResponse

	addRes *dto.AddFavoriteResponse
	addErr error

	removeRes *dto.RemoveFavoriteResponse
	removeErr error

	gotSession string
}

func (s *stubFavoriteService) List(_ context.Context, sessionId string) (*dto.FavoriteListResponse, error) {
	s.gotSession = sessionId
	return s.listRes, nil
}

func (s *stubFavoriteService) Add(_ context.Context, sessionId string, _ *dto.AddFavoriteRequest) (*dto.AddFavoriteResponse, error) {
	s.gotSession = sessionId
	if s.addErr != nil {
		return nil, s.addErr
	}
	return s.addRes, nil
}

func (s *stubFavoriteService) Remove(_ context.Context, sessionId string, _ uuid.UUID) (*dto.RemoveFavoriteResponse, error) {
	s.gotSession = sessionId
	if s.removeErr != nil {
		return nil, s.removeErr
	}
	return s.removeRes, nil
}

func newFavoriteTestApp(svc *stubFavoriteService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware(nil, false))
	mw := session.Middleware(&session.FixedResolver{ID: "test-session"})
	NewFavoriteController(svc, mw).RegisterRoutes(app.Group("/api"))
	return app
}

func TestFavoriteListEndpoint(t *testing.T) {
	svc := &stubFavoriteService{
		listRes: &dto.FavoriteListResponse{
			Favorites: []dto.FavoriteItem{
				{
					Id:        uuid.New(),
					CreatedAt: time.Now(),
					Restaurant: dto.FavoriteRestaurantSummary{
						Id:      uuid.New(),
						Name:    "和食処 さくら",
						Address: "東京都渋谷区1-1-1",
					},
				},
			},
			Count:   1,
			Message: "1件のお気に入りがあります",
		},
	}
	app := newFavoriteTestApp(svc)

	res, err := app.Test(httptest.NewRequest("GET", "/api/favorites", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode)
	assert.Equal(t, "test-session", svc.gotSession)

	payload := decodeBody(t, res.Body)
	assert.Equal(t, float64(1), payload["count"])
	assert.Equal(t, "1件のお気に入りがあります", payload["message"])
	favorites := payload["favorites"].([]interface{})
	item := favorites[0].(map[string]interface{})
	restaurant := item["restaurant"].(map[string]interface{})
	assert.Equal(t, "和食処 さくら", restaurant["name"])
	assert.Contains(t, restaurant, "address")
}

func TestFavoriteAddEndpoint(t *testing.T) {
	svc := &stubFavoriteService{
		addRes: &dto.AddFavoriteResponse{
			Message: constant.MsgFavoriteAdded,
			Favorite: dto.AddedFavorite{
				Id:        uuid.New(),
				CreatedAt: time.Now(),
				Restaurant: dto.AddedRestaurantSummary{
					Id:   uuid.New(),
					Name: "麺屋 龍",
				},
			},
		},
	}
	app := newFavoriteTestApp(svc)

	body := strings.NewReader(`{"restaurantId":"` + uuid.NewString() + `"}`)
	req := httptest.NewRequest("POST", "/api/favorites", body)
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode)
	assert.Equal(t, "test-session", svc.gotSession)

	payload := decodeBody(t, res.Body)
	assert.Equal(t, constant.MsgFavoriteAdded, payload["message"])
	favorite := payload["favorite"].(map[string]interface{})
	restaurant := favorite["restaurant"].(map[string]interface{})
	assert.Equal(t, "麺屋 龍", restaurant["name"])
	// The add summary stays narrow, no address field.
	assert.NotContains(t, restaurant, "address")
}

func TestFavoriteAddEndpointFlatErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{
			name:       "missing restaurant id",
			err:        apperror.NewBadRequest(constant.ErrMsgRestaurantIDRequired),
			wantStatus: 400,
			wantError:  constant.ErrMsgRestaurantIDRequired,
		},
		{
			name:       "unknown restaurant",
			err:        apperror.NewNotFound(constant.CodeRestaurantNotFound, constant.ErrMsgRestaurantNotFound),
			wantStatus: 404,
			wantError:  constant.ErrMsgRestaurantNotFound,
		},
		{
			name:       "already favorited",
			err:        apperror.NewConflict(constant.ErrMsgAlreadyFavorited),
			wantStatus: 409,
			wantError:  constant.ErrMsgAlreadyFavorited,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newFavoriteTestApp(&stubFavoriteService{addErr: tt.err})

			body := strings.NewReader(`{"restaurantId":""}`)
			req := httptest.NewRequest("POST", "/api/favorites", body)
			req.Header.Set("Content-Type", "application/json")

			res, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, res.StatusCode)

			// Favorites errors are a bare {"error": message} object.
			payload := decodeBody(t, res.Body)
			assert.Equal(t, tt.wantError, payload["error"])
			assert.NotContains(t, payload, "success")
		})
	}
}

func TestFavoriteRemoveEndpoint(t *testing.T) {
	favId := uuid.New()
	svc := &stubFavoriteService{
		removeRes: &dto.RemoveFavoriteResponse{
			Success: true,
			Message: "「麺屋 龍」をお気に入りから削除しました",
			DeletedFavorite: dto.DeletedFavorite{
				Id:             favId,
				RestaurantName: "麺屋 龍",
			},
		},
	}
	app := newFavoriteTestApp(svc)

	res, err := app.Test(httptest.NewRequest("DELETE", "/api/favorites/"+favId.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode)

	payload := decodeBody(t, res.Body)
	assert.Equal(t, true, payload["success"])
	deleted := payload["deletedFavorite"].(map[string]interface{})
	assert.Equal(t, favId.String(), deleted["id"])
	assert.Equal(t, "麺屋 龍", deleted["restaurantName"])
}

func TestFavoriteRemoveEndpointErrors(t *testing.T) {
	t.Run("malformed id short-circuits", func(t *testing.T) {
		svc := &stubFavoriteService{}
		app := newFavoriteTestApp(svc)

		res, err := app.Test(httptest.NewRequest("DELETE", "/api/favorites/not-a-uuid", nil))
		require.NoError(t, err)
		assert.Equal(t, 404, res.StatusCode)

		payload := decodeBody(t, res.Body)
		assert.Equal(t, constant.ErrMsgFavoriteNotFound, payload["error"])
		assert.Empty(t, svc.gotSession)
	})

	t.Run("foreign favorite", func(t *testing.T) {
		svc := &stubFavoriteService{
			removeErr: apperror.NewForbidden(constant.ErrMsgForbiddenFavorite),
		}
		app := newFavoriteTestApp(svc)

		res, err := app.Test(httptest.NewRequest("DELETE", "/api/favorites/"+uuid.NewString(), nil))
		require.NoError(t, err)
		assert.Equal(t, 403, res.StatusCode)

		payload := decodeBody(t, res.Body)
		assert.Equal(t, constant.ErrMsgForbiddenFavorite, payload["error"])
	})
}
