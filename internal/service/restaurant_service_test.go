package service

import (
	"context"
	"testing"
	"time"

	"ichibetsu-be/internal/constant"
	"ichibetsu-be/internal/dto"
	"ichibetsu-be/internal/entity"
	"ichibetsu-be/internal/pkg/apperror"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRestaurantService(factory *fakeUowFactory) IRestaurantService {
	return NewRestaurantService(factory, gocache.New(time.Minute, time.Minute), nil)
}

func TestRestaurantListActiveOnly(t *testing.T) {
	factory := newFakeUowFactory()
	svc := newRestaurantService(factory)

	active := seedRestaurant(factory, "open")
	closed := seedRestaurant(factory, "closed")
	closed.IsActive = false

	res, err := svc.List(context.Background())
	require.NoError(t, err)

	assert.True(t, res.Success)
	require.Equal(t, 1, res.Count)
	require.Len(t, res.Data, 1)
	assert.Equal(t, active.Id, res.Data[0].Id)
	assert.Equal(t, active.Name, res.Data[0].Name)
	assert.Equal(t, active.MainImageUrl, res.Data[0].MainImageUrl)
	assert.Equal(t, active.OwnerMessage, res.Data[0].OwnerMessage)
}

func TestRestaurantListShuffleKeepsContents(t *testing.T) {
	factory := newFakeUowFactory()
	svc := newRestaurantService(factory)

	want := make(map[uuid.UUID]bool)
	for i := 0; i < 10; i++ {
		r := seedRestaurant(factory, "store")
		want[r.Id] = true
	}

	// Order varies per request, the set of cards never does.
	for i := 0; i < 5; i++ {
		res, err := svc.List(context.Background())
		require.NoError(t, err)
		require.Len(t, res.Data, len(want))
		for _, card := range res.Data {
			assert.True(t, want[card.Id])
		}
	}
}

func TestRestaurantListServedFromCache(t *testing.T) {
	factory := newFakeUowFactory()
	svc := newRestaurantService(factory)

	seedRestaurant(factory, "first")

	res, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, res.Count)

	// A row added behind the cache's back stays invisible until the TTL
	// expires or a create invalidates the cache.
	seedRestaurant(factory, "second")
	res, err = svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Count)
}

func TestRestaurantShow(t *testing.T) {
	factory := newFakeUowFactory()
	svc := newRestaurantService(factory)

	r := seedRestaurant(factory, "焼肉 炎")
	user := &entity.User{Id: uuid.New(), SessionId: testSession}
	factory.uow.userRepo.users = append(factory.uow.userRepo.users, user)
	factory.uow.favoriteRepo.favorites = []*entity.Favorite{
		{Id: uuid.New(), UserId: user.Id, RestaurantId: r.Id, CreatedAt: time.Now()},
	}

	res, err := svc.Show(context.Background(), r.Id)
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, r.Id, res.Data.Id)
	assert.Equal(t, r.Name, res.Data.Name)
	assert.Equal(t, r.Address, res.Data.Address)
	assert.Equal(t, r.Story, res.Data.Story)
	assert.Equal(t, int64(1), res.Data.FavoriteCount)
}

func TestRestaurantShowNotFound(t *testing.T) {
	factory := newFakeUowFactory()
	svc := newRestaurantService(factory)

	inactive := seedRestaurant(factory, "hidden")
	inactive.IsActive = false

	tests := []struct {
		name string
		id   uuid.UUID
	}{
		{name: "unknown id", id: uuid.New()},
		{name: "inactive restaurant", id: inactive.Id},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Show(context.Background(), tt.id)
			var appErr *apperror.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, 404, appErr.Status)
			assert.Equal(t, constant.CodeRestaurantNotFound, appErr.Code)
			assert.Equal(t, constant.ErrMsgRestaurantNotFound, appErr.Message)
		})
	}
}

func TestRestaurantCreate(t *testing.T) {
	factory := newFakeUowFactory()
	svc := newRestaurantService(factory)

	// Warm the list cache so the create has something to invalidate.
	_, err := svc.List(context.Background())
	require.NoError(t, err)

	hours := "11:00-22:00"
	res, err := svc.Create(context.Background(), &dto.CreateRestaurantRequest{
		Name:         "新しい店",
		Address:      "東京都中野区2-2-2",
		Hours:        &hours,
		MainImageUrl: "https://example.com/new.jpg",
		OwnerMessage: "お待ちしています",
		Story:        "開店したばかりです",
	})
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, constant.MsgRestaurantCreated, res.Message)
	assert.Equal(t, "新しい店", res.Data.Name)
	assert.True(t, res.Data.IsActive)

	// The new restaurant is visible immediately, not after cache expiry.
	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, list.Count)
	assert.Equal(t, res.Data.Id, list.Data[0].Id)
}
