package bootstrap

import (
	"context"
	"log"
	"time"

	"ichibetsu-be/internal/config"
	"ichibetsu-be/internal/controller"
	appcache "ichibetsu-be/internal/pkg/cache"
	"ichibetsu-be/internal/pkg/logger"
	"ichibetsu-be/internal/pkg/session"
	"ichibetsu-be/internal/repository/unitofwork"
	"ichibetsu-be/internal/service"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	RestaurantController controller.IRestaurantController
	FavoriteController   controller.IFavoriteController

	// Background services, exposed for main.go to run
	ConsumerService service.IConsumerService

	// Shared facades
	Logger            logger.ILogger
	SessionMiddleware fiber.Handler
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Infrastructure
	// Redis: a missing instance degrades the count cache, it never blocks boot.
	opt, err := redis.ParseURL(cfg.Cache.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.Cache.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	countCache := appcache.NewFavoriteCountCache(rdb, time.Duration(cfg.Cache.CountTTLSeconds)*time.Second)

	listTTL := time.Duration(cfg.Cache.ListTTLSeconds) * time.Second
	listCache := gocache.New(listTTL, 2*listTTL)

	sessionMiddleware := session.Middleware(session.NewResolver(cfg))

	// 4. Services
	publisherService := service.NewPublisherService(cfg.Events.FavoriteTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Events.FavoriteTopic,
		countCache,
		sysLogger,
	)

	restaurantService := service.NewRestaurantService(uowFactory, listCache, countCache)
	favoriteService := service.NewFavoriteService(uowFactory, publisherService, sysLogger)

	// 5. Controllers
	return &Container{
		RestaurantController: controller.NewRestaurantController(restaurantService),
		FavoriteController:   controller.NewFavoriteController(favoriteService, sessionMiddleware),

		ConsumerService: consumerService,

		Logger:            sysLogger,
		SessionMiddleware: sessionMiddleware,
	}
}
