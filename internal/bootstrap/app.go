package bootstrap

import (
	"context"
	"fmt"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"keyboards-api/internal/cache"
	"keyboards-api/internal/config"
	"keyboards-api/internal/platform/database"
	rabbitmqClient "keyboards-api/internal/platform/rabbitmq"
	redisClient "keyboards-api/internal/platform/redis"
	"keyboards-api/internal/repository"
	"keyboards-api/internal/worker"
)

type App struct {
	Config *config.Config
	DB     *gorm.DB

	// Optional infrastructure, nil when disabled in config.
	Redis           *redis.Client
	UserCache       *cache.UserCache
	MQConn          *amqp.Connection
	EventPublisher  *rabbitmqClient.EventPublisher
	CacheWarmWorker *worker.CacheWarmWorker

	StartedAt time.Time
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	db, err := OpenStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	app := &App{
		Config:    cfg,
		DB:        db,
		StartedAt: time.Now(),
	}

	if cfg.Redis.Enabled {
		redisCli, err := redisClient.New(ctx, cfg.Redis)
		if err != nil {
			_ = app.Close()
			return nil, err
		}
		app.Redis = redisCli
		app.UserCache = cache.NewUserCache(
			redisCli,
			time.Duration(cfg.Redis.UserTTLSeconds)*time.Second,
			time.Duration(cfg.Redis.DirtyTTLSeconds)*time.Second,
		)
	}

	if cfg.RabbitMQ.Enabled {
		mqConn, err := rabbitmqClient.New(ctx, cfg.RabbitMQ.URL)
		if err != nil {
			_ = app.Close()
			return nil, err
		}
		app.MQConn = mqConn
		app.EventPublisher = rabbitmqClient.NewEventPublisher(mqConn, cfg.RabbitMQ.RecordEventQueue)
	}

	if app.UserCache != nil && app.MQConn != nil {
		userRepo := repository.NewUserRepository(db)
		app.CacheWarmWorker = worker.NewCacheWarmWorker(app.MQConn, userRepo, app.UserCache, cfg.RabbitMQ.RecordEventQueue)
		if err := app.CacheWarmWorker.Start(ctx); err != nil {
			_ = app.Close()
			return nil, fmt.Errorf("start cache warm worker failed: %w", err)
		}
	}

	return app, nil
}

// OpenStore connects to the configured store and, unless disabled, ensures
// the schema exists.
func OpenStore(ctx context.Context, cfg *config.Config) (*gorm.DB, error) {
	db, err := database.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Database.AutoMigrate {
		if err := repository.EnsureSchema(db); err != nil {
			_ = database.Close(db)
			return nil, err
		}
	}
	log.Printf("connected to %s store", cfg.Database.Driver)
	return db, nil
}

func (a *App) Close() error {
	var closeErr error
	if a.CacheWarmWorker != nil {
		a.CacheWarmWorker.Close()
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			closeErr = err
		}
	}
	if a.MQConn != nil {
		if err := a.MQConn.Close(); err != nil {
			closeErr = err
		}
	}
	if a.DB != nil {
		if err := database.Close(a.DB); err != nil {
			closeErr = err
		}
	}
	return closeErr
}
