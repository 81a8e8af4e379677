package bootstrap

import (
	"context"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"goblog-api/internal/cache"
	"goblog-api/internal/config"
	"goblog-api/internal/model"
	mysqlClient "goblog-api/internal/platform/mysql"
	rabbitmqClient "goblog-api/internal/platform/rabbitmq"
	redisClient "goblog-api/internal/platform/redis"
	"goblog-api/internal/repository"
	"goblog-api/internal/worker"
)

type App struct {
	Config *config.Config
	MySQL  *gorm.DB

	// Optional collaborators, nil unless enabled in config.
	Redis             *redis.Client
	MQConn            *amqp.Connection
	RelationCache     *cache.RelationCache
	ActivityPublisher *rabbitmqClient.ActivityPublisher
	ActivityWorker    *worker.ActivityWorker

	StartedAt time.Time
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}

	mysqlDB, err := mysqlClient.New(ctx, cfg.MySQLDSN())
	if err != nil {
		return nil, err
	}
	if err := mysqlDB.AutoMigrate(&model.User{}, &model.Post{}, &model.Comment{}, &model.Activity{}); err != nil {
		return nil, fmt.Errorf("auto migrate tables failed: %w", err)
	}

	app := &App{
		Config:    cfg,
		MySQL:     mysqlDB,
		StartedAt: time.Now(),
	}

	if cfg.Redis.Enabled {
		redisCli, err := redisClient.New(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, err
		}
		app.Redis = redisCli
		app.RelationCache = cache.NewRelationCache(redisCli, time.Duration(cfg.Redis.RelationTTLSeconds)*time.Second)
	}

	if cfg.RabbitMQ.Enabled {
		mqConn, err := rabbitmqClient.New(cfg.RabbitMQ.URL)
		if err != nil {
			return nil, err
		}
		app.MQConn = mqConn
		app.ActivityPublisher = rabbitmqClient.NewActivityPublisher(mqConn, cfg.RabbitMQ.ActivityQueue)

		activityRepo := repository.NewActivityRepository(mysqlDB)
		app.ActivityWorker = worker.NewActivityWorker(mqConn, activityRepo, cfg.RabbitMQ.ActivityQueue)
		if err := app.ActivityWorker.Start(ctx); err != nil {
			return nil, fmt.Errorf("start activity worker failed: %w", err)
		}
	}

	return app, nil
}

func (a *App) Close() error {
	var closeErr error
	if a.ActivityWorker != nil {
		a.ActivityWorker.Close()
	}
	if a.MQConn != nil {
		if err := a.MQConn.Close(); err != nil {
			closeErr = err
		}
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			closeErr = err
		}
	}
	if a.MySQL != nil {
		sqlDB, err := a.MySQL.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				closeErr = err
			}
		}
	}
	return closeErr
}
