package cli

import (
	"context"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"organelle-quiz/internal/app"
	"organelle-quiz/internal/catalog"
	"organelle-quiz/internal/config"
	"organelle-quiz/internal/infra/memory"
	pgstore "organelle-quiz/internal/infra/postgres"
	redisstore "organelle-quiz/internal/infra/redis"
	"organelle-quiz/internal/logger"
	"organelle-quiz/internal/signal"
)

// runtime holds the collaborators shared by the start and play commands.
type runtime struct {
	cfg      config.Config
	logger   *zap.Logger
	catalogs app.CatalogRepository
	sessions app.SessionRepository
	sink     signal.Sink
	service  *app.QuizService

	pool        *pgxpool.Pool
	redisClient *redis.Client
}

func loadRuntime(ctx context.Context, configPath string) (*runtime, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	log, err := logger.New(cfg.Log.Env)
	if err != nil {
		return nil, err
	}
	rt := &runtime{cfg: cfg, logger: log}

	var loader memory.CatalogLoader = memory.NewStaticCatalogLoader(catalog.Builtin())
	if cfg.Postgres.URL != "" {
		rt.pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			rt.Close()
			return nil, err
		}
		loader = memory.NewFallbackLoader(pgstore.NewCatalogStore(rt.pool), loader)
	}

	quizTTL := config.Duration(cfg.Quiz.TTL, 10*time.Minute)
	if cfg.Redis.Addr != "" {
		rt.redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		rt.catalogs = redisstore.NewCatalogRepository(rt.redisClient, loader, quizTTL, log)
		rt.sessions = redisstore.NewSessionStore(rt.redisClient, config.Duration(cfg.Redis.TTL, 30*time.Minute))
	} else {
		rt.catalogs = memory.NewCatalogRepository(loader, quizTTL)
		rt.sessions = memory.NewSessionStore()
	}

	rt.sink, err = signal.New(signal.Options{
		Driver:   cfg.Signal.Driver,
		BaseURL:  cfg.Signal.BaseURL,
		Timeout:  config.Duration(cfg.Signal.Timeout, 2*time.Second),
		AMQPURL:  cfg.Signal.AMQPURL,
		Exchange: cfg.Signal.Exchange,
	}, log.Named("signal"))
	if err != nil {
		rt.Close()
		return nil, err
	}

	rt.service = app.NewQuizService(rt.sessions, rt.catalogs, rt.sink, cfg.Quiz.CatalogID, app.ControllerConfig{
		FeedbackDelay: config.Duration(cfg.Quiz.FeedbackDelay, app.DefaultFeedbackDelay),
		Logger:        log.Named("quiz"),
	})
	return rt, nil
}

func (rt *runtime) Close() {
	if rt.sink != nil {
		rt.sink.Close()
	}
	if rt.redisClient != nil {
		_ = rt.redisClient.Close()
	}
	if rt.pool != nil {
		rt.pool.Close()
	}
	_ = rt.logger.Sync()
}
