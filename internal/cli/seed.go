package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"organelle-quiz/internal/catalog"
	"organelle-quiz/internal/config"
	"organelle-quiz/internal/domain"
	pgstore "organelle-quiz/internal/infra/postgres"
	redisstore "organelle-quiz/internal/infra/redis"
	"organelle-quiz/internal/logger"
)

// NewSeedCmd stores the built-in catalogs in Postgres.
func NewSeedCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Store the built-in question catalogs in Postgres",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.Context(), *configPath)
		},
	}
}

func runSeed(ctx context.Context, configPath string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cfg.Postgres.URL == "" {
		return fmt.Errorf("postgres url not configured")
	}
	log, err := logger.New(cfg.Log.Env)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if err := runMigrationsWithConfig(ctx, cfg, log); err != nil {
		return err
	}

	pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
	if err != nil {
		return err
	}
	defer pool.Close()

	var cache catalogInvalidator
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()
		cache = redisstore.NewCatalogRepository(client, nil, config.Duration(cfg.Quiz.TTL, 10*time.Minute), log)
	}

	return seedCatalogs(ctx, pgstore.NewCatalogStore(pool), cache, catalog.Builtin(), log)
}

type catalogSaver interface {
	SaveCatalog(ctx context.Context, c domain.Catalog) error
}

type catalogInvalidator interface {
	Invalidate(ctx context.Context, catalogID string) error
}

// seedCatalogs upserts catalogs and drops any cached copy so running servers
// pick up the new content on their next load.
func seedCatalogs(ctx context.Context, store catalogSaver, cache catalogInvalidator, catalogs map[string]domain.Catalog, log *zap.Logger) error {
	for id, c := range catalogs {
		if err := store.SaveCatalog(ctx, c); err != nil {
			return fmt.Errorf("seed catalog %s: %w", id, err)
		}
		if cache != nil {
			if err := cache.Invalidate(ctx, id); err != nil {
				log.Warn("invalidate cached catalog", zap.String("catalog", id), zap.Error(err))
			}
		}
		log.Info("catalog seeded", zap.String("catalog", id), zap.Int("questions", len(c.Questions)))
	}
	return nil
}
