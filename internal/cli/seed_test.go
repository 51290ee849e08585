package cli

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap/zaptest"

	"organelle-quiz/internal/catalog"
	"organelle-quiz/internal/domain"
	redisstore "organelle-quiz/internal/infra/redis"
)

type recordingSaver struct {
	saved []string
	err   error
}

func (s *recordingSaver) SaveCatalog(_ context.Context, c domain.Catalog) error {
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, c.ID)
	return nil
}

func TestSeedCatalogsInvalidatesRedisCopy(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	key := "quiz:catalog:" + catalog.OrganellesID
	if err := mr.Set(key, `{"id":"organelas","questions":[]}`); err != nil {
		t.Fatalf("preload cache: %v", err)
	}

	saver := &recordingSaver{}
	cache := redisstore.NewCatalogRepository(client, nil, time.Minute, zaptest.NewLogger(t))
	if err := seedCatalogs(context.Background(), saver, cache, catalog.Builtin(), zaptest.NewLogger(t)); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if len(saver.saved) != 1 || saver.saved[0] != catalog.OrganellesID {
		t.Fatalf("expected organelles saved, got %v", saver.saved)
	}
	if mr.Exists(key) {
		t.Fatalf("expected cached catalog to be dropped after seeding")
	}
}

func TestSeedCatalogsWithoutCache(t *testing.T) {
	saver := &recordingSaver{}
	if err := seedCatalogs(context.Background(), saver, nil, catalog.Builtin(), zaptest.NewLogger(t)); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if len(saver.saved) != 1 {
		t.Fatalf("expected one catalog saved, got %v", saver.saved)
	}
}

func TestSeedCatalogsStopsOnSaveError(t *testing.T) {
	boom := errors.New("db down")
	saver := &recordingSaver{err: boom}
	if err := seedCatalogs(context.Background(), saver, nil, catalog.Builtin(), zaptest.NewLogger(t)); !errors.Is(err, boom) {
		t.Fatalf("expected save error, got %v", err)
	}
}
