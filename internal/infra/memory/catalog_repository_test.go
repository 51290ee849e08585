package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"organelle-quiz/internal/catalog"
	"organelle-quiz/internal/domain"
)

func TestCatalogRepositoryCaches(t *testing.T) {
	loader := &countingLoader{CatalogLoader: NewStaticCatalogLoader(catalog.Builtin())}
	repo := NewCatalogRepository(loader, time.Minute)

	got, err := repo.GetCatalog(context.Background(), catalog.OrganellesID)
	if err != nil {
		t.Fatalf("get catalog: %v", err)
	}
	if len(got.Questions) != 8 {
		t.Fatalf("expected 8 questions, got %d", len(got.Questions))
	}
	if loader.calls != 1 {
		t.Fatalf("expected loader once, got %d", loader.calls)
	}

	if _, err := repo.GetCatalog(context.Background(), catalog.OrganellesID); err != nil {
		t.Fatalf("get catalog 2: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected cache hit, loader calls %d", loader.calls)
	}
}

func TestCatalogRepositoryExpires(t *testing.T) {
	loader := &countingLoader{CatalogLoader: NewStaticCatalogLoader(catalog.Builtin())}
	repo := NewCatalogRepository(loader, time.Minute)
	now := time.Now()
	repo.clock = func() time.Time { return now }

	_, _ = repo.GetCatalog(context.Background(), catalog.OrganellesID)
	now = now.Add(2 * time.Minute)
	_, _ = repo.GetCatalog(context.Background(), catalog.OrganellesID)
	if loader.calls != 2 {
		t.Fatalf("expected reload after expiry, loader calls %d", loader.calls)
	}
}

func TestStaticLoaderUnknownCatalog(t *testing.T) {
	repo := NewCatalogRepository(NewStaticCatalogLoader(nil), time.Minute)
	if _, err := repo.GetCatalog(context.Background(), "missing"); !errors.Is(err, domain.ErrCatalogNotFound) {
		t.Fatalf("expected ErrCatalogNotFound, got %v", err)
	}
}

type countingLoader struct {
	CatalogLoader
	calls int
}

func (l *countingLoader) LoadCatalog(ctx context.Context, catalogID string) (domain.Catalog, error) {
	l.calls++
	return l.CatalogLoader.LoadCatalog(ctx, catalogID)
}
