package memory

import (
	"context"
	"errors"

	"organelle-quiz/internal/domain"
)

// FallbackLoader serves from primary and falls back when primary does not know the catalog.
// Other primary errors are returned as-is.
type FallbackLoader struct {
	primary  CatalogLoader
	fallback CatalogLoader
}

func NewFallbackLoader(primary, fallback CatalogLoader) *FallbackLoader {
	return &FallbackLoader{primary: primary, fallback: fallback}
}

func (l *FallbackLoader) LoadCatalog(ctx context.Context, catalogID string) (domain.Catalog, error) {
	catalog, err := l.primary.LoadCatalog(ctx, catalogID)
	if errors.Is(err, domain.ErrCatalogNotFound) {
		return l.fallback.LoadCatalog(ctx, catalogID)
	}
	return catalog, err
}
