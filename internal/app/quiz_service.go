package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"organelle-quiz/internal/domain"
)

// SessionRepository abstracts where live player sessions are tracked (in-memory, Redis, etc).
type SessionRepository interface {
	Register(sessionID string, controller *Controller)
	Get(sessionID string) (*Controller, bool)
	Remove(sessionID string)
}

// SessionToucher is implemented by session repositories that keep an expiring
// liveness marker per session.
type SessionToucher interface {
	Touch(ctx context.Context, sessionID string) error
}

// CatalogRepository loads catalog content (from cache/backing store).
type CatalogRepository interface {
	GetCatalog(ctx context.Context, catalogID string) (domain.Catalog, error)
}

// QuizService opens and closes player sessions, each driven by its own Controller.
type QuizService struct {
	sessions         SessionRepository
	catalogs         CatalogRepository
	sink             SignalSink
	defaultCatalogID string
	controllerConfig ControllerConfig
	logger           *zap.Logger
}

func NewQuizService(store SessionRepository, catalogs CatalogRepository, sink SignalSink, defaultCatalogID string, cfg ControllerConfig) *QuizService {
	if cfg.Shuffler == nil {
		cfg.Shuffler = NewShuffler()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &QuizService{
		sessions:         store,
		catalogs:         catalogs,
		sink:             sink,
		defaultCatalogID: defaultCatalogID,
		controllerConfig: cfg,
		logger:           cfg.Logger,
	}
}

// Open loads and validates the catalog, then registers a controller bound to renderer.
// An empty or malformed catalog fails here, before any quiz can start.
func (s *QuizService) Open(ctx context.Context, sessionID, catalogID string, renderer Renderer) (*Controller, error) {
	if catalogID == "" {
		catalogID = s.defaultCatalogID
	}
	catalog, err := s.catalogs.GetCatalog(ctx, catalogID)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", catalogID, err)
	}

	cfg := s.controllerConfig
	cfg.Logger = s.logger.With(zap.String("session", sessionID))
	controller, err := NewController(catalog, renderer, s.sink, cfg)
	if err != nil {
		return nil, err
	}

	if previous, ok := s.sessions.Get(sessionID); ok {
		previous.Close()
	}
	s.sessions.Register(sessionID, controller)
	controller.ShowStart()
	return controller, nil
}

// Session returns the controller of an open session.
func (s *QuizService) Session(sessionID string) (*Controller, error) {
	controller, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return controller, nil
}

// Close stops the controller's pending timers and forgets the session unless it has
// since been reopened by another controller.
func (s *QuizService) Close(sessionID string, controller *Controller) {
	controller.Close()
	if current, ok := s.sessions.Get(sessionID); ok && current == controller {
		s.sessions.Remove(sessionID)
	}
}

// Touch refreshes the liveness marker of an active session, if the repository keeps one.
func (s *QuizService) Touch(ctx context.Context, sessionID string) error {
	toucher, ok := s.sessions.(SessionToucher)
	if !ok {
		return nil
	}
	if err := toucher.Touch(ctx, sessionID); err != nil {
		return fmt.Errorf("touch session %s: %w", sessionID, err)
	}
	return nil
}
