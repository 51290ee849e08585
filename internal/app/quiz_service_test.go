package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"organelle-quiz/internal/app"
	"organelle-quiz/internal/catalog"
	"organelle-quiz/internal/domain"
	"organelle-quiz/internal/infra/memory"
)

func newTestService(t *testing.T, catalogs map[string]domain.Catalog) (*app.QuizService, *memory.SessionStore, *recordingSink) {
	t.Helper()
	store := memory.NewSessionStore()
	repo := memory.NewCatalogRepository(memory.NewStaticCatalogLoader(catalogs), 5*time.Minute)
	sink := &recordingSink{}
	service := app.NewQuizService(store, repo, sink, catalog.OrganellesID, app.ControllerConfig{
		Clock:  &manualClock{},
		Logger: zaptest.NewLogger(t),
	})
	return service, store, sink
}

func TestOpenShowsStartScreen(t *testing.T) {
	service, store, _ := newTestService(t, catalog.Builtin())
	renderer := &recordingRenderer{}

	controller, err := service.Open(context.Background(), "s1", "", renderer)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if renderer.screen != domain.ScreenStart {
		t.Fatalf("expected start screen, got %s", renderer.screen)
	}
	if snap := controller.Snapshot(); snap.Phase != app.PhaseNotStarted || snap.Total != 8 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	got, err := service.Session("s1")
	if err != nil || got != controller {
		t.Fatalf("expected registered session, got %v err=%v", got, err)
	}
	if store.Len() != 1 {
		t.Fatalf("expected 1 session, got %d", store.Len())
	}
}

func TestOpenRejectsBadCatalogs(t *testing.T) {
	service, store, _ := newTestService(t, map[string]domain.Catalog{
		"empty": {ID: "empty"},
		"broken": {ID: "broken", Questions: []domain.Question{
			{ID: "q1", Prompt: "?", Options: []string{"a", "b"}, Answer: "a"},
		}},
	})

	if _, err := service.Open(context.Background(), "s1", "empty", &recordingRenderer{}); !errors.Is(err, domain.ErrEmptyCatalog) {
		t.Fatalf("expected ErrEmptyCatalog, got %v", err)
	}
	if _, err := service.Open(context.Background(), "s1", "broken", &recordingRenderer{}); !errors.Is(err, domain.ErrMalformedQuestion) {
		t.Fatalf("expected ErrMalformedQuestion, got %v", err)
	}
	if _, err := service.Open(context.Background(), "s1", "missing", &recordingRenderer{}); !errors.Is(err, domain.ErrCatalogNotFound) {
		t.Fatalf("expected ErrCatalogNotFound, got %v", err)
	}
	if store.Len() != 0 {
		t.Fatalf("no session should be registered, got %d", store.Len())
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	service, _, sink := newTestService(t, catalog.Builtin())
	a, _ := service.Open(context.Background(), "a", "", &recordingRenderer{})
	b, _ := service.Open(context.Background(), "b", "", &recordingRenderer{})

	_ = a.Start()
	_ = b.Start()
	qa, _ := a.Current()
	_ = a.SelectOption(qa.Answer)

	if a.Snapshot().Score != 1 || b.Snapshot().Score != 0 {
		t.Fatalf("sessions share state: a=%+v b=%+v", a.Snapshot(), b.Snapshot())
	}
	if len(sink.Signals()) != 1 {
		t.Fatalf("expected one signal, got %v", sink.Signals())
	}
}

func TestCloseForgetsOnlyOwnSession(t *testing.T) {
	service, _, _ := newTestService(t, catalog.Builtin())
	first, _ := service.Open(context.Background(), "s1", "", &recordingRenderer{})
	second, _ := service.Open(context.Background(), "s1", "", &recordingRenderer{})

	service.Close("s1", first)
	if got, err := service.Session("s1"); err != nil || got != second {
		t.Fatalf("reopened session must survive the old close, got %v err=%v", got, err)
	}

	service.Close("s1", second)
	if _, err := service.Session("s1"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestReplacedControllerCannotDriveIndicator(t *testing.T) {
	service, _, sink := newTestService(t, catalog.Builtin())
	old, _ := service.Open(context.Background(), "s1", "", &recordingRenderer{})
	_ = old.Start()
	if _, err := service.Open(context.Background(), "s1", "", &recordingRenderer{}); err != nil {
		t.Fatalf("reopen: %v", err)
	}

	actions := map[string]func() error{
		"start":        old.Start,
		"restart":      old.Restart,
		"select index": func() error { return old.SelectIndex(0) },
		"select":       func() error { return old.SelectOption("Núcleo") },
		"advance":      old.Advance,
	}
	for name, action := range actions {
		if err := action(); !errors.Is(err, domain.ErrSessionClosed) {
			t.Fatalf("%s on replaced controller: expected ErrSessionClosed, got %v", name, err)
		}
	}
	if got := sink.Signals(); len(got) != 0 {
		t.Fatalf("replaced controller reached the indicator: %v", got)
	}
}

type touchingStore struct {
	*memory.SessionStore
	touched []string
	err     error
}

func (s *touchingStore) Touch(_ context.Context, sessionID string) error {
	s.touched = append(s.touched, sessionID)
	return s.err
}

func TestTouchRefreshesStoresWithLivenessMarkers(t *testing.T) {
	store := &touchingStore{SessionStore: memory.NewSessionStore()}
	repo := memory.NewCatalogRepository(memory.NewStaticCatalogLoader(catalog.Builtin()), time.Minute)
	service := app.NewQuizService(store, repo, &recordingSink{}, catalog.OrganellesID, app.ControllerConfig{Clock: &manualClock{}})

	if err := service.Touch(context.Background(), "s1"); err != nil {
		t.Fatalf("touch: %v", err)
	}
	if len(store.touched) != 1 || store.touched[0] != "s1" {
		t.Fatalf("expected store touched for s1, got %v", store.touched)
	}

	store.err = errors.New("redis down")
	if err := service.Touch(context.Background(), "s1"); !errors.Is(err, store.err) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}

func TestTouchIsNoopForPlainStores(t *testing.T) {
	service, _, _ := newTestService(t, catalog.Builtin())
	if err := service.Touch(context.Background(), "s1"); err != nil {
		t.Fatalf("expected no-op touch, got %v", err)
	}
}
