package memory

import (
	"testing"

	"organelle-quiz/internal/app"
	"organelle-quiz/internal/catalog"
	"organelle-quiz/internal/domain"
)

func TestSessionStoreLifecycle(t *testing.T) {
	store := NewSessionStore()
	controller, err := app.NewController(catalog.Organelles(), nopRenderer{}, nopSink{}, app.ControllerConfig{})
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}

	store.Register("s1", controller)
	if got, ok := store.Get("s1"); !ok || got != controller {
		t.Fatalf("expected session present")
	}
	if store.Len() != 1 {
		t.Fatalf("expected 1 session, got %d", store.Len())
	}

	store.Remove("s1")
	if _, ok := store.Get("s1"); ok {
		t.Fatalf("expected session removed")
	}
}

type nopRenderer struct{}

func (nopRenderer) ShowScreen(domain.Screen)           {}
func (nopRenderer) RenderQuestion(domain.QuestionView) {}
func (nopRenderer) LockOptions(int, int)               {}
func (nopRenderer) Pulse(domain.Pulse)                 {}
func (nopRenderer) SetAdvanceVisible(bool)             {}
func (nopRenderer) ShowResults(domain.Results)         {}

type nopSink struct{}

func (nopSink) Notify(domain.Signal) {}
