package app_test

import (
	"fmt"
	"sync"
	"time"

	"organelle-quiz/internal/app"
	"organelle-quiz/internal/domain"
)

type recordingRenderer struct {
	mu       sync.Mutex
	calls    []string
	screen   domain.Screen
	view     domain.QuestionView
	results  domain.Results
	advance  bool
	locked   bool
	lockedAt [2]int
}

func (r *recordingRenderer) record(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recordingRenderer) ShowScreen(screen domain.Screen) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.screen = screen
	r.record("screen:%s", screen)
}

func (r *recordingRenderer) RenderQuestion(view domain.QuestionView) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.view = view
	r.locked = false
	r.record("question:%s", view.ProgressLabel)
}

func (r *recordingRenderer) LockOptions(correctIndex, selectedIndex int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.locked = true
	r.lockedAt = [2]int{correctIndex, selectedIndex}
	r.record("lock:%d:%d", correctIndex, selectedIndex)
}

func (r *recordingRenderer) Pulse(kind domain.Pulse) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record("pulse:%s", kind)
}

func (r *recordingRenderer) SetAdvanceVisible(visible bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.advance = visible
	r.record("advance:%t", visible)
}

func (r *recordingRenderer) ShowResults(results domain.Results) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = results
	r.record("results:%d/%d", results.Score, results.Total)
}

func (r *recordingRenderer) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.calls))
	copy(out, r.calls)
	return out
}

func (r *recordingRenderer) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}

func (r *recordingRenderer) AdvanceVisible() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.advance
}

type recordingSink struct {
	mu      sync.Mutex
	signals []domain.Signal
}

func (s *recordingSink) Notify(signal domain.Signal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.signals = append(s.signals, signal)
}

func (s *recordingSink) Signals() []domain.Signal {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Signal, len(s.signals))
	copy(out, s.signals)
	return out
}

func (s *recordingSink) Count(signal domain.Signal) int {
	n := 0
	for _, got := range s.Signals() {
		if got == signal {
			n++
		}
	}
	return n
}

// manualClock fires scheduled callbacks only when the test asks it to.
type manualClock struct {
	mu     sync.Mutex
	timers []*manualTimer
}

type manualTimer struct {
	clock   *manualClock
	delay   time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (c *manualClock) AfterFunc(d time.Duration, f func()) app.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &manualTimer{clock: c, delay: d, f: f}
	c.timers = append(c.timers, t)
	return t
}

func (t *manualTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	active := !t.stopped && !t.fired
	t.stopped = true
	return active
}

// FireAll runs every pending timer, including ones that were stopped when includeStopped is set.
func (c *manualClock) FireAll(includeStopped bool) int {
	c.mu.Lock()
	var due []*manualTimer
	for _, t := range c.timers {
		if t.fired || (t.stopped && !includeStopped) {
			continue
		}
		t.fired = true
		due = append(due, t)
	}
	c.mu.Unlock()
	for _, t := range due {
		t.f()
	}
	return len(due)
}

func (c *manualClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.fired && !t.stopped {
			n++
		}
	}
	return n
}

func testCatalog(n int) domain.Catalog {
	catalog := domain.Catalog{ID: "test"}
	for i := 0; i < n; i++ {
		catalog.Questions = append(catalog.Questions, domain.Question{
			ID:      fmt.Sprintf("q%d", i+1),
			Prompt:  fmt.Sprintf("Question %d?", i+1),
			Options: []string{"A", "B", "C", "D"},
			Answer:  []string{"A", "B", "C", "D"}[i%4],
			Image:   fmt.Sprintf("IMGS/IMG%d.png", i+1),
		})
	}
	return catalog
}

func wrongOption(q domain.Question) string {
	for _, opt := range q.Options {
		if opt != q.Answer {
			return opt
		}
	}
	return ""
}
