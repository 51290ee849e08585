// Package terminal renders the quiz on a text console and reads player commands from a line-based input.
package terminal

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"organelle-quiz/internal/domain"
)

const progressWidth = 20

// Renderer writes quiz screens to w. It is safe for use from the controller's timer callback.
type Renderer struct {
	mu      sync.Mutex
	w       io.Writer
	screen  domain.Screen
	options []string
	advance bool
}

func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w, screen: domain.ScreenStart}
}

func (r *Renderer) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.w, format, args...)
}

// Printf writes a free-form line under the renderer lock.
func (r *Renderer) Printf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.printf(format, args...)
}

func (r *Renderer) ShowScreen(screen domain.Screen) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.screen = screen
	switch screen {
	case domain.ScreenStart:
		r.printf("=== Quiz ===\nPressione Enter para começar.\n")
	case domain.ScreenResults:
		r.printf("[r] jogar novamente  [q] sair\n")
	}
}

func (r *Renderer) RenderQuestion(view domain.QuestionView) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.options = append(r.options[:0], view.Options...)

	filled := int(view.ProgressPercent / 100 * progressWidth)
	bar := strings.Repeat("#", filled) + strings.Repeat(".", progressWidth-filled)
	r.printf("\n%s [%s] %.0f%%\n", view.ProgressLabel, bar, view.ProgressPercent)
	if view.Image != "" {
		r.printf("(imagem: %s)\n", view.Image)
	}
	r.printf("%s\n", view.Prompt)
	for i, opt := range view.Options {
		r.printf("  %d) %s\n", i+1, opt)
	}
}

func (r *Renderer) LockOptions(correctIndex, selectedIndex int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if selectedIndex != correctIndex && selectedIndex >= 0 && selectedIndex < len(r.options) {
		r.printf("  x %d) %s\n", selectedIndex+1, r.options[selectedIndex])
	}
	if correctIndex >= 0 && correctIndex < len(r.options) {
		r.printf("  ok %d) %s\n", correctIndex+1, r.options[correctIndex])
	}
}

func (r *Renderer) Pulse(kind domain.Pulse) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if kind == domain.PulseCorrect {
		r.printf("*** ACERTOU! ***\n")
		return
	}
	r.printf("*** ERROU! ***\n")
}

func (r *Renderer) SetAdvanceVisible(visible bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.advance = visible
	if visible {
		r.printf("[n] próxima\n")
	}
}

func (r *Renderer) ShowResults(results domain.Results) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.printf("\n%s\n%s\n", results.ScoreText, results.TierMessage)
}

// AdvanceVisible reports whether the advance control is currently offered.
func (r *Renderer) AdvanceVisible() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.advance
}

// Screen returns the screen currently shown.
func (r *Renderer) Screen() domain.Screen {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.screen
}
