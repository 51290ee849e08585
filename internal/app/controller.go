package app

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"organelle-quiz/internal/domain"
)

// DefaultFeedbackDelay is how long the answer feedback stays up before the advance control appears.
const DefaultFeedbackDelay = 800 * time.Millisecond

// Renderer is the presentation layer the controller drives.
// Implementations must not call back into the controller synchronously.
type Renderer interface {
	ShowScreen(screen domain.Screen)
	RenderQuestion(view domain.QuestionView)
	LockOptions(correctIndex, selectedIndex int)
	Pulse(kind domain.Pulse)
	SetAdvanceVisible(visible bool)
	ShowResults(results domain.Results)
}

// SignalSink receives fire-and-forget indicator notifications. Notify must not block.
type SignalSink interface {
	Notify(signal domain.Signal)
}

// ControllerConfig carries the optional collaborators of a Controller.
type ControllerConfig struct {
	FeedbackDelay time.Duration
	Clock         Clock
	Shuffler      *Shuffler
	Logger        *zap.Logger
}

// Controller orchestrates a single player's quiz: it owns the QuizState and turns
// user actions into renderer updates and indicator signals.
// All actions are serialized; invalid actions return domain.ErrInvalidTransition and change nothing.
type Controller struct {
	mu       sync.Mutex
	state    *QuizState
	renderer Renderer
	sink     SignalSink
	shuffler *Shuffler
	clock    Clock
	delay    time.Duration
	logger   *zap.Logger

	reveal Timer
	closed bool
}

func NewController(catalog domain.Catalog, renderer Renderer, sink SignalSink, cfg ControllerConfig) (*Controller, error) {
	state, err := NewQuizState(catalog)
	if err != nil {
		return nil, err
	}
	if cfg.FeedbackDelay <= 0 {
		cfg.FeedbackDelay = DefaultFeedbackDelay
	}
	if cfg.Clock == nil {
		cfg.Clock = RealClock()
	}
	if cfg.Shuffler == nil {
		cfg.Shuffler = NewShuffler()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Controller{
		state:    state,
		renderer: renderer,
		sink:     sink,
		shuffler: cfg.Shuffler,
		clock:    cfg.Clock,
		delay:    cfg.FeedbackDelay,
		logger:   cfg.Logger.With(zap.String("catalog", catalog.ID)),
	}, nil
}

// ShowStart presents the start screen. Adapters call it once a renderer is attached.
func (c *Controller) ShowStart() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.renderer.SetAdvanceVisible(false)
	c.renderer.ShowScreen(domain.ScreenStart)
}

// Start begins a run from the start screen or from the results screen.
func (c *Controller) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return domain.ErrSessionClosed
	}
	return c.startLocked()
}

// Restart begins a fresh run once the previous one has completed.
func (c *Controller) Restart() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return domain.ErrSessionClosed
	}
	if c.state.Phase() != PhaseCompleted {
		return fmt.Errorf("restart while %s: %w", c.state.Phase(), domain.ErrInvalidTransition)
	}
	return c.startLocked()
}

func (c *Controller) startLocked() error {
	if err := c.state.Start(c.shuffler); err != nil {
		return err
	}
	c.stopRevealLocked()
	c.logger.Debug("quiz started", zap.Uint64("generation", c.state.Generation()))

	c.renderer.SetAdvanceVisible(false)
	c.renderQuestionLocked()
	c.renderer.ShowScreen(domain.ScreenQuiz)
	return nil
}

// SelectOption locks in option as the answer to the current question.
func (c *Controller) SelectOption(option string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return domain.ErrSessionClosed
	}
	return c.selectLocked(option)
}

// SelectIndex locks in the option at position index of the current question.
func (c *Controller) SelectIndex(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return domain.ErrSessionClosed
	}
	q, ok := c.state.Current()
	if !ok || c.state.Phase() != PhaseInProgress {
		return fmt.Errorf("select while %s: %w", c.state.Phase(), domain.ErrInvalidTransition)
	}
	if index < 0 || index >= len(q.Options) {
		return fmt.Errorf("question %s option #%d: %w", q.ID, index, domain.ErrOptionNotFound)
	}
	return c.selectLocked(q.Options[index])
}

func (c *Controller) selectLocked(option string) error {
	answer, err := c.state.Select(option)
	if err != nil {
		return err
	}

	if answer.Correct {
		c.sink.Notify(domain.SignalCorrect)
		c.renderer.Pulse(domain.PulseCorrect)
	} else {
		c.sink.Notify(domain.SignalIncorrect)
		c.renderer.Pulse(domain.PulseIncorrect)
	}
	c.renderer.LockOptions(answer.CorrectIndex, answer.SelectedIndex)

	snap := c.state.Snapshot()
	c.logger.Debug("answer locked",
		zap.Int("index", snap.Index),
		zap.Bool("correct", answer.Correct),
		zap.Int("score", snap.Score),
	)
	c.scheduleRevealLocked(snap.Generation, snap.Index)
	return nil
}

// scheduleRevealLocked shows the advance control after the feedback delay.
// A callback that outlives its run or question does nothing.
func (c *Controller) scheduleRevealLocked(generation uint64, index int) {
	c.stopRevealLocked()
	c.reveal = c.clock.AfterFunc(c.delay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		snap := c.state.Snapshot()
		if c.closed || snap.Generation != generation || snap.Phase != PhaseAwaitingAdvance || snap.Index != index {
			return
		}
		c.renderer.SetAdvanceVisible(true)
	})
}

func (c *Controller) stopRevealLocked() {
	if c.reveal != nil {
		c.reveal.Stop()
		c.reveal = nil
	}
}

// Advance moves to the next question, or to the results screen after the last one.
// The indicator is reset before any state changes.
func (c *Controller) Advance() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return domain.ErrSessionClosed
	}
	if c.state.Phase() != PhaseAwaitingAdvance {
		return fmt.Errorf("advance while %s: %w", c.state.Phase(), domain.ErrInvalidTransition)
	}

	c.sink.Notify(domain.SignalResetIndicator)
	c.stopRevealLocked()

	completed, err := c.state.Advance()
	if err != nil {
		return err
	}
	if !completed {
		c.renderQuestionLocked()
		c.renderer.SetAdvanceVisible(false)
		return nil
	}

	snap := c.state.Snapshot()
	tier := TierFor(snap.Score, snap.Total)
	c.logger.Info("quiz completed",
		zap.Int("score", snap.Score),
		zap.Int("total", snap.Total),
		zap.Stringer("tier", tier),
	)
	c.renderer.ShowResults(domain.Results{
		Score:       snap.Score,
		Total:       snap.Total,
		ScoreText:   scoreText(snap.Score, snap.Total),
		TierMessage: tier.Message(),
	})
	c.renderer.ShowScreen(domain.ScreenResults)
	return nil
}

func (c *Controller) renderQuestionLocked() {
	q, ok := c.state.Current()
	if !ok {
		return
	}
	snap := c.state.Snapshot()
	options := make([]string, len(q.Options))
	copy(options, q.Options)
	c.renderer.RenderQuestion(domain.QuestionView{
		Prompt:          q.Prompt,
		Options:         options,
		Image:           q.Image,
		ProgressLabel:   progressLabel(snap.Index, snap.Total),
		ProgressPercent: progressPercent(snap.Index, snap.Total),
	})
}

// Snapshot returns the current progress.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Snapshot()
}

// Current returns the question being asked, if a run is active.
func (c *Controller) Current() (domain.Question, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Current()
}

// Close cancels any pending feedback timer. Afterwards every action returns
// domain.ErrSessionClosed and late timer callbacks are ignored, so a replaced
// connection can no longer drive the indicator.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.stopRevealLocked()
}
