package domain

import "fmt"

// OptionsPerQuestion is the fixed number of answer options every question carries.
const OptionsPerQuestion = 4

// Question models an image-prompted MCQ question with exactly one correct option.
type Question struct {
	ID      string   `json:"id"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
	Answer  string   `json:"answer"`
	Image   string   `json:"image,omitempty"`
}

// AnswerIndex returns the position of the correct option, or -1 if it is missing.
func (q Question) AnswerIndex() int {
	return q.OptionIndex(q.Answer)
}

// OptionIndex returns the position of option, or -1 if the question does not offer it.
func (q Question) OptionIndex(option string) int {
	for i, opt := range q.Options {
		if opt == option {
			return i
		}
	}
	return -1
}

// Validate checks the question invariants: a prompt, four distinct options and an answer among them.
func (q Question) Validate() error {
	if q.Prompt == "" {
		return fmt.Errorf("%w: empty prompt", ErrMalformedQuestion)
	}
	if len(q.Options) != OptionsPerQuestion {
		return fmt.Errorf("%w: expected %d options, got %d", ErrMalformedQuestion, OptionsPerQuestion, len(q.Options))
	}
	seen := make(map[string]struct{}, len(q.Options))
	for _, opt := range q.Options {
		if opt == "" {
			return fmt.Errorf("%w: empty option", ErrMalformedQuestion)
		}
		if _, dup := seen[opt]; dup {
			return fmt.Errorf("%w: duplicate option %q", ErrMalformedQuestion, opt)
		}
		seen[opt] = struct{}{}
	}
	if q.AnswerIndex() < 0 {
		return fmt.Errorf("%w: answer %q is not one of the options", ErrMalformedQuestion, q.Answer)
	}
	return nil
}

// Catalog is the fixed set of authored questions a quiz run is drawn from.
type Catalog struct {
	ID        string     `json:"id"`
	Questions []Question `json:"questions"`
}

// Validate rejects empty catalogs and catalogs containing malformed questions.
func (c Catalog) Validate() error {
	if len(c.Questions) == 0 {
		return ErrEmptyCatalog
	}
	for i, q := range c.Questions {
		if err := q.Validate(); err != nil {
			return fmt.Errorf("question %d (%s): %w", i, q.ID, err)
		}
	}
	return nil
}

// Screen identifies one of the mutually exclusive quiz screens.
type Screen string

const (
	ScreenStart   Screen = "start"
	ScreenQuiz    Screen = "quiz"
	ScreenResults Screen = "results"
)

// Pulse is the kind of transient full-screen feedback shown after a selection.
type Pulse string

const (
	PulseCorrect   Pulse = "correct"
	PulseIncorrect Pulse = "incorrect"
)

// Signal is a fire-and-forget event delivered to the physical indicator.
type Signal string

const (
	SignalCorrect        Signal = "correct"
	SignalIncorrect      Signal = "incorrect"
	SignalResetIndicator Signal = "reset-indicator"
)

// QuestionView is everything a renderer needs to draw the current question.
type QuestionView struct {
	Prompt          string   `json:"prompt"`
	Options         []string `json:"options"`
	Image           string   `json:"image,omitempty"`
	ProgressLabel   string   `json:"progressLabel"`
	ProgressPercent float64  `json:"progressPercent"`
}

// Results is the summary shown on the results screen.
type Results struct {
	Score       int    `json:"score"`
	Total       int    `json:"total"`
	ScoreText   string `json:"scoreText"`
	TierMessage string `json:"tierMessage"`
}
