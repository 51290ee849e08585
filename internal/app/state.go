package app

import (
	"fmt"

	"organelle-quiz/internal/domain"
)

// Phase is the state machine position of a quiz run.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseInProgress
	PhaseAwaitingAdvance
	PhaseCompleted
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhaseInProgress:
		return "in-progress"
	case PhaseAwaitingAdvance:
		return "awaiting-advance"
	case PhaseCompleted:
		return "completed"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// MarshalText lets snapshots carry the phase name on the wire.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Answer is the outcome of locking in an option for the current question.
type Answer struct {
	Correct       bool
	CorrectIndex  int
	SelectedIndex int
}

// Snapshot is a read-only view of a quiz run.
type Snapshot struct {
	Phase      Phase  `json:"phase"`
	Index      int    `json:"index"`
	Score      int    `json:"score"`
	Answered   int    `json:"answered"`
	Total      int    `json:"total"`
	Generation uint64 `json:"generation"`
}

// QuizState holds the progress of one run over a fixed catalog and enforces valid transitions.
// Invalid transitions return domain.ErrInvalidTransition and leave the state untouched.
type QuizState struct {
	catalog    []domain.Question
	order      []domain.Question
	index      int
	score      int
	phase      Phase
	generation uint64
}

// NewQuizState validates the catalog; an empty or malformed catalog never reaches a run.
func NewQuizState(catalog domain.Catalog) (*QuizState, error) {
	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", catalog.ID, err)
	}
	questions := make([]domain.Question, len(catalog.Questions))
	copy(questions, catalog.Questions)
	return &QuizState{catalog: questions, phase: PhaseNotStarted}, nil
}

// Start begins a fresh run with a newly drawn order. Valid before the first run and after completion.
func (s *QuizState) Start(shuffler *Shuffler) error {
	if s.phase != PhaseNotStarted && s.phase != PhaseCompleted {
		return fmt.Errorf("start while %s: %w", s.phase, domain.ErrInvalidTransition)
	}
	s.order = Shuffle(shuffler, s.catalog)
	s.index = 0
	s.score = 0
	s.phase = PhaseInProgress
	s.generation++
	return nil
}

// Select locks in an answer for the current question. Answers are single-shot.
func (s *QuizState) Select(option string) (Answer, error) {
	if s.phase != PhaseInProgress {
		return Answer{}, fmt.Errorf("select while %s: %w", s.phase, domain.ErrInvalidTransition)
	}
	q := s.order[s.index]
	selected := q.OptionIndex(option)
	if selected < 0 {
		return Answer{}, fmt.Errorf("question %s option %q: %w", q.ID, option, domain.ErrOptionNotFound)
	}
	answer := Answer{
		Correct:       option == q.Answer,
		CorrectIndex:  q.AnswerIndex(),
		SelectedIndex: selected,
	}
	if answer.Correct {
		s.score++
	}
	s.phase = PhaseAwaitingAdvance
	return answer, nil
}

// Advance moves past an answered question and reports whether the run is complete.
func (s *QuizState) Advance() (bool, error) {
	if s.phase != PhaseAwaitingAdvance {
		return false, fmt.Errorf("advance while %s: %w", s.phase, domain.ErrInvalidTransition)
	}
	s.index++
	if s.index < len(s.order) {
		s.phase = PhaseInProgress
		return false, nil
	}
	s.phase = PhaseCompleted
	return true, nil
}

// Current returns the question at the current index while a run is active.
func (s *QuizState) Current() (domain.Question, bool) {
	if s.phase != PhaseInProgress && s.phase != PhaseAwaitingAdvance {
		return domain.Question{}, false
	}
	return s.order[s.index], true
}

// Order returns a copy of the active order.
func (s *QuizState) Order() []domain.Question {
	out := make([]domain.Question, len(s.order))
	copy(out, s.order)
	return out
}

func (s *QuizState) Phase() Phase       { return s.phase }
func (s *QuizState) Generation() uint64 { return s.generation }
func (s *QuizState) Total() int         { return len(s.catalog) }

func (s *QuizState) Snapshot() Snapshot {
	answered := s.index
	if s.phase == PhaseAwaitingAdvance {
		answered++
	}
	return Snapshot{
		Phase:      s.phase,
		Index:      s.index,
		Score:      s.score,
		Answered:   answered,
		Total:      len(s.catalog),
		Generation: s.generation,
	}
}
