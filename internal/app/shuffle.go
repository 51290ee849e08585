package app

import (
	"math/rand"
	"sync"
	"time"
)

// Shuffler produces unbiased random permutations using a Fisher-Yates pass.
// It is safe for concurrent use.
type Shuffler struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewShuffler() *Shuffler {
	return NewShufflerWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewShufflerWithSource allows deterministic permutations in tests.
func NewShufflerWithSource(src rand.Source) *Shuffler {
	return &Shuffler{rnd: rand.New(src)}
}

// Perm returns a uniformly random permutation of [0, n).
func (s *Shuffler) Perm(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := n - 1; i > 0; i-- {
		j := s.rnd.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Shuffle returns a shuffled copy of items, leaving the input untouched.
func Shuffle[T any](s *Shuffler, items []T) []T {
	out := make([]T, len(items))
	for i, idx := range s.Perm(len(items)) {
		out[i] = items[idx]
	}
	return out
}
