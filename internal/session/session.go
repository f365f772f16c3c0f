package session

import (
	"fmt"
	"slices"

	"github.com/abhisek/persona/internal/bank"
)

// New creates a session in the not-started phase. Every dimension's pool
// is read once up front and must be non-empty.
func New(opts Options) (*Session, error) {
	src := opts.Bank
	if src == nil {
		src = bank.Default()
	}
	pools := make(map[bank.Dimension][]bank.Question, 4)
	for _, dim := range bank.AllDimensions() {
		pool := src.Questions(dim)
		if len(pool) == 0 {
			return nil, fmt.Errorf("dimension %s has no questions", dim)
		}
		pools[dim] = pool
	}

	rng := opts.Rand
	if rng == nil {
		rng = NewRand(0)
	}

	s := &Session{
		pools:    pools,
		rng:      rng,
		observer: opts.Observer,
	}
	s.reset()
	return s, nil
}

func (s *Session) reset() {
	s.dimIndex = 0
	s.progress = 0
	s.scores = make(map[bank.Trait]int, 8)
	for _, t := range bank.AllTraits() {
		s.scores[t] = 0
	}
	s.used = make(map[string]bool)
	s.usedOrder = nil
	s.responses = nil
	s.active = nil
}

// Start begins a fresh run from any phase.
func (s *Session) Start() {
	s.reset()
	s.phase = PhaseInProgress
	s.setActive(s.pick(s.Dimension()))

	if s.observer != nil {
		s.observer.OnStart(s)
	}
}

// Refresh swaps the active question for another one of the same dimension.
// Scores and progress are untouched.
func (s *Session) Refresh() error {
	if err := s.requireActive(); err != nil {
		return err
	}
	replaced := *s.active
	s.setActive(s.pick(s.Dimension()))

	if s.observer != nil {
		s.observer.OnRefresh(s, replaced)
	}
	return nil
}

// Answer tallies trait for the active question and moves on: to the next
// question, the next dimension, or completion.
func (s *Session) Answer(trait bank.Trait) error {
	if err := s.requireActive(); err != nil {
		return err
	}
	answered := *s.active
	if !answered.Offers(trait) {
		return fmt.Errorf("%w: %q for question %s", ErrUnknownTrait, trait, answered.ID)
	}

	s.scores[trait]++
	s.progress++
	s.responses = append(s.responses, Response{
		QuestionID: answered.ID,
		Dimension:  answered.Dimension,
		Trait:      trait,
	})

	finished := false
	switch {
	case s.progress < QuestionsPerDimension:
		s.setActive(s.pick(s.Dimension()))
	case s.dimIndex == len(bank.AllDimensions())-1:
		s.phase = PhaseComplete
		s.active = nil
		finished = true
	default:
		s.dimIndex++
		s.progress = 0
		s.setActive(s.pick(s.Dimension()))
	}

	if s.observer != nil {
		s.observer.OnAnswer(s, answered, trait)
		if finished {
			s.observer.OnComplete(s, computeCode(s.scores))
		}
	}
	return nil
}

func (s *Session) requireActive() error {
	switch s.phase {
	case PhaseNotStarted:
		return ErrNotStarted
	case PhaseComplete:
		return ErrComplete
	}
	return nil
}

// pick draws uniformly from dim's questions not yet used in this run,
// falling back to the whole pool once they are exhausted.
func (s *Session) pick(dim bank.Dimension) bank.Question {
	pool := s.pools[dim]
	eligible := make([]bank.Question, 0, len(pool))
	for _, q := range pool {
		if !s.used[q.ID] {
			eligible = append(eligible, q)
		}
	}
	if len(eligible) == 0 {
		eligible = pool
	}
	return eligible[s.rng.IntN(len(eligible))]
}

func (s *Session) setActive(q bank.Question) {
	if !s.used[q.ID] {
		s.used[q.ID] = true
		s.usedOrder = append(s.usedOrder, q.ID)
	}
	s.active = &q
}

// Phase returns the lifecycle phase.
func (s *Session) Phase() Phase { return s.phase }

// DimensionIndex is 0..3 and stays at 3 once complete.
func (s *Session) DimensionIndex() int { return s.dimIndex }

// Dimension returns the dimension currently being asked.
func (s *Session) Dimension() bank.Dimension {
	return bank.AllDimensions()[s.dimIndex]
}

// Progress is the number of questions answered in the current dimension.
func (s *Session) Progress() int { return s.progress }

// Active returns the question on screen. ok is false outside a run.
func (s *Session) Active() (q bank.Question, ok bool) {
	if s.active == nil {
		return bank.Question{}, false
	}
	return *s.active, true
}

// Score returns the tally for a single letter.
func (s *Session) Score(t bank.Trait) int { return s.scores[t] }

// Scores returns a copy of all eight tallies.
func (s *Session) Scores() map[bank.Trait]int {
	out := make(map[bank.Trait]int, len(s.scores))
	for k, v := range s.scores {
		out[k] = v
	}
	return out
}

// Used returns every question ID shown in this run, in the order shown.
func (s *Session) Used() []string { return slices.Clone(s.usedOrder) }

// Responses returns the answers given so far, in order.
func (s *Session) Responses() []Response { return slices.Clone(s.responses) }
