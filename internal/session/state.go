package session

import (
	"math/rand/v2"

	"github.com/abhisek/persona/internal/bank"
)

// QuestionsPerDimension is the per-axis quota of answered questions.
const QuestionsPerDimension = bank.QuestionsPerDimension

// Phase is where a run is in its lifecycle.
type Phase int

const (
	PhaseNotStarted Phase = iota // Constructed, Start not yet called
	PhaseInProgress              // A question is active
	PhaseComplete                // All four dimensions answered
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhaseInProgress:
		return "in-progress"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Source supplies the question pool for a dimension.
type Source interface {
	Questions(dim bank.Dimension) []bank.Question
}

// Response records one answered question.
type Response struct {
	QuestionID string
	Dimension  bank.Dimension
	Trait      bank.Trait
}

// Options configures a Session. Zero values pick sensible defaults.
type Options struct {
	// Bank defaults to the compiled-in question bank.
	Bank Source

	// Rand drives question selection. Nil means a randomly seeded source.
	Rand *rand.Rand

	// Observer is notified after every state change. May be nil.
	Observer Observer
}

// NewRand returns a PCG-backed source. A zero seed draws a random one.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Session is one pass through the quiz. It is not safe for concurrent use.
type Session struct {
	pools    map[bank.Dimension][]bank.Question
	rng      *rand.Rand
	observer Observer

	phase     Phase
	dimIndex  int
	progress  int
	scores    map[bank.Trait]int
	used      map[string]bool
	usedOrder []string
	responses []Response
	active    *bank.Question
}
