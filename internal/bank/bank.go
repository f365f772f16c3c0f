package bank

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"

	"golang.org/x/mod/semver"

	"github.com/abhisek/persona/internal/i18n"
)

// QuestionsPerDimension is how many questions a run administers per axis.
// Every dimension's pool must be larger so refresh has something to offer.
const QuestionsPerDimension = 5

// SupportedMajor is the bank file major version this build understands.
const SupportedMajor = "v1"

//go:embed data/questions.json
var embedded []byte

// Bank is an immutable, validated question catalog.
type Bank struct {
	version     string
	questions   []Question
	byID        map[string]*Question
	byDimension map[Dimension][]Question
}

// b is the compiled-in bank, set by init.
var b *Bank

func init() {
	loaded, err := Load(embedded)
	if err != nil {
		panic(fmt.Sprintf("bank: embedded questions invalid: %v", err))
	}
	b = loaded
}

type document struct {
	Version    string         `json:"version"`
	Dimensions []dimensionDoc `json:"dimensions"`
}

type dimensionDoc struct {
	ID        string        `json:"id"`
	Questions []questionDoc `json:"questions"`
}

type questionDoc struct {
	Text i18n.Text `json:"text"`
	A    i18n.Text `json:"a"`
	B    i18n.Text `json:"b"`
}

// Load parses and validates a bank document. Question IDs are assigned
// from the dimension and the 0-based position within it.
func Load(raw []byte) (*Bank, error) {
	if err := checkSchema(raw); err != nil {
		return nil, err
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode bank: %w", err)
	}

	if !semver.IsValid(doc.Version) {
		return nil, fmt.Errorf("invalid bank version %q", doc.Version)
	}
	if major := semver.Major(doc.Version); major != SupportedMajor {
		return nil, fmt.Errorf("unsupported bank version %s (want %s.x.x)", doc.Version, SupportedMajor)
	}

	var questions []Question
	for _, d := range doc.Dimensions {
		dim := Dimension(d.ID)
		first, second := dim.Letters()
		for i, q := range d.Questions {
			questions = append(questions, Question{
				ID:        fmt.Sprintf("%s-%d", dim, i),
				Dimension: dim,
				Text:      q.Text,
				A:         Option{Text: q.A, Value: first},
				B:         Option{Text: q.B, Value: second},
			})
		}
	}

	if err := validateQuestions(questions); err != nil {
		return nil, err
	}
	return build(doc.Version, questions), nil
}

func build(version string, questions []Question) *Bank {
	bk := &Bank{
		version:     version,
		questions:   questions,
		byID:        make(map[string]*Question, len(questions)),
		byDimension: make(map[Dimension][]Question),
	}
	for i := range bk.questions {
		q := &bk.questions[i]
		bk.byID[q.ID] = q
		bk.byDimension[q.Dimension] = append(bk.byDimension[q.Dimension], *q)
	}
	return bk
}

// Version returns the bank document's semantic version.
func (bk *Bank) Version() string { return bk.version }

// Questions returns dim's pool in file order. The slice is a copy.
func (bk *Bank) Questions(dim Dimension) []Question {
	return slices.Clone(bk.byDimension[dim])
}

// Get returns a question by ID.
func (bk *Bank) Get(id string) (Question, error) {
	q, ok := bk.byID[id]
	if !ok {
		return Question{}, fmt.Errorf("question not found: %q", id)
	}
	return *q, nil
}

// All returns every question, dimension by dimension.
func (bk *Bank) All() []Question {
	return slices.Clone(bk.questions)
}

// Default returns the compiled-in bank.
func Default() *Bank { return b }

// Questions returns the compiled-in pool for dim.
func Questions(dim Dimension) []Question { return b.Questions(dim) }

// Get looks up a compiled-in question by ID.
func Get(id string) (Question, error) { return b.Get(id) }

// All returns every compiled-in question.
func All() []Question { return b.All() }

// Version returns the compiled-in bank version.
func Version() string { return b.version }
