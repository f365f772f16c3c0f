package session

import (
	"strings"

	"github.com/abhisek/persona/internal/bank"
)

// Code is a four-letter result such as "INTJ".
type Code string

// Traits splits the code into its letters.
func (c Code) Traits() []bank.Trait {
	out := make([]bank.Trait, 0, len(c))
	for _, r := range string(c) {
		out = append(out, bank.Trait(string(r)))
	}
	return out
}

// Axis is the tally for one dimension, as shown in the traits breakdown.
type Axis struct {
	Dimension   bank.Dimension
	First       bank.Trait
	Second      bank.Trait
	FirstScore  int
	SecondScore int
}

// Winner is the dominant letter. Ties go to the first letter.
func (a Axis) Winner() bank.Trait {
	if a.FirstScore >= a.SecondScore {
		return a.First
	}
	return a.Second
}

// FirstShare is the first letter's fraction of the axis total. An axis with
// no answers reports 0.
func (a Axis) FirstShare() float64 {
	total := a.FirstScore + a.SecondScore
	if total == 0 {
		total = 1
	}
	return float64(a.FirstScore) / float64(total)
}

// SecondShare is the complement of FirstShare for an answered axis.
func (a Axis) SecondShare() float64 {
	total := a.FirstScore + a.SecondScore
	if total == 0 {
		total = 1
	}
	return float64(a.SecondScore) / float64(total)
}

func breakdown(scores map[bank.Trait]int) []Axis {
	dims := bank.AllDimensions()
	axes := make([]Axis, 0, len(dims))
	for _, dim := range dims {
		first, second := dim.Letters()
		axes = append(axes, Axis{
			Dimension:   dim,
			First:       first,
			Second:      second,
			FirstScore:  scores[first],
			SecondScore: scores[second],
		})
	}
	return axes
}

func computeCode(scores map[bank.Trait]int) Code {
	var sb strings.Builder
	for _, axis := range breakdown(scores) {
		sb.WriteString(string(axis.Winner()))
	}
	return Code(sb.String())
}

// Breakdown returns the per-axis tallies. Valid in any phase.
func (s *Session) Breakdown() []Axis {
	return breakdown(s.scores)
}

// Result returns the personality code once every dimension is answered.
func (s *Session) Result() (Code, error) {
	if s.phase != PhaseComplete {
		return "", ErrNotComplete
	}
	return computeCode(s.scores), nil
}
