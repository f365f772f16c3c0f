package bank

import "strings"

// Dimension is one of the four bipolar personality axes.
type Dimension string

const (
	EI Dimension = "EI" // Energy
	SN Dimension = "SN" // Perception
	TF Dimension = "TF" // Judgment
	JP Dimension = "JP" // Lifestyle
)

// AllDimensions returns the dimensions in the order a run visits them.
func AllDimensions() []Dimension {
	return []Dimension{EI, SN, TF, JP}
}

// ParseDimension accepts a dimension ID in any case.
func ParseDimension(s string) (Dimension, bool) {
	d := Dimension(strings.ToUpper(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", false
	}
	return d, true
}

// Valid reports whether d is one of the four known dimensions.
func (d Dimension) Valid() bool {
	return d.Index() >= 0
}

// Index returns d's position in AllDimensions, or -1.
func (d Dimension) Index() int {
	for i, dim := range AllDimensions() {
		if dim == d {
			return i
		}
	}
	return -1
}

// Letters returns the two poles of d. The first one is the tie winner.
func (d Dimension) Letters() (Trait, Trait) {
	if len(d) != 2 {
		return "", ""
	}
	return Trait(d[0:1]), Trait(d[1:2])
}

// Default is the letter a tied axis resolves to.
func (d Dimension) Default() Trait {
	first, _ := d.Letters()
	return first
}

// Trait is a single personality letter.
type Trait string

const (
	E Trait = "E"
	I Trait = "I"
	S Trait = "S"
	N Trait = "N"
	T Trait = "T"
	F Trait = "F"
	J Trait = "J"
	P Trait = "P"
)

// AllTraits returns the eight letters grouped by dimension.
func AllTraits() []Trait {
	return []Trait{E, I, S, N, T, F, J, P}
}

// ParseTrait accepts a single letter in any case.
func ParseTrait(s string) (Trait, bool) {
	t := Trait(strings.ToUpper(strings.TrimSpace(s)))
	if t.Dimension() == "" {
		return "", false
	}
	return t, true
}

// Dimension returns the axis t belongs to, or "" for an unknown letter.
func (t Trait) Dimension() Dimension {
	for _, d := range AllDimensions() {
		a, b := d.Letters()
		if t == a || t == b {
			return d
		}
	}
	return ""
}

// Opposite returns the other pole of t's axis.
func (t Trait) Opposite() Trait {
	a, b := t.Dimension().Letters()
	if t == a {
		return b
	}
	return a
}
