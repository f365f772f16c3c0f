package bank

import "github.com/abhisek/persona/internal/i18n"

// Option is one of the two answers offered for a question.
type Option struct {
	Text  i18n.Text
	Value Trait
}

// Question is a forced-choice item. A always maps to the dimension's first
// letter and B to its second.
type Question struct {
	ID        string
	Dimension Dimension
	Text      i18n.Text
	A         Option
	B         Option
}

// Options returns A and B in display order.
func (q Question) Options() []Option {
	return []Option{q.A, q.B}
}

// Offers reports whether t is the value of one of q's options.
func (q Question) Offers(t Trait) bool {
	return t != "" && (q.A.Value == t || q.B.Value == t)
}
