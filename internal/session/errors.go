package session

import "errors"

var (
	// ErrNotStarted is returned by Answer and Refresh before Start.
	ErrNotStarted = errors.New("session not started")

	// ErrComplete is returned by Answer and Refresh once all dimensions are done.
	ErrComplete = errors.New("session already complete")

	// ErrUnknownTrait is returned when the answered letter is not offered by
	// the active question.
	ErrUnknownTrait = errors.New("trait not offered by active question")

	// ErrNotComplete is returned by Result while the run is unfinished.
	ErrNotComplete = errors.New("session not complete")
)
