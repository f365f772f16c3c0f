package session

import sess "github.com/abhisek/persona/internal/session"

// sessionInitMsg is sent once the engine has been built.
type sessionInitMsg struct {
	State *sess.Session
	Err   error
}
