package library

import "sync"

// Session is the last prompt a caller saved or loaded.
type Session struct {
	ID   int64
	Text string
}

// Tracker maps caller tokens to their last prompt.
type Tracker struct {
	mu       sync.Mutex
	sessions map[string]Session
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{sessions: make(map[string]Session)}
}

// Remember records the last prompt of token. An empty token is not tracked.
func (t *Tracker) Remember(token string, id int64, text string) {
	if token == "" {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sessions[token] = Session{ID: id, Text: text}
}

// Last returns the last prompt of token.
func (t *Tracker) Last(token string) (Session, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.sessions[token]
	return s, ok
}

// Forget drops token and reports whether it was tracked.
func (t *Tracker) Forget(token string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.sessions[token]
	delete(t.sessions, token)
	return ok
}

// Len returns the number of tracked tokens.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.sessions)
}
