package imaging

import "sync/atomic"

// Swappable is an encoder whose settings can be replaced while in use.
type Swappable struct {
	current atomic.Pointer[Encoder]
}

// NewSwappable returns a Swappable starting with enc.
func NewSwappable(enc *Encoder) *Swappable {
	s := &Swappable{}
	s.Set(enc)
	return s
}

// Set replaces the active encoder.
func (s *Swappable) Set(enc *Encoder) {
	if enc == nil {
		enc = NewEncoder(0, 0, 0)
	}
	s.current.Store(enc)
}

// Current returns the active encoder.
func (s *Swappable) Current() *Encoder {
	return s.current.Load()
}

// Encode encodes with the active encoder.
func (s *Swappable) Encode(path string) (string, error) {
	return s.current.Load().Encode(path)
}
