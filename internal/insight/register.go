package insight

import "sync"

// Register is the single-slot pending-request register for insight refreshes.
// Issuing a new request replaces the slot; a response is applied only when its
// token still matches the slot, so the last-requested refresh wins and stale
// resolutions are dropped.
type Register struct {
	mu      sync.Mutex
	seq     uint64
	message string
	pending bool
}

func NewRegister(initial string) *Register {
	return &Register{message: initial}
}

// Issue claims the slot for a new request and returns its token.
func (r *Register) Issue() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	r.pending = true
	return r.seq
}

// Resolve applies message if token still owns the slot. Returns false for a
// stale token, in which case the register is unchanged.
func (r *Register) Resolve(token uint64, message string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if token != r.seq {
		return false
	}
	r.message = message
	r.pending = false
	return true
}

// Current returns the displayed message and whether a request is in flight.
func (r *Register) Current() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.message, r.pending
}
