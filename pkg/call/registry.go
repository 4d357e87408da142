package call

import (
	"sync"
)

// canceler is the registry's view of a stream handle.
type canceler interface {
	ID() string
	Cancel()
}

// Registry tracks active streaming calls so they can be enumerated and
// force-cancelled. Every Subscribe registers its handle; handles deregister
// themselves on terminal. Registration and bulk cancel are safe to run
// concurrently: a handle registered during CancelAll either lands in the
// snapshot being cancelled or stays registered, it is never lost.
type Registry struct {
	mu      sync.Mutex
	handles map[string]canceler
	closed  bool
}

// NewRegistry creates an empty stream registry.
func NewRegistry() *Registry {
	return &Registry{handles: make(map[string]canceler)}
}

func (r *Registry) register(h canceler) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		h.Cancel()
		return
	}
	r.handles[h.ID()] = h
	r.mu.Unlock()
}

func (r *Registry) deregister(id string) {
	r.mu.Lock()
	delete(r.handles, id)
	r.mu.Unlock()
}

// Len returns the number of active streams.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.handles)
}

// IDs returns the identifiers of all active streams.
func (r *Registry) IDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, 0, len(r.handles))
	for id := range r.handles {
		ids = append(ids, id)
	}
	return ids
}

// CancelAll cancels every active stream exactly once and empties the
// registry. Cancellation is idempotent per handle, so racing a stream's own
// termination is harmless.
func (r *Registry) CancelAll() {
	for _, h := range r.snapshot(false) {
		h.Cancel()
	}
}

// Close cancels every active stream and rejects future registrations by
// cancelling them on entry. Used at client shutdown so no stream outlives the
// channel.
func (r *Registry) Close() {
	for _, h := range r.snapshot(true) {
		h.Cancel()
	}
}

func (r *Registry) snapshot(markClosed bool) []canceler {
	r.mu.Lock()
	defer r.mu.Unlock()
	handles := make([]canceler, 0, len(r.handles))
	for _, h := range r.handles {
		handles = append(handles, h)
	}
	r.handles = make(map[string]canceler)
	if markClosed {
		r.closed = true
	}
	return handles
}
