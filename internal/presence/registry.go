package presence

import "sync"

// Registry is the in-process session table: identity id -> live connection
// ids. An identity is online while it has at least one connection. State
// lives for the process lifetime only; clients rebuild it by reconnecting
// after a restart.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]map[string]struct{}
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]map[string]struct{})}
}

// Register records a connection and reports whether the identity just came
// online (this was its first live connection).
func (r *Registry) Register(userID, connID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	conns, ok := r.sessions[userID]
	if !ok {
		conns = make(map[string]struct{})
		r.sessions[userID] = conns
	}
	wasOffline := len(conns) == 0
	conns[connID] = struct{}{}
	return wasOffline
}

// Unregister drops a connection and reports whether the identity just went
// offline (that was its last live connection). Unknown connections are a
// no-op.
func (r *Registry) Unregister(userID, connID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	conns, ok := r.sessions[userID]
	if !ok {
		return false
	}
	if _, ok := conns[connID]; !ok {
		return false
	}
	delete(conns, connID)
	if len(conns) == 0 {
		delete(r.sessions, userID)
		return true
	}
	return false
}

func (r *Registry) Online(userID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions[userID]) > 0
}

// Connections returns the live connection ids for an identity.
func (r *Registry) Connections(userID string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	conns := r.sessions[userID]
	out := make([]string, 0, len(conns))
	for id := range conns {
		out = append(out, id)
	}
	return out
}
