package activities

import (
	"fmt"
	"sync"
)

// Registry maps activity names to their records and enforces the
// signup/unregister rules.
//
// Thread-safety: a single sync.RWMutex guards the whole mapping. Reads
// (List, Get, Names) share the lock; roster changes take it exclusively,
// so the duplicate check and the append are one critical section.
type Registry struct {
	mu         sync.RWMutex
	seed       *Seed
	activities map[string]*Activity
}

// NewRegistry creates a registry populated from seed. The seed is kept
// so Reset can restore it later; the registry never writes to it.
func NewRegistry(seed *Seed) *Registry {
	r := &Registry{seed: seed}
	r.load()
	return r
}

func (r *Registry) load() {
	r.activities = make(map[string]*Activity, len(r.seed.order))
	for _, name := range r.seed.order {
		a := r.seed.activities[name].clone()
		r.activities[name] = &a
	}
}

// List returns a copy of every activity keyed by name. Mutating the
// result has no effect on the registry.
func (r *Registry) List() map[string]Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]Activity, len(r.activities))
	for name, a := range r.activities {
		out[name] = a.clone()
	}
	return out
}

// Catalog returns a copy of every activity together with the seed order,
// taken under a single read lock.
func (r *Registry) Catalog() Catalog {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c := Catalog{
		Names:      make([]string, len(r.seed.order)),
		Activities: make(map[string]Activity, len(r.activities)),
	}
	copy(c.Names, r.seed.order)
	for name, a := range r.activities {
		c.Activities[name] = a.clone()
	}
	return c
}

// Get returns a copy of the named activity, or ErrNotFound.
func (r *Registry) Get(name string) (Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.activities[name]
	if !ok {
		return Activity{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return a.clone(), nil
}

// Names returns activity names in seed order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.seed.order))
	copy(names, r.seed.order)
	return names
}

// Len returns the number of activities.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.activities)
}

// Signup appends email to the named activity's roster.
// Returns ErrNotFound for an unknown activity and ErrAlreadyRegistered
// if email is already on the roster.
func (r *Registry) Signup(name string, email Email) (Confirmation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return Confirmation{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if a.Has(email) {
		return Confirmation{}, fmt.Errorf("%w: %s in %s", ErrAlreadyRegistered, email, name)
	}

	a.Participants = append(a.Participants, string(email))
	return Confirmation{Message: fmt.Sprintf("Signed up %s for %s", email, name)}, nil
}

// Unregister removes email from the named activity's roster, keeping the
// remaining participants in order.
// Returns ErrNotFound for an unknown activity and ErrNotRegistered if
// email is not on the roster.
func (r *Registry) Unregister(name string, email Email) (Confirmation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return Confirmation{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	i := a.indexOf(email)
	if i < 0 {
		return Confirmation{}, fmt.Errorf("%w: %s in %s", ErrNotRegistered, email, name)
	}

	a.Participants = append(a.Participants[:i], a.Participants[i+1:]...)
	return Confirmation{Message: fmt.Sprintf("Unregistered %s from %s", email, name)}, nil
}

// Reset discards every roster change and restores the seed state.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.load()
}
