// Package admin holds the admin identity registry and the admin-mode
// session state machine.
package admin

import "sort"

// Registry is the set of known admin identities. Lifecycle is process
// duration; the supervisory loop's one-session-at-a-time discipline is the
// only serialization it needs.
type Registry struct {
	ids map[string]struct{}
}

// NewRegistry creates a registry seeded with the given identities.
func NewRegistry(seed ...string) *Registry {
	r := &Registry{ids: make(map[string]struct{}, len(seed))}
	for _, id := range seed {
		r.ids[id] = struct{}{}
	}
	return r
}

// Add registers an identity. Returns false without mutation when the
// identity already exists.
func (r *Registry) Add(id string) bool {
	if _, exists := r.ids[id]; exists {
		return false
	}
	r.ids[id] = struct{}{}
	return true
}

// Remove deletes an identity. Returns false without mutation when the
// identity is not a member.
func (r *Registry) Remove(id string) bool {
	if _, exists := r.ids[id]; !exists {
		return false
	}
	delete(r.ids, id)
	return true
}

// Contains reports whether id is a known admin identity.
func (r *Registry) Contains(id string) bool {
	_, exists := r.ids[id]
	return exists
}

// IDs returns the registered identities in sorted order.
func (r *Registry) IDs() []string {
	out := make([]string, 0, len(r.ids))
	for id := range r.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
