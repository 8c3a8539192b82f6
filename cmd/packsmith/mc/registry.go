package mc

import (
	"fmt"
	"sort"
)

// Registry indexes created resources by kind and identifier. A resource is
// registered once; re-registering the same kind+identifier is an error.
type Registry struct {
	resources []*Resource
	index     map[string]struct{}
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]struct{})}
}

// Add registers a resource. Returns ErrDuplicateResource if a resource
// with the same kind and identifier is already registered.
func (r *Registry) Add(res *Resource) error {
	key := res.Kind().String() + "\x00" + res.ID().String()
	if _, exists := r.index[key]; exists {
		return fmt.Errorf("%w: %s %s", ErrDuplicateResource, res.Kind(), res.ID())
	}
	r.index[key] = struct{}{}
	r.resources = append(r.resources, res)
	return nil
}

// Len returns the number of registered resources.
func (r *Registry) Len() int { return len(r.resources) }

// Resources returns all resources ordered by kind, then identifier, so
// listings and emitted trees are stable across runs.
func (r *Registry) Resources() []*Resource {
	out := append([]*Resource(nil), r.resources...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Kind() != out[j].Kind() {
			return out[i].Kind() < out[j].Kind()
		}
		return out[i].ID().String() < out[j].ID().String()
	})
	return out
}
