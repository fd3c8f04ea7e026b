package server

import (
	"fmt"
	"sort"
	"sync"

	"github.com/ironsheep/picture-mcp/internal/picture"
	"github.com/ironsheep/picture-mcp/internal/render"
)

// instance is one live picture hosted by the server.
type instance struct {
	id     string
	ctrl   *picture.Controller
	props  render.Props
	target string
}

// registry holds the live picture instances keyed by ID.
//
// Instances stay registered until picture_detach removes them or the server
// shuts down. The registry is safe for concurrent use.
type registry struct {
	mu     sync.RWMutex
	items  map[string]*instance
	nextID int
}

// newRegistry creates an empty registry.
func newRegistry() *registry {
	return &registry{
		items: make(map[string]*instance),
	}
}

// Add registers ctrl and returns its new instance.
func (r *registry) Add(ctrl *picture.Controller, props render.Props) *instance {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	inst := &instance{
		id:    fmt.Sprintf("picture-%d", r.nextID),
		ctrl:  ctrl,
		props: props,
	}
	r.items[inst.id] = inst
	return inst
}

// Get looks up an instance by ID.
func (r *registry) Get(id string) (*instance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	inst, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("unknown picture: %s", id)
	}
	return inst, nil
}

// Remove unregisters an instance and returns it.
func (r *registry) Remove(id string) (*instance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	inst, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("unknown picture: %s", id)
	}
	delete(r.items, id)
	return inst, nil
}

// Drain unregisters and returns every instance, ordered by ID.
func (r *registry) Drain() []*instance {
	r.mu.Lock()
	items := r.items
	r.items = make(map[string]*instance)
	r.mu.Unlock()

	out := make([]*instance, 0, len(items))
	for _, inst := range items {
		out = append(out, inst)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// Len returns the number of live instances.
func (r *registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
