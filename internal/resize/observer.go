// Package resize delivers "size changed" reports for named host surfaces to
// the callbacks subscribed for them.
//
// The observer does not watch anything itself: an embedding adapter calls
// Report whenever it learns a surface was resized. Reports are delivered
// synchronously, one callback invocation per report, without buffering or
// coalescing.
package resize

import (
	"sync"

	"github.com/ironsheep/picture-mcp/internal/picture"
)

// Handle identifies one subscription. The zero Handle is never issued.
type Handle struct {
	target string
	id     uint64
}

// Target returns the surface the subscription listens to.
func (h Handle) Target() string {
	return h.target
}

// Observer is a registry of resize callbacks keyed by target surface. It is
// safe for concurrent use.
type Observer struct {
	mu       sync.RWMutex
	handlers map[string]map[uint64]func(picture.Size)
	nextID   uint64
}

// NewObserver creates an empty observer.
func NewObserver() *Observer {
	return &Observer{
		handlers: make(map[string]map[uint64]func(picture.Size)),
	}
}

// Subscribe registers fn for reports about target. It satisfies
// picture.ResizeService.
func (o *Observer) Subscribe(target string, fn func(picture.Size)) picture.Subscription {
	return o.Add(target, fn)
}

// Unsubscribe removes a subscription previously returned by Subscribe.
// Unknown or already removed subscriptions are ignored.
func (o *Observer) Unsubscribe(sub picture.Subscription) {
	h, ok := sub.(Handle)
	if !ok {
		return
	}
	o.Remove(h)
}

// Add registers fn for target and returns its handle.
func (o *Observer) Add(target string, fn func(picture.Size)) Handle {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.nextID++
	h := Handle{target: target, id: o.nextID}
	byID, ok := o.handlers[target]
	if !ok {
		byID = make(map[uint64]func(picture.Size))
		o.handlers[target] = byID
	}
	byID[h.id] = fn
	return h
}

// Remove deletes the subscription identified by h.
func (o *Observer) Remove(h Handle) {
	o.mu.Lock()
	defer o.mu.Unlock()

	byID, ok := o.handlers[h.target]
	if !ok {
		return
	}
	delete(byID, h.id)
	if len(byID) == 0 {
		delete(o.handlers, h.target)
	}
}

// Report delivers size to every callback subscribed to target and returns the
// number of callbacks invoked. Callbacks run on the caller's goroutine after
// the registry lock is released, so they may subscribe or unsubscribe.
func (o *Observer) Report(target string, width, height float64) int {
	o.mu.RLock()
	snapshot := make([]func(picture.Size), 0, len(o.handlers[target]))
	for _, fn := range o.handlers[target] {
		snapshot = append(snapshot, fn)
	}
	o.mu.RUnlock()

	size := picture.Size{Width: width, Height: height}
	for _, fn := range snapshot {
		fn(size)
	}
	return len(snapshot)
}

// Count returns the number of subscriptions for target.
func (o *Observer) Count(target string) int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.handlers[target])
}

// Targets returns the number of surfaces with at least one subscription.
func (o *Observer) Targets() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.handlers)
}
