package dispatch

import "github.com/samber/lo"

// Dispatcher holds a set of distinct handlers. The zero value is ready to use.
//
// Iteration order is unspecified. Each traversal works on a snapshot of the
// set taken when it starts: handlers removed mid-traversal are skipped, and
// handlers added mid-traversal are first seen by the next traversal.
type Dispatcher[H comparable] struct {
	handlers map[H]struct{}
}

// New returns an empty Dispatcher.
func New[H comparable]() *Dispatcher[H] {
	return &Dispatcher[H]{handlers: make(map[H]struct{})}
}

// AddHandler registers h and reports whether it was newly inserted. Any value
// of H is accepted, including the zero value (e.g. handle id 0).
func (d *Dispatcher[H]) AddHandler(h H) bool {
	if _, ok := d.handlers[h]; ok {
		return false
	}
	if d.handlers == nil {
		d.handlers = make(map[H]struct{})
	}
	d.handlers[h] = struct{}{}
	return true
}

// RemoveHandler unregisters h and reports whether it was registered.
func (d *Dispatcher[H]) RemoveHandler(h H) bool {
	if _, ok := d.handlers[h]; !ok {
		return false
	}
	delete(d.handlers, h)
	return true
}

// HasHandler reports whether h is registered.
func (d *Dispatcher[H]) HasHandler(h H) bool {
	_, ok := d.handlers[h]
	return ok
}

// Len returns the number of registered handlers.
func (d *Dispatcher[H]) Len() int { return len(d.handlers) }

// Handlers returns a copy of the registered handlers.
func (d *Dispatcher[H]) Handlers() []H { return lo.Keys(d.handlers) }

// Dispatch invokes call on every registered handler.
func (d *Dispatcher[H]) Dispatch(call Call[H]) {
	d.ForEach(call)
}

// ForEach applies fn to every registered handler.
func (d *Dispatcher[H]) ForEach(fn func(H)) {
	if len(d.handlers) == 0 {
		return
	}
	for _, h := range lo.Keys(d.handlers) {
		if !d.HasHandler(h) {
			continue
		}
		fn(h)
	}
}

// AllTrue applies pred to the registered handlers until one returns false.
// It reports true if every call returned true, including when the set is
// empty.
func (d *Dispatcher[H]) AllTrue(pred func(H) bool) bool {
	if len(d.handlers) == 0 {
		return true
	}
	for _, h := range lo.Keys(d.handlers) {
		if !d.HasHandler(h) {
			continue
		}
		if !pred(h) {
			return false
		}
	}
	return true
}
