package dispatch

// Call invokes one event method on a handler. The closure captures the event
// arguments, e.g. func(h PlayerEventHandler) { h.OnPlayerConnect(p) }.
type Call[H any] func(H)

// Registry is the registration-only view of a Dispatcher. Owners hand it to
// components so they can subscribe without being able to fire events.
type Registry[H comparable] interface {
	AddHandler(h H) bool
	RemoveHandler(h H) bool
	HasHandler(h H) bool
}

// IndexedRegistry is the registration-only view of an IndexedDispatcher.
type IndexedRegistry[H comparable] interface {
	AddHandler(h H, index int) bool
	RemoveHandler(h H, index int) bool
	HasHandler(h H, index int) bool
	Count() int
}

var (
	_ Registry[*int]        = (*Dispatcher[*int])(nil)
	_ IndexedRegistry[*int] = (*IndexedDispatcher[*int])(nil)
)
