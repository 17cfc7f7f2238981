// Package dispatch provides observer registries used to fan events out to
// interested handlers.
//
//   - Dispatcher: one unordered set of distinct handlers.
//   - IndexedDispatcher: a fixed number of independent sets addressed by an
//     integer slot in [0, Count).
//
// Both offer three traversal modes: Dispatch (broadcast a call), ForEach
// (arbitrary side effects) and AllTrue (predicate traversal that stops at the
// first false).
//
// Handlers are non-owning references. The owner of a handler must remove it
// before the handler becomes invalid. Types in this package are not safe for
// concurrent use; callers serialize access themselves.
package dispatch
