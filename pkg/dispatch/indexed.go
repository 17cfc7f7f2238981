package dispatch

// IndexedDispatcher holds Count independent handler sets addressed by slot
// index. Count is fixed at construction.
//
// Every operation is bounds-checked. An out-of-range index behaves like an
// empty slot that cannot be modified: AddHandler, RemoveHandler and
// HasHandler report false, Dispatch and ForEach do nothing, AllTrue reports
// true. Callers that need to tell "bad index" from "not registered" check
// InRange first.
type IndexedDispatcher[H comparable] struct {
	slots []Dispatcher[H]
}

// NewIndexed returns an IndexedDispatcher with count slots. A negative count
// is treated as zero.
func NewIndexed[H comparable](count int) *IndexedDispatcher[H] {
	if count < 0 {
		count = 0
	}
	return &IndexedDispatcher[H]{slots: make([]Dispatcher[H], count)}
}

// Count returns the number of slots.
func (d *IndexedDispatcher[H]) Count() int { return len(d.slots) }

// InRange reports whether index addresses a slot.
func (d *IndexedDispatcher[H]) InRange(index int) bool {
	return index >= 0 && index < len(d.slots)
}

func (d *IndexedDispatcher[H]) slot(index int) *Dispatcher[H] {
	if !d.InRange(index) {
		return nil
	}
	return &d.slots[index]
}

// AddHandler registers h in slot index.
func (d *IndexedDispatcher[H]) AddHandler(h H, index int) bool {
	s := d.slot(index)
	if s == nil {
		return false
	}
	return s.AddHandler(h)
}

// RemoveHandler unregisters h from slot index.
func (d *IndexedDispatcher[H]) RemoveHandler(h H, index int) bool {
	s := d.slot(index)
	if s == nil {
		return false
	}
	return s.RemoveHandler(h)
}

// HasHandler reports whether h is registered in slot index.
func (d *IndexedDispatcher[H]) HasHandler(h H, index int) bool {
	s := d.slot(index)
	if s == nil {
		return false
	}
	return s.HasHandler(h)
}

// Len returns the number of handlers in slot index.
func (d *IndexedDispatcher[H]) Len(index int) int {
	s := d.slot(index)
	if s == nil {
		return 0
	}
	return s.Len()
}

// Total returns the number of registrations across all slots.
func (d *IndexedDispatcher[H]) Total() int {
	n := 0
	for i := range d.slots {
		n += d.slots[i].Len()
	}
	return n
}

// Dispatch invokes call on every handler in slot index.
func (d *IndexedDispatcher[H]) Dispatch(index int, call Call[H]) {
	if s := d.slot(index); s != nil {
		s.Dispatch(call)
	}
}

// ForEach applies fn to every handler in slot index.
func (d *IndexedDispatcher[H]) ForEach(index int, fn func(H)) {
	if s := d.slot(index); s != nil {
		s.ForEach(fn)
	}
}

// AllTrue applies pred to the handlers in slot index until one returns false.
func (d *IndexedDispatcher[H]) AllTrue(index int, pred func(H) bool) bool {
	s := d.slot(index)
	if s == nil {
		return true
	}
	return s.AllTrue(pred)
}
