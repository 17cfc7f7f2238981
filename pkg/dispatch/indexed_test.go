package dispatch

import "testing"

func TestIndexed_OutOfRangeAdd(t *testing.T) {
	d := NewIndexed[listener](4)
	h := &fakeListener{}
	if d.AddHandler(h, 5) {
		t.Fatalf("add at index 5 with Count=4 should fail")
	}
	if d.AddHandler(h, -1) {
		t.Fatalf("negative index should fail")
	}
	for i := 0; i < d.Count(); i++ {
		if d.HasHandler(h, i) || d.Len(i) != 0 {
			t.Fatalf("slot %d changed by out-of-range add", i)
		}
	}
}

func TestIndexed_SlotMembership(t *testing.T) {
	d := NewIndexed[listener](4)
	h := &fakeListener{}
	if !d.AddHandler(h, 2) {
		t.Fatalf("add at index 2 should succeed")
	}
	if !d.HasHandler(h, 2) {
		t.Fatalf("expected handler in slot 2")
	}
	if d.HasHandler(h, 1) {
		t.Fatalf("handler leaked into slot 1")
	}
	if d.AddHandler(h, 2) {
		t.Fatalf("duplicate add in same slot should report false")
	}
	if d.Total() != 1 {
		t.Fatalf("total=%d want 1", d.Total())
	}
}

func TestIndexed_SlotsIndependent(t *testing.T) {
	d := NewIndexed[listener](4)
	h := &fakeListener{}
	d.AddHandler(h, 0)
	d.AddHandler(h, 3)
	if !d.RemoveHandler(h, 0) {
		t.Fatalf("remove from slot 0 should succeed")
	}
	if d.HasHandler(h, 0) || !d.HasHandler(h, 3) {
		t.Fatalf("removal from slot 0 affected slot 3")
	}
	if d.RemoveHandler(h, 0) {
		t.Fatalf("second remove should report false")
	}
}

func TestIndexed_OutOfRangeOperations(t *testing.T) {
	d := NewIndexed[listener](4)
	h := &fakeListener{}
	d.AddHandler(h, 1)
	if d.RemoveHandler(h, 4) || d.HasHandler(h, 4) {
		t.Fatalf("out-of-range remove/has should report false")
	}
	called := false
	d.Dispatch(4, func(listener) { called = true })
	d.ForEach(99, func(listener) { called = true })
	if called {
		t.Fatalf("out-of-range traversal invoked a handler")
	}
	if !d.AllTrue(4, func(listener) bool { called = true; return false }) {
		t.Fatalf("out-of-range AllTrue should behave as an empty slot")
	}
	if called {
		t.Fatalf("out-of-range AllTrue invoked the predicate")
	}
	if d.InRange(4) || !d.InRange(3) || d.InRange(-1) {
		t.Fatalf("InRange mismatch")
	}
}

func TestIndexed_DispatchOnlyTargetSlot(t *testing.T) {
	d := NewIndexed[listener](3)
	a, b := &fakeListener{}, &fakeListener{}
	d.AddHandler(a, 0)
	d.AddHandler(b, 1)
	d.Dispatch(1, func(h listener) { h.Notify(7) })
	if len(a.got) != 0 {
		t.Fatalf("slot 0 handler received slot 1 event")
	}
	if len(b.got) != 1 || b.got[0] != 7 {
		t.Fatalf("slot 1 handler got %v", b.got)
	}
}

func TestIndexed_AllTrueShortCircuits(t *testing.T) {
	d := NewIndexed[listener](2)
	for i := 0; i < 3; i++ {
		d.AddHandler(&fakeListener{}, 1)
	}
	calls := 0
	if d.AllTrue(1, func(listener) bool { calls++; return calls != 2 }) {
		t.Fatalf("expected false")
	}
	if calls != 2 {
		t.Fatalf("calls=%d want 2", calls)
	}
	if !d.AllTrue(0, func(listener) bool { return false }) {
		t.Fatalf("empty slot should be vacuously true")
	}
}

func TestIndexed_NegativeCount(t *testing.T) {
	d := NewIndexed[listener](-3)
	if d.Count() != 0 {
		t.Fatalf("count=%d want 0", d.Count())
	}
	if d.AddHandler(&fakeListener{}, 0) {
		t.Fatalf("no slot should accept handlers")
	}
}

func TestIndexed_IntegerHandleZero(t *testing.T) {
	d := NewIndexed[uint32](4)
	if !d.AddHandler(0, 2) {
		t.Fatalf("id 0 should be inserted in slot 2")
	}
	if !d.HasHandler(0, 2) || d.HasHandler(0, 1) {
		t.Fatalf("id 0 membership wrong")
	}
	n := 0
	d.ForEach(2, func(uint32) { n++ })
	if n != 1 {
		t.Fatalf("visited %d handlers, want 1", n)
	}
}
