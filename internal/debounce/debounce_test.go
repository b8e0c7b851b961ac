package debounce

import (
	"sync"
	"testing"
	"time"
)

// recorder collects fired values behind a mutex so tests can assert on them.
type recorder struct {
	mu     sync.Mutex
	values []string
}

func (r *recorder) record(value string) func() {
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.values = append(r.values, value)
	}
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.values...)
}

func TestBurstCoalescesToOneFire(t *testing.T) {
	d := New(20 * time.Millisecond)
	defer d.Stop()
	var rec recorder

	for _, value := range []string{"a", "ab", "abc", "abcd", "final"} {
		d.Trigger("letter_content_x", rec.record(value))
	}

	time.Sleep(100 * time.Millisecond)

	values := rec.snapshot()
	if len(values) != 1 {
		t.Fatalf("expected exactly 1 fire, got %d: %v", len(values), values)
	}
	if values[0] != "final" {
		t.Errorf("expected final value to fire, got %q", values[0])
	}
}

func TestCancelPreventsFire(t *testing.T) {
	d := New(20 * time.Millisecond)
	defer d.Stop()
	var rec recorder

	d.Trigger("k", rec.record("should not fire"))
	d.Cancel("k")

	time.Sleep(60 * time.Millisecond)

	if values := rec.snapshot(); len(values) != 0 {
		t.Errorf("expected no fires after cancel, got %v", values)
	}
}

func TestKeysAreIndependent(t *testing.T) {
	d := New(20 * time.Millisecond)
	defer d.Stop()
	var rec recorder

	d.Trigger("k1", rec.record("one"))
	d.Trigger("k2", rec.record("two"))

	time.Sleep(100 * time.Millisecond)

	values := rec.snapshot()
	if len(values) != 2 {
		t.Fatalf("expected 2 fires, got %d: %v", len(values), values)
	}
}

func TestRetriggerAfterFire(t *testing.T) {
	d := New(10 * time.Millisecond)
	defer d.Stop()
	var rec recorder

	d.Trigger("k", rec.record("first"))
	time.Sleep(50 * time.Millisecond)
	d.Trigger("k", rec.record("second"))
	time.Sleep(50 * time.Millisecond)

	values := rec.snapshot()
	if len(values) != 2 || values[0] != "first" || values[1] != "second" {
		t.Errorf("expected [first second], got %v", values)
	}
}

func TestStopDropsAllPending(t *testing.T) {
	d := New(20 * time.Millisecond)
	var rec recorder

	d.Trigger("k1", rec.record("one"))
	d.Trigger("k2", rec.record("two"))
	d.Stop()

	time.Sleep(60 * time.Millisecond)

	if values := rec.snapshot(); len(values) != 0 {
		t.Errorf("expected no fires after stop, got %v", values)
	}
}
