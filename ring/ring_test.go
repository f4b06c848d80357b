package ring

import "testing"

func TestWriteReadRoundTrip(t *testing.T) {
	b := NewBuffer(8)
	n, err := b.Write([]byte("hello"))
	if err != nil || n != 5 {
		t.Fatalf("Write = %d, %v", n, err)
	}
	out := make([]byte, 5)
	n, _ = b.Read(out)
	if n != 5 || string(out) != "hello" {
		t.Fatalf("Read = %d %q, want 5 %q", n, out, "hello")
	}
	if !b.Empty() {
		t.Errorf("expected empty after draining")
	}
}

func TestWriteOverwritesOldestWhenFull(t *testing.T) {
	b := NewBuffer(4)
	b.Write([]byte("abcd"))
	b.Write([]byte("ef")) // overwrites 'a','b'
	out := make([]byte, 4)
	b.Read(out)
	if string(out) != "cdef" {
		t.Errorf("Read = %q, want %q", out, "cdef")
	}
}

func TestAvailableAndClear(t *testing.T) {
	b := NewBuffer(4)
	b.Write([]byte("ab"))
	if !b.Available(2) || b.Available(3) {
		t.Errorf("Available mismatch, len=%d", b.Len())
	}
	b.Clear()
	if !b.Empty() || b.Len() != 0 {
		t.Errorf("Clear did not empty buffer")
	}
}

func TestZeroCapacityWriteFails(t *testing.T) {
	b := NewBuffer(0)
	if _, err := b.Write([]byte("x")); err != ErrCapacityExceeded {
		t.Fatalf("Write on zero-capacity buffer = %v, want ErrCapacityExceeded", err)
	}
}
