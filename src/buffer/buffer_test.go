package buffer

import (
	"errors"
	"testing"
)

func TestNewLength(t *testing.T) {
	b := New[int](5)
	if b.Len() != 5 {
		t.Fatalf("expected length 5, got %d", b.Len())
	}
	if New[int](-1).Len() != 0 {
		t.Fatal("expected negative length to clamp to 0")
	}
	var nilBuf *Buffer[int]
	if nilBuf.Len() != 0 {
		t.Fatal("expected nil buffer length 0")
	}
}

func TestFillAndLive(t *testing.T) {
	b := New[int](4)
	b.Fill(3, 42)
	live := b.Live(3)
	if len(live) != 3 {
		t.Fatalf("expected 3 live slots, got %d", len(live))
	}
	for i, v := range live {
		if v != 42 {
			t.Fatalf("index %d: expected 42, got %d", i, v)
		}
	}
	if b.Get(3) != 0 {
		t.Fatalf("expected slot 3 untouched, got %d", b.Get(3))
	}
	if b.Live(0) != nil {
		t.Fatal("expected nil for empty live prefix")
	}
}

func TestLiveSharesMemory(t *testing.T) {
	b := New[int](2)
	b.Live(2)[1] = 9
	if b.Get(1) != 9 {
		t.Fatal("live slice should share the buffer")
	}
	*b.Ptr(0) = 7
	if b.Get(0) != 7 {
		t.Fatal("pointer should address the buffer")
	}
}

func TestAtOutOfRange(t *testing.T) {
	b := New[int](3)
	for _, i := range []int{-1, 3, 100} {
		if _, err := b.At(i); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("expected ErrOutOfRange for index %d", i)
		}
	}
	b.Set(2, 5)
	v, err := b.At(2)
	if err != nil || v != 5 {
		t.Fatalf("expected 5, got %d (%v)", v, err)
	}
}

func TestZero(t *testing.T) {
	b := New[string](3)
	b.Fill(3, "x")
	b.Zero(1, 3)
	if b.Get(0) != "x" || b.Get(1) != "" || b.Get(2) != "" {
		t.Fatalf("unexpected contents %q", b.Live(3))
	}
}

func TestReallocCopiesLivePrefix(t *testing.T) {
	b := New[int](4)
	b.Fill(4, 1)
	b.Set(3, 2)
	next := b.Realloc(8, 3)
	if next.Len() != 8 {
		t.Fatalf("expected length 8, got %d", next.Len())
	}
	if next.Get(0) != 1 || next.Get(2) != 1 {
		t.Fatal("live prefix not copied")
	}
	if next.Get(3) != 0 {
		t.Fatalf("expected slot past live prefix to be zero, got %d", next.Get(3))
	}
	if b.Len() != 0 {
		t.Fatal("expected old buffer to be released")
	}
	smaller := next.Realloc(2, 2)
	if smaller.Len() != 2 || smaller.Get(1) != 1 {
		t.Fatal("shrinking realloc lost elements")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := New[int](4)
	b.Fill(2, 3)
	c := b.Clone(2)
	if c.Len() != 4 {
		t.Fatalf("expected length 4, got %d", c.Len())
	}
	b.Set(0, 100)
	if c.Get(0) != 3 {
		t.Fatal("clone should be independent")
	}
}

func TestReleaseTwice(t *testing.T) {
	b := New[int](2)
	b.Release()
	b.Release()
	if b.Len() != 0 {
		t.Fatalf("expected length 0, got %d", b.Len())
	}
	var nilBuf *Buffer[int]
	nilBuf.Release()
}
