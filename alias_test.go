package ownref

import (
	"sync"
	"testing"

	"github.com/wippyai/ownref/owner"
)

func TestBoxRefAdapter(t *testing.T) {
	var ref BoxRef[int, *int] = ForBox(owner.NewBox(42))

	if got := *ref.Deref(); got != 42 {
		t.Errorf("*Deref() = %v, want 42", got)
	}
	if ref.Deref() != ref.Owner().Deref() {
		t.Error("view should be the owner's own pointer")
	}
}

func TestBufferRefAdapter(t *testing.T) {
	buf := owner.NewBuffer([]int64{1, 2, 3, 4, 5})
	ref := ForBuffer(buf)

	tail := Map(ref, func(s []int64) []int64 { return s[2:] })
	if got := len(tail.Deref()); got != 3 {
		t.Fatalf("len(tail) = %d, want 3", got)
	}
	if &tail.Deref()[0] != &buf.Deref()[2] {
		t.Error("narrowed view should alias the owner's backing array")
	}

	var narrowed BufferRef[int64, []int64] = tail
	if got := narrowed.Deref()[0]; got != 3 {
		t.Errorf("narrowed.Deref()[0] = %v, want 3", got)
	}
}

func TestTextRefAdapter(t *testing.T) {
	ref := ForText(owner.NewText("hello world"))

	var word TextRef = Map(ref, func(s string) string { return s[6:] })
	if got := word.Deref(); got != "world" {
		t.Errorf("word.Deref() = %q, want %q", got, "world")
	}
	if got := word.Owner().Len(); got != 11 {
		t.Errorf("Owner().Len() = %d, want 11", got)
	}
}

func TestSharedRefAdapter(t *testing.T) {
	sh := owner.NewShared([]int64{10, 20, 30})
	ref := ForShared(sh)

	mid := Map(Clone(ref), func(s []int64) []int64 { return s[1:2] })
	if got := mid.Deref()[0]; got != 20 {
		t.Errorf("mid.Deref()[0] = %v, want 20", got)
	}
	if got := sh.Refs(); got != 2 {
		t.Errorf("Refs() = %d, want 2", got)
	}

	mid.Drop()
	ref.Drop()
	if got := sh.Refs(); got != 0 {
		t.Errorf("Refs() after drops = %d, want 0", got)
	}
}

func TestAtomicRefAdapter(t *testing.T) {
	at := owner.NewAtomic([]int64{1, 2, 3, 4})
	ref := ForAtomic(at)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			dup := Clone(ref)
			_ = dup.Deref()[0]
			dup.Drop()
		}()
	}
	wg.Wait()

	if got := at.Refs(); got != 1 {
		t.Fatalf("Refs() after goroutines = %d, want 1", got)
	}
	ref.Drop()
	if got := at.Refs(); got != 0 {
		t.Errorf("Refs() after final drop = %d, want 0", got)
	}
}
