package owner

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestAtomicConcurrentCloneDrop(t *testing.T) {
	const goroutines = 8
	const rounds = 200

	var releases atomic.Int32
	at := NewAtomicRelease([]int64{1, 2, 3}, func([]int64) { releases.Add(1) })

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < rounds; j++ {
				dup := at.Clone()
				_ = dup.Deref()[0]
				dup.Drop()
			}
		}()
	}
	wg.Wait()

	if got := at.Refs(); got != 1 {
		t.Fatalf("Refs() after goroutines = %d, want 1", got)
	}
	if got := releases.Load(); got != 0 {
		t.Fatalf("release ran %d times before the last drop", got)
	}

	at.Drop()
	if got := releases.Load(); got != 1 {
		t.Errorf("release ran %d times, want 1", got)
	}
}

func TestAtomicCloneSharesView(t *testing.T) {
	at := NewAtomic([]byte("shared payload"))
	dup := at.Clone()

	if &dup.Deref()[0] != &at.Deref()[0] {
		t.Error("clone should deref to the same backing array")
	}
	if got := at.Refs(); got != 2 {
		t.Errorf("Refs() = %d, want 2", got)
	}
}

func TestAtomicDropPastZeroPanics(t *testing.T) {
	at := NewAtomic([]int{1})
	at.Drop()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on drop past zero")
		}
	}()
	at.Drop()
}

func TestAtomicZeroValue(t *testing.T) {
	var at Atomic[int]

	if got := at.Refs(); got != 0 {
		t.Errorf("Refs() = %d, want 0", got)
	}
	if got := at.String(); got != "Atomic(<nil>)" {
		t.Errorf("String() = %q, want %q", got, "Atomic(<nil>)")
	}
}
