package sequence

import (
	"sync"
	"testing"
)

func TestSequencerNext(t *testing.T) {
	s := New(41)
	if got := s.Next(); got != 42 {
		t.Fatalf("Next() = %d, want 42", got)
	}
	if got := s.Current(); got != 42 {
		t.Fatalf("Current() = %d, want 42", got)
	}
}

func TestSequencerObserve(t *testing.T) {
	s := New(0)
	s.Observe(10)
	s.Observe(3)
	if got := s.Current(); got != 10 {
		t.Fatalf("Current() = %d, want 10", got)
	}
	if got := s.Next(); got != 11 {
		t.Fatalf("Next() = %d, want 11", got)
	}
}

func TestSequencerConcurrentUnique(t *testing.T) {
	s := New(0)
	const workers, per = 8, 1000

	var mu sync.Mutex
	seen := make(map[uint64]bool, workers*per)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < per; i++ {
				v := s.Next()
				mu.Lock()
				if seen[v] {
					t.Errorf("duplicate sequence %d", v)
				}
				seen[v] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if len(seen) != workers*per {
		t.Fatalf("got %d numbers, want %d", len(seen), workers*per)
	}
}
