package planner

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"marquee/internal/library"
)

// fakeOracle scripts GenerateText responses per call and records every
// prompt it receives.
type fakeOracle struct {
	mu      sync.Mutex
	prompts []string
	budgets []int
	respond func(call int, prompt string, maxTokens int) (string, error)
}

func (f *fakeOracle) GenerateText(_ context.Context, prompt string, maxTokens int) (string, error) {
	f.mu.Lock()
	call := len(f.prompts)
	f.prompts = append(f.prompts, prompt)
	f.budgets = append(f.budgets, maxTokens)
	f.mu.Unlock()
	return f.respond(call, prompt, maxTokens)
}

func (f *fakeOracle) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

// recordingSleeper captures inter-batch pauses instead of sleeping.
type recordingSleeper struct {
	mu     sync.Mutex
	pauses []time.Duration
}

func (r *recordingSleeper) sleep(d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pauses = append(r.pauses, d)
}

func testIndex(t *testing.T, n int) *library.Index {
	t.Helper()
	entries := make([]library.Entry, 0, n)
	for i := 1; i <= n; i++ {
		entries = append(entries, library.Entry{
			ID:     fmt.Sprintf("m%d", i),
			Title:  fmt.Sprintf("Movie %d", i),
			Year:   2000 + i,
			Genres: []string{"comedy"},
		})
	}
	idx, err := library.NewIndex(entries)
	if err != nil {
		t.Fatalf("NewIndex: %v", err)
	}
	return idx
}
