package app

import (
	"sync"
	"time"
)

const DefaultDebounce = 250 * time.Millisecond

// Debouncer collapses bursts of triggers into a single run: each Trigger
// cancels the pending run and reschedules, so at most one run is pending and
// only the most recent fn executes.
type Debouncer struct {
	d  time.Duration
	mu sync.Mutex
	t  *time.Timer
}

func NewDebouncer(d time.Duration) *Debouncer {
	if d <= 0 {
		d = DefaultDebounce
	}
	return &Debouncer{d: d}
}

func (b *Debouncer) Trigger(fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.t != nil {
		b.t.Stop()
	}
	b.t = time.AfterFunc(b.d, fn)
}

// Stop cancels any pending run.
func (b *Debouncer) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.t != nil {
		b.t.Stop()
		b.t = nil
	}
}
