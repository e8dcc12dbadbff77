// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"
)

// DefaultDebounceInterval is the coalescing window used when none is set.
const DefaultDebounceInterval = 500 * time.Millisecond

// Debouncer coalesces bursts of signals into single runs of fn.
//
// The first Signal schedules fn after the interval; signals arriving while a
// run is scheduled are absorbed, so fn runs at most once per window. Signals
// arriving while fn runs schedule the next window. Runs never overlap.
type Debouncer struct {
	interval time.Duration
	fn       func(ctx context.Context)

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	timer   *time.Timer
	pending bool
	stopped bool
	wg      sync.WaitGroup

	runMu sync.Mutex
}

// NewDebouncer returns a Debouncer that runs fn. A non-positive interval
// falls back to DefaultDebounceInterval.
func NewDebouncer(interval time.Duration, fn func(ctx context.Context)) *Debouncer {
	if interval <= 0 {
		interval = DefaultDebounceInterval
	}
	ctx, cancel := context.WithCancel(context.Background())

	return &Debouncer{
		interval: interval,
		fn:       fn,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Signal requests a run. It never blocks.
func (d *Debouncer) Signal() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped || d.pending {
		return
	}

	d.pending = true
	d.wg.Add(1)
	d.timer = time.AfterFunc(d.interval, d.fire)
}

func (d *Debouncer) fire() {
	defer d.wg.Done()

	d.mu.Lock()
	d.pending = false
	d.mu.Unlock()

	d.runMu.Lock()
	defer d.runMu.Unlock()

	if d.ctx.Err() != nil {
		return
	}
	d.fn(d.ctx)
}

// Stop cancels a scheduled run, cancels the context of a running one and
// waits for it to return. Later signals are ignored.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	d.stopped = true
	if d.timer != nil && d.pending && d.timer.Stop() {
		d.pending = false
		d.wg.Done()
	}
	d.mu.Unlock()

	d.cancel()
	d.wg.Wait()
}
