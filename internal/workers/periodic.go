// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-share-cache/internal/logger"
)

// Periodic calls fn on a ticker until stopped.
type Periodic struct {
	name     string
	interval time.Duration
	fn       func(ctx context.Context) error
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewPeriodic creates an idle periodic worker. A non-positive interval
// defaults to 5 minutes.
func NewPeriodic(name string, interval time.Duration, fn func(ctx context.Context) error, log *logger.Logger) *Periodic {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &Periodic{name: name, interval: interval, fn: fn, logger: log}
}

// Start implements Worker. A running loop is stopped first.
func (p *Periodic) Start(ctx context.Context) {
	p.Stop()

	p.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		t := time.NewTicker(p.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := p.fn(jobCtx); err != nil {
					p.logger.Err(err).Str("worker", p.name).Msg("periodic run failed")
				}
			}
		}
	}()
}

// Stop implements Worker. It is a no-op when the loop is not running.
func (p *Periodic) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}
