// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gate

import (
	"fmt"
	"sync"
)

type writeJob struct {
	block func()
	then  func()
}

// Gate serializes writes and lets reads run concurrently between them.
type Gate struct {
	// rw guards the protected state itself.
	rw sync.RWMutex

	// qmu guards every field below.
	qmu       sync.Mutex
	cond      *sync.Cond
	queue     []writeJob
	submitted uint64
	completed uint64
	closed    bool

	done    chan struct{}
	onPanic func(error)
}

// Option customizes a Gate.
type Option func(*Gate)

// WithPanicHandler installs fn to receive panics recovered from write blocks.
// Without it the panic is swallowed and the writer moves on to the next job.
func WithPanicHandler(fn func(error)) Option {
	return func(g *Gate) {
		g.onPanic = fn
	}
}

// New creates a Gate and starts its writer goroutine. Call Close to stop it.
func New(opts ...Option) *Gate {
	g := &Gate{done: make(chan struct{})}
	g.cond = sync.NewCond(&g.qmu)
	for _, opt := range opts {
		opt(g)
	}

	go g.loop()

	return g
}

// PerformWrite enqueues block for exclusive execution and returns immediately.
// It reports false, without running block, once the gate is closed.
func (g *Gate) PerformWrite(block func()) bool {
	return g.PerformWriteThen(block, nil)
}

// PerformWriteThen enqueues block like PerformWrite. When block is done and
// its result is visible to readers, then runs on the writer goroutine before
// the next write starts. No write runs concurrently with then, so it may read
// the protected state directly; it must not call ReadAndWait or Wait.
// A closed gate rejects the write and PerformWriteThen reports false.
func (g *Gate) PerformWriteThen(block, then func()) bool {
	g.qmu.Lock()
	defer g.qmu.Unlock()

	if g.closed {
		return false
	}

	g.queue = append(g.queue, writeJob{block: block, then: then})
	g.submitted++
	g.cond.Broadcast()
	return true
}

// ReadAndWait waits for all writes submitted before the call, then runs fn
// under a shared lock and returns its result.
func ReadAndWait[T any](g *Gate, fn func() T) T {
	g.qmu.Lock()
	target := g.submitted
	for g.completed < target {
		g.cond.Wait()
	}
	g.qmu.Unlock()

	g.rw.RLock()
	defer g.rw.RUnlock()

	return fn()
}

// Wait blocks until every write submitted before the call has completed.
func (g *Gate) Wait() {
	ReadAndWait(g, func() struct{} { return struct{}{} })
}

// Close rejects new writes, drains the queue and stops the writer goroutine.
// It is safe to call more than once.
func (g *Gate) Close() {
	g.qmu.Lock()
	if !g.closed {
		g.closed = true
		g.cond.Broadcast()
	}
	g.qmu.Unlock()

	<-g.done
}

func (g *Gate) loop() {
	defer close(g.done)

	for {
		g.qmu.Lock()
		for len(g.queue) == 0 && !g.closed {
			g.cond.Wait()
		}
		if len(g.queue) == 0 {
			g.qmu.Unlock()
			return
		}
		job := g.queue[0]
		g.queue[0] = writeJob{}
		g.queue = g.queue[1:]
		g.qmu.Unlock()

		g.rw.Lock()
		g.runSafely("write", job.block)
		g.rw.Unlock()

		g.qmu.Lock()
		g.completed++
		g.cond.Broadcast()
		g.qmu.Unlock()

		if job.then != nil {
			g.runSafely("after write", job.then)
		}
	}
}

func (g *Gate) runSafely(scope string, fn func()) {
	defer func() {
		recovered := recover()
		if recovered == nil {
			return
		}
		if g.onPanic != nil {
			g.onPanic(fmt.Errorf("gate %s: panic recovered: %v", scope, recovered))
		}
	}()

	fn()
}
