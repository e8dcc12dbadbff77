// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gate

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestGate_ReadSeesPriorWrites(t *testing.T) {
	g := New()
	defer g.Close()

	var values []int
	for i := 1; i <= 100; i++ {
		g.PerformWrite(func() {
			values = append(values, i)
		})
	}

	got := ReadAndWait(g, func() []int {
		return append([]int(nil), values...)
	})

	require.Len(t, got, 100)
	for i, v := range got {
		assert.Equal(t, i+1, v, "writes must run in submission order")
	}
}

func TestGate_PerformWriteDoesNotBlock(t *testing.T) {
	g := New()
	defer g.Close()

	release := make(chan struct{})
	g.PerformWrite(func() { <-release })

	returned := make(chan struct{})
	go func() {
		g.PerformWrite(func() {})
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("PerformWrite blocked behind a running write")
	}
	close(release)
	g.Wait()
}

func TestGate_ReaderWaitsForPendingWrite(t *testing.T) {
	g := New()
	defer g.Close()

	release := make(chan struct{})
	var value atomic.Int64
	g.PerformWrite(func() {
		<-release
		value.Store(42)
	})

	result := make(chan int64, 1)
	go func() {
		result <- ReadAndWait(g, func() int64 { return value.Load() })
	}()

	select {
	case <-result:
		t.Fatal("reader returned before the pending write completed")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	assert.Equal(t, int64(42), <-result)
}

func TestGate_ConcurrentReaders(t *testing.T) {
	g := New()
	defer g.Close()

	counter := 0
	g.PerformWrite(func() { counter = 10 })

	var wg sync.WaitGroup
	results := make([]int, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = ReadAndWait(g, func() int { return counter })
		}()
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, 10, r)
	}
}

func TestGate_ThenRunsBeforeNextWrite(t *testing.T) {
	g := New()
	defer g.Close()

	var mu sync.Mutex
	var trace []string
	record := func(s string) {
		mu.Lock()
		trace = append(trace, s)
		mu.Unlock()
	}

	g.PerformWriteThen(func() { record("w1") }, func() { record("then1") })
	g.PerformWrite(func() { record("w2") })
	g.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"w1", "then1", "w2"}, trace)
}

func TestGate_ThenSeesCommittedState(t *testing.T) {
	g := New()
	defer g.Close()

	state := 0
	seen := make(chan int, 1)
	g.PerformWriteThen(func() { state = 7 }, func() { seen <- state })

	assert.Equal(t, 7, <-seen)
}

func TestGate_PanicInWriteIsRecovered(t *testing.T) {
	var reported atomic.Int32
	g := New(WithPanicHandler(func(err error) {
		assert.ErrorContains(t, err, "boom")
		reported.Add(1)
	}))
	defer g.Close()

	g.PerformWrite(func() { panic("boom") })
	ok := false
	g.PerformWrite(func() { ok = true })

	assert.True(t, ReadAndWait(g, func() bool { return ok }))
	assert.Equal(t, int32(1), reported.Load())
}

func TestGate_CloseDrainsQueue(t *testing.T) {
	g := New()

	var count atomic.Int32
	for range 50 {
		assert.True(t, g.PerformWrite(func() { count.Add(1) }))
	}
	g.Close()

	assert.Equal(t, int32(50), count.Load())

	// writes after Close are rejected
	assert.False(t, g.PerformWrite(func() { count.Add(1) }))
	assert.False(t, g.PerformWriteThen(func() { count.Add(1) }, func() { count.Add(1) }))
	assert.Equal(t, int32(50), count.Load())

	g.Close()
}
