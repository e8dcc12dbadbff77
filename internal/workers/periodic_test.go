package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-share-cache/internal/logger"
)

func TestPeriodic_CallsOnEveryTick(t *testing.T) {
	var calls atomic.Int64
	p := NewPeriodic("test", 10*time.Millisecond, func(context.Context) error {
		calls.Add(1)
		return errors.New("logged, not fatal")
	}, logger.Nop())

	p.Start(context.Background())
	time.Sleep(55 * time.Millisecond)
	p.Stop()

	assert.GreaterOrEqual(t, calls.Load(), int64(3))
}

func TestPeriodic_StopHaltsCalls(t *testing.T) {
	var calls atomic.Int64
	p := NewPeriodic("test", 10*time.Millisecond, func(context.Context) error {
		calls.Add(1)
		return nil
	}, logger.Nop())

	p.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	p.Stop()

	after := calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, calls.Load())
}

func TestPeriodic_ContextCancelStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := NewPeriodic("test", time.Millisecond, func(context.Context) error { return nil }, logger.Nop())

	p.Start(ctx)
	cancel()
	p.Stop()
}

func TestPeriodic_RestartAndDoubleStop(t *testing.T) {
	p := NewPeriodic("test", 0, func(context.Context) error { return nil }, logger.Nop())
	assert.Equal(t, 5*time.Minute, p.interval)

	assert.NotPanics(t, func() {
		p.Stop()
		p.Start(context.Background())
		p.Start(context.Background())
		p.Stop()
		p.Stop()
	})
}
