// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package notify implements typed, ordered fan-out of cache notifications.
//
// Every subscription owns a bounded queue and a single worker goroutine, so a
// subscriber sees events in publish order and one slow subscriber does not
// delay the others beyond its own queue.
package notify

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-share-cache/internal/logger"
)

// Backpressure decides what Publish does when a subscriber queue is full.
type Backpressure string

const (
	// BackpressureBlock waits for queue space or for the publish context.
	BackpressureBlock Backpressure = "block"

	// BackpressureDropNewest discards the incoming event.
	BackpressureDropNewest Backpressure = "drop_newest"
)

const defaultBuffer = 64

// SubscriptionSpec configures one subscriber.
type SubscriptionSpec struct {
	Name         string
	Buffer       int
	Backpressure Backpressure
}

// Handler consumes one event. Errors are logged and do not stop delivery.
type Handler[T any] func(ctx context.Context, event T) error

// Bus is an asynchronous publisher of events of type T.
type Bus[T any] struct {
	mu            sync.RWMutex
	nextID        int64
	closed        bool
	subscriptions map[int64]*subscription[T]
	logger        *logger.Logger
}

// NewBus creates an empty bus.
func NewBus[T any](log *logger.Logger) *Bus[T] {
	return &Bus[T]{
		subscriptions: make(map[int64]*subscription[T]),
		logger:        log,
	}
}

// Publish hands event to every current subscriber.
func (b *Bus[T]) Publish(ctx context.Context, event T) error {
	subs, err := b.snapshotSubscriptions()
	if err != nil {
		return fmt.Errorf("publish: %w", err)
	}

	var publishErrs []error
	for _, sub := range subs {
		if err := sub.enqueue(ctx, event); err != nil {
			if errors.Is(err, ErrEventDropped) || errors.Is(err, ErrSubscriptionClosed) {
				b.logger.Warn().Err(err).Str("subscription", sub.spec.Name).Msg("event not delivered")
				continue
			}
			publishErrs = append(publishErrs, err)
		}
	}

	if len(publishErrs) > 0 {
		return fmt.Errorf("publish: %w", errors.Join(publishErrs...))
	}

	return nil
}

// Subscribe registers handler. The returned Subscription must be closed to
// release its worker.
func (b *Bus[T]) Subscribe(spec SubscriptionSpec, handler Handler[T]) (*Subscription[T], error) {
	if handler == nil {
		return nil, fmt.Errorf("subscribe %s: %w", spec.Name, ErrNilHandler)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, fmt.Errorf("subscribe %s: %w", spec.Name, ErrBusClosed)
	}

	b.nextID++
	id := b.nextID
	if spec.Name == "" {
		spec.Name = fmt.Sprintf("subscription-%d", id)
	}
	if spec.Buffer <= 0 {
		spec.Buffer = defaultBuffer
	}
	if spec.Backpressure == "" {
		spec.Backpressure = BackpressureBlock
	}

	sub := newSubscription(id, spec, handler, b.logger)
	b.subscriptions[id] = sub

	return &Subscription[T]{bus: b, id: id}, nil
}

// Close stops every subscription after its queued events were delivered.
// Further publishes and subscribes fail with ErrBusClosed.
func (b *Bus[T]) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	subs := make([]*subscription[T], 0, len(b.subscriptions))
	for _, sub := range b.subscriptions {
		subs = append(subs, sub)
	}
	b.subscriptions = make(map[int64]*subscription[T])
	b.mu.Unlock()

	for _, sub := range subs {
		sub.shutdown()
	}
}

func (b *Bus[T]) snapshotSubscriptions() ([]*subscription[T], error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return nil, ErrBusClosed
	}

	subs := make([]*subscription[T], 0, len(b.subscriptions))
	for _, sub := range b.subscriptions {
		subs = append(subs, sub)
	}

	return subs, nil
}

func (b *Bus[T]) unsubscribe(id int64) {
	b.mu.Lock()
	sub, found := b.subscriptions[id]
	if found {
		delete(b.subscriptions, id)
	}
	b.mu.Unlock()

	if found {
		sub.shutdown()
	}
}

// Subscription is a handle returned by Subscribe.
type Subscription[T any] struct {
	bus  *Bus[T]
	id   int64
	once sync.Once
}

// Close unregisters the subscriber and waits for its worker to exit.
func (s *Subscription[T]) Close() {
	s.once.Do(func() {
		s.bus.unsubscribe(s.id)
	})
}

type subscription[T any] struct {
	id      int64
	spec    SubscriptionSpec
	handler Handler[T]
	queue   chan T
	ctx     context.Context
	cancel  context.CancelFunc
	stop    chan struct{}
	done    chan struct{}
	closed  atomic.Bool
	once    sync.Once
	logger  *logger.Logger
}

func newSubscription[T any](id int64, spec SubscriptionSpec, handler Handler[T], log *logger.Logger) *subscription[T] {
	ctx, cancel := context.WithCancel(context.Background())
	sub := &subscription[T]{
		id:      id,
		spec:    spec,
		handler: handler,
		queue:   make(chan T, spec.Buffer),
		ctx:     ctx,
		cancel:  cancel,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
		logger:  log,
	}

	go sub.run()

	return sub
}

func (s *subscription[T]) enqueue(ctx context.Context, event T) error {
	if s.closed.Load() {
		return fmt.Errorf("enqueue %s: %w", s.spec.Name, ErrSubscriptionClosed)
	}

	if s.spec.Backpressure == BackpressureDropNewest {
		select {
		case s.queue <- event:
			return nil
		default:
			return fmt.Errorf("enqueue %s: %w", s.spec.Name, ErrEventDropped)
		}
	}

	select {
	case s.queue <- event:
		return nil
	case <-s.stop:
		return fmt.Errorf("enqueue %s: %w", s.spec.Name, ErrSubscriptionClosed)
	case <-ctx.Done():
		return fmt.Errorf("enqueue %s: %w", s.spec.Name, ctx.Err())
	}
}

// run delivers queued events one by one until shutdown, then drains what is
// left in the queue.
func (s *subscription[T]) run() {
	defer close(s.done)

	for {
		select {
		case event := <-s.queue:
			s.deliver(event)
		case <-s.stop:
			for {
				select {
				case event := <-s.queue:
					s.deliver(event)
				default:
					return
				}
			}
		}
	}
}

func (s *subscription[T]) deliver(event T) {
	defer func() {
		if recovered := recover(); recovered != nil {
			s.logger.Error().
				Str("subscription", s.spec.Name).
				Interface("panic", recovered).
				Msg("handler panic recovered")
		}
	}()

	if err := s.handler(s.ctx, event); err != nil {
		s.logger.Err(err).Str("subscription", s.spec.Name).Msg("handler failed")
	}
}

func (s *subscription[T]) shutdown() {
	s.once.Do(func() {
		s.closed.Store(true)
		close(s.stop)
	})
	<-s.done
	s.cancel()
}
