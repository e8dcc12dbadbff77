package adapter

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/MKhiriev/go-share-cache/internal/config"
	"github.com/MKhiriev/go-share-cache/internal/logger"
	"github.com/MKhiriev/go-share-cache/models"
)

const (
	minReconnectDelay = 500 * time.Millisecond
	maxReconnectDelay = 30 * time.Second
)

// SignalListener holds a websocket to the server's signal stream and hands
// every received signal to onSignal. It reconnects with exponential backoff.
//
// Signals sent while disconnected are lost. After a reconnect the listener
// reports a zones signal and an all-zones records signal so the receiver
// catches up.
type SignalListener struct {
	url      string
	onSignal func(models.Signal)

	minDelay time.Duration
	maxDelay time.Duration

	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

func NewSignalListener(cfg config.ClientAdapter, onSignal func(models.Signal), logger *logger.Logger) (*SignalListener, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, err
	}

	return &SignalListener{
		url:      signalsURL(baseURL),
		onSignal: onSignal,
		minDelay: minReconnectDelay,
		maxDelay: maxReconnectDelay,
		logger:   logger,
	}, nil
}

func signalsURL(baseURL string) string {
	switch {
	case strings.HasPrefix(baseURL, "https://"):
		baseURL = "wss://" + strings.TrimPrefix(baseURL, "https://")
	case strings.HasPrefix(baseURL, "http://"):
		baseURL = "ws://" + strings.TrimPrefix(baseURL, "http://")
	}
	return baseURL + "/api/signals"
}

func (l *SignalListener) Start(ctx context.Context) {
	ctx, l.cancel = context.WithCancel(ctx)

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		l.run(ctx)
	}()
}

func (l *SignalListener) Stop() {
	if l.cancel != nil {
		l.cancel()
	}
	l.wg.Wait()
}

func (l *SignalListener) run(ctx context.Context) {
	delay := l.minDelay
	connectedBefore := false

	for {
		connected, err := l.listen(ctx, connectedBefore)
		if ctx.Err() != nil {
			return
		}
		if connected {
			connectedBefore = true
			delay = l.minDelay
		}

		l.logger.Warn().Err(err).Dur("retry_in", delay).Msg("signal stream lost")

		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}

		delay = min(delay*2, l.maxDelay)
	}
}

// listen serves one connection until it fails. connected reports whether the
// dial succeeded.
func (l *SignalListener) listen(ctx context.Context, catchUp bool) (connected bool, err error) {
	conn, _, err := websocket.Dial(ctx, l.url, nil)
	if err != nil {
		return false, fmt.Errorf("dial %s: %w", l.url, err)
	}
	defer conn.CloseNow()

	l.logger.Info().Str("url", l.url).Msg("signal stream connected")

	if catchUp {
		l.onSignal(models.Signal{Kind: models.SignalZones})
		l.onSignal(models.Signal{Kind: models.SignalRecords})
	}

	for {
		var sig models.Signal
		if err = wsjson.Read(ctx, conn, &sig); err != nil {
			return true, fmt.Errorf("read signal: %w", err)
		}

		l.logger.Debug().Str("kind", string(sig.Kind)).Str("zone_id", string(sig.ZoneID)).Msg("signal received")
		l.onSignal(sig)
	}
}
