package http

import (
	"context"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/MKhiriev/go-share-cache/internal/logger"
	"github.com/MKhiriev/go-share-cache/internal/notify"
	"github.com/MKhiriev/go-share-cache/models"
)

const (
	signalWriteTimeout = 5 * time.Second
	signalBuffer       = 32
)

// signals streams change signals to one websocket client. A client that
// cannot keep up loses signals rather than slowing down the others; the
// periodic sync of the client covers the gap.
func (h *Handler) signals(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		log.Err(err).Str("func", "*Handler.signals").Msg("websocket upgrade failed")
		return
	}
	defer conn.CloseNow()

	// the client never sends; CloseRead notices when it goes away
	ctx := conn.CloseRead(r.Context())

	sub, err := h.services.Signals.Subscribe(notify.SubscriptionSpec{
		Name:         "signals " + r.RemoteAddr,
		Buffer:       signalBuffer,
		Backpressure: notify.BackpressureDropNewest,
	}, func(_ context.Context, sig models.Signal) error {
		writeCtx, cancel := context.WithTimeout(ctx, signalWriteTimeout)
		defer cancel()
		return wsjson.Write(writeCtx, conn, sig)
	})
	if err != nil {
		log.Err(err).Str("func", "*Handler.signals").Msg("signal subscription failed")
		conn.Close(websocket.StatusTryAgainLater, "signals unavailable")
		return
	}
	defer sub.Close()

	log.Debug().Msg("signal stream opened")

	select {
	case <-ctx.Done():
		log.Debug().Msg("signal stream closed by client")
	case <-h.closing:
		conn.Close(websocket.StatusGoingAway, "server shutting down")
	}
}
