package v1handler

import (
	"govconnect/pkg/logger"
	"net/http"
	"slices"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	// writeWait bounds a single write to the peer.
	writeWait = 10 * time.Second
	// pongWait is how long the peer may stay silent.
	pongWait = 60 * time.Second
	// pingPeriod must be shorter than pongWait.
	pingPeriod = (pongWait * 9) / 10
	// maxMessageSize bounds inbound frames; clients only send control frames.
	maxMessageSize = 512
)

// AllowOrigins accepts WebSocket handshakes from the given origins. An empty
// list or "*" accepts any origin; requests without an Origin header are not
// from a browser and are accepted.
func AllowOrigins(origins []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || len(origins) == 0 || slices.Contains(origins, "*") {
			return true
		}

		return slices.Contains(origins, origin)
	}
}

// SignalStream upgrades the connection and streams navigation and
// notification signals as JSON text frames until either side goes away.
func (h *Handler) SignalStream(checkOrigin func(r *http.Request) bool) http.HandlerFunc {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     checkOrigin,
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			// the upgrader has already replied
			logger.Warn(ctx, "could not upgrade signal stream", zap.Error(err))

			return
		}
		defer conn.Close()

		signals, unsubscribe := h.deps.Signals.Subscribe()
		defer unsubscribe()

		logger.Debug(ctx, "signal stream opened")
		defer logger.Debug(ctx, "signal stream closed")

		gone := make(chan struct{})
		go readPump(conn, gone)

		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()

		for {
			select {
			case s, ok := <-signals:
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				if !ok {
					_ = conn.WriteMessage(websocket.CloseMessage, []byte{})

					return
				}
				if err := conn.WriteJSON(s); err != nil {
					logger.Debug(ctx, "could not write signal", zap.Error(err))

					return
				}
			case <-ticker.C:
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			case <-gone:
				return
			}
		}
	}
}

// readPump drains the peer so control frames are processed, and closes gone
// once the connection fails.
func readPump(conn *websocket.Conn, gone chan<- struct{}) {
	defer close(gone)

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
