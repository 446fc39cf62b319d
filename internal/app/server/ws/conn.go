package ws

import (
	"context"
	"log/slog"
	"roomgate/pkg/logging"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

type WebSocket struct {
	*websocket.Conn
	ctx          context.Context
	cancel       context.CancelFunc
	writeTimeout time.Duration
	readLimit    int64
	once         sync.Once
}

func NewWebSocket(parent context.Context, conn *websocket.Conn, readLimit int64, writeTimeout time.Duration) *WebSocket {
	ctx, cancel := context.WithCancel(parent)
	return &WebSocket{
		Conn:         conn,
		ctx:          ctx,
		cancel:       cancel,
		writeTimeout: writeTimeout,
		readLimit:    readLimit,
	}
}

func (w *WebSocket) Context() context.Context { return w.ctx }

func (w *WebSocket) WriteMessage(data []byte) error {
	_ = w.Conn.SetWriteDeadline(time.Now().Add(w.writeTimeout))
	return w.Conn.WriteMessage(websocket.TextMessage, data)
}

// ReadLoop hands every inbound message to onMsg on the calling goroutine, so
// frames of one connection are processed in arrival order.
func (w *WebSocket) ReadLoop(log *slog.Logger, onMsg func([]byte)) {
	defer w.Close()
	w.Conn.SetReadLimit(w.readLimit)

	for {
		_, data, err := w.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseNoStatusReceived) {
				log.WarnContext(w.ctx, "ws - read loop - unexpected close", logging.Err(err))
			}
			return
		}
		if len(data) > 0 {
			onMsg(data)
		}
	}
}

func (w *WebSocket) Close() {
	w.once.Do(func() {
		w.cancel()
		_ = w.Conn.Close()
	})
}
