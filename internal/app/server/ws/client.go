package ws

import (
	"context"
	"log/slog"
	"roomgate/internal/core/domain"
	"roomgate/pkg/logging"
	"sync"
)

// RuntimeClient owns the write side of one socket. Writes are queued and
// flushed by a single goroutine; a full queue drops the frame.
type RuntimeClient struct {
	ctx    context.Context
	cancel context.CancelFunc
	ws     *WebSocket
	log    *slog.Logger
	mu     sync.RWMutex
	out    chan []byte
	closed bool
	once   sync.Once
	done   chan struct{}
}

func NewClient(parent context.Context, log *slog.Logger, ws *WebSocket, buffer int) *RuntimeClient {
	ctx, cancel := context.WithCancel(parent)
	c := &RuntimeClient{
		ctx:    ctx,
		cancel: cancel,
		ws:     ws,
		log:    log,
		out:    make(chan []byte, buffer),
		done:   make(chan struct{}),
	}
	go c.writeLoop()
	return c
}

func (c *RuntimeClient) Send(_ context.Context, data []byte) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return domain.ErrSessionClosed
	}
	select {
	case c.out <- data:
		return nil
	default:
		return domain.ErrSendBufferFull
	}
}

func (c *RuntimeClient) Close() {
	c.once.Do(func() {
		c.mu.Lock()
		c.closed = true
		close(c.out)
		c.mu.Unlock()
		c.cancel()
		c.ws.Close()
	})
}

// Done is closed once the write loop has exited.
func (c *RuntimeClient) Done() <-chan struct{} { return c.done }

func (c *RuntimeClient) writeLoop() {
	defer close(c.done)
	defer c.Close()
	for {
		select {
		case <-c.ctx.Done():
			return
		case data, ok := <-c.out:
			if !ok {
				return
			}
			if err := c.ws.WriteMessage(data); err != nil {
				c.log.WarnContext(c.ctx, "ws - write loop - write failed", logging.Err(err))
				return
			}
		}
	}
}
