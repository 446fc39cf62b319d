package redis

import (
	"context"
	"log/slog"
	"roomgate/internal/core/contracts"
	"roomgate/pkg/logging"
	"sync"

	"github.com/redis/go-redis/v9"
)

// RedisBus carries room traffic over Redis PUBLISH/SUBSCRIBE. One PubSub
// connection serves every channel of the process.
type RedisBus struct {
	rdb      *redis.Client
	ps       *redis.PubSub
	log      *slog.Logger
	mu       sync.RWMutex
	handlers map[string]contracts.BusHandler
	done     chan struct{}
	once     sync.Once
}

var _ contracts.Bus = (*RedisBus)(nil)

func NewRedisBus(ctx context.Context, log *slog.Logger, rdb *redis.Client) *RedisBus {
	b := &RedisBus{
		rdb:      rdb,
		ps:       rdb.Subscribe(ctx),
		log:      log,
		handlers: make(map[string]contracts.BusHandler),
		done:     make(chan struct{}),
	}
	go b.receive(context.WithoutCancel(ctx))
	return b
}

func (b *RedisBus) receive(ctx context.Context) {
	defer close(b.done)
	for msg := range b.ps.Channel() {
		b.mu.RLock()
		handler := b.handlers[msg.Channel]
		b.mu.RUnlock()
		if handler == nil {
			continue
		}
		if err := handler(ctx, msg.Channel, []byte(msg.Payload)); err != nil {
			b.log.ErrorContext(ctx, "redis bus - receive - handler failed", logging.Channel(msg.Channel), logging.Err(err))
		}
	}
}

func (b *RedisBus) Publish(ctx context.Context, channel string, payload []byte) error {
	return b.rdb.Publish(ctx, channel, payload).Err()
}

func (b *RedisBus) Subscribe(ctx context.Context, channel string, handler contracts.BusHandler) error {
	b.mu.Lock()
	b.handlers[channel] = handler
	b.mu.Unlock()
	if err := b.ps.Subscribe(ctx, channel); err != nil {
		b.mu.Lock()
		delete(b.handlers, channel)
		b.mu.Unlock()
		return err
	}
	return nil
}

func (b *RedisBus) Unsubscribe(ctx context.Context, channel string) error {
	b.mu.Lock()
	delete(b.handlers, channel)
	b.mu.Unlock()
	return b.ps.Unsubscribe(ctx, channel)
}

func (b *RedisBus) Close() error {
	var err error
	b.once.Do(func() {
		err = b.ps.Close()
		<-b.done
	})
	return err
}
