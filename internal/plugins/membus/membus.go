// Package membus is an in-process bus. A Network stands for the shared broker
// and every Bus obtained from it behaves like one gateway process.
package membus

import (
	"context"
	"errors"
	"roomgate/internal/core/contracts"
	"sync"
)

var ErrClosed = errors.New("membus: bus closed")

type Network struct {
	mu    sync.RWMutex
	nodes map[*Bus]struct{}
}

func NewNetwork() *Network {
	return &Network{nodes: make(map[*Bus]struct{})}
}

// Connect attaches a new process-level bus to the network.
func (n *Network) Connect() *Bus {
	b := &Bus{network: n, handlers: make(map[string]contracts.BusHandler)}
	n.mu.Lock()
	n.nodes[b] = struct{}{}
	n.mu.Unlock()
	return b
}

type Bus struct {
	network  *Network
	mu       sync.RWMutex
	handlers map[string]contracts.BusHandler
	closed   bool
}

var _ contracts.Bus = (*Bus)(nil)

// Publish hands payload to every subscribed node synchronously, in node
// iteration order. Handler errors are not the publisher's concern.
func (b *Bus) Publish(ctx context.Context, channel string, payload []byte) error {
	b.mu.RLock()
	closed := b.closed
	b.mu.RUnlock()
	if closed {
		return ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	b.network.mu.RLock()
	nodes := make([]*Bus, 0, len(b.network.nodes))
	for node := range b.network.nodes {
		nodes = append(nodes, node)
	}
	b.network.mu.RUnlock()
	for _, node := range nodes {
		if h := node.handler(channel); h != nil {
			_ = h(ctx, channel, append([]byte(nil), payload...))
		}
	}
	return nil
}

func (b *Bus) handler(channel string) contracts.BusHandler {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return nil
	}
	return b.handlers[channel]
}

func (b *Bus) Subscribe(ctx context.Context, channel string, handler contracts.BusHandler) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrClosed
	}
	b.handlers[channel] = handler
	return nil
}

func (b *Bus) Unsubscribe(ctx context.Context, channel string) error {
	b.mu.Lock()
	delete(b.handlers, channel)
	b.mu.Unlock()
	return nil
}

// Channels lists the channels this node currently receives.
func (b *Bus) Channels() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]string, 0, len(b.handlers))
	for ch := range b.handlers {
		out = append(out, ch)
	}
	return out
}

func (b *Bus) Close() error {
	b.mu.Lock()
	b.closed = true
	b.handlers = make(map[string]contracts.BusHandler)
	b.mu.Unlock()
	b.network.mu.Lock()
	delete(b.network.nodes, b)
	b.network.mu.Unlock()
	return nil
}
