//go:generate go run go.uber.org/mock/mockgen -source=bus.go -destination=../../mocks/mock_bus.go -package=mocks
package contracts

import (
	"context"
	"roomgate/internal/core/domain"
)

// BusHandler receives every payload published on a subscribed channel.
type BusHandler func(ctx context.Context, channel string, payload []byte) error

// Bus is the process-external fan-out transport shared by gateway instances.
type Bus interface {
	// Publish sends payload to every process subscribed to channel.
	Publish(ctx context.Context, channel string, payload []byte) error
	// Subscribe routes payloads published on channel to handler until Unsubscribe.
	Subscribe(ctx context.Context, channel string, handler BusHandler) error
	// Unsubscribe stops this process from receiving channel.
	Unsubscribe(ctx context.Context, channel string) error
	Close() error
}

// SubscriptionLedger is the downstream bookkeeping of room subscriptions.
// It is informational: local delivery never depends on it.
type SubscriptionLedger interface {
	// Record appends a subscribe event and marks the connection as a room subscriber.
	Record(ctx context.Context, evt domain.SubscriptionEvent) error
	// Release appends an unsubscribe event and clears the connection from the room.
	Release(ctx context.Context, evt domain.SubscriptionEvent) error
	// Subscribers lists the connection ids currently recorded for a room channel.
	Subscribers(ctx context.Context, channel string) ([]string, error)
}
