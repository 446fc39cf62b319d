//go:generate go run go.uber.org/mock/mockgen -source=registry.go -destination=../../mocks/mock_registry.go -package=mocks
package contracts

import (
	"context"
	"encoding/json"
	"roomgate/internal/core/domain"
)

// Broker is the fan-out surface a session talks to.
type Broker interface {
	// Subscribe idempotently adds the client to the local set of channel.
	Subscribe(ctx context.Context, c Client, channel string) error
	// Unsubscribe removes the client from the local set of channel.
	Unsubscribe(ctx context.Context, c Client, channel string)
	// PostSubscribe emits the bookkeeping event of a new subscription.
	PostSubscribe(ctx context.Context, connectionID string, roomType domain.RoomType, room string, authContext any)
	// PostUnsubscribe mirrors PostSubscribe for teardown.
	PostUnsubscribe(ctx context.Context, connectionID string, roomType domain.RoomType, room string)
	// AddChatMessage publishes one chat message on the room channel.
	AddChatMessage(ctx context.Context, connectionID, userID, room string, roomType domain.RoomType, message json.RawMessage) error
	// UserLeft removes the connection from every local channel set.
	UserLeft(ctx context.Context, connectionID string)
}

// Registry is the delivery side: bus consumers hand payloads back to it.
type Registry interface {
	// Deliver writes data to every local client of channel.
	Deliver(ctx context.Context, channel string, data []byte) int
}

// Client represents the minimal interface required for the broker to
// communicate with an individual connection.
type Client interface {
	ConnectionID() string
	UserID() string
	Send(ctx context.Context, data []byte) error
}
