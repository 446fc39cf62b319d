package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"roomgate/internal/core/contracts"
	"roomgate/internal/core/domain"
	"roomgate/pkg/logging"
	"time"
)

// RoomWorker bridges one bus channel to the local registry.
type RoomWorker struct {
	log      *slog.Logger
	bus      contracts.Bus
	registry contracts.Registry
	timeout  time.Duration
}

func NewRoomWorker(
	log *slog.Logger,
	bus contracts.Bus,
	registry contracts.Registry,
	timeout time.Duration,
) *RoomWorker {
	return &RoomWorker{
		log:      log,
		bus:      bus,
		registry: registry,
		timeout:  timeout,
	}
}

var _ contracts.AsyncWorker = (*RoomWorker)(nil)

// Run subscribes the process to channel. The subscription is released by the
// registry when the last local client of the channel leaves.
func (w *RoomWorker) Run(ctx context.Context, channel string) error {
	sctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()
	if err := w.bus.Subscribe(sctx, channel, func(_ context.Context, ch string, raw []byte) error {
		// deliveries belong to the room lifetime, not to the bus callback
		return w.ProcessMessage(ctx, ch, raw)
	}); err != nil {
		return err
	}
	w.log.InfoContext(ctx, "worker - run - subscribe to channel success", logging.Channel(channel))
	return nil
}

func (w *RoomWorker) ProcessMessage(ctx context.Context, channel string, raw []byte) error {
	var msg domain.BusMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		w.log.ErrorContext(ctx, "worker - process message - wrong payload", logging.Channel(channel), logging.Err(err))
		return fmt.Errorf("%w: %v", domain.ErrInvalidBusEnvelope, err)
	}
	if msg.Kind != domain.BusChat {
		w.log.WarnContext(ctx, "worker - process message - unexpected kind", logging.Channel(channel), slog.String("kind", string(msg.Kind)))
		return fmt.Errorf("%w: kind %q", domain.ErrInvalidBusEnvelope, msg.Kind)
	}
	frame, err := domain.NewChatDeliveryFrame(domain.ChatDelivery{
		Room:         msg.Room,
		Type:         msg.Type,
		SenderUserID: msg.UserID,
		Messages:     []json.RawMessage{msg.Message},
	})
	if err != nil {
		return err
	}
	data, err := json.Marshal(frame)
	if err != nil {
		return err
	}
	n := w.registry.Deliver(ctx, channel, data)
	w.log.DebugContext(ctx, "worker - process message - delivered", logging.Channel(channel), slog.Int("clients", n))
	return nil
}
