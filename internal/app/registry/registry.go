package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"roomgate/internal/core/contracts"
	"roomgate/internal/core/domain"
	"roomgate/pkg/logging"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("fanout-broker")

// Registry is the process-wide fan-out broker. It keeps, per channel, the set
// of locally connected clients and holds this process's bus subscription for
// that channel while the set is non-empty.
type Registry struct {
	mu         sync.Mutex
	rooms      map[string]*room
	byClient   map[string]map[string]struct{} // connection_id → channels
	bus        contracts.Bus
	ledger     contracts.SubscriptionLedger
	run_worker func(ctx context.Context, channel string) error
	timeout    time.Duration
	log        *slog.Logger
}

var (
	_ contracts.Broker   = (*Registry)(nil)
	_ contracts.Registry = (*Registry)(nil)
)

// room serializes membership changes of one channel.
type room struct {
	mu      sync.RWMutex
	channel string
	clients map[string]contracts.Client
	stop    context.CancelFunc
	closed  bool
}

func NewRegistry(
	log *slog.Logger,
	bus contracts.Bus,
	ledger contracts.SubscriptionLedger,
	timeout time.Duration,
) *Registry {
	return &Registry{
		rooms:    make(map[string]*room),
		byClient: make(map[string]map[string]struct{}),
		bus:      bus,
		ledger:   ledger,
		timeout:  timeout,
		log:      log,
	}
}

func (h *Registry) RunWorker(run_worker func(ctx context.Context, channel string) error) {
	h.run_worker = run_worker
}

func (h *Registry) room(channel string) *room {
	h.mu.Lock()
	defer h.mu.Unlock()
	r, ok := h.rooms[channel]
	if !ok {
		r = &room{channel: channel, clients: make(map[string]contracts.Client)}
		h.rooms[channel] = r
	}
	return r
}

func (h *Registry) Subscribe(ctx context.Context, c contracts.Client, channel string) error {
	id := c.ConnectionID()
	for {
		r := h.room(channel)
		r.mu.Lock()
		if r.closed {
			// lost the race against the last leaver, take the fresh room
			r.mu.Unlock()
			continue
		}
		if _, ok := r.clients[id]; ok {
			r.mu.Unlock()
			return nil
		}
		var err error
		if r.stop == nil {
			err = h.startWorker(ctx, r)
		}
		r.clients[id] = c
		h.mu.Lock()
		if h.byClient[id] == nil {
			h.byClient[id] = make(map[string]struct{})
		}
		h.byClient[id][channel] = struct{}{}
		h.mu.Unlock()
		r.mu.Unlock()
		h.log.DebugContext(ctx, "registry - subscribe - client registered", logging.Connection(id), logging.Channel(channel))
		return err
	}
}

// startWorker must be called with r.mu held.
func (h *Registry) startWorker(ctx context.Context, r *room) error {
	if h.run_worker == nil {
		return nil
	}
	wctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	if err := h.run_worker(wctx, r.channel); err != nil {
		cancel()
		h.log.ErrorContext(ctx, "registry - subscribe - bus subscribe failed", logging.Channel(r.channel), logging.Err(err))
		return fmt.Errorf("%w: subscribe %s: %v", domain.ErrBusUnavailable, r.channel, err)
	}
	r.stop = cancel
	h.log.InfoContext(ctx, "registry - subscribe - bus subscribe success", logging.Channel(r.channel))
	return nil
}

// ensureWorker retries the bus subscription of a room whose local members
// are registered but whose first subscribe attempt failed.
func (h *Registry) ensureWorker(ctx context.Context, channel string) {
	h.mu.Lock()
	r := h.rooms[channel]
	h.mu.Unlock()
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed || r.stop != nil || len(r.clients) == 0 {
		return
	}
	_ = h.startWorker(ctx, r)
}

func (h *Registry) Unsubscribe(ctx context.Context, c contracts.Client, channel string) {
	id := c.ConnectionID()
	h.mu.Lock()
	r := h.rooms[channel]
	h.mu.Unlock()
	if r == nil {
		return
	}
	h.leave(ctx, r, id)
}

func (h *Registry) UserLeft(ctx context.Context, connectionID string) {
	h.mu.Lock()
	channels := h.byClient[connectionID]
	delete(h.byClient, connectionID)
	rooms := make([]*room, 0, len(channels))
	for channel := range channels {
		if r := h.rooms[channel]; r != nil {
			rooms = append(rooms, r)
		}
	}
	h.mu.Unlock()
	for _, r := range rooms {
		h.leave(ctx, r, connectionID)
	}
	h.log.InfoContext(ctx, "registry - user left - client removed", logging.Connection(connectionID), slog.Int("channels", len(rooms)))
}

func (h *Registry) leave(ctx context.Context, r *room, id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	if _, ok := r.clients[id]; !ok {
		return
	}
	delete(r.clients, id)
	h.mu.Lock()
	if set := h.byClient[id]; set != nil {
		delete(set, r.channel)
		if len(set) == 0 {
			delete(h.byClient, id)
		}
	}
	h.mu.Unlock()
	if len(r.clients) > 0 {
		return
	}
	// last local client: release the bus channel before the room disappears
	r.closed = true
	if r.stop != nil {
		r.stop()
		r.stop = nil
		uctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), h.timeout)
		if err := h.bus.Unsubscribe(uctx, r.channel); err != nil {
			h.log.ErrorContext(ctx, "registry - leave - bus unsubscribe failed", logging.Channel(r.channel), logging.Err(err))
		}
		cancel()
	}
	h.mu.Lock()
	if h.rooms[r.channel] == r {
		delete(h.rooms, r.channel)
	}
	h.mu.Unlock()
}

func (h *Registry) Deliver(ctx context.Context, channel string, data []byte) int {
	h.mu.Lock()
	r := h.rooms[channel]
	h.mu.Unlock()
	if r == nil {
		return 0
	}
	r.mu.RLock()
	clients := make([]contracts.Client, 0, len(r.clients))
	for _, c := range r.clients {
		clients = append(clients, c)
	}
	r.mu.RUnlock()
	delivered := 0
	for _, c := range clients {
		if err := c.Send(ctx, data); err != nil {
			h.log.WarnContext(ctx, "registry - deliver - send failed", logging.Connection(c.ConnectionID()), logging.Channel(channel), logging.Err(err))
			continue
		}
		delivered++
	}
	return delivered
}

func (h *Registry) AddChatMessage(
	ctx context.Context,
	connectionID, userID, room string,
	roomType domain.RoomType,
	message json.RawMessage,
) error {
	channel := domain.RoomChannel(roomType, room)
	ctx, span := tracer.Start(ctx, "Registry.AddChatMessage", trace.WithAttributes(
		attribute.String("channel", channel),
		attribute.String("connection_id", connectionID),
	))
	defer span.End()
	h.ensureWorker(ctx, channel)
	raw, err := json.Marshal(domain.BusMessage{
		Kind:         domain.BusChat,
		ConnectionID: connectionID,
		UserID:       userID,
		Room:         room,
		Type:         roomType,
		Message:      message,
	})
	if err != nil {
		span.RecordError(err)
		return err
	}
	pctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()
	if err := h.bus.Publish(pctx, channel, raw); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "publish failed")
		h.log.ErrorContext(ctx, "registry - add chat message - publish failed", logging.Channel(channel), logging.Connection(connectionID), logging.Err(err))
		return fmt.Errorf("%w: publish %s: %v", domain.ErrBusUnavailable, channel, err)
	}
	return nil
}

func (h *Registry) PostSubscribe(
	ctx context.Context,
	connectionID string,
	roomType domain.RoomType,
	room string,
	authContext any,
) {
	h.record(ctx, domain.SubscriptionEvent{
		Kind:         domain.BusSubscribe,
		ConnectionID: connectionID,
		Room:         room,
		Type:         roomType,
		Context:      authContext,
		At:           time.Now().UnixMilli(),
	})
}

func (h *Registry) PostUnsubscribe(
	ctx context.Context,
	connectionID string,
	roomType domain.RoomType,
	room string,
) {
	h.record(ctx, domain.SubscriptionEvent{
		Kind:         domain.BusUnsubscribe,
		ConnectionID: connectionID,
		Room:         room,
		Type:         roomType,
		At:           time.Now().UnixMilli(),
	})
}

func (h *Registry) record(ctx context.Context, evt domain.SubscriptionEvent) {
	if h.ledger == nil {
		return
	}
	lctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), h.timeout)
	defer cancel()
	var err error
	if evt.Kind == domain.BusSubscribe {
		err = h.ledger.Record(lctx, evt)
	} else {
		err = h.ledger.Release(lctx, evt)
	}
	if err != nil {
		h.log.ErrorContext(ctx, "registry - ledger - write failed", slog.String("kind", string(evt.Kind)), logging.Connection(evt.ConnectionID), logging.Room(evt.Room), logging.Err(err))
	}
}

// Rooms reports the number of channels with at least one local client.
func (h *Registry) Rooms() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.rooms)
}

// Members lists the connection ids registered locally on channel.
func (h *Registry) Members(channel string) []string {
	h.mu.Lock()
	r := h.rooms[channel]
	h.mu.Unlock()
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.clients))
	for id := range r.clients {
		ids = append(ids, id)
	}
	return ids
}
