// Package session terminates one client connection: it parses frames, keeps
// the connection's subscription set and drives authorization and fan-out.
package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"roomgate/internal/core/contracts"
	"roomgate/internal/core/domain"
	"roomgate/internal/core/services"
	"roomgate/pkg/logging"
	"slices"
	"sync"

	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("session")

type State int

const (
	StateConnecting State = iota
	StateReady
	StateActive
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateReady:
		return "ready"
	case StateActive:
		return "active"
	case StateClosed:
		return "closed"
	}
	return "unknown"
}

// Transport is the write side of the client socket.
type Transport interface {
	Send(ctx context.Context, data []byte) error
}

type Session struct {
	identity    domain.Identity
	transport   Transport
	broker      contracts.Broker
	authorizer  services.IRoomAuthorizer
	collections domain.CollectionOwnership
	log         *slog.Logger

	// mu guards state and subscriptions and is held across every broker
	// registration so Close never interleaves with a commit.
	mu            sync.Mutex
	state         State
	subscriptions []domain.Subscription
	// implicit holds the channels joined by Start; they outlive any
	// explicit subscription to the same room.
	implicit map[string]struct{}
}

var _ contracts.Client = (*Session)(nil)

func New(
	log *slog.Logger,
	identity domain.Identity,
	transport Transport,
	broker contracts.Broker,
	authorizer services.IRoomAuthorizer,
	collections domain.CollectionOwnership,
) *Session {
	return &Session{
		identity:    identity,
		transport:   transport,
		broker:      broker,
		authorizer:  authorizer,
		collections: collections,
		log:         log.With(logging.Connection(identity.ConnectionID), logging.User(identity.UserID)),
		state:       StateConnecting,
		implicit:    make(map[string]struct{}),
	}
}

func (s *Session) ConnectionID() string { return s.identity.ConnectionID }
func (s *Session) UserID() string       { return s.identity.UserID }

func (s *Session) Send(ctx context.Context, data []byte) error {
	return s.transport.Send(ctx, data)
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscriptions returns a copy of the current subscription set in the order
// it was acquired.
func (s *Session) Subscriptions() []domain.Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.subscriptions)
}

// Start sends the ready signal and registers the implicit channels: the user
// inbox, every owned collection and the default public groups.
func (s *Session) Start(ctx context.Context) error {
	ready, err := json.Marshal(domain.ReadyFrame())
	if err != nil {
		return err
	}
	if err := s.transport.Send(ctx, ready); err != nil {
		s.log.ErrorContext(ctx, "session - start - send ready failed", logging.Err(err))
		return err
	}
	s.mu.Lock()
	if s.state == StateClosed {
		s.mu.Unlock()
		return domain.ErrSessionClosed
	}
	s.state = StateReady
	s.registerImplicit(ctx, domain.UserChannel(s.identity.UserID))
	s.mu.Unlock()

	var owned []string
	if s.collections != nil {
		if owned, err = s.collections.ListOwnedCollections(ctx, s.identity.UserID); err != nil {
			s.log.ErrorContext(ctx, "session - start - list owned collections failed", logging.Err(err))
		}
	}
	groups := lo.Uniq(lo.Compact(append(owned, s.authorizer.DefaultGroups()...)))

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateClosed {
		return domain.ErrSessionClosed
	}
	for _, g := range groups {
		s.registerImplicit(ctx, domain.CollectionChannel(g))
	}
	s.log.InfoContext(ctx, "session - start - implicit channels registered", slog.Int("groups", len(groups)))
	return nil
}

// registerImplicit must be called with s.mu held.
func (s *Session) registerImplicit(ctx context.Context, channel string) {
	s.implicit[channel] = struct{}{}
	s.register(ctx, channel)
}

// register must be called with s.mu held.
func (s *Session) register(ctx context.Context, channel string) {
	if err := s.broker.Subscribe(ctx, s, channel); err != nil {
		s.log.ErrorContext(ctx, "session - register - broker subscribe failed", logging.Channel(channel), logging.Err(err))
	}
}

// HandleFrame processes one inbound frame to completion. Failures are logged
// and never close the connection.
func (s *Session) HandleFrame(ctx context.Context, data []byte) {
	frame, err := domain.ParseFrame(data)
	if err != nil {
		s.log.WarnContext(ctx, "session - handle frame - could not parse message", logging.Err(err))
		return
	}
	ctx, span := tracer.Start(ctx, "Session.HandleFrame", trace.WithAttributes(
		attribute.String("frame", frame.Kind()),
		attribute.String("room", frame.Target().Room),
		attribute.String("room_type", string(frame.Target().Type)),
	))
	defer span.End()

	s.mu.Lock()
	if s.state == StateClosed {
		s.mu.Unlock()
		span.SetStatus(codes.Error, "session closed")
		return
	}
	s.state = StateActive
	s.mu.Unlock()

	switch f := frame.(type) {
	case domain.SubscribeFrame:
		s.subscribe(ctx, f.RoomRef)
	case domain.UnsubscribeFrame:
		s.unsubscribe(ctx, f.RoomRef)
	case domain.ChatMessagesFrame:
		s.chat(ctx, f)
	default:
		s.log.WarnContext(ctx, "session - handle frame - unsupported frame", logging.Frame(frame.Kind()))
	}
}

func (s *Session) has(target domain.Subscription) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Contains(s.subscriptions, target)
}

// subscribe reports whether the session holds the subscription afterwards.
// Authorization runs unlocked; the commit is a single locked transition.
func (s *Session) subscribe(ctx context.Context, ref domain.RoomRef) bool {
	target := ref.Target()
	if s.has(target) {
		return true
	}
	decision, err := s.authorizer.Authorize(ctx, s.identity.UserID, target.Type, target.Room, ref.PublicKey, ref.Mint)
	if err != nil {
		s.log.WarnContext(ctx, "session - subscribe - authorization failed", logging.Room(target.Room), logging.RoomType(string(target.Type)), logging.Err(err))
		return false
	}
	if !decision.Allowed {
		s.log.InfoContext(ctx, "session - subscribe - user has no access to room", logging.Room(target.Room), logging.RoomType(string(target.Type)), slog.String("policy", string(decision.Policy)))
		return false
	}
	return s.commit(ctx, target, decision)
}

func (s *Session) commit(ctx context.Context, target domain.Subscription, decision domain.Decision) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateClosed {
		s.log.InfoContext(ctx, "session - subscribe - session closed during authorization", logging.Room(target.Room))
		return false
	}
	if slices.Contains(s.subscriptions, target) {
		return true
	}
	s.subscriptions = append(s.subscriptions, target)
	s.register(ctx, target.Channel())
	s.broker.PostSubscribe(ctx, s.identity.ConnectionID, target.Type, target.Room, decision.Context)
	s.log.InfoContext(ctx, "session - subscribe - subscription recorded", logging.Room(target.Room), logging.RoomType(string(target.Type)), slog.String("policy", string(decision.Policy)))
	return true
}

func (s *Session) unsubscribe(ctx context.Context, ref domain.RoomRef) {
	target := ref.Target()
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateClosed {
		return
	}
	i := slices.Index(s.subscriptions, target)
	if i < 0 {
		return
	}
	s.subscriptions = slices.Delete(s.subscriptions, i, i+1)
	if _, ok := s.implicit[target.Channel()]; !ok {
		s.broker.Unsubscribe(ctx, s, target.Channel())
	}
	s.broker.PostUnsubscribe(ctx, s.identity.ConnectionID, target.Type, target.Room)
	s.log.InfoContext(ctx, "session - unsubscribe - subscription released", logging.Room(target.Room), logging.RoomType(string(target.Type)))
}

func (s *Session) chat(ctx context.Context, f domain.ChatMessagesFrame) {
	target := f.Target()
	if !s.subscribe(ctx, f.RoomRef) {
		s.log.InfoContext(ctx, "session - chat messages - user has not yet post subscribed to the room", logging.Room(target.Room), slog.Int("dropped", len(f.Messages)))
		return
	}
	for _, m := range f.Messages {
		if err := s.broker.AddChatMessage(ctx, s.identity.ConnectionID, s.identity.UserID, target.Room, target.Type, m); err != nil {
			s.log.ErrorContext(ctx, "session - chat messages - add chat message failed", logging.Room(target.Room), logging.Err(err))
		}
	}
}

// Close deregisters the session everywhere and emits one unsubscribe
// notification per held subscription. It is safe to call more than once.
func (s *Session) Close(ctx context.Context) {
	s.mu.Lock()
	if s.state == StateClosed {
		s.mu.Unlock()
		return
	}
	s.state = StateClosed
	subs := s.subscriptions
	s.subscriptions = nil
	s.mu.Unlock()

	s.broker.UserLeft(ctx, s.identity.ConnectionID)
	for _, sub := range subs {
		s.broker.PostUnsubscribe(ctx, s.identity.ConnectionID, sub.Type, sub.Room)
	}
	s.log.InfoContext(ctx, "session - close - session destroyed", slog.Int("subscriptions", len(subs)))
}
