//go:generate go run go.uber.org/mock/mockgen -source=authorizer.go -destination=../../mocks/mock_authorizer.go -package=mocks
package services

import (
	"context"
	"fmt"
	"log/slog"
	"roomgate/internal/config"
	"roomgate/internal/core/domain"
	"roomgate/pkg/logging"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type IRoomAuthorizer interface {
	// Authorize decides whether userID may join room. It holds no state and
	// may be called again for the same user and room.
	Authorize(ctx context.Context, userID string, roomType domain.RoomType, room, publicKey, mint string) (domain.Decision, error)
	// DefaultGroups lists the public groups every connection joins.
	DefaultGroups() []string
}

var authTracer = otel.Tracer("room-authorizer")

type RoomAuthorizer struct {
	log           *slog.Logger
	conversations domain.ConversationMembership
	centralized   domain.CentralizedGroupOwnership
	collections   domain.CollectionOwnership
	defaults      []string
	defaultSet    map[string]struct{}
	whitelist     map[string]struct{}
}

func NewRoomAuthorizer(
	log *slog.Logger,
	rooms config.RoomsConfig,
	conversations domain.ConversationMembership,
	centralized domain.CentralizedGroupOwnership,
	collections domain.CollectionOwnership,
) *RoomAuthorizer {
	a := &RoomAuthorizer{
		log:           log,
		conversations: conversations,
		centralized:   centralized,
		collections:   collections,
		defaultSet:    make(map[string]struct{}),
		whitelist:     make(map[string]struct{}),
	}
	for _, id := range rooms.DefaultGroups {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := a.defaultSet[id]; !ok {
			a.defaultSet[id] = struct{}{}
			a.defaults = append(a.defaults, id)
		}
	}
	for _, id := range rooms.WhitelistedGroups {
		if id = strings.TrimSpace(id); id != "" {
			a.whitelist[id] = struct{}{}
		}
	}
	return a
}

func (a *RoomAuthorizer) DefaultGroups() []string {
	return append([]string(nil), a.defaults...)
}

func (a *RoomAuthorizer) Authorize(
	ctx context.Context,
	userID string,
	roomType domain.RoomType,
	room, publicKey, mint string,
) (domain.Decision, error) {
	ctx, span := authTracer.Start(ctx, "RoomAuthorizer.Authorize", trace.WithAttributes(
		attribute.String("user_id", userID),
		attribute.String("room", room),
		attribute.String("room_type", string(roomType)),
		attribute.String("public_key", publicKey),
		attribute.String("mint", mint),
	))
	defer span.End()
	if strings.TrimSpace(room) == "" {
		span.RecordError(domain.ErrInvalidRoom)
		return domain.Decision{}, domain.ErrInvalidRoom
	}
	var (
		decision domain.Decision
		err      error
	)
	switch roomType {
	case domain.RoomIndividual:
		decision, err = a.authorizeConversation(ctx, userID, room)
	case domain.RoomGroup:
		decision, err = a.authorizeGroup(ctx, userID, room)
	default:
		err = fmt.Errorf("%w: %q", domain.ErrInvalidRoomType, roomType)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "authorization failed")
		return domain.Decision{Policy: decision.Policy}, err
	}
	span.SetAttributes(
		attribute.String("policy", string(decision.Policy)),
		attribute.Bool("allowed", decision.Allowed),
	)
	if decision.Allowed {
		decision.Context = true
	}
	return decision, nil
}

func (a *RoomAuthorizer) authorizeConversation(ctx context.Context, userID, room string) (domain.Decision, error) {
	d := domain.Decision{Policy: domain.PolicyConversation}
	// individual rooms are conversation ids stored as integers
	conversationID, err := strconv.ParseInt(room, 10, 64)
	if err != nil {
		return d, fmt.Errorf("%w: %q", domain.ErrInvalidConversation, room)
	}
	if a.conversations == nil {
		return d, domain.ErrCollaboratorMissing
	}
	ok, err := a.conversations.ValidateConversationMembership(ctx, userID, conversationID)
	if err != nil {
		return d, fmt.Errorf("validate conversation membership: %w", err)
	}
	if !ok {
		a.log.InfoContext(ctx, "authorizer - conversation - user has no access", logging.User(userID), logging.Room(room))
	}
	d.Allowed = ok
	return d, nil
}

func (a *RoomAuthorizer) authorizeGroup(ctx context.Context, userID, room string) (domain.Decision, error) {
	if _, ok := a.defaultSet[room]; ok {
		return domain.Decision{Allowed: true, Policy: domain.PolicyDefaultGroup}, nil
	}
	if _, ok := a.whitelist[room]; ok {
		d := domain.Decision{Policy: domain.PolicyCentralizedGroup}
		if a.centralized == nil {
			return d, domain.ErrCollaboratorMissing
		}
		allowed, err := a.centralized.ValidateCentralizedGroupOwnership(ctx, userID, room)
		if err != nil {
			return d, fmt.Errorf("validate centralized group ownership: %w", err)
		}
		d.Allowed = allowed
		return d, nil
	}
	d := domain.Decision{Policy: domain.PolicyCollectionHolding}
	if a.collections == nil {
		return d, domain.ErrCollaboratorMissing
	}
	allowed, err := a.collections.ValidateCollectionOwnership(ctx, userID, room)
	if err != nil {
		return d, fmt.Errorf("validate collection ownership: %w", err)
	}
	d.Allowed = allowed
	return d, nil
}
