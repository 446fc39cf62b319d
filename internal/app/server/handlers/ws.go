package handlers

import (
	"context"
	"net/http"
	"roomgate/internal/app/server/ws"
	"roomgate/internal/app/session"
	"roomgate/internal/config"
	"roomgate/internal/core/contracts"
	"roomgate/internal/core/domain"
	"roomgate/internal/core/services"
	"roomgate/pkg/logging"
	"roomgate/pkg/middleware"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type WSHandler struct {
	broker      contracts.Broker
	authorizer  services.IRoomAuthorizer
	collections domain.CollectionOwnership
	cfg         config.SessionConfig
	upgrader    websocket.Upgrader

	mu    sync.Mutex
	conns map[string]*ws.WebSocket
}

func NewWSHandler(
	broker contracts.Broker,
	authorizer services.IRoomAuthorizer,
	collections domain.CollectionOwnership,
	cfg config.SessionConfig,
) *WSHandler {
	return &WSHandler{
		broker:      broker,
		authorizer:  authorizer,
		collections: collections,
		cfg:         cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		conns: make(map[string]*ws.WebSocket),
	}
}

func (s *WSHandler) Handler(w http.ResponseWriter, r *http.Request) {
	log := logging.FromContext(r.Context())
	span := trace.SpanFromContext(r.Context())
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		log.ErrorContext(r.Context(), "ws handler - unauthorised missing user_id")
		http.Error(w, "Unauthorized: User ID missing", http.StatusUnauthorized)
		return
	}
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.ErrorContext(r.Context(), "ws handler - upgrade - ws upgrade failed", logging.Err(err))
		return
	}
	identity := domain.Identity{ConnectionID: uuid.NewString(), UserID: userID}
	span.SetAttributes(
		attribute.String("user.id", identity.UserID),
		attribute.String("connection.id", identity.ConnectionID),
	)
	socket := ws.NewWebSocket(context.WithoutCancel(r.Context()), conn, s.cfg.ReadLimit, s.cfg.WriteTimeout)
	ctx, log := logging.With(socket.Context(), logging.Connection(identity.ConnectionID), logging.User(identity.UserID))
	client := ws.NewClient(ctx, log, socket, s.cfg.SendBuffer)
	sess := session.New(log, identity, client, s.broker, s.authorizer, s.collections)

	s.track(identity.ConnectionID, socket)
	defer s.untrack(identity.ConnectionID)
	defer client.Close()
	defer sess.Close(context.WithoutCancel(ctx))

	if err := sess.Start(ctx); err != nil {
		log.ErrorContext(ctx, "ws handler - start - session start failed", logging.Err(err))
		return
	}
	log.InfoContext(ctx, "ws handler - ws connection established")
	socket.ReadLoop(log, func(data []byte) {
		sess.HandleFrame(ctx, data)
	})
	log.InfoContext(ctx, "ws handler - ws connection closed")
}

func (s *WSHandler) track(id string, socket *ws.WebSocket) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conns[id] = socket
}

func (s *WSHandler) untrack(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.conns, id)
}

// CloseAll drops every open socket; each handler then runs its own cleanup.
func (s *WSHandler) CloseAll() {
	s.mu.Lock()
	conns := make([]*ws.WebSocket, 0, len(s.conns))
	for _, c := range s.conns {
		conns = append(conns, c)
	}
	s.mu.Unlock()
	for _, c := range conns {
		c.Close()
	}
}

func (s *WSHandler) Connections() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conns)
}
