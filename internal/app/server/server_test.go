package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"roomgate/internal/app/registry"
	"roomgate/internal/app/server/handlers"
	"roomgate/internal/app/worker"
	"roomgate/internal/config"
	"roomgate/internal/core/domain"
	"roomgate/internal/core/services"
	"roomgate/internal/mocks"
	"roomgate/internal/plugins/membus"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	srv    *httptest.Server
	hub    *registry.Registry
	tokens *services.TokenService
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	conversations := mocks.NewMockConversationMembership(ctrl)
	conversations.EXPECT().ValidateConversationMembership(gomock.Any(), "u1", int64(42)).Return(true, nil).AnyTimes()
	collections := mocks.NewMockCollectionOwnership(ctrl)
	collections.EXPECT().ListOwnedCollections(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	authorizer := services.NewRoomAuthorizer(log, config.RoomsConfig{DefaultGroups: []string{"backpack-chat"}}, conversations, nil, collections)
	bus := membus.NewNetwork().Connect()
	hub := registry.NewRegistry(log, bus, nil, time.Second)
	hub.RunWorker(worker.NewRoomWorker(log, bus, hub, time.Second).Run)

	tokens := services.NewTokenService("test-secret")
	wsHandler := handlers.NewWSHandler(hub, authorizer, collections, config.SessionConfig{
		SendBuffer:   16,
		ReadLimit:    1 << 16,
		WriteTimeout: time.Second,
	})
	srv := httptest.NewServer(NewServer(log, "roomgate", ":0", tokens, wsHandler, hub).Handler())
	t.Cleanup(srv.Close)
	return fixture{srv: srv, hub: hub, tokens: tokens}
}

func (f fixture) dial(t *testing.T, userID string) *websocket.Conn {
	token, err := f.tokens.GenerateToken(userID)
	require.NoError(t, err)
	url := "ws" + strings.TrimPrefix(f.srv.URL, "http") + "/ws?token=" + token
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func read(t *testing.T, conn *websocket.Conn) domain.Envelope {
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var env domain.Envelope
	require.NoError(t, conn.ReadJSON(&env))
	return env
}

func TestServer_WebSocketSession(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	conn := f.dial(t, "u1")

	req.Equal(domain.TypeReady, read(t, conn).Type)
	req.Eventually(func() bool {
		return len(f.hub.Members("INDIVIDUAL_u1")) == 1 && len(f.hub.Members("COLLECTION_backpack-chat")) == 1
	}, time.Second, 10*time.Millisecond)

	req.NoError(conn.WriteMessage(websocket.TextMessage, []byte(`{"broken`)))
	req.NoError(conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"CHAT_MESSAGES","payload":{"room":"42","type":"individual","messages":[{"body":"hi"}]}}`)))

	env := read(t, conn)
	req.Equal(domain.TypeChatMessages, env.Type)
	var d domain.ChatDelivery
	req.NoError(json.Unmarshal(env.Payload, &d))
	req.Equal("42", d.Room)
	req.Equal("u1", d.SenderUserID)
	req.JSONEq(`{"body":"hi"}`, string(d.Messages[0]))

	req.NoError(conn.Close())
	req.Eventually(func() bool { return f.hub.Rooms() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestServer_RejectsMissingToken(t *testing.T) {
	f := newFixture(t)
	url := "ws" + strings.TrimPrefix(f.srv.URL, "http") + "/ws"

	_, resp, err := websocket.DefaultDialer.Dial(url, nil)

	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestServer_Healthz(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	resp, err := http.Get(f.srv.URL + "/healthz")
	req.NoError(err)
	defer resp.Body.Close()

	req.Equal(http.StatusOK, resp.StatusCode)
	var body map[string]any
	req.NoError(json.NewDecoder(resp.Body).Decode(&body))
	req.Equal("ok", body["status"])
	req.EqualValues(0, body["rooms"])
}

func TestServer_StartStopsOnCancel(t *testing.T) {
	f := newFixture(t)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	wsHandler := handlers.NewWSHandler(f.hub, nil, nil, config.SessionConfig{})
	srv := NewServer(log, "roomgate", "127.0.0.1:0", f.tokens, wsHandler, f.hub)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Start(ctx) }()
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
