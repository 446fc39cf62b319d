package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"roomgate/internal/app/server/handlers"
	"roomgate/pkg/middleware"
)

type Server struct {
	log           *slog.Logger
	app           string
	mux           *http.ServeMux
	addr          string
	wsHandler     *handlers.WSHandler
	healthHandler *handlers.HealthHandler
	tokenSvc      middleware.TokenValidator
}

func NewServer(
	log *slog.Logger,
	app, addr string,
	tokenSvc middleware.TokenValidator,
	wsHandler *handlers.WSHandler,
	rooms handlers.RoomCounter,
) *Server {
	s := &Server{
		log:           log,
		app:           app,
		mux:           http.NewServeMux(),
		addr:          addr,
		wsHandler:     wsHandler,
		healthHandler: handlers.NewHealthHandler(rooms, wsHandler),
		tokenSvc:      tokenSvc,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	auth := middleware.AuthMiddleware(s.tokenSvc)

	// Public Routes
	s.mux.HandleFunc("GET /healthz", s.healthHandler.Handler)

	// Protected Routes
	s.mux.Handle("GET /ws", auth(http.HandlerFunc(s.wsHandler.Handler)))
}

func (s *Server) Handler() http.Handler {
	return middleware.Chain(s.mux,
		middleware.TracerMiddleware(s.app),
		middleware.RequestLogger(s.log),
	)
}

// Start serves until ctx is cancelled, then drains HTTP requests and closes
// every open socket.
func (s *Server) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 15 * time.Second,
	}
	server.RegisterOnShutdown(s.wsHandler.CloseAll)

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server - start - listening", slog.String("addr", s.addr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	s.log.Info("server - shutdown - draining connections")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
