package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"roomgate/internal/app/registry"
	"roomgate/internal/app/server"
	"roomgate/internal/app/server/handlers"
	"roomgate/internal/app/worker"
	"roomgate/internal/config"
	"roomgate/internal/core/contracts"
	"roomgate/internal/core/domain"
	"roomgate/internal/core/services"
	"roomgate/internal/platform/logger"
	"roomgate/internal/platform/telemetry"
	"roomgate/internal/plugins/membus"
	"roomgate/internal/plugins/postgres"
	redisPlugin "roomgate/internal/plugins/redis"
	"roomgate/pkg/logging"
	"syscall"
	"time"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Context
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Logger
	log := logger.NewLogger(*cfg)
	log.Info("starting application")

	otelShutdown, err := telemetry.InitTelemetry(ctx, *cfg)
	if err != nil {
		log.Error("failed to initialize telemetry", logging.Err(err))
		otelShutdown = func(context.Context) error { return nil }
	}
	defer func() {
		log.Info("flushing telemetry...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := otelShutdown(shutdownCtx); err != nil {
			log.Error("telemetry shutdown failed", logging.Err(err))
		}
	}()

	// Infra
	var pdb *sql.DB
	if pdb, err = postgres.New(ctx, cfg.Postgres); err != nil {
		log.Error("postgres connection failed", logging.Err(err))
		return err
	}
	defer pdb.Close()
	log.Info("postgres connected")

	bus, ledger, err := newBus(ctx, log, *cfg)
	if err != nil {
		return err
	}
	defer bus.Close()

	// Adapters
	convRepo := postgres.NewConversationRepo(pdb)
	groupRepo := postgres.NewGroupRepo(pdb)
	collectionRepo := postgres.NewCollectionRepo(pdb)

	// Core Services
	authorizer := services.NewRoomAuthorizer(log, cfg.Rooms, convRepo, groupRepo, collectionRepo)
	tokenSvc := services.NewTokenService(cfg.SecretToken)

	hub := registry.NewRegistry(log, bus, ledger, cfg.Bus.PublishTimeout)
	wrkr := worker.NewRoomWorker(log, bus, hub, cfg.Bus.SubscribeTimeout)
	hub.RunWorker(wrkr.Run)

	// Server
	wsHandler := handlers.NewWSHandler(hub, authorizer, collectionRepo, cfg.Session)
	srv := server.NewServer(log, cfg.Service.Name, cfg.Service.Addr, tokenSvc, wsHandler, hub)
	if err := srv.Start(ctx); err != nil {
		log.Error("server stopped", logging.Err(err))
		return err
	}
	log.Info("server stopped")
	return nil
}

func newBus(ctx context.Context, log *slog.Logger, cfg config.Config) (contracts.Bus, contracts.SubscriptionLedger, error) {
	switch cfg.Bus.Driver {
	case "memory":
		log.Warn("using in-process bus, fan-out is limited to this instance")
		return membus.NewNetwork().Connect(), nil, nil
	case "redis":
		rdb, err := redisPlugin.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Error("redis connection failed", logging.Err(err))
			return nil, nil, err
		}
		log.Info("redis connected")
		ledger := redisPlugin.NewRedisSubscriptionLedger(rdb, cfg.Bus.LedgerStream, cfg.Bus.LedgerMaxLen)
		return redisPlugin.NewRedisBus(context.WithoutCancel(ctx), log, rdb), ledger, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedBusDriver, cfg.Bus.Driver)
	}
}
