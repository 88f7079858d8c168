package main

import (
	"ares-gme/content"
	"ares-gme/domain"
	"ares-gme/engine"
	"ares-gme/moderation"
	"ares-gme/repositories"
	"ares-gme/runtime"
	"ares-gme/runtime/workers"
	"ares-gme/transport/gateway"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the process lifecycle, and
// centralizes error reporting, so deferred cleanups always execute and the
// entry point stays testable.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Audit store (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()
	auditRepo := repositories.NewAuditRepository(db, log)
	auditor := repositories.NewAuditRecorder(auditRepo, log)

	// 3. Engine components
	store, err := content.NewStore()
	if err != nil {
		return fmt.Errorf("content store: %w", err)
	}
	guard, err := moderation.NewLinkGuard(moderation.DefaultPatterns)
	if err != nil {
		return fmt.Errorf("link guard: %w", err)
	}
	availability := engine.NewAvailabilityState()

	client := gateway.NewClient(config.GatewayURL, gateway.Handlers{}, log)

	roster := engine.NewRosterCache(client, config.RosterTTL, config.TransportTimeout, log)
	resolver := engine.NewResolver(
		domain.Actor(config.OwnerID), domain.Actor(config.BotID), roster, log)
	dispatcher := engine.NewDispatcher(
		log, client, resolver, roster, availability, guard, auditor, store,
		config.CommandPrefix, config.TransportTimeout)
	notifier := engine.NewRosterNotifier(
		log, client, roster, auditor, domain.Actor(config.BotID),
		config.CommandPrefix, config.TransportTimeout)

	// 4. Supervision & Orchestration
	sup := workers.NewSupervisor(log, config.RestartInterval)
	orchestrator := runtime.NewOrchestrator(
		log, sup, dispatcher, notifier,
		config.NumberOfWorkers, config.BufferSize, config.TelemetryInterval)
	client.SetHandlers(gateway.Handlers{
		OnMessage:         orchestrator.Submit,
		OnRosterEvent:     orchestrator.SubmitRosterEvent,
		OnConnectionState: orchestrator.SubmitConnectionState,
	})
	orchestrator.Add(client)

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 6. Start and wait
	orchestrator.Start(ctx)
	log.Info("ARES GME operational", "owner", config.OwnerID, "prefix", config.CommandPrefix)

	<-ctx.Done()
	log.Info("Shutting down gracefully...")
	orchestrator.Stop()
	log.Info("Program stopped cleanly")
	return nil
}
