package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"portfolio-chat-be/internal/config"
	"portfolio-chat-be/internal/pkg/logger"
	"portfolio-chat-be/pkg/events"
	pktNats "portfolio-chat-be/pkg/nats"

	"github.com/fatih/color"
)

// Audit worker: drains the relay event stream into a durable log so relay
// activity survives restarts of the REST process. Runs standalone.
func main() {
	cfg := config.Load()
	auditLog := logger.NewZapLogger("logs/relay_audit.log", cfg.App.Environment == "production")
	defer auditLog.Sync()

	sub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Fatalf("Unable to connect to NATS: %v", err)
	}
	defer sub.Close()

	err = sub.Subscribe("events.relay.>", "relay-audit", func(_ context.Context, event events.Event) error {
		auditLog.Info("Audit", event.EventType(), event.Payload())
		return nil
	})
	if err != nil {
		log.Fatalf("Failed to subscribe to relay events: %v", err)
	}

	color.Green("✔ Audit worker running, consuming events.relay.>")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Audit worker shutting down")
}
