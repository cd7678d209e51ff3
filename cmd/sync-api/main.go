// Copyright The WebinarGeek Sync Service contributors.
// SPDX-License-Identifier: MIT

// Package main is the WebinarGeek sync service. It mirrors the remote
// webinar catalog into a local store, consumes WebinarGeek webhooks,
// and forwards participant registrations.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/webinargeek-labs/webinargeek-sync-service/internal/handlers"
	"github.com/webinargeek-labs/webinargeek-sync-service/internal/infrastructure/messaging"
	"github.com/webinargeek-labs/webinargeek-sync-service/internal/infrastructure/webhook"
	"github.com/webinargeek-labs/webinargeek-sync-service/internal/infrastructure/webinargeek"
	"github.com/webinargeek-labs/webinargeek-sync-service/internal/logging"
	"github.com/webinargeek-labs/webinargeek-sync-service/internal/scheduler"
	"github.com/webinargeek-labs/webinargeek-sync-service/internal/service"
)

func main() {
	env := parseEnv()
	flags := parseFlags(env.Port)

	logging.InitStructureLogConfig()

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	gracefulCloseWG := sync.WaitGroup{}

	// Setup NATS connection
	natsConn, err := setupNATS(ctx, env, &gracefulCloseWG, done)
	if err != nil {
		slog.With(logging.ErrKey, err).Error("error setting up NATS")
		return
	}

	// Get the key-value store for the service.
	webinarRepository, err := getKeyValueStores(ctx, natsConn)
	if err != nil {
		slog.With(logging.ErrKey, err).Error("error getting key-value stores")
		return
	}

	// Initialize the WebinarGeek API client and services
	webinarAPI := webinargeek.NewClient(webinargeek.Config{
		APIKey:  env.APIKey,
		BaseURL: env.BaseURL,
	})
	messageBuilder := messaging.NewMessageBuilder(natsConn)
	syncService := service.NewSyncService(webinarRepository, webinarAPI, messageBuilder)
	registrationService := service.NewRegistrationService(webinarAPI)

	// Initialize handlers
	webhookHandler := handlers.NewWebhookHandler(syncService, webhook.NewValidator(env.WebhookSecret))
	registrationHandler := handlers.NewRegistrationHandler(registrationService)
	webinarHandler := handlers.NewWebinarHandler(webinarRepository)
	syncHandler := handlers.NewSyncHandler(syncService)
	healthHandler := handlers.NewHealthHandler(func() bool {
		return syncService.ServiceReady() && registrationService.ServiceReady() && natsConn.IsConnected()
	})

	router := handlers.NewRouter(handlers.RouterConfig{
		Webhook:      webhookHandler,
		Registration: registrationHandler,
		Webinars:     webinarHandler,
		Sync:         syncHandler,
		Health:       healthHandler,
		AdminToken:   env.AdminToken,
	})

	httpServer := setupHTTPServer(flags, router, &gracefulCloseWG)

	// Start the recurring sync in the background.
	syncScheduler := scheduler.NewScheduler(
		syncService,
		scheduler.WithInterval(env.SyncInterval),
		scheduler.WithRunOnStart(env.SyncOnStart),
	)
	go func() {
		if err := syncScheduler.Run(ctx); err != nil && err != context.Canceled {
			slog.With(logging.ErrKey, err).Error("sync scheduler stopped unexpectedly")
		}
	}()

	// This next line blocks until SIGINT or SIGTERM is received.
	<-done

	gracefulShutdown(httpServer, natsConn, &gracefulCloseWG, cancel)
}
