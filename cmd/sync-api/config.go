// Copyright The WebinarGeek Sync Service contributors.
// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"log/slog"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/webinargeek-labs/webinargeek-sync-service/internal/infrastructure/webinargeek"
	"github.com/webinargeek-labs/webinargeek-sync-service/internal/logging"
	"github.com/webinargeek-labs/webinargeek-sync-service/internal/scheduler"
)

// flags are the command line flags for the sync service.
type flags struct {
	Debug bool
	Port  string
	Bind  string
}

// environment are the environment variables for the sync service.
type environment struct {
	Port          string
	NatsURL       string
	APIKey        string
	BaseURL       string
	WebhookSecret string
	AdminToken    string
	SyncInterval  time.Duration
	SyncOnStart   bool
}

// parseFlags parses command line flags for the sync service
func parseFlags(defaultPort string) flags {
	var debug = flag.Bool("d", false, "enable debug logging")
	var port = flag.String("p", defaultPort, "listen port")
	var bind = flag.String("bind", "*", "interface to bind on")

	flag.Usage = func() {
		flag.PrintDefaults()
		os.Exit(2)
	}
	flag.Parse()

	// Based on the debug flag, set the log level environment variable used by [logging.InitStructureLogConfig]
	if *debug {
		err := os.Setenv("LOG_LEVEL", "debug")
		if err != nil {
			slog.With(logging.ErrKey, err).Error("error setting log level")
			os.Exit(1)
		}
	}

	return flags{
		Debug: *debug,
		Port:  *port,
		Bind:  *bind,
	}
}

// parseEnv parses environment variables for the sync service. A local
// .env file is loaded first so development setups need no exported vars.
func parseEnv() environment {
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	natsURL := os.Getenv("NATS_URL")
	if natsURL == "" {
		natsURL = "nats://localhost:4222"
	}

	apiKey := os.Getenv("WEBINARGEEK_API_KEY")
	if apiKey == "" {
		slog.Error("WEBINARGEEK_API_KEY environment variable is required but not set")
		os.Exit(1)
	}

	baseURL := os.Getenv("WEBINARGEEK_BASE_URL")
	if baseURL != "" {
		if _, err := url.Parse(baseURL); err != nil {
			slog.With(logging.ErrKey, err, "url", baseURL).Error("invalid WEBINARGEEK_BASE_URL provided, using default")
			baseURL = ""
		}
	}
	if baseURL == "" {
		baseURL = webinargeek.BaseURL
	}

	webhookSecret := os.Getenv("WEBINARGEEK_WEBHOOK_SECRET")
	if webhookSecret == "" {
		slog.Warn("WEBINARGEEK_WEBHOOK_SECRET is not set, all webhook deliveries will be rejected")
	}

	syncInterval := scheduler.DefaultSyncInterval
	if raw := os.Getenv("SYNC_INTERVAL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil || parsed <= 0 {
			slog.With(logging.ErrKey, err, "interval", raw).Error("invalid SYNC_INTERVAL provided, using default")
		} else {
			syncInterval = parsed
		}
	}

	return environment{
		Port:          port,
		NatsURL:       natsURL,
		APIKey:        apiKey,
		BaseURL:       baseURL,
		WebhookSecret: webhookSecret,
		AdminToken:    os.Getenv("ADMIN_API_TOKEN"),
		SyncInterval:  syncInterval,
		SyncOnStart:   os.Getenv("SYNC_ON_START") == "true",
	}
}
