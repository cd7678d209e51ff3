// Copyright The WebinarGeek Sync Service contributors.
// SPDX-License-Identifier: MIT

package handlers

import (
	"github.com/go-chi/chi/v5"

	"github.com/webinargeek-labs/webinargeek-sync-service/internal/middleware"
)

// RouterConfig collects the handlers and settings the HTTP router mounts.
type RouterConfig struct {
	Webhook      *WebhookHandler
	Registration *RegistrationHandler
	Webinars     *WebinarHandler
	Sync         *SyncHandler
	Health       *HealthHandler
	AdminToken   string
}

// NewRouter assembles the service's HTTP surface.
func NewRouter(cfg RouterConfig) *chi.Mux {
	mux := chi.NewMux()

	mux.Use(middleware.RequestIDMiddleware())
	mux.Use(middleware.RequestLoggerMiddleware())
	mux.Use(middleware.WebhookBodyCaptureMiddleware())

	mux.Get("/livez", cfg.Health.HandleLivez)
	mux.Get("/readyz", cfg.Health.HandleReadyz)

	mux.Route("/webinargeek/v1", func(r chi.Router) {
		r.Post("/webhook", cfg.Webhook.HandleWebhook)
		r.Post("/register", cfg.Registration.HandleRegister)

		r.Get("/webinars", cfg.Webinars.HandleListWebinars)
		r.Get("/webinars/{id}", cfg.Webinars.HandleGetWebinar)

		r.Route("/admin", func(admin chi.Router) {
			admin.Use(middleware.AdminTokenMiddleware(cfg.AdminToken))
			admin.Post("/sync", cfg.Sync.HandleTriggerSync)
		})
	})

	return mux
}
