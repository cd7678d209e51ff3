// Copyright The WebinarGeek Sync Service contributors.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"syscall"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/webinargeek-labs/webinargeek-sync-service/internal/infrastructure/store"
	"github.com/webinargeek-labs/webinargeek-sync-service/internal/logging"
)

const (
	natsConnectTimeout  = 10 * time.Second
	natsShutdownTimeout = 25 * time.Second
	httpShutdownTimeout = 25 * time.Second
)

// setupNATS connects to the NATS server. The connection participates in
// graceful shutdown: closing it signals the shutdown wait group, and an
// unexpected close tears the process down via the done channel.
func setupNATS(_ context.Context, env environment, gracefulCloseWG *sync.WaitGroup, done chan os.Signal) (*nats.Conn, error) {
	gracefulCloseWG.Add(1)

	natsConn, err := nats.Connect(
		env.NatsURL,
		nats.Timeout(natsConnectTimeout),
		nats.DrainTimeout(natsShutdownTimeout),
		nats.ConnectHandler(func(_ *nats.Conn) {
			slog.With("nats_url", env.NatsURL).Info("NATS connection established")
		}),
		nats.ErrorHandler(func(_ *nats.Conn, s *nats.Subscription, err error) {
			if s != nil {
				slog.With(logging.ErrKey, err, "subject", s.Subject, "queue", s.Queue).Error("async NATS error")
				return
			}
			slog.With(logging.ErrKey, err).Error("async NATS error outside subscription")
		}),
		nats.ClosedHandler(func(conn *nats.Conn) {
			slog.With(logging.ErrKey, conn.LastError()).Info("NATS connection closed")
			gracefulCloseWG.Done()
			// A close that was not requested by shutdown means the
			// process can no longer do useful work.
			done <- syscall.SIGTERM
		}),
	)
	if err != nil {
		gracefulCloseWG.Done()
		return nil, err
	}

	return natsConn, nil
}

// getKeyValueStores looks up (or creates) the JetStream KV buckets the
// service persists into and wraps them in the repository types.
func getKeyValueStores(ctx context.Context, natsConn *nats.Conn) (*store.NatsWebinarRepository, error) {
	js, err := jetstream.New(natsConn)
	if err != nil {
		return nil, err
	}

	webinarsKV, err := js.KeyValue(ctx, store.KVStoreNameWebinars)
	if err != nil {
		if !errors.Is(err, jetstream.ErrBucketNotFound) {
			return nil, err
		}
		webinarsKV, err = js.CreateKeyValue(ctx, jetstream.KeyValueConfig{
			Bucket: store.KVStoreNameWebinars,
		})
		if err != nil {
			return nil, err
		}
	}

	return store.NewNatsWebinarRepository(webinarsKV), nil
}

// gracefulShutdown drains the HTTP server and the NATS connection, then
// waits for both to finish closing.
func gracefulShutdown(httpServer *http.Server, natsConn *nats.Conn, gracefulCloseWG *sync.WaitGroup, cancel context.CancelFunc) {
	slog.Info("shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), httpShutdownTimeout)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.With(logging.ErrKey, err).Error("error shutting down http server")
	}
	gracefulCloseWG.Done()

	if natsConn != nil && !natsConn.IsClosed() {
		if err := natsConn.Drain(); err != nil {
			slog.With(logging.ErrKey, err).Error("error draining NATS connection")
			natsConn.Close()
		}
	}

	gracefulCloseWG.Wait()
	slog.Info("shutdown complete")
}
