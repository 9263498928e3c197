// Package api exposes report rendering and downloads over HTTP.
package api

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"cortecaja/internal/config"
	"cortecaja/internal/delivery"
	"cortecaja/internal/logging"
)

type Dependencies struct {
	Logger   *logrus.Logger
	Registry *delivery.Registry
	Report   config.ReportConfig
	// Now stamps the reports; nil uses time.Now.
	Now func() time.Time
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

// NewRouter wires the API routes.
func NewRouter(deps Dependencies) *chi.Mux {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	reports := NewReportHandler(deps)
	downloads := NewDownloadHandler(deps.Registry)
	status := NewStatusHandler()

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Get("/status", logging.LoggingWrapper("Status", deps.Logger, status.Handler))
	router.Route("/v1", func(r chi.Router) {
		r.Post("/cortes/reporte", logging.LoggingWrapper("RenderReport", deps.Logger, reports.Handler))
		r.Get("/descargas/{token}", logging.LoggingWrapper("Download", deps.Logger, downloads.Handler))
	})

	return router
}

type WebAPI struct {
	logger          *logrus.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

func NewWebAPI(cfg Config) *WebAPI {
	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &WebAPI{
		logger: cfg.Dependencies.Logger,
		server: &http.Server{
			Addr:              cfg.Addr,
			Handler:           NewRouter(cfg.Dependencies),
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       10 * time.Second,
			ReadHeaderTimeout: 10 * time.Second,
		},
		shutdownTimeout: timeout,
	}
}

// Start serves until the listener fails or the process receives SIGINT or
// SIGTERM, then shuts down gracefully.
func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	go func() {
		w.logger.WithField("addr", w.server.Addr).Info("HttpServer.Serve.listening")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	case <-shutdown:
		w.logger.Info("HttpServer.Serve.shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.WithError(err).Error("HttpServer.Serve.graceful shutdown failed")
			err = w.server.Close()
		}
		return err
	}
}
