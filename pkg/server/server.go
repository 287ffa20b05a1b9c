package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/de-tools/parking-atlas/pkg/adapters"
	handlers "github.com/de-tools/parking-atlas/pkg/handlers/parking"
	"github.com/de-tools/parking-atlas/pkg/services/parking"

	parkingmiddleware "github.com/de-tools/parking-atlas/pkg/server/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

const defaultShutdownTimeout = 10 * time.Second

type WebAPI struct {
	router          http.Handler
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

type Dependencies struct {
	Reporter parking.Reporter
	Money    adapters.MoneyFormatter
	Logger   zerolog.Logger
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

// ConfigureRouter mounts the read-only reporting API under /api/v1.
func ConfigureRouter(config Config) http.Handler {
	logger := config.Dependencies.Logger
	h := handlers.NewHandler(config.Dependencies.Reporter, config.Dependencies.Money)

	router := chi.NewRouter()

	router.Use(parkingmiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/dashboard", h.GetDashboard)
		r.Get("/fleet", h.GetFleet)
		r.Get("/analytics", h.GetAnalytics)
		r.Get("/global", h.GetGlobal)
		r.Get("/aircraft/{id}", h.GetAircraft)
		r.Get("/airports/{id}", h.GetAirport)
		r.Get("/continents/{country}", h.GetContinent)
	})

	return router
}

func NewWebAPI(config Config) *WebAPI {
	logger := config.Dependencies.Logger
	router := ConfigureRouter(config)

	timeout := config.ShutdownTimeout
	if timeout == 0 {
		timeout = defaultShutdownTimeout
	}

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:              config.Addr,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
		shutdownTimeout: timeout,
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
