package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/postgres"
	"hotel/shared/constant"
	"hotel/transport/http/response"
	"hotel/transport/http/router"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const readHeaderTimeout = 10 * time.Second

type ServerState int32

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

type HTTP struct {
	Config *config.Config
	Router router.Router
	DB     *postgres.Connection
	Kafka  kafka.Client

	state   atomic.Int32
	once    sync.Once
	mux     *chi.Mux
	server  *http.Server
	stopped chan struct{}
}

func New(cfg *config.Config, r router.Router, db *postgres.Connection, kafkaClient kafka.Client) *HTTP {
	return &HTTP{
		Config: cfg,
		Router: r,
		DB:     db,
		Kafka:  kafkaClient,
	}
}

func (h *HTTP) State() ServerState {
	return ServerState(h.state.Load())
}

// Serve blocks until the server has shut down and its resources are released.
func (h *HTTP) Serve() {
	h.setupRoutes()

	h.server = &http.Server{
		Addr:              net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port),
		Handler:           h.mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	h.stopped = make(chan struct{})
	h.setupGracefulShutdown()

	log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}

	<-h.stopped
}

// Handler exposes the routes without owning a listener, for serverless entrypoints.
func (h *HTTP) Handler() http.Handler {
	h.setupRoutes()

	return h.mux
}

func (h *HTTP) setupRoutes() {
	h.once.Do(func() {
		h.mux = chi.NewRouter()

		h.Router.SetupRoutes(h.mux)
		h.mux.Get("/health", h.health)

		h.state.Store(int32(ServerStateReady))
	})
}

// health reports unavailable once shutdown starts so load balancers drain the instance.
func (h *HTTP) health(w http.ResponseWriter, _ *http.Request) {
	if h.State() != ServerStateReady {
		response.WithPreparingShutdown(w)

		return
	}

	response.WithMessage(w, http.StatusOK, "OK")
}

func (h *HTTP) setupGracefulShutdown() {
	serverStateCh := make(chan os.Signal, 1)

	signal.Notify(serverStateCh, os.Interrupt, syscall.SIGTERM)

	go h.respondToSigterm(serverStateCh)
}

func (h *HTTP) respondToSigterm(done chan os.Signal) {
	<-done

	defer close(h.stopped)

	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")

		h.shutdown(context.Background())

		return
	}

	shutdownConfig := h.Config.Server.Shutdown

	log.Info().Msg("Received SIGTERM.")
	log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

	h.state.Store(int32(ServerStateInGracePeriod))

	time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.state.Store(int32(ServerStateInCleanupPeriod))

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(shutdownConfig.CleanupPeriodSeconds)*time.Second)
	defer cancel()

	h.shutdown(ctx)

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}

// shutdown drains in-flight requests before releasing the broker writer and the pools.
func (h *HTTP) shutdown(ctx context.Context) {
	if h.server != nil {
		if err := h.server.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("failed to drain HTTP server")
		}
	}

	if h.Kafka != nil {
		if err := h.Kafka.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close kafka client")
		}
	}

	if h.DB != nil {
		if err := h.DB.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close database connections")
		}
	}
}
