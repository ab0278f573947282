package http

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hus/config"
	"hus/shared/constant"
	"hus/transport/http/middleware"
	"hus/transport/http/response"
	"hus/transport/http/router"
)

type ServerState int

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
)

type HTTP struct {
	Config   *config.Config
	Router   router.Router
	App      middleware.AppMiddleware
	AuthRole middleware.AuthRole
	State    ServerState
	mux      *chi.Mux
	server   *http.Server
}

func New(cfg *config.Config, r router.Router, app middleware.AppMiddleware, authRole middleware.AuthRole) *HTTP {
	return &HTTP{
		Config:   cfg,
		Router:   r,
		App:      app,
		AuthRole: authRole,
	}
}

func (h *HTTP) Serve() {
	h.setup()

	log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

	if err := h.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}

func (h *HTTP) setup() {
	h.setupRoutes()

	h.server = &http.Server{
		Addr:              net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port),
		Handler:           h.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	h.setupGracefulShutdown()
	h.State = ServerStateReady
}

func (h *HTTP) setupRoutes() {
	h.mux = chi.NewRouter()

	h.mux.Use(h.App.RequestLogger)
	h.mux.Use(h.App.CORS)
	h.mux.Use(h.rejectDuringShutdown)
	h.mux.Use(h.AuthRole.Auth)
	h.mux.Use(h.AuthRole.RBAC)

	h.Router.SetupRoutes(h.mux)
}

// rejectDuringShutdown turns away new work once the grace period starts.
func (h *HTTP) rejectDuringShutdown(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if h.State == ServerStateInGracePeriod {
			response.WithPreparingShutdown(writer)

			return
		}

		next.ServeHTTP(writer, request)
	})
}

func (h *HTTP) setupGracefulShutdown() {
	serverStateCh := make(chan os.Signal, 1)

	signal.Notify(serverStateCh, os.Interrupt, syscall.SIGTERM)

	go h.respondToSigterm(serverStateCh)
}

func (h *HTTP) respondToSigterm(done chan os.Signal) {
	<-done

	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")

		if err := h.server.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close HTTP server")
		}

		return
	}

	gracePeriod := time.Duration(h.Config.Server.Shutdown.GracePeriodSeconds) * time.Second

	log.Info().Msg("Received SIGTERM.")
	log.Info().Int64("seconds", h.Config.Server.Shutdown.GracePeriodSeconds).Msg("Entering grace period.")

	h.State = ServerStateInGracePeriod

	ctx, cancel := context.WithTimeout(context.Background(), gracePeriod)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to shut down HTTP server cleanly")

		return
	}

	log.Info().Msg("Shutdown completed.")
}
