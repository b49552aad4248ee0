package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

type SportsBookingHttpServer struct {
	router    *Router
	muxRouter *mux.Router
	port      string
}

func NewSportsBookingHttpServer(router *Router, muxRouter *mux.Router, port string) *SportsBookingHttpServer {
	return &SportsBookingHttpServer{
		router:    router,
		muxRouter: muxRouter,
		port:      port,
	}
}

// Start runs the HTTP server until an interrupt or termination signal,
// then shuts down gracefully.
func (s *SportsBookingHttpServer) Start() {
	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:    ":" + s.port,
		Handler: s.muxRouter,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe failed")
		}
	}()

	<-stop
	log.Info().Msg("shutting down the server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exiting")
}
