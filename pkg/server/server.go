package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tallyhq/tally/pkg/config"
)

type Server struct {
	config *config.Config
}

func NewServer(configInstance *config.Config) *Server {
	return &Server{
		config: configInstance,
	}
}

// Start runs the HTTP server until SIGINT or SIGTERM. The start hook runs
// before the listener is opened and registers handlers on the mux; the
// shutdown hook runs after the listener has drained.
func (s *Server) Start(start func(serveMux *http.ServeMux) error, shutdown func()) error {
	serveMux := http.NewServeMux()

	httpServer := &http.Server{
		Addr:    ":" + s.config.Port,
		Handler: serveMux,
	}

	if err := start(serveMux); err != nil {
		return err
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-signals

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown", "error", err)
		}
	}()

	slog.Info("Server running", "port", s.config.Port)

	err := httpServer.ListenAndServe()

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		shutdown()

		return err
	}

	shutdown()

	return nil
}
