package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/remesahq/remesa/internal/config"
)

// Server wraps the standard http.Server lifecycle.
type Server struct {
	httpServer *http.Server
	log        *slog.Logger
}

func NewServer(log *slog.Logger, cfg *config.Config, handler http.Handler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           handler,
			ReadTimeout:       cfg.Server.ReadTimeout,
			WriteTimeout:      cfg.Server.WriteTimeout,
			IdleTimeout:       cfg.Server.IdleTimeout,
			ReadHeaderTimeout: 5 * time.Second,
		},
		log: log,
	}
}

// Start blocks until the listener closes. A graceful shutdown is not an
// error here.
func (s *Server) Start() error {
	s.log.Info("starting http server", "addr", s.httpServer.Addr)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("shutting down http server")
	return s.httpServer.Shutdown(ctx)
}
