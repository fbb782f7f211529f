package server

import (
	"context"
	"net/http"

	"github.com/linonetwo/tw-mobile-sync/internal/logger"
)

// HTTPServer wraps the peer endpoint listener.
type HTTPServer struct {
	server *http.Server
	logger *logger.Logger
}

// NewHTTPServer binds the handler's router to addr.
func NewHTTPServer(addr string, handler *Handler, log *logger.Logger) *HTTPServer {
	return &HTTPServer{
		server: &http.Server{
			Addr:    addr,
			Handler: handler.Init(),
		},
		logger: log,
	}
}

// Run serves until Shutdown is called. Run blocks.
func (s *HTTPServer) Run() {
	s.logger.Info().Str("addr", s.server.Addr).Msg("peer endpoints listening")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Err(err).Msg("HTTP server ListenAndServe")
	}
}

// Shutdown closes the listener gracefully.
func (s *HTTPServer) Shutdown(ctx context.Context) {
	if err := s.server.Shutdown(ctx); err != nil {
		s.logger.Err(err).Msg("HTTP server Shutdown")
	}
}
