package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-library-keeper/internal/logger"
)

const shutdownTimeout = 5 * time.Second

// HTTPServer serves handler on address until its Run context ends.
type HTTPServer struct {
	server *http.Server
	logger *logger.Logger
}

func NewHTTPServer(address string, handler http.Handler, log *logger.Logger) (*HTTPServer, error) {
	if address == "" {
		return nil, errNoAddress
	}

	return &HTTPServer{
		server: &http.Server{
			Addr:              address,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: log,
	}, nil
}

// Run listens on the configured address and blocks until ctx is done, then
// shuts the server down gracefully.
func (h *HTTPServer) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return err
	}
	return h.Serve(ctx, listener)
}

// Serve is Run on an existing listener.
func (h *HTTPServer) Serve(ctx context.Context, listener net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		h.logger.Info().Str("address", listener.Addr().String()).Msg("launching HTTP status server")
		errCh <- h.server.Serve(listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(shutdownCtx); err != nil {
		h.logger.Err(err).Msg("HTTP status server shutdown")
		return err
	}
	h.logger.Info().Msg("HTTP status server shut down gracefully")
	return nil
}

func (h *HTTPServer) Name() string {
	return "http-status"
}
