package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/mkhailov/go-storage-sync/internal/config"
	"github.com/mkhailov/go-storage-sync/internal/logger"
)

// shutdownTimeout bounds how long in-flight requests may drain before the
// listener is closed forcefully.
const shutdownTimeout = 10 * time.Second

type httpServer struct {
	server *http.Server
	logger *logger.Logger
}

func newHTTPServer(router http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:         cfg.HTTPAddress,
			Handler:      router,
			ReadTimeout:  cfg.RequestTimeout,
			WriteTimeout: cfg.RequestTimeout,
		},
		logger: logger,
	}
}

func (h *httpServer) RunServer() {
	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.logger.Error().Str("func", "httpServer.RunServer").Msgf("HTTP server ListenAndServe: %v", err)
	}
}

func (h *httpServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		// ошибки закрытия Listener
		h.logger.Error().Str("func", "httpServer.Shutdown").Msgf("HTTP server Shutdown: %v", err)
	}
}
