package server

import (
	"net/http"
	"testing"

	"github.com/mkhailov/go-storage-sync/internal/config"
	"github.com/mkhailov/go-storage-sync/internal/handler"
	"github.com/mkhailov/go-storage-sync/internal/logger"
	"github.com/mkhailov/go-storage-sync/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer_Success(t *testing.T) {
	cfg := config.Server{HTTPAddress: "localhost:8080"}
	handlers, err := handler.NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, srv)
}

func TestNewServer_NoAddress(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	require.Error(t, err)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestHTTPServer_ShutdownWithoutRun(t *testing.T) {
	h := newHTTPServer(http.NewServeMux(), config.Server{HTTPAddress: "localhost:0"}, logger.Nop())

	// Shutdown до старта не должен паниковать или зависать
	h.Shutdown()
}
