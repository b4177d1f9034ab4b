package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/avc/marcianos-loyalty/internal/notifier"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWSHandler_Subscribe(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	hub := notifier.NewHub(16, logger)
	defer hub.Close()

	handler := NewWSHandler(hub, logger)

	t.Run("Plain HTTP request is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ws", nil)
		w := httptest.NewRecorder()

		handler.Subscribe(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "No es una conexión WebSocket")
	})

	t.Run("Upgrade registers subscriber", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(handler.Subscribe))
		defer srv.Close()

		url := "ws" + strings.TrimPrefix(srv.URL, "http")
		conn, _, err := websocket.DefaultDialer.Dial(url, nil)
		require.NoError(t, err)
		defer conn.Close()

		assert.Eventually(t, func() bool {
			return hub.ClientCount() == 1
		}, 2*time.Second, 10*time.Millisecond)
	})
}
