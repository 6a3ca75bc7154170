package api

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Dashboards connect from arbitrary origins in the demo setup
		return true
	},
}

// handleWebSocket handles GET /ws: it upgrades the connection and
// registers the client with the hub. The stream is push-only.
func (s *Server) handleWebSocket(c echo.Context) error {
	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return err
	}

	client := &Client{
		hub:  s.wsHub,
		conn: ws,
		send: make(chan []byte, 256),
	}

	client.hub.register <- client

	go client.writePump()
	go client.readPump()

	return nil
}

// websocketStats handles GET /api/ws/stats
func (s *Server) websocketStats(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"connected_clients": s.wsHub.ClientCount(),
		"status":            "operational",
	})
}
