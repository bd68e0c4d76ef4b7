package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"vitatrack/internal/planner"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

// wsConnection relays plan generation updates to one client.
type wsConnection struct {
	conn *websocket.Conn
	send chan []byte
	log  *zap.Logger
}

// handleWebSocket upgrades the connection and streams plan status updates as
// the background worker finishes generating them.
func (s *Server) handleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.log.Warn("failed to upgrade connection", zap.Error(err))
		return
	}

	ws := &wsConnection{
		conn: conn,
		send: make(chan []byte, 256),
		log:  s.log,
	}

	updates := s.worker.Subscribe()
	go ws.relay(updates)
	go ws.writePump()
	go ws.readPump(func() { s.worker.Unsubscribe(updates) })
}

// relay forwards worker updates into the send buffer, dropping when full.
func (c *wsConnection) relay(updates chan planner.Update) {
	for update := range updates {
		data, err := json.Marshal(update)
		if err != nil {
			c.log.Warn("failed to marshal plan update", zap.Error(err))
			continue
		}
		select {
		case c.send <- data:
		default:
			c.log.Warn("websocket buffer full, dropping update")
		}
	}
	close(c.send)
}

// readPump drains client frames until the connection drops, then unsubscribes.
func (c *wsConnection) readPump(onClose func()) {
	defer func() {
		onClose()
		c.conn.Close()
	}()

	c.conn.SetReadLimit(4 * 1024)
	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.log.Warn("websocket read error", zap.Error(err))
			}
			return
		}
	}
}

// writePump pushes buffered updates and keepalive pings to the client.
func (c *wsConnection) writePump() {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
