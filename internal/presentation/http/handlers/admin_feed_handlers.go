package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/royalacademy/academy-go/internal/application/services"
	"github.com/royalacademy/academy-go/internal/infrastructure/messaging"
	"github.com/royalacademy/academy-go/internal/infrastructure/observability/logging"
)

var feedUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// AdminFeedHandlers upgrades admin dashboard connections onto the live
// bucket-activity feed.
type AdminFeedHandlers struct {
	feed        *messaging.AdminFeed
	authService *services.AuthService
	logger      *logging.ChanneledLogger
}

// NewAdminFeedHandlers creates the admin feed websocket handlers.
func NewAdminFeedHandlers(feed *messaging.AdminFeed, authService *services.AuthService, logger *logging.ChanneledLogger) *AdminFeedHandlers {
	return &AdminFeedHandlers{
		feed:        feed,
		authService: authService,
		logger:      logger,
	}
}

// Connect handles GET /api/v1/admin/feed. The admin token rides the token
// query parameter because browsers cannot set headers on websocket dials.
func (h *AdminFeedHandlers) Connect(c *gin.Context) {
	if !h.authService.Validate(c.Query("token")) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
		return
	}

	conn, err := feedUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.SSE().Error("Admin feed upgrade failed", "error", err.Error())
		return
	}

	client := &messaging.AdminClient{
		Conn: conn,
		Send: make(chan []byte, 16),
	}
	h.feed.Register(client)

	go h.writePump(client)
	go h.readPump(client)
}

func (h *AdminFeedHandlers) writePump(client *messaging.AdminClient) {
	ticker := time.NewTicker(45 * time.Second)
	defer func() {
		ticker.Stop()
		client.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-client.Send:
			if !ok {
				client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := client.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			if err := client.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump drains client frames so pings are answered and a closed socket
// unregisters the client.
func (h *AdminFeedHandlers) readPump(client *messaging.AdminClient) {
	defer func() {
		h.feed.Unregister(client)
		client.Conn.Close()
	}()

	client.Conn.SetReadLimit(512)
	for {
		if _, _, err := client.Conn.ReadMessage(); err != nil {
			return
		}
	}
}
