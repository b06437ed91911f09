package handlers

import (
	"bps-peka/internal/adapters/realtime"
	"bps-peka/internal/core/domain"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// RealtimeHandler upgrades clients onto the entry change feed
type RealtimeHandler struct {
	hub *realtime.Hub
}

// NewRealtimeHandler creates a new realtime handler
func NewRealtimeHandler(hub *realtime.Hub) *RealtimeHandler {
	return &RealtimeHandler{hub: hub}
}

// Upgrade gates the websocket handshake behind the auth middleware
func (h *RealtimeHandler) Upgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	return c.Next()
}

// Feed streams entry change events to the caller
// @Summary Entry change feed
// @Description Stream work entry changes; pegawai receive their own rows, kepala satker receives all
// @Tags Websocket
// @Param Authorization header string true "Authorization token"
// @Success 101
// @Failure 401
// @Router /ws/entries [get]
func (h *RealtimeHandler) Feed(c *websocket.Conn) {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		_ = c.Close()
		return
	}
	role, _ := c.Locals("role").(string)

	h.hub.AddClient(userID, domain.Role(role), c)
	defer h.hub.DeleteClient(userID, c)

	// Hold the connection open; inbound frames are ignored.
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}
