package realtime

import (
	"testing"
	"time"

	"bps-peka/internal/adapters/persistence/models"
	"bps-peka/internal/core/domain"

	"github.com/gofiber/contrib/websocket"
	"github.com/stretchr/testify/require"
)

func TestHubSessionLifecycle(t *testing.T) {
	hub := NewHub()
	require.Zero(t, hub.ConnectedCount())

	hub.AddClient(1, domain.RolePegawai, nil)
	hub.AddClient(2, domain.RoleKepalaSatker, nil)
	require.Equal(t, 2, hub.ConnectedCount())

	// Reconnecting replaces the session instead of stacking a second one.
	hub.AddClient(1, domain.RolePegawai, nil)
	require.Equal(t, 2, hub.ConnectedCount())

	hub.DeleteClient(1, nil)
	hub.DeleteClient(1, nil) // idempotent
	require.Equal(t, 1, hub.ConnectedCount())
}

func TestHubReconnectKeepsReplacementSession(t *testing.T) {
	hub := NewHub()
	first := &websocket.Conn{}
	second := &websocket.Conn{}

	hub.AddClient(1, domain.RolePegawai, first)
	hub.AddClient(1, domain.RolePegawai, second)
	require.Equal(t, 1, hub.ConnectedCount())

	// The replaced handler deregisters on its way out; the live session
	// belongs to the new connection and must survive.
	hub.DeleteClient(1, first)
	require.Equal(t, 1, hub.ConnectedCount())

	hub.DeleteClient(1, second)
	require.Zero(t, hub.ConnectedCount())
}

func TestHubPublishRouting(t *testing.T) {
	hub := NewHub()
	hub.AddClient(1, domain.RolePegawai, nil)
	hub.AddClient(2, domain.RoleKepalaSatker, nil)
	hub.AddClient(3, domain.RolePegawai, nil)

	entry := &models.WorkEntry{ID: "abc", UserID: 1, Date: time.Now(), Status: "selesai"}

	// Delivery with disconnected transports must not panic or block.
	hub.PublishEntryUpdate(entry)
	hub.PublishEntryUpdate(entry)

	hub.DeleteClient(2, nil)
	hub.PublishEntryUpdate(entry)
}
