package realtime

import (
	"sync"

	"bps-peka/internal/adapters/persistence/models"
	"bps-peka/internal/core/domain"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"
)

// EntryEvent is the message pushed to subscribed clients whenever a work
// entry changes state.
type EntryEvent struct {
	Event string                    `json:"event"`
	Entry *models.WorkEntryResponse `json:"entry"`
}

// Hub fans entry change events out to connected websocket clients. A pegawai
// subscriber only ever receives rows they own; a kepala satker subscriber
// receives every row. One session per user; a reconnect replaces the old one.
type Hub struct {
	mu      sync.RWMutex
	clients map[uint]*clientSession
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{clients: map[uint]*clientSession{}}
}

// AddClient registers a connection for a user, replacing any previous session.
func (h *Hub) AddClient(userID uint, role domain.Role, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if old, ok := h.clients[userID]; ok {
		old.stop()
	}
	h.clients[userID] = newSession(userID, role, conn)
	log.Printf("🔌 Change feed client connected: user %d (%s)", userID, role)
}

// DeleteClient drops a user's session, but only when the stored session
// still belongs to the given connection. A handler cleaning up after being
// replaced by a reconnect must not tear down the replacement.
func (h *Hub) DeleteClient(userID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	sess, ok := h.clients[userID]
	if !ok || sess.conn != conn {
		return
	}
	delete(h.clients, userID)
	sess.stop()
	close(sess.sendCh)
	log.Printf("🔌 Change feed client disconnected: user %d", userID)
}

// PublishEntryUpdate delivers an entry change to the owner and to every
// connected kepala satker. Delivery is best effort; a saturated session is
// skipped rather than blocking the caller.
func (h *Hub) PublishEntryUpdate(entry *models.WorkEntry) {
	event := EntryEvent{Event: "entry_updated", Entry: entry.ToResponse()}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, sess := range h.clients {
		if sess.userID != entry.UserID && sess.role != domain.RoleKepalaSatker {
			continue
		}
		select {
		case sess.sendCh <- event:
		default:
			log.Printf("⚠️ Change feed session saturated, dropping event for user %d", sess.userID)
		}
	}
}

// ConnectedCount reports the number of live sessions.
func (h *Hub) ConnectedCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
