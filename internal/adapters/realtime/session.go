package realtime

import (
	"context"
	"time"

	"bps-peka/internal/core/domain"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"
)

type clientSession struct {
	userID uint
	role   domain.Role
	conn   *websocket.Conn

	// Outbound events, buffered.
	sendCh chan EntryEvent
	stop   func()
}

func newSession(userID uint, role domain.Role, conn *websocket.Conn) *clientSession {
	ctx, cancelFn := context.WithCancel(context.Background())
	sess := &clientSession{
		userID: userID,
		role:   role,
		conn:   conn,
		sendCh: make(chan EntryEvent, 8),
		stop:   cancelFn,
	}
	go sess.startSend(ctx)
	return sess
}

func (s *clientSession) startSend(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			s.close()
			return
		case event, opened := <-s.sendCh:
			if !opened {
				return
			}
			if err := s.send(event); err != nil {
				log.WithError(err).Error("failed to push change feed event")
			}
		}
	}
}

func (s *clientSession) send(event EntryEvent) error {
	if s.conn == nil || s.conn.Conn == nil {
		return nil
	}
	return s.conn.WriteJSON(event)
}

func (s *clientSession) close() {
	if s.conn == nil || s.conn.Conn == nil {
		return
	}
	err := s.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Millisecond))
	if err != nil {
		log.WithError(err).Error("cant close change feed session")
	}
}
