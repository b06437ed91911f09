package services

import (
	"bps-peka/internal/adapters/persistence/models"
)

// ChangeFeedPublisher pushes row-level mutations to subscribed clients.
// Implemented by the realtime hub.
type ChangeFeedPublisher interface {
	PublishEntryUpdate(entry *models.WorkEntry)
}
