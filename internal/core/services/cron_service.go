package services

import (
	"context"

	"bps-peka/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

// CronService runs scheduled maintenance jobs. Today that is the nightly
// purge of expired refresh tokens; revoked rows are kept for audit.
type CronService struct {
	cron             *cron.Cron
	refreshTokenRepo repositories.RefreshTokenRepository
}

// NewCronService creates a new cron service
func NewCronService(refreshTokenRepo repositories.RefreshTokenRepository) *CronService {
	return &CronService{
		cron:             cron.New(),
		refreshTokenRepo: refreshTokenRepo,
	}
}

// Start schedules the jobs and launches the scheduler.
func (s *CronService) Start() {
	// Purge expired refresh tokens daily at 03:00
	if _, err := s.cron.AddFunc("0 3 * * *", s.purgeExpiredTokens); err != nil {
		log.Printf("⚠️ Failed to schedule token purge: %v", err)
		return
	}
	s.cron.Start()
	log.Println("🚀 Cron service started")
}

// Stop halts the scheduler; a job already running finishes on its own.
func (s *CronService) Stop() {
	s.cron.Stop()
	log.Println("🛑 Cron service stopped")
}

func (s *CronService) purgeExpiredTokens() {
	if err := s.refreshTokenRepo.DeleteExpired(context.Background()); err != nil {
		log.Printf("⚠️ Failed to purge expired refresh tokens: %v", err)
		return
	}
	log.Println("🧹 Expired refresh tokens purged")
}
