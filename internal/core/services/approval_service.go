package services

import (
	"context"
	"errors"
	"time"

	"bps-peka/internal/adapters/persistence/models"
	"bps-peka/internal/adapters/persistence/repositories"
	"bps-peka/internal/core/domain"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Approval errors
var (
	ErrNotKepalaSatker = errors.New("only kepala satker may review entries")
)

// ApprovalService implements the review protocol: listing the pending queue
// and recording approve/reject decisions.
type ApprovalService struct {
	entryRepo   repositories.WorkEntryRepository
	profileRepo repositories.ProfileRepository
	feed        ChangeFeedPublisher
}

// NewApprovalService creates a new approval service
func NewApprovalService(
	entryRepo repositories.WorkEntryRepository,
	profileRepo repositories.ProfileRepository,
	feed ChangeFeedPublisher,
) *ApprovalService {
	return &ApprovalService{
		entryRepo:   entryRepo,
		profileRepo: profileRepo,
		feed:        feed,
	}
}

// ListPending lists entries awaiting review with owner profiles joined,
// newest date first.
func (s *ApprovalService) ListPending(ctx context.Context, reviewerID uint, offset, limit int) ([]*models.WorkEntry, int64, error) {
	if err := s.verifyReviewer(ctx, reviewerID); err != nil {
		return nil, 0, err
	}
	return s.entryRepo.ListPendingWithOwner(ctx, offset, limit)
}

// Decide records an approve/reject decision on an entry. The reviewer's role
// is re-read from the profiles table at decision time rather than trusted
// from stale client state. Re-deciding an already reviewed entry is allowed;
// last write wins. The post-update row is published on the change feed.
func (s *ApprovalService) Decide(ctx context.Context, reviewerID uint, entryID string, approved bool) (*models.WorkEntry, error) {
	// 1. Re-verify the caller is kepala satker
	if err := s.verifyReviewer(ctx, reviewerID); err != nil {
		return nil, err
	}

	// 2. Load the target entry
	entry, err := s.entryRepo.GetByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}

	// 3. Apply the decision
	now := time.Now()
	entry.Approved = &approved
	entry.UpdatedAt = &now
	if err := s.entryRepo.Update(ctx, entry); err != nil {
		return nil, err
	}

	// 4. Push the post-update row to subscribers
	s.feed.PublishEntryUpdate(entry)

	decision := "rejected"
	if approved {
		decision = "approved"
	}
	log.Printf("✅ Work entry %s: %s (reviewer %d)", decision, entry.ID, reviewerID)
	return entry, nil
}

func (s *ApprovalService) verifyReviewer(ctx context.Context, reviewerID uint) error {
	profile, err := s.profileRepo.GetByID(ctx, reviewerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotKepalaSatker
		}
		return err
	}
	if profile.Role != string(domain.RoleKepalaSatker) {
		return ErrNotKepalaSatker
	}
	return nil
}
