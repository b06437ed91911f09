package services

import (
	"context"
	"errors"
	"time"

	"bps-peka/internal/adapters/persistence/models"
	"bps-peka/internal/adapters/persistence/repositories"
	"bps-peka/internal/core/aggregate"
	"bps-peka/internal/core/domain"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Entry service errors
var (
	ErrEntryNotFound   = errors.New("work entry not found")
	ErrEntryNotOwned   = errors.New("work entry belongs to another user")
	ErrEntryNotPending = errors.New("work entry already reviewed")
	ErrInvalidUnit     = errors.New("invalid work entry unit")
	ErrInvalidStatus   = errors.New("invalid work entry status")
)

// EntryService handles the work entry lifecycle: creation, owner edits and
// deletion while pending, and filtered listing.
type EntryService struct {
	entryRepo repositories.WorkEntryRepository
}

// NewEntryService creates a new entry service
func NewEntryService(entryRepo repositories.WorkEntryRepository) *EntryService {
	return &EntryService{entryRepo: entryRepo}
}

// EntryInput represents create/update input for a work entry
type EntryInput struct {
	Date        string  `json:"date" validate:"required"`
	Duration    float64 `json:"duration" validate:"required,gt=0"`
	Volume      int     `json:"volume" validate:"required,gt=0"`
	Unit        string  `json:"unit" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Status      string  `json:"status" validate:"required,oneof=selesai proses"`
}

// Create submits a new entry. Approval always starts pending regardless of
// input; created timestamp is the submission time.
func (s *EntryService) Create(ctx context.Context, userID uint, input *EntryInput) (*models.WorkEntry, error) {
	date, err := s.validateInput(input)
	if err != nil {
		return nil, err
	}

	entry := &models.WorkEntry{
		ID:          uuid.New().String(),
		UserID:      userID,
		Date:        date,
		Duration:    input.Duration,
		Volume:      input.Volume,
		Unit:        input.Unit,
		Description: input.Description,
		Status:      input.Status,
		Approved:    nil,
	}
	if err := s.entryRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	log.Printf("✅ Work entry created: %s (user %d)", entry.ID, userID)
	return entry, nil
}

// Update applies new content to an entry. Only the owner may edit, and only
// while the entry awaits review; updated timestamp is the submission time.
func (s *EntryService) Update(ctx context.Context, userID uint, entryID string, input *EntryInput) (*models.WorkEntry, error) {
	date, err := s.validateInput(input)
	if err != nil {
		return nil, err
	}

	entry, err := s.getOwnedPending(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	entry.Date = date
	entry.Duration = input.Duration
	entry.Volume = input.Volume
	entry.Unit = input.Unit
	entry.Description = input.Description
	entry.Status = input.Status
	entry.UpdatedAt = &now

	if err := s.entryRepo.Update(ctx, entry); err != nil {
		return nil, err
	}

	log.Printf("✅ Work entry updated: %s (user %d)", entry.ID, userID)
	return entry, nil
}

// Delete removes an entry by identifier. Owner only, pending only; no
// soft-delete, no undo.
func (s *EntryService) Delete(ctx context.Context, userID uint, entryID string) error {
	if _, err := s.getOwnedPending(ctx, userID, entryID); err != nil {
		return err
	}
	if err := s.entryRepo.Delete(ctx, entryID); err != nil {
		return err
	}
	log.Printf("✅ Work entry deleted: %s (user %d)", entryID, userID)
	return nil
}

// ListOwn lists the caller's entries newest-date-first with the search,
// status, and date filters applied. Filtering happens in memory over the
// fetched collection, so the three dimensions compose in any order.
func (s *EntryService) ListOwn(ctx context.Context, userID uint, filter aggregate.Filter) ([]*models.WorkEntry, error) {
	entries, err := s.entryRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	if filter == (aggregate.Filter{}) {
		return entries, nil
	}
	return applyFilter(entries, filter), nil
}

func (s *EntryService) validateInput(input *EntryInput) (time.Time, error) {
	if !domain.ValidUnit(input.Unit) {
		return time.Time{}, ErrInvalidUnit
	}
	if input.Status != domain.StatusSelesai && input.Status != domain.StatusProses {
		return time.Time{}, ErrInvalidStatus
	}
	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		return time.Time{}, err
	}
	return date, nil
}

func (s *EntryService) getOwnedPending(ctx context.Context, userID uint, entryID string) (*models.WorkEntry, error) {
	entry, err := s.entryRepo.GetByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	if entry.UserID != userID {
		return nil, ErrEntryNotOwned
	}
	if entry.Approved != nil {
		return nil, ErrEntryNotPending
	}
	return entry, nil
}

// applyFilter runs the pure aggregate filter over persistence rows.
func applyFilter(entries []*models.WorkEntry, filter aggregate.Filter) []*models.WorkEntry {
	domainEntries := make([]*domain.WorkEntry, len(entries))
	byID := make(map[string]*models.WorkEntry, len(entries))
	for i, e := range entries {
		domainEntries[i] = toDomainEntry(e)
		byID[e.ID] = e
	}

	filtered := filter.Apply(domainEntries)
	result := make([]*models.WorkEntry, len(filtered))
	for i, e := range filtered {
		result[i] = byID[e.ID]
	}
	return result
}

func toDomainEntry(e *models.WorkEntry) *domain.WorkEntry {
	return &domain.WorkEntry{
		ID:          e.ID,
		UserID:      e.UserID,
		Date:        e.Date,
		Duration:    e.Duration,
		Volume:      e.Volume,
		Unit:        e.Unit,
		Description: e.Description,
		Status:      e.Status,
		Approved:    e.Approved,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func toDomainEntries(entries []*models.WorkEntry) []*domain.WorkEntry {
	result := make([]*domain.WorkEntry, len(entries))
	for i, e := range entries {
		result[i] = toDomainEntry(e)
	}
	return result
}
