package repositories

import (
	"context"

	"bps-peka/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// workEntryRepository implements WorkEntryRepository interface
type workEntryRepository struct {
	db *gorm.DB
}

// NewWorkEntryRepository creates a new work entry repository
func NewWorkEntryRepository(db *gorm.DB) WorkEntryRepository {
	return &workEntryRepository{db: db}
}

// Create creates a new work entry
func (r *workEntryRepository) Create(ctx context.Context, entry *models.WorkEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// GetByID gets a work entry by ID
func (r *workEntryRepository) GetByID(ctx context.Context, id string) (*models.WorkEntry, error) {
	var entry models.WorkEntry
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Update updates a work entry
func (r *workEntryRepository) Update(ctx context.Context, entry *models.WorkEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

// Delete removes a work entry by ID. Hard delete, no undo.
func (r *workEntryRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.WorkEntry{}, "id = ?", id).Error
}

// ListByOwner lists all entries owned by a user, newest date first
func (r *workEntryRepository) ListByOwner(ctx context.Context, userID uint) ([]*models.WorkEntry, error) {
	var entries []*models.WorkEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&entries).Error
	return entries, err
}

// ListPendingWithOwner lists entries awaiting review with the owner profile
// joined, newest date first, paginated
func (r *workEntryRepository) ListPendingWithOwner(ctx context.Context, offset, limit int) ([]*models.WorkEntry, int64, error) {
	var entries []*models.WorkEntry
	var total int64

	if err := r.db.WithContext(ctx).
		Model(&models.WorkEntry{}).
		Where("approved IS NULL").
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("Owner").
		Where("approved IS NULL").
		Order("date DESC").
		Offset(offset).
		Limit(limit).
		Find(&entries).Error

	return entries, total, err
}

// List lists entries matching the filter, newest date first
func (r *workEntryRepository) List(ctx context.Context, filter WorkEntryFilter) ([]*models.WorkEntry, error) {
	var entries []*models.WorkEntry
	err := r.applyFilter(r.db.WithContext(ctx), filter).
		Order("date DESC").
		Find(&entries).Error
	return entries, err
}

// ListWithOwner lists entries matching the filter with owner profiles joined
func (r *workEntryRepository) ListWithOwner(ctx context.Context, filter WorkEntryFilter) ([]*models.WorkEntry, error) {
	var entries []*models.WorkEntry
	err := r.applyFilter(r.db.WithContext(ctx).Preload("Owner"), filter).
		Order("date DESC").
		Find(&entries).Error
	return entries, err
}

func (r *workEntryRepository) applyFilter(tx *gorm.DB, filter WorkEntryFilter) *gorm.DB {
	if filter.UserID != 0 {
		tx = tx.Where("user_id = ?", filter.UserID)
	}
	if len(filter.UserIDs) > 0 {
		tx = tx.Where("user_id IN ?", filter.UserIDs)
	}
	if filter.Pending {
		tx = tx.Where("approved IS NULL")
	} else if filter.Approved != nil {
		tx = tx.Where("approved = ?", *filter.Approved)
	}
	if !filter.DateFrom.IsZero() {
		tx = tx.Where("date >= ?", filter.DateFrom.Format("2006-01-02"))
	}
	if !filter.DateTo.IsZero() {
		tx = tx.Where("date <= ?", filter.DateTo.Format("2006-01-02"))
	}
	return tx
}
