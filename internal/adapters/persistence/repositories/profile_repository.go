package repositories

import (
	"context"

	"bps-peka/internal/adapters/persistence/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// profileRepository implements ProfileRepository interface
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// GetByID gets a profile by user ID
func (r *profileRepository) GetByID(ctx context.Context, id uint) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Upsert inserts or updates a profile keyed by user ID
func (r *profileRepository) Upsert(ctx context.Context, profile *models.Profile) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"full_name", "nip", "department", "position", "role"}),
		}).
		Create(profile).Error
}

// ListByRole lists profiles by role ordered by name
func (r *profileRepository) ListByRole(ctx context.Context, role string) ([]*models.Profile, error) {
	var profiles []*models.Profile
	err := r.db.WithContext(ctx).
		Where("role = ?", role).
		Order("full_name ASC").
		Find(&profiles).Error
	return profiles, err
}

// ListWithApprovedEntries lists profiles of the given role owning at least
// one approved entry, ordered by name
func (r *profileRepository) ListWithApprovedEntries(ctx context.Context, role string) ([]*models.Profile, error) {
	var profiles []*models.Profile
	err := r.db.WithContext(ctx).
		Where("role = ?", role).
		Where("id IN (?)", r.db.Table("work_entries").Select("DISTINCT user_id").Where("approved = ?", true)).
		Order("full_name ASC").
		Find(&profiles).Error
	return profiles, err
}
