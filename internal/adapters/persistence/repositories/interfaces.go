package repositories

import (
	"context"
	"time"

	"bps-peka/internal/adapters/persistence/models"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	UpdateLastPath(ctx context.Context, id uint, path string) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// RefreshTokenRepository defines refresh token repository interface
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	GetByUserID(ctx context.Context, userID uint) ([]*models.RefreshToken, error)
	Revoke(ctx context.Context, id uint) error
	RevokeByTokenHash(ctx context.Context, tokenHash string) error
	RevokeAllByUserID(ctx context.Context, userID uint) error
	DeleteExpired(ctx context.Context) error
	CountActiveByUserID(ctx context.Context, userID uint) (int64, error)
}

// ProfileRepository defines profile repository interface
type ProfileRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Profile, error)
	Upsert(ctx context.Context, profile *models.Profile) error
	ListByRole(ctx context.Context, role string) ([]*models.Profile, error)
	ListWithApprovedEntries(ctx context.Context, role string) ([]*models.Profile, error)
}

// WorkEntryFilter narrows entry listings. Zero values mean "no filter";
// filters compose with logical AND.
type WorkEntryFilter struct {
	UserID   uint
	UserIDs  []uint
	Approved *bool
	Pending  bool
	DateFrom time.Time
	DateTo   time.Time
}

// WorkEntryRepository defines work entry repository interface
type WorkEntryRepository interface {
	Create(ctx context.Context, entry *models.WorkEntry) error
	GetByID(ctx context.Context, id string) (*models.WorkEntry, error)
	Update(ctx context.Context, entry *models.WorkEntry) error
	Delete(ctx context.Context, id string) error
	ListByOwner(ctx context.Context, userID uint) ([]*models.WorkEntry, error)
	ListPendingWithOwner(ctx context.Context, offset, limit int) ([]*models.WorkEntry, int64, error)
	List(ctx context.Context, filter WorkEntryFilter) ([]*models.WorkEntry, error)
	ListWithOwner(ctx context.Context, filter WorkEntryFilter) ([]*models.WorkEntry, error)
}
