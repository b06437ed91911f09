package domain

import "time"

// Role represents a profile role in the system
type Role string

const (
	RolePegawai      Role = "pegawai"
	RoleKepalaSatker Role = "kepala_satker"
)

// Entry status (self-reported progress, independent of approval)
const (
	StatusSelesai = "selesai"
	StatusProses  = "proses"
)

// Valid work entry units
var Units = []string{"dokumen", "kegiatan", "laporan", "paket", "file"}

// HeadPosition is the unit head position. A profile holding it carries no
// department.
const HeadPosition = "Kepala BPS Kabupaten Buru"

// User represents an auth account in the domain layer
type User struct {
	ID        uint
	Email     string
	Password  string // Hashed
	IsActive  bool
	LastPath  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Profile completes an account into a usable application identity.
// It exists if and only if the user finished onboarding.
type Profile struct {
	ID         uint // = User.ID
	FullName   string
	NIP        string
	Department string
	Position   string
	Role       Role
}

// WorkEntry is one day's logged unit of work by an employee.
// Approved is nil while the entry awaits review.
type WorkEntry struct {
	ID          string
	UserID      uint
	Date        time.Time
	Duration    float64
	Volume      int
	Unit        string
	Description string
	Status      string
	Approved    *bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// IsPending reports whether the entry still awaits a review decision.
func (e *WorkEntry) IsPending() bool {
	return e.Approved == nil
}

// RefreshToken represents a refresh token in the domain
type RefreshToken struct {
	ID        uint
	UserID    uint
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// TokenPair represents access and refresh tokens
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// ValidUnit checks a unit value against the known set
func ValidUnit(unit string) bool {
	for _, u := range Units {
		if u == unit {
			return true
		}
	}
	return false
}
