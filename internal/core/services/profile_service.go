package services

import (
	"context"
	"errors"

	"bps-peka/internal/adapters/persistence/models"
	"bps-peka/internal/adapters/persistence/repositories"
	"bps-peka/internal/core/domain"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Profile errors
var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrInvalidRole     = errors.New("invalid role")
)

// ProfileService handles onboarding and profile maintenance
type ProfileService struct {
	profileRepo repositories.ProfileRepository
}

// NewProfileService creates a new profile service
func NewProfileService(profileRepo repositories.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// SaveProfileInput represents profile completion input
type SaveProfileInput struct {
	FullName   string `json:"full_name" validate:"required"`
	NIP        string `json:"nip" validate:"required"`
	Department string `json:"department"`
	Position   string `json:"position" validate:"required"`
	Role       string `json:"role" validate:"omitempty,oneof=pegawai kepala_satker"`
}

// Get fetches the caller's own profile
func (s *ProfileService) Get(ctx context.Context, userID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

// Save inserts or updates the caller's profile, keyed by the user id. The
// head position carries no department, so it is cleared on save.
func (s *ProfileService) Save(ctx context.Context, userID uint, input *SaveProfileInput) (*models.Profile, error) {
	role := input.Role
	switch role {
	case "":
		role = string(domain.RolePegawai)
	case string(domain.RolePegawai), string(domain.RoleKepalaSatker):
	default:
		return nil, ErrInvalidRole
	}

	department := input.Department
	if input.Position == domain.HeadPosition {
		department = ""
	}

	profile := &models.Profile{
		ID:         userID,
		FullName:   input.FullName,
		NIP:        input.NIP,
		Department: department,
		Position:   input.Position,
		Role:       role,
	}
	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, err
	}

	log.Printf("✅ Profile saved for user %d (%s)", userID, profile.FullName)
	return profile, nil
}
