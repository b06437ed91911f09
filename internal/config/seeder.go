package config

import (
	"bps-peka/internal/adapters/persistence/models"
	"bps-peka/internal/pkg/password"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedKepalaAccount(); err != nil {
		log.Printf("⚠️ Kepala seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedKepalaAccount seeds a default kepala satker account so entries can be
// reviewed on a fresh install. Development convenience only; production
// installs create the kepala through onboarding.
func (s *Seeder) seedKepalaAccount() error {
	var count int64
	s.db.Model(&models.Profile{}).Where("role = ?", "kepala_satker").Count(&count)
	if count > 0 {
		return nil // kepala already exists
	}

	hashedPassword, err := password.Hash("kepala123456")
	if err != nil {
		return err
	}

	user := &models.User{
		Email:    "kepala@bps.go.id",
		Password: hashedPassword,
		IsActive: true,
	}
	if err := s.db.Create(user).Error; err != nil {
		return err
	}

	profile := &models.Profile{
		ID:       user.ID,
		FullName: "Kepala BPS Kabupaten Buru",
		NIP:      "000000000000000000",
		Position: "Kepala BPS Kabupaten Buru",
		Role:     "kepala_satker",
	}
	if err := s.db.Create(profile).Error; err != nil {
		return err
	}

	log.Printf("✅ Kepala account created: %s", user.Email)
	return nil
}
