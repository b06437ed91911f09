package models

import (
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Auth tables
// ============================================================

// User represents users table (auth account only; identity lives in Profile)
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Email     string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	LastPath  string         `gorm:"size:100;default:'/dashboard'" json:"last_path"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse DTO
type UserResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	LastPath  string    `json:"last_path"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		IsActive:  u.IsActive,
		LastPath:  u.LastPath,
		CreatedAt: u.CreatedAt,
	}
}

// RefreshToken represents refresh_tokens table
type RefreshToken struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"index;not null" json:"user_id"`
	TokenHash string     `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt *time.Time `gorm:"index" json:"revoked_at"`
	User      User       `gorm:"foreignKey:UserID" json:"-"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// ============================================================
// Profile table
// ============================================================

// Profile represents profiles table. One row per onboarded user, keyed by the
// user id. Absence of a row means onboarding is incomplete.
type Profile struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FullName   string    `gorm:"size:100;not null" json:"full_name"`
	NIP        string    `gorm:"column:nip;size:30;not null" json:"nip"`
	Department string    `gorm:"size:50" json:"department"`
	Position   string    `gorm:"size:50;not null" json:"position"`
	Role       string    `gorm:"size:20;not null;default:'pegawai';index" json:"role"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
	User       User      `gorm:"foreignKey:ID" json:"-"`
}

func (Profile) TableName() string {
	return "profiles"
}

// ProfileResponse DTO
type ProfileResponse struct {
	ID         uint   `json:"id"`
	FullName   string `json:"full_name"`
	NIP        string `json:"nip"`
	Department string `json:"department"`
	Position   string `json:"position"`
	Role       string `json:"role"`
}

func (p *Profile) ToResponse() *ProfileResponse {
	return &ProfileResponse{
		ID:         p.ID,
		FullName:   p.FullName,
		NIP:        p.NIP,
		Department: p.Department,
		Position:   p.Position,
		Role:       p.Role,
	}
}

// ============================================================
// Work entry table
// ============================================================

// WorkEntry represents work_entries table
type WorkEntry struct {
	ID          string     `gorm:"primaryKey;size:36" json:"id"`
	UserID      uint       `gorm:"not null;index" json:"user_id"`
	Date        time.Time  `gorm:"type:date;not null;index" json:"date"`
	Duration    float64    `gorm:"type:decimal(5,2);not null" json:"duration"`
	Volume      int        `gorm:"not null" json:"volume"`
	Unit        string     `gorm:"size:20;not null" json:"unit"`
	Description string     `gorm:"type:text;not null" json:"description"`
	Status      string     `gorm:"size:20;not null" json:"status"`
	Approved    *bool      `gorm:"index" json:"approved"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   *time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`

	// Relations
	Owner *Profile `gorm:"foreignKey:UserID;references:ID" json:"profile,omitempty"`
}

func (WorkEntry) TableName() string {
	return "work_entries"
}

// WorkEntryResponse DTO. Date is rendered as a bare calendar day, the way the
// backing column stores it.
type WorkEntryResponse struct {
	ID          string           `json:"id"`
	UserID      uint             `json:"user_id"`
	Date        string           `json:"date"`
	Duration    float64          `json:"duration"`
	Volume      int              `json:"volume"`
	Unit        string           `json:"unit"`
	Description string           `json:"description"`
	Status      string           `json:"status"`
	Approved    *bool            `json:"approved"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   *time.Time       `json:"updated_at"`
	Owner       *ProfileResponse `json:"profile,omitempty"`
}

func (e *WorkEntry) ToResponse() *WorkEntryResponse {
	resp := &WorkEntryResponse{
		ID:          e.ID,
		UserID:      e.UserID,
		Date:        e.Date.Format("2006-01-02"),
		Duration:    e.Duration,
		Volume:      e.Volume,
		Unit:        e.Unit,
		Description: e.Description,
		Status:      e.Status,
		Approved:    e.Approved,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
	if e.Owner != nil {
		resp.Owner = e.Owner.ToResponse()
	}
	return resp
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&RefreshToken{},
		&Profile{},
		&WorkEntry{},
	)
}
