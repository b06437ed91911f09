package services

import (
	"context"
	"testing"

	"bps-peka/internal/core/domain"

	"github.com/stretchr/testify/require"
)

func TestSaveDefaultsRoleToPegawai(t *testing.T) {
	ctx := context.Background()
	svc := NewProfileService(newFakeProfileRepo())

	profile, err := svc.Save(ctx, 7, &SaveProfileInput{
		FullName: "Budi Santoso",
		NIP:      "123",
		Position: "Statistisi Ahli Pertama",
	})
	require.NoError(t, err)
	require.Equal(t, uint(7), profile.ID)
	require.Equal(t, string(domain.RolePegawai), profile.Role)
}

func TestSaveRejectsUnknownRole(t *testing.T) {
	ctx := context.Background()
	repo := newFakeProfileRepo()
	svc := NewProfileService(repo)

	_, err := svc.Save(ctx, 7, &SaveProfileInput{
		FullName: "Budi Santoso",
		NIP:      "123",
		Position: "Statistisi Ahli Pertama",
		Role:     "admin",
	})
	require.ErrorIs(t, err, ErrInvalidRole)

	// Nothing persisted on rejection.
	_, err = svc.Get(ctx, 7)
	require.ErrorIs(t, err, ErrProfileNotFound)
}

func TestSaveClearsDepartmentForHeadPosition(t *testing.T) {
	ctx := context.Background()
	svc := NewProfileService(newFakeProfileRepo())

	profile, err := svc.Save(ctx, 2, &SaveProfileInput{
		FullName:   "Kepala BPS Kabupaten Buru",
		NIP:        "456",
		Department: "IPDS",
		Position:   domain.HeadPosition,
		Role:       string(domain.RoleKepalaSatker),
	})
	require.NoError(t, err)
	require.Empty(t, profile.Department)
	require.Equal(t, string(domain.RoleKepalaSatker), profile.Role)
}
