package services

import (
	"context"
	"testing"

	"bps-peka/internal/core/aggregate"

	"github.com/stretchr/testify/require"
)

func emptyFilter() aggregate.Filter { return aggregate.Filter{} }

func validInput(date string) *EntryInput {
	return &EntryInput{
		Date:        date,
		Duration:    2,
		Volume:      1,
		Unit:        "dokumen",
		Description: "uraian pekerjaan",
		Status:      "selesai",
	}
}

func TestCreateForcesPendingApproval(t *testing.T) {
	ctx := context.Background()
	entries, _, _, _, _ := reviewFixture()

	entry, err := entries.Create(ctx, 1, validInput("2024-03-01"))
	require.NoError(t, err)
	require.NotEmpty(t, entry.ID)
	require.Nil(t, entry.Approved)
	require.Nil(t, entry.UpdatedAt)
	require.False(t, entry.CreatedAt.IsZero())
}

func TestCreateValidatesUnitAndStatus(t *testing.T) {
	ctx := context.Background()
	entries, _, _, _, _ := reviewFixture()

	input := validInput("2024-03-01")
	input.Unit = "lembar"
	_, err := entries.Create(ctx, 1, input)
	require.ErrorIs(t, err, ErrInvalidUnit)

	input = validInput("2024-03-01")
	input.Status = "done"
	_, err = entries.Create(ctx, 1, input)
	require.ErrorIs(t, err, ErrInvalidStatus)

	input = validInput("bukan-tanggal")
	_, err = entries.Create(ctx, 1, input)
	require.Error(t, err)
}

func TestUpdateOwnerAndPendingOnly(t *testing.T) {
	ctx := context.Background()
	entries, approvals, _, _, _ := reviewFixture()

	entry, err := entries.Create(ctx, 1, validInput("2024-03-01"))
	require.NoError(t, err)

	// Another user cannot edit.
	_, err = entries.Update(ctx, 3, entry.ID, validInput("2024-03-02"))
	require.ErrorIs(t, err, ErrEntryNotOwned)

	// The owner can, and the update timestamp is set.
	updated, err := entries.Update(ctx, 1, entry.ID, validInput("2024-03-02"))
	require.NoError(t, err)
	require.Equal(t, "2024-03-02", updated.Date.Format("2006-01-02"))
	require.NotNil(t, updated.UpdatedAt)

	// Once reviewed, content is frozen for the owner.
	_, err = approvals.Decide(ctx, 2, entry.ID, true)
	require.NoError(t, err)
	_, err = entries.Update(ctx, 1, entry.ID, validInput("2024-03-03"))
	require.ErrorIs(t, err, ErrEntryNotPending)
}

func TestDeleteOwnerAndPendingOnly(t *testing.T) {
	ctx := context.Background()
	entries, approvals, _, _, _ := reviewFixture()

	entry, err := entries.Create(ctx, 1, validInput("2024-03-01"))
	require.NoError(t, err)

	require.ErrorIs(t, entries.Delete(ctx, 3, entry.ID), ErrEntryNotOwned)

	_, err = approvals.Decide(ctx, 2, entry.ID, false)
	require.NoError(t, err)
	require.ErrorIs(t, entries.Delete(ctx, 1, entry.ID), ErrEntryNotPending)
}

func TestListOwnAppliesFilters(t *testing.T) {
	ctx := context.Background()
	entries, _, _, _, _ := reviewFixture()

	a := validInput("2024-03-01")
	a.Description = "menyusun laporan bulanan"
	b := validInput("2024-03-02")
	b.Description = "entri harian"
	b.Status = "proses"

	_, err := entries.Create(ctx, 1, a)
	require.NoError(t, err)
	_, err = entries.Create(ctx, 1, b)
	require.NoError(t, err)
	_, err = entries.Create(ctx, 9, validInput("2024-03-01")) // someone else's
	require.NoError(t, err)

	all, err := entries.ListOwn(ctx, 1, emptyFilter())
	require.NoError(t, err)
	require.Len(t, all, 2)
	// Newest date first.
	require.Equal(t, "2024-03-02", all[0].Date.Format("2006-01-02"))

	filtered, err := entries.ListOwn(ctx, 1, aggregate.Filter{Search: "LAPORAN"})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	require.Equal(t, "menyusun laporan bulanan", filtered[0].Description)

	filtered, err = entries.ListOwn(ctx, 1, aggregate.Filter{Status: "proses", Date: "2024-03-02"})
	require.NoError(t, err)
	require.Len(t, filtered, 1)

	filtered, err = entries.ListOwn(ctx, 1, aggregate.Filter{Status: "proses", Date: "2024-03-01"})
	require.NoError(t, err)
	require.Empty(t, filtered)
}

func TestEmployeeDashboardSummary(t *testing.T) {
	ctx := context.Background()
	entries, approvals, dashboards, _, _ := reviewFixture()

	first, err := entries.Create(ctx, 1, validInput("2024-03-01"))
	require.NoError(t, err)
	proses := validInput("2024-03-02")
	proses.Status = "proses"
	_, err = entries.Create(ctx, 1, proses)
	require.NoError(t, err)

	_, err = approvals.Decide(ctx, 2, first.ID, true)
	require.NoError(t, err)

	dash, err := dashboards.GetEmployeeDashboard(ctx, 1, emptyFilter())
	require.NoError(t, err)
	require.Len(t, dash.Entries, 2)
	require.Equal(t, 1, dash.Approved)
	require.Equal(t, 1, dash.Selesai)
	require.Equal(t, 1, dash.Proses)

	// Filtering narrows the list but never the summary numbers.
	dash, err = dashboards.GetEmployeeDashboard(ctx, 1, aggregate.Filter{Status: "proses"})
	require.NoError(t, err)
	require.Len(t, dash.Entries, 1)
	require.Equal(t, 1, dash.Selesai)
}
