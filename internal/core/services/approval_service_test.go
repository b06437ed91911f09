package services

import (
	"context"
	"testing"

	"bps-peka/internal/adapters/persistence/models"
	"bps-peka/internal/core/domain"

	"github.com/stretchr/testify/require"
)

func reviewFixture() (*EntryService, *ApprovalService, *DashboardService, *RecapService, *recordingFeed) {
	profiles := newFakeProfileRepo(
		&models.Profile{ID: 1, FullName: "Budi Santoso", NIP: "123", Department: "IPDS", Position: "Statistisi Ahli Pertama", Role: "pegawai"},
		&models.Profile{ID: 2, FullName: "Kepala BPS Kabupaten Buru", NIP: "456", Position: domain.HeadPosition, Role: "kepala_satker"},
	)
	entryRepo := newFakeEntryRepo(profiles)
	feed := &recordingFeed{}

	return NewEntryService(entryRepo),
		NewApprovalService(entryRepo, profiles, feed),
		NewDashboardService(entryRepo, profiles),
		NewRecapService(entryRepo, profiles),
		feed
}

// Full lifecycle: submission lands pending and invisible to recaps; a kepala
// decision moves it out of the queue and into the approved aggregates.
func TestSubmitThenApproveLifecycle(t *testing.T) {
	ctx := context.Background()
	entries, approvals, dashboards, recaps, feed := reviewFixture()

	entry, err := entries.Create(ctx, 1, &EntryInput{
		Date:        "2024-03-01",
		Duration:    2,
		Volume:      1,
		Unit:        "dokumen",
		Description: "X",
		Status:      "selesai",
	})
	require.NoError(t, err)
	require.Nil(t, entry.Approved)

	// Appears pending in the owner's list.
	own, err := entries.ListOwn(ctx, 1, emptyFilter())
	require.NoError(t, err)
	require.Len(t, own, 1)
	require.Nil(t, own[0].Approved)

	// Not in the approved recap, not in the monthly totals.
	recap, err := recaps.GetOwnRecap(ctx, 1, "2024-03")
	require.NoError(t, err)
	require.Empty(t, recap.Entries)

	dash, err := dashboards.GetKepalaDashboard(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, dash.Stats.Pending)
	require.Zero(t, dash.MonthlyDurations["2024-03"])

	// In the pending queue with the owner profile joined.
	queue, total, err := approvals.ListPending(ctx, 2, 0, 20)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, "Budi Santoso", queue[0].Owner.FullName)

	// Kepala approves.
	decided, err := approvals.Decide(ctx, 2, entry.ID, true)
	require.NoError(t, err)
	require.NotNil(t, decided.Approved)
	require.True(t, *decided.Approved)
	require.NotNil(t, decided.UpdatedAt)

	// The post-update row went out on the change feed.
	require.Len(t, feed.published, 1)
	require.Equal(t, entry.ID, feed.published[0].ID)

	// Gone from the pending queue.
	queue, total, err = approvals.ListPending(ctx, 2, 0, 20)
	require.NoError(t, err)
	require.Zero(t, total)
	require.Empty(t, queue)

	// Present in the approved recap and contributing 2 hours to March.
	recap, err = recaps.GetOwnRecap(ctx, 1, "2024-03")
	require.NoError(t, err)
	require.Len(t, recap.Entries, 1)

	dash, err = dashboards.GetKepalaDashboard(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, dash.Stats.Approved)
	require.Zero(t, dash.Stats.Pending)
}

func TestDecideRequiresKepalaSatker(t *testing.T) {
	ctx := context.Background()
	entries, approvals, _, _, feed := reviewFixture()

	entry, err := entries.Create(ctx, 1, validInput("2024-03-01"))
	require.NoError(t, err)

	// A pegawai cannot decide, nor can an unknown caller.
	_, err = approvals.Decide(ctx, 1, entry.ID, true)
	require.ErrorIs(t, err, ErrNotKepalaSatker)
	_, err = approvals.Decide(ctx, 99, entry.ID, true)
	require.ErrorIs(t, err, ErrNotKepalaSatker)

	// Nothing was published and the queue is unchanged.
	require.Empty(t, feed.published)
	_, total, err := approvals.ListPending(ctx, 2, 0, 20)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
}

func TestDecideUnknownEntry(t *testing.T) {
	ctx := context.Background()
	_, approvals, _, _, _ := reviewFixture()

	_, err := approvals.Decide(ctx, 2, "tidak-ada", true)
	require.ErrorIs(t, err, ErrEntryNotFound)
}

func TestRedecisionFlipsApproval(t *testing.T) {
	ctx := context.Background()
	entries, approvals, _, _, _ := reviewFixture()

	entry, err := entries.Create(ctx, 1, validInput("2024-03-01"))
	require.NoError(t, err)

	_, err = approvals.Decide(ctx, 2, entry.ID, true)
	require.NoError(t, err)

	// Re-deciding is allowed; last write wins.
	decided, err := approvals.Decide(ctx, 2, entry.ID, false)
	require.NoError(t, err)
	require.False(t, *decided.Approved)
}

func TestListPendingRequiresKepalaSatker(t *testing.T) {
	ctx := context.Background()
	_, approvals, _, _, _ := reviewFixture()

	_, _, err := approvals.ListPending(ctx, 1, 0, 20)
	require.ErrorIs(t, err, ErrNotKepalaSatker)
}
