package aggregate

import (
	"testing"
	"time"

	"bps-peka/internal/core/domain"

	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func entry(id string, userID uint, date, status string, duration float64, approved *bool) *domain.WorkEntry {
	return &domain.WorkEntry{
		ID:          id,
		UserID:      userID,
		Date:        day(date),
		Duration:    duration,
		Volume:      1,
		Unit:        "dokumen",
		Description: "uraian " + id,
		Status:      status,
		Approved:    approved,
	}
}

func TestCountByStatus(t *testing.T) {
	entries := []*domain.WorkEntry{
		entry("a", 1, "2024-01-01", domain.StatusSelesai, 1, nil),
		entry("b", 1, "2024-01-02", domain.StatusProses, 1, nil),
		entry("c", 1, "2024-01-03", domain.StatusSelesai, 1, boolPtr(true)),
	}

	counts := CountByStatus(entries)
	require.Equal(t, 2, counts.Selesai)
	require.Equal(t, 1, counts.Proses)
	require.Equal(t, len(entries), counts.Selesai+counts.Proses)
}

func TestCountByApproval(t *testing.T) {
	entries := []*domain.WorkEntry{
		entry("a", 1, "2024-01-01", domain.StatusSelesai, 1, nil),
		entry("b", 1, "2024-01-02", domain.StatusProses, 1, boolPtr(true)),
		entry("c", 2, "2024-01-03", domain.StatusSelesai, 1, boolPtr(true)),
		entry("d", 2, "2024-01-04", domain.StatusSelesai, 1, boolPtr(false)),
	}

	counts := CountByApproval(entries)
	require.Equal(t, 1, counts.Pending)
	require.Equal(t, 2, counts.Approved)
	require.Equal(t, 1, counts.Rejected)
	require.Equal(t, len(entries), counts.Total)
	require.Equal(t, counts.Total, counts.Pending+counts.Approved+counts.Rejected)
}

func TestMonthlyDurationTotals(t *testing.T) {
	entries := []*domain.WorkEntry{
		entry("a", 1, "2024-03-01", domain.StatusSelesai, 2, boolPtr(true)),
		entry("b", 1, "2024-03-15", domain.StatusSelesai, 3.5, boolPtr(true)),
		entry("c", 2, "2024-03-20", domain.StatusSelesai, 1, boolPtr(true)),
		entry("d", 2, "2024-03-25", domain.StatusSelesai, 8, nil),            // pending
		entry("e", 2, "2024-03-26", domain.StatusSelesai, 8, boolPtr(false)), // rejected
		entry("f", 1, "2024-04-02", domain.StatusSelesai, 4, boolPtr(true)),
	}

	totals := MonthlyDurationTotals(entries)
	require.InDelta(t, 6.5, totals["2024-03"], 1e-9)
	require.InDelta(t, 4, totals["2024-04"], 1e-9)
	require.Len(t, totals, 2)
}

func TestFilterComposesAndCommutes(t *testing.T) {
	entries := []*domain.WorkEntry{
		entry("a", 1, "2024-01-01", domain.StatusSelesai, 1, nil),
		entry("b", 1, "2024-01-01", domain.StatusProses, 1, nil),
		entry("c", 1, "2024-01-02", domain.StatusSelesai, 1, nil),
	}
	entries[0].Description = "entri abc pertama"
	entries[1].Description = "entri ABC kedua"
	entries[2].Description = "lainnya"

	combined := Filter{Search: "abc", Status: domain.StatusSelesai, Date: "2024-01-01"}.Apply(entries)
	require.Len(t, combined, 1)
	require.Equal(t, "a", combined[0].ID)

	// One dimension at a time, in a different order, same result set.
	stepwise := Filter{Date: "2024-01-01"}.Apply(
		Filter{Status: domain.StatusSelesai}.Apply(
			Filter{Search: "abc"}.Apply(entries)))
	require.Equal(t, combined, stepwise)

	// Idempotent: re-applying changes nothing.
	require.Equal(t, combined, Filter{Search: "abc", Status: domain.StatusSelesai, Date: "2024-01-01"}.Apply(combined))

	// Search is case-insensitive.
	require.Len(t, Filter{Search: "ABC"}.Apply(entries), 2)
}

func TestGroupByEmployeeDropsUnresolvedOwners(t *testing.T) {
	profiles := []*domain.Profile{
		{ID: 1, FullName: "Budi", Role: domain.RolePegawai},
		{ID: 2, FullName: "Ani", Role: domain.RolePegawai},
	}
	entries := []*domain.WorkEntry{
		entry("a", 1, "2024-01-01", domain.StatusSelesai, 1, boolPtr(true)),
		entry("b", 2, "2024-01-02", domain.StatusSelesai, 1, boolPtr(true)),
		entry("c", 2, "2024-01-03", domain.StatusSelesai, 1, boolPtr(true)),
		entry("orphan", 99, "2024-01-04", domain.StatusSelesai, 1, boolPtr(true)),
	}

	groups := GroupByEmployee(entries, profiles)
	require.Len(t, groups, 2)

	// Ordered by name: Ani before Budi.
	require.Equal(t, "Ani", groups[0].Profile.FullName)
	require.Len(t, groups[0].Entries, 2)
	require.Equal(t, "Budi", groups[1].Profile.FullName)
	require.Len(t, groups[1].Entries, 1)

	// The orphan is dropped from the grouped view but still counts raw.
	grouped := 0
	for _, g := range groups {
		grouped += len(g.Entries)
	}
	require.Equal(t, len(entries)-1, grouped)
	require.Equal(t, len(entries), CountByApproval(entries).Total)
}

func TestCurrentMonthCount(t *testing.T) {
	now := day("2024-03-10")
	entries := []*domain.WorkEntry{
		entry("a", 1, "2024-03-01", domain.StatusSelesai, 1, nil),
		entry("b", 1, "2024-03-31", domain.StatusProses, 1, nil),
		entry("c", 1, "2024-02-29", domain.StatusSelesai, 1, nil),
	}
	require.Equal(t, 2, CurrentMonthCount(entries, now))
}

func TestMonthOptions(t *testing.T) {
	now := day("2024-03-10")
	options := MonthOptions(now)

	require.Len(t, options, 12)
	require.Equal(t, "2024-03", options[0].Value)
	require.Equal(t, "Maret 2024", options[0].Label)
	require.Equal(t, "2023-04", options[11].Value)
	require.Equal(t, "April 2023", options[11].Label)

	// Most recent first, strictly descending.
	for i := 1; i < len(options); i++ {
		require.Greater(t, options[i-1].Value, options[i].Value)
	}
}

func TestMonthRange(t *testing.T) {
	start, end, err := MonthRange("2024-02")
	require.NoError(t, err)
	require.Equal(t, "2024-02-01", start.Format("2006-01-02"))
	require.Equal(t, "2024-02-29", end.Format("2006-01-02"))

	_, _, err = MonthRange("bukan-bulan")
	require.Error(t, err)
}
