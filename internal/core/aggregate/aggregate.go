package aggregate

import (
	"sort"
	"strings"
	"time"

	"bps-peka/internal/core/domain"
)

// StatusCounts partitions entries by self-reported progress.
type StatusCounts struct {
	Selesai int `json:"selesai"`
	Proses  int `json:"proses"`
}

// CountByStatus counts entries per progress status. Selesai + Proses always
// equals len(entries); anything not selesai counts as proses.
func CountByStatus(entries []*domain.WorkEntry) StatusCounts {
	var counts StatusCounts
	for _, e := range entries {
		if e.Status == domain.StatusSelesai {
			counts.Selesai++
		} else {
			counts.Proses++
		}
	}
	return counts
}

// ApprovalCounts partitions entries by review decision.
type ApprovalCounts struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
	Total    int `json:"total"`
}

// CountByApproval counts entries per review decision. Pending + Approved +
// Rejected always equals Total.
func CountByApproval(entries []*domain.WorkEntry) ApprovalCounts {
	counts := ApprovalCounts{Total: len(entries)}
	for _, e := range entries {
		switch {
		case e.Approved == nil:
			counts.Pending++
		case *e.Approved:
			counts.Approved++
		default:
			counts.Rejected++
		}
	}
	return counts
}

// MonthlyDurationTotals sums durations of approved entries grouped by
// calendar month. Keys are YYYY-MM. Pending and rejected entries never
// contribute.
func MonthlyDurationTotals(entries []*domain.WorkEntry) map[string]float64 {
	totals := make(map[string]float64)
	for _, e := range entries {
		if e.Approved == nil || !*e.Approved {
			continue
		}
		totals[e.Date.Format("2006-01")] += e.Duration
	}
	return totals
}

// EmployeeGroup pairs an owner profile with that owner's entries.
type EmployeeGroup struct {
	Profile *domain.Profile
	Entries []*domain.WorkEntry
}

// GroupByEmployee groups entries by owner, pairing each group with its
// owner's profile. Entries whose owner is missing from profiles are dropped
// from the grouped view; callers wanting raw totals count the input instead.
// Groups come back ordered by owner name.
func GroupByEmployee(entries []*domain.WorkEntry, profiles []*domain.Profile) []EmployeeGroup {
	byID := make(map[uint]*domain.Profile, len(profiles))
	for _, p := range profiles {
		byID[p.ID] = p
	}

	grouped := make(map[uint][]*domain.WorkEntry)
	for _, e := range entries {
		if _, ok := byID[e.UserID]; !ok {
			continue
		}
		grouped[e.UserID] = append(grouped[e.UserID], e)
	}

	groups := make([]EmployeeGroup, 0, len(grouped))
	for id, es := range grouped {
		groups = append(groups, EmployeeGroup{Profile: byID[id], Entries: es})
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Profile.FullName < groups[j].Profile.FullName
	})
	return groups
}

// CurrentMonthCount counts entries dated in the given month.
func CurrentMonthCount(entries []*domain.WorkEntry, now time.Time) int {
	key := now.Format("2006-01")
	count := 0
	for _, e := range entries {
		if e.Date.Format("2006-01") == key {
			count++
		}
	}
	return count
}

// Filter narrows an entry collection. Empty fields pass everything; set
// fields compose with logical AND. Application order never matters.
type Filter struct {
	Search string // case-insensitive substring on description
	Status string // exact match
	Date   string // exact calendar day, YYYY-MM-DD
}

// Apply returns the entries matching every set filter dimension.
func (f Filter) Apply(entries []*domain.WorkEntry) []*domain.WorkEntry {
	result := make([]*domain.WorkEntry, 0, len(entries))
	search := strings.ToLower(f.Search)
	for _, e := range entries {
		if search != "" && !strings.Contains(strings.ToLower(e.Description), search) {
			continue
		}
		if f.Status != "" && e.Status != f.Status {
			continue
		}
		if f.Date != "" && e.Date.Format("2006-01-02") != f.Date {
			continue
		}
		result = append(result, e)
	}
	return result
}
