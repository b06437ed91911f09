package services

import (
	"context"
	"time"

	"bps-peka/internal/adapters/persistence/models"
	"bps-peka/internal/adapters/persistence/repositories"
	"bps-peka/internal/core/aggregate"
	"bps-peka/internal/core/domain"
)

// DashboardService derives role-specific dashboard data. All aggregation is a
// single in-memory pass over the fetched collection; the store stays
// authoritative and a refetch rebuilds everything.
type DashboardService struct {
	entryRepo   repositories.WorkEntryRepository
	profileRepo repositories.ProfileRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	entryRepo repositories.WorkEntryRepository,
	profileRepo repositories.ProfileRepository,
) *DashboardService {
	return &DashboardService{
		entryRepo:   entryRepo,
		profileRepo: profileRepo,
	}
}

// EmployeeDashboardData represents the pegawai dashboard: the caller's own
// entries plus the performance summary
type EmployeeDashboardData struct {
	Entries        []*models.WorkEntryResponse `json:"entries"`
	TotalThisMonth int                         `json:"total_this_month"`
	Approved       int                         `json:"approved"`
	Selesai        int                         `json:"selesai"`
	Proses         int                         `json:"proses"`
}

// KepalaDashboardData represents the kepala satker dashboard: approval counts
// across all pegawai entries and approved duration totals per month
type KepalaDashboardData struct {
	Stats            aggregate.ApprovalCounts `json:"stats"`
	MonthlyDurations map[string]float64       `json:"monthly_durations"`
}

// GetEmployeeDashboard returns the pegawai dashboard with optional filters
// applied to the entry list. Summary numbers always cover the unfiltered
// collection.
func (s *DashboardService) GetEmployeeDashboard(ctx context.Context, userID uint, filter aggregate.Filter) (*EmployeeDashboardData, error) {
	entries, err := s.entryRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	domainEntries := toDomainEntries(entries)
	statusCounts := aggregate.CountByStatus(domainEntries)
	approvalCounts := aggregate.CountByApproval(domainEntries)

	visible := entries
	if filter != (aggregate.Filter{}) {
		visible = applyFilter(entries, filter)
	}
	responses := make([]*models.WorkEntryResponse, len(visible))
	for i, e := range visible {
		responses[i] = e.ToResponse()
	}

	return &EmployeeDashboardData{
		Entries:        responses,
		TotalThisMonth: aggregate.CurrentMonthCount(domainEntries, time.Now()),
		Approved:       approvalCounts.Approved,
		Selesai:        statusCounts.Selesai,
		Proses:         statusCounts.Proses,
	}, nil
}

// GetKepalaDashboard returns approval counts over pegawai-owned entries and
// the trailing-12-month duration totals of approved work.
func (s *DashboardService) GetKepalaDashboard(ctx context.Context) (*KepalaDashboardData, error) {
	pegawai, err := s.profileRepo.ListByRole(ctx, string(domain.RolePegawai))
	if err != nil {
		return nil, err
	}
	userIDs := make([]uint, len(pegawai))
	for i, p := range pegawai {
		userIDs[i] = p.ID
	}

	data := &KepalaDashboardData{MonthlyDurations: map[string]float64{}}
	if len(userIDs) == 0 {
		return data, nil
	}

	// Counts cover every pegawai entry regardless of age.
	all, err := s.entryRepo.List(ctx, repositories.WorkEntryFilter{UserIDs: userIDs})
	if err != nil {
		return nil, err
	}
	data.Stats = aggregate.CountByApproval(toDomainEntries(all))

	// Monthly durations cover approved entries in the trailing 12 months.
	now := time.Now()
	approved := true
	recent, err := s.entryRepo.List(ctx, repositories.WorkEntryFilter{
		UserIDs:  userIDs,
		Approved: &approved,
		DateFrom: now.AddDate(0, -11, 0),
		DateTo:   now,
	})
	if err != nil {
		return nil, err
	}
	data.MonthlyDurations = aggregate.MonthlyDurationTotals(toDomainEntries(recent))

	return data, nil
}
