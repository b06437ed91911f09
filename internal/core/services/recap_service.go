package services

import (
	"bytes"
	"context"
	"time"

	"bps-peka/internal/adapters/persistence/models"
	"bps-peka/internal/adapters/persistence/repositories"
	"bps-peka/internal/core/aggregate"
	"bps-peka/internal/core/domain"
	"bps-peka/internal/pkg/export"
)

// RecapService builds monthly recaps of approved work, for a single employee
// and across the whole satker.
type RecapService struct {
	entryRepo   repositories.WorkEntryRepository
	profileRepo repositories.ProfileRepository
}

// NewRecapService creates a new recap service
func NewRecapService(
	entryRepo repositories.WorkEntryRepository,
	profileRepo repositories.ProfileRepository,
) *RecapService {
	return &RecapService{
		entryRepo:   entryRepo,
		profileRepo: profileRepo,
	}
}

// OwnRecapData is one employee's approved entries for a month
type OwnRecapData struct {
	Month   string                      `json:"month"`
	Entries []*models.WorkEntryResponse `json:"entries"`
}

// EmployeeRecapGroup is one employee's slice of the satker-wide recap
type EmployeeRecapGroup struct {
	Employee *models.ProfileResponse     `json:"employee"`
	Entries  []*models.WorkEntryResponse `json:"entries"`
}

// AllEmployeesRecapData is the satker-wide recap for a month
type AllEmployeesRecapData struct {
	Month     string                      `json:"month"`
	Entries   []*models.WorkEntryResponse `json:"entries"`
	Groups    []*EmployeeRecapGroup       `json:"groups"`
	Employees []*models.ProfileResponse   `json:"employees"`
}

// MonthOptions returns the selectable recap months, most recent first.
func (s *RecapService) MonthOptions() []aggregate.MonthOption {
	return aggregate.MonthOptions(time.Now())
}

// GetOwnRecap returns the caller's approved entries within the given month,
// newest date first.
func (s *RecapService) GetOwnRecap(ctx context.Context, userID uint, month string) (*OwnRecapData, error) {
	start, end, err := aggregate.MonthRange(month)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	approved := true
	entries, err := s.entryRepo.List(ctx, repositories.WorkEntryFilter{
		UserID:   userID,
		Approved: &approved,
		DateFrom: start,
		DateTo:   end,
	})
	if err != nil {
		return nil, err
	}

	responses := make([]*models.WorkEntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = e.ToResponse()
	}
	return &OwnRecapData{Month: month, Entries: responses}, nil
}

// GetAllEmployeesRecap returns approved entries across employees for the
// given month with owner profiles joined, optionally narrowed to a single
// employee. The employee option list holds pegawai owning at least one
// approved entry. Entries whose owner profile cannot be resolved stay in the
// list; grouping views drop them, counts never do.
func (s *RecapService) GetAllEmployeesRecap(ctx context.Context, month string, employeeID uint) (*AllEmployeesRecapData, error) {
	start, end, err := aggregate.MonthRange(month)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	approved := true
	filter := repositories.WorkEntryFilter{
		Approved: &approved,
		DateFrom: start,
		DateTo:   end,
	}
	if employeeID != 0 {
		filter.UserID = employeeID
	}

	entries, err := s.entryRepo.ListWithOwner(ctx, filter)
	if err != nil {
		return nil, err
	}

	employees, err := s.profileRepo.ListWithApprovedEntries(ctx, string(domain.RolePegawai))
	if err != nil {
		return nil, err
	}

	data := &AllEmployeesRecapData{
		Month:     month,
		Entries:   make([]*models.WorkEntryResponse, len(entries)),
		Groups:    groupRecapEntries(entries, employees),
		Employees: make([]*models.ProfileResponse, len(employees)),
	}
	for i, e := range entries {
		data.Entries[i] = e.ToResponse()
	}
	for i, p := range employees {
		data.Employees[i] = p.ToResponse()
	}
	return data, nil
}

// groupRecapEntries buckets entries per owning employee, ordered by name.
// Entries without a matching profile fall out of the grouped view.
func groupRecapEntries(entries []*models.WorkEntry, profiles []*models.Profile) []*EmployeeRecapGroup {
	domainProfiles := make([]*domain.Profile, len(profiles))
	profileByID := make(map[uint]*models.Profile, len(profiles))
	for i, p := range profiles {
		domainProfiles[i] = &domain.Profile{
			ID:         p.ID,
			FullName:   p.FullName,
			NIP:        p.NIP,
			Department: p.Department,
			Position:   p.Position,
			Role:       domain.Role(p.Role),
		}
		profileByID[p.ID] = p
	}

	entryByID := make(map[string]*models.WorkEntry, len(entries))
	for _, e := range entries {
		entryByID[e.ID] = e
	}

	grouped := aggregate.GroupByEmployee(toDomainEntries(entries), domainProfiles)
	groups := make([]*EmployeeRecapGroup, len(grouped))
	for i, g := range grouped {
		group := &EmployeeRecapGroup{
			Employee: profileByID[g.Profile.ID].ToResponse(),
			Entries:  make([]*models.WorkEntryResponse, len(g.Entries)),
		}
		for j, e := range g.Entries {
			group.Entries[j] = entryByID[e.ID].ToResponse()
		}
		groups[i] = group
	}
	return groups
}

// ExportAllEmployeesRecap renders the satker-wide monthly recap as an xlsx
// workbook.
func (s *RecapService) ExportAllEmployeesRecap(ctx context.Context, month string, employeeID uint) (*bytes.Buffer, string, error) {
	start, end, err := aggregate.MonthRange(month)
	if err != nil {
		return nil, "", domain.ErrInvalidInput
	}

	approved := true
	filter := repositories.WorkEntryFilter{
		Approved: &approved,
		DateFrom: start,
		DateTo:   end,
	}
	if employeeID != 0 {
		filter.UserID = employeeID
	}

	entries, err := s.entryRepo.ListWithOwner(ctx, filter)
	if err != nil {
		return nil, "", err
	}

	label := aggregate.MonthLabel(start)
	buf, err := export.MonthlyRecap(label, entries)
	if err != nil {
		return nil, "", err
	}
	return buf, "rekap-pekerjaan-" + month + ".xlsx", nil
}
