package services

import (
	"context"
	"sort"
	"time"

	"bps-peka/internal/adapters/persistence/models"
	"bps-peka/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// In-memory repository fakes backing the service tests.

type fakeEntryRepo struct {
	entries map[string]*models.WorkEntry
	owners  *fakeProfileRepo
}

func newFakeEntryRepo(owners *fakeProfileRepo) *fakeEntryRepo {
	return &fakeEntryRepo{entries: map[string]*models.WorkEntry{}, owners: owners}
}

func (r *fakeEntryRepo) Create(_ context.Context, entry *models.WorkEntry) error {
	cp := *entry
	cp.CreatedAt = time.Now()
	r.entries[entry.ID] = &cp
	*entry = cp
	return nil
}

func (r *fakeEntryRepo) GetByID(_ context.Context, id string) (*models.WorkEntry, error) {
	entry, ok := r.entries[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *entry
	return &cp, nil
}

func (r *fakeEntryRepo) Update(_ context.Context, entry *models.WorkEntry) error {
	cp := *entry
	r.entries[entry.ID] = &cp
	return nil
}

func (r *fakeEntryRepo) Delete(_ context.Context, id string) error {
	delete(r.entries, id)
	return nil
}

func (r *fakeEntryRepo) ListByOwner(ctx context.Context, userID uint) ([]*models.WorkEntry, error) {
	return r.List(ctx, repositories.WorkEntryFilter{UserID: userID})
}

func (r *fakeEntryRepo) ListPendingWithOwner(ctx context.Context, offset, limit int) ([]*models.WorkEntry, int64, error) {
	pending, err := r.List(ctx, repositories.WorkEntryFilter{Pending: true})
	if err != nil {
		return nil, 0, err
	}
	for _, e := range pending {
		if r.owners != nil {
			if p, err := r.owners.GetByID(ctx, e.UserID); err == nil {
				e.Owner = p
			}
		}
	}
	total := int64(len(pending))
	if offset > len(pending) {
		return nil, total, nil
	}
	pending = pending[offset:]
	if limit > 0 && limit < len(pending) {
		pending = pending[:limit]
	}
	return pending, total, nil
}

func (r *fakeEntryRepo) List(_ context.Context, filter repositories.WorkEntryFilter) ([]*models.WorkEntry, error) {
	var result []*models.WorkEntry
	for _, e := range r.entries {
		if filter.UserID != 0 && e.UserID != filter.UserID {
			continue
		}
		if len(filter.UserIDs) > 0 && !containsID(filter.UserIDs, e.UserID) {
			continue
		}
		if filter.Pending && e.Approved != nil {
			continue
		}
		if !filter.Pending && filter.Approved != nil {
			if e.Approved == nil || *e.Approved != *filter.Approved {
				continue
			}
		}
		if !filter.DateFrom.IsZero() && e.Date.Before(filter.DateFrom) {
			continue
		}
		if !filter.DateTo.IsZero() && e.Date.After(filter.DateTo) {
			continue
		}
		cp := *e
		result = append(result, &cp)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.After(result[j].Date) })
	return result, nil
}

func (r *fakeEntryRepo) ListWithOwner(ctx context.Context, filter repositories.WorkEntryFilter) ([]*models.WorkEntry, error) {
	entries, err := r.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if r.owners != nil {
			if p, err := r.owners.GetByID(ctx, e.UserID); err == nil {
				e.Owner = p
			}
		}
	}
	return entries, nil
}

func containsID(ids []uint, id uint) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

type fakeProfileRepo struct {
	profiles map[uint]*models.Profile
}

func newFakeProfileRepo(profiles ...*models.Profile) *fakeProfileRepo {
	r := &fakeProfileRepo{profiles: map[uint]*models.Profile{}}
	for _, p := range profiles {
		r.profiles[p.ID] = p
	}
	return r
}

func (r *fakeProfileRepo) GetByID(_ context.Context, id uint) (*models.Profile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProfileRepo) Upsert(_ context.Context, profile *models.Profile) error {
	cp := *profile
	r.profiles[profile.ID] = &cp
	return nil
}

func (r *fakeProfileRepo) ListByRole(_ context.Context, role string) ([]*models.Profile, error) {
	var result []*models.Profile
	for _, p := range r.profiles {
		if p.Role == role {
			cp := *p
			result = append(result, &cp)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].FullName < result[j].FullName })
	return result, nil
}

func (r *fakeProfileRepo) ListWithApprovedEntries(ctx context.Context, role string) ([]*models.Profile, error) {
	// Good enough for tests: every profile of the role.
	return r.ListByRole(ctx, role)
}

type fakeUserRepo struct {
	users map[uint]*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[uint]*models.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	user.ID = uint(len(r.users) + 1)
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) UpdateLastPath(_ context.Context, id uint, path string) error {
	u, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.LastPath = path
	return nil
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type fakeRefreshTokenRepo struct {
	deleteExpiredCalls int
	deleteExpiredErr   error
}

func (r *fakeRefreshTokenRepo) Create(context.Context, *models.RefreshToken) error { return nil }

func (r *fakeRefreshTokenRepo) GetByTokenHash(context.Context, string) (*models.RefreshToken, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRefreshTokenRepo) GetByUserID(context.Context, uint) ([]*models.RefreshToken, error) {
	return nil, nil
}

func (r *fakeRefreshTokenRepo) Revoke(context.Context, uint) error { return nil }

func (r *fakeRefreshTokenRepo) RevokeByTokenHash(context.Context, string) error { return nil }

func (r *fakeRefreshTokenRepo) RevokeAllByUserID(context.Context, uint) error { return nil }

func (r *fakeRefreshTokenRepo) DeleteExpired(context.Context) error {
	r.deleteExpiredCalls++
	return r.deleteExpiredErr
}

func (r *fakeRefreshTokenRepo) CountActiveByUserID(context.Context, uint) (int64, error) {
	return 0, nil
}

// recordingFeed captures change feed publications.
type recordingFeed struct {
	published []*models.WorkEntry
}

func (f *recordingFeed) PublishEntryUpdate(entry *models.WorkEntry) {
	f.published = append(f.published, entry)
}
