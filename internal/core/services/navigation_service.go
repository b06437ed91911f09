package services

import (
	"context"

	"bps-peka/internal/adapters/persistence/repositories"
	"bps-peka/internal/core/domain"
)

// Routes known to the application shell
const (
	RouteLogin           = "/login"
	RouteRegister        = "/register"
	RouteProfile         = "/profile"
	RouteDashboard       = "/dashboard"
	RouteAddEntry        = "/add-entry"
	RouteApprovals       = "/approvals"
	RouteApprovedEntries = "/approved-entries"
	RouteAllEmployees    = "/all-employees-recap"
)

// NavState is the input to the navigation guard
type NavState struct {
	HasSession bool
	HasProfile bool
	Role       domain.Role
}

// Resolution is the guard's verdict for a requested route
type Resolution struct {
	Target     string   `json:"target"`
	Redirected bool     `json:"redirected"`
	NavItems   []string `json:"nav_items"`
}

// NavigationService implements the route guard state machine and persists the
// last visited route. The guard is advisory only, a UX convenience; data
// access control lives in the services, never here.
type NavigationService struct {
	userRepo repositories.UserRepository
}

// NewNavigationService creates a new navigation service
func NewNavigationService(userRepo repositories.UserRepository) *NavigationService {
	return &NavigationService{userRepo: userRepo}
}

// Resolve maps {hasSession, hasProfile, requested route} to the screen the
// shell should show:
//   - no session: only sign-in and sign-up are reachable
//   - session without profile: only profile completion is reachable
//   - session and profile: the full role surface, defaulting to lastPath
func Resolve(state NavState, requested, lastPath string) Resolution {
	if !state.HasSession {
		if requested == RouteLogin || requested == RouteRegister {
			return Resolution{Target: requested}
		}
		return Resolution{Target: RouteLogin, Redirected: true}
	}

	if !state.HasProfile {
		if requested == RouteProfile {
			return Resolution{Target: requested}
		}
		return Resolution{Target: RouteProfile, Redirected: true}
	}

	items := NavItems(state.Role)

	// Auth routes bounce an established session to its last landing target.
	if requested == RouteLogin || requested == RouteRegister || requested == "" || requested == "/" {
		target := lastPath
		if target == "" || !contains(items, target) {
			target = RouteDashboard
		}
		return Resolution{Target: target, Redirected: true, NavItems: items}
	}

	if !contains(items, requested) {
		return Resolution{Target: RouteDashboard, Redirected: true, NavItems: items}
	}
	return Resolution{Target: requested, NavItems: items}
}

// NavItems lists the authenticated routes visible to a role. Kepala satker
// reviews; pegawai submits; both share dashboard and profile.
func NavItems(role domain.Role) []string {
	if role == domain.RoleKepalaSatker {
		return []string{RouteDashboard, RouteApprovals, RouteAllEmployees, RouteProfile}
	}
	return []string{RouteDashboard, RouteAddEntry, RouteApprovedEntries, RouteProfile}
}

// ResolveFor runs the guard for a stored user, using the persisted last path
// as the default landing target.
func (s *NavigationService) ResolveFor(ctx context.Context, state NavState, userID uint, requested string) (Resolution, error) {
	lastPath := ""
	if user, err := s.userRepo.GetByID(ctx, userID); err == nil {
		lastPath = user.LastPath
	}
	return Resolve(state, requested, lastPath), nil
}

// RememberPath persists the last successfully visited route. Auth screens are
// never remembered.
func (s *NavigationService) RememberPath(ctx context.Context, userID uint, path string) error {
	if path == RouteLogin || path == RouteRegister {
		return nil
	}
	return s.userRepo.UpdateLastPath(ctx, userID, path)
}

func contains(items []string, route string) bool {
	for _, r := range items {
		if r == route {
			return true
		}
	}
	return false
}
