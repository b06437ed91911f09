package services

import (
	"context"
	"testing"

	"bps-peka/internal/adapters/persistence/models"
	"bps-peka/internal/core/domain"

	"github.com/stretchr/testify/require"
)

func TestResolveWithoutSession(t *testing.T) {
	state := NavState{}

	for _, requested := range []string{RouteDashboard, RouteApprovals, RouteProfile, "/anything"} {
		res := Resolve(state, requested, "")
		require.Equal(t, RouteLogin, res.Target, "requested %s", requested)
		require.True(t, res.Redirected)
	}

	res := Resolve(state, RouteRegister, "")
	require.Equal(t, RouteRegister, res.Target)
	require.False(t, res.Redirected)
}

func TestResolveSessionWithoutProfile(t *testing.T) {
	state := NavState{HasSession: true}

	for _, requested := range []string{RouteDashboard, RouteLogin, RouteAddEntry} {
		res := Resolve(state, requested, "")
		require.Equal(t, RouteProfile, res.Target, "requested %s", requested)
		require.True(t, res.Redirected)
	}

	res := Resolve(state, RouteProfile, "")
	require.Equal(t, RouteProfile, res.Target)
	require.False(t, res.Redirected)
}

func TestResolveRoleSurfaces(t *testing.T) {
	pegawai := NavState{HasSession: true, HasProfile: true, Role: domain.RolePegawai}
	kepala := NavState{HasSession: true, HasProfile: true, Role: domain.RoleKepalaSatker}

	// A pegawai never reaches the review surfaces.
	res := Resolve(pegawai, RouteApprovals, "")
	require.Equal(t, RouteDashboard, res.Target)
	require.True(t, res.Redirected)
	require.NotContains(t, res.NavItems, RouteApprovals)
	require.Contains(t, res.NavItems, RouteAddEntry)

	// And a kepala satker never reaches the submission surfaces.
	res = Resolve(kepala, RouteAddEntry, "")
	require.Equal(t, RouteDashboard, res.Target)
	require.True(t, res.Redirected)
	require.Contains(t, res.NavItems, RouteApprovals)
	require.Contains(t, res.NavItems, RouteAllEmployees)

	res = Resolve(kepala, RouteApprovals, "")
	require.Equal(t, RouteApprovals, res.Target)
	require.False(t, res.Redirected)
}

func TestResolveLandsOnLastPath(t *testing.T) {
	kepala := NavState{HasSession: true, HasProfile: true, Role: domain.RoleKepalaSatker}

	// Hitting an auth route with a live session bounces to the remembered path.
	res := Resolve(kepala, RouteLogin, RouteApprovals)
	require.Equal(t, RouteApprovals, res.Target)
	require.True(t, res.Redirected)

	// No remembered path falls back to the dashboard.
	res = Resolve(kepala, "/", "")
	require.Equal(t, RouteDashboard, res.Target)

	// A remembered path outside the role surface also falls back.
	res = Resolve(kepala, RouteLogin, RouteAddEntry)
	require.Equal(t, RouteDashboard, res.Target)
}

func TestResolveForReadsPersistedPath(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepo(&models.User{ID: 1, Email: "budi@bps.go.id", LastPath: RouteApprovedEntries})
	nav := NewNavigationService(users)
	state := NavState{HasSession: true, HasProfile: true, Role: domain.RolePegawai}

	res, err := nav.ResolveFor(ctx, state, 1, RouteLogin)
	require.NoError(t, err)
	require.Equal(t, RouteApprovedEntries, res.Target)
}

func TestRememberPathSkipsAuthRoutes(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepo(&models.User{ID: 1, Email: "budi@bps.go.id"})
	nav := NewNavigationService(users)

	require.NoError(t, nav.RememberPath(ctx, 1, RouteDashboard))
	u, err := users.GetByID(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, RouteDashboard, u.LastPath)

	require.NoError(t, nav.RememberPath(ctx, 1, RouteLogin))
	u, err = users.GetByID(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, RouteDashboard, u.LastPath)
}
