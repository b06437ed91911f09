package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPurgeExpiredTokensHitsRepository(t *testing.T) {
	repo := &fakeRefreshTokenRepo{}
	svc := NewCronService(repo)

	svc.purgeExpiredTokens()
	svc.purgeExpiredTokens()
	require.Equal(t, 2, repo.deleteExpiredCalls)
}

func TestPurgeExpiredTokensSurvivesRepositoryError(t *testing.T) {
	repo := &fakeRefreshTokenRepo{deleteExpiredErr: errors.New("db down")}
	svc := NewCronService(repo)

	// A failed purge only logs; the next run retries.
	svc.purgeExpiredTokens()
	repo.deleteExpiredErr = nil
	svc.purgeExpiredTokens()
	require.Equal(t, 2, repo.deleteExpiredCalls)
}

func TestCronServiceStartStop(t *testing.T) {
	svc := NewCronService(&fakeRefreshTokenRepo{})

	svc.Start()
	require.Len(t, svc.cron.Entries(), 1)
	svc.Stop()
}
