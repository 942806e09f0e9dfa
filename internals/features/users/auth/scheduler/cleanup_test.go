package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	sessionsvc "laporkampus_backend/internals/features/users/session/service"
)

func TestRunSessionCleanup(t *testing.T) {
	ctx := context.Background()
	store := sessionsvc.NewMemoryStore()
	_, err := sessionsvc.Start(ctx, store, sessionsvc.Login{Token: "a", ExpiresAt: time.Now().Add(-48 * time.Hour)})
	require.NoError(t, err)
	fresh, err := sessionsvc.Start(ctx, store, sessionsvc.Login{Token: "b", ExpiresAt: time.Now().Add(-time.Hour)})
	require.NoError(t, err)

	n := RunSessionCleanup(ctx, store, 24*time.Hour, zap.NewNop())
	assert.EqualValues(t, 1, n)
	_, err = store.Load(ctx, fresh.ID())
	assert.NoError(t, err)
}

func TestSchedulerStopsWithContext(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	StartSessionCleanupScheduler(ctx, sessionsvc.NewMemoryStore(), time.Millisecond, 0, zap.NewNop())
	time.Sleep(5 * time.Millisecond)
	cancel()
	// beri waktu goroutine keluar
	time.Sleep(20 * time.Millisecond)
}
