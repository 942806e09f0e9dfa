package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"

	sessionsvc "laporkampus_backend/internals/features/users/session/service"
)

// StartSessionCleanupScheduler menghapus sesi yang token Laravel-nya sudah kedaluwarsa
// lebih dari grace. Berhenti saat ctx selesai.
func StartSessionCleanupScheduler(ctx context.Context, store sessionsvc.Store, interval, grace time.Duration, log *zap.Logger) {
	if interval <= 0 {
		interval = 6 * time.Hour
	}
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			RunSessionCleanup(ctx, store, grace, log)
			select {
			case <-ctx.Done():
				return
			case <-t.C:
			}
		}
	}()
}

// RunSessionCleanup satu putaran pembersihan.
func RunSessionCleanup(ctx context.Context, store sessionsvc.Store, grace time.Duration, log *zap.Logger) int64 {
	before := time.Now().Add(-grace)
	n, err := store.DeleteExpired(ctx, before)
	switch {
	case err != nil:
		log.Warn("[CLEANUP] gagal hapus sesi kedaluwarsa", zap.Error(err))
	case n > 0:
		log.Info("[CLEANUP] sesi kedaluwarsa dihapus", zap.Int64("count", n))
	default:
		log.Debug("[CLEANUP] tidak ada sesi yang perlu dihapus")
	}
	return n
}
