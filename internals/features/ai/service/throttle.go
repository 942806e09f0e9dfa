package service

import (
	"sync"
	"time"
)

// Throttle memaksa jeda minimum per key (mis. per sesi). Hanya di memori proses ini.
type Throttle struct {
	mu    sync.Mutex
	gap   time.Duration
	last  map[string]time.Time
	swept time.Time
	now   func() time.Time
}

func NewThrottle(gap time.Duration) *Throttle {
	return &Throttle{gap: gap, last: make(map[string]time.Time), now: time.Now}
}

// Allow mencatat request kalau boleh; kalau belum, kembalikan sisa waktu tunggu.
func (t *Throttle) Allow(key string) (bool, time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.now()
	t.sweep(now)
	if last, ok := t.last[key]; ok {
		if elapsed := now.Sub(last); elapsed < t.gap {
			return false, t.gap - elapsed
		}
	}
	t.last[key] = now
	return true, 0
}

// sweep membuang key yang jedanya sudah lewat, paling sering sekali per gap.
func (t *Throttle) sweep(now time.Time) {
	if now.Sub(t.swept) < t.gap {
		return
	}
	for k, last := range t.last {
		if now.Sub(last) >= t.gap {
			delete(t.last, k)
		}
	}
	t.swept = now
}
