// Package service berisi SessionStore: pengganti localStorage browser di sisi server.
package service

import (
	"context"
	"errors"
	"time"

	"laporkampus_backend/internals/features/users/session/model"
)

var (
	ErrNotFound = errors.New("sesi tidak ditemukan")
	ErrExpired  = errors.New("sesi sudah kedaluwarsa, silakan login ulang")
)

// Store menyimpan state sesi. Implementasi: MemoryStore (default/test) dan GormStore (Postgres).
type Store interface {
	Load(ctx context.Context, sid string) (*model.UserSessionModel, error)
	Save(ctx context.Context, s *model.UserSessionModel) error
	// Update menjalankan fn atas state terbaru secara atomik lalu menyimpannya.
	Update(ctx context.Context, sid string, fn func(s *model.UserSessionModel) error) error
	Delete(ctx context.Context, sid string) error
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

// TokenValid adalah satu-satunya pemeriksaan kedaluwarsa token.
func TokenValid(s *model.UserSessionModel, now time.Time) bool {
	return s != nil && s.IsLoggedIn && s.Token != "" && now.Before(s.TokenExpiration)
}

// MergeIDs menggabungkan ids ke existing (union), urutan lama dipertahankan.
func MergeIDs(existing []string, ids ...string) []string {
	seen := make(map[string]struct{}, len(existing)+len(ids))
	out := make([]string, 0, len(existing)+len(ids))
	for _, id := range existing {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func clone(s *model.UserSessionModel) *model.UserSessionModel {
	cp := *s
	cp.ReadNotifications = append([]string(nil), s.ReadNotifications...)
	cp.User = append([]byte(nil), s.User...)
	return &cp
}
