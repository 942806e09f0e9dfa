// Package service menurunkan notifikasi dari perubahan status laporan.
package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"laporkampus_backend/internals/configs"
	"laporkampus_backend/internals/features/home/notifications/model"
	report "laporkampus_backend/internals/features/reports/laporan/model"
	"laporkampus_backend/internals/helpers/dbtime"
)

type Deriver struct {
	Policy configs.NotificationPolicy
}

func NewDeriver(p configs.NotificationPolicy) *Deriver {
	return &Deriver{Policy: p}
}

// Derive: laporan Pending dibuang, sisanya jadi notifikasi urut terbaru dulu.
// read berisi id yang sudah dibaca (boleh nil).
func (d *Deriver) Derive(reports []report.Report, read map[string]bool, now time.Time) []model.Notification {
	type dated struct {
		n model.Notification
		t time.Time
	}
	items := make([]dated, 0, len(reports))
	for _, r := range reports {
		if r.Status == report.StatusPending {
			continue
		}
		raw := notificationDate(r)
		t, ok := dbtime.ParseDate(raw)
		timeLabel := raw
		if ok {
			timeLabel = dbtime.RelativeTime(t, now)
		}
		items = append(items, dated{
			n: model.Notification{
				ID:      r.ID,
				Title:   d.Title(r.Status),
				Message: fmt.Sprintf("Laporan \"%s\" status: %s", r.Title, r.Status),
				Time:    timeLabel,
				Type:    r.UIStatus(),
				Read:    read[r.ID],
				Date:    raw,
			},
			t: t,
		})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].t.After(items[j].t) })

	out := make([]model.Notification, len(items))
	for i, it := range items {
		out[i] = it.n
	}
	return out
}

// OwnedBy menyisakan laporan milik user sesi. Laporan dengan pemilik lain
// dibuang; laporan tanpa id pemilik dicocokkan lewat e-mail, dan kalau
// e-mail juga kosong dianggap sudah dibatasi token Laravel.
func OwnedBy(reports []report.Report, userID, email string) []report.Report {
	userID = strings.TrimSpace(userID)
	email = strings.TrimSpace(email)
	out := make([]report.Report, 0, len(reports))
	for _, r := range reports {
		if owner := r.OwnerID(); owner != "" {
			if userID == "" || owner != userID {
				continue
			}
		} else if r.Email != "" && !strings.EqualFold(r.Email, email) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Title judul notifikasi dari tabel status.
func (d *Deriver) Title(status string) string {
	if t, ok := d.Policy.Titles[status]; ok {
		return t
	}
	return d.Policy.DefaultTitle
}

// UnreadCount jumlah notifikasi yang belum dibaca.
func UnreadCount(ns []model.Notification) int {
	n := 0
	for _, x := range ns {
		if !x.Read {
			n++
		}
	}
	return n
}

// IDs semua id notifikasi (untuk tandai semua dibaca).
func IDs(ns []model.Notification) []string {
	out := make([]string, len(ns))
	for i, n := range ns {
		out[i] = n.ID
	}
	return out
}

// notificationDate: updated_at kalau ada, kalau tidak tanggal lapor.
func notificationDate(r report.Report) string {
	if r.UpdatedAt != "" {
		return r.UpdatedAt
	}
	return r.Date
}
