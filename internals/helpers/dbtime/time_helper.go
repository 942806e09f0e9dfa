// file: internals/helpers/dbtime/time_helper.go
package dbtime

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"time"
)

var (
	locOnce sync.Once
	loc     *time.Location
)

// Location zona waktu kampus: Asia/Jakarta, fallback UTC kalau tzdata tidak ada.
func Location() *time.Location {
	locOnce.Do(func() {
		l, err := time.LoadLocation("Asia/Jakarta")
		if err != nil {
			l = time.UTC
		}
		loc = l
	})
	return loc
}

// Format tanggal yang pernah dikirim Laravel.
var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000000Z",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

const dateOnly = "2006-01-02"

// ParseDate membaca tanggal laporan. Tanggal saja → tengah malam UTC;
// tanggal+jam tanpa zona → waktu Jakarta.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(dateOnly, s); err == nil {
		return t, true
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, Location()); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DaysOverdue = ceil(|now - date| / 24 jam).
func DaysOverdue(date, now time.Time) int {
	d := now.Sub(date)
	if d < 0 {
		d = -d
	}
	return int(math.Ceil(d.Hours() / 24))
}

var bulan = [...]string{"Jan", "Feb", "Mar", "Apr", "Mei", "Jun", "Jul", "Agu", "Sep", "Okt", "Nov", "Des"}

// FormatTanggal contoh: "9 Jan 2025".
func FormatTanggal(t time.Time) string {
	t = t.In(Location())
	return fmt.Sprintf("%d %s %d", t.Day(), bulan[t.Month()-1], t.Year())
}

// RelativeTime format waktu relatif gaya Indonesia ("5 menit yang lalu").
func RelativeTime(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "baru saja"
	case d < time.Hour:
		return fmt.Sprintf("%d menit yang lalu", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%d jam yang lalu", int(d.Hours()))
	case d < 7*24*time.Hour:
		days := int(d.Hours() / 24)
		if days == 1 {
			return "kemarin"
		}
		return fmt.Sprintf("%d hari yang lalu", days)
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%d minggu yang lalu", int(d.Hours()/(24*7)))
	default:
		return FormatTanggal(t)
	}
}
