// Package service menurunkan daftar warning (laporan terlambat) dari laporan ternormalisasi.
package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"laporkampus_backend/internals/configs"
	report "laporkampus_backend/internals/features/reports/laporan/model"
	"laporkampus_backend/internals/features/reports/warnings/model"
	"laporkampus_backend/internals/helpers/dbtime"
)

// Deriver memegang tabel aturan. Nilainya dari configs.Policy, bukan konstanta.
type Deriver struct {
	Policy configs.WarningPolicy
}

func NewDeriver(p configs.WarningPolicy) *Deriver {
	return &Deriver{Policy: p}
}

// Derive mengembalikan warning untuk laporan yang butuh perhatian, urut prioritas lalu umur.
// Laporan dengan tanggal yang tidak bisa dibaca dilewati.
func (d *Deriver) Derive(reports []report.Report, now time.Time) []model.Warning {
	out := make([]model.Warning, 0, len(reports))
	for _, r := range reports {
		w, ok := d.Classify(r, now)
		if ok {
			out = append(out, w)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := model.Rank(out[i].Priority), model.Rank(out[j].Priority)
		if ri != rj {
			return ri > rj
		}
		return out[i].DaysOverdue > out[j].DaysOverdue
	})
	return out
}

// Classify menilai satu laporan. ok=false kalau tidak perlu warning.
func (d *Deriver) Classify(r report.Report, now time.Time) (model.Warning, bool) {
	date, ok := dbtime.ParseDate(reportDate(r))
	if !ok {
		return model.Warning{}, false
	}
	days := dbtime.DaysOverdue(date, now)
	if !d.NeedsAttention(r.Status, days) {
		return model.Warning{}, false
	}

	return model.Warning{
		ID:          "warning-" + r.ID,
		Title:       r.Title,
		ReportID:    r.ID,
		Category:    r.Category,
		CreatedAt:   reportDate(r),
		DaysOverdue: days,
		Priority:    d.Priority(r.Category, days),
		Status:      d.warningStatus(r.Status),
		Details:     details(r, days),
	}, true
}

// Priority: aturan pertama yang cocok menang.
func (d *Deriver) Priority(category string, days int) string {
	p := d.Policy
	switch {
	case containsAny(category, p.CriticalKeywords) || days > p.CriticalDays:
		return model.PriorityCritical
	case days > p.HighDays || containsAny(category, p.HighKeywords):
		return model.PriorityHigh
	default:
		return model.PriorityMedium
	}
}

// NeedsAttention: pending/diproses selalu; lainnya kalau belum selesai dan lewat ambang hari.
func (d *Deriver) NeedsAttention(status string, days int) bool {
	p := d.Policy
	pending, processing := isPending(status), isProcessing(status)
	return pending ||
		processing ||
		(!d.isDone(status) && days > p.AttentionDays) ||
		(processing && days > p.ProcessingAttentionDays)
}

// isDone sengaja memakai kesamaan string persis.
func (d *Deriver) isDone(status string) bool {
	for _, s := range d.Policy.DoneStatuses {
		if status == s {
			return true
		}
	}
	return false
}

func (d *Deriver) warningStatus(status string) string {
	switch {
	case d.isDone(status):
		return model.StatusResolved
	case isProcessing(status):
		return model.StatusInProgress
	default:
		return model.StatusUnresolved
	}
}

// Summarize menghitung jumlah per prioritas.
func Summarize(ws []model.Warning) model.Summary {
	s := model.Summary{Total: len(ws)}
	for _, w := range ws {
		switch w.Priority {
		case model.PriorityCritical:
			s.Critical++
		case model.PriorityHigh:
			s.High++
		default:
			s.Medium++
		}
	}
	return s
}

func reportDate(r report.Report) string {
	if r.Date != "" {
		return r.Date
	}
	return r.SubmittedAt
}

func isPending(status string) bool {
	return strings.EqualFold(status, report.StatusPending)
}

func isProcessing(status string) bool {
	return strings.EqualFold(status, report.StatusInProgress) || strings.EqualFold(status, "processing")
}

func containsAny(s string, keywords []string) bool {
	s = strings.ToLower(s)
	for _, k := range keywords {
		if k != "" && strings.Contains(s, strings.ToLower(k)) {
			return true
		}
	}
	return false
}

func details(r report.Report, days int) string {
	who := r.SubmittedBy
	if who == "" {
		who = "Anonim"
	}
	return fmt.Sprintf("Laporan dari %s berstatus %q sejak %d hari lalu.", who, r.Status, days)
}
