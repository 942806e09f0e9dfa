package service

import (
	"strings"
	"time"

	"laporkampus_backend/internals/features/reports/laporan/model"
	helper "laporkampus_backend/internals/helpers"
	"laporkampus_backend/internals/helpers/dbtime"
)

// ListFilter kriteria daftar laporan dari query string.
type ListFilter struct {
	Query    string
	Status   string // status backend atau UI
	Category string
	Email    string // kosong = semua
}

// Kunci sort yang dikenal. Tanggal dibandingkan setelah di-parse.
var sortKeys = map[string]func(a, b model.Report) bool{
	"date":     func(a, b model.Report) bool { return dateOf(a).Before(dateOf(b)) },
	"title":    func(a, b model.Report) bool { return strings.ToLower(a.Title) < strings.ToLower(b.Title) },
	"status":   func(a, b model.Report) bool { return a.Status < b.Status },
	"category": func(a, b model.Report) bool { return a.Category < b.Category },
	"urgency":  func(a, b model.Report) bool { return urgencyRank(a.Urgency) < urgencyRank(b.Urgency) },
}

// List memfilter, mengurutkan, dan memotong halaman laporan yang sudah diambil.
func List(reports []model.Report, f ListFilter, p helper.Params) ([]model.Report, helper.Meta) {
	filtered := helper.FilterSlice(reports,
		helper.MatchQuery(f.Query, func(r model.Report) []string {
			return []string{r.Title, r.Description, r.SubmittedBy, r.Category}
		}),
		statusPredicate(f.Status),
		categoryPredicate(f.Category),
		emailPredicate(f.Email),
	)
	sorted := helper.SortSlice(filtered, p, sortKeys, "date")
	return helper.PaginateSlice(sorted, p)
}

func statusPredicate(s string) func(model.Report) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	backend := s
	if !model.IsKnownStatus(s) {
		backend = model.ToBackend(s)
	}
	return func(r model.Report) bool { return r.Status == backend }
}

func categoryPredicate(c string) func(model.Report) bool {
	c = strings.TrimSpace(c)
	if c == "" {
		return nil
	}
	return func(r model.Report) bool { return strings.EqualFold(r.Category, c) }
}

func emailPredicate(e string) func(model.Report) bool {
	e = strings.TrimSpace(e)
	if e == "" {
		return nil
	}
	return func(r model.Report) bool { return strings.EqualFold(r.Email, e) }
}

// dateOf: tanggal tidak terbaca dianggap paling lama.
func dateOf(r model.Report) time.Time {
	if v, ok := dbtime.ParseDate(r.Date); ok {
		return v
	}
	if v, ok := dbtime.ParseDate(r.SubmittedAt); ok {
		return v
	}
	return time.Time{}
}

func urgencyRank(u string) int {
	switch strings.ToLower(u) {
	case "high", "tinggi":
		return 3
	case "medium", "sedang":
		return 2
	case "low", "rendah":
		return 1
	}
	return 0
}
