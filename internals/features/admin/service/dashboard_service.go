package service

import (
	"sort"
	"strings"
	"time"

	"laporkampus_backend/internals/features/admin/dto"
	report "laporkampus_backend/internals/features/reports/laporan/model"
	warnsvc "laporkampus_backend/internals/features/reports/warnings/service"
	"laporkampus_backend/internals/helpers/dbtime"
)

const topWarnings = 5

// BuildDashboard merangkum laporan & jumlah pengguna. Laporan tanpa tanggal valid tidak masuk grafik bulanan.
func BuildDashboard(reports []report.Report, users int, d *warnsvc.Deriver, now time.Time) dto.DashboardResponse {
	out := dto.DashboardResponse{
		TotalReports: len(reports),
		TotalUsers:   users,
		ByStatus:     map[string]int{},
		ByCategory:   map[string]int{},
		Monthly:      []dto.MonthCount{},
	}

	months := map[string]int{}
	for _, r := range reports {
		out.ByStatus[r.UIStatus()]++
		cat := strings.TrimSpace(r.Category)
		if cat == "" {
			cat = "Lainnya"
		}
		out.ByCategory[cat]++

		date := r.Date
		if date == "" {
			date = r.SubmittedAt
		}
		if t, ok := dbtime.ParseDate(date); ok {
			months[t.Format("2006-01")]++
		}
	}
	for m, n := range months {
		out.Monthly = append(out.Monthly, dto.MonthCount{Month: m, Count: n})
	}
	sort.Slice(out.Monthly, func(i, j int) bool { return out.Monthly[i].Month < out.Monthly[j].Month })

	ws := d.Derive(reports, now)
	out.WarningSummary = warnsvc.Summarize(ws)
	if len(ws) > topWarnings {
		ws = ws[:topWarnings]
	}
	out.TopWarnings = ws
	return out
}
