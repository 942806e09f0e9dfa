package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laporkampus_backend/internals/configs"
	report "laporkampus_backend/internals/features/reports/laporan/model"
	warnsvc "laporkampus_backend/internals/features/reports/warnings/service"
	helper "laporkampus_backend/internals/helpers"
	"laporkampus_backend/internals/helpers/dbtime"
)

func TestBuildDashboard(t *testing.T) {
	now := time.Date(2025, 2, 10, 0, 0, 0, 0, dbtime.Location())
	reports := []report.Report{
		{ID: "1", Title: "Pelecehan", Category: "Keselamatan", Status: "Pending", Date: "2025-01-01"},
		{ID: "2", Title: "AC", Category: "Fasilitas", Status: "In Progress", Date: "2025-02-05"},
		{ID: "3", Title: "Nilai", Category: "", Status: "Selesai", Date: "2025-02-06"},
		{ID: "4", Title: "Tanpa tanggal", Category: "Fasilitas", Status: "Pending", Date: "bukan tanggal"},
	}
	d := BuildDashboard(reports, 12, warnsvc.NewDeriver(configs.DefaultPolicy().Warning), now)

	assert.Equal(t, 4, d.TotalReports)
	assert.Equal(t, 12, d.TotalUsers)
	assert.Equal(t, map[string]int{"new": 2, "inProgress": 1, "archived": 1}, d.ByStatus)
	assert.Equal(t, 2, d.ByCategory["Fasilitas"])
	assert.Equal(t, 1, d.ByCategory["Lainnya"])

	require.Len(t, d.Monthly, 2)
	assert.Equal(t, "2025-01", d.Monthly[0].Month)
	assert.Equal(t, 2, d.Monthly[1].Count)

	require.NotEmpty(t, d.TopWarnings)
	assert.Equal(t, "1", d.TopWarnings[0].ReportID)
	assert.Equal(t, "critical", d.TopWarnings[0].Priority)
}

func TestListUsers(t *testing.T) {
	users := []Record{
		{"id": 1.0, "name": "Sari", "email": "sari@kampus.ac.id", "role": "mahasiswa", "created_at": "2025-01-01"},
		{"id": 2.0, "name": "Budi", "email": "budi@kampus.ac.id", "role": "admin", "created_at": "2025-01-02"},
		{"id": 3.0, "name": "Sarah", "email": "sarah@kampus.ac.id", "role": "Mahasiswa", "created_at": "2025-01-03"},
	}
	p := helper.Params{Page: 1, PerPage: 10, SortBy: "name", SortOrder: "asc"}

	page, meta := ListUsers(users, "sar", "mahasiswa", p)
	require.Len(t, page, 2)
	assert.Equal(t, "Sarah", page[0]["name"])
	assert.EqualValues(t, 2, meta.Total)

	page, _ = ListUsers(users, "", "", helper.Params{Page: 1, PerPage: 10, SortOrder: "desc"})
	assert.Equal(t, "Sarah", page[0]["name"])
}

func TestListFeedbackByStatus(t *testing.T) {
	items := []Record{
		{"id": 1.0, "message": "Aplikasi lambat", "status": "baru"},
		{"id": 2.0, "message": "Mantap", "status": "dibaca"},
	}
	page, _ := ListFeedback(items, "", "DIBACA", helper.Params{Page: 1, PerPage: 10})
	require.Len(t, page, 1)
	assert.Equal(t, "2", Field(page[0], "id"))
}
