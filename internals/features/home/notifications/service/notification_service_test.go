package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laporkampus_backend/internals/configs"
	report "laporkampus_backend/internals/features/reports/laporan/model"
	"laporkampus_backend/internals/helpers/dbtime"
)

func TestDeriveDropsPendingAndSortsNewestFirst(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, dbtime.Location())
	d := NewDeriver(configs.DefaultPolicy().Notification)

	ns := d.Derive([]report.Report{
		{ID: "1", Title: "AC rusak", Status: "Pending", Date: "2025-01-09"},
		{ID: "2", Title: "Lampu", Status: "In Progress", Date: "2025-01-02", UpdatedAt: "2025-01-10 11:00:00"},
		{ID: "3", Title: "Kursi", Status: "Selesai", Date: "2025-01-05"},
		{ID: "4", Title: "Ditolak", Status: "Ditolak", Date: "2025-01-08"},
	}, map[string]bool{"3": true}, now)

	require.Len(t, ns, 3)
	assert.Equal(t, []string{"2", "4", "3"}, IDs(ns))

	assert.Equal(t, "Laporan Sedang Diproses", ns[0].Title)
	assert.Equal(t, `Laporan "Lampu" status: In Progress`, ns[0].Message)
	assert.Equal(t, "1 jam yang lalu", ns[0].Time)
	assert.Equal(t, "inProgress", ns[0].Type)

	assert.Equal(t, "Pembaruan Status Laporan", ns[1].Title)
	assert.Equal(t, "Laporan Telah Selesai", ns[2].Title)
	assert.True(t, ns[2].Read)
	assert.Equal(t, 2, UnreadCount(ns))
}

func TestDeriveKeepsUnparseableDateVerbatim(t *testing.T) {
	d := NewDeriver(configs.DefaultPolicy().Notification)
	ns := d.Derive([]report.Report{{ID: "9", Status: "Selesai", Date: "kemarin"}}, nil, time.Now())
	require.Len(t, ns, 1)
	assert.Equal(t, "kemarin", ns[0].Time)
}
