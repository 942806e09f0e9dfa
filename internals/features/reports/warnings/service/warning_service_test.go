package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laporkampus_backend/internals/configs"
	report "laporkampus_backend/internals/features/reports/laporan/model"
	"laporkampus_backend/internals/features/reports/laporan/normalizer"
	"laporkampus_backend/internals/features/reports/warnings/model"
)

func deriver() *Deriver { return NewDeriver(configs.DefaultPolicy().Warning) }

func daysAgo(now time.Time, n int) string {
	return now.AddDate(0, 0, -n).Format("2006-01-02")
}

var now = time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)

func TestEightDayPendingIsCritical(t *testing.T) {
	ws := deriver().Derive([]report.Report{
		{ID: "1", Title: "Lampu", Category: "Lainnya", Status: "Pending", Date: daysAgo(now, 8)},
	}, now)
	require.Len(t, ws, 1)
	assert.Equal(t, model.PriorityCritical, ws[0].Priority)
	assert.Equal(t, 8, ws[0].DaysOverdue)
}

func TestFiveDayFasilitasIsHigh(t *testing.T) {
	ws := deriver().Derive([]report.Report{
		{ID: "2", Category: "Fasilitas Kampus", Status: "In Progress", Date: daysAgo(now, 5)},
	}, now)
	require.Len(t, ws, 1)
	assert.Equal(t, model.PriorityHigh, ws[0].Priority)
	assert.Equal(t, model.StatusInProgress, ws[0].Status)
}

func TestFasilitasAloneIsHighEvenWhenFresh(t *testing.T) {
	assert.Equal(t, model.PriorityHigh, deriver().Priority("fasilitas", 1))
	assert.Equal(t, model.PriorityCritical, deriver().Priority("Pelecehan", 0))
	assert.Equal(t, model.PriorityMedium, deriver().Priority("Akademik", 3))
}

func TestSelesaiExcludedByExactMatchOnly(t *testing.T) {
	ws := deriver().Derive([]report.Report{
		{ID: "done", Status: "Selesai", Date: daysAgo(now, 30)},
		{ID: "lower", Status: "selesai", Date: daysAgo(now, 30)},
		{ID: "suffix", Status: "Selesai.", Date: daysAgo(now, 30)},
	}, now)

	ids := map[string]bool{}
	for _, w := range ws {
		ids[w.ReportID] = true
	}
	assert.False(t, ids["done"])
	assert.True(t, ids["lower"])
	assert.True(t, ids["suffix"])
}

func TestAttentionThreshold(t *testing.T) {
	d := deriver()
	assert.False(t, d.NeedsAttention("Ditolak", 2))
	assert.True(t, d.NeedsAttention("Ditolak", 3))
	assert.True(t, d.NeedsAttention("Pending", 0))
	assert.True(t, d.NeedsAttention("In Progress", 0))
	assert.False(t, d.NeedsAttention("Selesai", 100))
}

func TestSortedByPriorityThenDays(t *testing.T) {
	ws := deriver().Derive([]report.Report{
		{ID: "m", Category: "Akademik", Status: "Pending", Date: daysAgo(now, 1)},
		{ID: "c9", Category: "Akademik", Status: "Pending", Date: daysAgo(now, 9)},
		{ID: "h", Category: "Akademik", Status: "Pending", Date: daysAgo(now, 5)},
		{ID: "c12", Category: "Akademik", Status: "Pending", Date: daysAgo(now, 12)},
	}, now)
	var got []string
	for _, w := range ws {
		got = append(got, w.ReportID)
	}
	assert.Equal(t, []string{"c12", "c9", "h", "m"}, got)
}

func TestUnparseableDateSkipped(t *testing.T) {
	ws := deriver().Derive([]report.Report{
		{ID: "x", Status: "Pending", Date: "minggu lalu"},
	}, now)
	assert.Empty(t, ws)
}

func TestEndToEndPayload(t *testing.T) {
	payload := []byte(`{"data":[{"id":5,"judul":"AC rusak","kategori":"Fasilitas","status":"Pending","tanggal_lapor":"2025-01-01","respon":null}]}`)
	reports, err := normalizer.NormalizeJSON(payload)
	require.NoError(t, err)

	ws := deriver().Derive(reports, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC))
	require.Len(t, ws, 1)
	assert.Equal(t, model.PriorityCritical, ws[0].Priority)
	assert.Equal(t, 9, ws[0].DaysOverdue)
	assert.Equal(t, model.StatusUnresolved, ws[0].Status)
	assert.Equal(t, "5", ws[0].ReportID)
}

func TestSummarize(t *testing.T) {
	s := Summarize([]model.Warning{
		{Priority: model.PriorityCritical}, {Priority: model.PriorityHigh}, {Priority: model.PriorityHigh},
	})
	assert.Equal(t, model.Summary{Total: 3, Critical: 1, High: 2}, s)
}
