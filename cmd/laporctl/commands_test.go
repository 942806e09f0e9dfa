package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"laporkampus_backend/internals/configs"
	personnelService "laporkampus_backend/internals/features/personnel/service"
	report "laporkampus_backend/internals/features/reports/laporan/model"
)

type fakeSource struct {
	reports []report.Report
	err     error
	token   string
}

func (f *fakeSource) GetReports(_ context.Context, tok string) ([]report.Report, error) {
	f.token = tok
	return f.reports, f.err
}

func (f *fakeSource) GetReport(_ context.Context, tok, id string) (report.Report, error) {
	f.token = tok
	for _, r := range f.reports {
		if r.ID == id {
			return r, nil
		}
	}
	return report.Report{}, errors.New("tidak ada")
}

var now = time.Date(2025, 1, 20, 10, 0, 0, 0, time.UTC)

func fixtures() *fakeSource {
	return &fakeSource{reports: []report.Report{
		{ID: "1", Title: "Pelecehan di lab", Description: "ada pelecehan dan ancaman", Category: "Pelecehan",
			Status: report.StatusPending, Date: "2025-01-02", Responses: []report.Response{}},
		{ID: "2", Title: "Nilai belum keluar", Description: "nilai ujian", Category: "Akademik",
			Status: report.StatusSelesai, Date: "2025-01-19", Responses: []report.Response{}},
	}}
}

func testMatcher(t *testing.T) *personnelService.Matcher {
	t.Helper()
	raw, err := configs.RosterYAML("")
	require.NoError(t, err)
	roster, err := personnelService.LoadRoster(raw)
	require.NoError(t, err)
	return personnelService.NewMatcher(roster)
}

func TestRunWarnings(t *testing.T) {
	token = "tok-cli"
	src := fixtures()
	var out bytes.Buffer

	require.NoError(t, runWarnings(context.Background(), src, configs.DefaultPolicy(), now, &out))
	assert.Equal(t, "tok-cli", src.token)
	assert.Contains(t, out.String(), "Pelecehan di lab")
	assert.Contains(t, out.String(), "critical")
	assert.NotContains(t, out.String(), "Nilai belum keluar")
	assert.Contains(t, out.String(), "Total 1 (critical 1")
}

func TestRunWarningsPropagatesError(t *testing.T) {
	src := &fakeSource{err: errors.New("laravel mati")}
	err := runWarnings(context.Background(), src, configs.DefaultPolicy(), now, &bytes.Buffer{})
	assert.EqualError(t, err, "laravel mati")
}

func TestRunExportXLSX(t *testing.T) {
	out := filepath.Join(t.TempDir(), "sub", "laporan.xlsx")
	path, err := runExport(context.Background(), fixtures(), configs.DefaultPolicy(), "xlsx", out, now)
	require.NoError(t, err)
	assert.Equal(t, out, path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Laporan")
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestRunExportCSVAndBadFormat(t *testing.T) {
	out := filepath.Join(t.TempDir(), "laporan.csv")
	_, err := runExport(context.Background(), fixtures(), configs.DefaultPolicy(), "CSV", out, now)
	require.NoError(t, err)
	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Nilai belum keluar")

	_, err = runExport(context.Background(), fixtures(), configs.DefaultPolicy(), "pdf", out, now)
	assert.Error(t, err)
}

func TestRunMatch(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runMatch(context.Background(), fixtures(), testMatcher(t), "1", &out))
	assert.Contains(t, out.String(), "Dewi Lestari")
	assert.Contains(t, out.String(), "https://wa.me/6281234567804")
}

func TestRunRanking(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runRanking(context.Background(), fixtures(), testMatcher(t), &out))
	assert.Contains(t, out.String(), "Dewi Lestari")
	assert.Contains(t, out.String(), "Siti Rahmawati")
	assert.Contains(t, out.String(), "Hendra Wijaya")
}
