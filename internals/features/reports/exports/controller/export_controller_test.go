package controller

import (
	"bytes"
	"encoding/csv"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"laporkampus_backend/internals/configs"
	warnsvc "laporkampus_backend/internals/features/reports/warnings/service"
	"laporkampus_backend/internals/helpers/dbtime"
	"laporkampus_backend/internals/laravel"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[
			{"id":5,"judul":"AC rusak","kategori":"Fasilitas","status":"Pending","tanggal_lapor":"2025-01-01","respon":null},
			{"id":6,"judul":"KRS error","kategori":"Akademik","status":"Selesai","tanggal_lapor":"2025-01-08","respon":null}
		]}`))
	}))
	t.Cleanup(srv.Close)

	ctl := NewExportController(laravel.NewClient(srv.URL), warnsvc.NewDeriver(configs.DefaultPolicy().Warning))
	ctl.Now = func() time.Time { return time.Date(2025, 1, 10, 8, 0, 0, 0, dbtime.Location()) }

	app := fiber.New()
	app.Get("/laporan/export", ctl.Export)
	return app
}

func TestExportXLSX(t *testing.T) {
	resp, err := newTestApp(t).Test(httptest.NewRequest("GET", "/laporan/export", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), `filename="laporan_20250110_080000.xlsx"`)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Laporan")
	require.NoError(t, err)
	assert.Len(t, rows, 3)
	warnings, err := f.GetRows("Peringatan")
	require.NoError(t, err)
	assert.Len(t, warnings, 2)
}

func TestExportCSVWithStatusFilter(t *testing.T) {
	resp, err := newTestApp(t).Test(httptest.NewRequest("GET", "/laporan/export?format=csv&status=archived", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")

	recs, err := csv.NewReader(resp.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "KRS error", recs[1][1])
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	resp, err := newTestApp(t).Test(httptest.NewRequest("GET", "/laporan/export?format=pdf", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}
