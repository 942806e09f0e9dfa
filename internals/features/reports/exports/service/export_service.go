// Package service membuat file ekspor laporan (XLSX untuk admin, CSV untuk olah data cepat).
package service

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/xuri/excelize/v2"

	report "laporkampus_backend/internals/features/reports/laporan/model"
	warnmodel "laporkampus_backend/internals/features/reports/warnings/model"
)

const (
	SheetReports  = "Laporan"
	SheetWarnings = "Peringatan"
)

var reportHeaders = []string{"ID", "Judul", "Kategori", "Urgensi", "Status", "Tanggal", "Pelapor", "Email", "Respon Terakhir", "Jumlah Respon"}

var warningHeaders = []string{"ID Laporan", "Judul", "Kategori", "Prioritas", "Status", "Hari Terlambat", "Detail"}

func reportRow(r report.Report) []any {
	return []any{
		r.ID, r.Title, r.Category, r.Urgency, r.Status, r.Date,
		r.SubmittedBy, r.Email, r.LastResponse().Message, len(r.Responses),
	}
}

func warningRow(w warnmodel.Warning) []any {
	return []any{w.ReportID, w.Title, w.Category, w.Priority, w.Status, w.DaysOverdue, w.Details}
}

// BuildXLSX: sheet Laporan + sheet Peringatan.
func BuildXLSX(reports []report.Report, warnings []warnmodel.Warning) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeSheet(f, SheetReports, reportHeaders, len(reports), func(i int) []any { return reportRow(reports[i]) }); err != nil {
		return nil, err
	}
	if err := writeSheet(f, SheetWarnings, warningHeaders, len(warnings), func(i int) []any { return warningRow(warnings[i]) }); err != nil {
		return nil, err
	}
	if idx, err := f.GetSheetIndex(SheetReports); err == nil {
		f.SetActiveSheet(idx)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("hapus sheet default: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("tulis xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sheet string, headers []string, n int, row func(i int) []any) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("buat sheet %s: %w", sheet, err)
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	hdr := make([]any, len(headers))
	for i, h := range headers {
		hdr[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &hdr); err != nil {
		return err
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		vals := row(i)
		if err := f.SetSheetRow(sheet, cell, &vals); err != nil {
			return fmt.Errorf("tulis baris %d: %w", i+2, err)
		}
	}
	return nil
}

// BuildCSV hanya berisi laporan.
func BuildCSV(reports []report.Report) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(reportHeaders); err != nil {
		return nil, err
	}
	for _, r := range reports {
		row := reportRow(r)
		rec := make([]string, len(row))
		for i, v := range row {
			rec[i] = fmt.Sprint(v)
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("tulis csv: %w", err)
	}
	return buf.Bytes(), nil
}
