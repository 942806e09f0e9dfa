package dto

import (
	"strings"

	"laporkampus_backend/internals/features/reports/laporan/model"
)

// ================== REQUEST ==================

// CreateReportRequest form laporan baru (diteruskan ke Laravel dengan nama field Indonesia).
type CreateReportRequest struct {
	Judul            string `json:"judul" validate:"required,min=3,max=200"`
	Deskripsi        string `json:"deskripsi" validate:"required,min=5"`
	Kategori         string `json:"kategori" validate:"required"`
	Urgensi          string `json:"urgensi" validate:"omitempty,oneof=Low Medium High"`
	TanggalLapor     string `json:"tanggal_lapor" validate:"omitempty"`
	Lampiran         string `json:"lampiran" validate:"omitempty"`
	LampiranFilename string `json:"lampiran_filename" validate:"omitempty"`
}

func (r *CreateReportRequest) Normalize() {
	r.Judul = strings.TrimSpace(r.Judul)
	r.Deskripsi = strings.TrimSpace(r.Deskripsi)
	r.Kategori = strings.TrimSpace(r.Kategori)
	if r.Urgensi == "" {
		r.Urgensi = model.DefaultUrgency
	}
}

func (r *CreateReportRequest) ToPayload() map[string]any {
	p := map[string]any{
		"judul":     r.Judul,
		"deskripsi": r.Deskripsi,
		"kategori":  r.Kategori,
		"urgensi":   r.Urgensi,
		"status":    model.StatusPending,
	}
	if r.TanggalLapor != "" {
		p["tanggal_lapor"] = r.TanggalLapor
	}
	if r.Lampiran != "" {
		p["lampiran"] = r.Lampiran
	}
	if r.LampiranFilename != "" {
		p["lampiran_filename"] = r.LampiranFilename
	}
	return p
}

// RespondRequest balasan admin.
type RespondRequest struct {
	Message string `json:"message" validate:"required,min=2"`
}

// ================== RESPONSE ==================

// ReportResponse laporan ternormalisasi + status versi UI.
type ReportResponse struct {
	model.Report
	UIStatus string `json:"uiStatus"`
}

func ToReportResponse(r model.Report) ReportResponse {
	return ReportResponse{Report: r, UIStatus: r.UIStatus()}
}

func ToReportResponseList(rs []model.Report) []ReportResponse {
	out := make([]ReportResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, ToReportResponse(r))
	}
	return out
}
