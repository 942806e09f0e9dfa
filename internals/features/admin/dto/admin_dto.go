package dto

import (
	warnmodel "laporkampus_backend/internals/features/reports/warnings/model"
)

type MonthCount struct {
	Month string `json:"month"` // 2025-01
	Count int    `json:"count"`
}

// DashboardResponse angka ringkas untuk halaman dashboard admin.
type DashboardResponse struct {
	TotalReports   int                 `json:"totalReports"`
	TotalUsers     int                 `json:"totalUsers"`
	ByStatus       map[string]int      `json:"byStatus"`   // per status UI (new, inProgress, archived)
	ByCategory     map[string]int      `json:"byCategory"` // per kategori
	Monthly        []MonthCount        `json:"monthly"`
	TopWarnings    []warnmodel.Warning `json:"topWarnings"`
	WarningSummary warnmodel.Summary   `json:"warningSummary"`
}

// UpdateFeedbackRequest: field bebas diteruskan ke Laravel, status wajib kalau dikirim.
type UpdateFeedbackRequest struct {
	Status   string `json:"status" validate:"omitempty,max=50"`
	Response string `json:"response" validate:"omitempty,max=2000"`
}

func (r UpdateFeedbackRequest) ToPayload() map[string]any {
	out := map[string]any{}
	if r.Status != "" {
		out["status"] = r.Status
	}
	if r.Response != "" {
		out["response"] = r.Response
	}
	return out
}
