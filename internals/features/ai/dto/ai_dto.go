package dto

import "laporkampus_backend/internals/features/ai/service"

type ChatRequest struct {
	Message string            `json:"message" validate:"required"`
	History []service.Message `json:"history"`
}

type ChatResponse struct {
	Reply    string `json:"reply"`
	Provider string `json:"provider"`
}

type TranslateRequest struct {
	Text   string `json:"text" validate:"required"`
	Target string `json:"target"`
}

// AutoRespondRequest: ids kosong = semua laporan Pending yang belum punya balasan.
type AutoRespondRequest struct {
	IDs []string `json:"ids"`
}

type AutoRespondResponse struct {
	Jobs    []QueuedJob `json:"jobs"`
	Skipped []string    `json:"skipped"`
}

type QueuedJob struct {
	JobID    string `json:"jobId"`
	ReportID string `json:"reportId"`
}
