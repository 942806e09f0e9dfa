package laravel

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"laporkampus_backend/internals/features/reports/laporan/model"
	"laporkampus_backend/internals/features/reports/laporan/normalizer"
)

// GetReports mengambil semua laporan yang terlihat oleh token dan menormalisasinya.
func (c *Client) GetReports(ctx context.Context, token string) ([]model.Report, error) {
	body, err := c.firstFound(ctx, token, "/api/laporan", "/api/laporan/all")
	if err != nil {
		return nil, err
	}
	reports, err := normalizer.NormalizeJSON(body)
	if err != nil {
		// bentuk rusak → daftar kosong, bukan error ke UI
		c.log.Warn("payload laporan tidak bisa dibaca", zap.Error(err))
	}
	return reports, nil
}

// GetReport mengambil satu laporan. Kalau endpoint detail 404, cari di daftar lengkap.
func (c *Client) GetReport(ctx context.Context, token, id string) (model.Report, error) {
	body, err := c.firstFound(ctx, token,
		"/api/laporan/"+escapeID(id),
		"/api/laporan/show/"+escapeID(id),
	)
	if err == nil {
		reports, _ := normalizer.NormalizeJSON(body)
		for _, r := range reports {
			if r.ID == id {
				return r, nil
			}
		}
		if len(reports) == 1 {
			return reports[0], nil
		}
	} else if !IsStatus(err, http.StatusNotFound) {
		return model.Report{}, err
	}

	all, err := c.GetReports(ctx, token)
	if err != nil {
		return model.Report{}, err
	}
	for _, r := range all {
		if r.ID == id {
			return r, nil
		}
	}
	return model.Report{}, &APIError{
		Status:  http.StatusNotFound,
		Message: fmt.Sprintf("laporan %s tidak ditemukan", id),
	}
}

// CreateReport meneruskan laporan baru ke Laravel.
func (c *Client) CreateReport(ctx context.Context, token string, payload map[string]any) (map[string]any, error) {
	body, err := c.call(ctx, http.MethodPost, "/api/laporan", token, payload)
	if err != nil {
		return nil, err
	}
	return decodeObject(body), nil
}

// UpdateReport mengirim mutasi status/respon. PUT dulu; kalau server menjawab 405,
// body yang sama dikirim ulang sekali sebagai POST. Tidak ada backoff atau idempotency key.
func (c *Client) UpdateReport(ctx context.Context, token, id string, payload map[string]any) (map[string]any, error) {
	body, err := encode(payload)
	if err != nil {
		return nil, err
	}
	path := "/api/laporan/" + escapeID(id)

	resp, err := c.send(ctx, http.MethodPut, path, token, body)
	if err != nil {
		return nil, err
	}
	if resp.Status == http.StatusMethodNotAllowed {
		c.log.Info("PUT ditolak (405), ulang sebagai POST", zap.String("id", id))
		resp, err = c.send(ctx, http.MethodPost, path, token, body)
		if err != nil {
			return nil, err
		}
	}
	if !resp.ok() {
		return nil, newAPIError(resp.Status, resp.Body)
	}
	return decodeObject(resp.Body), nil
}
