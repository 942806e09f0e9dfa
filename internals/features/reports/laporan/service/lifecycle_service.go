// Package service berisi transisi status laporan: Pending → In Progress → Selesai.
package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"laporkampus_backend/internals/features/reports/laporan/model"
)

// Updater adalah bagian klien Laravel yang dipakai lifecycle.
type Updater interface {
	UpdateReport(ctx context.Context, token, id string, payload map[string]any) (map[string]any, error)
}

type Lifecycle struct {
	API Updater
	Log *zap.Logger
}

func NewLifecycle(api Updater, log *zap.Logger) *Lifecycle {
	if log == nil {
		log = zap.NewNop()
	}
	return &Lifecycle{API: api, Log: log.Named("lifecycle")}
}

// Respond mengirim balasan dan memindahkan laporan ke "In Progress".
// Tidak ada guard status akhir: laporan Selesai tetap bisa dibalas.
func (l *Lifecycle) Respond(ctx context.Context, token string, r model.Report, message string) (map[string]any, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, fmt.Errorf("pesan balasan kosong")
	}
	payload := ResubmitPayload(r)
	payload["status"] = model.StatusInProgress
	payload["respon"] = message

	l.Log.Info("kirim respon", zap.String("id", r.ID), zap.String("from", r.Status))
	return l.API.UpdateReport(ctx, token, r.ID, payload)
}

// Resolve menandai Selesai dengan mengirim ulang teks respon terakhir apa adanya.
func (l *Lifecycle) Resolve(ctx context.Context, token string, r model.Report) (map[string]any, error) {
	payload := ResubmitPayload(r)
	payload["status"] = model.StatusSelesai
	payload["respon"] = lastResponseText(r)

	l.Log.Info("tandai selesai", zap.String("id", r.ID), zap.String("from", r.Status))
	return l.API.UpdateReport(ctx, token, r.ID, payload)
}

// Field laporan yang wajib dikirim ulang saat update. Nama field mengikuti record asli
// kalau ada, default ke nama Laravel pertama. onlyIfPresent: hanya dikirim kalau record
// asli memang punya salah satu kuncinya (nilai UI hasil default tidak ikut).
var resubmitFields = []struct {
	keys          []string
	value         func(model.Report) string
	onlyIfPresent bool
}{
	{[]string{"judul", "title"}, func(r model.Report) string { return r.Title }, false},
	{[]string{"deskripsi", "isi_laporan", "isi", "description"}, func(r model.Report) string { return r.Description }, false},
	{[]string{"kategori", "category"}, func(r model.Report) string { return r.Category }, false},
	{[]string{"urgensi", "prioritas", "urgency"}, func(r model.Report) string { return r.Urgency }, true},
	{[]string{"tanggal_lapor", "tanggal", "date"}, func(r model.Report) string { return r.Date }, false},
}

// Metadata lampiran dikirim ulang apa adanya dengan nama kunci aslinya.
var attachmentKeys = []string{
	"lampiran", "lampiran_filename", "lampiran_path",
	"lampiran_url", "nama_lampiran", "attachment", "attachment_name", "file_path", "file_name",
}

// ResubmitPayload membangun body update dari field asli laporan.
func ResubmitPayload(r model.Report) map[string]any {
	p := make(map[string]any, len(resubmitFields)+len(attachmentKeys)+2)
	for _, f := range resubmitFields {
		v := f.value(r)
		if v == "" {
			continue
		}
		key, found := f.keys[0], false
		for _, k := range f.keys {
			if _, ok := r.Original[k]; ok {
				key, found = k, true
				break
			}
		}
		if f.onlyIfPresent && !found {
			continue
		}
		p[key] = v
	}
	for _, k := range attachmentKeys {
		if v, ok := r.Original[k]; ok && v != nil {
			p[k] = v
		}
	}
	return p
}

func lastResponseText(r model.Report) string {
	if msg := r.LastResponse().Message; msg != "" {
		return msg
	}
	if s, ok := r.Original["respon"].(string); ok {
		return s
	}
	return ""
}
