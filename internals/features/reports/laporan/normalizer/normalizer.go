// Package normalizer mengubah payload laporan dari Laravel (bentuknya tidak konsisten)
// menjadi []model.Report yang seragam.
package normalizer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path"
	"sort"
	"strconv"
	"strings"

	"laporkampus_backend/internals/features/reports/laporan/model"
)

// recognizer mencoba mengenali satu bentuk payload. ok=false artinya bentuk tidak cocok.
type recognizer func(v any) (records []map[string]any, ok bool)

// Urutan penting: bentuk pertama yang cocok menang.
var recognizers = []recognizer{
	fromArray,
	fromDataKey,
	fromArrayValuedKey,
	fromSingleObject,
}

var idKeys = []string{"id", "id_laporan", "laporan_id"}

// Field milik satu laporan; tidak pernah dianggap sebagai daftar laporan oleh fromArrayValuedKey.
var recordFieldKeys = map[string]struct{}{
	"responses": {}, "riwayat_respon": {}, "balasan": {}, "respon": {}, "original": {},
}

// Normalize menerima nilai JSON hasil decode (any) dan mengembalikan daftar laporan.
// Bentuk yang tidak dikenali menghasilkan slice kosong, bukan error.
func Normalize(v any) []model.Report {
	records := Records(v)
	out := make([]model.Report, 0, len(records))
	for i, raw := range records {
		out = append(out, NormalizeRecord(raw, i))
	}
	return out
}

// NormalizeJSON men-decode body lalu menormalisasi. Angka dibaca sebagai json.Number
// supaya id numerik tidak berubah jadi notasi eksponen.
func NormalizeJSON(body []byte) ([]model.Report, error) {
	v, err := Decode(body)
	if err != nil {
		return []model.Report{}, err
	}
	return Normalize(v), nil
}

// Decode men-decode JSON dengan UseNumber.
func Decode(body []byte) (any, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode payload laporan: %w", err)
	}
	return v, nil
}

// Records menjalankan rantai recognizer dan mengembalikan record mentah.
func Records(v any) []map[string]any {
	for _, rec := range recognizers {
		if records, ok := rec(v); ok {
			return records
		}
	}
	return nil
}

func fromArray(v any) ([]map[string]any, bool) {
	arr, ok := v.([]any)
	if !ok {
		return nil, false
	}
	return objectsOf(arr), true
}

func fromDataKey(v any) ([]map[string]any, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	switch data := m["data"].(type) {
	case []any:
		return objectsOf(data), true
	case map[string]any:
		// Laravel resource tunggal: {"data": {...}}
		return fromSingleObject(data)
	}
	return nil, false
}

func fromArrayValuedKey(v any) ([]map[string]any, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, skip := recordFieldKeys[k]; skip {
			continue
		}
		arr, ok := m[k].([]any)
		if !ok || len(arr) == 0 {
			continue
		}
		if objs := objectsOf(arr); len(objs) > 0 {
			return objs, true
		}
	}
	return nil, false
}

func fromSingleObject(v any) ([]map[string]any, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	for _, k := range idKeys {
		if _, has := m[k]; has {
			return []map[string]any{m}, true
		}
	}
	return nil, false
}

func objectsOf(arr []any) []map[string]any {
	out := make([]map[string]any, 0, len(arr))
	for _, item := range arr {
		if obj, ok := item.(map[string]any); ok {
			out = append(out, obj)
		}
	}
	return out
}

// NormalizeRecord membentuk satu Report dari record mentah. index dipakai untuk id sintetis.
// Kunci Indonesia dari Laravel maupun kunci Inggris hasil normalisasi sama-sama diterima,
// sehingga normalisasi ulang tidak mengubah apa-apa.
func NormalizeRecord(raw map[string]any, index int) model.Report {
	r := model.Report{
		ID:          str(raw, idKeys...),
		Title:       str(raw, "title", "judul"),
		Description: str(raw, "description", "deskripsi", "isi", "isi_laporan"),
		Category:    str(raw, "category", "kategori"),
		Urgency:     str(raw, "urgency", "urgensi", "prioritas"),
		Date:        str(raw, "date", "tanggal_lapor", "tanggal", "created_at"),
		Status:      str(raw, "status"),
		SubmittedBy: str(raw, "submittedBy", "pelapor", "nama_pelapor"),
		SubmittedAt: str(raw, "submittedAt", "created_at", "tanggal_lapor"),
		UpdatedAt:   str(raw, "updatedAt", "updated_at"),
		Email:       str(raw, "email", "email_pelapor"),
		Attachment:  str(raw, "attachment", "lampiran", "lampiran_url", "file_path"),
		AttachmentName: str(raw,
			"attachmentName", "lampiran_filename", "attachment_name", "nama_lampiran"),
		Responses: parseResponses(raw),
	}

	if r.ID == "" {
		r.ID = fmt.Sprintf("generated-%d", index)
	}
	if r.Urgency == "" {
		r.Urgency = model.DefaultUrgency
	}
	if r.Status == "" {
		r.Status = model.StatusPending
	}
	if user, ok := raw["user"].(map[string]any); ok {
		if r.SubmittedBy == "" {
			r.SubmittedBy = str(user, "name", "nama")
		}
		if r.Email == "" {
			r.Email = str(user, "email")
		}
	}
	if r.SubmittedBy == "" {
		r.SubmittedBy = "Anonim"
	}
	if r.AttachmentName == "" && r.Attachment != "" {
		r.AttachmentName = path.Base(r.Attachment)
	}

	if orig, ok := raw["original"].(map[string]any); ok {
		r.Original = orig
	} else {
		r.Original = raw
	}
	return r
}

// str mengambil nilai pertama yang ada & tidak kosong dari daftar kunci, sebagai string.
func str(m map[string]any, keys ...string) string {
	for _, k := range keys {
		v, ok := m[k]
		if !ok || v == nil {
			continue
		}
		if s := scalarString(v); s != "" {
			return s
		}
	}
	return ""
}

func scalarString(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}
