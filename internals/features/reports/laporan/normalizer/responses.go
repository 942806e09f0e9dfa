package normalizer

import (
	"strings"

	"laporkampus_backend/internals/features/reports/laporan/model"
)

const defaultAuthor = "Admin"

// Kunci yang berisi riwayat balasan lengkap. "respon" diperiksa terakhir karena bisa
// berupa teks balasan tunggal.
var historyKeys = []string{"responses", "riwayat_respon", "balasan"}

// parseResponses selalu mengembalikan slice non-nil.
func parseResponses(raw map[string]any) []model.Response {
	for _, k := range historyKeys {
		if v, ok := raw[k]; ok && v != nil {
			if rs, ok := decodeResponses(v, raw); ok {
				return rs
			}
		}
	}
	if v, ok := raw["respon"]; ok && v != nil {
		if rs, ok := decodeResponses(v, raw); ok {
			return rs
		}
	}
	return []model.Response{}
}

// decodeResponses menangani array, objek tunggal, string JSON, dan teks biasa.
func decodeResponses(v any, raw map[string]any) ([]model.Response, bool) {
	switch t := v.(type) {
	case []any:
		out := make([]model.Response, 0, len(t))
		for _, item := range t {
			switch it := item.(type) {
			case map[string]any:
				if r, ok := toResponse(it, raw); ok {
					out = append(out, r)
				}
			case string:
				if s := strings.TrimSpace(it); s != "" {
					out = append(out, siblingResponse(s, raw))
				}
			}
		}
		return out, true

	case map[string]any:
		if r, ok := toResponse(t, raw); ok {
			return []model.Response{r}, true
		}
		return []model.Response{}, true

	case string:
		s := strings.TrimSpace(t)
		if s == "" || s == "null" {
			return []model.Response{}, true
		}
		if strings.HasPrefix(s, "[") || strings.HasPrefix(s, "{") {
			if decoded, err := Decode([]byte(s)); err == nil && decoded != nil {
				if rs, ok := decodeResponses(decoded, raw); ok {
					return rs, true
				}
			}
		}
		return []model.Response{siblingResponse(s, raw)}, true
	}
	return nil, false
}

func toResponse(obj, raw map[string]any) (model.Response, bool) {
	msg := str(obj, "message", "respon", "isi", "pesan", "text")
	if msg == "" {
		return model.Response{}, false
	}
	r := model.Response{
		Message:   msg,
		Timestamp: str(obj, "timestamp", "waktu_respon", "waktu", "created_at"),
		Author:    str(obj, "author", "oleh", "admin", "responder"),
	}
	if r.Timestamp == "" {
		r.Timestamp = str(raw, "waktu_respon")
	}
	if r.Author == "" {
		r.Author = defaultAuthor
	}
	return r, true
}

// siblingResponse membentuk balasan tunggal dari field saudara oleh/waktu_respon.
func siblingResponse(msg string, raw map[string]any) model.Response {
	author := str(raw, "oleh", "responder")
	if author == "" {
		author = defaultAuthor
	}
	return model.Response{
		Message:   msg,
		Timestamp: str(raw, "waktu_respon", "updated_at"),
		Author:    author,
	}
}
