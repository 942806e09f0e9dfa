package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Response adalah satu entri riwayat balasan admin pada sebuah laporan.
type Response struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Author    string `json:"author"`
}

// Report adalah bentuk laporan yang sudah dinormalisasi dari payload Laravel.
// Responses tidak pernah nil setelah normalisasi.
type Report struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Category       string         `json:"category"`
	Urgency        string         `json:"urgency"`
	Date           string         `json:"date"`
	Status         string         `json:"status"`
	SubmittedBy    string         `json:"submittedBy"`
	SubmittedAt    string         `json:"submittedAt"`
	UpdatedAt      string         `json:"updatedAt,omitempty"`
	Email          string         `json:"email,omitempty"`
	Attachment     string         `json:"attachment,omitempty"`
	AttachmentName string         `json:"attachmentName,omitempty"`
	Responses      []Response     `json:"responses"`
	Original       map[string]any `json:"original,omitempty"`
}

const DefaultUrgency = "Medium"

// LastResponse mengembalikan balasan terakhir, atau Response kosong.
func (r Report) LastResponse() Response {
	if len(r.Responses) == 0 {
		return Response{}
	}
	return r.Responses[len(r.Responses)-1]
}

// UIStatus adalah proyeksi status backend untuk tampilan.
func (r Report) UIStatus() string {
	return ToUI(r.Status)
}

// OwnerID id pelapor dari record asli: user_id, id_user, atau user.id.
// Kosong kalau Laravel tidak mengirimnya.
func (r Report) OwnerID() string {
	for _, k := range []string{"user_id", "id_user"} {
		if id := idString(r.Original[k]); id != "" {
			return id
		}
	}
	if u, ok := r.Original["user"].(map[string]any); ok {
		return idString(u["id"])
	}
	return ""
}

func idString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case string:
		return strings.TrimSpace(x)
	default:
		return strings.TrimSpace(fmt.Sprint(x))
	}
}
