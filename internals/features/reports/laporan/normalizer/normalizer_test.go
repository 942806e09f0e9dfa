package normalizer

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laporkampus_backend/internals/features/reports/laporan/model"
)

func mustNormalize(t *testing.T, body string) []model.Report {
	t.Helper()
	reports, err := NormalizeJSON([]byte(body))
	require.NoError(t, err)
	return reports
}

func TestNormalizePayloadShapes(t *testing.T) {
	cases := map[string]struct {
		body string
		ids  []string
	}{
		"array":            {`[{"id":1,"judul":"a"},{"id":2,"judul":"b"}]`, []string{"1", "2"}},
		"data wrapper":     {`{"data":[{"id":7,"judul":"a"}],"meta":{"total":1}}`, []string{"7"}},
		"data object":      {`{"data":{"id":8,"judul":"a"}}`, []string{"8"}},
		"bare object":      {`{"id":"L-9","judul":"a","respon":null}`, []string{"L-9"}},
		"array valued key": {`{"success":true,"laporan":[{"judul":"a"},{"id":3}]}`, []string{"generated-0", "3"}},
		"missing ids":      {`[{"judul":"a"},{"judul":"b"}]`, []string{"generated-0", "generated-1"}},
		"unknown shape":    {`{"message":"ok"}`, nil},
		"scalar":           {`42`, nil},
		"empty array":      {`[]`, nil},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			reports := mustNormalize(t, tc.body)
			require.NotNil(t, reports)
			require.Len(t, reports, len(tc.ids))
			for i, r := range reports {
				assert.Equal(t, tc.ids[i], r.ID)
				assert.NotEmpty(t, r.ID)
				assert.NotNil(t, r.Responses)
			}
		})
	}
}

func TestNormalizeSkipsResponseKeysWhenScanning(t *testing.T) {
	// single report whose only array-valued key is its own response history
	reports := mustNormalize(t, `{"id":4,"judul":"x","responses":[{"message":"m"}]}`)
	require.Len(t, reports, 1)
	assert.Equal(t, "4", reports[0].ID)
	assert.Equal(t, []model.Response{{Message: "m", Author: "Admin"}}, reports[0].Responses)
}

func TestNormalizeFieldMapping(t *testing.T) {
	reports := mustNormalize(t, `{"data":[{
		"id": 12,
		"judul": "Lampu kelas mati",
		"deskripsi": "Gedung B lantai 2",
		"kategori": "Fasilitas",
		"status": "In Progress",
		"tanggal_lapor": "2025-02-01",
		"created_at": "2025-02-01T08:00:00Z",
		"updated_at": "2025-02-03T08:00:00Z",
		"lampiran": "uploads/foto-lampu.webp",
		"user": {"name": "Sari", "email": "sari@kampus.ac.id"}
	}]}`)
	require.Len(t, reports, 1)
	r := reports[0]

	assert.Equal(t, "12", r.ID)
	assert.Equal(t, "Lampu kelas mati", r.Title)
	assert.Equal(t, "Gedung B lantai 2", r.Description)
	assert.Equal(t, "Fasilitas", r.Category)
	assert.Equal(t, model.DefaultUrgency, r.Urgency)
	assert.Equal(t, "2025-02-01", r.Date)
	assert.Equal(t, "In Progress", r.Status)
	assert.Equal(t, "Sari", r.SubmittedBy)
	assert.Equal(t, "sari@kampus.ac.id", r.Email)
	assert.Equal(t, "2025-02-01T08:00:00Z", r.SubmittedAt)
	assert.Equal(t, "2025-02-03T08:00:00Z", r.UpdatedAt)
	assert.Equal(t, "uploads/foto-lampu.webp", r.Attachment)
	assert.Equal(t, "foto-lampu.webp", r.AttachmentName)
	assert.Equal(t, "Lampu kelas mati", r.Original["judul"])
	assert.Empty(t, r.Responses)
}

func TestNormalizeAttachmentAliases(t *testing.T) {
	reports := mustNormalize(t, `[
		{"id":1,"attachment":"a.pdf"},
		{"id":2,"lampiran":"x/b.png","lampiran_filename":"bukti.png"}
	]`)
	require.Len(t, reports, 2)
	assert.Equal(t, "a.pdf", reports[0].Attachment)
	assert.Equal(t, "a.pdf", reports[0].AttachmentName)
	assert.Equal(t, "x/b.png", reports[1].Attachment)
	assert.Equal(t, "bukti.png", reports[1].AttachmentName)
}

func TestResponseEncodingsAreEquivalent(t *testing.T) {
	want := []model.Response{{Message: "Sudah dicek teknisi", Timestamp: "2025-01-02 10:00", Author: "Budi"}}

	encodings := map[string]string{
		"json string":       `{"id":1,"respon":"{\"respon\":\"Sudah dicek teknisi\",\"oleh\":\"Budi\",\"waktu_respon\":\"2025-01-02 10:00\"}"}`,
		"array":             `{"id":1,"respon":[{"respon":"Sudah dicek teknisi","oleh":"Budi","waktu_respon":"2025-01-02 10:00"}]}`,
		"single object":     `{"id":1,"respon":{"respon":"Sudah dicek teknisi","oleh":"Budi","waktu_respon":"2025-01-02 10:00"}}`,
		"siblings":          `{"id":1,"respon":"Sudah dicek teknisi","oleh":"Budi","waktu_respon":"2025-01-02 10:00"}`,
		"json array string": `{"id":1,"respon":"[{\"message\":\"Sudah dicek teknisi\",\"author\":\"Budi\",\"timestamp\":\"2025-01-02 10:00\"}]"}`,
	}

	for name, body := range encodings {
		t.Run(name, func(t *testing.T) {
			reports := mustNormalize(t, body)
			require.Len(t, reports, 1)
			if diff := cmp.Diff(want, reports[0].Responses); diff != "" {
				t.Fatalf("responses mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResponsesAlwaysArray(t *testing.T) {
	for _, body := range []string{
		`{"id":1}`,
		`{"id":1,"respon":null}`,
		`{"id":1,"respon":""}`,
		`{"id":1,"respon":42}`,
		`{"id":1,"responses":[]}`,
		`{"id":1,"respon":{"oleh":"x"}}`,
	} {
		reports := mustNormalize(t, body)
		require.Len(t, reports, 1, body)
		assert.NotNil(t, reports[0].Responses, body)
		assert.Empty(t, reports[0].Responses, body)

		b, err := json.Marshal(reports[0])
		require.NoError(t, err)
		assert.Contains(t, string(b), `"responses":[]`)
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	first := mustNormalize(t, `{"data":[
		{"id":5,"judul":"AC rusak","kategori":"Fasilitas","status":"Pending","tanggal_lapor":"2025-01-01","respon":null},
		{"judul":"Parkir","respon":"Sudah ditindak","oleh":"Satpam","waktu_respon":"2025-01-03","lampiran":"p/q.jpg"},
		{"id":6,"judul":"Toilet","respon":[{"respon":"ok","oleh":"A"},"teks"],"user":{"name":"Rina"}}
	]}`)

	b, err := json.Marshal(first)
	require.NoError(t, err)
	second := mustNormalize(t, string(b))

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("re-normalizing changed output (-first +second):\n%s", diff)
	}
}

func TestNormalizeInvalidJSON(t *testing.T) {
	reports, err := NormalizeJSON([]byte(`{"data":[`))
	require.Error(t, err)
	assert.NotNil(t, reports)
	assert.Empty(t, reports)

	reports, err = NormalizeJSON(nil)
	require.NoError(t, err)
	assert.Empty(t, reports)
}
