package service

import (
	"fmt"
	"sort"
	"strings"

	report "laporkampus_backend/internals/features/reports/laporan/model"
)

const ChatInstruction = `Anda adalah asisten virtual LaporKampus, layanan pengaduan kampus.
Bantu mahasiswa dan staf memahami cara melapor, status laporan, dan kategori laporan.
Jawab dalam Bahasa Indonesia yang sopan, jelas, dan ringkas. Jangan mengarang data laporan.`

const AdminInstruction = `Anda adalah analis layanan pengaduan kampus yang membantu admin LaporKampus.
Gunakan hanya data yang diberikan. Jawab dalam Bahasa Indonesia.`

// SummaryStats data ringkas untuk prompt ringkasan dashboard.
type SummaryStats struct {
	Total      int
	ByStatus   map[string]int
	ByCategory map[string]int
	Critical   []string // judul laporan kritis teratas
	Overdue    int
}

// SummaryPrompt meminta ringkasan kondisi laporan untuk admin.
func SummaryPrompt(s SummaryStats) string {
	var b strings.Builder
	b.WriteString("Buat ringkasan kondisi laporan kampus untuk admin dalam 1 paragraf dan 3 poin rekomendasi tindakan.\n\n")
	fmt.Fprintf(&b, "Total laporan: %d\n", s.Total)
	b.WriteString("Per status:\n")
	writeCounts(&b, s.ByStatus)
	b.WriteString("Per kategori:\n")
	writeCounts(&b, s.ByCategory)
	fmt.Fprintf(&b, "Laporan yang butuh perhatian: %d\n", s.Overdue)
	if len(s.Critical) > 0 {
		b.WriteString("Laporan kritis:\n")
		for _, t := range s.Critical {
			fmt.Fprintf(&b, "- %s\n", t)
		}
	}
	return b.String()
}

func writeCounts(b *strings.Builder, m map[string]int) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(b, "- %s: %d\n", k, m[k])
	}
}

// TranslationPrompt terjemahan satu teks.
func TranslationPrompt(text, target string) string {
	if strings.TrimSpace(target) == "" {
		target = "Bahasa Inggris"
	}
	return fmt.Sprintf("Terjemahkan teks berikut ke %s. Balas hanya dengan hasil terjemahan tanpa penjelasan.\n\n%s", target, text)
}

// AutoResponsePrompt balasan otomatis pertama untuk laporan baru.
func AutoResponsePrompt(r report.Report) string {
	return fmt.Sprintf(`Tulis balasan singkat dan empatik (maksimal 3 kalimat) sebagai admin kampus untuk laporan berikut.
Jangan menjanjikan tanggal penyelesaian. Jangan gunakan format markdown.

Judul: %s
Kategori: %s
Urgensi: %s
Deskripsi: %s`, r.Title, r.Category, r.Urgency, r.Description)
}

// PersonnelMatchPrompt meminta pemilihan petugas dengan kontrak JSON.
// rosterJSON adalah daftar petugas yang sudah diserialisasi.
func PersonnelMatchPrompt(rosterJSON string, r report.Report) string {
	return fmt.Sprintf(`Pilih SATU petugas yang paling tepat menangani laporan berikut.

Daftar petugas (JSON):
%s

Laporan:
Judul: %s
Kategori: %s
Deskripsi: %s

Balas HANYA dengan objek JSON:
{"selectedPersonnel": "<nama persis dari daftar>", "confidence": <angka 0 sampai 1>, "reason": "<alasan singkat>"}`,
		rosterJSON, r.Title, r.Category, r.Description)
}
