package model

// Personnel adalah petugas yang bisa ditunjuk menangani laporan. Data referensi, read-only.
type Personnel struct {
	Name      string   `yaml:"name" json:"name"`
	Expertise []string `yaml:"expertise" json:"expertise"`
	Position  string   `yaml:"position" json:"position"`
	WhatsApp  string   `yaml:"whatsapp" json:"whatsapp,omitempty"`
}

// Roster = daftar petugas + petugas default saat tidak ada yang cocok.
type Roster struct {
	Personnel []Personnel `yaml:"personnel" json:"personnel"`
	Fallback  Personnel   `yaml:"fallback" json:"fallback"`
}

// Match hasil pencocokan kata kunci.
type Match struct {
	Personnel Personnel `json:"personnel"`
	Score     int       `json:"score"`
	Fallback  bool      `json:"fallback"`
}

// RankEntry satu baris grafik beban petugas.
type RankEntry struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Count    int    `json:"count"`
}

// Suggestion hasil rekomendasi (kata kunci atau LLM) + tautan WhatsApp.
type Suggestion struct {
	Personnel  Personnel `json:"personnel"`
	Confidence float64   `json:"confidence"`
	Reason     string    `json:"reason"`
	Source     string    `json:"source"` // keyword | llm | fallback
	WhatsApp   string    `json:"whatsappLink,omitempty"`
}
