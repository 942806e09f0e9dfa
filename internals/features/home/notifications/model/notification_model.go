package model

// Notification diturunkan dari laporan milik user; tidak disimpan di server.
// Hanya status baca yang disimpan (di sesi).
type Notification struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Time    string `json:"time"`
	Type    string `json:"type"`
	Read    bool   `json:"read"`
	Date    string `json:"date"`
}
