package service

import (
	"html"
	"regexp"
	"strings"
)

var (
	manyNewlines = regexp.MustCompile(`\n{3,}`)
	boldMarker   = regexp.MustCompile(`\*\*(.+?)\*\*`)
)

// FormatReply merapikan jawaban chat untuk ditampilkan sebagai HTML:
// CRLF → LF, 3+ baris kosong dipadatkan, teks di-escape, **tebal** → <strong>, baris baru → <br>.
func FormatReply(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = manyNewlines.ReplaceAllString(s, "\n\n")
	s = strings.TrimSpace(s)
	s = html.EscapeString(s)
	s = boldMarker.ReplaceAllString(s, "<strong>$1</strong>")
	return strings.ReplaceAll(s, "\n", "<br>")
}
