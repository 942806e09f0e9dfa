package service

import (
	"fmt"
	"net/url"
	"strings"

	"laporkampus_backend/internals/features/personnel/model"
	report "laporkampus_backend/internals/features/reports/laporan/model"
)

// WhatsAppLink membuat tautan wa.me berisi ringkasan laporan. Petugas tanpa nomor → "".
func WhatsAppLink(p model.Personnel, r report.Report) string {
	digits := strings.Map(func(c rune) rune {
		if c >= '0' && c <= '9' {
			return c
		}
		return -1
	}, p.WhatsApp)
	if digits == "" {
		return ""
	}
	if strings.HasPrefix(digits, "0") {
		digits = "62" + digits[1:]
	}

	msg := fmt.Sprintf("Halo %s, mohon tindak lanjut laporan \"%s\" (kategori %s, urgensi %s).\n\n%s",
		p.Name, r.Title, r.Category, r.Urgency, r.Description)
	text := strings.ReplaceAll(url.QueryEscape(strings.TrimSpace(msg)), "+", "%20")
	return "https://wa.me/" + digits + "?text=" + text
}
