package service

import (
	"errors"
	"strings"
)

const (
	MsgRateLimit = "Layanan AI sedang sibuk (batas permintaan tercapai). Silakan coba lagi beberapa saat lagi."
	MsgGeneric   = "Maaf, terjadi kesalahan saat menghubungi layanan AI. Silakan coba lagi."
)

// IsRateLimit mengenali error rate limit dari teks pesannya ("429" / "rate limit").
func IsRateLimit(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") || strings.Contains(msg, "rate limit")
}

// UserMessage teks yang aman ditampilkan ke pengguna.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotConfigured):
		return ErrNotConfigured.Error()
	case IsRateLimit(err):
		return MsgRateLimit
	default:
		return MsgGeneric
	}
}
