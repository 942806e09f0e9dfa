package laravel

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// ErrNetwork dikembalikan saat request tidak sampai ke server (DNS, koneksi putus, timeout).
var ErrNetwork = errors.New("gagal terhubung ke server, periksa koneksi internet Anda")

// APIError adalah respons non-2xx dari Laravel.
type APIError struct {
	Status  int
	Message string
	// Fields terisi untuk 422 dengan format Laravel {errors: {field: [pesan]}}.
	Fields map[string][]string
	Body   []byte
}

func (e *APIError) Error() string { return e.Message }

// IsStatus true bila err adalah *APIError dengan status tertentu.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

type laravelErrorBody struct {
	Message string              `json:"message"`
	Error   string              `json:"error"`
	Errors  map[string][]string `json:"errors"`
}

func newAPIError(status int, body []byte) *APIError {
	var parsed laravelErrorBody
	_ = json.Unmarshal(body, &parsed)

	e := &APIError{Status: status, Body: body}
	if status == http.StatusUnprocessableEntity && len(parsed.Errors) > 0 {
		e.Fields = parsed.Errors
		e.Message = "Validasi gagal: " + formatFields(parsed.Errors)
		return e
	}

	detail := parsed.Message
	if detail == "" {
		detail = parsed.Error
	}
	if detail != "" {
		e.Message = fmt.Sprintf("permintaan gagal dengan status %d: %s", status, detail)
	} else {
		e.Message = fmt.Sprintf("permintaan gagal dengan status %d", status)
	}
	return e
}

func formatFields(fields map[string][]string) string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+strings.Join(fields[name], ", "))
	}
	return strings.Join(parts, "; ")
}
