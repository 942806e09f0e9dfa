package service

import (
	"fmt"
	"strings"

	helper "laporkampus_backend/internals/helpers"
)

// Record = satu baris mentah dari Laravel (user / feedback).
type Record = map[string]any

// Field membaca nilai sebagai string; angka & bool di-format apa adanya.
func Field(r Record, keys ...string) string {
	for _, k := range keys {
		v, ok := r[k]
		if !ok || v == nil {
			continue
		}
		if s, ok := v.(string); ok {
			return s
		}
		return fmt.Sprint(v)
	}
	return ""
}

// ListUsers: ?q= (nama/email/nim) & ?role=.
func ListUsers(users []Record, q, role string, p helper.Params) ([]Record, helper.Meta) {
	var rolePred func(Record) bool
	if role = strings.TrimSpace(role); role != "" {
		rolePred = func(r Record) bool { return strings.EqualFold(Field(r, "role"), role) }
	}
	items := helper.FilterSlice(users,
		helper.MatchQuery(q, func(r Record) []string {
			return []string{Field(r, "name", "nama"), Field(r, "email"), Field(r, "nim", "nip")}
		}),
		rolePred,
	)
	items = helper.SortSlice(items, p, map[string]func(a, b Record) bool{
		"name":       byField("name", "nama"),
		"email":      byField("email"),
		"role":       byField("role"),
		"created_at": byField("created_at"),
	}, "created_at")
	return helper.PaginateSlice(items, p)
}

// ListFeedback: ?q= (pesan/nama/email) & ?status=.
func ListFeedback(items []Record, q, status string, p helper.Params) ([]Record, helper.Meta) {
	var statusPred func(Record) bool
	if status = strings.TrimSpace(status); status != "" {
		statusPred = func(r Record) bool { return strings.EqualFold(Field(r, "status"), status) }
	}
	items = helper.FilterSlice(items,
		helper.MatchQuery(q, func(r Record) []string {
			return []string{Field(r, "message", "pesan", "feedback"), Field(r, "name", "nama"), Field(r, "email")}
		}),
		statusPred,
	)
	items = helper.SortSlice(items, p, map[string]func(a, b Record) bool{
		"created_at": byField("created_at"),
		"status":     byField("status"),
		"rating":     byField("rating"),
	}, "created_at")
	return helper.PaginateSlice(items, p)
}

func byField(keys ...string) func(a, b Record) bool {
	return func(a, b Record) bool {
		return strings.ToLower(Field(a, keys...)) < strings.ToLower(Field(b, keys...))
	}
}
