package helper

import (
	"sort"
	"strings"
)

// Data dari Laravel sudah diambil utuh; filter/sort/paging dilakukan di memori.

// FilterSlice mengembalikan elemen yang lolos semua predikat. Predikat nil dilewati.
func FilterSlice[T any](items []T, preds ...func(T) bool) []T {
	out := make([]T, 0, len(items))
next:
	for _, it := range items {
		for _, p := range preds {
			if p != nil && !p(it) {
				continue next
			}
		}
		out = append(out, it)
	}
	return out
}

// SortSlice mengurutkan salinan items dengan less dari kunci p.SortBy (stabil).
// Kunci yang tidak dikenal → defaultKey.
func SortSlice[T any](items []T, p Params, keys map[string]func(a, b T) bool, defaultKey string) []T {
	out := append([]T(nil), items...)
	less, ok := keys[p.SortBy]
	if !ok {
		less, ok = keys[defaultKey]
		if !ok {
			return out
		}
	}
	desc := p.Desc()
	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

// PaginateSlice memotong halaman sesuai params dan membuat Meta-nya.
func PaginateSlice[T any](items []T, p Params) ([]T, Meta) {
	meta := BuildMeta(int64(len(items)), p)
	start := p.Offset()
	if start >= len(items) || start < 0 {
		return []T{}, meta
	}
	end := start + p.Limit()
	if end > len(items) || p.Limit() <= 0 {
		end = len(items)
	}
	return append([]T(nil), items[start:end]...), meta
}

// ContainsFold substring tanpa peduli huruf besar/kecil.
func ContainsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// MatchQuery predikat pencarian bebas atas beberapa field.
func MatchQuery[T any](q string, fields func(T) []string) func(T) bool {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil
	}
	return func(it T) bool {
		for _, f := range fields(it) {
			if ContainsFold(f, q) {
				return true
			}
		}
		return false
	}
}
