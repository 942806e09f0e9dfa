package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"laporkampus_backend/internals/features/personnel/model"
	report "laporkampus_backend/internals/features/reports/laporan/model"
)

// LoadRoster mem-parse YAML roster. Roster tanpa fallback ditolak.
func LoadRoster(raw []byte) (model.Roster, error) {
	var r model.Roster
	if err := yaml.Unmarshal(raw, &r); err != nil {
		return r, fmt.Errorf("parse roster: %w", err)
	}
	if strings.TrimSpace(r.Fallback.Name) == "" {
		return r, errors.New("roster wajib punya fallback")
	}
	return r, nil
}

// Fold: huruf kecil + buang tanda diakritik ("Pelécehan" → "pelecehan").
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return cases.Fold().String(out)
}

// Matcher mencocokkan laporan dengan roster lewat hitungan kata kunci.
type Matcher struct {
	roster   model.Roster
	keywords [][]string // sudah di-fold, sejajar dengan roster.Personnel
}

func NewMatcher(r model.Roster) *Matcher {
	m := &Matcher{roster: r, keywords: make([][]string, len(r.Personnel))}
	for i, p := range r.Personnel {
		for _, k := range p.Expertise {
			if k = strings.TrimSpace(Fold(k)); k != "" {
				m.keywords[i] = append(m.keywords[i], k)
			}
		}
	}
	return m
}

func (m *Matcher) Roster() model.Roster { return m.roster }

// Scores: jumlah kata kunci tiap petugas yang muncul di judul+deskripsi.
func (m *Matcher) Scores(r report.Report) []int {
	text := Fold(r.Title + " " + r.Description)
	scores := make([]int, len(m.keywords))
	for i, kws := range m.keywords {
		for _, k := range kws {
			if strings.Contains(text, k) {
				scores[i]++
			}
		}
	}
	return scores
}

// Match: skor tertinggi menang; seri atau nol → fallback.
func (m *Matcher) Match(r report.Report) model.Match {
	best, bestScore, tie := -1, 0, false
	for i, s := range m.Scores(r) {
		switch {
		case s > bestScore:
			best, bestScore, tie = i, s, false
		case s == bestScore && s > 0:
			tie = true
		}
	}
	if best < 0 || tie {
		return model.Match{Personnel: m.roster.Fallback, Score: bestScore, Fallback: true}
	}
	return model.Match{Personnel: m.roster.Personnel[best], Score: bestScore}
}

// Ranking menghitung berapa laporan yang jatuh ke tiap petugas (termasuk fallback).
// Urut jumlah terbanyak, lalu nama.
func (m *Matcher) Ranking(reports []report.Report) []model.RankEntry {
	counts := make(map[string]int, len(m.roster.Personnel)+1)
	for _, r := range reports {
		counts[m.Match(r).Personnel.Name]++
	}
	all := append(append([]model.Personnel{}, m.roster.Personnel...), m.roster.Fallback)
	out := make([]model.RankEntry, 0, len(all))
	for _, p := range all {
		out = append(out, model.RankEntry{Name: p.Name, Position: p.Position, Count: counts[p.Name]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Find mencari petugas berdasarkan nama (tanpa beda huruf besar/kecil), termasuk fallback.
func (m *Matcher) Find(name string) (model.Personnel, bool) {
	want := strings.TrimSpace(Fold(name))
	if want == "" {
		return model.Personnel{}, false
	}
	for _, p := range m.roster.Personnel {
		if Fold(p.Name) == want {
			return p, true
		}
	}
	if Fold(m.roster.Fallback.Name) == want {
		return m.roster.Fallback, true
	}
	return model.Personnel{}, false
}
