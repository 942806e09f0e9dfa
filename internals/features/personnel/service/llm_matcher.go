package service

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	aisvc "laporkampus_backend/internals/features/ai/service"
	"laporkampus_backend/internals/features/personnel/model"
	report "laporkampus_backend/internals/features/reports/laporan/model"
)

var jsonBlock = regexp.MustCompile(`\{[\s\S]*\}`)

type llmChoice struct {
	SelectedPersonnel string  `json:"selectedPersonnel"`
	Confidence        float64 `json:"confidence"`
	Reason            string  `json:"reason"`
}

// ParseChoice mengambil teks dari "{" pertama sampai "}" terakhir lalu decode JSON.
func ParseChoice(raw string) (llmChoice, bool) {
	block := jsonBlock.FindString(raw)
	if block == "" {
		return llmChoice{}, false
	}
	var c llmChoice
	if err := json.Unmarshal([]byte(block), &c); err != nil {
		return llmChoice{}, false
	}
	if strings.TrimSpace(c.SelectedPersonnel) == "" {
		return llmChoice{}, false
	}
	return c, true
}

// LLMMatcher meminta LLM memilih petugas; hasil yang tidak bisa dipakai → fallback.
type LLMMatcher struct {
	Provider           aisvc.Provider
	Matcher            *Matcher
	FallbackConfidence float64
}

func NewLLMMatcher(p aisvc.Provider, m *Matcher, fallbackConfidence float64) *LLMMatcher {
	return &LLMMatcher{Provider: p, Matcher: m, FallbackConfidence: fallbackConfidence}
}

func (l *LLMMatcher) fallback(reason string) model.Suggestion {
	return model.Suggestion{
		Personnel:  l.Matcher.Roster().Fallback,
		Confidence: l.FallbackConfidence,
		Reason:     reason,
		Source:     "fallback",
	}
}

// Suggest. Error provider dikembalikan bersama suggestion fallback supaya pemanggil tetap punya jawaban.
func (l *LLMMatcher) Suggest(ctx context.Context, r report.Report) (model.Suggestion, error) {
	roster, err := json.Marshal(l.Matcher.Roster().Personnel)
	if err != nil {
		return l.fallback("roster tidak bisa diserialisasi"), err
	}
	raw, err := aisvc.Ask(ctx, l.Provider, aisvc.AdminInstruction, aisvc.PersonnelMatchPrompt(string(roster), r))
	if err != nil {
		return l.fallback("layanan AI tidak tersedia"), fmt.Errorf("suggest petugas: %w", err)
	}

	choice, ok := ParseChoice(raw)
	if !ok {
		return l.fallback("jawaban AI tidak bisa dibaca"), nil
	}
	p, ok := l.Matcher.Find(choice.SelectedPersonnel)
	if !ok {
		return l.fallback("petugas pilihan AI tidak ada di daftar"), nil
	}
	return model.Suggestion{
		Personnel:  p,
		Confidence: clamp01(choice.Confidence),
		Reason:     strings.TrimSpace(choice.Reason),
		Source:     "llm",
	}, nil
}

func clamp01(f float64) float64 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}
