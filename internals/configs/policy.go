package configs

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed policy.yaml
var defaultPolicyYAML []byte

type WarningPolicy struct {
	CriticalKeywords        []string `yaml:"critical_keywords"`
	CriticalDays            int      `yaml:"critical_days"`
	HighKeywords            []string `yaml:"high_keywords"`
	HighDays                int      `yaml:"high_days"`
	AttentionDays           int      `yaml:"attention_days"`
	ProcessingAttentionDays int      `yaml:"processing_attention_days"`
	DoneStatuses            []string `yaml:"done_statuses"`
}

type NotificationPolicy struct {
	Titles       map[string]string `yaml:"titles"`
	DefaultTitle string            `yaml:"default_title"`
}

type AIPolicy struct {
	SummaryMinGap           time.Duration `yaml:"summary_min_gap"`
	AutoResponseSpacing     time.Duration `yaml:"auto_response_spacing"`
	MatchFallbackConfidence float64       `yaml:"match_fallback_confidence"`
}

// Policy berisi tabel aturan bisnis (ambang hari, kata kunci kategori, judul notifikasi).
type Policy struct {
	Warning      WarningPolicy      `yaml:"warning"`
	Notification NotificationPolicy `yaml:"notification"`
	AI           AIPolicy           `yaml:"ai"`
}

// DefaultPolicy mengembalikan policy bawaan yang di-embed.
func DefaultPolicy() Policy {
	var p Policy
	if err := yaml.Unmarshal(defaultPolicyYAML, &p); err != nil {
		panic(fmt.Sprintf("policy.yaml bawaan rusak: %v", err))
	}
	return p
}

// LoadPolicy membaca POLICY_FILE bila ada; field yang kosong tetap memakai default.
func LoadPolicy(path string) (Policy, error) {
	p := DefaultPolicy()
	if path == "" {
		return p, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("baca policy %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return p, fmt.Errorf("parse policy %s: %w", path, err)
	}
	return p, nil
}
