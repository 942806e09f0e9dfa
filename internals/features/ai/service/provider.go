// Package service adalah façade LLM: satu antarmuka chat untuk Gemini dan
// provider REST chat-completions, plus prompt, throttle, dan auto-responder.
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Role pesan dalam riwayat chat.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Message satu giliran percakapan.
type Message struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// ChatSession mengirim pesan dalam satu percakapan.
type ChatSession interface {
	SendMessage(ctx context.Context, text string) (string, error)
}

// Provider membuat sesi chat dengan riwayat & instruksi sistem.
type Provider interface {
	Name() string
	NewChatSession(ctx context.Context, history []Message, systemInstruction string) (ChatSession, error)
}

var ErrNotConfigured = errors.New("layanan AI belum dikonfigurasi")

// Config dari env (GEMINI_*, LLM_*).
type Config struct {
	Provider     string // gemini | rest | kosong = otomatis
	GeminiAPIKey string
	GeminiModel  string
	RESTURL      string
	RESTKey      string
	RESTModel    string
	Timeout      time.Duration
}

// NewProvider memilih provider sesuai konfigurasi. Tanpa kunci apa pun → ErrNotConfigured.
func NewProvider(ctx context.Context, cfg Config, log *zap.Logger) (Provider, error) {
	if log == nil {
		log = zap.NewNop()
	}
	name := strings.ToLower(strings.TrimSpace(cfg.Provider))
	if name == "" {
		switch {
		case cfg.GeminiAPIKey != "":
			name = "gemini"
		case cfg.RESTURL != "":
			name = "rest"
		}
	}

	switch name {
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			return nil, ErrNotConfigured
		}
		return NewGeminiProvider(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, log)
	case "rest":
		if cfg.RESTURL == "" {
			return nil, ErrNotConfigured
		}
		return NewRESTProvider(RESTConfig{
			URL:     cfg.RESTURL,
			APIKey:  cfg.RESTKey,
			Model:   cfg.RESTModel,
			Timeout: cfg.Timeout,
		}, log), nil
	default:
		return nil, ErrNotConfigured
	}
}

// Ask = sesi baru tanpa riwayat + satu pesan.
func Ask(ctx context.Context, p Provider, systemInstruction, prompt string) (string, error) {
	if p == nil {
		return "", ErrNotConfigured
	}
	cs, err := p.NewChatSession(ctx, nil, systemInstruction)
	if err != nil {
		return "", err
	}
	return cs.SendMessage(ctx, prompt)
}
