package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

const DefaultGeminiModel = "gemini-1.5-flash"

// GeminiProvider memakai SDK generative-ai-go; ChatSession-nya menyimpan riwayat sendiri.
type GeminiProvider struct {
	client *genai.Client
	model  string
	log    *zap.Logger
}

func NewGeminiProvider(ctx context.Context, apiKey, model string, log *zap.Logger) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("buat klien gemini: %w", err)
	}
	if model == "" {
		model = DefaultGeminiModel
	}
	return &GeminiProvider{client: client, model: model, log: log.Named("gemini")}, nil
}

func (g *GeminiProvider) Name() string { return "gemini" }

func (g *GeminiProvider) Close() error { return g.client.Close() }

func (g *GeminiProvider) NewChatSession(_ context.Context, history []Message, systemInstruction string) (ChatSession, error) {
	m := g.client.GenerativeModel(g.model)
	if strings.TrimSpace(systemInstruction) != "" {
		m.SystemInstruction = genai.NewUserContent(genai.Text(systemInstruction))
	}
	cs := m.StartChat()
	for _, h := range history {
		if strings.TrimSpace(h.Text) == "" {
			continue
		}
		role := RoleUser
		if h.Role == RoleModel || h.Role == "assistant" {
			role = RoleModel
		}
		cs.History = append(cs.History, &genai.Content{Role: role, Parts: []genai.Part{genai.Text(h.Text)}})
	}
	return &geminiSession{cs: cs, log: g.log}, nil
}

type geminiSession struct {
	cs  *genai.ChatSession
	log *zap.Logger
}

func (s *geminiSession) SendMessage(ctx context.Context, text string) (string, error) {
	resp, err := s.cs.SendMessage(ctx, genai.Text(text))
	if err != nil {
		s.log.Warn("gemini gagal", zap.Error(err))
		return "", fmt.Errorf("gemini: %w", err)
	}
	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				b.WriteString(string(t))
			}
		}
		break
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("gemini: respons kosong")
	}
	return b.String(), nil
}
