package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

type RESTConfig struct {
	URL     string // endpoint chat-completions lengkap
	APIKey  string
	Model   string
	Timeout time.Duration
}

// RESTProvider stateless: riwayat dikirim ulang di setiap request.
type RESTProvider struct {
	cfg        RESTConfig
	httpClient *http.Client
	log        *zap.Logger
}

func NewRESTProvider(cfg RESTConfig, log *zap.Logger) *RESTProvider {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &RESTProvider{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        log.Named("llm_rest"),
	}
}

func (p *RESTProvider) Name() string { return "rest" }

func (p *RESTProvider) NewChatSession(_ context.Context, history []Message, systemInstruction string) (ChatSession, error) {
	msgs := make([]restMessage, 0, len(history)+2)
	if strings.TrimSpace(systemInstruction) != "" {
		msgs = append(msgs, restMessage{Role: "system", Content: systemInstruction})
	}
	for _, h := range history {
		role := "user"
		if h.Role == RoleModel || h.Role == "assistant" {
			role = "assistant"
		}
		msgs = append(msgs, restMessage{Role: role, Content: h.Text})
	}
	return &restSession{p: p, messages: msgs}, nil
}

type restMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type restRequest struct {
	Model       string        `json:"model,omitempty"`
	Messages    []restMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type restResponse struct {
	Choices []struct {
		Message restMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

type restSession struct {
	p        *RESTProvider
	messages []restMessage
}

// SendMessage: non-2xx (termasuk 429) dikembalikan sebagai error yang memuat kode status.
func (s *restSession) SendMessage(ctx context.Context, text string) (string, error) {
	msgs := append(append([]restMessage(nil), s.messages...), restMessage{Role: "user", Content: text})
	body, err := json.Marshal(restRequest{Model: s.p.cfg.Model, Messages: msgs, Temperature: 0.7})
	if err != nil {
		return "", fmt.Errorf("encode request LLM: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.p.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("buat request LLM: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.p.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.p.cfg.APIKey)
	}

	start := time.Now()
	resp, err := s.p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request LLM gagal: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("baca respons LLM: %w", err)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return "", fmt.Errorf("rate limit LLM (429): %s", truncate(string(raw), 200))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("request LLM gagal dengan status %d: %s", resp.StatusCode, truncate(string(raw), 200))
	}

	var out restResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("parse respons LLM: %w", err)
	}
	if out.Error != nil {
		return "", fmt.Errorf("LLM error: %s", out.Error.Message)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("LLM tidak mengembalikan jawaban")
	}

	reply := strings.TrimSpace(out.Choices[0].Message.Content)
	s.p.log.Debug("llm selesai", zap.Duration("dur", time.Since(start)), zap.Int("len", len(reply)))

	s.messages = append(msgs, restMessage{Role: "assistant", Content: reply})
	return reply, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
