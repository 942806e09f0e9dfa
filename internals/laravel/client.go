// Package laravel adalah klien REST untuk backend Laravel LaporKampus.
package laravel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"laporkampus_backend/internals/features/reports/laporan/normalizer"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.log = l.Named("laravel") }
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) BaseURL() string { return c.baseURL }

// response adalah hasil mentah satu request.
type response struct {
	Status int
	Body   []byte
}

func (r response) ok() bool { return r.Status >= 200 && r.Status < 300 }

// send mengirim satu request. Error transport dibungkus ErrNetwork; status non-2xx
// dikembalikan apa adanya supaya pemanggil bisa memutuskan fallback.
func (c *Client) send(ctx context.Context, method, path, token string, body []byte) (response, error) {
	var rdr io.Reader
	if body != nil {
		rdr = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return response{}, fmt.Errorf("buat request %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("request gagal", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return response{}, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return response{}, fmt.Errorf("%w: baca respons: %v", ErrNetwork, err)
	}
	c.log.Debug("request selesai",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("dur", time.Since(start)))
	return response{Status: resp.StatusCode, Body: raw}, nil
}

// call = send + terjemahan status non-2xx menjadi *APIError.
func (c *Client) call(ctx context.Context, method, path, token string, payload any) ([]byte, error) {
	body, err := encode(payload)
	if err != nil {
		return nil, err
	}
	resp, err := c.send(ctx, method, path, token, body)
	if err != nil {
		return nil, err
	}
	if !resp.ok() {
		return nil, newAPIError(resp.Status, resp.Body)
	}
	return resp.Body, nil
}

// firstFound mencoba beberapa path GET; 404 lanjut ke path berikutnya.
func (c *Client) firstFound(ctx context.Context, token string, paths ...string) ([]byte, error) {
	var lastErr error
	for _, p := range paths {
		body, err := c.call(ctx, http.MethodGet, p, token, nil)
		if err == nil {
			return body, nil
		}
		if !IsStatus(err, http.StatusNotFound) {
			return nil, err
		}
		c.log.Debug("404, mencoba URL alternatif", zap.String("path", p))
		lastErr = err
	}
	return nil, lastErr
}

func encode(payload any) ([]byte, error) {
	if payload == nil {
		return nil, nil
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	return b, nil
}

// decodeObject mengembalikan body sebagai objek. Nilai non-objek dibungkus {"data": v}.
func decodeObject(body []byte) map[string]any {
	v, err := normalizer.Decode(body)
	if err != nil || v == nil {
		return map[string]any{}
	}
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return map[string]any{"data": v}
}

// decodeList membuka daftar dari bentuk array / {data:[...]} / kunci berisi array.
func decodeList(body []byte) []map[string]any {
	v, err := normalizer.Decode(body)
	if err != nil {
		return []map[string]any{}
	}
	out := normalizer.Records(v)
	if out == nil {
		return []map[string]any{}
	}
	return out
}

func escapeID(id string) string { return url.PathEscape(id) }
