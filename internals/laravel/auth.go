package laravel

import (
	"context"
	"net/http"
	"strconv"
	"time"
)

// LoginResult adalah token + profil yang dikembalikan Laravel saat login.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      map[string]any
	UserID    string
	Role      string
}

// Login meneruskan kredensial ke /api/login. defaultTTL dipakai kalau Laravel tidak
// mengirim expires_in / expires_at.
func (c *Client) Login(ctx context.Context, email, password string, defaultTTL time.Duration) (*LoginResult, error) {
	body, err := c.call(ctx, http.MethodPost, "/api/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}

	obj := decodeObject(body)
	if data, ok := obj["data"].(map[string]any); ok {
		obj = data
	}

	res := &LoginResult{
		Token: firstString(obj, "token", "access_token"),
	}
	if res.Token == "" {
		return nil, &APIError{Status: http.StatusBadGateway, Message: "respons login tidak berisi token"}
	}

	now := time.Now()
	res.ExpiresAt = now.Add(defaultTTL)
	if s := firstString(obj, "expires_in"); s != "" {
		if secs, err := strconv.Atoi(s); err == nil && secs > 0 {
			res.ExpiresAt = now.Add(time.Duration(secs) * time.Second)
		}
	} else if s := firstString(obj, "expires_at"); s != "" {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			res.ExpiresAt = t
		}
	}

	if user, ok := obj["user"].(map[string]any); ok {
		res.User = user
		res.UserID = firstString(user, "id", "user_id")
		res.Role = firstString(user, "role", "level")
	} else {
		res.User = map[string]any{}
	}
	return res, nil
}

// Register meneruskan form pendaftaran apa adanya.
func (c *Client) Register(ctx context.Context, payload map[string]any) (map[string]any, error) {
	body, err := c.call(ctx, http.MethodPost, "/api/register", "", payload)
	if err != nil {
		return nil, err
	}
	return decodeObject(body), nil
}

// Profile mengambil profil pemilik token.
func (c *Client) Profile(ctx context.Context, token string) (map[string]any, error) {
	body, err := c.call(ctx, http.MethodGet, "/api/profile", token, nil)
	if err != nil {
		return nil, err
	}
	obj := decodeObject(body)
	if data, ok := obj["data"].(map[string]any); ok {
		return data, nil
	}
	if user, ok := obj["user"].(map[string]any); ok {
		return user, nil
	}
	return obj, nil
}

// ProgramStudi daftar program studi untuk form registrasi (publik).
func (c *Client) ProgramStudi(ctx context.Context) ([]map[string]any, error) {
	body, err := c.call(ctx, http.MethodGet, "/api/program-studi", "", nil)
	if err != nil {
		return nil, err
	}
	return decodeList(body), nil
}

func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		switch v := m[k].(type) {
		case string:
			if v != "" {
				return v
			}
		case interface{ String() string }:
			return v.String()
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}
