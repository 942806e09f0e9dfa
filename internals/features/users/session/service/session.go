package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"laporkampus_backend/internals/features/users/session/model"
)

// Settings adalah preferensi per sesi yang dulu disimpan browser.
type Settings struct {
	AutoResponseEnabled  bool   `json:"autoResponseEnabled"`
	AutoResponseTemplate string `json:"autoResponseTemplate"`
	EmailNotifications   bool   `json:"emailNotifications"`
}

// Login adalah data yang ditulis ke sesi setelah Laravel menerima kredensial.
type Login struct {
	Token     string
	ExpiresAt time.Time
	User      map[string]any
	UserID    string
	Role      string
}

// Session adalah akses bertipe ke satu sesi. Semua kunci state lewat sini.
type Session struct {
	store Store
	id    string
	now   func() time.Time
}

func New(store Store, id string) *Session {
	return &Session{store: store, id: id, now: time.Now}
}

// WithClock dipakai test.
func (s *Session) WithClock(now func() time.Time) *Session {
	s.now = now
	return s
}

func (s *Session) ID() string { return s.id }

// Start membuat sesi baru dengan id acak.
func Start(ctx context.Context, store Store, in Login) (*Session, error) {
	user, err := json.Marshal(in.User)
	if err != nil {
		return nil, err
	}
	m := &model.UserSessionModel{
		SessionID:         uuid.NewString(),
		Token:             in.Token,
		TokenExpiration:   in.ExpiresAt,
		User:              datatypes.JSON(user),
		UserID:            in.UserID,
		Role:              in.Role,
		IsLoggedIn:        true,
		ReadNotifications: []string{},
	}
	if err := store.Save(ctx, m); err != nil {
		return nil, err
	}
	return New(store, m.SessionID), nil
}

func (s *Session) load(ctx context.Context) (*model.UserSessionModel, error) {
	return s.store.Load(ctx, s.id)
}

// Token mengembalikan bearer Laravel. Token kedaluwarsa → ErrExpired.
func (s *Session) Token(ctx context.Context) (string, error) {
	m, err := s.load(ctx)
	if err != nil {
		return "", err
	}
	if !TokenValid(m, s.now()) {
		return "", ErrExpired
	}
	return m.Token, nil
}

func (s *Session) TokenValid(ctx context.Context) bool {
	m, err := s.load(ctx)
	if err != nil {
		return false
	}
	return TokenValid(m, s.now())
}

func (s *Session) User(ctx context.Context) (map[string]any, error) {
	m, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	out := map[string]any{}
	if len(m.User) > 0 {
		if err := json.Unmarshal(m.User, &out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (s *Session) UserID(ctx context.Context) (string, error) {
	m, err := s.load(ctx)
	if err != nil {
		return "", err
	}
	return m.UserID, nil
}

func (s *Session) Role(ctx context.Context) (string, error) {
	m, err := s.load(ctx)
	if err != nil {
		return "", err
	}
	return m.Role, nil
}

func (s *Session) IsLoggedIn(ctx context.Context) bool {
	m, err := s.load(ctx)
	return err == nil && m.IsLoggedIn
}

// Logout menghapus seluruh state sesi. Sesi yang sudah hilang tidak dianggap error.
func (s *Session) Logout(ctx context.Context) error {
	err := s.store.Delete(ctx, s.id)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	return err
}

func (s *Session) ReadNotifications(ctx context.Context) ([]string, error) {
	m, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return append([]string{}, m.ReadNotifications...), nil
}

// ReadSet versi map dari ReadNotifications.
func (s *Session) ReadSet(ctx context.Context) (map[string]bool, error) {
	ids, err := s.ReadNotifications(ctx)
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

// MarkNotificationsRead menambahkan ids ke set yang sudah dibaca (union, bukan replace).
func (s *Session) MarkNotificationsRead(ctx context.Context, ids ...string) error {
	return s.store.Update(ctx, s.id, func(m *model.UserSessionModel) error {
		m.ReadNotifications = MergeIDs(m.ReadNotifications, ids...)
		return nil
	})
}

func (s *Session) Settings(ctx context.Context) (Settings, error) {
	m, err := s.load(ctx)
	if err != nil {
		return Settings{}, err
	}
	return Settings{
		AutoResponseEnabled:  m.AutoResponseEnabled,
		AutoResponseTemplate: m.AutoResponseTemplate,
		EmailNotifications:   m.EmailNotifications,
	}, nil
}

func (s *Session) UpdateSettings(ctx context.Context, in Settings) error {
	return s.store.Update(ctx, s.id, func(m *model.UserSessionModel) error {
		m.AutoResponseEnabled = in.AutoResponseEnabled
		m.AutoResponseTemplate = in.AutoResponseTemplate
		m.EmailNotifications = in.EmailNotifications
		return nil
	})
}
