package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"laporkampus_backend/internals/features/users/session/model"
)

// GormStore menyimpan sesi di tabel user_sessions (Postgres).
type GormStore struct {
	DB *gorm.DB
}

// NewGormStore memastikan tabel ada.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&model.UserSessionModel{}); err != nil {
		return nil, fmt.Errorf("migrasi user_sessions: %w", err)
	}
	return &GormStore{DB: db}, nil
}

func (g *GormStore) Load(ctx context.Context, sid string) (*model.UserSessionModel, error) {
	var s model.UserSessionModel
	err := g.DB.WithContext(ctx).Where("session_id = ?", sid).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load sesi: %w", err)
	}
	return &s, nil
}

func (g *GormStore) Save(ctx context.Context, s *model.UserSessionModel) error {
	err := g.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_id"}},
			UpdateAll: true,
		}).
		Create(s).Error
	if err != nil {
		return fmt.Errorf("simpan sesi: %w", err)
	}
	return nil
}

func (g *GormStore) Update(ctx context.Context, sid string, fn func(s *model.UserSessionModel) error) error {
	return g.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var s model.UserSessionModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("session_id = ?", sid).
			First(&s).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("lock sesi: %w", err)
		}
		if err := fn(&s); err != nil {
			return err
		}
		s.SessionID = sid
		if err := tx.Save(&s).Error; err != nil {
			return fmt.Errorf("update sesi: %w", err)
		}
		return nil
	})
}

func (g *GormStore) Delete(ctx context.Context, sid string) error {
	if err := g.DB.WithContext(ctx).Where("session_id = ?", sid).Delete(&model.UserSessionModel{}).Error; err != nil {
		return fmt.Errorf("hapus sesi: %w", err)
	}
	return nil
}

func (g *GormStore) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	res := g.DB.WithContext(ctx).
		Where("token_expiration < ?", before).
		Limit(500).
		Delete(&model.UserSessionModel{})
	if res.Error != nil {
		return 0, fmt.Errorf("hapus sesi kedaluwarsa: %w", res.Error)
	}
	return res.RowsAffected, nil
}
