package model

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// UserSessionModel menyimpan state yang dulu ada di localStorage browser, per sesi.
type UserSessionModel struct {
	SessionID            string         `gorm:"column:session_id;primaryKey;type:varchar(64)" json:"session_id"`
	Token                string         `gorm:"column:token;type:text" json:"-"`
	TokenExpiration      time.Time      `gorm:"column:token_expiration" json:"token_expiration"`
	User                 datatypes.JSON `gorm:"column:user_blob;type:jsonb" json:"user"`
	UserID               string         `gorm:"column:user_id;type:varchar(64);index" json:"user_id"`
	Role                 string         `gorm:"column:role;type:varchar(32)" json:"role"`
	IsLoggedIn           bool           `gorm:"column:is_logged_in;not null;default:false" json:"is_logged_in"`
	ReadNotifications    pq.StringArray `gorm:"column:read_notifications;type:text[]" json:"read_notifications"`
	AutoResponseEnabled  bool           `gorm:"column:auto_response_enabled;not null;default:false" json:"auto_response_enabled"`
	AutoResponseTemplate string         `gorm:"column:auto_response_template;type:text" json:"auto_response_template"`
	EmailNotifications   bool           `gorm:"column:email_notifications;not null;default:false" json:"email_notifications"`
	CreatedAt            time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (UserSessionModel) TableName() string {
	return "user_sessions"
}
