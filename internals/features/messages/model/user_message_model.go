package model

import (
	"time"

	"github.com/google/uuid"
)

// UserMessageModel memetakan tabel pesan per-baris user_messages_web.
// Tabel ini bisa saja belum ada di environment lama (relasi undefined) —
// resolver menoleransi kondisi itu dan jatuh ke users.msg_app.
type UserMessageModel struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Nis         string    `gorm:"column:nis;type:varchar(6);not null;index:idx_user_messages_web_nis" json:"nis"`
	MessageText string    `gorm:"column:message_text;type:text;not null" json:"message_text"`
	IsActive    bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (UserMessageModel) TableName() string { return "user_messages_web" }
