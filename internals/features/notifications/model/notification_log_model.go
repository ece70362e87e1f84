package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Event kind yang dicatat di notification_logs.
const (
	EventMessage = "message"
	EventPayment = "payment"
	EventTest    = "test"
)

const (
	StatusSent   = "sent"
	StatusFailed = "failed"
)

// NotificationLogModel: satu baris per percobaan kirim push (append-only).
// Dipakai juga sebagai ledger idempotensi best-effort untuk event payment
// (scan payload.idtrx), bukan jaminan exactly-once.
type NotificationLogModel struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Nis       string    `gorm:"column:nis;type:varchar(6);not null;index:idx_notification_logs_nis" json:"nis"`
	EventType string    `gorm:"column:event_type;type:varchar(20);not null" json:"event_type"`
	Provider  string    `gorm:"column:provider;type:varchar(20);not null" json:"provider"`
	Status    string    `gorm:"column:status;type:varchar(10);not null" json:"status"`

	ProviderMessageID *string `gorm:"column:provider_message_id;type:text" json:"provider_message_id,omitempty"`
	ErrorMessage      *string `gorm:"column:error_message;type:text" json:"error_message,omitempty"`

	// Blob diagnostik: sumber field, idtrx/idtag, bulan, nominal, dst.
	Payload datatypes.JSONMap `gorm:"column:payload;type:jsonb" json:"payload"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (NotificationLogModel) TableName() string { return "notification_logs" }
