package model

import (
	"time"

	"github.com/google/uuid"
)

// Platform perangkat yang sah untuk registrasi push web.
var ValidPlatforms = []string{"ios_web", "android_web", "desktop_web"}

func IsValidPlatform(p string) bool {
	for _, v := range ValidPlatforms {
		if p == v {
			return true
		}
	}
	return false
}

// UserDeviceModel memetakan tabel user_devices_web (registrasi subscription
// OneSignal per perangkat; unik pada pasangan subscription+platform).
type UserDeviceModel struct {
	ID  uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Nis string    `gorm:"column:nis;type:varchar(6);not null;index:idx_user_devices_web_nis" json:"nis"`

	OneSignalSubscriptionID string `gorm:"column:onesignal_subscription_id;type:text;not null;uniqueIndex:uq_user_devices_web_sub_platform" json:"onesignal_subscription_id"`
	Platform                string `gorm:"column:platform;type:varchar(20);not null;uniqueIndex:uq_user_devices_web_sub_platform" json:"platform"`

	ExternalID string `gorm:"column:external_id;type:text;not null" json:"external_id"`
	IsActive   bool   `gorm:"column:is_active;not null;default:true" json:"is_active"`

	LastSeenAt *time.Time `gorm:"column:last_seen_at" json:"last_seen_at,omitempty"`
	CreatedAt  time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  *time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at,omitempty"`
}

func (UserDeviceModel) TableName() string { return "user_devices_web" }
