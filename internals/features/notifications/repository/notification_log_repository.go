package repository

import (
	"gorm.io/gorm"

	model "mykahfi_backend/internals/features/notifications/model"
)

// NotificationLogStore: akses audit log push. Interface kecil supaya
// dispatcher bisa dites tanpa DB.
type NotificationLogStore interface {
	// RecentSent mengambil baris status=sent terbaru untuk satu nis + event.
	RecentSent(nis, eventType string, limit int) ([]model.NotificationLogModel, error)
	Insert(entry *model.NotificationLogModel) error
}

type notificationLogStore struct {
	db *gorm.DB
}

func NewNotificationLogStore(db *gorm.DB) NotificationLogStore {
	return &notificationLogStore{db: db}
}

func (r *notificationLogStore) RecentSent(nis, eventType string, limit int) ([]model.NotificationLogModel, error) {
	var rows []model.NotificationLogModel
	err := r.db.
		Where("nis = ? AND event_type = ? AND status = ?", nis, eventType, model.StatusSent).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *notificationLogStore) Insert(entry *model.NotificationLogModel) error {
	return r.db.Create(entry).Error
}
