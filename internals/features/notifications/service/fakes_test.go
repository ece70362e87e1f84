package service

import (
	"context"

	model "mykahfi_backend/internals/features/notifications/model"
)

// fakeSender merekam pengiriman dan mengembalikan hasil yang dikonfigurasi.
type fakeSender struct {
	result SendResult
	sent   []PushMessage
}

func newFakeSender() *fakeSender {
	return &fakeSender{result: SendResult{Success: true, ID: "notif-1"}}
}

func (f *fakeSender) Send(_ context.Context, msg PushMessage) SendResult {
	f.sent = append(f.sent, msg)
	return f.result
}

// fakeLogStore: notification_logs in-memory.
type fakeLogStore struct {
	entries   []model.NotificationLogModel
	insertErr error
}

func (f *fakeLogStore) RecentSent(nis, eventType string, limit int) ([]model.NotificationLogModel, error) {
	var out []model.NotificationLogModel
	// entries di-append urut waktu; scan dari terbaru
	for i := len(f.entries) - 1; i >= 0 && len(out) < limit; i-- {
		e := f.entries[i]
		if e.Nis == nis && e.EventType == eventType && e.Status == model.StatusSent {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeLogStore) Insert(entry *model.NotificationLogModel) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.entries = append(f.entries, *entry)
	return nil
}
