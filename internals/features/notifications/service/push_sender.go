package service

import "context"

// PushMessage: satu pengiriman push, dialamatkan lewat external user id (NIS).
type PushMessage struct {
	ExternalUserIDs []string
	Title           string
	Body            string
	Data            map[string]string
}

type SendResult struct {
	Success bool
	ID      string // provider message/notification id
	Error   string
}

// Sender adalah kolaborator pengiriman push. Implementasi produksi:
// OneSignalClient; test pakai stub.
type Sender interface {
	Send(ctx context.Context, msg PushMessage) SendResult
}
