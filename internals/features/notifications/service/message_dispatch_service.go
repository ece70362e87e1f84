// file: internals/features/notifications/service/message_dispatch_service.go
package service

import (
	"context"
	"log"
	"strings"

	"gorm.io/datatypes"

	model "mykahfi_backend/internals/features/notifications/model"
	"mykahfi_backend/internals/features/notifications/repository"
)

// Alasan skip (benign no-op, dikembalikan sebagai ok:true ke relay).
const (
	SkipMissingNIS           = "missing_nis"
	SkipEmptyMessage         = "empty_message"
	SkipUnchangedMessage     = "unchanged_message"
	SkipMissingTransaction   = "missing_transaction_identity"
	SkipUnchangedPayment     = "unchanged_payment"
	SkipDuplicateTransaction = "duplicate_transaction_notification"
)

// Panjang maksimum body notifikasi (rune); kelebihan dipotong + "...".
const notificationBodyCap = 120

// Field pesan yang mungkin dipakai, tergantung tabel sumber trigger.
var messageFields = []string{"msg_app", "message_text", "message", "text"}

type DispatchOutcome struct {
	Skipped        string // alasan no-op; "" berarti ada percobaan kirim
	NotificationID string
	DeliveryError  string // terisi kalau push provider gagal
}

func (o DispatchOutcome) Sent() bool {
	return o.Skipped == "" && o.DeliveryError == ""
}

type MessageDispatcher struct {
	Sender Sender
	Logs   repository.NotificationLogStore
}

func NewMessageDispatcher(sender Sender, logs repository.NotificationLogStore) *MessageDispatcher {
	return &MessageDispatcher{Sender: sender, Logs: logs}
}

// Dispatch memutuskan dan (kalau perlu) mengirim push untuk perubahan pesan.
// Satu baris audit selalu ditulis per percobaan kirim; skip tidak diaudit.
func (d *MessageDispatcher) Dispatch(ctx context.Context, env WebhookEnvelope) DispatchOutcome {
	nis := TextField(env.Record, "nis")
	newMessage := PickMessage(env.Record)
	oldMessage := PickMessage(env.OldRecord)

	if reason := messageSkipReason(nis, newMessage, oldMessage); reason != "" {
		return DispatchOutcome{Skipped: reason}
	}

	body := ToNotificationBody(newMessage)
	result := d.Sender.Send(ctx, PushMessage{
		ExternalUserIDs: []string{nis},
		Title:           "Pesan Sekolah",
		Body:            body,
		Data: map[string]string{
			"event_type": model.EventMessage,
			"nis":        nis,
			"deeplink":   "/dashboard",
		},
	})

	d.audit(nis, env, body, result)

	if !result.Success {
		return DispatchOutcome{DeliveryError: result.Error}
	}
	return DispatchOutcome{NotificationID: result.ID}
}

// messageSkipReason: aturan no-op perubahan pesan.
func messageSkipReason(nis, newMessage, oldMessage string) string {
	if nis == "" {
		return SkipMissingNIS
	}
	if newMessage == "" {
		return SkipEmptyMessage
	}
	if oldMessage != "" && newMessage == oldMessage {
		return SkipUnchangedMessage
	}
	return ""
}

// PickMessage mengambil teks pesan dari field pertama yang terisi.
func PickMessage(record map[string]any) string {
	return TextField(record, messageFields...)
}

// DetectMessageField menebak nama field sumber pesan (untuk audit).
func DetectMessageField(record map[string]any) string {
	for _, f := range []string{"message_text", "msg_app", "message", "text"} {
		if _, ok := record[f]; ok {
			return f
		}
	}
	return "msg_app"
}

// ToNotificationBody merapikan whitespace lalu memotong ke batas body push.
func ToNotificationBody(text string) string {
	clean := strings.Join(strings.Fields(text), " ")
	runes := []rune(clean)
	if len(runes) <= notificationBodyCap {
		return clean
	}
	return string(runes[:notificationBodyCap-3]) + "..."
}

func (d *MessageDispatcher) audit(nis string, env WebhookEnvelope, body string, result SendResult) {
	entry := &model.NotificationLogModel{
		Nis:       nis,
		EventType: model.EventMessage,
		Provider:  ProviderOneSignal,
		Status:    model.StatusSent,
		Payload: datatypes.JSONMap{
			"source":        auditSource(env),
			"webhook_type":  env.EventType,
			"webhook_table": env.Table,
			"body_preview":  body,
		},
	}
	if result.Success {
		entry.ProviderMessageID = &result.ID
	} else {
		entry.Status = model.StatusFailed
		errMsg := result.Error
		if errMsg == "" {
			errMsg = "Unknown error"
		}
		entry.ErrorMessage = &errMsg
	}

	// Audit best-effort: gagal tulis log tidak mengubah hasil dispatch
	if err := d.Logs.Insert(entry); err != nil {
		log.Printf("[WARN] gagal tulis notification_logs (message): %v", err)
	}
}

func auditSource(env WebhookEnvelope) string {
	field := DetectMessageField(env.Record)
	if env.Table != "" {
		return env.Table + "." + field
	}
	if field == "msg_app" {
		return "users.msg_app"
	}
	return "user_messages_web." + field
}
