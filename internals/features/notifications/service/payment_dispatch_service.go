// file: internals/features/notifications/service/payment_dispatch_service.go
package service

import (
	"context"
	"log"
	"strings"

	"gorm.io/datatypes"

	"mykahfi_backend/internals/features/academic"
	model "mykahfi_backend/internals/features/notifications/model"
	"mykahfi_backend/internals/features/notifications/repository"
)

// Banyaknya baris audit "sent" terakhir yang discan untuk guard idempotensi.
// Best-effort: dua delivery duplikat yang nyaris bersamaan bisa sama-sama
// lolos scan sebelum salah satunya menulis audit — risiko duplikatnya kecil
// dan tidak fatal.
const idempotencyScanLimit = 30

type PaymentDispatcher struct {
	Sender Sender
	Logs   repository.NotificationLogStore
}

func NewPaymentDispatcher(sender Sender, logs repository.NotificationLogStore) *PaymentDispatcher {
	return &PaymentDispatcher{Sender: sender, Logs: logs}
}

// Dispatch memutuskan dan (kalau perlu) mengirim push untuk perubahan ledger
// pembayaran yang diteruskan webhook.
func (d *PaymentDispatcher) Dispatch(ctx context.Context, env WebhookEnvelope) DispatchOutcome {
	nis := TextField(env.Record, "nis")
	idtrx := TextField(env.Record, "idtrx")
	idtag := TextField(env.Record, "idtag")
	amount := NormalizeNumber(env.Record["nominal"])
	oldAmount := NormalizeNumber(env.OldRecord["nominal"])
	monthCode := ResolvePaymentMonthCode(env.Record)

	if reason := paymentSkipReason(nis, idtrx, idtag, env.EventType, amount, oldAmount); reason != "" {
		return DispatchOutcome{Skipped: reason}
	}

	if idtrx != "" && d.alreadySent(nis, idtrx) {
		return DispatchOutcome{Skipped: SkipDuplicateTransaction}
	}

	result := d.Sender.Send(ctx, PushMessage{
		ExternalUserIDs: []string{nis},
		Title:           "Pembayaran Baru",
		Body:            BuildPaymentBody(amount, monthCode),
		Data: map[string]string{
			"event_type": model.EventPayment,
			"nis":        nis,
			"idtrx":      orDash(idtrx),
			"idtag":      orDash(idtag),
			"month":      orDash(monthCode),
			"nominal":    NormalizeText(amount),
			"deeplink":   "/dashboard",
		},
	})

	d.audit(nis, env, idtrx, idtag, monthCode, amount, result)

	if !result.Success {
		return DispatchOutcome{DeliveryError: result.Error}
	}
	return DispatchOutcome{NotificationID: result.ID}
}

// paymentSkipReason: aturan no-op perubahan pembayaran.
func paymentSkipReason(nis, idtrx, idtag, eventType string, amount, oldAmount int64) string {
	if nis == "" {
		return SkipMissingNIS
	}
	if idtrx == "" && idtag == "" {
		return SkipMissingTransaction
	}
	// UPDATE tanpa perubahan nominal = edit field lain yang tidak relevan
	if eventType == "UPDATE" && amount == oldAmount {
		return SkipUnchangedPayment
	}
	return ""
}

// alreadySent mengecek apakah idtrx sudah pernah dinotifikasi (guard retry
// relay webhook). Gagal baca log dianggap belum pernah.
func (d *PaymentDispatcher) alreadySent(nis, idtrx string) bool {
	rows, err := d.Logs.RecentSent(nis, model.EventPayment, idempotencyScanLimit)
	if err != nil {
		log.Printf("[WARN] gagal scan idempotensi notification_logs: %v", err)
		return false
	}
	for _, row := range rows {
		if NormalizeText(row.Payload["idtrx"]) == idtrx {
			return true
		}
	}
	return false
}

// ResolvePaymentMonthCode: sortasi → kode bulan; kalau sortasi tidak punya
// slot, pakai teks bulan dari record apa adanya (uppercase).
func ResolvePaymentMonthCode(record map[string]any) string {
	sortasi := NormalizeNumber(record["sortasi"])
	if code, ok := academic.MonthCodeForSortasi(int(sortasi)); ok {
		return code
	}
	return strings.ToUpper(TextField(record, "bulan"))
}

// BuildPaymentBody menyusun body notifikasi dengan nominal gaya id-ID.
func BuildPaymentBody(amount int64, monthCode string) string {
	nominal := FormatIDR(amount)
	if monthCode != "" {
		return "Pembayaran " + monthCode + " sebesar " + nominal + " sudah diterima."
	}
	return "Pembayaran baru sebesar " + nominal + " sudah diterima."
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func (d *PaymentDispatcher) audit(nis string, env WebhookEnvelope, idtrx, idtag, monthCode string, amount int64, result SendResult) {
	entry := &model.NotificationLogModel{
		Nis:       nis,
		EventType: model.EventPayment,
		Provider:  ProviderOneSignal,
		Status:    model.StatusSent,
		Payload: datatypes.JSONMap{
			"source":        "bpi_sql_webhook_spb",
			"webhook_type":  env.EventType,
			"webhook_table": env.Table,
			"idtrx":         idtrx,
			"idtag":         idtag,
			"sortasi":       NormalizeNumber(env.Record["sortasi"]),
			"month_code":    monthCode,
			"nominal":       amount,
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

	if err := d.Logs.Insert(entry); err != nil {
		log.Printf("[WARN] gagal tulis notification_logs (payment): %v", err)
	}
}
