package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "mykahfi_backend/internals/features/notifications/model"
)

func paymentEnv(eventType string, record, old map[string]any) WebhookEnvelope {
	return WebhookEnvelope{
		EventType: eventType,
		Table:     "transactions",
		Record:    record,
		OldRecord: old,
	}
}

func TestPaymentDispatch_SkipRules(t *testing.T) {
	cases := []struct {
		name string
		env  WebhookEnvelope
		want string
	}{
		{
			"tanpa nis",
			paymentEnv("INSERT", map[string]any{"idtrx": 101, "nominal": 150000}, nil),
			SkipMissingNIS,
		},
		{
			"tanpa idtrx dan idtag",
			paymentEnv("INSERT", map[string]any{"nis": "123456", "nominal": 150000}, nil),
			SkipMissingTransaction,
		},
		{
			"UPDATE nominal tidak berubah",
			paymentEnv("UPDATE",
				map[string]any{"nis": "123456", "idtrx": 101, "nominal": 100000},
				map[string]any{"nominal": 100000}),
			SkipUnchangedPayment,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sender := newFakeSender()
			logs := &fakeLogStore{}
			d := NewPaymentDispatcher(sender, logs)

			out := d.Dispatch(context.Background(), tc.env)

			assert.Equal(t, tc.want, out.Skipped)
			assert.Empty(t, sender.sent)
			assert.Empty(t, logs.entries)
		})
	}
}

func TestPaymentDispatch_NewPaymentSent(t *testing.T) {
	sender := newFakeSender()
	logs := &fakeLogStore{}
	d := NewPaymentDispatcher(sender, logs)

	out := d.Dispatch(context.Background(), paymentEnv("UPDATE",
		map[string]any{
			"nis":     "123456",
			"idtrx":   202,
			"idtag":   "TAG-7",
			"nominal": 150000,
			"sortasi": 5,
		},
		map[string]any{"nominal": 100000}))

	require.True(t, out.Sent())
	require.Len(t, sender.sent, 1)

	msg := sender.sent[0]
	assert.Equal(t, []string{"123456"}, msg.ExternalUserIDs)
	assert.Equal(t, "Pembayaran Baru", msg.Title)
	assert.Equal(t, "Pembayaran NOV sebesar Rp150.000 sudah diterima.", msg.Body)
	assert.Equal(t, "202", msg.Data["idtrx"])
	assert.Equal(t, "NOV", msg.Data["month"])
	assert.Equal(t, "150000", msg.Data["nominal"])

	require.Len(t, logs.entries, 1)
	entry := logs.entries[0]
	assert.Equal(t, model.EventPayment, entry.EventType)
	assert.Equal(t, model.StatusSent, entry.Status)
	assert.Equal(t, "202", entry.Payload["idtrx"].(string))
	assert.Equal(t, "NOV", entry.Payload["month_code"])
}

func TestPaymentDispatch_DuplicateIdtrxSkipped(t *testing.T) {
	sender := newFakeSender()
	logs := &fakeLogStore{}
	d := NewPaymentDispatcher(sender, logs)
	env := paymentEnv("INSERT",
		map[string]any{"nis": "123456", "idtrx": 303, "nominal": 75000, "sortasi": 2},
		nil)

	first := d.Dispatch(context.Background(), env)
	require.True(t, first.Sent())

	// Retry relay webhook dengan payload yang sama tidak mengirim ulang.
	second := d.Dispatch(context.Background(), env)
	assert.Equal(t, SkipDuplicateTransaction, second.Skipped)
	assert.Len(t, sender.sent, 1)
	assert.Len(t, logs.entries, 1)
}

func TestPaymentDispatch_FailedSendNotCountedAsDuplicate(t *testing.T) {
	sender := newFakeSender()
	sender.result = SendResult{Success: false, Error: "provider down"}
	logs := &fakeLogStore{}
	d := NewPaymentDispatcher(sender, logs)
	env := paymentEnv("INSERT",
		map[string]any{"nis": "123456", "idtrx": 404, "nominal": 50000},
		nil)

	first := d.Dispatch(context.Background(), env)
	assert.Equal(t, "provider down", first.DeliveryError)
	require.Len(t, logs.entries, 1)
	assert.Equal(t, model.StatusFailed, logs.entries[0].Status)

	// Status failed tidak masuk scan idempotensi; retry boleh kirim lagi.
	sender.result = SendResult{Success: true, ID: "notif-2"}
	second := d.Dispatch(context.Background(), env)
	require.True(t, second.Sent())
	assert.Equal(t, "notif-2", second.NotificationID)
}

func TestResolvePaymentMonthCode(t *testing.T) {
	assert.Equal(t, "NOV", ResolvePaymentMonthCode(map[string]any{"sortasi": 5}))
	assert.Equal(t, "AGU", ResolvePaymentMonthCode(map[string]any{"sortasi": 2, "bulan": "apr"}))
	// Sortasi tanpa slot kalender: pakai teks bulan apa adanya
	assert.Equal(t, "JUL", ResolvePaymentMonthCode(map[string]any{"sortasi": 1, "bulan": "jul"}))
	assert.Equal(t, "", ResolvePaymentMonthCode(map[string]any{"sortasi": 1}))
	assert.Equal(t, "", ResolvePaymentMonthCode(nil))
}
