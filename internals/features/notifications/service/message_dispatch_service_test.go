package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "mykahfi_backend/internals/features/notifications/model"
)

func messageEnv(record, old map[string]any) WebhookEnvelope {
	return WebhookEnvelope{
		EventType: "UPDATE",
		Table:     "users",
		Record:    record,
		OldRecord: old,
	}
}

func TestMessageDispatch_SkipRules(t *testing.T) {
	cases := []struct {
		name string
		env  WebhookEnvelope
		want string
	}{
		{
			"tanpa nis",
			messageEnv(map[string]any{"msg_app": "halo"}, nil),
			SkipMissingNIS,
		},
		{
			"pesan baru kosong",
			messageEnv(map[string]any{"nis": "123456", "msg_app": "   "}, map[string]any{"msg_app": "A"}),
			SkipEmptyMessage,
		},
		{
			"pesan tidak berubah",
			messageEnv(map[string]any{"nis": "123456", "msg_app": "A"}, map[string]any{"msg_app": "A"}),
			SkipUnchangedMessage,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sender := newFakeSender()
			logs := &fakeLogStore{}
			d := NewMessageDispatcher(sender, logs)

			out := d.Dispatch(context.Background(), tc.env)

			assert.Equal(t, tc.want, out.Skipped)
			assert.Empty(t, sender.sent, "skip tidak boleh kirim push")
			assert.Empty(t, logs.entries, "skip tidak boleh tulis audit")
		})
	}
}

func TestMessageDispatch_ChangedMessageSent(t *testing.T) {
	sender := newFakeSender()
	logs := &fakeLogStore{}
	d := NewMessageDispatcher(sender, logs)

	out := d.Dispatch(context.Background(), messageEnv(
		map[string]any{"nis": "123456", "msg_app": "B"},
		map[string]any{"msg_app": "A"},
	))

	require.True(t, out.Sent())
	assert.Equal(t, "notif-1", out.NotificationID)

	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	assert.Equal(t, []string{"123456"}, msg.ExternalUserIDs)
	assert.Equal(t, "Pesan Sekolah", msg.Title)
	assert.Equal(t, "B", msg.Body)

	require.Len(t, logs.entries, 1)
	entry := logs.entries[0]
	assert.Equal(t, model.EventMessage, entry.EventType)
	assert.Equal(t, model.StatusSent, entry.Status)
	assert.Equal(t, "users.msg_app", entry.Payload["source"])
}

func TestMessageDispatch_DeliveryFailureAudited(t *testing.T) {
	sender := newFakeSender()
	sender.result = SendResult{Success: false, Error: "All included players are not subscribed"}
	logs := &fakeLogStore{}
	d := NewMessageDispatcher(sender, logs)

	out := d.Dispatch(context.Background(), messageEnv(
		map[string]any{"nis": "123456", "message_text": "pengumuman"},
		nil,
	))

	assert.Empty(t, out.Skipped)
	assert.Equal(t, "All included players are not subscribed", out.DeliveryError)

	require.Len(t, logs.entries, 1)
	entry := logs.entries[0]
	assert.Equal(t, model.StatusFailed, entry.Status)
	require.NotNil(t, entry.ErrorMessage)
	assert.Contains(t, *entry.ErrorMessage, "not subscribed")
}

func TestPickMessage_FieldFallback(t *testing.T) {
	assert.Equal(t, "a", PickMessage(map[string]any{"msg_app": "a", "message": "b"}))
	assert.Equal(t, "b", PickMessage(map[string]any{"message_text": "b"}))
	assert.Equal(t, "c", PickMessage(map[string]any{"message": "c"}))
	assert.Equal(t, "d", PickMessage(map[string]any{"text": "d"}))
	assert.Equal(t, "", PickMessage(map[string]any{"lain": "x"}))
	assert.Equal(t, "", PickMessage(nil))
}

func TestToNotificationBody(t *testing.T) {
	assert.Equal(t, "halo dunia", ToNotificationBody("  halo \n  dunia  "))

	long := strings.Repeat("panjang ", 40) // jauh di atas cap
	body := ToNotificationBody(long)
	assert.Len(t, []rune(body), 120)
	assert.True(t, strings.HasSuffix(body, "..."))

	exact := strings.Repeat("a", 120)
	assert.Equal(t, exact, ToNotificationBody(exact))
}
