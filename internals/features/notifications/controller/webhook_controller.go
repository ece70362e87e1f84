// file: internals/features/notifications/controller/webhook_controller.go
//
// Endpoint webhook change-capture. Kontrak response mengikuti relay upstream:
// {ok:true, skipped:<alasan>} untuk no-op, {ok:false, error} 401/503 untuk
// auth/delivery gagal, {ok:true, notification_id} saat terkirim — supaya
// retry storm dari relay tidak dianggap kegagalan yang perlu backoff.
package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"mykahfi_backend/internals/configs"
	"mykahfi_backend/internals/features/notifications/repository"
	"mykahfi_backend/internals/features/notifications/service"
)

type WebhookController struct {
	Messages *service.MessageDispatcher
	Payments *service.PaymentDispatcher

	// override di test; default configs.AcceptedWebhookSecrets
	AcceptedSecrets func() []string
}

func NewWebhookController(sender service.Sender, logs repository.NotificationLogStore) *WebhookController {
	return &WebhookController{
		Messages:        service.NewMessageDispatcher(sender, logs),
		Payments:        service.NewPaymentDispatcher(sender, logs),
		AcceptedSecrets: configs.AcceptedWebhookSecrets,
	}
}

// NotifyMessage menangani webhook perubahan pesan.
// POST /api/push/notify-message
func (wc *WebhookController) NotifyMessage(c *fiber.Ctx) error {
	if err := wc.authorize(c); err != nil {
		return err
	}

	env := service.NormalizeWebhookPayload(c.Body())
	outcome := wc.Messages.Dispatch(c.UserContext(), env)
	return respondOutcome(c, outcome)
}

// NotifyPayment menangani webhook perubahan ledger pembayaran.
// POST /api/push/notify-payment
func (wc *WebhookController) NotifyPayment(c *fiber.Ctx) error {
	if err := wc.authorize(c); err != nil {
		return err
	}

	env := service.NormalizeWebhookPayload(c.Body())
	outcome := wc.Payments.Dispatch(c.UserContext(), env)
	return respondOutcome(c, outcome)
}

// authorize: shared-secret header atau bearer token. Tanpa secret yang
// dikonfigurasi, gate fail-closed dengan error konfigurasi (bukan 401).
func (wc *WebhookController) authorize(c *fiber.Ctx) error {
	accepted := wc.AcceptedSecrets()
	if len(accepted) == 0 {
		log.Println("[ERROR] Webhook auth secret belum diset: set SUPABASE_WEBHOOK_SECRET atau SUPABASE_SERVICE_ROLE_KEY")
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"ok":    false,
			"error": "Webhook belum dikonfigurasi",
		})
	}

	if !service.WebhookAuthorized(c.Get("x-webhook-secret"), c.Get(fiber.HeaderAuthorization), accepted) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"ok":     false,
			"error":  "Unauthorized webhook",
			"detail": "Invalid webhook secret or bearer token",
		})
	}
	return nil
}

func respondOutcome(c *fiber.Ctx, outcome service.DispatchOutcome) error {
	if outcome.Skipped != "" {
		return c.JSON(fiber.Map{"ok": true, "skipped": outcome.Skipped})
	}
	if outcome.DeliveryError != "" {
		// 503 supaya retry policy relay jalan
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"ok":    false,
			"error": outcome.DeliveryError,
		})
	}
	return c.JSON(fiber.Map{"ok": true, "notification_id": outcome.NotificationID})
}
