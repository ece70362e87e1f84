package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	webhookController "mykahfi_backend/internals/features/notifications/controller"
	"mykahfi_backend/internals/features/notifications/repository"
	"mykahfi_backend/internals/features/notifications/service"
)

// WebhookRoutes: endpoint change-capture dari trigger DB. Auth pakai shared
// secret di dalam controller, bukan sesi wali murid.
func WebhookRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := webhookController.NewWebhookController(
		service.OneSignal(),
		repository.NewNotificationLogStore(db),
	)

	app.Post("/api/push/notify-message", ctrl.NotifyMessage)
	app.Post("/api/push/notify-payment", ctrl.NotifyPayment)
}
