package details

import (
	"gorm.io/gorm"

	"github.com/gofiber/fiber/v2"

	homeController "mykahfi_backend/internals/features/home/controller"
	messageController "mykahfi_backend/internals/features/messages/controller"
	pushController "mykahfi_backend/internals/features/notifications/controller"
	"mykahfi_backend/internals/features/notifications/service"
)

// PortalRoutes: endpoint ber-sesi untuk wali murid (dipasang di group yang
// sudah memakai SessionJWT).
func PortalRoutes(private fiber.Router, db *gorm.DB) {
	dashboard := homeController.NewDashboardController(db)
	private.Get("/dashboard", dashboard.Get)

	messages := messageController.NewMessageController(db)
	private.Post("/messages/mark-read", messages.MarkRead)

	push := pushController.NewPushController(db, service.OneSignal())
	private.Post("/push/test", push.TestPush)
	private.Post("/push/register-device", push.RegisterDevice)
	private.Get("/push/devices", push.ListDevices)
}
