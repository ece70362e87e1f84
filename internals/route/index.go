// file: internals/route/index.go
package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMiddleware "mykahfi_backend/internals/middlewares/auth"
	routeDetails "mykahfi_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== WEBHOOK (tanpa sesi) =====================
	log.Println("[INFO] Setting up WebhookRoutes...")
	routeDetails.WebhookRoutes(app, db)

	// ===================== PRIVATE (sesi wali murid) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api",
		authMiddleware.SessionJWT(authMiddleware.SessionJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
	)
	routeDetails.PortalRoutes(private, db)
}
