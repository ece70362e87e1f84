package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "mykahfi_backend/internals/features/students/controller"
	"mykahfi_backend/internals/middlewares"
)

// AuthRoutes: login/logout wali murid (login dibatasi limiter ketat).
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/logout", ctrl.Logout)
}
