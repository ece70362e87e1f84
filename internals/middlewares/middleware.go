package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"mykahfi_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware dasar (CORS, recovery, logger, limiter global)
func SetupMiddlewares(app *fiber.App) {
	app.Use(CorsMiddleware())
	app.Use(RecoveryMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
