package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"citizenvoice_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the base middleware chain. Auth middleware is
// attached per route group, not globally; the stricter login/register
// limiters stack on top of the global one.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
	app.Use(logger.LoggerMiddleware())
}
