package middlewares

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupMiddlewaresRateLimitsEveryRoute(t *testing.T) {
	app := fiber.New()
	SetupMiddlewares(app)
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })

	var last int
	for i := 0; i < 101; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
		require.NoError(t, err)
		last = resp.StatusCode
	}
	assert.Equal(t, fiber.StatusTooManyRequests, last, "request 101 within the window must be limited")
}

func TestSetupMiddlewaresRecoversFromPanic(t *testing.T) {
	app := fiber.New()
	SetupMiddlewares(app)
	app.Get("/boom", func(c *fiber.Ctx) error { panic("boom") })

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
