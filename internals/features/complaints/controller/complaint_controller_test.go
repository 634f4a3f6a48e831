package controller

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicTrackingRejectsBadID(t *testing.T) {
	app := fiber.New()
	ctrl := NewComplaintController(nil)
	app.Get("/api/track/:id", ctrl.PublicTracking)

	req := httptest.NewRequest("GET", "/api/track/not-a-uuid", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
