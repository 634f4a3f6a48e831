// internals/features/responses/route/response_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"citizenvoice_backend/internals/features/responses/controller"
	authMiddleware "citizenvoice_backend/internals/middlewares/auth"
)

func ResponseRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewResponseController(db)

	authed := api.Group("", authMiddleware.AuthMiddleware(db))
	authed.Post("/complaints/:id/responses", ctrl.CreateCitizenResponse)
	authed.Post("/agency/complaints/:id/responses", ctrl.CreateAgencyResponse)
	authed.Get("/responses/my", ctrl.MyResponses)
}
