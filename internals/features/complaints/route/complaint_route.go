// internals/features/complaints/route/complaint_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"citizenvoice_backend/internals/features/complaints/controller"
	authMiddleware "citizenvoice_backend/internals/middlewares/auth"
)

func ComplaintRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewComplaintController(db)

	// public tracking, no auth
	api.Get("/track/:id", ctrl.PublicTracking)

	complaints := api.Group("/complaints", authMiddleware.AuthMiddleware(db))
	complaints.Post("/", ctrl.Create)
	complaints.Get("/", ctrl.MyComplaints)
	complaints.Get("/:id", ctrl.Detail)
}
