// internals/features/agencies/route/agency_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"citizenvoice_backend/internals/features/agencies/controller"
	"citizenvoice_backend/internals/middlewares"
	authMiddleware "citizenvoice_backend/internals/middlewares/auth"
)

// AgencyRoutes wires the agency console: code+password login, dashboard,
// assigned-complaint management. Admin creation sits under /api/admin and
// additionally requires a government account.
func AgencyRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAgencyController(db)

	agency := api.Group("/agency")
	agency.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)

	protected := agency.Group("", authMiddleware.AuthMiddleware(db))
	protected.Get("/dashboard", ctrl.Dashboard)
	protected.Get("/complaints", ctrl.Complaints)
	protected.Patch("/complaints/:id/status", ctrl.UpdateComplaintStatus)
	protected.Patch("/password", ctrl.ChangePassword)

	admin := api.Group("/admin",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.RequireGovernment(),
	)
	admin.Post("/agencies", ctrl.Create)
}
