// internals/features/geography/route/geography_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"citizenvoice_backend/internals/features/geography/controller"
)

// GeographyRoutes exposes the read-only location tree. All endpoints are
// public: the complaint form needs them before the citizen logs in.
func GeographyRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewGeographyController(db)

	api.Get("/provinces", ctrl.ListProvinces)
	api.Get("/provinces/:province_id/districts", ctrl.ListDistricts)
	api.Get("/districts/:district_id/sectors", ctrl.ListSectors)
	api.Get("/sectors/:sector_id/cells", ctrl.ListCells)
	api.Get("/cells/:cell_id/villages", ctrl.ListVillages)
}
