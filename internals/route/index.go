// internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	agencyRoute "citizenvoice_backend/internals/features/agencies/route"
	complaintRoute "citizenvoice_backend/internals/features/complaints/route"
	geographyRoute "citizenvoice_backend/internals/features/geography/route"
	responseRoute "citizenvoice_backend/internals/features/responses/route"
	authRoute "citizenvoice_backend/internals/features/users/auth/route"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	api := app.Group("/api")

	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(api, db)

	log.Println("[INFO] Setting up GeographyRoutes...")
	geographyRoute.GeographyRoutes(api, db)

	log.Println("[INFO] Setting up ComplaintRoutes...")
	complaintRoute.ComplaintRoutes(api, db)

	log.Println("[INFO] Setting up ResponseRoutes...")
	responseRoute.ResponseRoutes(api, db)

	log.Println("[INFO] Setting up AgencyRoutes...")
	agencyRoute.AgencyRoutes(api, db)
}
