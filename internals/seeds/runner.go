package seeds

import (
	"log"

	"gorm.io/gorm"

	agencySeeds "citizenvoice_backend/internals/seeds/agencies"
	geographySeeds "citizenvoice_backend/internals/seeds/geography"
)

// RunAllSeeds bootstraps a local database: the sample location tree first,
// then the default agencies that serve it.
func RunAllSeeds(db *gorm.DB, agencyPassword string) {
	if err := geographySeeds.SeedGeography(db); err != nil {
		log.Fatalf("❌ Geography seed failed: %v", err)
	}
	if err := agencySeeds.SeedDefaultAgencies(db, agencyPassword); err != nil {
		log.Fatalf("❌ Agency seed failed: %v", err)
	}
}
