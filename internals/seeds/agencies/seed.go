// internals/seeds/agencies/seed.go
package agencies

import (
	"log"
	"strings"

	"gorm.io/gorm"

	"citizenvoice_backend/internals/constants"
	agencyModel "citizenvoice_backend/internals/features/agencies/model"
	agencyService "citizenvoice_backend/internals/features/agencies/service"
	geoModel "citizenvoice_backend/internals/features/geography/model"
	userModel "citizenvoice_backend/internals/features/users/user/model"
)

type defaultAgency struct {
	Name     string
	Category string
	Email    string
	Phone    string
}

// The category-default agencies the assignment resolver prefers.
var defaultAgencies = []defaultAgency{
	{Name: "WASAC", Category: constants.CategoryWater, Email: "info@wasac.rw", Phone: "0788000001"},
	{Name: "REG", Category: constants.CategoryElectricity, Email: "info@reg.rw", Phone: "0788000002"},
	{Name: "Rwanda Revenue Authority", Category: constants.CategoryTaxation, Email: "info@rra.gov.rw", Phone: "0788000003"},
}

// SeedDefaultAgencies creates the three national default agencies, each with
// a government account and every seeded district attached. Idempotent on
// agency name.
func SeedDefaultAgencies(db *gorm.DB, password string) error {
	var districts []geoModel.DistrictModel
	if err := db.Find(&districts).Error; err != nil {
		return err
	}

	for _, d := range defaultAgencies {
		var existing agencyModel.AgencyModel
		err := db.Where("agency_name = ?", d.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		hashed, err := agencyService.EnsurePasswordHashed(password)
		if err != nil {
			return err
		}

		slug := strings.ToLower(strings.ReplaceAll(d.Name, " ", "."))
		user := userModel.UserModel{
			UserName:     slug,
			Email:        d.Email,
			FirstName:    d.Name,
			LastName:     "Agency",
			IsCitizen:    false,
			IsGovernment: true,
			IsActive:     true,
			Password:     hashed,
		}
		if err := db.Where("email = ?", d.Email).FirstOrCreate(&user).Error; err != nil {
			return err
		}

		agency := agencyModel.AgencyModel{
			AgencyUserID:     user.ID,
			AgencyName:       d.Name,
			AgencyCategory:   d.Category,
			AgencyEmail:      d.Email,
			AgencyPhone:      d.Phone,
			AgencyPassword:   password,
			ServiceDistricts: districts,
		}
		if err := agencyService.CreateAgency(db, &agency); err != nil {
			return err
		}
		log.Printf("✅ Seeded agency %s (code %s)", agency.AgencyName, agency.AgencyCode)
	}
	return nil
}
