// internals/features/complaints/service/assignment_service.go
package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"citizenvoice_backend/internals/constants"
	agencyModel "citizenvoice_backend/internals/features/agencies/model"
	geoModel "citizenvoice_backend/internals/features/geography/model"
)

// defaultAgencyByCategory maps a category to the canonical national agency.
// Rule 1 of the resolver: if an agency with this exact name exists, it wins
// regardless of service districts.
var defaultAgencyByCategory = map[string]string{
	constants.CategoryWater:       "WASAC",
	constants.CategoryElectricity: "REG",
	constants.CategoryTaxation:    "Rwanda Revenue Authority",
}

// AgencyDirectory is the read surface the resolver needs. The production
// implementation queries the agencies tables; tests swap in a fake.
type AgencyDirectory interface {
	// FindByExactName returns the agency with that name, or nil.
	FindByExactName(name string) (*agencyModel.AgencyModel, error)
	// FindByCategoryServingDistrict returns the oldest category-matching
	// agency whose service districts contain districtID, or nil.
	FindByCategoryServingDistrict(category string, districtID uuid.UUID) (*agencyModel.AgencyModel, error)
	// FindByCategoryServingProvince returns the oldest category-matching
	// agency serving any district of provinceID, or nil.
	FindByCategoryServingProvince(category string, provinceID uuid.UUID) (*agencyModel.AgencyModel, error)
}

// ResolveAssignment picks the agency responsible for a new complaint. Strict
// precedence, first non-nil wins:
//
//  1. category default mapping by exact agency name
//  2. category match serving the village's district
//  3. category match serving any district in the village's province
//  4. nil — the complaint stays unassigned, which is not an error
//
// The village must carry its preloaded Cell>Sector>District>Province chain;
// without it rules 2 and 3 are skipped (rule 1 can still match).
func ResolveAssignment(dir AgencyDirectory, category string, village *geoModel.VillageModel) (*agencyModel.AgencyModel, error) {
	if name, ok := defaultAgencyByCategory[category]; ok {
		agency, err := dir.FindByExactName(name)
		if err != nil {
			return nil, err
		}
		if agency != nil {
			return agency, nil
		}
	}

	if village == nil {
		return nil, nil
	}
	district := village.DistrictRef()
	if district == nil {
		return nil, nil
	}

	agency, err := dir.FindByCategoryServingDistrict(category, district.DistrictID)
	if err != nil {
		return nil, err
	}
	if agency != nil {
		return agency, nil
	}

	return dir.FindByCategoryServingProvince(category, district.DistrictProvinceID)
}

/* ===============================
   GORM-backed directory
=================================*/

type gormAgencyDirectory struct {
	db *gorm.DB
}

// NewAgencyDirectory wraps a DB handle (usually the transaction the
// complaint insert runs in) as an AgencyDirectory.
func NewAgencyDirectory(db *gorm.DB) AgencyDirectory {
	return &gormAgencyDirectory{db: db}
}

func (d *gormAgencyDirectory) FindByExactName(name string) (*agencyModel.AgencyModel, error) {
	var agency agencyModel.AgencyModel
	err := d.db.Where("agency_name = ?", name).First(&agency).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &agency, nil
}

func (d *gormAgencyDirectory) FindByCategoryServingDistrict(category string, districtID uuid.UUID) (*agencyModel.AgencyModel, error) {
	var agency agencyModel.AgencyModel
	err := d.db.
		Joins("JOIN agency_service_districts asd ON asd.agency_id = agencies.agency_id").
		Where("agencies.agency_category = ? AND asd.district_id = ?", category, districtID).
		Order("agencies.agency_created_at ASC, agencies.agency_id ASC").
		First(&agency).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &agency, nil
}

func (d *gormAgencyDirectory) FindByCategoryServingProvince(category string, provinceID uuid.UUID) (*agencyModel.AgencyModel, error) {
	var agency agencyModel.AgencyModel
	err := d.db.
		Joins("JOIN agency_service_districts asd ON asd.agency_id = agencies.agency_id").
		Joins("JOIN districts d ON d.district_id = asd.district_id").
		Where("agencies.agency_category = ? AND d.district_province_id = ?", category, provinceID).
		Order("agencies.agency_created_at ASC, agencies.agency_id ASC").
		First(&agency).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &agency, nil
}
