// internals/seeds/geography/seed.go
package geography

import (
	"log"

	"gorm.io/gorm"

	geoModel "citizenvoice_backend/internals/features/geography/model"
)

// sampleTree is a small slice of the Rwanda administrative hierarchy, enough
// to exercise every level locally.
var sampleTree = map[string]map[string]map[string]map[string][]string{
	"Kigali City": {
		"Gasabo": {
			"Remera": {
				"Rukiri I": {"Amajyambere", "Ubumwe"},
			},
			"Kimironko": {
				"Bibare": {"Kibagabaga"},
			},
		},
		"Nyarugenge": {
			"Nyamirambo": {
				"Mumena": {"Rugarama"},
			},
		},
	},
	"Eastern Province": {
		"Rwamagana": {
			"Kigabiro": {
				"Sibagire": {"Nyagasambu"},
			},
		},
	},
}

// SeedGeography inserts the sample tree idempotently; reruns are no-ops.
func SeedGeography(db *gorm.DB) error {
	for provinceName, districts := range sampleTree {
		province := geoModel.ProvinceModel{ProvinceName: provinceName}
		if err := db.Where("province_name = ?", provinceName).
			FirstOrCreate(&province).Error; err != nil {
			return err
		}
		for districtName, sectors := range districts {
			district := geoModel.DistrictModel{
				DistrictProvinceID: province.ProvinceID,
				DistrictName:       districtName,
			}
			if err := db.Where("district_province_id = ? AND district_name = ?",
				province.ProvinceID, districtName).
				FirstOrCreate(&district).Error; err != nil {
				return err
			}
			for sectorName, cells := range sectors {
				sector := geoModel.SectorModel{
					SectorDistrictID: district.DistrictID,
					SectorName:       sectorName,
				}
				if err := db.Where("sector_district_id = ? AND sector_name = ?",
					district.DistrictID, sectorName).
					FirstOrCreate(&sector).Error; err != nil {
					return err
				}
				for cellName, villages := range cells {
					cell := geoModel.CellModel{
						CellSectorID: sector.SectorID,
						CellName:     cellName,
					}
					if err := db.Where("cell_sector_id = ? AND cell_name = ?",
						sector.SectorID, cellName).
						FirstOrCreate(&cell).Error; err != nil {
						return err
					}
					for _, villageName := range villages {
						village := geoModel.VillageModel{
							VillageCellID: cell.CellID,
							VillageName:   villageName,
						}
						if err := db.Where("village_cell_id = ? AND village_name = ?",
							cell.CellID, villageName).
							FirstOrCreate(&village).Error; err != nil {
							return err
						}
					}
				}
			}
		}
	}
	log.Println("✅ Geography seed complete")
	return nil
}
