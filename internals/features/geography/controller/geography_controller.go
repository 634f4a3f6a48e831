// internals/features/geography/controller/geography_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"citizenvoice_backend/internals/features/geography/model"
	helper "citizenvoice_backend/internals/helpers"
)

type GeographyController struct {
	DB *gorm.DB
}

func NewGeographyController(db *gorm.DB) *GeographyController {
	return &GeographyController{DB: db}
}

// GET /api/provinces
func (ctrl *GeographyController) ListProvinces(c *fiber.Ctx) error {
	var provinces []model.ProvinceModel
	if err := ctrl.DB.Order("province_name ASC").Find(&provinces).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch provinces")
	}
	return helper.JsonList(c, "Provinces fetched successfully", provinces, nil)
}

// GET /api/provinces/:province_id/districts
func (ctrl *GeographyController) ListDistricts(c *fiber.Ctx) error {
	provinceID, err := uuid.Parse(c.Params("province_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid province id")
	}
	var districts []model.DistrictModel
	if err := ctrl.DB.
		Where("district_province_id = ?", provinceID).
		Order("district_name ASC").
		Find(&districts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch districts")
	}
	return helper.JsonList(c, "Districts fetched successfully", districts, nil)
}

// GET /api/districts/:district_id/sectors
func (ctrl *GeographyController) ListSectors(c *fiber.Ctx) error {
	districtID, err := uuid.Parse(c.Params("district_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid district id")
	}
	var sectors []model.SectorModel
	if err := ctrl.DB.
		Where("sector_district_id = ?", districtID).
		Order("sector_name ASC").
		Find(&sectors).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch sectors")
	}
	return helper.JsonList(c, "Sectors fetched successfully", sectors, nil)
}

// GET /api/sectors/:sector_id/cells
func (ctrl *GeographyController) ListCells(c *fiber.Ctx) error {
	sectorID, err := uuid.Parse(c.Params("sector_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid sector id")
	}
	var cells []model.CellModel
	if err := ctrl.DB.
		Where("cell_sector_id = ?", sectorID).
		Order("cell_name ASC").
		Find(&cells).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch cells")
	}
	return helper.JsonList(c, "Cells fetched successfully", cells, nil)
}

// GET /api/cells/:cell_id/villages
func (ctrl *GeographyController) ListVillages(c *fiber.Ctx) error {
	cellID, err := uuid.Parse(c.Params("cell_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid cell id")
	}
	var villages []model.VillageModel
	if err := ctrl.DB.
		Where("village_cell_id = ?", cellID).
		Order("village_name ASC").
		Find(&villages).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch villages")
	}
	return helper.JsonList(c, "Villages fetched successfully", villages, nil)
}
