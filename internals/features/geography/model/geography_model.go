// internals/features/geography/model/geography_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

/*
Fixed 5-level administrative tree:
Province > District > Sector > Cell > Village.
Names are unique among siblings; deletes cascade downward.
*/

type ProvinceModel struct {
	ProvinceID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:province_id" json:"province_id"`
	ProvinceName      string    `gorm:"type:varchar(200);uniqueIndex;not null;column:province_name" json:"province_name"`
	ProvinceCreatedAt time.Time `gorm:"column:province_created_at;autoCreateTime" json:"province_created_at"`
}

func (ProvinceModel) TableName() string { return "provinces" }

type DistrictModel struct {
	DistrictID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:district_id" json:"district_id"`
	DistrictProvinceID uuid.UUID `gorm:"type:uuid;not null;column:district_province_id;uniqueIndex:uq_districts_province_name" json:"district_province_id"`
	DistrictName       string    `gorm:"type:varchar(200);not null;column:district_name;uniqueIndex:uq_districts_province_name" json:"district_name"`
	DistrictCreatedAt  time.Time `gorm:"column:district_created_at;autoCreateTime" json:"district_created_at"`

	Province *ProvinceModel `gorm:"foreignKey:DistrictProvinceID;references:ProvinceID;constraint:OnDelete:CASCADE" json:"province,omitempty"`
}

func (DistrictModel) TableName() string { return "districts" }

type SectorModel struct {
	SectorID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:sector_id" json:"sector_id"`
	SectorDistrictID uuid.UUID `gorm:"type:uuid;not null;column:sector_district_id;uniqueIndex:uq_sectors_district_name" json:"sector_district_id"`
	SectorName       string    `gorm:"type:varchar(200);not null;column:sector_name;uniqueIndex:uq_sectors_district_name" json:"sector_name"`
	SectorCreatedAt  time.Time `gorm:"column:sector_created_at;autoCreateTime" json:"sector_created_at"`

	District *DistrictModel `gorm:"foreignKey:SectorDistrictID;references:DistrictID;constraint:OnDelete:CASCADE" json:"district,omitempty"`
}

func (SectorModel) TableName() string { return "sectors" }

type CellModel struct {
	CellID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:cell_id" json:"cell_id"`
	CellSectorID uuid.UUID `gorm:"type:uuid;not null;column:cell_sector_id;uniqueIndex:uq_cells_sector_name" json:"cell_sector_id"`
	CellName     string    `gorm:"type:varchar(200);not null;column:cell_name;uniqueIndex:uq_cells_sector_name" json:"cell_name"`
	CellCreatedAt time.Time `gorm:"column:cell_created_at;autoCreateTime" json:"cell_created_at"`

	Sector *SectorModel `gorm:"foreignKey:CellSectorID;references:SectorID;constraint:OnDelete:CASCADE" json:"sector,omitempty"`
}

func (CellModel) TableName() string { return "cells" }

type VillageModel struct {
	VillageID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:village_id" json:"village_id"`
	VillageCellID   uuid.UUID `gorm:"type:uuid;not null;column:village_cell_id;uniqueIndex:uq_villages_cell_name" json:"village_cell_id"`
	VillageName     string    `gorm:"type:varchar(200);not null;column:village_name;uniqueIndex:uq_villages_cell_name" json:"village_name"`
	VillageCreatedAt time.Time `gorm:"column:village_created_at;autoCreateTime" json:"village_created_at"`

	Cell *CellModel `gorm:"foreignKey:VillageCellID;references:CellID;constraint:OnDelete:CASCADE" json:"cell,omitempty"`
}

func (VillageModel) TableName() string { return "villages" }

// FullPath returns the hierarchical location path, e.g.
// "Kigali City > Gasabo > Remera > Rukiri I > Amajyambere".
// Requires Cell.Sector.District.Province to be preloaded.
func (v *VillageModel) FullPath() string {
	parts := []string{}
	if v.Cell != nil && v.Cell.Sector != nil && v.Cell.Sector.District != nil && v.Cell.Sector.District.Province != nil {
		parts = append(parts, v.Cell.Sector.District.Province.ProvinceName)
	}
	if v.Cell != nil && v.Cell.Sector != nil && v.Cell.Sector.District != nil {
		parts = append(parts, v.Cell.Sector.District.DistrictName)
	}
	if v.Cell != nil && v.Cell.Sector != nil {
		parts = append(parts, v.Cell.Sector.SectorName)
	}
	if v.Cell != nil {
		parts = append(parts, v.Cell.CellName)
	}
	parts = append(parts, v.VillageName)
	return strings.Join(parts, " > ")
}

// District walks the preloaded chain; nil when not preloaded.
func (v *VillageModel) DistrictRef() *DistrictModel {
	if v.Cell == nil || v.Cell.Sector == nil {
		return nil
	}
	return v.Cell.Sector.District
}
