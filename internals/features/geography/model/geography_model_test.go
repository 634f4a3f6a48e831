package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func fullVillage() *VillageModel {
	return &VillageModel{
		VillageID:   uuid.New(),
		VillageName: "Amajyambere",
		Cell: &CellModel{
			CellName: "Rukiri I",
			Sector: &SectorModel{
				SectorName: "Remera",
				District: &DistrictModel{
					DistrictID:   uuid.New(),
					DistrictName: "Gasabo",
					Province:     &ProvinceModel{ProvinceName: "Kigali City"},
				},
			},
		},
	}
}

func TestVillageFullPath(t *testing.T) {
	v := fullVillage()
	assert.Equal(t, "Kigali City > Gasabo > Remera > Rukiri I > Amajyambere", v.FullPath())
}

func TestVillageFullPathPartialChain(t *testing.T) {
	v := &VillageModel{VillageName: "Amajyambere"}
	assert.Equal(t, "Amajyambere", v.FullPath())

	v.Cell = &CellModel{CellName: "Rukiri I"}
	assert.Equal(t, "Rukiri I > Amajyambere", v.FullPath())
}

func TestVillageDistrictRef(t *testing.T) {
	v := fullVillage()
	d := v.DistrictRef()
	assert.NotNil(t, d)
	assert.Equal(t, "Gasabo", d.DistrictName)

	assert.Nil(t, (&VillageModel{}).DistrictRef())
}
