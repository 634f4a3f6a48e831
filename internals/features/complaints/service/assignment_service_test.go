package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"citizenvoice_backend/internals/constants"
	agencyModel "citizenvoice_backend/internals/features/agencies/model"
	geoModel "citizenvoice_backend/internals/features/geography/model"
)

type fakeDirectory struct {
	byName     map[string]*agencyModel.AgencyModel
	byDistrict map[string]*agencyModel.AgencyModel // category + districtID
	byProvince map[string]*agencyModel.AgencyModel // category + provinceID
}

func (f *fakeDirectory) FindByExactName(name string) (*agencyModel.AgencyModel, error) {
	return f.byName[name], nil
}

func (f *fakeDirectory) FindByCategoryServingDistrict(category string, districtID uuid.UUID) (*agencyModel.AgencyModel, error) {
	return f.byDistrict[category+districtID.String()], nil
}

func (f *fakeDirectory) FindByCategoryServingProvince(category string, provinceID uuid.UUID) (*agencyModel.AgencyModel, error) {
	return f.byProvince[category+provinceID.String()], nil
}

func newAgency(name, category string) *agencyModel.AgencyModel {
	return &agencyModel.AgencyModel{
		AgencyID:       uuid.New(),
		AgencyName:     name,
		AgencyCategory: category,
	}
}

// villageIn builds a village with the full preloaded location chain.
func villageIn(provinceID, districtID uuid.UUID) *geoModel.VillageModel {
	return &geoModel.VillageModel{
		VillageID:   uuid.New(),
		VillageName: "Amajyambere",
		Cell: &geoModel.CellModel{
			CellID:   uuid.New(),
			CellName: "Rukiri I",
			Sector: &geoModel.SectorModel{
				SectorID:   uuid.New(),
				SectorName: "Remera",
				District: &geoModel.DistrictModel{
					DistrictID:         districtID,
					DistrictProvinceID: provinceID,
					DistrictName:       "Gasabo",
					Province: &geoModel.ProvinceModel{
						ProvinceID:   provinceID,
						ProvinceName: "Kigali City",
					},
				},
			},
		},
	}
}

func TestResolveAssignment_CategoryDefaultWins(t *testing.T) {
	provinceID := uuid.New()
	districtID := uuid.New()

	wasac := newAgency("WASAC", constants.CategoryWater)
	local := newAgency("Gasabo Water Board", constants.CategoryWater)

	dir := &fakeDirectory{
		byName:     map[string]*agencyModel.AgencyModel{"WASAC": wasac},
		byDistrict: map[string]*agencyModel.AgencyModel{constants.CategoryWater + districtID.String(): local},
		byProvince: map[string]*agencyModel.AgencyModel{},
	}

	// even though a district-level agency exists, the national default wins
	got, err := ResolveAssignment(dir, constants.CategoryWater, villageIn(provinceID, districtID))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, wasac.AgencyID, got.AgencyID)
}

func TestResolveAssignment_DistrictMatch(t *testing.T) {
	provinceID := uuid.New()
	districtID := uuid.New()

	edu := newAgency("Gasabo Education Office", constants.CategoryEducation)
	dir := &fakeDirectory{
		byName:     map[string]*agencyModel.AgencyModel{},
		byDistrict: map[string]*agencyModel.AgencyModel{constants.CategoryEducation + districtID.String(): edu},
		byProvince: map[string]*agencyModel.AgencyModel{},
	}

	got, err := ResolveAssignment(dir, constants.CategoryEducation, villageIn(provinceID, districtID))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, edu.AgencyID, got.AgencyID)
}

func TestResolveAssignment_ProvinceFallback(t *testing.T) {
	provinceID := uuid.New()
	districtID := uuid.New()

	provincial := newAgency("Kigali Health Office", constants.CategoryHealth)
	dir := &fakeDirectory{
		byName:     map[string]*agencyModel.AgencyModel{},
		byDistrict: map[string]*agencyModel.AgencyModel{},
		byProvince: map[string]*agencyModel.AgencyModel{constants.CategoryHealth + provinceID.String(): provincial},
	}

	got, err := ResolveAssignment(dir, constants.CategoryHealth, villageIn(provinceID, districtID))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, provincial.AgencyID, got.AgencyID)
}

func TestResolveAssignment_Unassigned(t *testing.T) {
	dir := &fakeDirectory{
		byName:     map[string]*agencyModel.AgencyModel{},
		byDistrict: map[string]*agencyModel.AgencyModel{},
		byProvince: map[string]*agencyModel.AgencyModel{},
	}

	// "Other" has no default mapping and nothing serves this area
	got, err := ResolveAssignment(dir, constants.CategoryOther, villageIn(uuid.New(), uuid.New()))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestResolveAssignment_DefaultAbsentFallsThrough(t *testing.T) {
	provinceID := uuid.New()
	districtID := uuid.New()

	// WASAC not registered yet; a district water agency should pick it up
	local := newAgency("Gasabo Water Board", constants.CategoryWater)
	dir := &fakeDirectory{
		byName:     map[string]*agencyModel.AgencyModel{},
		byDistrict: map[string]*agencyModel.AgencyModel{constants.CategoryWater + districtID.String(): local},
		byProvince: map[string]*agencyModel.AgencyModel{},
	}

	got, err := ResolveAssignment(dir, constants.CategoryWater, villageIn(provinceID, districtID))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, local.AgencyID, got.AgencyID)
}

func TestResolveAssignment_NilVillage(t *testing.T) {
	wasac := newAgency("WASAC", constants.CategoryWater)
	dir := &fakeDirectory{
		byName:     map[string]*agencyModel.AgencyModel{"WASAC": wasac},
		byDistrict: map[string]*agencyModel.AgencyModel{},
		byProvince: map[string]*agencyModel.AgencyModel{},
	}

	// rule 1 still applies without a location
	got, err := ResolveAssignment(dir, constants.CategoryWater, nil)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, wasac.AgencyID, got.AgencyID)

	// but geography rules are skipped entirely
	got, err = ResolveAssignment(dir, constants.CategoryEducation, nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}
