package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"citizenvoice_backend/internals/constants"
)

func TestCreateComplaintRequestToModel(t *testing.T) {
	owner := uuid.New()
	village := uuid.New()

	req := CreateComplaintRequest{
		ComplaintTitle:       "Broken water pipe",
		ComplaintCategory:    constants.CategoryWater,
		ComplaintDescription: "The main pipe on our street burst yesterday.",
		ComplaintVillageID:   village,
	}

	m := req.ToModel(owner)
	assert.Equal(t, owner, m.ComplaintUserID)
	assert.Equal(t, village, m.ComplaintVillageID)
	assert.Equal(t, constants.StatusSubmitted, m.ComplaintStatus)
	assert.EqualValues(t, constants.PriorityLow, m.ComplaintPriority, "priority defaults to Low")
	assert.Nil(t, m.ComplaintAssignedAgencyID, "assignment happens in the service, never from input")

	high := int16(constants.PriorityHigh)
	req.ComplaintPriority = &high
	assert.EqualValues(t, constants.PriorityHigh, req.ToModel(owner).ComplaintPriority)
}

func TestFromComplaintModelPriorityLabel(t *testing.T) {
	req := CreateComplaintRequest{
		ComplaintTitle:       "No power",
		ComplaintCategory:    constants.CategoryElectricity,
		ComplaintDescription: "Transformer down for three days.",
		ComplaintVillageID:   uuid.New(),
	}
	m := req.ToModel(uuid.New())

	out := FromComplaintModel(m)
	assert.Equal(t, "Low", out.PriorityLabel)
	assert.Nil(t, out.Location, "no location without a preloaded village")
}
