// internals/features/complaints/dto/complaint_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"citizenvoice_backend/internals/constants"
	complaintModel "citizenvoice_backend/internals/features/complaints/model"
)

/* ===================== REQUESTS ===================== */

type CreateComplaintRequest struct {
	ComplaintTitle       string    `json:"complaint_title" form:"complaint_title" validate:"required,min=3,max=200"`
	ComplaintCategory    string    `json:"complaint_category" form:"complaint_category" validate:"required"`
	ComplaintDescription string    `json:"complaint_description" form:"complaint_description" validate:"required,min=10"`
	ComplaintVillageID   uuid.UUID `json:"complaint_village_id" form:"complaint_village_id" validate:"required"`
	ComplaintPriority    *int16    `json:"complaint_priority" form:"complaint_priority" validate:"omitempty,oneof=1 2 3"`
}

func (r *CreateComplaintRequest) ToModel(ownerID uuid.UUID) *complaintModel.ComplaintModel {
	m := &complaintModel.ComplaintModel{
		ComplaintUserID:      ownerID,
		ComplaintTitle:       r.ComplaintTitle,
		ComplaintCategory:    r.ComplaintCategory,
		ComplaintDescription: r.ComplaintDescription,
		ComplaintVillageID:   r.ComplaintVillageID,
		ComplaintStatus:      constants.StatusSubmitted,
		ComplaintPriority:    constants.PriorityLow,
	}
	if r.ComplaintPriority != nil {
		m.ComplaintPriority = *r.ComplaintPriority
	}
	return m
}

type UpdateComplaintStatusRequest struct {
	ComplaintStatus string `json:"complaint_status" validate:"required"`
}

/* ===================== RESPONSES ===================== */

type ComplaintResponse struct {
	ComplaintID          uuid.UUID  `json:"complaint_id"`
	ComplaintTitle       string     `json:"complaint_title"`
	ComplaintCategory    string     `json:"complaint_category"`
	ComplaintDescription string     `json:"complaint_description"`
	ComplaintStatus      string     `json:"complaint_status"`
	ComplaintPriority    int16      `json:"complaint_priority"`
	PriorityLabel        string     `json:"priority_label"`
	Location             *string    `json:"location,omitempty"`
	AssignedAgencyID     *uuid.UUID `json:"assigned_agency_id,omitempty"`
	AssignedAgencyName   *string    `json:"assigned_agency_name,omitempty"`
	AttachmentURL        *string    `json:"attachment_url,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

func FromComplaintModel(m *complaintModel.ComplaintModel) ComplaintResponse {
	out := ComplaintResponse{
		ComplaintID:          m.ComplaintID,
		ComplaintTitle:       m.ComplaintTitle,
		ComplaintCategory:    m.ComplaintCategory,
		ComplaintDescription: m.ComplaintDescription,
		ComplaintStatus:      m.ComplaintStatus,
		ComplaintPriority:    m.ComplaintPriority,
		PriorityLabel:        constants.PriorityLabel(int(m.ComplaintPriority)),
		AssignedAgencyID:     m.ComplaintAssignedAgencyID,
		AttachmentURL:        m.ComplaintAttachmentURL,
		CreatedAt:            m.ComplaintCreatedAt,
		UpdatedAt:            m.ComplaintUpdatedAt,
	}
	if m.Village != nil {
		loc := m.Village.FullPath()
		out.Location = &loc
	}
	if m.AssignedAgency != nil {
		out.AssignedAgencyName = &m.AssignedAgency.AgencyName
	}
	return out
}

func FromComplaintModels(ms []complaintModel.ComplaintModel) []ComplaintResponse {
	out := make([]ComplaintResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromComplaintModel(&ms[i]))
	}
	return out
}
