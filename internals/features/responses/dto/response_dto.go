// internals/features/responses/dto/response_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	responseModel "citizenvoice_backend/internals/features/responses/model"
)

/* ===================== REQUESTS ===================== */

type CreateResponseRequest struct {
	ResponseMessage  string `json:"response_message" validate:"required,min=1"`
	ResponseIsPublic *bool  `json:"response_is_public" validate:"omitempty"`
}

func (r *CreateResponseRequest) IsPublic() bool {
	if r.ResponseIsPublic == nil {
		return true
	}
	return *r.ResponseIsPublic
}

/* ===================== RESPONSES ===================== */

type ResponseItem struct {
	ResponseID       uuid.UUID  `json:"response_id"`
	ComplaintID      uuid.UUID  `json:"complaint_id"`
	ComplaintTitle   *string    `json:"complaint_title,omitempty"`
	Message          string     `json:"message"`
	IsPublic         bool       `json:"is_public"`
	IsAgencyResponse bool       `json:"is_agency_response"`
	ResponderID      uuid.UUID  `json:"responder_id"`
	ResponderName    *string    `json:"responder_name,omitempty"`
	AgencyID         *uuid.UUID `json:"agency_id,omitempty"`
	AgencyName       *string    `json:"agency_name,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

func FromResponseModel(m *responseModel.ResponseModel) ResponseItem {
	out := ResponseItem{
		ResponseID:       m.ResponseID,
		ComplaintID:      m.ResponseComplaintID,
		Message:          m.ResponseMessage,
		IsPublic:         m.ResponseIsPublic,
		IsAgencyResponse: m.ResponseIsAgencyResponse,
		ResponderID:      m.ResponseResponderID,
		AgencyID:         m.ResponseAgencyID,
		CreatedAt:        m.ResponseCreatedAt,
	}
	if m.Complaint != nil {
		out.ComplaintTitle = &m.Complaint.ComplaintTitle
	}
	if m.Responder != nil {
		name := m.Responder.FullName()
		out.ResponderName = &name
	}
	if m.Agency != nil {
		out.AgencyName = &m.Agency.AgencyName
	}
	return out
}

func FromResponseModels(ms []responseModel.ResponseModel) []ResponseItem {
	out := make([]ResponseItem, 0, len(ms))
	for i := range ms {
		out = append(out, FromResponseModel(&ms[i]))
	}
	return out
}

// MyResponses is the partitioned feed for /responses/my.
type MyResponses struct {
	ReceivedResponses []ResponseItem `json:"received_responses"`
	SentResponses     []ResponseItem `json:"sent_responses"`
}
