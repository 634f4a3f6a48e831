// internals/features/responses/model/response_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	agencyModel "citizenvoice_backend/internals/features/agencies/model"
	complaintModel "citizenvoice_backend/internals/features/complaints/model"
	userModel "citizenvoice_backend/internals/features/users/user/model"
)

// ResponseModel is a message on a complaint thread, authored either by the
// complaint owner or by an agency user. ResponseComplaintOwnerID and
// ResponseAssignedAgencyID are denormalized copies taken from the complaint
// at creation; they are never recomputed, even if the complaint is later
// reassigned.
type ResponseModel struct {
	ResponseID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:response_id" json:"response_id"`
	ResponseComplaintID uuid.UUID `gorm:"type:uuid;not null;index;column:response_complaint_id" json:"response_complaint_id"`

	ResponseComplaintOwnerID uuid.UUID  `gorm:"type:uuid;not null;index;column:response_complaint_owner_id" json:"response_complaint_owner_id"`
	ResponseResponderID      uuid.UUID  `gorm:"type:uuid;not null;index;column:response_responder_id" json:"response_responder_id"`
	ResponseAgencyID         *uuid.UUID `gorm:"type:uuid;column:response_agency_id" json:"response_agency_id,omitempty"`
	ResponseAssignedAgencyID *uuid.UUID `gorm:"type:uuid;column:response_assigned_agency_id" json:"response_assigned_agency_id,omitempty"`

	ResponseMessage          string `gorm:"type:text;not null;column:response_message" json:"response_message"`
	ResponseIsPublic         bool   `gorm:"not null;default:true;column:response_is_public" json:"response_is_public"`
	ResponseIsAgencyResponse bool   `gorm:"not null;default:false;column:response_is_agency_response" json:"response_is_agency_response"`

	ResponseCreatedAt time.Time `gorm:"column:response_created_at;autoCreateTime" json:"response_created_at"`
	ResponseUpdatedAt time.Time `gorm:"column:response_updated_at;autoUpdateTime" json:"response_updated_at"`

	Complaint      *complaintModel.ComplaintModel `gorm:"foreignKey:ResponseComplaintID;references:ComplaintID;constraint:OnDelete:CASCADE" json:"complaint,omitempty"`
	ComplaintOwner *userModel.UserModel           `gorm:"foreignKey:ResponseComplaintOwnerID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Responder      *userModel.UserModel           `gorm:"foreignKey:ResponseResponderID;references:ID;constraint:OnDelete:CASCADE" json:"responder,omitempty"`
	Agency         *agencyModel.AgencyModel       `gorm:"foreignKey:ResponseAgencyID;references:AgencyID;constraint:OnDelete:SET NULL" json:"agency,omitempty"`
	AssignedAgency *agencyModel.AgencyModel       `gorm:"foreignKey:ResponseAssignedAgencyID;references:AgencyID;constraint:OnDelete:SET NULL" json:"-"`
}

func (ResponseModel) TableName() string { return "complaint_responses" }
