// internals/features/complaints/model/complaint_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	agencyModel "citizenvoice_backend/internals/features/agencies/model"
	geoModel "citizenvoice_backend/internals/features/geography/model"
	userModel "citizenvoice_backend/internals/features/users/user/model"
)

// ComplaintModel is a citizen complaint. ComplaintAssignedAgencyID is
// resolved once inside the creation transaction and never recomputed on
// later edits; nil means unassigned, which is a valid state. Deleting the
// agency nulls the reference; deleting the owner cascades.
type ComplaintModel struct {
	ComplaintID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:complaint_id" json:"complaint_id"`
	ComplaintUserID uuid.UUID `gorm:"type:uuid;not null;index;column:complaint_user_id" json:"complaint_user_id"`

	ComplaintTitle       string `gorm:"type:varchar(200);not null;column:complaint_title" json:"complaint_title"`
	ComplaintCategory    string `gorm:"type:varchar(50);not null;index;column:complaint_category" json:"complaint_category"`
	ComplaintDescription string `gorm:"type:text;not null;column:complaint_description" json:"complaint_description"`

	ComplaintVillageID uuid.UUID `gorm:"type:uuid;not null;column:complaint_village_id" json:"complaint_village_id"`

	ComplaintStatus   string `gorm:"type:varchar(20);not null;default:'Submitted';index;column:complaint_status" json:"complaint_status"`
	ComplaintPriority int16  `gorm:"not null;default:3;column:complaint_priority" json:"complaint_priority"`

	ComplaintAssignedAgencyID *uuid.UUID `gorm:"type:uuid;index;column:complaint_assigned_agency_id" json:"complaint_assigned_agency_id,omitempty"`

	ComplaintAttachmentURL  *string        `gorm:"column:complaint_attachment_url" json:"complaint_attachment_url,omitempty"`
	ComplaintAttachmentMeta datatypes.JSON `gorm:"column:complaint_attachment_meta" json:"complaint_attachment_meta,omitempty"`

	ComplaintCreatedAt time.Time `gorm:"column:complaint_created_at;autoCreateTime;index:,sort:desc" json:"complaint_created_at"`
	ComplaintUpdatedAt time.Time `gorm:"column:complaint_updated_at;autoUpdateTime" json:"complaint_updated_at"`

	User           *userModel.UserModel     `gorm:"foreignKey:ComplaintUserID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Village        *geoModel.VillageModel   `gorm:"foreignKey:ComplaintVillageID;references:VillageID;constraint:OnDelete:CASCADE" json:"village,omitempty"`
	AssignedAgency *agencyModel.AgencyModel `gorm:"foreignKey:ComplaintAssignedAgencyID;references:AgencyID;constraint:OnDelete:SET NULL" json:"assigned_agency,omitempty"`
}

func (ComplaintModel) TableName() string { return "complaints" }
