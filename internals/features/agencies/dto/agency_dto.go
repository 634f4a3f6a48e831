// internals/features/agencies/dto/agency_dto.go
package dto

import (
	"github.com/google/uuid"
	"github.com/lib/pq"

	"citizenvoice_backend/internals/constants"
	"citizenvoice_backend/internals/features/agencies/model"
)

type AgencyLoginRequest struct {
	AgencyCode string `json:"agency_code" validate:"required,len=6,numeric"`
	Password   string `json:"password" validate:"required"`
}

type ChangeAgencyPasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

type CreateAgencyRequest struct {
	AgencyUserID   uuid.UUID `json:"agency_user_id" validate:"required"`
	AgencyName     string    `json:"agency_name" validate:"required,max=200"`
	AgencyCategory string    `json:"agency_category" validate:"required"`
	AgencyEmail    string    `json:"agency_email" validate:"required,email"`
	AgencyPhone    string    `json:"agency_phone" validate:"required,max=15"`
	Password       string    `json:"password" validate:"required,min=8"`

	ServiceDistrictIDs []uuid.UUID `json:"service_district_ids" validate:"min=1,dive,required"`
}

func (r *CreateAgencyRequest) ToModel() *model.AgencyModel {
	return &model.AgencyModel{
		AgencyUserID:   r.AgencyUserID,
		AgencyName:     r.AgencyName,
		AgencyCategory: r.AgencyCategory,
		AgencyEmail:    r.AgencyEmail,
		AgencyPhone:    r.AgencyPhone,
		AgencyPassword: r.Password,
	}
}

type AgencyResponse struct {
	AgencyID       uuid.UUID `json:"agency_id"`
	AgencyName     string    `json:"agency_name"`
	AgencyCategory string    `json:"agency_category"`
	AgencyEmail    string    `json:"agency_email"`
	AgencyPhone    string    `json:"agency_phone"`
	AgencyCode     string    `json:"agency_code"`
}

func FromAgencyModel(m *model.AgencyModel) AgencyResponse {
	return AgencyResponse{
		AgencyID:       m.AgencyID,
		AgencyName:     m.AgencyName,
		AgencyCategory: m.AgencyCategory,
		AgencyEmail:    m.AgencyEmail,
		AgencyPhone:    m.AgencyPhone,
		AgencyCode:     m.AgencyCode,
	}
}

// DashboardStats is scanned straight from one aggregate query;
// ServiceDistricts uses pq.StringArray to receive array_agg output.
type DashboardStats struct {
	AgencyID         uuid.UUID      `json:"agency_id" gorm:"column:agency_id"`
	AgencyName       string         `json:"agency_name" gorm:"column:agency_name"`
	AgencyCategory   string         `json:"agency_category" gorm:"column:agency_category"`
	ServiceDistricts pq.StringArray `json:"service_districts" gorm:"column:service_districts;type:text[]"`

	TotalComplaints int64 `json:"total_complaints" gorm:"column:total_complaints"`
	Submitted       int64 `json:"submitted" gorm:"column:submitted"`
	InProgress      int64 `json:"in_progress" gorm:"column:in_progress"`
	Resolved        int64 `json:"resolved" gorm:"column:resolved"`
	Rejected        int64 `json:"rejected" gorm:"column:rejected"`
}

// ComplaintFilter carries the exact-match filters plus free-text search for
// the agency complaint list. Zero values mean "no filter".
type ComplaintFilter struct {
	Status   string
	Category string
	Priority int
	Search   string
}

func (f ComplaintFilter) ValidStatus() bool {
	return f.Status == "" || constants.IsValidStatus(f.Status)
}

func (f ComplaintFilter) ValidCategory() bool {
	return f.Category == "" || constants.IsValidCategory(f.Category)
}
