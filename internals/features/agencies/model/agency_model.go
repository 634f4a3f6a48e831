// internals/features/agencies/model/agency_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	geoModel "citizenvoice_backend/internals/features/geography/model"
	userModel "citizenvoice_backend/internals/features/users/user/model"
)

// AgencyModel is a government agency handling one complaint category across
// a set of districts. AgencyCode is the 6-digit login identifier, generated
// by the service layer and immutable once set. AgencyPassword always holds a
// bcrypt hash; the service layer guarantees raw values never reach the DB.
type AgencyModel struct {
	AgencyID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:agency_id" json:"agency_id"`
	AgencyUserID uuid.UUID `gorm:"type:uuid;not null;column:agency_user_id" json:"agency_user_id"`

	AgencyName     string `gorm:"type:varchar(200);uniqueIndex;not null;column:agency_name" json:"agency_name"`
	AgencyCategory string `gorm:"type:varchar(50);not null;index;column:agency_category" json:"agency_category"`
	AgencyEmail    string `gorm:"type:varchar(255);uniqueIndex;not null;column:agency_email" json:"agency_email"`
	AgencyPhone    string `gorm:"type:varchar(15);uniqueIndex;not null;column:agency_phone" json:"agency_phone"`

	AgencyCode     string `gorm:"type:varchar(6);uniqueIndex;column:agency_code" json:"agency_code"`
	AgencyPassword string `gorm:"type:varchar(128);not null;column:agency_password" json:"-"`

	ServiceDistricts []geoModel.DistrictModel `gorm:"many2many:agency_service_districts;foreignKey:AgencyID;joinForeignKey:AgencyID;references:DistrictID;joinReferences:DistrictID" json:"service_districts,omitempty"`

	AgencyCreatedAt time.Time `gorm:"column:agency_created_at;autoCreateTime" json:"agency_created_at"`
	AgencyUpdatedAt time.Time `gorm:"column:agency_updated_at;autoUpdateTime" json:"agency_updated_at"`

	User *userModel.UserModel `gorm:"foreignKey:AgencyUserID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (AgencyModel) TableName() string { return "agencies" }
