package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel represents the users table. Role flags mirror the registration
// form: citizens get is_citizen, agency-backing identities get is_government.
// The flags are independent; authorization for agency endpoints keys on the
// agency relation, not on is_government alone.
type UserModel struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName    string    `gorm:"size:200;uniqueIndex;not null" json:"user_name" validate:"required,min=3,max=200"`
	Email       string    `gorm:"size:255;uniqueIndex;not null" json:"email" validate:"required,email"`
	FirstName   string    `gorm:"size:200;not null" json:"first_name" validate:"required,max=200"`
	LastName    string    `gorm:"size:200;not null" json:"last_name" validate:"required,max=200"`
	PhoneNumber *string   `gorm:"size:15" json:"phone_number,omitempty" validate:"omitempty,max=15"`
	Password    string    `gorm:"not null" json:"-" validate:"required,min=8"`

	IsCitizen    bool `gorm:"not null;default:true" json:"is_citizen"`
	IsGovernment bool `gorm:"not null;default:false" json:"is_government"`
	IsActive     bool `gorm:"not null;default:true" json:"is_active"`

	GoogleID *string `gorm:"size:255;uniqueIndex" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

// FullName is what response feeds show as the responder name.
func (u *UserModel) FullName() string {
	return u.FirstName + " " + u.LastName
}
