package dto

type RegisterRequest struct {
	UserName    string  `json:"user_name" validate:"required,min=3,max=200"`
	Email       string  `json:"email" validate:"required,email"`
	FirstName   string  `json:"first_name" validate:"required,max=200"`
	LastName    string  `json:"last_name" validate:"required,max=200"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,max=15"`
	Password    string  `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}
