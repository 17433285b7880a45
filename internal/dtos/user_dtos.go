package dtos

// UpdateProfileRequest covers the user-editable profile fields; the
// email stays owned by the identity provider.
type UpdateProfileRequest struct {
	FirstName   string `json:"first_name" validate:"required,min=1,max=100"`
	LastName    string `json:"last_name" validate:"required,min=1,max=100"`
	PhoneNumber string `json:"phone_number,omitempty" validate:"omitempty,min=7,max=20"`
}

type HealthCheckResponse struct {
	Status  string `json:"status"`
	AppName string `json:"app_name"`
}
