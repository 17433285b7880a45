package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the local record exchanged for a verified identity-provider
// token. ExternalUID is the provider's subject claim.
type User struct {
	ID          uuid.UUID `json:"id"`
	ExternalUID string    `json:"external_uid"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	PhoneNumber string    `json:"phone_number"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
