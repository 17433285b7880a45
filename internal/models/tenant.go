package models

import (
	"time"

	"github.com/google/uuid"
)

// TenantStatusType defines the lifecycle state of a tenant.
type TenantStatusType string

const (
	TenantStatusActive   TenantStatusType = "Active"
	TenantStatusInactive TenantStatusType = "Inactive"
	TenantStatusMovedOut TenantStatusType = "Moved Out"
)

type GenderType string

const (
	GenderMale   GenderType = "male"
	GenderFemale GenderType = "female"
	GenderOther  GenderType = "other"
)

// Tenant is a person record that may reference at most one unit as
// current residence. A unit is owned exclusively by one tenant at a
// time; the occupancy synchronizer enforces this on every write.
type Tenant struct {
	Versioned
	ID      uuid.UUID `json:"id"`
	OwnerID uuid.UUID `json:"owner_id"`

	// Generated display identifier, format TNT-<year>-<seq>.
	TenantID string `json:"tenant_id"`

	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	NationalID  string     `json:"national_id"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Gender      GenderType `json:"gender,omitempty"`

	PermanentAddress             string `json:"permanent_address"`
	EmergencyContactName         string `json:"emergency_contact_name"`
	EmergencyContactPhone        string `json:"emergency_contact_phone"`
	EmergencyContactRelationship string `json:"emergency_contact_relationship"`

	Occupation    string   `json:"occupation"`
	EmployerName  string   `json:"employer_name"`
	EmployerPhone string   `json:"employer_phone"`
	MonthlyIncome *float64 `json:"monthly_income,omitempty"`

	CurrentUnitID *uuid.UUID       `json:"current_unit_id,omitempty"`
	Status        TenantStatusType `json:"status"`

	MoveInDate     *time.Time `json:"move_in_date,omitempty"`
	MoveOutDate    *time.Time `json:"move_out_date,omitempty"`
	LeaseStartDate *time.Time `json:"lease_start_date,omitempty"`
	LeaseEndDate   *time.Time `json:"lease_end_date,omitempty"`

	SecurityDeposit float64 `json:"security_deposit"`
	MonthlyRent     float64 `json:"monthly_rent"`

	Notes string `json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *Tenant) GetID() string {
	return t.ID.String()
}

func (t *Tenant) FullName() string {
	if t.FirstName == "" {
		return t.LastName
	}
	if t.LastName == "" {
		return t.FirstName
	}
	return t.FirstName + " " + t.LastName
}
