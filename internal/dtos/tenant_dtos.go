package dtos

import (
	"time"

	"github.com/google/uuid"

	"github.com/Bramtheking/rentalsystemproj/internal/models"
)

type CreateTenantRequest struct {
	FirstName   string            `json:"first_name" validate:"required,min=1,max=100"`
	LastName    string            `json:"last_name" validate:"required,min=1,max=100"`
	Email       string            `json:"email,omitempty" validate:"omitempty,email"`
	Phone       string            `json:"phone" validate:"required,min=7,max=20"`
	NationalID  string            `json:"national_id,omitempty" validate:"omitempty,max=50"`
	DateOfBirth *time.Time        `json:"date_of_birth,omitempty"`
	Gender      models.GenderType `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`

	PermanentAddress             string `json:"permanent_address,omitempty" validate:"omitempty,max=500"`
	EmergencyContactName         string `json:"emergency_contact_name,omitempty" validate:"omitempty,max=200"`
	EmergencyContactPhone        string `json:"emergency_contact_phone,omitempty" validate:"omitempty,max=20"`
	EmergencyContactRelationship string `json:"emergency_contact_relationship,omitempty" validate:"omitempty,max=100"`

	Occupation    string   `json:"occupation,omitempty" validate:"omitempty,max=200"`
	EmployerName  string   `json:"employer_name,omitempty" validate:"omitempty,max=200"`
	EmployerPhone string   `json:"employer_phone,omitempty" validate:"omitempty,max=20"`
	MonthlyIncome *float64 `json:"monthly_income,omitempty" validate:"omitempty,gte=0"`

	CurrentUnitID *uuid.UUID `json:"current_unit_id,omitempty"`

	MoveInDate     *time.Time `json:"move_in_date,omitempty"`
	LeaseStartDate *time.Time `json:"lease_start_date,omitempty"`
	LeaseEndDate   *time.Time `json:"lease_end_date,omitempty" validate:"omitempty,gtfield=LeaseStartDate"`

	SecurityDeposit float64 `json:"security_deposit,omitempty" validate:"omitempty,gte=0"`
	MonthlyRent     float64 `json:"monthly_rent,omitempty" validate:"omitempty,gte=0"`

	Notes string `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

type UpdateTenantRequest struct {
	FirstName   string            `json:"first_name" validate:"required,min=1,max=100"`
	LastName    string            `json:"last_name" validate:"required,min=1,max=100"`
	Email       string            `json:"email,omitempty" validate:"omitempty,email"`
	Phone       string            `json:"phone" validate:"required,min=7,max=20"`
	NationalID  string            `json:"national_id,omitempty" validate:"omitempty,max=50"`
	DateOfBirth *time.Time        `json:"date_of_birth,omitempty"`
	Gender      models.GenderType `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`

	PermanentAddress             string `json:"permanent_address,omitempty" validate:"omitempty,max=500"`
	EmergencyContactName         string `json:"emergency_contact_name,omitempty" validate:"omitempty,max=200"`
	EmergencyContactPhone        string `json:"emergency_contact_phone,omitempty" validate:"omitempty,max=20"`
	EmergencyContactRelationship string `json:"emergency_contact_relationship,omitempty" validate:"omitempty,max=100"`

	Occupation    string   `json:"occupation,omitempty" validate:"omitempty,max=200"`
	EmployerName  string   `json:"employer_name,omitempty" validate:"omitempty,max=200"`
	EmployerPhone string   `json:"employer_phone,omitempty" validate:"omitempty,max=20"`
	MonthlyIncome *float64 `json:"monthly_income,omitempty" validate:"omitempty,gte=0"`

	CurrentUnitID *uuid.UUID              `json:"current_unit_id,omitempty"`
	Status        models.TenantStatusType `json:"status,omitempty" validate:"omitempty,oneof=Active Inactive 'Moved Out'"`

	MoveInDate     *time.Time `json:"move_in_date,omitempty"`
	MoveOutDate    *time.Time `json:"move_out_date,omitempty"`
	LeaseStartDate *time.Time `json:"lease_start_date,omitempty"`
	LeaseEndDate   *time.Time `json:"lease_end_date,omitempty"`

	SecurityDeposit float64 `json:"security_deposit,omitempty" validate:"omitempty,gte=0"`
	MonthlyRent     float64 `json:"monthly_rent,omitempty" validate:"omitempty,gte=0"`

	Notes string `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

type MoveInRequest struct {
	UnitID     uuid.UUID `json:"unit_id" validate:"required"`
	MoveInDate time.Time `json:"move_in_date" validate:"required"`
}

type MoveOutRequest struct {
	MoveOutDate time.Time `json:"move_out_date" validate:"required"`
	Reason      string    `json:"reason,omitempty" validate:"omitempty,max=500"`
}

// TenantStatsResponse mirrors the dashboard card payload.
type TenantStatsResponse struct {
	TotalTenants    int `json:"total_tenants"`
	ActiveTenants   int `json:"active_tenants"`
	InactiveTenants int `json:"inactive_tenants"`
	MovedOutTenants int `json:"moved_out_tenants"`
}

func (r *CreateTenantRequest) ToModel() *models.Tenant {
	return &models.Tenant{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		Phone:       r.Phone,
		NationalID:  r.NationalID,
		DateOfBirth: r.DateOfBirth,
		Gender:      r.Gender,

		PermanentAddress:             r.PermanentAddress,
		EmergencyContactName:         r.EmergencyContactName,
		EmergencyContactPhone:        r.EmergencyContactPhone,
		EmergencyContactRelationship: r.EmergencyContactRelationship,

		Occupation:    r.Occupation,
		EmployerName:  r.EmployerName,
		EmployerPhone: r.EmployerPhone,
		MonthlyIncome: r.MonthlyIncome,

		CurrentUnitID: r.CurrentUnitID,

		MoveInDate:     r.MoveInDate,
		LeaseStartDate: r.LeaseStartDate,
		LeaseEndDate:   r.LeaseEndDate,

		SecurityDeposit: r.SecurityDeposit,
		MonthlyRent:     r.MonthlyRent,

		Notes: r.Notes,
	}
}

func (r *UpdateTenantRequest) ToModel(id uuid.UUID) *models.Tenant {
	return &models.Tenant{
		ID:          id,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		Phone:       r.Phone,
		NationalID:  r.NationalID,
		DateOfBirth: r.DateOfBirth,
		Gender:      r.Gender,

		PermanentAddress:             r.PermanentAddress,
		EmergencyContactName:         r.EmergencyContactName,
		EmergencyContactPhone:        r.EmergencyContactPhone,
		EmergencyContactRelationship: r.EmergencyContactRelationship,

		Occupation:    r.Occupation,
		EmployerName:  r.EmployerName,
		EmployerPhone: r.EmployerPhone,
		MonthlyIncome: r.MonthlyIncome,

		CurrentUnitID: r.CurrentUnitID,
		Status:        r.Status,

		MoveInDate:     r.MoveInDate,
		MoveOutDate:    r.MoveOutDate,
		LeaseStartDate: r.LeaseStartDate,
		LeaseEndDate:   r.LeaseEndDate,

		SecurityDeposit: r.SecurityDeposit,
		MonthlyRent:     r.MonthlyRent,

		Notes: r.Notes,
	}
}
