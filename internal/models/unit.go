package models

import (
	"time"

	"github.com/google/uuid"
)

// UnitType enumerates the leasable unit layouts.
type UnitType string

const (
	UnitTypeStudio UnitType = "studio"
	UnitType1BR    UnitType = "1BR"
	UnitType2BR    UnitType = "2BR"
	UnitType3BR    UnitType = "3BR"
	UnitType4BR    UnitType = "4BR"
)

// UnitStatusType defines the occupancy state of a unit.
type UnitStatusType string

const (
	UnitStatusVacant           UnitStatusType = "Vacant"
	UnitStatusOccupied         UnitStatusType = "Occupied"
	UnitStatusUnderMaintenance UnitStatusType = "Under Maintenance"
)

// Unit is a leasable property record. Status and the denormalized
// tenant_* contact fields are written only by the occupancy
// synchronizer; a unit is Occupied iff exactly one tenant has
// current_unit pointing at it.
type Unit struct {
	Versioned
	ID      uuid.UUID `json:"id"`
	OwnerID uuid.UUID `json:"owner_id"`

	// Owner-scoped display identifier, e.g. "A-101".
	UnitID   string         `json:"unit_id"`
	Name     string         `json:"name"`
	UnitType UnitType       `json:"unit_type"`
	Status   UnitStatusType `json:"status"`

	Rent    float64  `json:"rent"`
	Deposit *float64 `json:"deposit,omitempty"`

	Location string `json:"location"`
	Features string `json:"features"`
	Notes    string `json:"notes"`

	// Occupant contact, populated only while Occupied.
	TenantName  string `json:"tenant_name"`
	TenantPhone string `json:"tenant_phone"`
	TenantEmail string `json:"tenant_email"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *Unit) GetID() string {
	return u.ID.String()
}
