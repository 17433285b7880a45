package models

import (
	"time"

	"github.com/google/uuid"
)

type DamageSeverityType string

const (
	DamageSeverityLow    DamageSeverityType = "low"
	DamageSeverityMedium DamageSeverityType = "medium"
	DamageSeverityHigh   DamageSeverityType = "high"
	DamageSeverityUrgent DamageSeverityType = "urgent"
)

type DamageStatusType string

const (
	DamageStatusPending    DamageStatusType = "Pending"
	DamageStatusInProgress DamageStatusType = "In Progress"
	DamageStatusCompleted  DamageStatusType = "Completed"
	DamageStatusCancelled  DamageStatusType = "Cancelled"
)

// DamageReport tracks reported damage on a unit through to repair.
type DamageReport struct {
	Versioned
	ID      uuid.UUID `json:"id"`
	OwnerID uuid.UUID `json:"owner_id"`
	UnitID  uuid.UUID `json:"unit_id"`

	Title       string             `json:"title"`
	Description string             `json:"description"`
	Severity    DamageSeverityType `json:"severity"`
	Status      DamageStatusType   `json:"status"`

	EstimatedCost *float64 `json:"estimated_cost,omitempty"`

	RepairCompleted bool       `json:"repair_completed"`
	RepairDate      *time.Time `json:"repair_date,omitempty"`
	RepairCost      *float64   `json:"repair_cost,omitempty"`
	RepairNotes     string     `json:"repair_notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (d *DamageReport) GetID() string {
	return d.ID.String()
}
