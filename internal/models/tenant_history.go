package models

import (
	"time"

	"github.com/google/uuid"
)

// TenantHistory is one row of the append-only occupancy ledger. A row
// is created on every move-in; the synchronizer never mutates existing
// rows. Move-out stamps MoveOutDate via the explicit move-out action.
type TenantHistory struct {
	ID       uuid.UUID `json:"id"`
	OwnerID  uuid.UUID `json:"owner_id"`
	TenantID uuid.UUID `json:"tenant_id"`
	UnitID   uuid.UUID `json:"unit_id"`

	MoveInDate  time.Time  `json:"move_in_date"`
	MoveOutDate *time.Time `json:"move_out_date,omitempty"`

	MonthlyRent     float64  `json:"monthly_rent"`
	SecurityDeposit *float64 `json:"security_deposit,omitempty"`
	MoveOutReason   string   `json:"move_out_reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
