package dtos

import (
	"github.com/google/uuid"

	"github.com/Bramtheking/rentalsystemproj/internal/models"
)

type CreateUnitRequest struct {
	UnitID   string                 `json:"unit_id" validate:"required,min=1,max=50"`
	Name     string                 `json:"name" validate:"required,min=1,max=200"`
	UnitType models.UnitType        `json:"unit_type" validate:"required,oneof=studio 1BR 2BR 3BR 4BR"`
	Status   *models.UnitStatusType `json:"status,omitempty" validate:"omitempty,oneof=Vacant 'Under Maintenance'"`
	Rent     float64                `json:"rent" validate:"required,gt=0"`
	Deposit  *float64               `json:"deposit,omitempty" validate:"omitempty,gte=0"`
	Location string                 `json:"location,omitempty" validate:"omitempty,max=500"`
	Features string                 `json:"features,omitempty" validate:"omitempty,max=2000"`
	Notes    string                 `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

type UpdateUnitRequest struct {
	Name     string                 `json:"name" validate:"required,min=1,max=200"`
	UnitType models.UnitType        `json:"unit_type" validate:"required,oneof=studio 1BR 2BR 3BR 4BR"`
	Status   *models.UnitStatusType `json:"status,omitempty" validate:"omitempty,oneof=Vacant 'Under Maintenance'"`
	Rent     float64                `json:"rent" validate:"required,gt=0"`
	Deposit  *float64               `json:"deposit,omitempty" validate:"omitempty,gte=0"`
	Location string                 `json:"location,omitempty" validate:"omitempty,max=500"`
	Features string                 `json:"features,omitempty" validate:"omitempty,max=2000"`
	Notes    string                 `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// UnitStatsResponse mirrors the dashboard card payload.
type UnitStatsResponse struct {
	TotalUnits       int     `json:"total_units"`
	OccupiedUnits    int     `json:"occupied_units"`
	VacantUnits      int     `json:"vacant_units"`
	MaintenanceUnits int     `json:"maintenance_units"`
	OccupancyRate    float64 `json:"occupancy_rate"`
}

func (r *CreateUnitRequest) ToModel() *models.Unit {
	u := &models.Unit{
		UnitID:   r.UnitID,
		Name:     r.Name,
		UnitType: r.UnitType,
		Rent:     r.Rent,
		Deposit:  r.Deposit,
		Location: r.Location,
		Features: r.Features,
		Notes:    r.Notes,
	}
	if r.Status != nil {
		u.Status = *r.Status
	}
	return u
}

func (r *UpdateUnitRequest) ToModel(id uuid.UUID) *models.Unit {
	u := &models.Unit{
		ID:       id,
		Name:     r.Name,
		UnitType: r.UnitType,
		Rent:     r.Rent,
		Deposit:  r.Deposit,
		Location: r.Location,
		Features: r.Features,
		Notes:    r.Notes,
	}
	if r.Status != nil {
		u.Status = *r.Status
	}
	return u
}
