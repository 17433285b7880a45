package dtos

import (
	"time"

	"github.com/google/uuid"

	"github.com/Bramtheking/rentalsystemproj/internal/models"
)

type CreateDamageReportRequest struct {
	UnitID      uuid.UUID                 `json:"unit_id" validate:"required"`
	Title       string                    `json:"title" validate:"required,min=1,max=200"`
	Description string                    `json:"description" validate:"required,min=1,max=5000"`
	Severity    models.DamageSeverityType `json:"severity" validate:"required,oneof=low medium high urgent"`

	EstimatedCost *float64 `json:"estimated_cost,omitempty" validate:"omitempty,gte=0"`
}

type UpdateDamageReportRequest struct {
	Title       string                    `json:"title" validate:"required,min=1,max=200"`
	Description string                    `json:"description" validate:"required,min=1,max=5000"`
	Severity    models.DamageSeverityType `json:"severity" validate:"required,oneof=low medium high urgent"`
	Status      models.DamageStatusType   `json:"status" validate:"required,oneof=Pending 'In Progress' Completed Cancelled"`

	EstimatedCost *float64 `json:"estimated_cost,omitempty" validate:"omitempty,gte=0"`

	RepairCompleted bool       `json:"repair_completed"`
	RepairDate      *time.Time `json:"repair_date,omitempty"`
	RepairCost      *float64   `json:"repair_cost,omitempty" validate:"omitempty,gte=0"`
	RepairNotes     string     `json:"repair_notes,omitempty" validate:"omitempty,max=5000"`
}

type RecordRepairRequest struct {
	RepairDate time.Time `json:"repair_date" validate:"required"`
	RepairCost *float64  `json:"repair_cost,omitempty" validate:"omitempty,gte=0"`
	Notes      string    `json:"notes,omitempty" validate:"omitempty,max=5000"`
}

// DamageStatsResponse mirrors the dashboard card payload.
type DamageStatsResponse struct {
	TotalReports       int     `json:"total_reports"`
	PendingReports     int     `json:"pending_reports"`
	InProgressReports  int     `json:"in_progress_reports"`
	CompletedReports   int     `json:"completed_reports"`
	CancelledReports   int     `json:"cancelled_reports"`
	RepairedReports    int     `json:"repaired_reports"`
	UnrepairedReports  int     `json:"unrepaired_reports"`
	TotalEstimatedCost float64 `json:"total_estimated_cost"`
	TotalRepairCost    float64 `json:"total_repair_cost"`
}

func (r *CreateDamageReportRequest) ToModel() *models.DamageReport {
	return &models.DamageReport{
		UnitID:        r.UnitID,
		Title:         r.Title,
		Description:   r.Description,
		Severity:      r.Severity,
		EstimatedCost: r.EstimatedCost,
	}
}

func (r *UpdateDamageReportRequest) ToModel(id uuid.UUID) *models.DamageReport {
	return &models.DamageReport{
		ID:              id,
		Title:           r.Title,
		Description:     r.Description,
		Severity:        r.Severity,
		Status:          r.Status,
		EstimatedCost:   r.EstimatedCost,
		RepairCompleted: r.RepairCompleted,
		RepairDate:      r.RepairDate,
		RepairCost:      r.RepairCost,
		RepairNotes:     r.RepairNotes,
	}
}
