package controllers

import (
	"net/http"

	"github.com/Bramtheking/rentalsystemproj/internal/dtos"
	"github.com/Bramtheking/rentalsystemproj/internal/models"
	"github.com/Bramtheking/rentalsystemproj/internal/services"
	"github.com/Bramtheking/rentalsystemproj/internal/utils"
)

type DamageReportsController struct {
	damageService *services.DamageService
}

func NewDamageReportsController(ds *services.DamageService) *DamageReportsController {
	return &DamageReportsController{damageService: ds}
}

// ----------------------------------------------------------------
// POST /api/v1/damage-reports
// ----------------------------------------------------------------
func (c *DamageReportsController) CreateDamageReportHandler(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	var req dtos.CreateDamageReportRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	report, err := c.damageService.Create(r.Context(), owner, req.ToModel())
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to create damage report")
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, report)
}

// ----------------------------------------------------------------
// GET /api/v1/damage-reports
// ----------------------------------------------------------------
func (c *DamageReportsController) ListDamageReportsHandler(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	reports, err := c.damageService.List(r.Context(), owner)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to list damage reports")
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, reports)
}

// ----------------------------------------------------------------
// GET /api/v1/damage-reports/search?q=...&status=...
// ----------------------------------------------------------------
func (c *DamageReportsController) SearchDamageReportsHandler(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	query := r.URL.Query().Get("q")
	status := models.DamageStatusType(r.URL.Query().Get("status"))

	reports, err := c.damageService.Search(r.Context(), owner, query, status)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to search damage reports")
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, reports)
}

// ----------------------------------------------------------------
// GET /api/v1/damage-reports/stats
// ----------------------------------------------------------------
func (c *DamageReportsController) DamageStatsHandler(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	stats, err := c.damageService.Stats(r.Context(), owner)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to compute damage stats")
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.DamageStatsResponse{
		TotalReports:       stats.Total,
		PendingReports:     stats.Pending,
		InProgressReports:  stats.InProgress,
		CompletedReports:   stats.Completed,
		CancelledReports:   stats.Cancelled,
		RepairedReports:    stats.Repaired,
		UnrepairedReports:  stats.Unrepaired,
		TotalEstimatedCost: stats.TotalEstimatedCost,
		TotalRepairCost:    stats.TotalRepairCost,
	})
}

// ----------------------------------------------------------------
// GET /api/v1/damage-reports/{id}
// ----------------------------------------------------------------
func (c *DamageReportsController) GetDamageReportHandler(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	report, err := c.damageService.GetByID(r.Context(), owner, id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, report)
}

// ----------------------------------------------------------------
// PUT /api/v1/damage-reports/{id}
// ----------------------------------------------------------------
func (c *DamageReportsController) UpdateDamageReportHandler(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req dtos.UpdateDamageReportRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	report, err := c.damageService.Update(r.Context(), owner, req.ToModel(id))
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to update damage report")
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, report)
}

// ----------------------------------------------------------------
// POST /api/v1/damage-reports/{id}/repair
// ----------------------------------------------------------------
func (c *DamageReportsController) RecordRepairHandler(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req dtos.RecordRepairRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	report, err := c.damageService.RecordRepair(r.Context(), owner, id, req.RepairDate, req.RepairCost, req.Notes)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to record repair")
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, report)
}

// ----------------------------------------------------------------
// DELETE /api/v1/damage-reports/{id}
// ----------------------------------------------------------------
func (c *DamageReportsController) DeleteDamageReportHandler(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := c.damageService.Delete(r.Context(), owner, id); err != nil {
		utils.Logger.WithError(err).Error("Failed to delete damage report")
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Damage report deleted"})
}
