package controllers

import (
	"net/http"

	"github.com/Bramtheking/rentalsystemproj/internal/dtos"
	"github.com/Bramtheking/rentalsystemproj/internal/models"
	"github.com/Bramtheking/rentalsystemproj/internal/services"
	"github.com/Bramtheking/rentalsystemproj/internal/utils"
)

type UnitsController struct {
	unitService *services.UnitService
}

func NewUnitsController(us *services.UnitService) *UnitsController {
	return &UnitsController{unitService: us}
}

// ----------------------------------------------------------------
// POST /api/v1/units
// ----------------------------------------------------------------
func (c *UnitsController) CreateUnitHandler(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	var req dtos.CreateUnitRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	unit, err := c.unitService.Create(r.Context(), owner, req.ToModel())
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to create unit")
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, unit)
}

// ----------------------------------------------------------------
// GET /api/v1/units
// ----------------------------------------------------------------
func (c *UnitsController) ListUnitsHandler(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	units, err := c.unitService.List(r.Context(), owner)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to list units")
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, units)
}

// ----------------------------------------------------------------
// GET /api/v1/units/search?q=...&status=...
// ----------------------------------------------------------------
func (c *UnitsController) SearchUnitsHandler(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	query := r.URL.Query().Get("q")
	status := models.UnitStatusType(r.URL.Query().Get("status"))

	units, err := c.unitService.Search(r.Context(), owner, query, status)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to search units")
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, units)
}

// ----------------------------------------------------------------
// GET /api/v1/units/stats
// ----------------------------------------------------------------
func (c *UnitsController) UnitStatsHandler(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	stats, err := c.unitService.Stats(r.Context(), owner)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to compute unit stats")
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.UnitStatsResponse{
		TotalUnits:       stats.Total,
		OccupiedUnits:    stats.Occupied,
		VacantUnits:      stats.Vacant,
		MaintenanceUnits: stats.Maintenance,
		OccupancyRate:    stats.Occupancy,
	})
}

// ----------------------------------------------------------------
// GET /api/v1/units/{id}
// ----------------------------------------------------------------
func (c *UnitsController) GetUnitHandler(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	unit, err := c.unitService.GetByID(r.Context(), owner, id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, unit)
}

// ----------------------------------------------------------------
// PUT /api/v1/units/{id}
// ----------------------------------------------------------------
func (c *UnitsController) UpdateUnitHandler(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req dtos.UpdateUnitRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	unit, err := c.unitService.Update(r.Context(), owner, req.ToModel(id))
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to update unit")
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, unit)
}

// ----------------------------------------------------------------
// DELETE /api/v1/units/{id}
// ----------------------------------------------------------------
func (c *UnitsController) DeleteUnitHandler(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := c.unitService.Delete(r.Context(), owner, id); err != nil {
		utils.Logger.WithError(err).Error("Failed to delete unit")
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Unit deleted"})
}
