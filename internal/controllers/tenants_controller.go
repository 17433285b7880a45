package controllers

import (
	"net/http"

	"github.com/Bramtheking/rentalsystemproj/internal/dtos"
	"github.com/Bramtheking/rentalsystemproj/internal/models"
	"github.com/Bramtheking/rentalsystemproj/internal/services"
	"github.com/Bramtheking/rentalsystemproj/internal/utils"
)

type TenantsController struct {
	tenantService *services.TenantService
}

func NewTenantsController(ts *services.TenantService) *TenantsController {
	return &TenantsController{tenantService: ts}
}

// ----------------------------------------------------------------
// POST /api/v1/tenants
// ----------------------------------------------------------------
func (c *TenantsController) CreateTenantHandler(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	var req dtos.CreateTenantRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	tenant, err := c.tenantService.Create(r.Context(), owner, req.ToModel())
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to create tenant")
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, tenant)
}

// ----------------------------------------------------------------
// GET /api/v1/tenants
// ----------------------------------------------------------------
func (c *TenantsController) ListTenantsHandler(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	tenants, err := c.tenantService.List(r.Context(), owner)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to list tenants")
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, tenants)
}

// ----------------------------------------------------------------
// GET /api/v1/tenants/search?q=...&status=...
// ----------------------------------------------------------------
func (c *TenantsController) SearchTenantsHandler(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	query := r.URL.Query().Get("q")
	status := models.TenantStatusType(r.URL.Query().Get("status"))

	tenants, err := c.tenantService.Search(r.Context(), owner, query, status)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to search tenants")
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, tenants)
}

// ----------------------------------------------------------------
// GET /api/v1/tenants/stats
// ----------------------------------------------------------------
func (c *TenantsController) TenantStatsHandler(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	stats, err := c.tenantService.Stats(r.Context(), owner)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to compute tenant stats")
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.TenantStatsResponse{
		TotalTenants:    stats.Total,
		ActiveTenants:   stats.Active,
		InactiveTenants: stats.Inactive,
		MovedOutTenants: stats.MovedOut,
	})
}

// ----------------------------------------------------------------
// GET /api/v1/tenants/available-units
// ----------------------------------------------------------------
func (c *TenantsController) AvailableUnitsHandler(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	units, err := c.tenantService.AvailableUnits(r.Context(), owner)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to list available units")
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, units)
}

// ----------------------------------------------------------------
// GET /api/v1/tenants/{id}
// ----------------------------------------------------------------
func (c *TenantsController) GetTenantHandler(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	tenant, err := c.tenantService.GetByID(r.Context(), owner, id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, tenant)
}

// ----------------------------------------------------------------
// GET /api/v1/tenants/{id}/history
// ----------------------------------------------------------------
func (c *TenantsController) TenantHistoryHandler(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	history, err := c.tenantService.History(r.Context(), owner, id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, history)
}

// ----------------------------------------------------------------
// PUT /api/v1/tenants/{id}
// ----------------------------------------------------------------
func (c *TenantsController) UpdateTenantHandler(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req dtos.UpdateTenantRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	tenant, err := c.tenantService.Update(r.Context(), owner, req.ToModel(id))
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to update tenant")
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, tenant)
}

// ----------------------------------------------------------------
// POST /api/v1/tenants/{id}/move-in
// ----------------------------------------------------------------
func (c *TenantsController) MoveInHandler(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req dtos.MoveInRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	tenant, err := c.tenantService.MoveIn(r.Context(), owner, id, req.UnitID, req.MoveInDate)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to move tenant in")
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, tenant)
}

// ----------------------------------------------------------------
// POST /api/v1/tenants/{id}/move-out
// ----------------------------------------------------------------
func (c *TenantsController) MoveOutHandler(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req dtos.MoveOutRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	tenant, err := c.tenantService.MoveOut(r.Context(), owner, id, req.MoveOutDate, req.Reason)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to move tenant out")
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, tenant)
}

// ----------------------------------------------------------------
// DELETE /api/v1/tenants/{id}
// ----------------------------------------------------------------
func (c *TenantsController) DeleteTenantHandler(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := c.tenantService.Delete(r.Context(), owner, id); err != nil {
		utils.Logger.WithError(err).Error("Failed to delete tenant")
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Tenant deleted"})
}
