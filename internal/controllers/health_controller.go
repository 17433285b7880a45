package controllers

import (
	"context"
	"net/http"

	"github.com/Bramtheking/rentalsystemproj/internal/app"
	"github.com/Bramtheking/rentalsystemproj/internal/dtos"
	"github.com/Bramtheking/rentalsystemproj/internal/utils"
)

// HealthController checks DB connectivity.
type HealthController struct {
	app *app.App
}

func NewHealthController(app *app.App) *HealthController {
	return &HealthController{app}
}

// HealthCheckHandler => GET /health
func (c *HealthController) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	if err := c.app.DB.Ping(context.Background()); err != nil {
		utils.Logger.WithError(err).Error("DB unreachable")
		utils.RespondErrorWithCode(w, http.StatusServiceUnavailable, utils.ErrCodeInternal, "Database unreachable", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.HealthCheckResponse{
		Status:  "OK",
		AppName: c.app.Config.AppName,
	})
}
