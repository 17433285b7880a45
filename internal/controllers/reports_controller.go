package controllers

import (
	"net/http"
	"time"

	"github.com/Bramtheking/rentalsystemproj/internal/services"
	"github.com/Bramtheking/rentalsystemproj/internal/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportsController struct {
	reportService *services.ReportService
}

func NewReportsController(rs *services.ReportService) *ReportsController {
	return &ReportsController{reportService: rs}
}

// ----------------------------------------------------------------
// GET /api/v1/reports/payments
// ----------------------------------------------------------------
func (c *ReportsController) PaymentsReportHandler(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	data, err := c.reportService.PaymentsReport(r.Context(), owner)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to build payments report")
		utils.HandleAppError(w, err)
		return
	}
	writeWorkbook(w, services.ReportFilename("payments", time.Now().UTC()), data)
}

// ----------------------------------------------------------------
// GET /api/v1/reports/occupancy
// ----------------------------------------------------------------
func (c *ReportsController) OccupancyReportHandler(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	data, err := c.reportService.OccupancyReport(r.Context(), owner)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to build occupancy report")
		utils.HandleAppError(w, err)
		return
	}
	writeWorkbook(w, services.ReportFilename("occupancy", time.Now().UTC()), data)
}

func writeWorkbook(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		utils.Logger.WithError(err).Error("Failed to write report response")
	}
}
