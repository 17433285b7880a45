package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/Bramtheking/rentalsystemproj/internal/dtos"
	"github.com/Bramtheking/rentalsystemproj/internal/models"
	"github.com/Bramtheking/rentalsystemproj/internal/services"
	"github.com/Bramtheking/rentalsystemproj/internal/utils"
)

type PaymentsController struct {
	paymentService *services.PaymentService
}

func NewPaymentsController(ps *services.PaymentService) *PaymentsController {
	return &PaymentsController{paymentService: ps}
}

// ----------------------------------------------------------------
// POST /api/v1/payments
// ----------------------------------------------------------------
func (c *PaymentsController) CreatePaymentHandler(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	var req dtos.CreatePaymentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	payment, err := c.paymentService.Create(r.Context(), owner, req.ToModel())
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to create payment")
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, payment)
}

// ----------------------------------------------------------------
// GET /api/v1/payments
// ----------------------------------------------------------------
func (c *PaymentsController) ListPaymentsHandler(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	payments, err := c.paymentService.List(r.Context(), owner)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to list payments")
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, payments)
}

// ----------------------------------------------------------------
// GET /api/v1/payments/search?q=...&status=...&overdue=true
// ----------------------------------------------------------------
func (c *PaymentsController) SearchPaymentsHandler(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	query := r.URL.Query().Get("q")
	status := models.PaymentStatusType(r.URL.Query().Get("status"))
	overdueOnly := r.URL.Query().Get("overdue") == "true"

	payments, err := c.paymentService.Search(r.Context(), owner, query, status, overdueOnly)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to search payments")
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, payments)
}

// ----------------------------------------------------------------
// GET /api/v1/payments/overdue
// ----------------------------------------------------------------
func (c *PaymentsController) OverduePaymentsHandler(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	payments, err := c.paymentService.ListOverdue(r.Context(), owner)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to list overdue payments")
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, payments)
}

// ----------------------------------------------------------------
// GET /api/v1/payments/stats
// ----------------------------------------------------------------
func (c *PaymentsController) PaymentStatsHandler(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	stats, err := c.paymentService.Stats(r.Context(), owner)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to compute payment stats")
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.PaymentStatsResponse{
		TotalPayments:     stats.Total,
		CompletedPayments: stats.Completed,
		PendingPayments:   stats.Pending,
		FailedPayments:    stats.Failed,
		OverduePayments:   stats.Overdue,
		TotalAmount:       stats.TotalAmount,
		PendingAmount:     stats.PendingAmount,
		OverdueAmount:     stats.OverdueAmount,
	})
}

// ----------------------------------------------------------------
// GET /api/v1/payments/stats/monthly?months=12
// ----------------------------------------------------------------
func (c *PaymentsController) MonthlyStatsHandler(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	months, _ := strconv.Atoi(r.URL.Query().Get("months"))

	stats, err := c.paymentService.MonthlyStats(r.Context(), owner, months)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to compute monthly payment stats")
		utils.HandleAppError(w, err)
		return
	}
	resp := make([]dtos.MonthlyPaymentStatResponse, 0, len(stats))
	for _, m := range stats {
		resp = append(resp, dtos.MonthlyPaymentStatResponse{
			Year:   m.Year,
			Month:  int(m.Month),
			Amount: m.Amount,
			Count:  m.Count,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// ----------------------------------------------------------------
// GET /api/v1/payments/tenant-units?tenant_id=...
// ----------------------------------------------------------------
// Units the given tenant can be billed against, for the payment form.
func (c *PaymentsController) TenantUnitsHandler(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	tenantID, err := uuid.Parse(r.URL.Query().Get("tenant_id"))
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid tenant_id", nil, err,
		)
		return
	}
	units, err := c.paymentService.TenantUnits(r.Context(), owner, tenantID)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to resolve tenant units")
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, units)
}

// ----------------------------------------------------------------
// GET /api/v1/payments/{id}
// ----------------------------------------------------------------
func (c *PaymentsController) GetPaymentHandler(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	payment, err := c.paymentService.GetByID(r.Context(), owner, id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, payment)
}

// ----------------------------------------------------------------
// PUT /api/v1/payments/{id}
// ----------------------------------------------------------------
func (c *PaymentsController) UpdatePaymentHandler(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req dtos.UpdatePaymentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	payment, err := c.paymentService.Update(r.Context(), owner, req.ToModel(id))
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to update payment")
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, payment)
}

// ----------------------------------------------------------------
// POST /api/v1/payments/{id}/complete
// ----------------------------------------------------------------
func (c *PaymentsController) CompletePaymentHandler(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req dtos.CompletePaymentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	paidAt := time.Now().UTC()
	if req.PaymentDate != nil {
		paidAt = *req.PaymentDate
	}

	payment, err := c.paymentService.MarkCompleted(r.Context(), owner, id, paidAt)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to complete payment")
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, payment)
}

// ----------------------------------------------------------------
// DELETE /api/v1/payments/{id}
// ----------------------------------------------------------------
func (c *PaymentsController) DeletePaymentHandler(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := c.paymentService.Delete(r.Context(), owner, id); err != nil {
		utils.Logger.WithError(err).Error("Failed to delete payment")
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Payment deleted"})
}
