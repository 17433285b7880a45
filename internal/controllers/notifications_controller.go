package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/Bramtheking/rentalsystemproj/internal/dtos"
	"github.com/Bramtheking/rentalsystemproj/internal/models"
	"github.com/Bramtheking/rentalsystemproj/internal/services"
	"github.com/Bramtheking/rentalsystemproj/internal/utils"
)

type NotificationsController struct {
	reminderService *services.ReminderService
}

func NewNotificationsController(rs *services.ReminderService) *NotificationsController {
	return &NotificationsController{reminderService: rs}
}

// ----------------------------------------------------------------
// GET /api/v1/notifications/reminders?tenant_id=...
// ----------------------------------------------------------------
func (c *NotificationsController) ListRemindersHandler(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	var reminders []*models.PaymentReminder
	var err error
	if raw := r.URL.Query().Get("tenant_id"); raw != "" {
		tenantID, parseErr := uuid.Parse(raw)
		if parseErr != nil {
			utils.RespondErrorWithCode(
				w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid tenant_id", nil, parseErr,
			)
			return
		}
		reminders, err = c.reminderService.ListByTenant(r.Context(), owner, tenantID)
	} else {
		reminders, err = c.reminderService.ListByOwner(r.Context(), owner)
	}
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to list reminders")
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, reminders)
}

// ----------------------------------------------------------------
// POST /api/v1/notifications/sms
// ----------------------------------------------------------------
// Ad-hoc text to one of the owner's tenants.
func (c *NotificationsController) SendSMSHandler(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}
	var req dtos.SendSMSRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	if err := c.reminderService.SendSMS(r.Context(), owner, req.TenantID, req.Message); err != nil {
		utils.Logger.WithError(err).Error("Failed to send sms")
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "SMS sent"})
}

// ----------------------------------------------------------------
// POST /api/v1/notifications/reminders/scan
// ----------------------------------------------------------------
// Manual trigger for the same scan the cron job runs.
func (c *NotificationsController) TriggerScanHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := ownerID(w, r); !ok {
		return
	}
	if err := c.reminderService.ScanAndNotify(r.Context()); err != nil {
		utils.Logger.WithError(err).Error("Reminder scan failed")
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Reminder scan completed"})
}
