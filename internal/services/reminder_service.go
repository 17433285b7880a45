package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/sirupsen/logrus"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/Bramtheking/rentalsystemproj/internal/config"
	"github.com/Bramtheking/rentalsystemproj/internal/models"
	"github.com/Bramtheking/rentalsystemproj/internal/repositories"
	"github.com/Bramtheking/rentalsystemproj/internal/utils"
)

// A payment this long past due escalates to a final notice.
const finalNoticeAfter = 14 * 24 * time.Hour

// Pending payments due within this window get a courtesy notice
// before they turn overdue.
const dueSoonWindow = 3 * 24 * time.Hour

// ReminderService scans for overdue payments and notifies tenants by
// SMS and email. The scan is idempotent per (payment, reminder type),
// so running it twice never double-notifies.
type ReminderService struct {
	paymentRepo  repositories.PaymentRepository
	reminderRepo repositories.PaymentReminderRepository
	tenantRepo   repositories.TenantRepository

	cfg            *config.Config
	sendgridClient *sendgrid.Client
	twilioClient   *twilio.RestClient
}

func NewReminderService(
	paymentRepo repositories.PaymentRepository,
	reminderRepo repositories.PaymentReminderRepository,
	tenantRepo repositories.TenantRepository,
	cfg *config.Config,
) *ReminderService {
	sgClient := sendgrid.NewSendClient(cfg.SendGridAPIKey)
	twClient := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.TwilioAccountSID,
		Password: cfg.TwilioAuthToken,
	})
	return &ReminderService{
		paymentRepo:    paymentRepo,
		reminderRepo:   reminderRepo,
		tenantRepo:     tenantRepo,
		cfg:            cfg,
		sendgridClient: sgClient,
		twilioClient:   twClient,
	}
}

// ScanAndNotify walks every pending payment that is past due or due
// within the courtesy window and sends the reminder the escalation
// ladder calls for. Notification failures are logged and skipped; one
// unreachable tenant must not stall the scan.
func (s *ReminderService) ScanAndNotify(ctx context.Context) error {
	now := time.Now().UTC()
	pending, err := s.paymentRepo.ListPendingDueBefore(ctx, now.Add(dueSoonWindow))
	if err != nil {
		return err
	}

	var sent int
	for _, p := range pending {
		if p.TenantID == nil {
			continue
		}
		reminderType := reminderTypeFor(p, now)

		exists, err := s.reminderRepo.ExistsForPaymentAndType(ctx, p.ID, reminderType)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		tenant, err := s.tenantRepo.GetByID(ctx, *p.TenantID)
		if err != nil {
			return err
		}
		if tenant == nil {
			continue
		}

		if err := s.notify(ctx, p, tenant, reminderType); err != nil {
			utils.Logger.WithFields(logrus.Fields{
				"payment_id": p.PaymentID,
				"tenant_id":  tenant.TenantID,
			}).WithError(err).Error("Failed to send payment reminder")
			continue
		}
		sent++
	}

	utils.Logger.WithFields(logrus.Fields{
		"scanned": len(pending),
		"sent":    sent,
	}).Info("payment reminder scan finished")
	return nil
}

// ListByOwner returns the reminders recorded for an owner's tenants.
func (s *ReminderService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.PaymentReminder, error) {
	return s.reminderRepo.ListByOwnerID(ctx, ownerID)
}

// ListByTenant returns the reminders sent to one of the owner's
// tenants.
func (s *ReminderService) ListByTenant(ctx context.Context, ownerID, tenantID uuid.UUID) ([]*models.PaymentReminder, error) {
	tenant, err := s.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil || tenant.OwnerID != ownerID {
		return nil, wrapDomainError(utils.ErrNotFound)
	}
	return s.reminderRepo.ListByTenantID(ctx, tenantID)
}

// SendSMS sends an ad-hoc text to one of the owner's tenants, outside
// the reminder ladder. No reminder row is recorded: those are scoped
// to payments.
func (s *ReminderService) SendSMS(ctx context.Context, ownerID, tenantID uuid.UUID, message string) error {
	tenant, err := s.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return err
	}
	if tenant == nil || tenant.OwnerID != ownerID {
		return wrapDomainError(utils.ErrNotFound)
	}
	if tenant.Phone == "" {
		return &utils.AppError{
			StatusCode: http.StatusBadRequest,
			Code:       utils.ErrCodeInvalidPayload,
			Message:    "The tenant has no phone number on file",
		}
	}
	if err := s.sendSMS(tenant.Phone, message); err != nil {
		return wrapDomainError(err)
	}
	utils.Logger.WithField("tenant_id", tenant.TenantID).Info("ad-hoc sms sent")
	return nil
}

func (s *ReminderService) notify(ctx context.Context, p *models.Payment, tenant *models.Tenant, reminderType models.ReminderType) error {
	message := reminderMessage(p, tenant, reminderType)

	if tenant.Phone != "" {
		if err := s.sendSMS(tenant.Phone, message); err != nil {
			return err
		}
	}
	if tenant.Email != "" {
		if err := s.sendEmail(tenant.Email, tenant.FullName(), p, message); err != nil {
			return err
		}
	}

	return s.reminderRepo.Create(ctx, &models.PaymentReminder{
		ID:           uuid.New(),
		OwnerID:      p.OwnerID,
		TenantID:     tenant.ID,
		PaymentID:    &p.ID,
		ReminderType: reminderType,
		Message:      message,
		SentDate:     time.Now().UTC(),
	})
}

func (s *ReminderService) sendSMS(phone, body string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(phone)
	params.SetFrom(s.cfg.TwilioFromPhone)
	params.SetBody(body)

	_, sendErr := s.twilioClient.Api.CreateMessage(params)
	if sendErr != nil {
		return fmt.Errorf("%w: failed to send sms via twilio: %v", utils.ErrExternalServiceFailure, sendErr)
	}
	return nil
}

func (s *ReminderService) sendEmail(email, name string, p *models.Payment, body string) error {
	from := mail.NewEmail(s.cfg.AppName, s.cfg.SendGridFromEmail)
	to := mail.NewEmail(name, email)
	subject := fmt.Sprintf("Payment reminder: %s", p.PaymentID)
	msg := mail.NewSingleEmail(from, subject, to, body, "<p>"+body+"</p>")

	if s.cfg.SendgridSandboxMode {
		ms := mail.NewMailSettings()
		ms.SetSandboxMode(mail.NewSetting(true))
		msg.MailSettings = ms
	}

	_, sendErr := s.sendgridClient.Send(msg)
	if sendErr != nil {
		return fmt.Errorf("%w: failed to send email via sendgrid: %v", utils.ErrExternalServiceFailure, sendErr)
	}
	return nil
}

// reminderTypeFor places a pending payment on the notification
// ladder: not yet due means a courtesy notice, past due escalates by
// how long it has been outstanding.
func reminderTypeFor(p *models.Payment, now time.Time) models.ReminderType {
	if !p.IsOverdue(now) {
		return models.ReminderDueSoon
	}
	return escalationFor(now.Sub(p.DueDate))
}

func escalationFor(pastDue time.Duration) models.ReminderType {
	if pastDue >= finalNoticeAfter {
		return models.ReminderFinalNotice
	}
	return models.ReminderOverdue
}

func reminderMessage(p *models.Payment, tenant *models.Tenant, reminderType models.ReminderType) string {
	switch reminderType {
	case models.ReminderDueSoon:
		return fmt.Sprintf("Hi %s, payment %s of %.2f is due on %s. Please arrange payment in time.",
			tenant.FullName(), p.PaymentID, p.Amount, p.DueDate.Format("2006-01-02"))
	case models.ReminderFinalNotice:
		return fmt.Sprintf("FINAL NOTICE for %s: payment %s of %.2f was due on %s. Please settle immediately to avoid further action.",
			tenant.FullName(), p.PaymentID, p.Amount, p.DueDate.Format("2006-01-02"))
	default:
		return fmt.Sprintf("Hi %s, payment %s of %.2f was due on %s and is still outstanding. Please arrange payment.",
			tenant.FullName(), p.PaymentID, p.Amount, p.DueDate.Format("2006-01-02"))
	}
}
