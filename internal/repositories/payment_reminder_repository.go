package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/Bramtheking/rentalsystemproj/internal/models"
)

type PaymentReminderRepository interface {
	Create(ctx context.Context, rm *models.PaymentReminder) error
	ExistsForPaymentAndType(ctx context.Context, paymentID uuid.UUID, reminderType models.ReminderType) (bool, error)
	ListByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*models.PaymentReminder, error)
	ListByTenantID(ctx context.Context, tenantID uuid.UUID) ([]*models.PaymentReminder, error)
}

type paymentReminderRepo struct {
	db DB
}

func NewPaymentReminderRepository(db DB) PaymentReminderRepository {
	return &paymentReminderRepo{db: db}
}

func (r *paymentReminderRepo) Create(ctx context.Context, rm *models.PaymentReminder) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO payment_reminders (
			id, owner_id, tenant_id, payment_id,
			reminder_type, message, sent_date
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`, rm.ID, rm.OwnerID, rm.TenantID, rm.PaymentID,
		rm.ReminderType, rm.Message, rm.SentDate)
	return err
}

// ExistsForPaymentAndType keeps the reminder scanner idempotent: a
// payment gets at most one reminder of each type.
func (r *paymentReminderRepo) ExistsForPaymentAndType(ctx context.Context, paymentID uuid.UUID, reminderType models.ReminderType) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM payment_reminders
			WHERE payment_id=$1 AND reminder_type=$2
		)
	`, paymentID, reminderType).Scan(&exists)
	return exists, err
}

func (r *paymentReminderRepo) ListByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*models.PaymentReminder, error) {
	rows, err := r.db.Query(ctx,
		baseSelectReminder()+" WHERE owner_id=$1 ORDER BY sent_date DESC", ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReminders(rows)
}

func (r *paymentReminderRepo) ListByTenantID(ctx context.Context, tenantID uuid.UUID) ([]*models.PaymentReminder, error) {
	rows, err := r.db.Query(ctx,
		baseSelectReminder()+" WHERE tenant_id=$1 ORDER BY sent_date DESC", tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReminders(rows)
}

func baseSelectReminder() string {
	return `
		SELECT id, owner_id, tenant_id, payment_id,
		       reminder_type, message, sent_date
		FROM payment_reminders`
}

func scanReminders(rows pgx.Rows) ([]*models.PaymentReminder, error) {
	var out []*models.PaymentReminder
	for rows.Next() {
		var rm models.PaymentReminder
		if err := rows.Scan(
			&rm.ID, &rm.OwnerID, &rm.TenantID, &rm.PaymentID,
			&rm.ReminderType, &rm.Message, &rm.SentDate,
		); err != nil {
			return nil, err
		}
		out = append(out, &rm)
	}
	return out, rows.Err()
}
