package models

import (
	"time"

	"github.com/google/uuid"
)

// PaymentType categorizes what a payment covers.
type PaymentType string

const (
	PaymentTypeRent        PaymentType = "rent"
	PaymentTypeDeposit     PaymentType = "deposit"
	PaymentTypeMaintenance PaymentType = "maintenance"
	PaymentTypeOther       PaymentType = "other"
)

type PaymentMethodType string

const (
	PaymentMethodCash         PaymentMethodType = "cash"
	PaymentMethodBankTransfer PaymentMethodType = "bank_transfer"
	PaymentMethodMobileMoney  PaymentMethodType = "mobile_money"
	PaymentMethodCheque       PaymentMethodType = "cheque"
	PaymentMethodCard         PaymentMethodType = "card"
	PaymentMethodOther        PaymentMethodType = "other"
)

// PaymentStatusType defines the possible states of a payment record.
type PaymentStatusType string

const (
	PaymentStatusPending   PaymentStatusType = "pending"
	PaymentStatusCompleted PaymentStatusType = "completed"
	PaymentStatusFailed    PaymentStatusType = "failed"
	PaymentStatusCancelled PaymentStatusType = "cancelled"
)

// Payment is a manual ledger record of money received (or expected)
// from a tenant. A payment past its due date while still pending is
// considered overdue.
type Payment struct {
	Versioned
	ID      uuid.UUID `json:"id"`
	OwnerID uuid.UUID `json:"owner_id"`

	// Generated display identifiers, formats PAY-<year>-<seq> and
	// RCP-<year>-<seq>.
	PaymentID     string `json:"payment_id"`
	ReceiptNumber string `json:"receipt_number"`

	TenantID *uuid.UUID `json:"tenant_id,omitempty"`
	UnitID   *uuid.UUID `json:"unit_id,omitempty"`

	PaymentType   PaymentType       `json:"payment_type"`
	Amount        float64           `json:"amount"`
	PaymentMethod PaymentMethodType `json:"payment_method"`
	Status        PaymentStatusType `json:"status"`

	PaymentDate time.Time `json:"payment_date"`
	DueDate     time.Time `json:"due_date"`

	Description     string `json:"description"`
	ReferenceNumber string `json:"reference_number"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Payment) GetID() string {
	return p.ID.String()
}

// IsOverdue reports whether the payment is pending past its due date.
func (p *Payment) IsOverdue(now time.Time) bool {
	return p.Status == PaymentStatusPending && p.DueDate.Before(now)
}

// ReminderType escalates from a courtesy notice to a final notice.
type ReminderType string

const (
	ReminderDueSoon     ReminderType = "due_soon"
	ReminderOverdue     ReminderType = "overdue"
	ReminderFinalNotice ReminderType = "final_notice"
)

// PaymentReminder records one notification sent to a tenant about a
// payment. Append-only; at most one row per (payment, reminder type).
type PaymentReminder struct {
	ID           uuid.UUID    `json:"id"`
	OwnerID      uuid.UUID    `json:"owner_id"`
	TenantID     uuid.UUID    `json:"tenant_id"`
	PaymentID    *uuid.UUID   `json:"payment_id,omitempty"`
	ReminderType ReminderType `json:"reminder_type"`
	Message      string       `json:"message"`
	SentDate     time.Time    `json:"sent_date"`
}
