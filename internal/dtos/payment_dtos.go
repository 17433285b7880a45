package dtos

import (
	"time"

	"github.com/google/uuid"

	"github.com/Bramtheking/rentalsystemproj/internal/models"
)

type CreatePaymentRequest struct {
	TenantID *uuid.UUID `json:"tenant_id,omitempty"`
	UnitID   *uuid.UUID `json:"unit_id,omitempty"`

	PaymentType   models.PaymentType       `json:"payment_type" validate:"required,oneof=rent deposit maintenance other"`
	Amount        float64                  `json:"amount" validate:"required,gt=0"`
	PaymentMethod models.PaymentMethodType `json:"payment_method" validate:"required,oneof=cash bank_transfer mobile_money cheque card other"`
	Status        models.PaymentStatusType `json:"status,omitempty" validate:"omitempty,oneof=pending completed failed cancelled"`

	PaymentDate *time.Time `json:"payment_date,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`

	Description     string `json:"description,omitempty" validate:"omitempty,max=2000"`
	ReferenceNumber string `json:"reference_number,omitempty" validate:"omitempty,max=100"`
}

type UpdatePaymentRequest struct {
	TenantID *uuid.UUID `json:"tenant_id,omitempty"`
	UnitID   *uuid.UUID `json:"unit_id,omitempty"`

	PaymentType   models.PaymentType       `json:"payment_type" validate:"required,oneof=rent deposit maintenance other"`
	Amount        float64                  `json:"amount" validate:"required,gt=0"`
	PaymentMethod models.PaymentMethodType `json:"payment_method" validate:"required,oneof=cash bank_transfer mobile_money cheque card other"`
	Status        models.PaymentStatusType `json:"status" validate:"required,oneof=pending completed failed cancelled"`

	PaymentDate time.Time `json:"payment_date" validate:"required"`
	DueDate     time.Time `json:"due_date" validate:"required"`

	Description     string `json:"description,omitempty" validate:"omitempty,max=2000"`
	ReferenceNumber string `json:"reference_number,omitempty" validate:"omitempty,max=100"`
}

type CompletePaymentRequest struct {
	PaymentDate *time.Time `json:"payment_date,omitempty"`
}

// PaymentStatsResponse mirrors the dashboard card payload.
type PaymentStatsResponse struct {
	TotalPayments     int     `json:"total_payments"`
	CompletedPayments int     `json:"completed_payments"`
	PendingPayments   int     `json:"pending_payments"`
	FailedPayments    int     `json:"failed_payments"`
	OverduePayments   int     `json:"overdue_payments"`
	TotalAmount       float64 `json:"total_amount"`
	PendingAmount     float64 `json:"pending_amount"`
	OverdueAmount     float64 `json:"overdue_amount"`
}

type MonthlyPaymentStatResponse struct {
	Year   int     `json:"year"`
	Month  int     `json:"month"`
	Amount float64 `json:"amount"`
	Count  int     `json:"count"`
}

func (r *CreatePaymentRequest) ToModel() *models.Payment {
	p := &models.Payment{
		TenantID:        r.TenantID,
		UnitID:          r.UnitID,
		PaymentType:     r.PaymentType,
		Amount:          r.Amount,
		PaymentMethod:   r.PaymentMethod,
		Status:          r.Status,
		Description:     r.Description,
		ReferenceNumber: r.ReferenceNumber,
	}
	if r.PaymentDate != nil {
		p.PaymentDate = *r.PaymentDate
	}
	if r.DueDate != nil {
		p.DueDate = *r.DueDate
	}
	return p
}

func (r *UpdatePaymentRequest) ToModel(id uuid.UUID) *models.Payment {
	return &models.Payment{
		ID:              id,
		TenantID:        r.TenantID,
		UnitID:          r.UnitID,
		PaymentType:     r.PaymentType,
		Amount:          r.Amount,
		PaymentMethod:   r.PaymentMethod,
		Status:          r.Status,
		PaymentDate:     r.PaymentDate,
		DueDate:         r.DueDate,
		Description:     r.Description,
		ReferenceNumber: r.ReferenceNumber,
	}
}
