package services

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Bramtheking/rentalsystemproj/internal/models"
	"github.com/Bramtheking/rentalsystemproj/internal/repositories"
)

// The stubs embed the repository interfaces and override only the
// listing methods the report builder touches.

type stubPaymentRepo struct {
	repositories.PaymentRepository
	payments []*models.Payment
	stats    repositories.PaymentStats
}

func (s *stubPaymentRepo) ListByOwnerID(context.Context, uuid.UUID) ([]*models.Payment, error) {
	return s.payments, nil
}

func (s *stubPaymentRepo) Stats(context.Context, uuid.UUID, time.Time) (*repositories.PaymentStats, error) {
	return &s.stats, nil
}

type stubUnitRepo struct {
	repositories.UnitRepository
	units []*models.Unit
}

func (s *stubUnitRepo) ListByOwnerID(context.Context, uuid.UUID) ([]*models.Unit, error) {
	return s.units, nil
}

type stubTenantRepo struct {
	repositories.TenantRepository
	tenants []*models.Tenant
}

func (s *stubTenantRepo) ListByOwnerID(context.Context, uuid.UUID) ([]*models.Tenant, error) {
	return s.tenants, nil
}

type stubHistoryRepo struct {
	repositories.TenantHistoryRepository
	history []*models.TenantHistory
}

func (s *stubHistoryRepo) ListByOwnerID(context.Context, uuid.UUID) ([]*models.TenantHistory, error) {
	return s.history, nil
}

func TestPaymentsReport_ProducesWorkbook(t *testing.T) {
	payments := []*models.Payment{
		{
			PaymentID:     "PAY-2026-0001",
			ReceiptNumber: "RCP-2026-0001",
			PaymentType:   models.PaymentTypeRent,
			Amount:        500,
			Status:        models.PaymentStatusCompleted,
			PaymentDate:   time.Date(2026, 5, 3, 0, 0, 0, 0, time.UTC),
			DueDate:       time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		},
	}
	paymentRepo := &stubPaymentRepo{
		payments: payments,
		stats:    repositories.PaymentStats{Total: 1, Completed: 1, TotalAmount: 500},
	}
	svc := NewReportService(paymentRepo, &stubUnitRepo{}, &stubTenantRepo{}, &stubHistoryRepo{})

	data, err := svc.PaymentsReport(context.Background(), uuid.New())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "Payments")
	assert.Contains(t, sheets, "Summary")

	header, err := f.GetCellValue("Payments", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Payment ID", header)

	cell, err := f.GetCellValue("Payments", "A2")
	require.NoError(t, err)
	assert.Equal(t, "PAY-2026-0001", cell)

	total, err := f.GetCellValue("Summary", "B2")
	require.NoError(t, err)
	assert.Equal(t, "1", total)
}

func TestOccupancyReport_TwoSheets(t *testing.T) {
	tenantID := uuid.New()
	unitID := uuid.New()
	units := []*models.Unit{{
		ID: unitID, UnitID: "A-101", Name: "Unit A-101",
		UnitType: models.UnitType1BR, Status: models.UnitStatusOccupied,
		Rent: 650, TenantName: "Jane Doe",
	}}
	tenants := []*models.Tenant{{ID: tenantID, FirstName: "Jane", LastName: "Doe"}}
	history := []*models.TenantHistory{{
		TenantID:    tenantID,
		UnitID:      unitID,
		MoveInDate:  time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		MonthlyRent: 650,
	}}
	svc := NewReportService(&stubPaymentRepo{}, &stubUnitRepo{units: units}, &stubTenantRepo{tenants: tenants}, &stubHistoryRepo{history: history})

	data, err := svc.OccupancyReport(context.Background(), uuid.New())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "Units")
	assert.Contains(t, sheets, "Tenancy History")

	unit, err := f.GetCellValue("Units", "A2")
	require.NoError(t, err)
	assert.Equal(t, "A-101", unit)

	histTenant, err := f.GetCellValue("Tenancy History", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", histTenant)
}

func TestReportFilename(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "payments-20260831.xlsx", ReportFilename("payments", now))
}
