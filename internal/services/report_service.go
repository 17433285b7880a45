package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/Bramtheking/rentalsystemproj/internal/repositories"
)

// ReportService renders an owner's ledgers as downloadable xlsx
// workbooks.
type ReportService struct {
	paymentRepo repositories.PaymentRepository
	unitRepo    repositories.UnitRepository
	tenantRepo  repositories.TenantRepository
	historyRepo repositories.TenantHistoryRepository
}

func NewReportService(
	paymentRepo repositories.PaymentRepository,
	unitRepo repositories.UnitRepository,
	tenantRepo repositories.TenantRepository,
	historyRepo repositories.TenantHistoryRepository,
) *ReportService {
	return &ReportService{
		paymentRepo: paymentRepo,
		unitRepo:    unitRepo,
		tenantRepo:  tenantRepo,
		historyRepo: historyRepo,
	}
}

// PaymentsReport exports every payment for the owner, newest first,
// with a second sheet of aggregate totals.
func (s *ReportService) PaymentsReport(ctx context.Context, ownerID uuid.UUID) ([]byte, error) {
	payments, err := s.paymentRepo.ListByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	stats, err := s.paymentRepo.Stats(ctx, ownerID, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	headers := []string{
		"Payment ID", "Receipt", "Type", "Amount", "Method",
		"Status", "Payment Date", "Due Date", "Reference", "Description",
	}
	rows := make([][]any, 0, len(payments))
	for _, p := range payments {
		rows = append(rows, []any{
			p.PaymentID, p.ReceiptNumber, string(p.PaymentType), p.Amount, string(p.PaymentMethod),
			string(p.Status), p.PaymentDate.Format("2006-01-02"), p.DueDate.Format("2006-01-02"),
			p.ReferenceNumber, p.Description,
		})
	}
	f, err := newWorkbook("Payments", headers, rows)
	if err != nil {
		return nil, err
	}

	summaryRows := [][]any{
		{"Total payments", stats.Total},
		{"Completed", stats.Completed},
		{"Pending", stats.Pending},
		{"Failed", stats.Failed},
		{"Overdue", stats.Overdue},
		{"Total amount", stats.TotalAmount},
		{"Pending amount", stats.PendingAmount},
		{"Overdue amount", stats.OverdueAmount},
	}
	if err := addSheet(f, "Summary", []string{"Metric", "Value"}, summaryRows); err != nil {
		f.Close()
		return nil, err
	}

	return finishWorkbook(f)
}

// OccupancyReport exports the unit roster with occupancy state and
// the tenancy ledger side by side, one sheet each.
func (s *ReportService) OccupancyReport(ctx context.Context, ownerID uuid.UUID) ([]byte, error) {
	units, err := s.unitRepo.ListByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	history, err := s.historyRepo.ListByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	tenants, err := s.tenantRepo.ListByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	tenantNames := make(map[uuid.UUID]string, len(tenants))
	for _, t := range tenants {
		tenantNames[t.ID] = t.FullName()
	}
	unitCodes := make(map[uuid.UUID]string, len(units))
	for _, u := range units {
		unitCodes[u.ID] = u.UnitID
	}

	unitHeaders := []string{"Unit", "Name", "Type", "Status", "Rent", "Tenant", "Tenant Phone"}
	unitRows := make([][]any, 0, len(units))
	for _, u := range units {
		unitRows = append(unitRows, []any{
			u.UnitID, u.Name, string(u.UnitType), string(u.Status), u.Rent, u.TenantName, u.TenantPhone,
		})
	}

	f, err := newWorkbook("Units", unitHeaders, unitRows)
	if err != nil {
		return nil, err
	}

	histHeaders := []string{"Tenant", "Unit", "Move In", "Move Out", "Monthly Rent", "Reason"}
	histRows := make([][]any, 0, len(history))
	for _, h := range history {
		moveOut := ""
		if h.MoveOutDate != nil {
			moveOut = h.MoveOutDate.Format("2006-01-02")
		}
		histRows = append(histRows, []any{
			tenantNames[h.TenantID], unitCodes[h.UnitID],
			h.MoveInDate.Format("2006-01-02"), moveOut, h.MonthlyRent, h.MoveOutReason,
		})
	}
	if err := addSheet(f, "Tenancy History", histHeaders, histRows); err != nil {
		f.Close()
		return nil, err
	}

	return finishWorkbook(f)
}

/* ---------- workbook plumbing ---------- */

func newWorkbook(sheet string, headers []string, rows [][]any) (*excelize.File, error) {
	f := excelize.NewFile()
	// Keep the file open until WriteTo; Close comes in finishWorkbook.

	index, err := f.NewSheet(sheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	if err := fillSheet(f, sheet, headers, rows); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func addSheet(f *excelize.File, sheet string, headers []string, rows [][]any) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	return fillSheet(f, sheet, headers, rows)
}

func fillSheet(f *excelize.File, sheet string, headers []string, rows [][]any) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("failed to set header style: %w", err)
		}
	}

	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return fmt.Errorf("failed to convert coordinates: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to set cell %s: %w", cell, err)
			}
		}
	}

	// Freeze the header row.
	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func finishWorkbook(f *excelize.File) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// ReportFilename builds the attachment name for a report download.
func ReportFilename(kind string, now time.Time) string {
	return fmt.Sprintf("%s-%s.xlsx", kind, now.Format("20060102"))
}
