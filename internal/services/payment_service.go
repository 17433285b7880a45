package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Bramtheking/rentalsystemproj/internal/models"
	"github.com/Bramtheking/rentalsystemproj/internal/repositories"
	"github.com/Bramtheking/rentalsystemproj/internal/utils"
)

type PaymentService struct {
	db          repositories.DB
	paymentRepo repositories.PaymentRepository
	tenantRepo  repositories.TenantRepository
	unitRepo    repositories.UnitRepository
	idGen       *IDGenService
}

func NewPaymentService(db repositories.DB, paymentRepo repositories.PaymentRepository, tenantRepo repositories.TenantRepository, unitRepo repositories.UnitRepository, idGen *IDGenService) *PaymentService {
	return &PaymentService{db: db, paymentRepo: paymentRepo, tenantRepo: tenantRepo, unitRepo: unitRepo, idGen: idGen}
}

// Create records a payment and issues its PAY- and RCP- display
// identifiers inside one transaction so the counters advance together.
func (s *PaymentService) Create(ctx context.Context, ownerID uuid.UUID, p *models.Payment) (*models.Payment, error) {
	now := time.Now().UTC()

	if p.TenantID != nil {
		t, err := s.tenantRepo.GetByID(ctx, *p.TenantID)
		if err != nil {
			return nil, err
		}
		if t == nil || t.OwnerID != ownerID {
			return nil, wrapDomainError(utils.ErrNotFound)
		}
		if p.UnitID == nil {
			p.UnitID = t.CurrentUnitID
		}
	}

	p.ID = uuid.New()
	p.OwnerID = ownerID
	if p.Status == "" {
		p.Status = models.PaymentStatusPending
	}
	if p.PaymentDate.IsZero() {
		p.PaymentDate = now
	}
	if p.DueDate.IsZero() {
		p.DueDate = p.PaymentDate
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	paymentID, err := s.idGen.NextPaymentID(ctx, ownerID, now)
	if err != nil {
		return nil, err
	}
	receipt, err := s.idGen.NextReceiptNumber(ctx, ownerID, now)
	if err != nil {
		return nil, err
	}
	p.PaymentID = paymentID
	p.ReceiptNumber = receipt

	txPayments := repositories.NewPaymentRepository(tx)
	if err := txPayments.Create(ctx, p); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return s.paymentRepo.GetByID(ctx, p.ID)
}

func (s *PaymentService) Update(ctx context.Context, ownerID uuid.UUID, p *models.Payment) (*models.Payment, error) {
	stored, err := s.paymentRepo.GetByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	if stored == nil || stored.OwnerID != ownerID {
		return nil, wrapDomainError(utils.ErrNotFound)
	}

	p.OwnerID = stored.OwnerID
	p.PaymentID = stored.PaymentID
	p.ReceiptNumber = stored.ReceiptNumber
	if err := s.paymentRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return s.paymentRepo.GetByID(ctx, p.ID)
}

// MarkCompleted flips a payment to completed with optimistic locking,
// so two clerks settling the same payment cannot both "win".
func (s *PaymentService) MarkCompleted(ctx context.Context, ownerID, id uuid.UUID, paymentDate time.Time) (*models.Payment, error) {
	if _, err := s.GetByID(ctx, ownerID, id); err != nil {
		return nil, err
	}
	err := s.paymentRepo.UpdateWithRetry(ctx, id, func(p *models.Payment) error {
		p.Status = models.PaymentStatusCompleted
		p.PaymentDate = paymentDate
		return nil
	})
	if err != nil {
		return nil, wrapDomainError(err)
	}
	return s.paymentRepo.GetByID(ctx, id)
}

func (s *PaymentService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, ownerID, id); err != nil {
		return err
	}
	return s.paymentRepo.Delete(ctx, id)
}

/* ---------- reads ---------- */

func (s *PaymentService) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Payment, error) {
	p, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil || p.OwnerID != ownerID {
		return nil, wrapDomainError(utils.ErrNotFound)
	}
	return p, nil
}

func (s *PaymentService) List(ctx context.Context, ownerID uuid.UUID) ([]*models.Payment, error) {
	return s.paymentRepo.ListByOwnerID(ctx, ownerID)
}

func (s *PaymentService) ListOverdue(ctx context.Context, ownerID uuid.UUID) ([]*models.Payment, error) {
	return s.paymentRepo.ListOverdue(ctx, ownerID, time.Now().UTC())
}

func (s *PaymentService) Search(ctx context.Context, ownerID uuid.UUID, query string, status models.PaymentStatusType, overdueOnly bool) ([]*models.Payment, error) {
	return s.paymentRepo.Search(ctx, ownerID, query, status, overdueOnly, time.Now().UTC())
}

// TenantUnits resolves the units a tenant can be billed against. With
// one unit per tenant this is the current unit or an empty slice, but
// the handler always returns a list so the client renders a picker.
func (s *PaymentService) TenantUnits(ctx context.Context, ownerID, tenantID uuid.UUID) ([]*models.Unit, error) {
	tenant, err := s.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil || tenant.OwnerID != ownerID {
		return nil, wrapDomainError(utils.ErrNotFound)
	}
	if tenant.CurrentUnitID == nil {
		return []*models.Unit{}, nil
	}
	unit, err := s.unitRepo.GetByID(ctx, *tenant.CurrentUnitID)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return []*models.Unit{}, nil
	}
	return []*models.Unit{unit}, nil
}

func (s *PaymentService) Stats(ctx context.Context, ownerID uuid.UUID) (*repositories.PaymentStats, error) {
	return s.paymentRepo.Stats(ctx, ownerID, time.Now().UTC())
}

func (s *PaymentService) MonthlyStats(ctx context.Context, ownerID uuid.UUID, months int) ([]repositories.MonthlyPaymentStat, error) {
	if months <= 0 || months > 36 {
		months = 12
	}
	return s.paymentRepo.MonthlyStats(ctx, ownerID, months)
}
