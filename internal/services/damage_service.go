package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Bramtheking/rentalsystemproj/internal/models"
	"github.com/Bramtheking/rentalsystemproj/internal/repositories"
	"github.com/Bramtheking/rentalsystemproj/internal/utils"
)

type DamageService struct {
	damageRepo repositories.DamageReportRepository
	unitRepo   repositories.UnitRepository
}

func NewDamageService(damageRepo repositories.DamageReportRepository, unitRepo repositories.UnitRepository) *DamageService {
	return &DamageService{damageRepo: damageRepo, unitRepo: unitRepo}
}

func (s *DamageService) Create(ctx context.Context, ownerID uuid.UUID, d *models.DamageReport) (*models.DamageReport, error) {
	unit, err := s.unitRepo.GetByID(ctx, d.UnitID)
	if err != nil {
		return nil, err
	}
	if unit == nil || unit.OwnerID != ownerID {
		return nil, wrapDomainError(utils.ErrNotFound)
	}

	d.ID = uuid.New()
	d.OwnerID = ownerID
	if d.Status == "" {
		d.Status = models.DamageStatusPending
	}
	if err := s.damageRepo.Create(ctx, d); err != nil {
		return nil, err
	}
	return s.damageRepo.GetByID(ctx, d.ID)
}

func (s *DamageService) Update(ctx context.Context, ownerID uuid.UUID, d *models.DamageReport) (*models.DamageReport, error) {
	stored, err := s.damageRepo.GetByID(ctx, d.ID)
	if err != nil {
		return nil, err
	}
	if stored == nil || stored.OwnerID != ownerID {
		return nil, wrapDomainError(utils.ErrNotFound)
	}

	d.OwnerID = stored.OwnerID
	d.UnitID = stored.UnitID
	if err := s.damageRepo.Update(ctx, d); err != nil {
		return nil, err
	}
	return s.damageRepo.GetByID(ctx, d.ID)
}

// RecordRepair closes out a damage report: repair details are stamped
// and the report moves to Completed. Uses the optimistic-locking loop
// since a report may be edited while the repair is being recorded.
func (s *DamageService) RecordRepair(ctx context.Context, ownerID, id uuid.UUID, repairDate time.Time, repairCost *float64, notes string) (*models.DamageReport, error) {
	if _, err := s.GetByID(ctx, ownerID, id); err != nil {
		return nil, err
	}
	err := s.damageRepo.UpdateWithRetry(ctx, id, func(d *models.DamageReport) error {
		d.RepairCompleted = true
		d.RepairDate = &repairDate
		d.RepairCost = repairCost
		d.RepairNotes = notes
		d.Status = models.DamageStatusCompleted
		return nil
	})
	if err != nil {
		return nil, wrapDomainError(err)
	}
	return s.damageRepo.GetByID(ctx, id)
}

func (s *DamageService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, ownerID, id); err != nil {
		return err
	}
	return s.damageRepo.Delete(ctx, id)
}

func (s *DamageService) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*models.DamageReport, error) {
	d, err := s.damageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil || d.OwnerID != ownerID {
		return nil, wrapDomainError(utils.ErrNotFound)
	}
	return d, nil
}

func (s *DamageService) List(ctx context.Context, ownerID uuid.UUID) ([]*models.DamageReport, error) {
	return s.damageRepo.ListByOwnerID(ctx, ownerID)
}

func (s *DamageService) ListByUnit(ctx context.Context, ownerID, unitID uuid.UUID) ([]*models.DamageReport, error) {
	unit, err := s.unitRepo.GetByID(ctx, unitID)
	if err != nil {
		return nil, err
	}
	if unit == nil || unit.OwnerID != ownerID {
		return nil, wrapDomainError(utils.ErrNotFound)
	}
	return s.damageRepo.ListByUnitID(ctx, unitID)
}

func (s *DamageService) Search(ctx context.Context, ownerID uuid.UUID, query string, status models.DamageStatusType) ([]*models.DamageReport, error) {
	return s.damageRepo.Search(ctx, ownerID, query, status)
}

func (s *DamageService) Stats(ctx context.Context, ownerID uuid.UUID) (*repositories.DamageStats, error) {
	return s.damageRepo.Stats(ctx, ownerID)
}
