package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/Bramtheking/rentalsystemproj/internal/models"
	"github.com/Bramtheking/rentalsystemproj/internal/repositories"
	"github.com/Bramtheking/rentalsystemproj/internal/utils"
)

// UnitStats is the aggregate payload for the unit dashboard card.
type UnitStats struct {
	Total       int     `json:"total_units"`
	Occupied    int     `json:"occupied_units"`
	Vacant      int     `json:"vacant_units"`
	Maintenance int     `json:"maintenance_units"`
	Occupancy   float64 `json:"occupancy_rate"`
}

type UnitService struct {
	db         repositories.DB
	unitRepo   repositories.UnitRepository
	tenantRepo repositories.TenantRepository
}

func NewUnitService(db repositories.DB, unitRepo repositories.UnitRepository, tenantRepo repositories.TenantRepository) *UnitService {
	return &UnitService{db: db, unitRepo: unitRepo, tenantRepo: tenantRepo}
}

// Create inserts a new unit. Display codes are owner-scoped unique;
// occupancy always starts out Vacant unless the owner explicitly
// flags the unit as under maintenance.
func (s *UnitService) Create(ctx context.Context, ownerID uuid.UUID, u *models.Unit) (*models.Unit, error) {
	existing, err := s.unitRepo.GetByOwnerAndUnitID(ctx, ownerID, u.UnitID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, wrapDomainError(utils.ErrUnitIDExists)
	}

	u.ID = uuid.New()
	u.OwnerID = ownerID
	if u.Status == "" {
		u.Status = models.UnitStatusVacant
	}
	if u.Status == models.UnitStatusOccupied {
		// Occupied is derived state; a unit cannot be born occupied.
		u.Status = models.UnitStatusVacant
	}
	if err := s.unitRepo.Create(ctx, u); err != nil {
		return nil, err
	}
	return s.unitRepo.GetByID(ctx, u.ID)
}

// Update applies owner edits to a unit. Status and the occupant
// contact fields belong to the occupancy synchronizer, so they are
// carried over from the stored row untouched — except that a unit
// without a tenant may be toggled between Vacant and Under
// Maintenance. The unit row is locked for the whole write so a
// concurrent move-in cannot slip between the status check and the
// toggle.
func (s *UnitService) Update(ctx context.Context, ownerID uuid.UUID, u *models.Unit) (*models.Unit, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	txUnits := repositories.NewUnitRepository(tx)
	stored, err := txUnits.GetByIDForUpdate(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	if stored == nil || stored.OwnerID != ownerID {
		return nil, wrapDomainError(utils.ErrNotFound)
	}

	u.OwnerID = stored.OwnerID
	u.UnitID = stored.UnitID
	if err := txUnits.Update(ctx, u); err != nil {
		return nil, err
	}

	// A tenantless unit may be toggled between Vacant and Under
	// Maintenance; Occupied stays derived from tenant assignment.
	if u.Status != "" && u.Status != models.UnitStatusOccupied && u.Status != stored.Status {
		if stored.Status == models.UnitStatusOccupied {
			return nil, wrapDomainError(utils.ErrUnitOccupied)
		}
		if err := txUnits.SetOccupancy(ctx, u.ID, u.Status, "", "", ""); err != nil {
			return nil, err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return s.unitRepo.GetByID(ctx, u.ID)
}

// Delete soft-deletes a unit. Deletion is blocked while any tenant
// still references the unit: releasing the tenant first keeps the
// occupancy ledger consistent rather than silently nulling the
// reference.
func (s *UnitService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	txUnits := repositories.NewUnitRepository(tx)
	u, err := txUnits.GetByIDForUpdate(ctx, id)
	if err != nil {
		return err
	}
	if u == nil || u.OwnerID != ownerID {
		return wrapDomainError(utils.ErrNotFound)
	}

	txTenants := repositories.NewTenantRepository(tx)
	n, err := txTenants.CountReferencingUnit(ctx, id, nil)
	if err != nil {
		return err
	}
	if n > 0 {
		return wrapDomainError(utils.ErrUnitHasTenant)
	}

	if err := txUnits.SoftDelete(ctx, id); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

/* ---------- reads ---------- */

func (s *UnitService) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Unit, error) {
	u, err := s.unitRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil || u.OwnerID != ownerID {
		return nil, wrapDomainError(utils.ErrNotFound)
	}
	return u, nil
}

func (s *UnitService) List(ctx context.Context, ownerID uuid.UUID) ([]*models.Unit, error) {
	return s.unitRepo.ListByOwnerID(ctx, ownerID)
}

func (s *UnitService) Search(ctx context.Context, ownerID uuid.UUID, query string, status models.UnitStatusType) ([]*models.Unit, error) {
	return s.unitRepo.Search(ctx, ownerID, query, status)
}

func (s *UnitService) Stats(ctx context.Context, ownerID uuid.UUID) (*UnitStats, error) {
	counts, err := s.unitRepo.CountByStatus(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	stats := &UnitStats{
		Occupied:    counts[models.UnitStatusOccupied],
		Vacant:      counts[models.UnitStatusVacant],
		Maintenance: counts[models.UnitStatusUnderMaintenance],
	}
	for _, n := range counts {
		stats.Total += n
	}
	if stats.Total > 0 {
		stats.Occupancy = float64(stats.Occupied) / float64(stats.Total) * 100
	}
	return stats, nil
}
