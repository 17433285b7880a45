package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Bramtheking/rentalsystemproj/internal/models"
	"github.com/Bramtheking/rentalsystemproj/internal/repositories"
	"github.com/Bramtheking/rentalsystemproj/internal/utils"
)

/*
OccupancySynchronizer is the single writer of occupancy-derived unit
state (unit status and the denormalized tenant_* contact fields) and
of move-in history rows.

Every method runs inside a transaction the caller has already opened
and passes in as db; the methods never commit or roll back themselves.
The occupancy invariant they maintain: a unit is Occupied iff exactly
one tenant has current_unit pointing at it, with that tenant's contact
info mirrored on the unit row.
*/
type OccupancySynchronizer struct{}

func NewOccupancySynchronizer() *OccupancySynchronizer {
	return &OccupancySynchronizer{}
}

// OnTenantCreated runs after a new tenant row has been inserted in the
// same transaction. When the tenant arrives with a unit assignment, it
// occupies the unit and appends the move-in history row.
//
// History values: move-in date falls back to now when the tenant did
// not state one, monthly rent falls back to the unit's rent.
func (s *OccupancySynchronizer) OnTenantCreated(ctx context.Context, db repositories.DB, t *models.Tenant, now time.Time) error {
	if t.CurrentUnitID == nil {
		return nil
	}

	unit, err := s.occupy(ctx, db, t)
	if err != nil {
		return err
	}

	moveIn := now
	if t.MoveInDate != nil {
		moveIn = *t.MoveInDate
	}
	rent := t.MonthlyRent
	if rent == 0 {
		rent = unit.Rent
	}

	historyRepo := repositories.NewTenantHistoryRepository(db)
	return historyRepo.Create(ctx, &models.TenantHistory{
		ID:              uuid.New(),
		OwnerID:         t.OwnerID,
		TenantID:        t.ID,
		UnitID:          unit.ID,
		MoveInDate:      moveIn,
		MonthlyRent:     rent,
		SecurityDeposit: utils.Ptr(t.SecurityDeposit),
	})
}

// OnTenantUpdated runs after the tenant row has been updated in the
// same transaction. beforeUnitID is the assignment captured before the
// update was applied. Nothing happens unless the assignment changed;
// a changed assignment releases the old unit and occupies the new one.
// No history row is written here: history rows come from creation and
// from the explicit move-in action.
func (s *OccupancySynchronizer) OnTenantUpdated(ctx context.Context, db repositories.DB, beforeUnitID *uuid.UUID, after *models.Tenant) error {
	if sameUnit(beforeUnitID, after.CurrentUnitID) {
		return nil
	}

	if beforeUnitID != nil {
		if err := s.release(ctx, db, *beforeUnitID); err != nil {
			return err
		}
	}
	if after.CurrentUnitID != nil {
		if _, err := s.occupy(ctx, db, after); err != nil {
			return err
		}
	}
	return nil
}

// OnTenantDeleted releases the tenant's unit, if any. The caller
// deletes the tenant row afterwards in the same transaction, so the
// unit is never observable as Occupied by a tenant that no longer
// exists.
func (s *OccupancySynchronizer) OnTenantDeleted(ctx context.Context, db repositories.DB, t *models.Tenant) error {
	if t.CurrentUnitID == nil {
		return nil
	}
	return s.release(ctx, db, *t.CurrentUnitID)
}

// occupy locks the unit row, rejects double-booking, then marks it
// Occupied with the tenant's contact info. The FOR UPDATE lock plus
// the reference count close the race between two concurrent requests
// assigning the same unit.
func (s *OccupancySynchronizer) occupy(ctx context.Context, db repositories.DB, t *models.Tenant) (*models.Unit, error) {
	unitRepo := repositories.NewUnitRepository(db)

	unit, err := unitRepo.GetByIDForUpdate(ctx, *t.CurrentUnitID)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, utils.ErrNotFound
	}
	if unit.OwnerID != t.OwnerID {
		return nil, utils.ErrNotOwner
	}

	tenantRepo := repositories.NewTenantRepository(db)
	n, err := tenantRepo.CountReferencingUnit(ctx, unit.ID, &t.ID)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, utils.ErrUnitOccupied
	}

	if err := unitRepo.SetOccupancy(ctx, unit.ID, models.UnitStatusOccupied, t.FullName(), t.Phone, t.Email); err != nil {
		return nil, err
	}
	return unit, nil
}

func (s *OccupancySynchronizer) release(ctx context.Context, db repositories.DB, unitID uuid.UUID) error {
	unitRepo := repositories.NewUnitRepository(db)
	return unitRepo.SetOccupancy(ctx, unitID, models.UnitStatusVacant, "", "", "")
}

func sameUnit(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
