//go:build integration

package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/Bramtheking/rentalsystemproj/internal/models"
	"github.com/Bramtheking/rentalsystemproj/internal/utils"
)

// Creating a tenant with a unit occupies the unit, copies the contact
// fields, and opens exactly one history row with the stated values.
func TestCreateTenantWithUnit_OccupiesAndAppendsHistory(t *testing.T) {
	ctx := context.Background()
	owner := createOwner(t)
	unit := createUnit(t, owner, "A-101", 650)

	moveIn := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	tn := newTenant("Alice", "Kim", "+15550001111", "alice@example.com")
	tn.CurrentUnitID = &unit.ID
	tn.MoveInDate = &moveIn
	tn.MonthlyRent = 700
	tn.SecurityDeposit = 1000

	created, err := tenantService.Create(ctx, owner, tn)
	require.NoError(t, err)
	require.Equal(t, models.TenantStatusActive, created.Status)

	got, err := unitRepo.GetByID(ctx, unit.ID)
	require.NoError(t, err)
	require.Equal(t, models.UnitStatusOccupied, got.Status)
	require.Equal(t, "Alice Kim", got.TenantName)
	require.Equal(t, "+15550001111", got.TenantPhone)
	require.Equal(t, "alice@example.com", got.TenantEmail)

	history, err := historyRepo.ListByTenantID(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.Equal(t, unit.ID, history[0].UnitID)
	require.True(t, history[0].MoveInDate.Equal(moveIn))
	require.Equal(t, 700.0, history[0].MonthlyRent)
	require.NotNil(t, history[0].SecurityDeposit)
	require.Equal(t, 1000.0, *history[0].SecurityDeposit)
	require.Nil(t, history[0].MoveOutDate)

	assertOccupancyInvariant(t, owner)
}

// When the tenant states no rent, the history row falls back to the
// unit's rent.
func TestCreateTenantWithUnit_RentFallsBackToUnit(t *testing.T) {
	ctx := context.Background()
	owner := createOwner(t)
	unit := createUnit(t, owner, "A-102", 825)

	tn := newTenant("Bob", "Otieno", "+15550002222", "bob@example.com")
	tn.CurrentUnitID = &unit.ID

	created, err := tenantService.Create(ctx, owner, tn)
	require.NoError(t, err)

	history, err := historyRepo.ListByTenantID(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.Equal(t, 825.0, history[0].MonthlyRent)
}

// A create targeting an already-held unit is rejected and nothing is
// persisted.
func TestCreateTenant_UnitAlreadyHeld(t *testing.T) {
	ctx := context.Background()
	owner := createOwner(t)
	unit := createUnit(t, owner, "A-103", 500)

	first := newTenant("Carol", "Njeri", "+15550003333", "carol@example.com")
	first.CurrentUnitID = &unit.ID
	_, err := tenantService.Create(ctx, owner, first)
	require.NoError(t, err)

	second := newTenant("Dan", "Mutua", "+15550004444", "dan@example.com")
	second.CurrentUnitID = &unit.ID
	_, err = tenantService.Create(ctx, owner, second)
	require.Error(t, err)
	require.ErrorContains(t, err, utils.ErrUnitOccupied.Error())

	// Second tenant must not exist at all.
	tenants, err := tenantRepo.ListByOwnerID(ctx, owner)
	require.NoError(t, err)
	require.Len(t, tenants, 1)

	assertOccupancyInvariant(t, owner)
}

// A storage failure mid-synchronization rolls back the whole create.
// The tenant here carries a unit but the transaction is forced to fail
// at the history insert (the tenant row was never persisted, so the
// foreign key rejects it); afterwards the unit must still read Vacant.
func TestCreateSynchronization_RollsBackOnFailure(t *testing.T) {
	ctx := context.Background()
	owner := createOwner(t)
	unit := createUnit(t, owner, "A-104", 600)

	phantom := newTenant("Eve", "Wafula", "+15550005555", "eve@example.com")
	phantom.ID = uuid.New() // never inserted
	phantom.OwnerID = owner
	phantom.CurrentUnitID = &unit.ID

	tx, err := pool.Begin(ctx)
	require.NoError(t, err)
	err = synchronizer.OnTenantCreated(ctx, tx, phantom, time.Now().UTC())
	if err == nil {
		err = tx.Commit(ctx)
	} else {
		require.NoError(t, tx.Rollback(ctx))
	}
	require.Error(t, err, "history insert must fail for an unpersisted tenant")

	got, err := unitRepo.GetByID(ctx, unit.ID)
	require.NoError(t, err)
	require.Equal(t, models.UnitStatusVacant, got.Status)
	require.Empty(t, got.TenantName)
}

// Reassigning a tenant releases the old unit, occupies the new one,
// and writes no new history row.
func TestUpdateTenant_Reassignment(t *testing.T) {
	ctx := context.Background()
	owner := createOwner(t)
	unitA := createUnit(t, owner, "B-201", 500)
	unitB := createUnit(t, owner, "B-202", 550)

	tn := newTenant("Frank", "Omondi", "+15550006666", "frank@example.com")
	tn.CurrentUnitID = &unitA.ID
	created, err := tenantService.Create(ctx, owner, tn)
	require.NoError(t, err)

	updated := *created
	updated.CurrentUnitID = &unitB.ID
	_, err = tenantService.Update(ctx, owner, &updated)
	require.NoError(t, err)

	gotA, err := unitRepo.GetByID(ctx, unitA.ID)
	require.NoError(t, err)
	require.Equal(t, models.UnitStatusVacant, gotA.Status)
	require.Empty(t, gotA.TenantName)

	gotB, err := unitRepo.GetByID(ctx, unitB.ID)
	require.NoError(t, err)
	require.Equal(t, models.UnitStatusOccupied, gotB.Status)
	require.Equal(t, "Frank Omondi", gotB.TenantName)

	history, err := historyRepo.ListByTenantID(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, history, 1, "reassignment must not add a history row")

	assertOccupancyInvariant(t, owner)
}

// Updating non-assignment fields leaves the unit row untouched.
func TestUpdateTenant_NoOpKeepsUnit(t *testing.T) {
	ctx := context.Background()
	owner := createOwner(t)
	unit := createUnit(t, owner, "B-203", 500)

	tn := newTenant("Grace", "Achieng", "+15550007777", "grace@example.com")
	tn.CurrentUnitID = &unit.ID
	created, err := tenantService.Create(ctx, owner, tn)
	require.NoError(t, err)

	before, err := unitRepo.GetByID(ctx, unit.ID)
	require.NoError(t, err)

	updated := *created
	updated.Occupation = "Engineer"
	_, err = tenantService.Update(ctx, owner, &updated)
	require.NoError(t, err)

	after, err := unitRepo.GetByID(ctx, unit.ID)
	require.NoError(t, err)
	require.Equal(t, before.RowVersion, after.RowVersion, "unit row must not be touched")
	require.Equal(t, before.Status, after.Status)
	require.Equal(t, before.TenantName, after.TenantName)

	assertOccupancyInvariant(t, owner)
}

// Deleting an assigned tenant releases the unit in the same
// transaction.
func TestDeleteTenant_ReleasesUnit(t *testing.T) {
	ctx := context.Background()
	owner := createOwner(t)
	unit := createUnit(t, owner, "B-204", 500)

	tn := newTenant("Hassan", "Abdi", "+15550008888", "hassan@example.com")
	tn.CurrentUnitID = &unit.ID
	created, err := tenantService.Create(ctx, owner, tn)
	require.NoError(t, err)

	require.NoError(t, tenantService.Delete(ctx, owner, created.ID))

	got, err := unitRepo.GetByID(ctx, unit.ID)
	require.NoError(t, err)
	require.Equal(t, models.UnitStatusVacant, got.Status)
	require.Empty(t, got.TenantName)

	gone, err := tenantRepo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Nil(t, gone)

	assertOccupancyInvariant(t, owner)
}

// Move-out closes the open history row and marks the tenant Moved Out.
func TestMoveOut_ClosesHistory(t *testing.T) {
	ctx := context.Background()
	owner := createOwner(t)
	unit := createUnit(t, owner, "B-205", 500)

	tn := newTenant("Irene", "Wanjiku", "+15550009999", "irene@example.com")
	tn.CurrentUnitID = &unit.ID
	created, err := tenantService.Create(ctx, owner, tn)
	require.NoError(t, err)

	moveOut := time.Now().UTC().Truncate(time.Second)
	moved, err := tenantService.MoveOut(ctx, owner, created.ID, moveOut, "end of lease")
	require.NoError(t, err)
	require.Equal(t, models.TenantStatusMovedOut, moved.Status)
	require.Nil(t, moved.CurrentUnitID)

	got, err := unitRepo.GetByID(ctx, unit.ID)
	require.NoError(t, err)
	require.Equal(t, models.UnitStatusVacant, got.Status)

	history, err := historyRepo.ListByTenantID(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.NotNil(t, history[0].MoveOutDate)
	require.Equal(t, "end of lease", history[0].MoveOutReason)

	assertOccupancyInvariant(t, owner)
}

// Sequential creates in one year get consecutive zero-padded IDs.
func TestTenantIDGeneration_Sequential(t *testing.T) {
	ctx := context.Background()
	owner := createOwner(t)
	year := time.Now().UTC().Year()

	for i := 1; i <= 3; i++ {
		tn := newTenant("Seq", fmt.Sprintf("Tenant%d", i), "+1555010000"+fmt.Sprint(i), "")
		created, err := tenantService.Create(ctx, owner, tn)
		require.NoError(t, err)
		require.Equal(t, fmt.Sprintf("TNT-%d-%03d", year, i), created.TenantID)
	}
}

// Deleting a unit that still has a tenant is blocked with a conflict.
func TestDeleteUnit_BlockedWhileReferenced(t *testing.T) {
	ctx := context.Background()
	owner := createOwner(t)
	unit := createUnit(t, owner, "C-301", 500)

	tn := newTenant("John", "Kamau", "+15550010001", "john@example.com")
	tn.CurrentUnitID = &unit.ID
	created, err := tenantService.Create(ctx, owner, tn)
	require.NoError(t, err)

	err = unitService.Delete(ctx, owner, unit.ID)
	require.Error(t, err)
	require.ErrorContains(t, err, utils.ErrUnitHasTenant.Error())

	// Release the tenant; the delete then goes through.
	require.NoError(t, tenantService.Delete(ctx, owner, created.ID))
	require.NoError(t, unitService.Delete(ctx, owner, unit.ID))

	gone, err := unitRepo.GetByID(ctx, unit.ID)
	require.NoError(t, err)
	require.Nil(t, gone)
}

// Two concurrent reassignments of the same tenant serialize on the
// tenant row: the writer that commits second sees the first one's
// assignment, so every released unit really was the tenant's and no
// unit is left Occupied without a referencing tenant.
func TestUpdateTenant_ConcurrentReassignments(t *testing.T) {
	ctx := context.Background()
	owner := createOwner(t)
	unitA := createUnit(t, owner, "D-401", 500)
	unitB := createUnit(t, owner, "D-402", 510)
	unitC := createUnit(t, owner, "D-403", 520)

	tn := newTenant("Ken", "Barasa", "+15550011111", "ken@example.com")
	tn.CurrentUnitID = &unitA.ID
	created, err := tenantService.Create(ctx, owner, tn)
	require.NoError(t, err)

	errs := make(chan error, 2)
	for _, target := range []uuid.UUID{unitB.ID, unitC.ID} {
		target := target
		go func() {
			updated := *created
			updated.CurrentUnitID = &target
			_, err := tenantService.Update(ctx, owner, &updated)
			errs <- err
		}()
	}
	for i := 0; i < 2; i++ {
		require.NoError(t, <-errs)
	}

	final, err := tenantRepo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, final.CurrentUnitID)
	require.Contains(t, []uuid.UUID{unitB.ID, unitC.ID}, *final.CurrentUnitID)

	gotA, err := unitRepo.GetByID(ctx, unitA.ID)
	require.NoError(t, err)
	require.Equal(t, models.UnitStatusVacant, gotA.Status)

	assertOccupancyInvariant(t, owner)
}

// The maintenance toggle is rejected while a tenant holds the unit
// and never blanks the occupant fields.
func TestUpdateUnit_MaintenanceToggleBlockedWhileOccupied(t *testing.T) {
	ctx := context.Background()
	owner := createOwner(t)
	unit := createUnit(t, owner, "D-404", 480)

	tn := newTenant("Lucy", "Moraa", "+15550012222", "lucy@example.com")
	tn.CurrentUnitID = &unit.ID
	_, err := tenantService.Create(ctx, owner, tn)
	require.NoError(t, err)

	edit := *unit
	edit.Status = models.UnitStatusUnderMaintenance
	_, err = unitService.Update(ctx, owner, &edit)
	require.Error(t, err)
	require.ErrorContains(t, err, utils.ErrUnitOccupied.Error())

	got, err := unitRepo.GetByID(ctx, unit.ID)
	require.NoError(t, err)
	require.Equal(t, models.UnitStatusOccupied, got.Status)
	require.Equal(t, "Lucy Moraa", got.TenantName)

	assertOccupancyInvariant(t, owner)
}

// A tenantless unit still toggles between Vacant and Under
// Maintenance.
func TestUpdateUnit_MaintenanceToggleOnVacantUnit(t *testing.T) {
	ctx := context.Background()
	owner := createOwner(t)
	unit := createUnit(t, owner, "D-405", 480)

	edit := *unit
	edit.Status = models.UnitStatusUnderMaintenance
	got, err := unitService.Update(ctx, owner, &edit)
	require.NoError(t, err)
	require.Equal(t, models.UnitStatusUnderMaintenance, got.Status)

	edit.Status = models.UnitStatusVacant
	got, err = unitService.Update(ctx, owner, &edit)
	require.NoError(t, err)
	require.Equal(t, models.UnitStatusVacant, got.Status)
}
