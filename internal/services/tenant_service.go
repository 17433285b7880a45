package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Bramtheking/rentalsystemproj/internal/models"
	"github.com/Bramtheking/rentalsystemproj/internal/repositories"
	"github.com/Bramtheking/rentalsystemproj/internal/utils"
)

// TenantStats is the aggregate payload for the tenant dashboard card.
type TenantStats struct {
	Total    int `json:"total_tenants"`
	Active   int `json:"active_tenants"`
	Inactive int `json:"inactive_tenants"`
	MovedOut int `json:"moved_out_tenants"`
}

// TenantService owns the transaction boundary around every tenant
// write. The occupancy synchronizer runs inside that transaction so a
// tenant row and its unit's occupancy state always commit together.
type TenantService struct {
	db           repositories.DB
	tenantRepo   repositories.TenantRepository
	unitRepo     repositories.UnitRepository
	historyRepo  repositories.TenantHistoryRepository
	idGen        *IDGenService
	synchronizer *OccupancySynchronizer
}

func NewTenantService(
	db repositories.DB,
	tenantRepo repositories.TenantRepository,
	unitRepo repositories.UnitRepository,
	historyRepo repositories.TenantHistoryRepository,
	idGen *IDGenService,
	synchronizer *OccupancySynchronizer,
) *TenantService {
	return &TenantService{
		db:           db,
		tenantRepo:   tenantRepo,
		unitRepo:     unitRepo,
		historyRepo:  historyRepo,
		idGen:        idGen,
		synchronizer: synchronizer,
	}
}

/* ---------- writes ---------- */

// Create persists a new tenant, issues its display ID, and — when the
// tenant arrives with a unit assignment — occupies the unit and
// appends the move-in history row, all in one transaction.
func (s *TenantService) Create(ctx context.Context, ownerID uuid.UUID, t *models.Tenant) (*models.Tenant, error) {
	now := time.Now().UTC()

	t.ID = uuid.New()
	t.OwnerID = ownerID
	if t.Status == "" {
		t.Status = models.TenantStatusActive
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	displayID, err := s.idGen.NextTenantID(ctx, ownerID, now)
	if err != nil {
		return nil, err
	}
	t.TenantID = displayID

	txTenants := repositories.NewTenantRepository(tx)
	if err := txTenants.Create(ctx, t); err != nil {
		return nil, err
	}
	if err := s.synchronizer.OnTenantCreated(ctx, tx, t, now); err != nil {
		return nil, wrapDomainError(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	utils.Logger.WithFields(logrus.Fields{
		"tenant_id": t.TenantID,
		"owner_id":  ownerID,
	}).Info("tenant created")

	return s.tenantRepo.GetByID(ctx, t.ID)
}

// Update applies field changes and lets the synchronizer reconcile the
// units when the assignment changed. The pre-update assignment is read
// under a row lock so concurrent mutations of the same tenant
// serialize on the tenant row; each writer sees the previous writer's
// committed assignment.
func (s *TenantService) Update(ctx context.Context, ownerID uuid.UUID, t *models.Tenant) (*models.Tenant, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	txTenants := repositories.NewTenantRepository(tx)
	before, err := txTenants.GetByIDForUpdate(ctx, t.ID)
	if err != nil {
		return nil, err
	}
	if before == nil || before.OwnerID != ownerID {
		return nil, wrapDomainError(utils.ErrNotFound)
	}

	// Generated and owner-scoped fields never change on update.
	t.OwnerID = before.OwnerID
	t.TenantID = before.TenantID
	if t.Status == "" {
		t.Status = before.Status
	}
	if err := txTenants.Update(ctx, t); err != nil {
		return nil, err
	}
	if err := s.synchronizer.OnTenantUpdated(ctx, tx, before.CurrentUnitID, t); err != nil {
		return nil, wrapDomainError(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return s.tenantRepo.GetByID(ctx, t.ID)
}

// Delete removes the tenant and releases its unit in one transaction.
func (s *TenantService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	txTenants := repositories.NewTenantRepository(tx)
	t, err := txTenants.GetByIDForUpdate(ctx, id)
	if err != nil {
		return err
	}
	if t == nil || t.OwnerID != ownerID {
		return wrapDomainError(utils.ErrNotFound)
	}

	if err := s.synchronizer.OnTenantDeleted(ctx, tx, t); err != nil {
		return wrapDomainError(err)
	}
	if err := txTenants.Delete(ctx, id); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return err
	}

	utils.Logger.WithField("tenant_id", t.TenantID).Info("tenant deleted")
	return nil
}

// MoveIn assigns an unassigned tenant to a unit: occupancy flips, the
// tenant becomes Active with the stated move-in date, and a history
// row opens.
func (s *TenantService) MoveIn(ctx context.Context, ownerID, tenantID, unitID uuid.UUID, moveInDate time.Time) (*models.Tenant, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	txTenants := repositories.NewTenantRepository(tx)
	t, err := txTenants.GetByIDForUpdate(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if t == nil || t.OwnerID != ownerID {
		return nil, wrapDomainError(utils.ErrNotFound)
	}
	if t.CurrentUnitID != nil {
		return nil, wrapDomainError(utils.ErrUnitOccupied)
	}

	if err := txTenants.SetAssignment(ctx, t.ID, &unitID, models.TenantStatusActive, &moveInDate, nil); err != nil {
		return nil, err
	}
	t.CurrentUnitID = &unitID
	t.MoveInDate = &moveInDate
	if err := s.synchronizer.OnTenantCreated(ctx, tx, t, moveInDate); err != nil {
		return nil, wrapDomainError(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return s.tenantRepo.GetByID(ctx, tenantID)
}

// MoveOut releases the tenant's unit, marks the tenant Moved Out, and
// closes the open history row with the move-out date and reason.
func (s *TenantService) MoveOut(ctx context.Context, ownerID, tenantID uuid.UUID, moveOutDate time.Time, reason string) (*models.Tenant, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	txTenants := repositories.NewTenantRepository(tx)
	t, err := txTenants.GetByIDForUpdate(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if t == nil || t.OwnerID != ownerID {
		return nil, wrapDomainError(utils.ErrNotFound)
	}
	if t.CurrentUnitID == nil {
		return nil, wrapDomainError(utils.ErrNotAssigned)
	}

	if err := s.synchronizer.OnTenantDeleted(ctx, tx, t); err != nil {
		return nil, wrapDomainError(err)
	}
	if err := txTenants.SetAssignment(ctx, t.ID, nil, models.TenantStatusMovedOut, t.MoveInDate, &moveOutDate); err != nil {
		return nil, err
	}

	txHistory := repositories.NewTenantHistoryRepository(tx)
	if err := txHistory.CloseOpen(ctx, t.ID, moveOutDate, reason); err != nil {
		// A tenant assigned outside the normal flow may have no open
		// history row; the move-out itself still stands.
		utils.Logger.WithField("tenant_id", t.TenantID).
			WithError(err).Warn("no open history row to close on move-out")
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return s.tenantRepo.GetByID(ctx, tenantID)
}

/* ---------- reads ---------- */

func (s *TenantService) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Tenant, error) {
	t, err := s.tenantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil || t.OwnerID != ownerID {
		return nil, wrapDomainError(utils.ErrNotFound)
	}
	return t, nil
}

func (s *TenantService) List(ctx context.Context, ownerID uuid.UUID) ([]*models.Tenant, error) {
	return s.tenantRepo.ListByOwnerID(ctx, ownerID)
}

func (s *TenantService) Search(ctx context.Context, ownerID uuid.UUID, query string, status models.TenantStatusType) ([]*models.Tenant, error) {
	return s.tenantRepo.Search(ctx, ownerID, query, status)
}

func (s *TenantService) Stats(ctx context.Context, ownerID uuid.UUID) (*TenantStats, error) {
	counts, err := s.tenantRepo.CountByStatus(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	stats := &TenantStats{
		Active:   counts[models.TenantStatusActive],
		Inactive: counts[models.TenantStatusInactive],
		MovedOut: counts[models.TenantStatusMovedOut],
	}
	for _, n := range counts {
		stats.Total += n
	}
	return stats, nil
}

func (s *TenantService) History(ctx context.Context, ownerID, tenantID uuid.UUID) ([]*models.TenantHistory, error) {
	if _, err := s.GetByID(ctx, ownerID, tenantID); err != nil {
		return nil, err
	}
	return s.historyRepo.ListByTenantID(ctx, tenantID)
}

// AvailableUnits lists the vacant units a tenant could be assigned to.
func (s *TenantService) AvailableUnits(ctx context.Context, ownerID uuid.UUID) ([]*models.Unit, error) {
	return s.unitRepo.ListByOwnerAndStatus(ctx, ownerID, models.UnitStatusVacant)
}
