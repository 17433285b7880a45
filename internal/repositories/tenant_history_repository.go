package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"

	"github.com/Bramtheking/rentalsystemproj/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type TenantHistoryRepository interface {
	Create(ctx context.Context, h *models.TenantHistory) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.TenantHistory, error)
	ListByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*models.TenantHistory, error)
	ListByTenantID(ctx context.Context, tenantID uuid.UUID) ([]*models.TenantHistory, error)

	// CloseOpen stamps the move-out date and reason on the tenant's
	// most recent open ledger row (move_out_date IS NULL). Returns
	// pgx.ErrNoRows if no open row exists.
	CloseOpen(ctx context.Context, tenantID uuid.UUID, moveOutDate time.Time, reason string) error
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type tenantHistoryRepo struct {
	db DB
}

func NewTenantHistoryRepository(db DB) TenantHistoryRepository {
	return &tenantHistoryRepo{db: db}
}

func (r *tenantHistoryRepo) Create(ctx context.Context, h *models.TenantHistory) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO tenant_history (
			id, owner_id, tenant_id, unit_id,
			move_in_date, move_out_date,
			monthly_rent, security_deposit, move_out_reason,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9, NOW(), NOW())
	`, h.ID, h.OwnerID, h.TenantID, h.UnitID,
		h.MoveInDate, h.MoveOutDate,
		h.MonthlyRent, h.SecurityDeposit, h.MoveOutReason)
	return err
}

func (r *tenantHistoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.TenantHistory, error) {
	row := r.db.QueryRow(ctx, baseSelectHistory()+" WHERE id=$1", id)
	return scanHistory(row)
}

func (r *tenantHistoryRepo) ListByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*models.TenantHistory, error) {
	rows, err := r.db.Query(ctx, baseSelectHistory()+" WHERE owner_id=$1 ORDER BY move_in_date DESC", ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanHistories(rows)
}

func (r *tenantHistoryRepo) ListByTenantID(ctx context.Context, tenantID uuid.UUID) ([]*models.TenantHistory, error) {
	rows, err := r.db.Query(ctx, baseSelectHistory()+" WHERE tenant_id=$1 ORDER BY move_in_date DESC", tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanHistories(rows)
}

func (r *tenantHistoryRepo) CloseOpen(ctx context.Context, tenantID uuid.UUID, moveOutDate time.Time, reason string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE tenant_history
		SET move_out_date=$1, move_out_reason=$2, updated_at=NOW()
		WHERE id = (
			SELECT id FROM tenant_history
			WHERE tenant_id=$3 AND move_out_date IS NULL
			ORDER BY move_in_date DESC
			LIMIT 1
		)
	`, moveOutDate, reason, tenantID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

/* ---------- internals ---------- */

func baseSelectHistory() string {
	return `
		SELECT id, owner_id, tenant_id, unit_id,
		       move_in_date, move_out_date,
		       monthly_rent, security_deposit, move_out_reason,
		       created_at, updated_at
		FROM tenant_history`
}

func scanHistory(row pgx.Row) (*models.TenantHistory, error) {
	var h models.TenantHistory
	var moveOut pgtype.Timestamptz
	if err := row.Scan(
		&h.ID, &h.OwnerID, &h.TenantID, &h.UnitID,
		&h.MoveInDate, &moveOut,
		&h.MonthlyRent, &h.SecurityDeposit, &h.MoveOutReason,
		&h.CreatedAt, &h.UpdatedAt,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if moveOut.Status == pgtype.Present {
		h.MoveOutDate = &moveOut.Time
	}
	return &h, nil
}

func scanHistories(rows pgx.Rows) ([]*models.TenantHistory, error) {
	var out []*models.TenantHistory
	for rows.Next() {
		h, err := scanHistory(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}
