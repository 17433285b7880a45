package repositories

import (
	"context"
	"strconv"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/Bramtheking/rentalsystemproj/internal/models"
)

/* ───────────── public interface ───────────── */

type UnitRepository interface {
	Create(ctx context.Context, u *models.Unit) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Unit, error)
	// GetByIDForUpdate locks the row until the surrounding transaction
	// ends. Only meaningful when the repository is bound to a tx.
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Unit, error)
	GetByOwnerAndUnitID(ctx context.Context, ownerID uuid.UUID, unitID string) (*models.Unit, error)
	ListByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*models.Unit, error)
	ListByOwnerAndStatus(ctx context.Context, ownerID uuid.UUID, status models.UnitStatusType) ([]*models.Unit, error)
	Search(ctx context.Context, ownerID uuid.UUID, query string, status models.UnitStatusType) ([]*models.Unit, error)
	CountByStatus(ctx context.Context, ownerID uuid.UUID) (map[models.UnitStatusType]int, error)

	Update(ctx context.Context, u *models.Unit) error
	UpdateIfVersion(ctx context.Context, u *models.Unit, expected int64) (pgconn.CommandTag, error)
	UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Unit) error) error

	// SetOccupancy writes the occupancy-derived fields (status plus the
	// denormalized tenant contact columns). The occupancy synchronizer
	// is the only caller.
	SetOccupancy(ctx context.Context, id uuid.UUID, status models.UnitStatusType, tenantName, tenantPhone, tenantEmail string) error

	SoftDelete(ctx context.Context, id uuid.UUID) error
}

/* ───────────── implementation ───────────── */

type unitRepo struct {
	*BaseVersionedRepo[*models.Unit]
	db DB
}

func NewUnitRepository(db DB) UnitRepository {
	r := &unitRepo{db: db}
	selectStmt := baseSelectUnit() + " WHERE id=$1 AND deleted_at IS NULL"
	r.BaseVersionedRepo = NewBaseRepo(db, selectStmt, scanUnit)
	return r
}

/* ---------- create ---------- */

func (r *unitRepo) Create(ctx context.Context, u *models.Unit) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO units (
			id, owner_id, unit_id, name, unit_type, status,
			rent, deposit, location, features, notes,
			tenant_name, tenant_phone, tenant_email,
			created_at, updated_at, row_version
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,'','','', NOW(), NOW(), 1)
	`, u.ID, u.OwnerID, u.UnitID, u.Name, u.UnitType, u.Status,
		u.Rent, u.Deposit, u.Location, u.Features, u.Notes)
	return err
}

/* ---------- reads ---------- */

func (r *unitRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Unit, error) {
	return r.BaseVersionedRepo.GetByID(ctx, id.String())
}

func (r *unitRepo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Unit, error) {
	row := r.db.QueryRow(ctx, baseSelectUnit()+" WHERE id=$1 AND deleted_at IS NULL FOR UPDATE", id)
	return scanUnit(row)
}

func (r *unitRepo) GetByOwnerAndUnitID(ctx context.Context, ownerID uuid.UUID, unitID string) (*models.Unit, error) {
	row := r.db.QueryRow(ctx, baseSelectUnit()+" WHERE owner_id=$1 AND unit_id=$2 AND deleted_at IS NULL", ownerID, unitID)
	return scanUnit(row)
}

func (r *unitRepo) ListByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*models.Unit, error) {
	rows, err := r.db.Query(ctx, baseSelectUnit()+" WHERE owner_id=$1 AND deleted_at IS NULL ORDER BY unit_id", ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanUnits(rows)
}

func (r *unitRepo) ListByOwnerAndStatus(ctx context.Context, ownerID uuid.UUID, status models.UnitStatusType) ([]*models.Unit, error) {
	rows, err := r.db.Query(ctx,
		baseSelectUnit()+" WHERE owner_id=$1 AND status=$2 AND deleted_at IS NULL ORDER BY unit_id",
		ownerID, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanUnits(rows)
}

func (r *unitRepo) Search(ctx context.Context, ownerID uuid.UUID, query string, status models.UnitStatusType) ([]*models.Unit, error) {
	sql := baseSelectUnit() + " WHERE owner_id=$1 AND deleted_at IS NULL"
	args := []any{ownerID}
	if query != "" {
		sql += ` AND (unit_id ILIKE '%'||$2||'%' OR name ILIKE '%'||$2||'%' OR notes ILIKE '%'||$2||'%')`
		args = append(args, query)
	}
	if status != "" {
		sql += ` AND status=$` + strconv.Itoa(len(args)+1)
		args = append(args, status)
	}
	sql += " ORDER BY unit_id"

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanUnits(rows)
}

func (r *unitRepo) CountByStatus(ctx context.Context, ownerID uuid.UUID) (map[models.UnitStatusType]int, error) {
	rows, err := r.db.Query(ctx, `
		SELECT status, COUNT(*) FROM units
		WHERE owner_id=$1 AND deleted_at IS NULL
		GROUP BY status
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[models.UnitStatusType]int)
	for rows.Next() {
		var status models.UnitStatusType
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		out[status] = n
	}
	return out, rows.Err()
}

/* ---------- update / delete ---------- */

func (r *unitRepo) Update(ctx context.Context, u *models.Unit) error {
	_, err := r.update(ctx, u, false, 0)
	return err
}

func (r *unitRepo) UpdateIfVersion(ctx context.Context, u *models.Unit, expected int64) (pgconn.CommandTag, error) {
	return r.update(ctx, u, true, expected)
}

func (r *unitRepo) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Unit) error) error {
	return r.BaseVersionedRepo.UpdateWithRetry(ctx, id.String(), mutate, r.UpdateIfVersion)
}

func (r *unitRepo) update(ctx context.Context, u *models.Unit, check bool, expected int64) (pgconn.CommandTag, error) {
	sql := `
		UPDATE units
		SET unit_id=$1, name=$2, unit_type=$3, rent=$4, deposit=$5,
		    location=$6, features=$7, notes=$8, updated_at=NOW()
	`
	args := []any{u.UnitID, u.Name, u.UnitType, u.Rent, u.Deposit, u.Location, u.Features, u.Notes}
	if check {
		sql += `, row_version=row_version+1 WHERE id=$9 AND row_version=$10`
		args = append(args, u.ID, expected)
	} else {
		sql += ` WHERE id=$9`
		args = append(args, u.ID)
	}
	return r.db.Exec(ctx, sql, args...)
}

func (r *unitRepo) SetOccupancy(ctx context.Context, id uuid.UUID, status models.UnitStatusType, tenantName, tenantPhone, tenantEmail string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE units
		SET status=$1, tenant_name=$2, tenant_phone=$3, tenant_email=$4,
		    row_version=row_version+1, updated_at=NOW()
		WHERE id=$5 AND deleted_at IS NULL
	`, status, tenantName, tenantPhone, tenantEmail, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *unitRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `UPDATE units SET deleted_at=NOW() WHERE id=$1 AND deleted_at IS NULL`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

/* ---------- internals ---------- */

func baseSelectUnit() string {
	return `
		SELECT id, owner_id, unit_id, name, unit_type, status,
		       rent, deposit, location, features, notes,
		       tenant_name, tenant_phone, tenant_email,
		       created_at, updated_at, row_version
		FROM units`
}

func scanUnit(row pgx.Row) (*models.Unit, error) {
	var u models.Unit
	if err := row.Scan(
		&u.ID, &u.OwnerID, &u.UnitID, &u.Name, &u.UnitType, &u.Status,
		&u.Rent, &u.Deposit, &u.Location, &u.Features, &u.Notes,
		&u.TenantName, &u.TenantPhone, &u.TenantEmail,
		&u.CreatedAt, &u.UpdatedAt, &u.RowVersion,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func scanUnits(rows pgx.Rows) ([]*models.Unit, error) {
	var out []*models.Unit
	for rows.Next() {
		u, err := scanUnit(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
