package repositories

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/Bramtheking/rentalsystemproj/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type TenantRepository interface {
	Create(ctx context.Context, t *models.Tenant) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error)
	// GetByIDForUpdate locks the tenant row until the surrounding
	// transaction ends. Only meaningful when the repository is bound
	// to a tx.
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Tenant, error)
	ListByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*models.Tenant, error)
	ListActiveWithUnit(ctx context.Context, ownerID uuid.UUID) ([]*models.Tenant, error)
	Search(ctx context.Context, ownerID uuid.UUID, query string, status models.TenantStatusType) ([]*models.Tenant, error)
	CountByStatus(ctx context.Context, ownerID uuid.UUID) (map[models.TenantStatusType]int, error)
	// CountReferencingUnit counts tenants whose current_unit points at
	// the given unit. Used by the unit deletion policy and by the
	// occupancy conflict check.
	CountReferencingUnit(ctx context.Context, unitID uuid.UUID, excludeTenant *uuid.UUID) (int, error)

	Update(ctx context.Context, t *models.Tenant) error
	UpdateIfVersion(ctx context.Context, t *models.Tenant, expected int64) (pgconn.CommandTag, error)
	UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Tenant) error) error

	// SetAssignment writes only the occupancy-related columns. Used by
	// the explicit move-in / move-out operations.
	SetAssignment(ctx context.Context, id uuid.UUID, unitID *uuid.UUID, status models.TenantStatusType, moveInDate, moveOutDate *time.Time) error

	Delete(ctx context.Context, id uuid.UUID) error
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type tenantRepo struct {
	*BaseVersionedRepo[*models.Tenant]
	db DB
}

func NewTenantRepository(db DB) TenantRepository {
	r := &tenantRepo{db: db}
	selectStmt := baseSelectTenant() + " WHERE id=$1"
	r.BaseVersionedRepo = NewBaseRepo(db, selectStmt, scanTenant)
	return r
}

func (r *tenantRepo) Create(ctx context.Context, t *models.Tenant) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO tenants (
			id, owner_id, tenant_id,
			first_name, last_name, email, phone, national_id, date_of_birth, gender,
			permanent_address, emergency_contact_name, emergency_contact_phone, emergency_contact_relationship,
			occupation, employer_name, employer_phone, monthly_income,
			current_unit_id, status,
			move_in_date, move_out_date, lease_start_date, lease_end_date,
			security_deposit, monthly_rent, notes,
			created_at, updated_at, row_version
		) VALUES (
			$1,$2,$3,$4,$5,$6,$7,$8,$9,$10,
			$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,
			$21,$22,$23,$24,$25,$26,$27, NOW(), NOW(), 1
		)
	`,
		t.ID, t.OwnerID, t.TenantID,
		t.FirstName, t.LastName, t.Email, t.Phone, t.NationalID, t.DateOfBirth, t.Gender,
		t.PermanentAddress, t.EmergencyContactName, t.EmergencyContactPhone, t.EmergencyContactRelationship,
		t.Occupation, t.EmployerName, t.EmployerPhone, t.MonthlyIncome,
		t.CurrentUnitID, t.Status,
		t.MoveInDate, t.MoveOutDate, t.LeaseStartDate, t.LeaseEndDate,
		t.SecurityDeposit, t.MonthlyRent, t.Notes,
	)
	return err
}

/* ---------- reads ---------- */

func (r *tenantRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error) {
	return r.BaseVersionedRepo.GetByID(ctx, id.String())
}

func (r *tenantRepo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Tenant, error) {
	row := r.db.QueryRow(ctx, baseSelectTenant()+" WHERE id=$1 FOR UPDATE", id)
	return scanTenant(row)
}

func (r *tenantRepo) ListByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*models.Tenant, error) {
	rows, err := r.db.Query(ctx, baseSelectTenant()+" WHERE owner_id=$1 ORDER BY created_at DESC", ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTenants(rows)
}

func (r *tenantRepo) ListActiveWithUnit(ctx context.Context, ownerID uuid.UUID) ([]*models.Tenant, error) {
	rows, err := r.db.Query(ctx,
		baseSelectTenant()+" WHERE owner_id=$1 AND status=$2 AND current_unit_id IS NOT NULL ORDER BY tenant_id",
		ownerID, models.TenantStatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTenants(rows)
}

func (r *tenantRepo) Search(ctx context.Context, ownerID uuid.UUID, query string, status models.TenantStatusType) ([]*models.Tenant, error) {
	sql := baseSelectTenant() + " WHERE owner_id=$1"
	args := []any{ownerID}
	if query != "" {
		sql += ` AND (tenant_id ILIKE '%'||$2||'%' OR first_name ILIKE '%'||$2||'%'
			OR last_name ILIKE '%'||$2||'%' OR email ILIKE '%'||$2||'%')`
		args = append(args, query)
	}
	if status != "" {
		sql += ` AND status=$` + strconv.Itoa(len(args)+1)
		args = append(args, status)
	}
	sql += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTenants(rows)
}

func (r *tenantRepo) CountByStatus(ctx context.Context, ownerID uuid.UUID) (map[models.TenantStatusType]int, error) {
	rows, err := r.db.Query(ctx, `
		SELECT status, COUNT(*) FROM tenants
		WHERE owner_id=$1
		GROUP BY status
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[models.TenantStatusType]int)
	for rows.Next() {
		var status models.TenantStatusType
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		out[status] = n
	}
	return out, rows.Err()
}

func (r *tenantRepo) CountReferencingUnit(ctx context.Context, unitID uuid.UUID, excludeTenant *uuid.UUID) (int, error) {
	sql := `SELECT COUNT(*) FROM tenants WHERE current_unit_id=$1`
	args := []any{unitID}
	if excludeTenant != nil {
		sql += ` AND id<>$2`
		args = append(args, *excludeTenant)
	}
	var n int
	err := r.db.QueryRow(ctx, sql, args...).Scan(&n)
	return n, err
}

/* ---------- update / delete ---------- */

func (r *tenantRepo) Update(ctx context.Context, t *models.Tenant) error {
	_, err := r.update(ctx, t, false, 0)
	return err
}

func (r *tenantRepo) UpdateIfVersion(ctx context.Context, t *models.Tenant, expected int64) (pgconn.CommandTag, error) {
	return r.update(ctx, t, true, expected)
}

func (r *tenantRepo) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Tenant) error) error {
	return r.BaseVersionedRepo.UpdateWithRetry(ctx, id.String(), mutate, r.UpdateIfVersion)
}

func (r *tenantRepo) update(ctx context.Context, t *models.Tenant, check bool, expected int64) (pgconn.CommandTag, error) {
	sql := `
		UPDATE tenants
		SET first_name=$1, last_name=$2, email=$3, phone=$4, national_id=$5,
		    date_of_birth=$6, gender=$7, permanent_address=$8,
		    emergency_contact_name=$9, emergency_contact_phone=$10, emergency_contact_relationship=$11,
		    occupation=$12, employer_name=$13, employer_phone=$14, monthly_income=$15,
		    current_unit_id=$16, status=$17,
		    move_in_date=$18, move_out_date=$19, lease_start_date=$20, lease_end_date=$21,
		    security_deposit=$22, monthly_rent=$23, notes=$24, updated_at=NOW()
	`
	args := []any{
		t.FirstName, t.LastName, t.Email, t.Phone, t.NationalID,
		t.DateOfBirth, t.Gender, t.PermanentAddress,
		t.EmergencyContactName, t.EmergencyContactPhone, t.EmergencyContactRelationship,
		t.Occupation, t.EmployerName, t.EmployerPhone, t.MonthlyIncome,
		t.CurrentUnitID, t.Status,
		t.MoveInDate, t.MoveOutDate, t.LeaseStartDate, t.LeaseEndDate,
		t.SecurityDeposit, t.MonthlyRent, t.Notes,
	}
	if check {
		sql += `, row_version=row_version+1 WHERE id=$25 AND row_version=$26`
		args = append(args, t.ID, expected)
	} else {
		sql += ` WHERE id=$25`
		args = append(args, t.ID)
	}
	return r.db.Exec(ctx, sql, args...)
}

func (r *tenantRepo) SetAssignment(ctx context.Context, id uuid.UUID, unitID *uuid.UUID, status models.TenantStatusType, moveInDate, moveOutDate *time.Time) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE tenants
		SET current_unit_id=$1, status=$2, move_in_date=$3, move_out_date=$4,
		    row_version=row_version+1, updated_at=NOW()
		WHERE id=$5
	`, unitID, status, moveInDate, moveOutDate, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *tenantRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM tenants WHERE id=$1`, id)
	return err
}

/* ---------- internals ---------- */

func baseSelectTenant() string {
	return `
		SELECT id, owner_id, tenant_id,
		       first_name, last_name, email, phone, national_id, date_of_birth, gender,
		       permanent_address, emergency_contact_name, emergency_contact_phone, emergency_contact_relationship,
		       occupation, employer_name, employer_phone, monthly_income,
		       current_unit_id, status,
		       move_in_date, move_out_date, lease_start_date, lease_end_date,
		       security_deposit, monthly_rent, notes,
		       created_at, updated_at, row_version
		FROM tenants`
}

func scanTenant(row pgx.Row) (*models.Tenant, error) {
	var t models.Tenant
	if err := row.Scan(
		&t.ID, &t.OwnerID, &t.TenantID,
		&t.FirstName, &t.LastName, &t.Email, &t.Phone, &t.NationalID, &t.DateOfBirth, &t.Gender,
		&t.PermanentAddress, &t.EmergencyContactName, &t.EmergencyContactPhone, &t.EmergencyContactRelationship,
		&t.Occupation, &t.EmployerName, &t.EmployerPhone, &t.MonthlyIncome,
		&t.CurrentUnitID, &t.Status,
		&t.MoveInDate, &t.MoveOutDate, &t.LeaseStartDate, &t.LeaseEndDate,
		&t.SecurityDeposit, &t.MonthlyRent, &t.Notes,
		&t.CreatedAt, &t.UpdatedAt, &t.RowVersion,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func scanTenants(rows pgx.Rows) ([]*models.Tenant, error) {
	var out []*models.Tenant
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
