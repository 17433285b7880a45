package repositories

import (
	"context"
	"strconv"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/Bramtheking/rentalsystemproj/internal/models"
)

// DamageStats counts an owner's damage reports by workflow state.
type DamageStats struct {
	Total      int
	Pending    int
	InProgress int
	Completed  int
	Cancelled  int
	Repaired   int
	Unrepaired int

	TotalEstimatedCost float64
	TotalRepairCost    float64
}

type DamageReportRepository interface {
	Create(ctx context.Context, d *models.DamageReport) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.DamageReport, error)
	ListByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*models.DamageReport, error)
	ListByUnitID(ctx context.Context, unitID uuid.UUID) ([]*models.DamageReport, error)
	Search(ctx context.Context, ownerID uuid.UUID, query string, status models.DamageStatusType) ([]*models.DamageReport, error)
	Stats(ctx context.Context, ownerID uuid.UUID) (*DamageStats, error)

	Update(ctx context.Context, d *models.DamageReport) error
	UpdateIfVersion(ctx context.Context, d *models.DamageReport, expected int64) (pgconn.CommandTag, error)
	UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.DamageReport) error) error

	Delete(ctx context.Context, id uuid.UUID) error
}

type damageReportRepo struct {
	*BaseVersionedRepo[*models.DamageReport]
	db DB
}

func NewDamageReportRepository(db DB) DamageReportRepository {
	r := &damageReportRepo{db: db}
	selectStmt := baseSelectDamageReport() + " WHERE id=$1"
	r.BaseVersionedRepo = NewBaseRepo(db, selectStmt, scanDamageReport)
	return r
}

func (r *damageReportRepo) Create(ctx context.Context, d *models.DamageReport) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO damage_reports (
			id, owner_id, unit_id,
			title, description, severity, status,
			estimated_cost,
			repair_completed, repair_date, repair_cost, repair_notes,
			created_at, updated_at, row_version
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12, NOW(), NOW(), 1)
	`, d.ID, d.OwnerID, d.UnitID,
		d.Title, d.Description, d.Severity, d.Status,
		d.EstimatedCost,
		d.RepairCompleted, d.RepairDate, d.RepairCost, d.RepairNotes)
	return err
}

func (r *damageReportRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.DamageReport, error) {
	return r.BaseVersionedRepo.GetByID(ctx, id.String())
}

func (r *damageReportRepo) ListByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*models.DamageReport, error) {
	rows, err := r.db.Query(ctx,
		baseSelectDamageReport()+" WHERE owner_id=$1 ORDER BY created_at DESC", ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDamageReports(rows)
}

func (r *damageReportRepo) ListByUnitID(ctx context.Context, unitID uuid.UUID) ([]*models.DamageReport, error) {
	rows, err := r.db.Query(ctx,
		baseSelectDamageReport()+" WHERE unit_id=$1 ORDER BY created_at DESC", unitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDamageReports(rows)
}

func (r *damageReportRepo) Search(ctx context.Context, ownerID uuid.UUID, query string, status models.DamageStatusType) ([]*models.DamageReport, error) {
	sql := baseSelectDamageReport() + " WHERE owner_id=$1"
	args := []any{ownerID}
	if query != "" {
		sql += ` AND (title ILIKE '%'||$2||'%' OR description ILIKE '%'||$2||'%')`
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
	return scanDamageReports(rows)
}

func (r *damageReportRepo) Stats(ctx context.Context, ownerID uuid.UUID) (*DamageStats, error) {
	var s DamageStats
	err := r.db.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status='Pending'),
			COUNT(*) FILTER (WHERE status='In Progress'),
			COUNT(*) FILTER (WHERE status='Completed'),
			COUNT(*) FILTER (WHERE status='Cancelled'),
			COUNT(*) FILTER (WHERE repair_completed),
			COUNT(*) FILTER (WHERE NOT repair_completed),
			COALESCE(SUM(estimated_cost), 0),
			COALESCE(SUM(repair_cost) FILTER (WHERE repair_completed), 0)
		FROM damage_reports
		WHERE owner_id=$1
	`, ownerID).Scan(
		&s.Total, &s.Pending, &s.InProgress, &s.Completed, &s.Cancelled,
		&s.Repaired, &s.Unrepaired,
		&s.TotalEstimatedCost, &s.TotalRepairCost,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *damageReportRepo) Update(ctx context.Context, d *models.DamageReport) error {
	_, err := r.update(ctx, d, false, 0)
	return err
}

func (r *damageReportRepo) UpdateIfVersion(ctx context.Context, d *models.DamageReport, expected int64) (pgconn.CommandTag, error) {
	return r.update(ctx, d, true, expected)
}

func (r *damageReportRepo) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.DamageReport) error) error {
	return r.BaseVersionedRepo.UpdateWithRetry(ctx, id.String(), mutate, r.UpdateIfVersion)
}

func (r *damageReportRepo) update(ctx context.Context, d *models.DamageReport, check bool, expected int64) (pgconn.CommandTag, error) {
	sql := `
		UPDATE damage_reports
		SET title=$1, description=$2, severity=$3, status=$4,
		    estimated_cost=$5,
		    repair_completed=$6, repair_date=$7, repair_cost=$8, repair_notes=$9,
		    updated_at=NOW()
	`
	args := []any{
		d.Title, d.Description, d.Severity, d.Status,
		d.EstimatedCost,
		d.RepairCompleted, d.RepairDate, d.RepairCost, d.RepairNotes,
	}
	if check {
		sql += `, row_version=row_version+1 WHERE id=$10 AND row_version=$11`
		args = append(args, d.ID, expected)
	} else {
		sql += ` WHERE id=$10`
		args = append(args, d.ID)
	}
	return r.db.Exec(ctx, sql, args...)
}

func (r *damageReportRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM damage_reports WHERE id=$1`, id)
	return err
}

func baseSelectDamageReport() string {
	return `
		SELECT id, owner_id, unit_id,
		       title, description, severity, status,
		       estimated_cost,
		       repair_completed, repair_date, repair_cost, repair_notes,
		       created_at, updated_at, row_version
		FROM damage_reports`
}

func scanDamageReport(row pgx.Row) (*models.DamageReport, error) {
	var d models.DamageReport
	if err := row.Scan(
		&d.ID, &d.OwnerID, &d.UnitID,
		&d.Title, &d.Description, &d.Severity, &d.Status,
		&d.EstimatedCost,
		&d.RepairCompleted, &d.RepairDate, &d.RepairCost, &d.RepairNotes,
		&d.CreatedAt, &d.UpdatedAt, &d.RowVersion,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

func scanDamageReports(rows pgx.Rows) ([]*models.DamageReport, error) {
	var out []*models.DamageReport
	for rows.Next() {
		d, err := scanDamageReport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
