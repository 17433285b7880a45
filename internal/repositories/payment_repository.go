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

// PaymentStats is the aggregate view of an owner's payment ledger.
// Overdue means pending past the due date.
type PaymentStats struct {
	Total     int
	Completed int
	Pending   int
	Failed    int
	Overdue   int

	TotalAmount   float64
	PendingAmount float64
	OverdueAmount float64
}

// MonthlyPaymentStat is one month's completed-payment total.
type MonthlyPaymentStat struct {
	Year   int
	Month  time.Month
	Amount float64
	Count  int
}

type PaymentRepository interface {
	Create(ctx context.Context, p *models.Payment) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Payment, error)
	ListByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*models.Payment, error)
	ListOverdue(ctx context.Context, ownerID uuid.UUID, asOf time.Time) ([]*models.Payment, error)
	// ListPendingDueBefore returns every owner's pending payments with
	// a due date before the cutoff. The reminder scanner passes a
	// cutoff in the near future so upcoming payments are included.
	ListPendingDueBefore(ctx context.Context, cutoff time.Time) ([]*models.Payment, error)
	Search(ctx context.Context, ownerID uuid.UUID, query string, status models.PaymentStatusType, overdueOnly bool, asOf time.Time) ([]*models.Payment, error)
	Stats(ctx context.Context, ownerID uuid.UUID, asOf time.Time) (*PaymentStats, error)
	MonthlyStats(ctx context.Context, ownerID uuid.UUID, months int) ([]MonthlyPaymentStat, error)

	Update(ctx context.Context, p *models.Payment) error
	UpdateIfVersion(ctx context.Context, p *models.Payment, expected int64) (pgconn.CommandTag, error)
	UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Payment) error) error

	Delete(ctx context.Context, id uuid.UUID) error
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type paymentRepo struct {
	*BaseVersionedRepo[*models.Payment]
	db DB
}

func NewPaymentRepository(db DB) PaymentRepository {
	r := &paymentRepo{db: db}
	selectStmt := baseSelectPayment() + " WHERE id=$1"
	r.BaseVersionedRepo = NewBaseRepo(db, selectStmt, scanPayment)
	return r
}

func (r *paymentRepo) Create(ctx context.Context, p *models.Payment) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO payments (
			id, owner_id, payment_id, receipt_number,
			tenant_id, unit_id,
			payment_type, amount, payment_method, status,
			payment_date, due_date,
			description, reference_number,
			created_at, updated_at, row_version
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14, NOW(), NOW(), 1)
	`, p.ID, p.OwnerID, p.PaymentID, p.ReceiptNumber,
		p.TenantID, p.UnitID,
		p.PaymentType, p.Amount, p.PaymentMethod, p.Status,
		p.PaymentDate, p.DueDate,
		p.Description, p.ReferenceNumber)
	return err
}

/* ---------- reads ---------- */

func (r *paymentRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	return r.BaseVersionedRepo.GetByID(ctx, id.String())
}

func (r *paymentRepo) ListByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*models.Payment, error) {
	rows, err := r.db.Query(ctx,
		baseSelectPayment()+" WHERE owner_id=$1 ORDER BY payment_date DESC, created_at DESC", ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPayments(rows)
}

func (r *paymentRepo) ListOverdue(ctx context.Context, ownerID uuid.UUID, asOf time.Time) ([]*models.Payment, error) {
	rows, err := r.db.Query(ctx,
		baseSelectPayment()+" WHERE owner_id=$1 AND status=$2 AND due_date<$3 ORDER BY due_date",
		ownerID, models.PaymentStatusPending, asOf)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPayments(rows)
}

func (r *paymentRepo) ListPendingDueBefore(ctx context.Context, cutoff time.Time) ([]*models.Payment, error) {
	rows, err := r.db.Query(ctx,
		baseSelectPayment()+" WHERE status=$1 AND due_date<$2 ORDER BY due_date",
		models.PaymentStatusPending, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPayments(rows)
}

func (r *paymentRepo) Search(ctx context.Context, ownerID uuid.UUID, query string, status models.PaymentStatusType, overdueOnly bool, asOf time.Time) ([]*models.Payment, error) {
	sql := baseSelectPayment() + " WHERE owner_id=$1"
	args := []any{ownerID}
	if query != "" {
		sql += ` AND (payment_id ILIKE '%'||$2||'%' OR reference_number ILIKE '%'||$2||'%' OR description ILIKE '%'||$2||'%')`
		args = append(args, query)
	}
	if overdueOnly {
		sql += ` AND status=$` + strconv.Itoa(len(args)+1) + ` AND due_date<$` + strconv.Itoa(len(args)+2)
		args = append(args, models.PaymentStatusPending, asOf)
	} else if status != "" {
		sql += ` AND status=$` + strconv.Itoa(len(args)+1)
		args = append(args, status)
	}
	sql += " ORDER BY payment_date DESC, created_at DESC"

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPayments(rows)
}

func (r *paymentRepo) Stats(ctx context.Context, ownerID uuid.UUID, asOf time.Time) (*PaymentStats, error) {
	var s PaymentStats
	err := r.db.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status='completed'),
			COUNT(*) FILTER (WHERE status='pending'),
			COUNT(*) FILTER (WHERE status='failed'),
			COUNT(*) FILTER (WHERE status='pending' AND due_date<$2),
			COALESCE(SUM(amount) FILTER (WHERE status='completed'), 0),
			COALESCE(SUM(amount) FILTER (WHERE status='pending'), 0),
			COALESCE(SUM(amount) FILTER (WHERE status='pending' AND due_date<$2), 0)
		FROM payments
		WHERE owner_id=$1
	`, ownerID, asOf).Scan(
		&s.Total, &s.Completed, &s.Pending, &s.Failed, &s.Overdue,
		&s.TotalAmount, &s.PendingAmount, &s.OverdueAmount,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *paymentRepo) MonthlyStats(ctx context.Context, ownerID uuid.UUID, months int) ([]MonthlyPaymentStat, error) {
	rows, err := r.db.Query(ctx, `
		SELECT EXTRACT(YEAR FROM payment_date)::int,
		       EXTRACT(MONTH FROM payment_date)::int,
		       COALESCE(SUM(amount),0),
		       COUNT(*)
		FROM payments
		WHERE owner_id=$1 AND status='completed'
		  AND payment_date >= date_trunc('month', NOW()) - ($2 || ' months')::interval
		GROUP BY 1, 2
		ORDER BY 1, 2
	`, ownerID, months)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []MonthlyPaymentStat
	for rows.Next() {
		var m MonthlyPaymentStat
		var month int
		if err := rows.Scan(&m.Year, &month, &m.Amount, &m.Count); err != nil {
			return nil, err
		}
		m.Month = time.Month(month)
		out = append(out, m)
	}
	return out, rows.Err()
}

/* ---------- update / delete ---------- */

func (r *paymentRepo) Update(ctx context.Context, p *models.Payment) error {
	_, err := r.update(ctx, p, false, 0)
	return err
}

func (r *paymentRepo) UpdateIfVersion(ctx context.Context, p *models.Payment, expected int64) (pgconn.CommandTag, error) {
	return r.update(ctx, p, true, expected)
}

func (r *paymentRepo) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Payment) error) error {
	return r.BaseVersionedRepo.UpdateWithRetry(ctx, id.String(), mutate, r.UpdateIfVersion)
}

func (r *paymentRepo) update(ctx context.Context, p *models.Payment, check bool, expected int64) (pgconn.CommandTag, error) {
	sql := `
		UPDATE payments
		SET tenant_id=$1, unit_id=$2, payment_type=$3, amount=$4, payment_method=$5,
		    status=$6, payment_date=$7, due_date=$8, description=$9, reference_number=$10,
		    updated_at=NOW()
	`
	args := []any{
		p.TenantID, p.UnitID, p.PaymentType, p.Amount, p.PaymentMethod,
		p.Status, p.PaymentDate, p.DueDate, p.Description, p.ReferenceNumber,
	}
	if check {
		sql += `, row_version=row_version+1 WHERE id=$11 AND row_version=$12`
		args = append(args, p.ID, expected)
	} else {
		sql += ` WHERE id=$11`
		args = append(args, p.ID)
	}
	return r.db.Exec(ctx, sql, args...)
}

func (r *paymentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM payments WHERE id=$1`, id)
	return err
}

/* ---------- internals ---------- */

func baseSelectPayment() string {
	return `
		SELECT id, owner_id, payment_id, receipt_number,
		       tenant_id, unit_id,
		       payment_type, amount, payment_method, status,
		       payment_date, due_date,
		       description, reference_number,
		       created_at, updated_at, row_version
		FROM payments`
}

func scanPayment(row pgx.Row) (*models.Payment, error) {
	var p models.Payment
	if err := row.Scan(
		&p.ID, &p.OwnerID, &p.PaymentID, &p.ReceiptNumber,
		&p.TenantID, &p.UnitID,
		&p.PaymentType, &p.Amount, &p.PaymentMethod, &p.Status,
		&p.PaymentDate, &p.DueDate,
		&p.Description, &p.ReferenceNumber,
		&p.CreatedAt, &p.UpdatedAt, &p.RowVersion,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func scanPayments(rows pgx.Rows) ([]*models.Payment, error) {
	var out []*models.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
