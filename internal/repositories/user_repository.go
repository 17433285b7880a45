package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/Bramtheking/rentalsystemproj/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByExternalUID(ctx context.Context, externalUID string) (*models.User, error)
	Update(ctx context.Context, u *models.User) error
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type userRepo struct {
	db DB
}

func NewUserRepository(db DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, u *models.User) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (
			id, external_uid, email, first_name, last_name, phone_number,
			is_active, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,TRUE, NOW(), NOW())
	`, u.ID, u.ExternalUID, u.Email, u.FirstName, u.LastName, u.PhoneNumber)
	return err
}

func (r *userRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	row := r.db.QueryRow(ctx, baseSelectUser()+" WHERE id=$1", id)
	return scanUser(row)
}

func (r *userRepo) GetByExternalUID(ctx context.Context, externalUID string) (*models.User, error) {
	row := r.db.QueryRow(ctx, baseSelectUser()+" WHERE external_uid=$1", externalUID)
	return scanUser(row)
}

func (r *userRepo) Update(ctx context.Context, u *models.User) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET email=$1, first_name=$2, last_name=$3, phone_number=$4, is_active=$5, updated_at=NOW()
		WHERE id=$6
	`, u.Email, u.FirstName, u.LastName, u.PhoneNumber, u.IsActive, u.ID)
	return err
}

/* ---------- internals ---------- */

func baseSelectUser() string {
	return `
		SELECT id, external_uid, email, first_name, last_name, phone_number,
		       is_active, created_at, updated_at
		FROM users`
}

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	if err := row.Scan(
		&u.ID, &u.ExternalUID, &u.Email, &u.FirstName, &u.LastName, &u.PhoneNumber,
		&u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
