package repositories

import (
	"context"

	"github.com/google/uuid"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

// SequenceRepository hands out per-owner, per-prefix, per-year display
// ID sequence numbers. The upsert increments atomically, so two
// concurrent creations can never mint the same number. Numbers are not
// gap-free: a rolled-back surrounding transaction abandons its number.
type SequenceRepository interface {
	Next(ctx context.Context, ownerID uuid.UUID, prefix string, year int) (int, error)
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type sequenceRepo struct {
	db DB
}

func NewSequenceRepository(db DB) SequenceRepository {
	return &sequenceRepo{db: db}
}

func (r *sequenceRepo) Next(ctx context.Context, ownerID uuid.UUID, prefix string, year int) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `
		INSERT INTO id_sequences (owner_id, prefix, year, value)
		VALUES ($1,$2,$3,1)
		ON CONFLICT (owner_id, prefix, year)
		DO UPDATE SET value = id_sequences.value + 1
		RETURNING value
	`, ownerID, prefix, year).Scan(&n)
	return n, err
}
