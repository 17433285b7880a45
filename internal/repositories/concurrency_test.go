package repositories

import (
	"context"
	"testing"

	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bramtheking/rentalsystemproj/internal/utils"
)

type contendedRow struct {
	id      string
	version int64
}

func (r *contendedRow) GetID() string         { return r.id }
func (r *contendedRow) GetRowVersion() int64  { return r.version }
func (r *contendedRow) SetRowVersion(v int64) { r.version = v }

func TestWithRetry_SucceedsWhenVersionMatches(t *testing.T) {
	getByID := func(ctx context.Context, id string) (*contendedRow, error) {
		return &contendedRow{id: id, version: 1}, nil
	}
	update := func(ctx context.Context, r *contendedRow, expected int64) (pgconn.CommandTag, error) {
		return pgconn.CommandTag("UPDATE 1"), nil
	}

	var mutated bool
	err := WithRetry(context.Background(), 3, "row-1", getByID, update, func(r *contendedRow) error {
		mutated = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, mutated)
}

func TestWithRetry_ExhaustionIsVersionConflict(t *testing.T) {
	var attempts int
	getByID := func(ctx context.Context, id string) (*contendedRow, error) {
		attempts++
		return &contendedRow{id: id, version: int64(attempts)}, nil
	}
	// Every write loses the version check, as if another writer always
	// lands first.
	update := func(ctx context.Context, r *contendedRow, expected int64) (pgconn.CommandTag, error) {
		return pgconn.CommandTag("UPDATE 0"), nil
	}

	err := WithRetry(context.Background(), 3, "row-1", getByID, update, func(r *contendedRow) error {
		return nil
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrRowVersionConflict)
	assert.Equal(t, 3, attempts)
}
