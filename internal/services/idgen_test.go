package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSequenceRepo counts per (owner, prefix, year) in memory.
type stubSequenceRepo struct {
	counts map[string]int
	err    error
}

func newStubSequenceRepo() *stubSequenceRepo {
	return &stubSequenceRepo{counts: make(map[string]int)}
}

func (s *stubSequenceRepo) Next(_ context.Context, ownerID uuid.UUID, prefix string, year int) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	key := fmt.Sprintf("%s/%s/%d", ownerID, prefix, year)
	s.counts[key]++
	return s.counts[key], nil
}

func TestNextTenantID_FormatAndPadding(t *testing.T) {
	ctx := context.Background()
	gen := NewIDGenService(newStubSequenceRepo())
	owner := uuid.New()
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	first, err := gen.NextTenantID(ctx, owner, now)
	require.NoError(t, err)
	assert.Equal(t, "TNT-2026-001", first)

	second, err := gen.NextTenantID(ctx, owner, now)
	require.NoError(t, err)
	assert.Equal(t, "TNT-2026-002", second)
}

func TestNextPaymentID_FourDigitPadding(t *testing.T) {
	ctx := context.Background()
	stub := newStubSequenceRepo()
	gen := NewIDGenService(stub)
	owner := uuid.New()
	now := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	got, err := gen.NextPaymentID(ctx, owner, now)
	require.NoError(t, err)
	assert.Equal(t, "PAY-2026-0001", got)

	got, err = gen.NextReceiptNumber(ctx, owner, now)
	require.NoError(t, err)
	assert.Equal(t, "RCP-2026-0001", got, "receipt numbering is independent of payments")
}

func TestNextTenantID_SequencesIsolatedByOwnerAndYear(t *testing.T) {
	ctx := context.Background()
	gen := NewIDGenService(newStubSequenceRepo())
	ownerA := uuid.New()
	ownerB := uuid.New()
	in2026 := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	in2027 := time.Date(2027, 6, 1, 0, 0, 0, 0, time.UTC)

	a1, err := gen.NextTenantID(ctx, ownerA, in2026)
	require.NoError(t, err)
	assert.Equal(t, "TNT-2026-001", a1)

	b1, err := gen.NextTenantID(ctx, ownerB, in2026)
	require.NoError(t, err)
	assert.Equal(t, "TNT-2026-001", b1, "each owner numbers from 1")

	a2, err := gen.NextTenantID(ctx, ownerA, in2027)
	require.NoError(t, err)
	assert.Equal(t, "TNT-2027-001", a2, "a new year restarts the sequence")
}

func TestNextTenantID_PropagatesError(t *testing.T) {
	stub := newStubSequenceRepo()
	stub.err = errors.New("db down")
	gen := NewIDGenService(stub)

	_, err := gen.NextTenantID(context.Background(), uuid.New(), time.Now())
	require.Error(t, err)
}
