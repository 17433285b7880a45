package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Bramtheking/rentalsystemproj/internal/repositories"
)

// Display-ID prefixes. Sequences are per owner, per prefix, per year.
const (
	prefixTenant  = "TNT"
	prefixPayment = "PAY"
	prefixReceipt = "RCP"
)

// IDGenService issues human-readable display identifiers like
// TNT-2026-001 and PAY-2026-0001. Numbering is backed by an atomic
// counter table so concurrent creates never collide.
type IDGenService struct {
	seqRepo repositories.SequenceRepository
}

func NewIDGenService(seqRepo repositories.SequenceRepository) *IDGenService {
	return &IDGenService{seqRepo: seqRepo}
}

// NextTenantID returns the next TNT-<year>-<seq> for the owner,
// zero-padded to three digits.
func (s *IDGenService) NextTenantID(ctx context.Context, ownerID uuid.UUID, now time.Time) (string, error) {
	year := now.Year()
	n, err := s.seqRepo.Next(ctx, ownerID, prefixTenant, year)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%d-%03d", prefixTenant, year, n), nil
}

// NextPaymentID returns the next PAY-<year>-<seq>, zero-padded to
// four digits.
func (s *IDGenService) NextPaymentID(ctx context.Context, ownerID uuid.UUID, now time.Time) (string, error) {
	year := now.Year()
	n, err := s.seqRepo.Next(ctx, ownerID, prefixPayment, year)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%d-%04d", prefixPayment, year, n), nil
}

// NextReceiptNumber returns the next RCP-<year>-<seq>, zero-padded to
// four digits.
func (s *IDGenService) NextReceiptNumber(ctx context.Context, ownerID uuid.UUID, now time.Time) (string, error) {
	year := now.Year()
	n, err := s.seqRepo.Next(ctx, ownerID, prefixReceipt, year)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%d-%04d", prefixReceipt, year, n), nil
}
