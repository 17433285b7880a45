package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bramtheking/rentalsystemproj/internal/config"
	"github.com/Bramtheking/rentalsystemproj/internal/models"
	"github.com/Bramtheking/rentalsystemproj/internal/repositories"
	"github.com/Bramtheking/rentalsystemproj/internal/utils"
)

type reminderTenantStub struct {
	repositories.TenantRepository
	tenant *models.Tenant
}

func (s *reminderTenantStub) GetByID(context.Context, uuid.UUID) (*models.Tenant, error) {
	return s.tenant, nil
}

type reminderRepoStub struct {
	repositories.PaymentReminderRepository
	byTenant []*models.PaymentReminder
}

func (s *reminderRepoStub) ListByTenantID(context.Context, uuid.UUID) ([]*models.PaymentReminder, error) {
	return s.byTenant, nil
}

func TestEscalationFor(t *testing.T) {
	assert.Equal(t, models.ReminderOverdue, escalationFor(time.Hour))
	assert.Equal(t, models.ReminderOverdue, escalationFor(13*24*time.Hour))
	assert.Equal(t, models.ReminderFinalNotice, escalationFor(14*24*time.Hour))
	assert.Equal(t, models.ReminderFinalNotice, escalationFor(60*24*time.Hour))
}

func TestReminderTypeFor(t *testing.T) {
	now := time.Date(2026, 7, 15, 12, 0, 0, 0, time.UTC)
	pending := func(due time.Time) *models.Payment {
		return &models.Payment{Status: models.PaymentStatusPending, DueDate: due}
	}

	assert.Equal(t, models.ReminderDueSoon, reminderTypeFor(pending(now.Add(2*24*time.Hour)), now))
	assert.Equal(t, models.ReminderOverdue, reminderTypeFor(pending(now.Add(-time.Hour)), now))
	assert.Equal(t, models.ReminderFinalNotice, reminderTypeFor(pending(now.Add(-15*24*time.Hour)), now))
}

func TestReminderMessage(t *testing.T) {
	tenant := &models.Tenant{FirstName: "Jane", LastName: "Doe"}
	p := &models.Payment{
		PaymentID: "PAY-2026-0007",
		Amount:    450.50,
		DueDate:   time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
	}

	overdue := reminderMessage(p, tenant, models.ReminderOverdue)
	assert.Contains(t, overdue, "Jane Doe")
	assert.Contains(t, overdue, "PAY-2026-0007")
	assert.Contains(t, overdue, "450.50")
	assert.Contains(t, overdue, "2026-07-01")
	assert.NotContains(t, overdue, "FINAL NOTICE")

	final := reminderMessage(p, tenant, models.ReminderFinalNotice)
	assert.Contains(t, final, "FINAL NOTICE")
	assert.Contains(t, final, "PAY-2026-0007")

	dueSoon := reminderMessage(p, tenant, models.ReminderDueSoon)
	assert.Contains(t, dueSoon, "is due on 2026-07-01")
	assert.NotContains(t, dueSoon, "FINAL NOTICE")
}

func TestListByTenant_ScopedToOwner(t *testing.T) {
	owner := uuid.New()
	tenant := &models.Tenant{ID: uuid.New(), OwnerID: owner}
	rows := []*models.PaymentReminder{{ID: uuid.New(), TenantID: tenant.ID}}
	svc := NewReminderService(nil, &reminderRepoStub{byTenant: rows}, &reminderTenantStub{tenant: tenant}, &config.Config{})

	got, err := svc.ListByTenant(context.Background(), owner, tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, rows, got)

	// Another owner's lookup reads as not-found.
	_, err = svc.ListByTenant(context.Background(), uuid.New(), tenant.ID)
	require.Error(t, err)
	assert.ErrorContains(t, err, utils.ErrNotFound.Error())
}
