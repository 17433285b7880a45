//go:build integration

package integration

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/Bramtheking/rentalsystemproj/internal/models"
	"github.com/Bramtheking/rentalsystemproj/internal/repositories"
	"github.com/Bramtheking/rentalsystemproj/internal/services"
	"github.com/Bramtheking/rentalsystemproj/internal/utils"
)

// Global test-level state shared by all integration tests in this
// package. Each test creates its own owner row, so tests stay isolated
// inside a shared database.
var (
	pool *pgxpool.Pool

	userRepo    repositories.UserRepository
	unitRepo    repositories.UnitRepository
	tenantRepo  repositories.TenantRepository
	historyRepo repositories.TenantHistoryRepository
	seqRepo     repositories.SequenceRepository

	idGen         *services.IDGenService
	synchronizer  *services.OccupancySynchronizer
	tenantService *services.TenantService
	unitService   *services.UnitService
)

func TestMain(m *testing.M) {
	utils.InitLogger("integration-tests")

	dbURL := os.Getenv("TEST_DB_URL")
	if dbURL == "" {
		log.Fatal("TEST_DB_URL env var is required for integration tests")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var err error
	pool, err = pgxpool.Connect(ctx, dbURL)
	if err != nil {
		log.Fatalf("failed to connect to test DB: %v", err)
	}

	schema, err := os.ReadFile("../../db/schema.sql")
	if err != nil {
		log.Fatalf("failed to read schema: %v", err)
	}
	if _, err := pool.Exec(ctx, string(schema)); err != nil {
		log.Fatalf("failed to apply schema: %v", err)
	}

	userRepo = repositories.NewUserRepository(pool)
	unitRepo = repositories.NewUnitRepository(pool)
	tenantRepo = repositories.NewTenantRepository(pool)
	historyRepo = repositories.NewTenantHistoryRepository(pool)
	seqRepo = repositories.NewSequenceRepository(pool)

	idGen = services.NewIDGenService(seqRepo)
	synchronizer = services.NewOccupancySynchronizer()
	tenantService = services.NewTenantService(pool, tenantRepo, unitRepo, historyRepo, idGen, synchronizer)
	unitService = services.NewUnitService(pool, unitRepo, tenantRepo)

	code := m.Run()
	pool.Close()
	os.Exit(code)
}

/* ---------- shared fixtures ---------- */

func createOwner(t *testing.T) uuid.UUID {
	t.Helper()
	owner := &models.User{
		ID:          uuid.New(),
		ExternalUID: fmt.Sprintf("test-%s", uuid.NewString()),
		Email:       fmt.Sprintf("owner-%s@example.com", uuid.NewString()[:8]),
		FirstName:   "Test",
		LastName:    "Owner",
		IsActive:    true,
	}
	require.NoError(t, userRepo.Create(context.Background(), owner))
	return owner.ID
}

func createUnit(t *testing.T, ownerID uuid.UUID, code string, rent float64) *models.Unit {
	t.Helper()
	u := &models.Unit{
		ID:       uuid.New(),
		OwnerID:  ownerID,
		UnitID:   code,
		Name:     "Unit " + code,
		UnitType: models.UnitType1BR,
		Status:   models.UnitStatusVacant,
		Rent:     rent,
	}
	require.NoError(t, unitRepo.Create(context.Background(), u))
	return u
}

func newTenant(first, last, phone, email string) *models.Tenant {
	return &models.Tenant{
		FirstName: first,
		LastName:  last,
		Phone:     phone,
		Email:     email,
	}
}

// assertOccupancyInvariant checks, for every unit of the owner, that
// status is Occupied iff exactly one tenant references the unit, and
// that the denormalized contact fields match that tenant.
func assertOccupancyInvariant(t *testing.T, ownerID uuid.UUID) {
	t.Helper()
	ctx := context.Background()

	units, err := unitRepo.ListByOwnerID(ctx, ownerID)
	require.NoError(t, err)
	tenants, err := tenantRepo.ListByOwnerID(ctx, ownerID)
	require.NoError(t, err)

	refs := make(map[uuid.UUID][]*models.Tenant)
	for _, tn := range tenants {
		if tn.CurrentUnitID != nil {
			refs[*tn.CurrentUnitID] = append(refs[*tn.CurrentUnitID], tn)
		}
	}

	for _, u := range units {
		holders := refs[u.ID]
		if u.Status == models.UnitStatusOccupied {
			require.Len(t, holders, 1, "occupied unit %s must have exactly one tenant", u.UnitID)
			require.Equal(t, holders[0].FullName(), u.TenantName)
			require.Equal(t, holders[0].Phone, u.TenantPhone)
			require.Equal(t, holders[0].Email, u.TenantEmail)
		} else {
			require.Empty(t, holders, "non-occupied unit %s must have no tenants", u.UnitID)
			require.Empty(t, u.TenantName)
			require.Empty(t, u.TenantPhone)
			require.Empty(t, u.TenantEmail)
		}
	}
}
