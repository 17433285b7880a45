package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Bramtheking/rentalsystemproj/internal/models"
	"github.com/Bramtheking/rentalsystemproj/internal/repositories"
	"github.com/Bramtheking/rentalsystemproj/internal/services"
	"github.com/Bramtheking/rentalsystemproj/internal/utils"
)

// Sentinel IDs used to check if seeding has already occurred.
const (
	SentinelUserID = "dddddddd-dddd-4ddd-dddd-ddddddddddd1"
	SentinelUnitID = "dddddddd-dddd-4ddd-dddd-ddddddddddd2"
)

// SeedDemoData populates a demo owner with a few units, a tenant, and
// a payment so a fresh environment has something to look at. The
// function is idempotent: if the sentinel user exists, it does nothing.
func SeedDemoData(
	ctx context.Context,
	userRepo repositories.UserRepository,
	unitRepo repositories.UnitRepository,
	tenantService *services.TenantService,
	paymentService *services.PaymentService,
) error {
	ownerID := uuid.MustParse(SentinelUserID)

	// IDEMPOTENCY CHECK: the sentinel user doubles as the seed marker.
	if existing, err := userRepo.GetByID(ctx, ownerID); err != nil {
		return fmt.Errorf("failed to check for sentinel user: %w", err)
	} else if existing != nil {
		utils.Logger.Info("Seed data already present; skipping seeding.")
		return nil
	}

	demoOwner := &models.User{
		ID:          ownerID,
		ExternalUID: "demo-owner",
		Email:       "demo@example.com",
		FirstName:   "Demo",
		LastName:    "Owner",
		IsActive:    true,
	}
	if err := userRepo.Create(ctx, demoOwner); err != nil {
		return fmt.Errorf("seed demo owner: %w", err)
	}

	units := []*models.Unit{
		{
			ID:       uuid.MustParse(SentinelUnitID),
			OwnerID:  ownerID,
			UnitID:   "A-101",
			Name:     "Block A Ground Floor",
			UnitType: models.UnitType1BR,
			Status:   models.UnitStatusVacant,
			Rent:     650,
			Location: "Block A",
		},
		{
			ID:       uuid.New(),
			OwnerID:  ownerID,
			UnitID:   "A-102",
			Name:     "Block A First Floor",
			UnitType: models.UnitType2BR,
			Status:   models.UnitStatusVacant,
			Rent:     900,
			Location: "Block A",
		},
		{
			ID:       uuid.New(),
			OwnerID:  ownerID,
			UnitID:   "B-201",
			Name:     "Block B Studio",
			UnitType: models.UnitTypeStudio,
			Status:   models.UnitStatusUnderMaintenance,
			Rent:     450,
			Location: "Block B",
		},
	}
	for _, u := range units {
		if err := unitRepo.Create(ctx, u); err != nil {
			return fmt.Errorf("seed unit %s: %w", u.UnitID, err)
		}
	}

	moveIn := time.Now().UTC().AddDate(0, -2, 0)
	tenant, err := tenantService.Create(ctx, ownerID, &models.Tenant{
		FirstName:     "Jane",
		LastName:      "Mwangi",
		Email:         "jane@example.com",
		Phone:         "+254700000001",
		CurrentUnitID: &units[0].ID,
		MoveInDate:    &moveIn,
		MonthlyRent:   650,
	})
	if err != nil {
		return fmt.Errorf("seed demo tenant: %w", err)
	}

	due := time.Now().UTC().AddDate(0, 0, -5)
	if _, err := paymentService.Create(ctx, ownerID, &models.Payment{
		TenantID:      &tenant.ID,
		PaymentType:   models.PaymentTypeRent,
		Amount:        650,
		PaymentMethod: models.PaymentMethodMobileMoney,
		Status:        models.PaymentStatusPending,
		DueDate:       due,
		Description:   "Monthly rent",
	}); err != nil {
		return fmt.Errorf("seed demo payment: %w", err)
	}

	utils.Logger.Info("Seeded demo data.")
	return nil
}
