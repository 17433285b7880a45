package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Bramtheking/rentalsystemproj/internal/models"
	"github.com/Bramtheking/rentalsystemproj/internal/repositories"
	"github.com/Bramtheking/rentalsystemproj/internal/utils"
)

// UserService exchanges verified identity-provider subjects for local
// user rows. It satisfies the auth middleware's resolver interface.
type UserService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// ResolveExternalUID returns the local user for a verified token
// subject, creating the row on first sight. The identity provider is
// the source of truth for the email claim.
func (s *UserService) ResolveExternalUID(ctx context.Context, externalUID, email string) (*models.User, error) {
	u, err := s.userRepo.GetByExternalUID(ctx, externalUID)
	if err != nil {
		return nil, err
	}
	if u != nil {
		return u, nil
	}

	u = &models.User{
		ID:          uuid.New(),
		ExternalUID: externalUID,
		Email:       email,
		IsActive:    true,
	}
	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, err
	}
	utils.Logger.WithField("user_id", u.ID).Info("provisioned local user for external identity")
	return u, nil
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, wrapDomainError(utils.ErrNotFound)
	}
	return u, nil
}

// UpdateProfile applies the user-editable subset of the profile.
func (s *UserService) UpdateProfile(ctx context.Context, id uuid.UUID, firstName, lastName, phoneNumber string) (*models.User, error) {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	u.FirstName = firstName
	u.LastName = lastName
	u.PhoneNumber = phoneNumber
	u.UpdatedAt = time.Now().UTC()
	if err := s.userRepo.Update(ctx, u); err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(ctx, id)
}
