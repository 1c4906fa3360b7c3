package service

import (
	"context"

	"devconnect/internal/models"
	"devconnect/internal/repository"
)

type ProfileService interface {
	Me(ctx context.Context, userID string) (*models.Profile, error)
	Update(ctx context.Context, userID string, patch models.ProfilePatch) (*models.Profile, error)
	All(ctx context.Context) ([]*models.Profile, error)
	ByUserID(ctx context.Context, userID string) (*models.Profile, error)
	Delete(ctx context.Context, userID string) error
	AddExperience(ctx context.Context, userID string, exp *models.Experience) (*models.Profile, error)
	RemoveExperience(ctx context.Context, userID, expID string) (*models.Profile, error)
	AddEducation(ctx context.Context, userID string, edu *models.Education) (*models.Profile, error)
	RemoveEducation(ctx context.Context, userID, eduID string) (*models.Profile, error)
}

type profileService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
}

func NewProfileService(profileRepo repository.ProfileRepository, userRepo repository.UserRepository) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

func (s *profileService) Me(ctx context.Context, userID string) (*models.Profile, error) {
	return s.profileRepo.GetByUserID(ctx, userID)
}

func (s *profileService) Update(ctx context.Context, userID string, patch models.ProfilePatch) (*models.Profile, error) {
	return s.profileRepo.Upsert(ctx, userID, patch)
}

func (s *profileService) All(ctx context.Context) ([]*models.Profile, error) {
	return s.profileRepo.GetAll(ctx)
}

func (s *profileService) ByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	return s.profileRepo.GetByUserID(ctx, userID)
}

// Delete removes the profile and cascades to the owning user record; the
// user's posts go with it through the foreign keys.
func (s *profileService) Delete(ctx context.Context, userID string) error {
	err := s.profileRepo.DeleteByUserID(ctx, userID)
	if err != nil {
		return err
	}

	return s.userRepo.DeleteUser(ctx, userID)
}

func (s *profileService) AddExperience(ctx context.Context, userID string, exp *models.Experience) (*models.Profile, error) {
	err := s.profileRepo.AddExperience(ctx, userID, exp)
	if err != nil {
		return nil, err
	}

	return s.profileRepo.GetByUserID(ctx, userID)
}

func (s *profileService) RemoveExperience(ctx context.Context, userID, expID string) (*models.Profile, error) {
	err := s.profileRepo.RemoveExperience(ctx, userID, expID)
	if err != nil {
		return nil, err
	}

	return s.profileRepo.GetByUserID(ctx, userID)
}

func (s *profileService) AddEducation(ctx context.Context, userID string, edu *models.Education) (*models.Profile, error) {
	err := s.profileRepo.AddEducation(ctx, userID, edu)
	if err != nil {
		return nil, err
	}

	return s.profileRepo.GetByUserID(ctx, userID)
}

func (s *profileService) RemoveEducation(ctx context.Context, userID, eduID string) (*models.Profile, error) {
	err := s.profileRepo.RemoveEducation(ctx, userID, eduID)
	if err != nil {
		return nil, err
	}

	return s.profileRepo.GetByUserID(ctx, userID)
}
