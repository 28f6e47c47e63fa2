package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	dto "worklog-system.com/worklog-system/internal/data_models"
	errs "worklog-system.com/worklog-system/internal/errors"
	model "worklog-system.com/worklog-system/internal/models"
	"worklog-system.com/worklog-system/internal/validation"
)

type ProfileService struct {
	profiles ProfileStore
}

func NewProfileService(profiles ProfileStore) *ProfileService {
	return &ProfileService{profiles: profiles}
}

func (s *ProfileService) Get(ctx context.Context, ownerID string) (*model.Profile, error) {
	profile, err := s.profiles.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errs.ErrProfileNotFound
	}
	return profile, nil
}

// Upsert creates the owner's profile on first write and replaces its fields
// afterwards. Documents are stored digits-only.
func (s *ProfileService) Upsert(ctx context.Context, ownerID string, req *dto.UpsertProfileRequest) (*model.Profile, error) {
	if err := validation.Profile(req); err != nil {
		return nil, err
	}

	profile, err := s.profiles.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if profile == nil {
		profile = &model.Profile{
			ID:        uuid.NewString(),
			OwnerID:   ownerID,
			CreatedAt: time.Now().UTC(),
		}
		s.applyRequest(profile, req)
		if err := s.profiles.Create(ctx, profile); err != nil {
			return nil, err
		}
		return profile, nil
	}

	s.applyRequest(profile, req)
	if err := s.profiles.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) applyRequest(profile *model.Profile, req *dto.UpsertProfileRequest) {
	profile.Email = req.Email
	profile.Document = validation.NormalizeDocument(req.Document)
	profile.CompanyName = req.CompanyName
	profile.CompanyCNPJ = validation.NormalizeDocument(req.CompanyCNPJ)
	profile.Phone = req.Phone
}
