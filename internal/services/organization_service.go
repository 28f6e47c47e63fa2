package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"worklog-system.com/worklog-system/internal/cache"
	dto "worklog-system.com/worklog-system/internal/data_models"
	errs "worklog-system.com/worklog-system/internal/errors"
	model "worklog-system.com/worklog-system/internal/models"
	"worklog-system.com/worklog-system/internal/validation"
)

type OrganizationService struct {
	organizations OrganizationStore
	cascade       *CascadePlanner
	reportCache   cache.ReportCache
	log           zerolog.Logger
}

func NewOrganizationService(
	organizations OrganizationStore,
	cascade *CascadePlanner,
	reportCache cache.ReportCache,
	log zerolog.Logger,
) *OrganizationService {
	return &OrganizationService{
		organizations: organizations,
		cascade:       cascade,
		reportCache:   reportCache,
		log:           log,
	}
}

func (s *OrganizationService) List(ctx context.Context, ownerID string) ([]model.Organization, error) {
	return s.organizations.List(ctx, ownerID)
}

func (s *OrganizationService) Get(ctx context.Context, id, ownerID string) (*model.Organization, error) {
	org, err := s.organizations.FindByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, errs.ErrOrganizationNotFound
	}
	return org, nil
}

func (s *OrganizationService) Create(ctx context.Context, ownerID string, req *dto.CreateOrganizationRequest) (*model.Organization, error) {
	if err := validation.Organization(req); err != nil {
		return nil, err
	}

	org := &model.Organization{
		ID:        uuid.NewString(),
		Name:      req.Name,
		CNPJ:      req.CNPJ,
		Email:     req.Email,
		Phone:     req.Phone,
		CreatedAt: time.Now().UTC(),
		CreatedBy: ownerID,
	}

	if err := s.organizations.Create(ctx, org); err != nil {
		return nil, err
	}

	return org, nil
}

func (s *OrganizationService) Update(ctx context.Context, id, ownerID string, req *dto.UpdateOrganizationRequest) (*model.Organization, error) {
	if err := validation.OrganizationUpdate(req); err != nil {
		return nil, err
	}

	org, err := s.organizations.FindByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, errs.ErrOrganizationNotFound
	}

	if req.Name != nil {
		org.Name = *req.Name
	}
	if req.CNPJ != nil {
		org.CNPJ = *req.CNPJ
	}
	if req.Email != nil {
		org.Email = *req.Email
	}
	if req.Phone != nil {
		org.Phone = *req.Phone
	}

	if err := s.organizations.Update(ctx, org); err != nil {
		return nil, err
	}

	return org, nil
}

// Delete removes the organization and everything under it. The returned
// plan lists every record that was removed.
func (s *OrganizationService) Delete(ctx context.Context, id, ownerID string) (*DeletionPlan, error) {
	plan, err := s.cascade.PlanDeletion(ctx, KindOrganization, id, ownerID)
	if err != nil {
		return nil, err
	}

	if err := s.cascade.Execute(ctx, plan, ownerID); err != nil {
		return nil, err
	}

	s.invalidateReports(ctx, ownerID)
	return plan, nil
}

func (s *OrganizationService) invalidateReports(ctx context.Context, ownerID string) {
	if err := s.reportCache.Invalidate(ctx, ownerID); err != nil {
		s.log.Warn().Err(err).Str("owner", ownerID).Msg("failed to invalidate report cache")
	}
}
