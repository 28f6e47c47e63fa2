package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"worklog-system.com/worklog-system/internal/cache"
	"worklog-system.com/worklog-system/internal/constants"
	dto "worklog-system.com/worklog-system/internal/data_models"
	errs "worklog-system.com/worklog-system/internal/errors"
	model "worklog-system.com/worklog-system/internal/models"
	"worklog-system.com/worklog-system/internal/validation"
)

type ProjectService struct {
	projects      ProjectStore
	organizations OrganizationStore
	cascade       *CascadePlanner
	reportCache   cache.ReportCache
	log           zerolog.Logger
}

func NewProjectService(
	projects ProjectStore,
	organizations OrganizationStore,
	cascade *CascadePlanner,
	reportCache cache.ReportCache,
	log zerolog.Logger,
) *ProjectService {
	return &ProjectService{
		projects:      projects,
		organizations: organizations,
		cascade:       cascade,
		reportCache:   reportCache,
		log:           log,
	}
}

func (s *ProjectService) List(ctx context.Context, ownerID, organizationID string) ([]model.Project, error) {
	if organizationID != "" {
		return s.projects.ListByOrganization(ctx, ownerID, organizationID)
	}
	return s.projects.List(ctx, ownerID)
}

func (s *ProjectService) Get(ctx context.Context, id, ownerID string) (*model.Project, error) {
	project, err := s.projects.FindByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, errs.ErrProjectNotFound
	}
	return project, nil
}

func (s *ProjectService) Create(ctx context.Context, ownerID string, req *dto.CreateProjectRequest) (*model.Project, error) {
	if err := validation.Project(req); err != nil {
		return nil, err
	}

	if err := s.checkOrganizationExists(ctx, req.OrganizationID, ownerID); err != nil {
		return nil, err
	}

	project := &model.Project{
		ID:             uuid.NewString(),
		Name:           req.Name,
		Description:    req.Description,
		OrganizationID: req.OrganizationID,
		HourlyRate:     req.HourlyRate,
		Status:         constants.ProjectStatus(req.Status),
		CreatedAt:      time.Now().UTC(),
		CreatedBy:      ownerID,
	}

	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}

	s.invalidateReports(ctx, ownerID)
	return project, nil
}

func (s *ProjectService) Update(ctx context.Context, id, ownerID string, req *dto.UpdateProjectRequest) (*model.Project, error) {
	if err := validation.ProjectUpdate(req); err != nil {
		return nil, err
	}

	project, err := s.projects.FindByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, errs.ErrProjectNotFound
	}

	// The parent link is only re-validated when the update actually moves
	// the project; an unchanged reference is never re-rejected.
	if req.OrganizationID != nil && *req.OrganizationID != project.OrganizationID {
		if err := s.checkOrganizationExists(ctx, *req.OrganizationID, ownerID); err != nil {
			return nil, err
		}
		project.OrganizationID = *req.OrganizationID
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.HourlyRate != nil {
		project.HourlyRate = *req.HourlyRate
	}
	if req.Status != nil {
		project.Status = constants.ProjectStatus(*req.Status)
	}

	if err := s.projects.Update(ctx, project); err != nil {
		return nil, err
	}

	s.invalidateReports(ctx, ownerID)
	return project, nil
}

func (s *ProjectService) Delete(ctx context.Context, id, ownerID string) (*DeletionPlan, error) {
	plan, err := s.cascade.PlanDeletion(ctx, KindProject, id, ownerID)
	if err != nil {
		return nil, err
	}

	if err := s.cascade.Execute(ctx, plan, ownerID); err != nil {
		return nil, err
	}

	s.invalidateReports(ctx, ownerID)
	return plan, nil
}

func (s *ProjectService) checkOrganizationExists(ctx context.Context, organizationID, ownerID string) error {
	org, err := s.organizations.FindByID(ctx, organizationID, ownerID)
	if err != nil {
		return err
	}
	if org == nil {
		return errs.ErrOrganizationNotFound
	}
	return nil
}

func (s *ProjectService) invalidateReports(ctx context.Context, ownerID string) {
	if err := s.reportCache.Invalidate(ctx, ownerID); err != nil {
		s.log.Warn().Err(err).Str("owner", ownerID).Msg("failed to invalidate report cache")
	}
}
