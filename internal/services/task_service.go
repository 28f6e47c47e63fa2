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

// TaskFilters narrows task listings. OrganizationID is resolved through the
// set of projects under that organization.
type TaskFilters struct {
	ProjectID      string
	OrganizationID string
}

type TaskService struct {
	tasks       TaskStore
	projects    ProjectStore
	reportCache cache.ReportCache
	log         zerolog.Logger
}

func NewTaskService(
	tasks TaskStore,
	projects ProjectStore,
	reportCache cache.ReportCache,
	log zerolog.Logger,
) *TaskService {
	return &TaskService{
		tasks:       tasks,
		projects:    projects,
		reportCache: reportCache,
		log:         log,
	}
}

func (s *TaskService) List(ctx context.Context, ownerID string, filters TaskFilters) ([]model.Task, error) {
	tasks, err := s.listFiltered(ctx, ownerID, filters)
	if err != nil {
		return nil, err
	}
	return applyEffectiveStatus(tasks, time.Now().UTC()), nil
}

func (s *TaskService) listFiltered(ctx context.Context, ownerID string, filters TaskFilters) ([]model.Task, error) {
	if filters.ProjectID != "" {
		return s.tasks.ListByProject(ctx, ownerID, filters.ProjectID)
	}

	if filters.OrganizationID != "" {
		projects, err := s.projects.ListByOrganization(ctx, ownerID, filters.OrganizationID)
		if err != nil {
			return nil, err
		}
		projectIDs := make([]string, 0, len(projects))
		for _, project := range projects {
			projectIDs = append(projectIDs, project.ID)
		}
		return s.tasks.ListByProjectIDs(ctx, ownerID, projectIDs)
	}

	return s.tasks.List(ctx, ownerID)
}

func (s *TaskService) Get(ctx context.Context, id, ownerID string) (*model.Task, error) {
	task, err := s.tasks.FindByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, errs.ErrTaskNotFound
	}

	task.Status = EffectiveStatus(task, time.Now().UTC())
	return task, nil
}

func (s *TaskService) Create(ctx context.Context, ownerID string, req *dto.CreateTaskRequest) (*model.Task, error) {
	date, dueDate, err := validation.Task(req)
	if err != nil {
		return nil, err
	}

	if err := s.checkProjectExists(ctx, req.ProjectID, ownerID); err != nil {
		return nil, err
	}

	task := &model.Task{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		ProjectID:   req.ProjectID,
		Hours:       req.Hours,
		Date:        date,
		DueDate:     dueDate,
		Status:      NormalizeStatus(constants.TaskStatus(req.Status)),
		CreatedAt:   time.Now().UTC(),
		CreatedBy:   ownerID,
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}

	s.invalidateReports(ctx, ownerID)
	return task, nil
}

func (s *TaskService) Update(ctx context.Context, id, ownerID string, req *dto.UpdateTaskRequest) (*model.Task, error) {
	date, dueDate, err := validation.TaskUpdate(req)
	if err != nil {
		return nil, err
	}

	task, err := s.tasks.FindByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, errs.ErrTaskNotFound
	}

	if req.ProjectID != nil && *req.ProjectID != task.ProjectID {
		if err := s.checkProjectExists(ctx, *req.ProjectID, ownerID); err != nil {
			return nil, err
		}
		task.ProjectID = *req.ProjectID
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Hours != nil {
		task.Hours = *req.Hours
	}
	if date != nil {
		task.Date = *date
	}
	if dueDate != nil {
		task.DueDate = *dueDate
	}
	if req.Status != nil {
		task.Status = NormalizeStatus(constants.TaskStatus(*req.Status))
	}

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}

	s.invalidateReports(ctx, ownerID)
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, id, ownerID string) error {
	task, err := s.tasks.FindByID(ctx, id, ownerID)
	if err != nil {
		return err
	}
	if task == nil {
		return errs.ErrTaskNotFound
	}

	if err := s.tasks.DeleteByIDs(ctx, []string{id}, ownerID); err != nil {
		return err
	}

	s.invalidateReports(ctx, ownerID)
	return nil
}

func (s *TaskService) checkProjectExists(ctx context.Context, projectID, ownerID string) error {
	project, err := s.projects.FindByID(ctx, projectID, ownerID)
	if err != nil {
		return err
	}
	if project == nil {
		return errs.ErrProjectNotFound
	}
	return nil
}

func (s *TaskService) invalidateReports(ctx context.Context, ownerID string) {
	if err := s.reportCache.Invalidate(ctx, ownerID); err != nil {
		s.log.Warn().Err(err).Str("owner", ownerID).Msg("failed to invalidate report cache")
	}
}
