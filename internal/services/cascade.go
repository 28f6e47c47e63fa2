package services

import (
	"context"

	"github.com/rs/zerolog"

	errs "worklog-system.com/worklog-system/internal/errors"
)

type EntityKind string

const (
	KindOrganization EntityKind = "organization"
	KindProject      EntityKind = "project"
	KindTask         EntityKind = "task"
)

// DeletionPlan lists every record a delete must remove, the target
// included.
type DeletionPlan struct {
	Organizations []string `json:"organizations"`
	Projects      []string `json:"projects"`
	Tasks         []string `json:"tasks"`
}

// CascadePlanner computes and executes multi-level deletes. Execution order
// is tasks, then projects, then the organization, so no surviving child
// ever references a removed parent. The steps are not wrapped in a
// transaction; a failure partway through surfaces as IncompleteDeletionError
// and a retry of the same delete recomputes the plan from current state and
// finishes the remaining steps.
type CascadePlanner struct {
	organizations OrganizationStore
	projects      ProjectStore
	tasks         TaskStore
	log           zerolog.Logger
}

func NewCascadePlanner(
	organizations OrganizationStore,
	projects ProjectStore,
	tasks TaskStore,
	log zerolog.Logger,
) *CascadePlanner {
	return &CascadePlanner{
		organizations: organizations,
		projects:      projects,
		tasks:         tasks,
		log:           log,
	}
}

func (p *CascadePlanner) PlanDeletion(ctx context.Context, kind EntityKind, id, ownerID string) (*DeletionPlan, error) {
	switch kind {
	case KindOrganization:
		return p.planOrganization(ctx, id, ownerID)
	case KindProject:
		return p.planProject(ctx, id, ownerID)
	default:
		return p.planTask(ctx, id, ownerID)
	}
}

func (p *CascadePlanner) planOrganization(ctx context.Context, id, ownerID string) (*DeletionPlan, error) {
	org, err := p.organizations.FindByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, errs.ErrOrganizationNotFound
	}

	projects, err := p.projects.ListByOrganization(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	projectIDs := make([]string, 0, len(projects))
	for _, project := range projects {
		projectIDs = append(projectIDs, project.ID)
	}

	tasks, err := p.tasks.ListByProjectIDs(ctx, ownerID, projectIDs)
	if err != nil {
		return nil, err
	}

	taskIDs := make([]string, 0, len(tasks))
	for _, task := range tasks {
		taskIDs = append(taskIDs, task.ID)
	}

	return &DeletionPlan{
		Organizations: []string{id},
		Projects:      projectIDs,
		Tasks:         taskIDs,
	}, nil
}

func (p *CascadePlanner) planProject(ctx context.Context, id, ownerID string) (*DeletionPlan, error) {
	project, err := p.projects.FindByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, errs.ErrProjectNotFound
	}

	tasks, err := p.tasks.ListByProject(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	taskIDs := make([]string, 0, len(tasks))
	for _, task := range tasks {
		taskIDs = append(taskIDs, task.ID)
	}

	return &DeletionPlan{
		Projects: []string{id},
		Tasks:    taskIDs,
	}, nil
}

func (p *CascadePlanner) planTask(ctx context.Context, id, ownerID string) (*DeletionPlan, error) {
	task, err := p.tasks.FindByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, errs.ErrTaskNotFound
	}

	return &DeletionPlan{Tasks: []string{id}}, nil
}

// Execute removes the planned records bottom-up.
func (p *CascadePlanner) Execute(ctx context.Context, plan *DeletionPlan, ownerID string) error {
	if err := p.tasks.DeleteByIDs(ctx, plan.Tasks, ownerID); err != nil {
		return &errs.IncompleteDeletionError{Step: "tasks", Cause: err}
	}

	if err := p.projects.DeleteByIDs(ctx, plan.Projects, ownerID); err != nil {
		return &errs.IncompleteDeletionError{
			Step:         "projects",
			TasksDeleted: len(plan.Tasks),
			Cause:        err,
		}
	}

	for _, id := range plan.Organizations {
		if err := p.organizations.Delete(ctx, id, ownerID); err != nil {
			return &errs.IncompleteDeletionError{
				Step:         "organization",
				TasksDeleted: len(plan.Tasks),
				Cause:        err,
			}
		}
	}

	p.log.Info().
		Int("tasks", len(plan.Tasks)).
		Int("projects", len(plan.Projects)).
		Int("organizations", len(plan.Organizations)).
		Msg("cascade delete completed")

	return nil
}
