package services

import (
	"context"

	model "worklog-system.com/worklog-system/internal/models"
)

// Store interfaces consumed by the services. The gorm repositories satisfy
// them in production; tests substitute fakes where call ordering or failure
// injection matters.

type OrganizationStore interface {
	Create(ctx context.Context, org *model.Organization) error
	FindByID(ctx context.Context, id, ownerID string) (*model.Organization, error)
	List(ctx context.Context, ownerID string) ([]model.Organization, error)
	Update(ctx context.Context, org *model.Organization) error
	Delete(ctx context.Context, id, ownerID string) error
}

type ProjectStore interface {
	Create(ctx context.Context, project *model.Project) error
	FindByID(ctx context.Context, id, ownerID string) (*model.Project, error)
	List(ctx context.Context, ownerID string) ([]model.Project, error)
	ListByOrganization(ctx context.Context, ownerID, organizationID string) ([]model.Project, error)
	Update(ctx context.Context, project *model.Project) error
	DeleteByIDs(ctx context.Context, ids []string, ownerID string) error
}

type TaskStore interface {
	Create(ctx context.Context, task *model.Task) error
	FindByID(ctx context.Context, id, ownerID string) (*model.Task, error)
	List(ctx context.Context, ownerID string) ([]model.Task, error)
	ListByProject(ctx context.Context, ownerID, projectID string) ([]model.Task, error)
	ListByProjectIDs(ctx context.Context, ownerID string, projectIDs []string) ([]model.Task, error)
	Update(ctx context.Context, task *model.Task) error
	DeleteByIDs(ctx context.Context, ids []string, ownerID string) error
}

type ProfileStore interface {
	FindByOwner(ctx context.Context, ownerID string) (*model.Profile, error)
	Create(ctx context.Context, profile *model.Profile) error
	Update(ctx context.Context, profile *model.Profile) error
}
