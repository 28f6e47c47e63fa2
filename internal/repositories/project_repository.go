package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	model "worklog-system.com/worklog-system/internal/models"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

func (r *ProjectRepository) FindByID(ctx context.Context, id, ownerID string) (*model.Project, error) {
	var project model.Project
	err := r.db.WithContext(ctx).First(&project, "id = ? AND created_by = ?", id, ownerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepository) List(ctx context.Context, ownerID string) ([]model.Project, error) {
	var projects []model.Project
	err := r.db.WithContext(ctx).
		Where("created_by = ?", ownerID).
		Order("created_at desc").
		Find(&projects).Error
	return projects, err
}

func (r *ProjectRepository) ListByOrganization(ctx context.Context, ownerID, organizationID string) ([]model.Project, error) {
	var projects []model.Project
	err := r.db.WithContext(ctx).
		Where("created_by = ? AND organization_id = ?", ownerID, organizationID).
		Order("created_at desc").
		Find(&projects).Error
	return projects, err
}

func (r *ProjectRepository) Update(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Model(&model.Project{}).
		Where("id = ? AND created_by = ?", project.ID, project.CreatedBy).
		Updates(map[string]interface{}{
			"name":            project.Name,
			"description":     project.Description,
			"organization_id": project.OrganizationID,
			"hourly_rate":     project.HourlyRate,
			"status":          project.Status,
		}).Error
}

func (r *ProjectRepository) DeleteByIDs(ctx context.Context, ids []string, ownerID string) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("id IN ? AND created_by = ?", ids, ownerID).
		Delete(&model.Project{}).Error
}
