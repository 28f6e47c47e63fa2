package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	model "worklog-system.com/worklog-system/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepository) FindByID(ctx context.Context, id, ownerID string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ? AND created_by = ?", id, ownerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) List(ctx context.Context, ownerID string) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Where("created_by = ?", ownerID).
		Order("date desc").Order("created_at desc").
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) ListByProject(ctx context.Context, ownerID, projectID string) ([]model.Task, error) {
	return r.ListByProjectIDs(ctx, ownerID, []string{projectID})
}

func (r *TaskRepository) ListByProjectIDs(ctx context.Context, ownerID string, projectIDs []string) ([]model.Task, error) {
	if len(projectIDs) == 0 {
		return nil, nil
	}
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Where("created_by = ? AND project_id IN ?", ownerID, projectIDs).
		Order("date desc").Order("created_at desc").
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ? AND created_by = ?", task.ID, task.CreatedBy).
		Updates(map[string]interface{}{
			"title":       task.Title,
			"description": task.Description,
			"project_id":  task.ProjectID,
			"hours":       task.Hours,
			"date":        task.Date,
			"due_date":    task.DueDate,
			"status":      task.Status,
		}).Error
}

func (r *TaskRepository) DeleteByIDs(ctx context.Context, ids []string, ownerID string) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("id IN ? AND created_by = ?", ids, ownerID).
		Delete(&model.Task{}).Error
}
