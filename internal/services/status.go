package services

import (
	"time"

	"worklog-system.com/worklog-system/internal/constants"
	model "worklog-system.com/worklog-system/internal/models"
)

// EffectiveStatus computes the status callers see: completed tasks stay
// completed, anything else past its due date reads as late. The stored
// record is never changed.
func EffectiveStatus(task *model.Task, now time.Time) constants.TaskStatus {
	if task.Status == constants.TaskCompleted {
		return task.Status
	}
	if !task.DueDate.IsZero() && task.DueDate.Before(now) {
		return constants.TaskLate
	}
	return task.Status
}

// NormalizeStatus maps the derived late value back to pending so storage
// only ever holds pending, in_progress or completed.
func NormalizeStatus(status constants.TaskStatus) constants.TaskStatus {
	if status == constants.TaskLate {
		return constants.TaskPending
	}
	return status
}

func applyEffectiveStatus(tasks []model.Task, now time.Time) []model.Task {
	for i := range tasks {
		tasks[i].Status = EffectiveStatus(&tasks[i], now)
	}
	return tasks
}
