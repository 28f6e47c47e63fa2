package model

import (
	"time"

	"worklog-system.com/worklog-system/internal/constants"
)

// Task is a billable time entry under a project. Status holds one of
// pending/in_progress/completed in storage; the late value callers see is
// recomputed from DueDate on every read.
type Task struct {
	ID          string               `gorm:"primaryKey;size:36" json:"id"`
	Title       string               `gorm:"not null" json:"title"`
	Description string               `json:"description,omitempty"`
	ProjectID   string               `gorm:"size:36;not null;index" json:"project_id"`
	Hours       float64              `gorm:"not null;default:0" json:"hours"`
	Date        time.Time            `json:"date"`
	DueDate     time.Time            `json:"due_date"`
	Status      constants.TaskStatus `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt   time.Time            `json:"created_at"`
	CreatedBy   string               `gorm:"size:36;not null;index" json:"created_by"`
}
