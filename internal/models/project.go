package model

import (
	"time"

	"worklog-system.com/worklog-system/internal/constants"
)

type Project struct {
	ID             string                  `gorm:"primaryKey;size:36" json:"id"`
	Name           string                  `gorm:"not null" json:"name"`
	Description    string                  `json:"description,omitempty"`
	OrganizationID string                  `gorm:"size:36;not null;index" json:"organization_id"`
	HourlyRate     float64                 `gorm:"not null;default:0" json:"hourly_rate"`
	Status         constants.ProjectStatus `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt      time.Time               `json:"created_at"`
	CreatedBy      string                  `gorm:"size:36;not null;index" json:"created_by"`
}
