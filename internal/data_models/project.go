package dto

type CreateProjectRequest struct {
	Name           string  `json:"name" validate:"required"`
	Description    string  `json:"description"`
	OrganizationID string  `json:"organization_id" validate:"required"`
	HourlyRate     float64 `json:"hourly_rate" validate:"gte=0"`
	Status         string  `json:"status" validate:"required,oneof=active completed paused"`
}

type UpdateProjectRequest struct {
	Name           *string  `json:"name"`
	Description    *string  `json:"description"`
	OrganizationID *string  `json:"organization_id"`
	HourlyRate     *float64 `json:"hourly_rate"`
	Status         *string  `json:"status"`
}
