package dto

// Date fields arrive as strings and must parse as RFC 3339 or YYYY-MM-DD;
// unparseable input is a validation failure, never coerced to the current
// time.
type CreateTaskRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	ProjectID   string  `json:"project_id" validate:"required"`
	Hours       float64 `json:"hours" validate:"gte=0"`
	Date        string  `json:"date" validate:"required"`
	DueDate     string  `json:"due_date" validate:"required"`
	Status      string  `json:"status" validate:"required,oneof=pending in_progress completed late"`
}

type UpdateTaskRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	ProjectID   *string  `json:"project_id"`
	Hours       *float64 `json:"hours"`
	Date        *string  `json:"date"`
	DueDate     *string  `json:"due_date"`
	Status      *string  `json:"status"`
}
