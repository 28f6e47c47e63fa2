package validation

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	dto "worklog-system.com/worklog-system/internal/data_models"
	errs "worklog-system.com/worklog-system/internal/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func Organization(req *dto.CreateOrganizationRequest) error {
	return structFields(req).OrNil()
}

func OrganizationUpdate(req *dto.UpdateOrganizationRequest) error {
	vErr := &errs.ValidationError{}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		vErr.Add("name", "must not be empty")
	}
	if req.Email != nil && *req.Email != "" {
		if err := validate.Var(*req.Email, "email"); err != nil {
			vErr.Add("email", "must be a valid email address")
		}
	}
	return vErr.OrNil()
}

func Project(req *dto.CreateProjectRequest) error {
	return structFields(req).OrNil()
}

func ProjectUpdate(req *dto.UpdateProjectRequest) error {
	vErr := &errs.ValidationError{}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		vErr.Add("name", "must not be empty")
	}
	if req.OrganizationID != nil && *req.OrganizationID == "" {
		vErr.Add("organization_id", "must not be empty")
	}
	if req.HourlyRate != nil && *req.HourlyRate < 0 {
		vErr.Add("hourly_rate", "must be greater than or equal to 0")
	}
	if req.Status != nil {
		if err := validate.Var(*req.Status, "oneof=active completed paused"); err != nil {
			vErr.Add("status", "must be one of active completed paused")
		}
	}
	return vErr.OrNil()
}

// Task validates a full task record and returns the parsed date and due
// date alongside any field failures.
func Task(req *dto.CreateTaskRequest) (time.Time, time.Time, error) {
	vErr := structFields(req)

	var date, dueDate time.Time
	if req.Date != "" {
		var ok bool
		if date, ok = parseDate(req.Date); !ok {
			vErr.Add("date", "must be a valid timestamp")
		}
	}
	if req.DueDate != "" {
		var ok bool
		if dueDate, ok = parseDate(req.DueDate); !ok {
			vErr.Add("due_date", "must be a valid timestamp")
		}
	}

	return date, dueDate, vErr.OrNil()
}

func TaskUpdate(req *dto.UpdateTaskRequest) (*time.Time, *time.Time, error) {
	vErr := &errs.ValidationError{}
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		vErr.Add("title", "must not be empty")
	}
	if req.ProjectID != nil && *req.ProjectID == "" {
		vErr.Add("project_id", "must not be empty")
	}
	if req.Hours != nil && *req.Hours < 0 {
		vErr.Add("hours", "must be greater than or equal to 0")
	}
	if req.Status != nil {
		if err := validate.Var(*req.Status, "oneof=pending in_progress completed late"); err != nil {
			vErr.Add("status", "must be one of pending in_progress completed late")
		}
	}

	var date, dueDate *time.Time
	if req.Date != nil {
		if parsed, ok := parseDate(*req.Date); ok {
			date = &parsed
		} else {
			vErr.Add("date", "must be a valid timestamp")
		}
	}
	if req.DueDate != nil {
		if parsed, ok := parseDate(*req.DueDate); ok {
			dueDate = &parsed
		} else {
			vErr.Add("due_date", "must be a valid timestamp")
		}
	}

	return date, dueDate, vErr.OrNil()
}

func Profile(req *dto.UpsertProfileRequest) error {
	vErr := structFields(req)
	if req.Document != "" && !IsDocument(req.Document) {
		vErr.Add("document", "must be a valid CPF or CNPJ")
	}
	if req.CompanyCNPJ != "" && !IsValidCNPJ(req.CompanyCNPJ) {
		vErr.Add("company_cnpj", "must be a valid CNPJ")
	}
	return vErr.OrNil()
}

func structFields(req any) *errs.ValidationError {
	vErr := &errs.ValidationError{}
	if err := validate.Struct(req); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			vErr.Add(fe.Field(), reason(fe))
		}
	}
	return vErr
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "oneof":
		return "must be one of " + fe.Param()
	default:
		return "is invalid"
	}
}

func parseDate(value string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, true
	}
	return time.Time{}, false
}
