package validation

import (
	"errors"
	"testing"
	"time"

	dto "worklog-system.com/worklog-system/internal/data_models"
	errs "worklog-system.com/worklog-system/internal/errors"
)

func fieldReasons(t *testing.T, err error) map[string]string {
	t.Helper()

	var valErr *errs.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	reasons := make(map[string]string, len(valErr.Fields))
	for _, field := range valErr.Fields {
		reasons[field.Field] = field.Reason
	}
	return reasons
}

func TestOrganization_EnumeratesAllFailures(t *testing.T) {
	err := Organization(&dto.CreateOrganizationRequest{
		Email: "not-an-email",
	})

	reasons := fieldReasons(t, err)
	if len(reasons) != 2 {
		t.Fatalf("expected 2 field failures, got %v", reasons)
	}
	if reasons["name"] != "is required" {
		t.Errorf("expected name required, got %q", reasons["name"])
	}
	if reasons["email"] != "must be a valid email address" {
		t.Errorf("expected email reason, got %q", reasons["email"])
	}
}

func TestOrganization_ValidPasses(t *testing.T) {
	err := Organization(&dto.CreateOrganizationRequest{
		Name:  "Acme Consulting",
		Email: "billing@acme.example",
	})
	if err != nil {
		t.Errorf("expected valid request to pass, got %v", err)
	}
}

func TestProject_RejectsBadStatusAndNegativeRate(t *testing.T) {
	err := Project(&dto.CreateProjectRequest{
		Name:           "Website",
		OrganizationID: "org-1",
		HourlyRate:     -5,
		Status:         "archived",
	})

	reasons := fieldReasons(t, err)
	if reasons["status"] != "must be one of active completed paused" {
		t.Errorf("expected status enum reason, got %q", reasons["status"])
	}
	if reasons["hourly_rate"] != "must be greater than or equal to 0" {
		t.Errorf("expected hourly_rate reason, got %q", reasons["hourly_rate"])
	}
}

func TestTask_ParsesBothDateLayouts(t *testing.T) {
	date, dueDate, err := Task(&dto.CreateTaskRequest{
		Title:     "Landing page",
		ProjectID: "p1",
		Hours:     2,
		Date:      "2025-03-10",
		DueDate:   "2025-03-20T18:00:00Z",
		Status:    "pending",
	})
	if err != nil {
		t.Fatalf("expected valid task, got %v", err)
	}
	if !date.Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected date %v", date)
	}
	if !dueDate.Equal(time.Date(2025, 3, 20, 18, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected due date %v", dueDate)
	}
}

func TestTask_RejectsUnparseableDates(t *testing.T) {
	_, _, err := Task(&dto.CreateTaskRequest{
		Title:     "Landing page",
		ProjectID: "p1",
		Hours:     2,
		Date:      "10/03/2025",
		DueDate:   "soon",
		Status:    "pending",
	})

	reasons := fieldReasons(t, err)
	if reasons["date"] != "must be a valid timestamp" {
		t.Errorf("expected date reason, got %q", reasons["date"])
	}
	if reasons["due_date"] != "must be a valid timestamp" {
		t.Errorf("expected due_date reason, got %q", reasons["due_date"])
	}
}

func TestTaskUpdate_NilFieldsAreSkipped(t *testing.T) {
	date, dueDate, err := TaskUpdate(&dto.UpdateTaskRequest{})
	if err != nil {
		t.Fatalf("expected empty update to pass, got %v", err)
	}
	if date != nil || dueDate != nil {
		t.Errorf("expected nil dates for empty update")
	}
}

func TestTaskUpdate_RejectsEmptyTitleAndBadStatus(t *testing.T) {
	empty := ""
	status := "done"
	_, _, err := TaskUpdate(&dto.UpdateTaskRequest{
		Title:  &empty,
		Status: &status,
	})

	reasons := fieldReasons(t, err)
	if _, ok := reasons["title"]; !ok {
		t.Errorf("expected title failure, got %v", reasons)
	}
	if _, ok := reasons["status"]; !ok {
		t.Errorf("expected status failure, got %v", reasons)
	}
}

func TestProfile_RequiresValidDocuments(t *testing.T) {
	err := Profile(&dto.UpsertProfileRequest{
		Email:       "freelancer@example.com",
		Document:    "123.456.789-00",
		CompanyCNPJ: "11.222.333/0001-82",
	})

	reasons := fieldReasons(t, err)
	if reasons["document"] != "must be a valid CPF or CNPJ" {
		t.Errorf("expected document reason, got %q", reasons["document"])
	}
	if reasons["company_cnpj"] != "must be a valid CNPJ" {
		t.Errorf("expected company_cnpj reason, got %q", reasons["company_cnpj"])
	}
}

func TestProfile_CNPJAsPersonalDocument(t *testing.T) {
	err := Profile(&dto.UpsertProfileRequest{
		Email:    "studio@example.com",
		Document: "11.222.333/0001-81",
	})
	if err != nil {
		t.Errorf("expected CNPJ accepted as document, got %v", err)
	}
}
