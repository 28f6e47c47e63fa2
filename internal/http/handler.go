package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	errs "worklog-system.com/worklog-system/internal/errors"
	"worklog-system.com/worklog-system/internal/services"
)

type Handler struct {
	organizations *services.OrganizationService
	projects      *services.ProjectService
	tasks         *services.TaskService
	billing       *services.BillingService
	reports       *services.ReportService
	profiles      *services.ProfileService
}

func NewHandler(
	organizations *services.OrganizationService,
	projects *services.ProjectService,
	tasks *services.TaskService,
	billing *services.BillingService,
	reports *services.ReportService,
	profiles *services.ProfileService,
) *Handler {
	return &Handler{
		organizations: organizations,
		projects:      projects,
		tasks:         tasks,
		billing:       billing,
		reports:       reports,
		profiles:      profiles,
	}
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status": "ok",
		"now":    time.Now().UTC().Format(time.RFC3339),
	})
}

// respondError maps service failures onto transport responses. Validation
// failures keep their per-field detail so callers can branch on them.
func respondError(c echo.Context, err error) error {
	var valErr *errs.ValidationError
	if errors.As(err, &valErr) {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "invalid data",
			"fields":  valErr.Fields,
		})
	}

	var incErr *errs.IncompleteDeletionError
	if errors.As(err, &incErr) {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "incomplete deletion, retry to finish remaining steps",
			"step":    incErr.Step,
		})
	}

	return echo.NewHTTPError(errs.StatusCode(err), err.Error())
}
