package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	errs "worklog-system.com/worklog-system/internal/errors"
	middleware "worklog-system.com/worklog-system/internal/http/middlewares"
	"worklog-system.com/worklog-system/internal/services"
)

const defaultForecastMonths = 6

func (h *Handler) GetForecast(c echo.Context) error {
	months := defaultForecastMonths
	if raw := c.QueryParam("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "months must be a positive integer")
		}
		months = parsed
	}

	forecast, err := h.billing.Forecast(c.Request().Context(), middleware.OwnerID(c), months)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, forecast)
}

func (h *Handler) GetReport(c echo.Context) error {
	filters, err := reportFilters(c)
	if err != nil {
		return respondError(c, err)
	}

	report, err := h.reports.Build(c.Request().Context(), middleware.OwnerID(c), filters)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, report)
}

func reportFilters(c echo.Context) (services.ReportFilters, error) {
	vErr := &errs.ValidationError{}

	start, ok := parseDateParam(c.QueryParam("start_date"))
	if !ok {
		vErr.Add("start_date", "must be a valid date")
	}
	end, ok := parseDateParam(c.QueryParam("end_date"))
	if !ok {
		vErr.Add("end_date", "must be a valid date")
	}
	if err := vErr.OrNil(); err != nil {
		return services.ReportFilters{}, err
	}

	return services.ReportFilters{
		Start:          start,
		End:            end,
		OrganizationID: c.QueryParam("organization_id"),
		ProjectID:      c.QueryParam("project_id"),
	}, nil
}

func parseDateParam(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, true
	}
	return time.Time{}, false
}
