package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "worklog-system.com/worklog-system/internal/data_models"
	middleware "worklog-system.com/worklog-system/internal/http/middlewares"
)

func (h *Handler) GetProfile(c echo.Context) error {
	profile, err := h.profiles.Get(c.Request().Context(), middleware.OwnerID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, profile)
}

func (h *Handler) UpsertProfile(c echo.Context) error {
	var req dto.UpsertProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	profile, err := h.profiles.Upsert(c.Request().Context(), middleware.OwnerID(c), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, profile)
}
