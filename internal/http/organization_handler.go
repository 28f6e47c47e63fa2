package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "worklog-system.com/worklog-system/internal/data_models"
	middleware "worklog-system.com/worklog-system/internal/http/middlewares"
)

func (h *Handler) ListOrganizations(c echo.Context) error {
	orgs, err := h.organizations.List(c.Request().Context(), middleware.OwnerID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count":         len(orgs),
		"organizations": orgs,
	})
}

func (h *Handler) GetOrganization(c echo.Context) error {
	org, err := h.organizations.Get(c.Request().Context(), c.Param("id"), middleware.OwnerID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, org)
}

func (h *Handler) CreateOrganization(c echo.Context) error {
	var req dto.CreateOrganizationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	org, err := h.organizations.Create(c.Request().Context(), middleware.OwnerID(c), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, org)
}

func (h *Handler) UpdateOrganization(c echo.Context) error {
	var req dto.UpdateOrganizationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	org, err := h.organizations.Update(c.Request().Context(), c.Param("id"), middleware.OwnerID(c), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, org)
}

func (h *Handler) DeleteOrganization(c echo.Context) error {
	if _, err := h.organizations.Delete(c.Request().Context(), c.Param("id"), middleware.OwnerID(c)); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
