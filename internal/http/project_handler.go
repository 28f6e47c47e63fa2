package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "worklog-system.com/worklog-system/internal/data_models"
	middleware "worklog-system.com/worklog-system/internal/http/middlewares"
)

func (h *Handler) ListProjects(c echo.Context) error {
	projects, err := h.projects.List(
		c.Request().Context(),
		middleware.OwnerID(c),
		c.QueryParam("organization_id"),
	)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count":    len(projects),
		"projects": projects,
	})
}

func (h *Handler) GetProject(c echo.Context) error {
	project, err := h.projects.Get(c.Request().Context(), c.Param("id"), middleware.OwnerID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, project)
}

func (h *Handler) CreateProject(c echo.Context) error {
	var req dto.CreateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	project, err := h.projects.Create(c.Request().Context(), middleware.OwnerID(c), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, project)
}

func (h *Handler) UpdateProject(c echo.Context) error {
	var req dto.UpdateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	project, err := h.projects.Update(c.Request().Context(), c.Param("id"), middleware.OwnerID(c), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, project)
}

func (h *Handler) DeleteProject(c echo.Context) error {
	if _, err := h.projects.Delete(c.Request().Context(), c.Param("id"), middleware.OwnerID(c)); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
