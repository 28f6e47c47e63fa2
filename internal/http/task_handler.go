package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "worklog-system.com/worklog-system/internal/data_models"
	middleware "worklog-system.com/worklog-system/internal/http/middlewares"
	"worklog-system.com/worklog-system/internal/services"
)

func (h *Handler) ListTasks(c echo.Context) error {
	filters := services.TaskFilters{
		ProjectID:      c.QueryParam("project_id"),
		OrganizationID: c.QueryParam("organization_id"),
	}

	tasks, err := h.tasks.List(c.Request().Context(), middleware.OwnerID(c), filters)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count": len(tasks),
		"tasks": tasks,
	})
}

func (h *Handler) GetTask(c echo.Context) error {
	task, err := h.tasks.Get(c.Request().Context(), c.Param("id"), middleware.OwnerID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	task, err := h.tasks.Create(c.Request().Context(), middleware.OwnerID(c), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	var req dto.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	task, err := h.tasks.Update(c.Request().Context(), c.Param("id"), middleware.OwnerID(c), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	if err := h.tasks.Delete(c.Request().Context(), c.Param("id"), middleware.OwnerID(c)); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
