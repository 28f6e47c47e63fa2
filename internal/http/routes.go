package http

import (
	"time"

	"github.com/labstack/echo/v4"

	middleware "worklog-system.com/worklog-system/internal/http/middlewares"
)

func Register(e *echo.Echo, h *Handler, jwtSecret string, rateLimitPerMinute int) {
	e.GET("/health", h.Health)

	api := e.Group("",
		middleware.Auth(jwtSecret),
		middleware.RateLimiter(rateLimitPerMinute, time.Minute),
	)

	api.GET("/organizations", h.ListOrganizations)
	api.POST("/organizations", h.CreateOrganization)
	api.GET("/organizations/:id", h.GetOrganization)
	api.PUT("/organizations/:id", h.UpdateOrganization)
	api.DELETE("/organizations/:id", h.DeleteOrganization)

	api.GET("/projects", h.ListProjects)
	api.POST("/projects", h.CreateProject)
	api.GET("/projects/:id", h.GetProject)
	api.PUT("/projects/:id", h.UpdateProject)
	api.DELETE("/projects/:id", h.DeleteProject)

	api.GET("/tasks", h.ListTasks)
	api.POST("/tasks", h.CreateTask)
	api.GET("/tasks/:id", h.GetTask)
	api.PUT("/tasks/:id", h.UpdateTask)
	api.DELETE("/tasks/:id", h.DeleteTask)

	api.GET("/billing/forecast", h.GetForecast)
	api.GET("/reports", h.GetReport)

	api.GET("/profile", h.GetProfile)
	api.PUT("/profile", h.UpsertProfile)
}
