package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"case_track_app_go/templates"
)

// Dashboard renders the case listing in insertion order
func (h *Handler) Dashboard(c echo.Context) error {
	cases, err := h.store.List()
	if err != nil {
		h.logger.Error("failed to list cases", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load cases")
	}

	return c.Render(http.StatusOK, "dashboard.html", templates.DashboardData{
		Title:  "Dashboard | Case Tracker",
		Notice: c.QueryParam("notice"),
		Cases:  cases,
	})
}
