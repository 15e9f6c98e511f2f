package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"case_track_app_go/services"
)

// ExportCases streams the whole store as a CSV attachment. An empty store
// produces a notice instead of an empty file.
func (h *Handler) ExportCases(c echo.Context) error {
	cases, err := h.store.List()
	if err != nil {
		h.logger.Error("failed to list cases for export", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to export cases")
	}

	if len(cases) == 0 {
		return h.redirectWithNotice(c, "No cases to export.")
	}

	filename := fmt.Sprintf("cases_export_%s.csv", time.Now().UTC().Format("20060102_150405"))
	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+filename)
	c.Response().WriteHeader(http.StatusOK)

	return services.WriteCasesCSV(c.Response().Writer, cases)
}
