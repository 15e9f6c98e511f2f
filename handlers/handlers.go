package handlers

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"case_track_app_go/services"
)

// Handler carries the injected collaborators for every route. There is no
// package-level state; the composing application owns the store.
type Handler struct {
	store    *services.CaseStore
	importer *services.CaseImporter
	logger   *zap.Logger
}

func New(store *services.CaseStore, importer *services.CaseImporter, logger *zap.Logger) *Handler {
	return &Handler{store: store, importer: importer, logger: logger}
}

// redirectWithNotice sends the user back to the dashboard with a one-shot
// user-visible message
func (h *Handler) redirectWithNotice(c echo.Context, notice string) error {
	return c.Redirect(http.StatusSeeOther, "/dashboard?notice="+url.QueryEscape(notice))
}

func parseCaseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// submissionFromForm captures the raw form values so a failed validation can
// repopulate the form exactly as submitted
func submissionFromForm(c echo.Context) services.CaseSubmission {
	return services.CaseSubmission{
		CaseNumber: c.FormValue("case_number"),
		CaseName:   c.FormValue("case_name"),
		ClientName: c.FormValue("client_name"),
		Deadline:   c.FormValue("deadline"),
		Status:     c.FormValue("status"),
		Notes:      c.FormValue("notes"),
	}
}
