package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"case_track_app_go/models"
	"case_track_app_go/services"
	"case_track_app_go/templates"
)

func addCaseForm(values services.CaseSubmission, errors services.FieldErrors) templates.CaseFormData {
	return templates.CaseFormData{
		Title:    "Add Case | Case Tracker",
		Heading:  "Add Case",
		Action:   "/cases/new",
		Submit:   "Create Case",
		Values:   values,
		Errors:   errors,
		Statuses: models.CaseStatuses,
	}
}

// NewCaseForm renders an empty add-case form
func (h *Handler) NewCaseForm(c echo.Context) error {
	values := services.CaseSubmission{Status: models.DefaultCaseStatus()}
	return c.Render(http.StatusOK, "case_form.html", addCaseForm(values, nil))
}

// CreateCase validates the submission and stores a new case
func (h *Handler) CreateCase(c echo.Context) error {
	sub := submissionFromForm(c)

	if fieldErrors := services.ValidateCaseSubmission(sub); len(fieldErrors) > 0 {
		return c.Render(http.StatusBadRequest, "case_form.html", addCaseForm(sub, fieldErrors))
	}

	fields, err := sub.Fields()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid submission")
	}

	if _, err := h.store.Create(fields); err != nil {
		h.logger.Error("failed to create case", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create case")
	}

	return h.redirectWithNotice(c, "Case created.")
}

// DeleteCase removes a case. Destructive, so it is routed as POST only.
func (h *Handler) DeleteCase(c echo.Context) error {
	id, err := parseCaseID(c)
	if err != nil {
		return h.redirectWithNotice(c, "Case not found.")
	}

	removed, err := h.store.Delete(id)
	if err != nil {
		h.logger.Error("failed to delete case", zap.Uint("id", id), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete case")
	}
	if !removed {
		return h.redirectWithNotice(c, "Case not found.")
	}

	return h.redirectWithNotice(c, "Case deleted.")
}
