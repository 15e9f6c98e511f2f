package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"case_track_app_go/models"
	"case_track_app_go/services"
	"case_track_app_go/templates"
)

func editCaseForm(id uint, values services.CaseSubmission, errors services.FieldErrors) templates.CaseFormData {
	return templates.CaseFormData{
		Title:    "Edit Case | Case Tracker",
		Heading:  "Edit Case",
		Action:   fmt.Sprintf("/cases/%d/edit", id),
		Submit:   "Save Changes",
		Values:   values,
		Errors:   errors,
		Statuses: models.CaseStatuses,
	}
}

// EditCaseForm renders the edit form pre-filled from the stored record
func (h *Handler) EditCaseForm(c echo.Context) error {
	id, err := parseCaseID(c)
	if err != nil {
		return h.redirectWithNotice(c, "Case not found.")
	}

	record, err := h.store.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrCaseNotFound) {
			return h.redirectWithNotice(c, "Case not found.")
		}
		h.logger.Error("failed to load case", zap.Uint("id", id), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load case")
	}

	values := services.CaseSubmission{
		CaseNumber: record.CaseNumber,
		CaseName:   record.CaseName,
		ClientName: record.ClientName,
		Deadline:   record.DeadlineDisplay(),
		Status:     record.Status,
		Notes:      record.Notes,
	}

	return c.Render(http.StatusOK, "case_form.html", editCaseForm(id, values, nil))
}

// UpdateCase validates the submission and replaces every field except the
// identifier and created_at
func (h *Handler) UpdateCase(c echo.Context) error {
	id, err := parseCaseID(c)
	if err != nil {
		return h.redirectWithNotice(c, "Case not found.")
	}

	sub := submissionFromForm(c)

	if fieldErrors := services.ValidateCaseSubmission(sub); len(fieldErrors) > 0 {
		return c.Render(http.StatusBadRequest, "case_form.html", editCaseForm(id, sub, fieldErrors))
	}

	fields, err := sub.Fields()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid submission")
	}

	if _, err := h.store.Update(id, fields); err != nil {
		if errors.Is(err, services.ErrCaseNotFound) {
			return h.redirectWithNotice(c, "Case not found.")
		}
		h.logger.Error("failed to update case", zap.Uint("id", id), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update case")
	}

	return h.redirectWithNotice(c, "Case updated.")
}
