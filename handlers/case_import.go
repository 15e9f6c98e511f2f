package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"case_track_app_go/services"
	"case_track_app_go/templates"
)

// ImportForm renders the upload page
func (h *Handler) ImportForm(c echo.Context) error {
	return c.Render(http.StatusOK, "import.html", templates.ImportData{
		Title:  "Import Cases | Case Tracker",
		Notice: c.QueryParam("notice"),
	})
}

// ImportTemplate generates and serves the Excel import template
func (h *Handler) ImportTemplate(c echo.Context) error {
	buf, err := services.GenerateImportTemplate()
	if err != nil {
		h.logger.Error("failed to generate import template", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate template")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=case_import_template.xlsx")
	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// ImportCases handles the file upload and reports the aggregate summary.
// A rejected upload changes no records.
func (h *Handler) ImportCases(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil || fileHeader.Filename == "" {
		return h.redirectWithNotice(c, "No file selected.")
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext != ".csv" && ext != ".xlsx" {
		return h.redirectWithNotice(c, "Unsupported file type. Please upload a .csv or .xlsx file.")
	}

	src, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("failed to open upload", zap.String("filename", fileHeader.Filename), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to open file")
	}
	defer src.Close()

	result, err := h.importer.Import(src, fileHeader.Filename)
	if err != nil {
		h.logger.Error("case import failed", zap.String("filename", fileHeader.Filename), zap.Error(err))
		return h.redirectWithNotice(c, "Import failed: the file could not be read.")
	}

	return h.redirectWithNotice(c, fmt.Sprintf("Imported %d case(s), skipped %d row(s).", result.Accepted, result.Skipped))
}
