package handlers

import (
	"encoding/csv"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"case_track_app_go/services"
)

func TestExportCases(t *testing.T) {
	h, store := newTestHandler(t)
	seedCase(t, store)

	c, rec := setupEcho(t, "GET", "/cases/export", nil)
	assert.NoError(t, h.ExportCases(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment; filename=cases_export_")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), ".csv")

	records, err := csv.NewReader(strings.NewReader(rec.Body.String())).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, services.ExportHeader, records[0])
	assert.Equal(t, "C-2026-001", records[1][1])
}

func TestExportCases_EmptyStore(t *testing.T) {
	h, _ := newTestHandler(t)

	c, rec := setupEcho(t, "GET", "/cases/export", nil)
	assert.NoError(t, h.ExportCases(c))

	// No file is produced; the user gets a notice instead
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), "notice=No+cases+to+export.")
}
