package handlers

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImportForm(t *testing.T) {
	h, _ := newTestHandler(t)

	c, rec := setupEcho(t, "GET", "/cases/import", nil)
	assert.NoError(t, h.ImportForm(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Upload")
}

func TestImportCases(t *testing.T) {
	h, store := newTestHandler(t)

	data := "case_number,case_name,client_name,deadline,status,notes\n" +
		"C-1,Doe v. Roe,Jane Doe,2026-09-15,Open,\n" +
		"C-2,State v. Smith,ACME Corp,bad-date,Open,\n"

	c, rec := setupUpload(t, "cases.csv", data)
	assert.NoError(t, h.ImportCases(c))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	location := rec.Header().Get("Location")
	assert.Contains(t, location, url.QueryEscape("Imported 1 case(s), skipped 1 row(s)."))

	cases, err := store.List()
	assert.NoError(t, err)
	assert.Len(t, cases, 1)
}

func TestImportCases_UnsupportedExtension(t *testing.T) {
	h, store := newTestHandler(t)

	c, rec := setupUpload(t, "cases.txt", "whatever")
	assert.NoError(t, h.ImportCases(c))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), url.QueryEscape("Unsupported file type"))

	cases, err := store.List()
	assert.NoError(t, err)
	assert.Empty(t, cases, "rejected upload changes no records")
}

func TestImportCases_NoFilePart(t *testing.T) {
	h, _ := newTestHandler(t)

	form := url.Values{}
	c, rec := setupFormPost(t, "/cases/import", form)
	assert.NoError(t, h.ImportCases(c))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), url.QueryEscape("No file selected."))
}

func TestImportCases_MalformedStream(t *testing.T) {
	h, _ := newTestHandler(t)

	data := "case_number,case_name,client_name,deadline,status,notes\n" +
		"C-1,broken\n"

	c, rec := setupUpload(t, "cases.csv", data)
	assert.NoError(t, h.ImportCases(c))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), url.QueryEscape("Import failed"))
}

func TestImportTemplate(t *testing.T) {
	h, _ := newTestHandler(t)

	c, rec := setupEcho(t, "GET", "/cases/import/template", nil)
	assert.NoError(t, h.ImportTemplate(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "case_import_template.xlsx")
	assert.NotEmpty(t, rec.Body.Bytes())
}
