package handlers

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"case_track_app_go/models"
	"case_track_app_go/services"
	"case_track_app_go/templates"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Unique shared memory name isolates tests from each other
	dbName := "mem_" + uuid.New().String()
	conn, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared&_busy_timeout=5000"), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	assert.NoError(t, err)

	err = conn.AutoMigrate(&models.Case{})
	assert.NoError(t, err)

	return conn
}

func newTestHandler(t *testing.T) (*Handler, *services.CaseStore) {
	t.Helper()

	store := services.NewCaseStore(setupTestDB(t))
	importer := services.NewCaseImporter(store, zap.NewNop())
	return New(store, importer, zap.NewNop()), store
}

func setupEcho(t *testing.T, method, path string, body io.Reader) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	renderer, err := templates.NewRenderer()
	assert.NoError(t, err)
	e.Renderer = renderer

	req := httptest.NewRequest(method, path, body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return c, rec
}

func setupFormPost(t *testing.T, path string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	c, rec := setupEcho(t, "POST", path, strings.NewReader(form.Encode()))
	c.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return c, rec
}

func setupUpload(t *testing.T, filename, content string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	assert.NoError(t, err)
	_, err = part.Write([]byte(content))
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	c, rec := setupEcho(t, "POST", "/cases/import", body)
	c.Request().Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	return c, rec
}

func validCaseForm() url.Values {
	form := url.Values{}
	form.Set("case_number", "C-2026-001")
	form.Set("case_name", "Doe v. Roe")
	form.Set("client_name", "Jane Doe")
	form.Set("deadline", "2026-09-15")
	form.Set("status", "Open")
	form.Set("notes", "Initial filing done")
	return form
}

func seedCase(t *testing.T, store *services.CaseStore) *models.Case {
	t.Helper()

	record, err := store.Create(services.CaseFields{
		CaseNumber: "C-2026-001",
		CaseName:   "Doe v. Roe",
		ClientName: "Jane Doe",
		Status:     models.CaseStatusOpen,
		Notes:      "Initial filing done",
	})
	assert.NoError(t, err)
	return record
}
