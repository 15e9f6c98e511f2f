package templates

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"case_track_app_go/models"
	"case_track_app_go/services"
)

//go:embed *.html
var files embed.FS

var pageNames = []string{"dashboard.html", "case_form.html", "import.html"}

// Renderer implements echo.Renderer over the embedded pages. Each page is
// parsed together with the shared layout so they can define "content"
// independently.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.ParseFS(files, "layout.html", name)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		pages[name] = t
	}

	return &Renderer{pages: pages}, nil
}

// Render satisfies echo.Renderer
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("template not found: %s", name)
	}
	return t.ExecuteTemplate(w, "layout.html", data)
}

// DashboardData feeds the dashboard page
type DashboardData struct {
	Title  string
	Notice string
	Cases  []models.Case
}

// CaseFormData feeds the shared add/edit form. Values carries the raw
// submission back so a rejected form repopulates verbatim.
type CaseFormData struct {
	Title    string
	Notice   string
	Heading  string
	Action   string
	Submit   string
	Values   services.CaseSubmission
	Errors   services.FieldErrors
	Statuses []string
}

// ImportData feeds the upload page
type ImportData struct {
	Title  string
	Notice string
}
