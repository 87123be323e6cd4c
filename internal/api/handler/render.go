package handler

import (
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/crmdesk/crm-system/internal/api/flash"
	"github.com/crmdesk/crm-system/internal/api/middleware"
	"github.com/crmdesk/crm-system/web"
)

// TemplateRenderer satisfies echo.Renderer over the embedded page templates.
type TemplateRenderer struct {
	templates *template.Template
}

// NewRenderer parses all embedded templates. Template names are the file
// base names (home.html, record.html, ...).
func NewRenderer() (*TemplateRenderer, error) {
	t, err := template.ParseFS(web.Templates, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &TemplateRenderer{templates: t}, nil
}

func (r *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// page holds the fields every rendered page needs: the logged-in user (if
// any) and the flash messages queued for this request.
type page struct {
	Username string
	Flashes  []string
}

// newPage drains the flash queue, so call it exactly once per rendered page.
func newPage(c echo.Context) page {
	return page{
		Username: middleware.Username(c),
		Flashes:  flash.Pop(c),
	}
}
