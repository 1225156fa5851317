package handler

import (
	"html/template"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hotelaria/hotel-gateway/web"
)

// Renderer adapts html/template to echo.Renderer over the embedded
// template set.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	t, err := template.ParseFS(web.Templates, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: t}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// pageData is what every surface template receives.
type pageData struct {
	Section      string
	SectionTitle string
}

var staffSections = map[string]string{
	"":              "Resumen",
	"reservaciones": "Reservaciones",
	"habitaciones":  "Habitaciones",
	"huespedes":     "Huéspedes",
	"personal":      "Personal",
	"pagos":         "Pagos",
}

var guestSections = map[string]string{
	"":          "Mi estancia",
	"reservas":  "Mis reservas",
	"estancia":  "Mi estancia",
	"pagos":     "Pagos",
	"encuestas": "Encuestas de satisfacción",
	"perfil":    "Mi perfil",
}

// PageHandler serves the HTML shells for both surfaces. All data on these
// pages is fetched client-side through the authenticated proxy; the
// handlers themselves render structure only.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

func (h *PageHandler) Login(c echo.Context) error {
	return c.Render(http.StatusOK, "login", nil)
}

func (h *PageHandler) Register(c echo.Context) error {
	return c.Render(http.StatusOK, "registro", nil)
}

func (h *PageHandler) Dashboard(c echo.Context) error {
	return renderSection(c, "dashboard", staffSections)
}

func (h *PageHandler) Portal(c echo.Context) error {
	return renderSection(c, "portal", guestSections)
}

func renderSection(c echo.Context, tmpl string, sections map[string]string) error {
	section := c.Param("section")
	title, ok := sections[section]
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "sección desconocida")
	}
	return c.Render(http.StatusOK, tmpl, pageData{Section: section, SectionTitle: title})
}
