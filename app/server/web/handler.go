// Package web provides HTTP handlers for the web UI.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"github.com/go-pkgz/routegroup"

	"github.com/umputun/dusk/app/server/internal"
	"github.com/umputun/dusk/app/system"
)

//go:generate moq -out mocks/sessions.go -pkg mocks -skip-ensure -fmt goimports . Sessions

//go:embed static
var staticFS embed.FS

//go:embed templates
var templatesFS embed.FS

// StaticFS returns the embedded static filesystem for external use.
func StaticFS() (fs.FS, error) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to get static sub-filesystem: %w", err)
	}
	return sub, nil
}

// Sessions opens a theme session for a request.
type Sessions interface {
	Open(w http.ResponseWriter, r *http.Request) (*internal.Session, error)
}

// Config holds web handler configuration.
type Config struct {
	BaseURL string
}

// Handler handles web UI requests.
type Handler struct {
	sessions Sessions
	tmpl     *template.Template
	baseURL  string
}

// New creates a new web handler.
func New(sessions Sessions, cfg Config) (*Handler, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Handler{sessions: sessions, tmpl: tmpl, baseURL: cfg.BaseURL}, nil
}

// Register registers web UI routes on the given router.
func (h *Handler) Register(r *routegroup.Bundle) {
	r.HandleFunc("GET /{$}", h.handleIndex)
	r.HandleFunc("POST /web/theme", h.handleThemeToggle)
	r.HandleFunc("POST /web/theme/{theme}", h.handleThemeSet)
	r.HandleFunc("POST /web/system", h.handleSystemChange)
}

// parseTemplates parses all templates from embedded filesystem.
func parseTemplates() (*template.Template, error) {
	tmpl := template.New("")
	baseContent, err := templatesFS.ReadFile("templates/base.html")
	if err != nil {
		return nil, fmt.Errorf("read base.html: %w", err)
	}
	if _, err = tmpl.New("base.html").Parse(string(baseContent)); err != nil {
		return nil, fmt.Errorf("parse base.html: %w", err)
	}

	partial, err := templatesFS.ReadFile("templates/partials/toggle.html")
	if err != nil {
		return nil, fmt.Errorf("read partial toggle: %w", err)
	}
	if _, err = tmpl.New("toggle").Parse(string(partial)); err != nil {
		return nil, fmt.Errorf("parse partial toggle: %w", err)
	}
	return tmpl, nil
}

// templateData holds data passed to templates.
type templateData struct {
	RootClass   string
	SunClass    string
	MoonClass   string
	Theme       string
	Preference  string
	Source      string
	Preferences []string // choices offered by the preference selector
	BaseURL     string
}

// setHintHeaders asks the browser to send its color scheme with subsequent requests.
func setHintHeaders(w http.ResponseWriter) {
	w.Header().Set("Accept-CH", system.HintHeader)
	w.Header().Set("Critical-CH", system.HintHeader)
	w.Header().Add("Vary", system.HintHeader)
}

// wantsJSON reports whether the client asked for a JSON reply (script-driven requests).
func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

// url returns a URL path with the base URL prefix.
func (h *Handler) url(path string) string {
	return h.baseURL + path
}
