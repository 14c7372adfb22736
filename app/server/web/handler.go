// Package web provides HTTP handlers for the dashboard page.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"math/rand/v2"
	"net/http"
	"strconv"

	"github.com/go-pkgz/routegroup"

	"github.com/umputun/skyboard/app/particle"
	"github.com/umputun/skyboard/app/scene"
)

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

// PresetProvider defines the interface for preset lookup.
type PresetProvider interface {
	Get(name string) (particle.Preset, bool)
}

// Credit is a footer author link.
type Credit struct {
	Name string
	URL  string
}

// Config holds web handler configuration.
type Config struct {
	BaseURL       string
	Title         string
	ReportURL     string // embedded report, opaque
	BrandImageURL string // header logo and favicon source, opaque
	Copyright     string
	Credits       []Credit
	DefaultPreset string
	DefaultWidth  int    // used when the request carries no width signal
	Seed          uint64 // fixed seed for every render, 0 picks a random seed per render
}

// Handler handles dashboard page requests.
type Handler struct {
	presets PresetProvider
	tmpl    *template.Template
	cfg     Config
}

// New creates a new web handler.
func New(presets PresetProvider, cfg Config) (*Handler, error) {
	if _, ok := presets.Get(cfg.DefaultPreset); !ok {
		return nil, fmt.Errorf("unknown default preset %q", cfg.DefaultPreset)
	}
	if cfg.DefaultWidth <= 0 {
		cfg.DefaultWidth = 1200
	}

	tmpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Handler{presets: presets, tmpl: tmpl, cfg: cfg}, nil
}

// Register registers web routes on the given router.
func (h *Handler) Register(r *routegroup.Bundle) {
	r.HandleFunc("GET /{$}", h.handleIndex)
	r.HandleFunc("POST /web/theme", h.handleThemeToggle)
	r.HandleFunc("GET /favicon.svg", h.handleFavicon)
}

// templateFuncs returns custom template functions.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"num": func(v float64) string {
			return strconv.FormatFloat(v, 'f', 3, 64)
		},
		"mul": func(a, b float64) float64 { return a * b },
	}
}

// parseTemplates parses all templates from embedded filesystem.
func parseTemplates() (*template.Template, error) {
	tmpl := template.New("").Funcs(templateFuncs())

	baseContent, err := templatesFS.ReadFile("templates/base.html")
	if err != nil {
		return nil, fmt.Errorf("read base.html: %w", err)
	}
	if _, err = tmpl.New("base.html").Parse(string(baseContent)); err != nil {
		return nil, fmt.Errorf("parse base.html: %w", err)
	}

	partials := []string{"scene", "particles"}
	for _, name := range partials {
		content, readErr := templatesFS.ReadFile("templates/partials/" + name + ".html")
		if readErr != nil {
			return nil, fmt.Errorf("read partial %s: %w", name, readErr)
		}
		if _, parseErr := tmpl.New(name).Parse(string(content)); parseErr != nil {
			return nil, fmt.Errorf("parse partial %s: %w", name, parseErr)
		}
	}

	return tmpl, nil
}

// templateData holds data passed to templates.
type templateData struct {
	Title         string
	ReportURL     string
	BrandImageURL string
	Copyright     string
	Credits       []Credit
	BaseURL       string
	RenderID      string
	Preset        string
	Width         int
	Particles     []particle.Particle
	Scene         scene.Decor
}

// preset returns the preset named in the request, or the default one.
// ok is false if the request names an unknown preset.
func (h *Handler) preset(name string) (particle.Preset, bool) {
	if name == "" {
		p, _ := h.presets.Get(h.cfg.DefaultPreset)
		return p, true
	}
	return h.presets.Get(name)
}

// seed returns the seed for a render: from the request, then the configured one, then random.
func (h *Handler) seed(r *http.Request) uint64 {
	if v := r.URL.Query().Get("seed"); v != "" {
		if s, err := strconv.ParseUint(v, 10, 64); err == nil {
			return s
		}
	}
	if h.cfg.Seed != 0 {
		return h.cfg.Seed
	}
	return rand.Uint64() //nolint:gosec // visual noise, not security sensitive
}
