package web

import (
	"net/http"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/skyboard/app/enum"
	"github.com/umputun/skyboard/app/particle"
	"github.com/umputun/skyboard/app/scene"
)

// handleIndex renders the dashboard page. The particle field is generated here, once per render,
// and the page always starts at night.
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	p, ok := h.preset(r.URL.Query().Get("preset"))
	if !ok {
		log.Printf("[DEBUG] unknown preset %q, using %s", r.URL.Query().Get("preset"), h.cfg.DefaultPreset)
		p, _ = h.preset("")
	}

	width := h.viewportWidth(r)
	seed := h.seed(r)
	field := particle.NewSeeded(seed).Generate(width, p)
	log.Printf("[DEBUG] render %s: preset=%s, width=%d, seed=%d, particles=%d",
		r.Header.Get("X-Request-ID"), p.Name, width, seed, len(field))

	var state scene.State // night
	data := h.pageData(r, p)
	data.Width = width
	data.Particles = field
	data.Scene = state.Decor(p.Decor)

	requestClientHints(w)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, "base.html", data); err != nil {
		log.Printf("[ERROR] failed to execute template: %v", err)
	}
}

// handleThemeToggle flips the mode posted by the page and returns the themed scene fragment.
// Mode is not stored anywhere, the page sends its current mode with each toggle.
func (h *Handler) handleThemeToggle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		log.Printf("[WARN] failed to parse toggle form: %v", err)
	}

	state := scene.State{}
	if mode, err := enum.ParseMode(r.FormValue("mode")); err == nil {
		state.Mode = mode
	}
	state.Toggle()

	p, ok := h.preset(r.FormValue("preset"))
	if !ok {
		p, _ = h.preset("")
	}

	data := h.pageData(r, p)
	data.Scene = state.Decor(p.Decor)
	log.Printf("[DEBUG] theme toggled to %s, preset=%s", state.Mode, p.Name)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("HX-Trigger", "themeChanged")
	if err := h.tmpl.ExecuteTemplate(w, "scene", data); err != nil {
		log.Printf("[ERROR] failed to execute template: %v", err)
	}
}

// pageData fills the parts of templateData common to page and fragment renders.
func (h *Handler) pageData(r *http.Request, p particle.Preset) templateData {
	return templateData{
		Title:         h.cfg.Title,
		ReportURL:     h.cfg.ReportURL,
		BrandImageURL: h.cfg.BrandImageURL,
		Copyright:     h.cfg.Copyright,
		Credits:       h.cfg.Credits,
		BaseURL:       h.cfg.BaseURL,
		RenderID:      r.Header.Get("X-Request-ID"),
		Preset:        p.Name,
	}
}
