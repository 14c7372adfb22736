// Package api provides JSON handlers for particle generation and theme toggling.
package api

import (
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"strconv"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/skyboard/app/enum"
	"github.com/umputun/skyboard/app/particle"
	"github.com/umputun/skyboard/app/scene"
)

// PresetProvider defines the interface for preset lookup.
type PresetProvider interface {
	Get(name string) (particle.Preset, bool)
	List() []particle.Preset
}

// Config holds api handler configuration.
type Config struct {
	DefaultPreset string
	DefaultWidth  int
}

// Handler handles API requests for /api/v1/* endpoints.
type Handler struct {
	presets PresetProvider
	cfg     Config
}

// New creates a new API handler.
func New(presets PresetProvider, cfg Config) *Handler {
	if cfg.DefaultWidth <= 0 {
		cfg.DefaultWidth = 1200
	}
	return &Handler{presets: presets, cfg: cfg}
}

// Register registers API routes on the given router.
func (h *Handler) Register(r *routegroup.Bundle) {
	r.HandleFunc("GET /particles", h.handleParticles)
	r.HandleFunc("GET /presets", h.handlePresets)
	r.HandleFunc("POST /theme/toggle", h.handleToggle)
}

// fieldResponse is the body of a particle field response.
type fieldResponse struct {
	Preset    string              `json:"preset"`
	Width     int                 `json:"width"`
	Seed      uint64              `json:"seed"`
	Count     int                 `json:"count"`
	Particles []particle.Particle `json:"particles"`
}

// handleParticles generates a particle field.
// GET /api/v1/particles?w=500&preset=rich&seed=42
func (h *Handler) handleParticles(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	name := q.Get("preset")
	if name == "" {
		name = h.cfg.DefaultPreset
	}
	p, ok := h.presets.Get(name)
	if !ok {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, nil, "unknown preset "+strconv.Quote(name))
		return
	}

	width := h.cfg.DefaultWidth
	if v := q.Get("w"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, err, "invalid width")
			return
		}
		width = parsed
	}

	seed := rand.Uint64() //nolint:gosec // visual noise
	if v := q.Get("seed"); v != "" {
		parsed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, err, "invalid seed")
			return
		}
		seed = parsed
	}

	field := particle.NewSeeded(seed).Generate(width, p)
	log.Printf("[DEBUG] api field: preset=%s, width=%d, count=%d", p.Name, width, len(field))
	rest.RenderJSON(w, fieldResponse{Preset: p.Name, Width: width, Seed: seed, Count: len(field), Particles: field})
}

// handlePresets lists the registered presets.
// GET /api/v1/presets
func (h *Handler) handlePresets(w http.ResponseWriter, _ *http.Request) {
	rest.RenderJSON(w, h.presets.List())
}

// toggleRequest is the body of a toggle call.
type toggleRequest struct {
	Mode enum.Mode `json:"mode"`
}

// handleToggle flips the posted mode and returns the new one with its overlays.
// POST /api/v1/theme/toggle {"mode":"night"}
func (h *Handler) handleToggle(w http.ResponseWriter, r *http.Request) {
	var req toggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, err, "invalid request body")
		return
	}

	state := scene.State{Mode: req.Mode}
	state.Toggle()

	p, _ := h.presets.Get(h.cfg.DefaultPreset)
	d := state.Decor(p.Decor)
	rest.RenderJSON(w, rest.JSON{"mode": state.Mode, "overlays": d.Overlays})
}
