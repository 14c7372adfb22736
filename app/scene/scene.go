// Package scene holds the page presentation state: the current display mode and the
// decorations and class sets derived from it. The particle field is owned by the caller
// and is never touched by a mode change.
package scene

import (
	"github.com/umputun/skyboard/app/enum"
	"github.com/umputun/skyboard/app/particle"
)

// State is the presentation state of a rendered page. Zero value is night.
type State struct {
	Mode enum.Mode
}

// Toggle flips the mode. Two toggles restore the original state.
func (s *State) Toggle() {
	s.Mode = s.Mode.Toggle()
}

// Classes is the set of CSS classes applied to the themed scene parts for a mode.
// Parts outside the scene (report frame, particles) follow the root class from css.
type Classes struct {
	Root   string
	Header string
	Title  string
	Toggle string
	Footer string
}

// Overlays tells which decorative layers are visible.
type Overlays struct {
	Sun            bool `json:"sun"`
	Clouds         bool `json:"clouds"`
	Moon           bool `json:"moon"`
	MoonGlow       bool `json:"moon_glow"`
	Constellations bool `json:"constellations"`
	ShootingStars  bool `json:"shooting_stars"`
	Waves          bool `json:"waves"`
}

// Decor is everything the templates need to draw the themed parts of the page.
type Decor struct {
	Mode     enum.Mode
	Next     enum.Mode // mode the toggle button switches to
	Classes  Classes
	Overlays Overlays
}

var classes = map[enum.Mode]Classes{
	enum.ModeNight: {
		Root:   "theme-night",
		Header: "glass glass-night",
		Title:  "title-night",
		Toggle: "toggle-night",
		Footer: "footer-night",
	},
	enum.ModeDay: {
		Root:   "theme-day",
		Header: "glass glass-day",
		Title:  "title-day",
		Toggle: "toggle-day",
		Footer: "footer-day",
	},
}

// Decor resolves the decorations for the current mode and the preset's optional extras.
func (s State) Decor(d particle.Decor) Decor {
	mode := enum.ModeNight
	if s.Mode.IsDay() {
		mode = enum.ModeDay
	}
	night := mode == enum.ModeNight
	return Decor{
		Mode:    mode,
		Next:    mode.Toggle(),
		Classes: classes[mode],
		Overlays: Overlays{
			Sun:            !night,
			Clouds:         !night,
			Moon:           night,
			MoonGlow:       night && d.MoonGlow,
			Constellations: night && d.Constellations,
			ShootingStars:  night && d.ShootingStars,
			Waves:          night,
		},
	}
}
