package particle

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Decor lists the optional night decorations a preset enables.
type Decor struct {
	Constellations bool `yaml:"constellations" json:"constellations"`
	ShootingStars  bool `yaml:"shooting_stars" json:"shooting_stars"`
	MoonGlow       bool `yaml:"moon_glow" json:"moon_glow"`
}

// Preset is a presentation configuration of the generator.
// Viewports narrower than Threshold get NarrowCount particles, the rest get WideCount.
type Preset struct {
	Name        string `yaml:"name" json:"name"`
	Threshold   int    `yaml:"threshold" json:"threshold"`
	NarrowCount int    `yaml:"narrow" json:"narrow"`
	WideCount   int    `yaml:"wide" json:"wide"`
	Duration    Range  `yaml:"duration" json:"duration"`
	Size        Range  `yaml:"size" json:"size"`
	Opacity     Range  `yaml:"opacity" json:"opacity"`
	Animated    bool   `yaml:"animated" json:"animated"`
	Decor       Decor  `yaml:"decor" json:"decor"`
}

// built-in preset names
const (
	PresetRich   = "rich"
	PresetSimple = "simple"
)

// Rich is the full variant: animated particles, constellations, shooting stars and moon glow.
var Rich = Preset{
	Name:        PresetRich,
	Threshold:   768,
	NarrowCount: 25,
	WideCount:   50,
	Duration:    Range{Min: 3, Max: 7},
	Size:        Range{Min: 1, Max: 4},
	Opacity:     Range{Min: 0.4, Max: 1},
	Animated:    true,
	Decor:       Decor{Constellations: true, ShootingStars: true, MoonGlow: true},
}

// Simple is the plain variant with fewer, dimmer, non-animated-by-type particles.
var Simple = Preset{
	Name:        PresetSimple,
	Threshold:   768,
	NarrowCount: 20,
	WideCount:   40,
	Duration:    Range{Min: 2, Max: 5},
	Size:        Range{Min: 1, Max: 3},
	Opacity:     Range{Min: 0.3, Max: 0.8},
}

// presetName limits preset names to what can be safely carried in urls and form values.
var presetName = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// Count returns the field size for the given viewport width.
func (p Preset) Count(width int) int {
	if width < p.Threshold {
		return p.NarrowCount
	}
	return p.WideCount
}

// Validate checks name, counts, threshold and ranges.
func (p Preset) Validate() error {
	var errs []error
	switch {
	case strings.TrimSpace(p.Name) == "":
		errs = append(errs, errors.New("empty name"))
	case !presetName.MatchString(p.Name):
		errs = append(errs, fmt.Errorf("invalid name %q, allowed lower-case letters, digits, '-' and '_'", p.Name))
	}
	if p.Threshold <= 0 {
		errs = append(errs, fmt.Errorf("threshold must be positive, got %d", p.Threshold))
	}
	if p.NarrowCount < 0 || p.WideCount < 0 {
		errs = append(errs, fmt.Errorf("counts must not be negative, got %d/%d", p.NarrowCount, p.WideCount))
	}
	for name, r := range map[string]Range{"duration": p.Duration, "size": p.Size, "opacity": p.Opacity} {
		if r.Max <= r.Min || r.Min < 0 {
			errs = append(errs, fmt.Errorf("invalid %s range [%v,%v)", name, r.Min, r.Max))
		}
	}
	if p.Opacity.Max > 1 {
		errs = append(errs, fmt.Errorf("opacity above 1: %v", p.Opacity.Max))
	}
	if len(errs) > 0 {
		return fmt.Errorf("preset %q: %w", p.Name, errors.Join(errs...))
	}
	return nil
}

// Presets is a registry of presets keyed by name.
type Presets struct {
	items map[string]Preset
}

// NewPresets makes a registry holding the built-in presets.
func NewPresets() *Presets {
	return &Presets{items: map[string]Preset{PresetRich: Rich, PresetSimple: Simple}}
}

// Get returns the preset by name, case-insensitive.
func (ps *Presets) Get(name string) (Preset, bool) {
	p, ok := ps.items[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

// Names returns sorted preset names.
func (ps *Presets) Names() []string {
	res := make([]string, 0, len(ps.items))
	for name := range ps.items {
		res = append(res, name)
	}
	slices.Sort(res)
	return res
}

// List returns all presets sorted by name.
func (ps *Presets) List() []Preset {
	res := make([]Preset, 0, len(ps.items))
	for _, name := range ps.Names() {
		res = append(res, ps.items[name])
	}
	return res
}

// Add validates and registers p, replacing a preset with the same name.
func (ps *Presets) Add(p Preset) error {
	p.Name = strings.ToLower(strings.TrimSpace(p.Name))
	if err := p.Validate(); err != nil {
		return err
	}
	ps.items[p.Name] = p
	return nil
}

// presetFile is the yaml layout of a presets file.
type presetFile struct {
	Presets []Preset `yaml:"presets"`
}

// LoadFile reads presets from a yaml file and registers them over the existing ones.
// Nothing is registered if any preset in the file is invalid.
func (ps *Presets) LoadFile(path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from trusted cli flag
	if err != nil {
		return fmt.Errorf("read presets file: %w", err)
	}
	return ps.Load(data)
}

// Load parses yaml presets and registers them over the existing ones.
func (ps *Presets) Load(data []byte) error {
	var pf presetFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return fmt.Errorf("parse presets: %w", err)
	}
	for i := range pf.Presets {
		pf.Presets[i].Name = strings.ToLower(strings.TrimSpace(pf.Presets[i].Name))
		if err := pf.Presets[i].Validate(); err != nil {
			return fmt.Errorf("presets[%d]: %w", i, err)
		}
	}
	for _, p := range pf.Presets {
		ps.items[p.Name] = p
	}
	return nil
}
