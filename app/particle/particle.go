// Package particle generates the randomized ambient particle field drawn behind the dashboard.
// A field is produced once per page render and never mutated afterwards.
package particle

import (
	"math"
	"math/rand/v2"

	"github.com/umputun/skyboard/app/enum"
)

// Particle is a single visual descriptor rendered as a small animated dot.
type Particle struct {
	ID        int            `json:"id"`
	Left      float64        `json:"left"`     // percent of viewport width, [0,100)
	Top       float64        `json:"top"`      // percent of viewport height, [0,100)
	Delay     float64        `json:"delay"`    // animation start offset in seconds, [0,6)
	Duration  float64        `json:"duration"` // animation cycle in seconds
	Size      float64        `json:"size"`     // pixels
	Opacity   float64        `json:"opacity"`
	Animation enum.Animation `json:"animation"`
}

// Range is a half-open sampling interval [Min, Max).
type Range struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

// Contains reports whether v is in [Min, Max).
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v < r.Max
}

// shared ranges, the same for every preset
var (
	PositionRange = Range{Min: 0, Max: 100}
	DelayRange    = Range{Min: 0, Max: 6}
)

// Generator produces particle fields from a random source.
// Generator is not safe for concurrent use, make one per render.
type Generator struct {
	rnd *rand.Rand
}

// NewGenerator makes a generator drawing from src.
func NewGenerator(src rand.Source) *Generator {
	return &Generator{rnd: rand.New(src)}
}

// NewSeeded makes a generator with a deterministic PCG source.
func NewSeeded(seed uint64) *Generator {
	return NewGenerator(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Generate returns a fresh field for the given viewport width.
// The number of particles is p.Count(width), each field sampled independently.
func (g *Generator) Generate(width int, p Preset) []Particle {
	n := p.Count(width)
	res := make([]Particle, n)
	for i := range res {
		res[i] = Particle{
			ID:        i,
			Left:      g.sample(PositionRange),
			Top:       g.sample(PositionRange),
			Delay:     g.sample(DelayRange),
			Duration:  g.sample(p.Duration),
			Size:      g.sample(p.Size),
			Opacity:   g.sample(p.Opacity),
			Animation: enum.AnimationNone,
		}
		if p.Animated {
			res[i].Animation = enum.Motions[g.rnd.IntN(len(enum.Motions))]
		}
	}
	return res
}

// sample draws uniformly from r. Rounding may land exactly on Max, so it is pulled back below it.
func (g *Generator) sample(r Range) float64 {
	if r.Max <= r.Min {
		return r.Min
	}
	v := r.Min + g.rnd.Float64()*(r.Max-r.Min)
	if v >= r.Max {
		v = math.Nextafter(r.Max, r.Min)
	}
	return v
}
