package enum

// Motions lists the animations a particle can be assigned, all values but AnimationNone.
var Motions = []Animation{AnimationTwinkle, AnimationFloat, AnimationDrift}

// CSSClass returns the night-mode animation class for the particle.
func (a Animation) CSSClass() string {
	switch a {
	case AnimationTwinkle:
		return "animate-star-twinkle"
	case AnimationFloat:
		return "animate-star-float"
	case AnimationDrift:
		return "animate-star-drift"
	default:
		return "animate-star-twinkle"
	}
}

// Tint returns the night-mode color class for the particle.
func (a Animation) Tint() string {
	switch a {
	case AnimationFloat:
		return "tint-100"
	case AnimationDrift:
		return "tint-300"
	default:
		return "tint-200"
	}
}
