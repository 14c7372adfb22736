package enum

// Toggle returns the opposite mode (night↔day). Zero value toggles like night.
func (m Mode) Toggle() Mode {
	if m == ModeDay {
		return ModeNight
	}
	return ModeDay
}

// IsDay reports whether the mode is day. Anything else, zero value included, is night.
func (m Mode) IsDay() bool { return m == ModeDay }
