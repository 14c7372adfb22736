// Package enum defines the small closed value sets used across the app.
package enum

//go:generate go run github.com/go-pkgz/enum@latest -type mode -lower
type mode int

const (
	modeNight mode = iota // enum:alias=
	modeDay
)

//go:generate go run github.com/go-pkgz/enum@latest -type animation -lower
type animation int

const (
	animationNone animation = iota // enum:alias=
	animationTwinkle
	animationFloat
	animationDrift
)
