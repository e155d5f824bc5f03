package config

import "time"

// Layout constants.
const (
	// HeaderHeightExpanded is the nav bar height before the page is scrolled.
	HeaderHeightExpanded = 3

	// HeaderHeightCompact is the nav bar height once scrolled past ScrollThreshold.
	HeaderHeightCompact = 1

	// MinPageWidth is the narrowest width the page is laid out for.
	MinPageWidth = 40

	// MaxPageWidth caps the content column.
	MaxPageWidth = 100

	// HeroFieldHeight is the height of the parallax glyph field in the hero.
	HeroFieldHeight = 9
)

// Motion constants.
const (
	// FrameRate drives parallax easing and smooth scrolling.
	FrameRate = 30

	// FrameInterval is the duration of one animation frame.
	FrameInterval = time.Second / FrameRate

	// SpringFrequency and SpringDamping tune harmonica springs.
	SpringFrequency = 6.0
	SpringDamping   = 0.8
)

// Parallax layer coefficients, nearest first.
var ParallaxCoefficients = []float64{0.08, 0.04, 0.02}

// Input constraints.
const (
	MaxNameLength    = 60
	MaxEmailLength   = 120
	MaxMessageLength = 500
)
