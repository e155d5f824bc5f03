package config

import "time"

// Interpolation.
const (
	// CounterSteps is the number of ticks a counter animation is split into.
	CounterSteps = 60
	// CounterDuration is how long the hero stat counters take to reach their target.
	CounterDuration = 2 * time.Second
)

// Submission lifecycle.
const (
	// ConfirmationWindow is how long a succeeded form shows its confirmation
	// before resetting to idle with cleared fields.
	ConfirmationWindow = 3000 * time.Millisecond
	// SubmitTimeout bounds a single gateway call.
	SubmitTimeout = 10 * time.Second
	// LoginDelay and ContactDelay are the simulated gateway latencies.
	LoginDelay   = 1500 * time.Millisecond
	ContactDelay = 1500 * time.Millisecond
)

// Navigation.
const (
	// ScrollThreshold is the offset above which the nav bar is compacted.
	ScrollThreshold = 20
)

// Application settings.
const (
	AppName          = "carebook"
	BrochureFileName = "carebook-pricing.pdf"
)
