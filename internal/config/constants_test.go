package config

import "testing"

func TestConstants(t *testing.T) {
	if CounterSteps <= 0 {
		t.Fatalf("CounterSteps must be positive")
	}
	if CounterDuration <= 0 {
		t.Fatalf("CounterDuration must be positive")
	}
	if ConfirmationWindow <= 0 {
		t.Fatalf("ConfirmationWindow must be positive")
	}
	if SubmitTimeout <= LoginDelay || SubmitTimeout <= ContactDelay {
		t.Fatalf("SubmitTimeout must exceed the simulated gateway delays")
	}
	if ScrollThreshold != 20 {
		t.Fatalf("ScrollThreshold = %d, want 20", ScrollThreshold)
	}
	if AppName == "" {
		t.Fatalf("AppName should not be empty")
	}
	if HeaderHeightCompact >= HeaderHeightExpanded {
		t.Fatalf("compact header must be shorter than expanded header")
	}
	if len(ParallaxCoefficients) == 0 {
		t.Fatalf("expected at least one parallax layer")
	}
}
