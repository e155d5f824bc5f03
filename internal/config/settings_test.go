package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CAREBOOK_THEME", "")
	os.Unsetenv("CAREBOOK_THEME")
	t.Setenv("CAREBOOK_SUBMIT_TIMEOUT", "")
	os.Unsetenv("CAREBOOK_SUBMIT_TIMEOUT")
	dir := t.TempDir()

	s, err := Load(filepath.Join(dir, "missing.env"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Theme != "default" {
		t.Fatalf("Theme = %q, want default", s.Theme)
	}
	if !s.Mouse {
		t.Fatalf("expected mouse enabled by default")
	}
	if s.SubmitTimeout != SubmitTimeout {
		t.Fatalf("SubmitTimeout = %v, want %v", s.SubmitTimeout, SubmitTimeout)
	}
}

func TestLoadNonPositiveTimeoutFallsBack(t *testing.T) {
	for _, v := range []string{"0s", "-5s"} {
		t.Setenv("CAREBOOK_SUBMIT_TIMEOUT", v)
		s, err := Load(filepath.Join(t.TempDir(), "missing.env"))
		if err != nil {
			t.Fatalf("Load(%s) failed: %v", v, err)
		}
		if s.SubmitTimeout != SubmitTimeout {
			t.Fatalf("SubmitTimeout for %s = %v, want %v", v, s.SubmitTimeout, SubmitTimeout)
		}
	}
}

func TestLoadFromDotenv(t *testing.T) {
	t.Setenv("CAREBOOK_THEME", "")
	os.Unsetenv("CAREBOOK_THEME")
	t.Setenv("CAREBOOK_SUBMIT_TIMEOUT", "")
	os.Unsetenv("CAREBOOK_SUBMIT_TIMEOUT")
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	data := "CAREBOOK_THEME=dracula\nCAREBOOK_SUBMIT_TIMEOUT=2s\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	t.Cleanup(func() {
		os.Unsetenv("CAREBOOK_THEME")
		os.Unsetenv("CAREBOOK_SUBMIT_TIMEOUT")
	})

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Theme != "dracula" {
		t.Fatalf("Theme = %q, want dracula", s.Theme)
	}
	if s.SubmitTimeout != 2*time.Second {
		t.Fatalf("SubmitTimeout = %v, want 2s", s.SubmitTimeout)
	}
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("CAREBOOK_SUBMIT_TIMEOUT", "soon")
	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatalf("expected parse error for invalid duration")
	}
}
