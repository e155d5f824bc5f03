package util

import (
	"path/filepath"
	"testing"
)

func TestParseUserDir(t *testing.T) {
	data := "# comment\nXDG_DESKTOP_DIR=\"$HOME/Desktop\"\nXDG_DOCUMENTS_DIR=\"$HOME/Docs\"\n"
	if got := parseUserDir(data, "XDG_DOCUMENTS_DIR"); got != "$HOME/Docs" {
		t.Fatalf("parseUserDir = %q", got)
	}
	if got := parseUserDir(data, "XDG_MUSIC_DIR"); got != "" {
		t.Fatalf("expected empty result for missing key, got %q", got)
	}
}

func TestBrochureDir(t *testing.T) {
	dir := t.TempDir()
	if got := BrochureDir("carebook", dir); got != dir {
		t.Fatalf("expected override to win, got %q", got)
	}
	t.Setenv("XDG_DOCUMENTS_DIR", dir)
	if got := BrochureDir("carebook", ""); got != filepath.Join(dir, "CAREBOOK") {
		t.Fatalf("unexpected default dir %q", got)
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	cases := map[string]string{
		"~":               home,
		"~/Docs":          filepath.Join(home, "Docs"),
		"$HOME/Documents": filepath.Join(home, "Documents"),
		"/srv/files":      "/srv/files",
		"~other/x":        "~other/x",
	}
	for in, want := range cases {
		if got := expandHome(in); got != want {
			t.Fatalf("expandHome(%q) = %q, want %q", in, got, want)
		}
	}
}
