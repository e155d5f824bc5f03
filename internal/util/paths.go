package util

import (
	"os"
	"path/filepath"
	"strings"
)

// BrochureDir is where exported documents land: override if set, otherwise
// <documents>/<APP>.
func BrochureDir(app, override string) string {
	if dir := strings.TrimSpace(override); dir != "" {
		return expandHome(dir)
	}
	return filepath.Join(DocumentsDir(), strings.ToUpper(app))
}

// DocumentsDir resolves the XDG documents directory, falling back to
// ~/Documents.
func DocumentsDir() string {
	if dir := strings.TrimSpace(os.Getenv("XDG_DOCUMENTS_DIR")); dir != "" {
		return expandHome(dir)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	if data, err := os.ReadFile(filepath.Join(home, ".config", "user-dirs.dirs")); err == nil {
		if dir := parseUserDir(string(data), "XDG_DOCUMENTS_DIR"); dir != "" {
			return expandHome(dir)
		}
	}
	return filepath.Join(home, "Documents")
}

// parseUserDir reads KEY="value" from a user-dirs.dirs file.
func parseUserDir(data, key string) string {
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "#") {
			continue
		}
		name, value, ok := strings.Cut(line, "=")
		if !ok || name != key {
			continue
		}
		return strings.Trim(value, `"`)
	}
	return ""
}

// expandHome replaces $HOME and a leading ~ with the home directory.
func expandHome(path string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	if rest, ok := strings.CutPrefix(path, "~"); ok && (rest == "" || strings.HasPrefix(rest, "/")) {
		path = "$HOME" + rest
	}
	return strings.ReplaceAll(path, "$HOME", home)
}
