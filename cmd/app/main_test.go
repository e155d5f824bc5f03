package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/akyairhashvil/carebook/internal/config"
)

func TestSetupLoggingWritesToFile(t *testing.T) {
	orig := log.Writer()
	t.Cleanup(func() { log.SetOutput(orig) })

	path := filepath.Join(t.TempDir(), "carebook.log")
	closeLog, err := setupLogging(path)
	if err != nil {
		t.Fatalf("setupLogging failed: %v", err)
	}
	log.Print("hello")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Fatalf("expected log line in file, got %q", data)
	}
}

func TestSetupLoggingWithoutPathDiscards(t *testing.T) {
	orig := log.Writer()
	t.Cleanup(func() { log.SetOutput(orig) })

	closeLog, err := setupLogging("")
	if err != nil {
		t.Fatalf("setupLogging failed: %v", err)
	}
	defer closeLog()
	if log.Writer() != io.Discard {
		t.Fatalf("expected logger to discard output")
	}
}

func TestProgramOptions(t *testing.T) {
	if got := len(programOptions(config.Settings{})); got != 1 {
		t.Fatalf("expected alt screen only, got %d options", got)
	}
	if got := len(programOptions(config.Settings{Mouse: true})); got != 2 {
		t.Fatalf("expected alt screen and mouse, got %d options", got)
	}
}
