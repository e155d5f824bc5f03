package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/akyairhashvil/carebook/internal/clock"
	"github.com/akyairhashvil/carebook/internal/config"
	"github.com/akyairhashvil/carebook/internal/gateway"
	"github.com/akyairhashvil/carebook/internal/models"
	"github.com/akyairhashvil/carebook/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

func main() {
	// 1. Load settings
	settings, err := config.Load()
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println("carebook needs an interactive terminal.")
		os.Exit(1)
	}

	// 2. Route logs away from the alt screen
	closeLog, err := setupLogging(settings.LogFile)
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// 3. Initialize the Main Model
	clk := clock.New()
	model := tui.NewMainModel(models.DefaultSite(), settings, tui.Deps{
		Clock:   clk,
		Login:   gateway.Login(clk),
		Contact: gateway.Contact(clk),
	})

	// 4. Start Program
	p := tea.NewProgram(model, programOptions(settings)...)
	final, err := p.Run()
	if m, ok := final.(tui.MainModel); ok {
		m.Close()
	} else {
		model.Close()
	}
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}

func programOptions(settings config.Settings) []tea.ProgramOption {
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if settings.Mouse {
		opts = append(opts, tea.WithMouseAllMotion())
	}
	return opts
}

// setupLogging sends the standard logger to path, or discards it when no
// path is set so log lines never tear the UI.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, config.AppName)
	if err != nil {
		return nil, err
	}
	return func() { _ = f.Close() }, nil
}
