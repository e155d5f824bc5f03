package tui

import (
	"time"

	"github.com/akyairhashvil/carebook/internal/brochure"
	"github.com/akyairhashvil/carebook/internal/config"
	"github.com/akyairhashvil/carebook/internal/models"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---

// FrameMsg advances eased animations (parallax layers, smooth scroll).
type FrameMsg time.Time

// StateChangedMsg reports that some interaction component published a change.
type StateChangedMsg struct{}

// BrochureMsg carries the outcome of a pricing PDF export.
type BrochureMsg struct {
	Path string
	Err  error
}

func frameCmd() tea.Cmd {
	return tea.Tick(config.FrameInterval, func(t time.Time) tea.Msg { return FrameMsg(t) })
}

// notifier coalesces component notifications into at most one pending
// StateChangedMsg. Components publish from timer goroutines, so delivery
// never blocks them.
type notifier struct {
	ch chan struct{}
}

func newNotifier() *notifier {
	return &notifier{ch: make(chan struct{}, 1)}
}

func (n *notifier) notify() {
	select {
	case n.ch <- struct{}{}:
	default:
	}
}

// wait blocks until the next notification. Re-issue it after each message.
func (n *notifier) wait() tea.Cmd {
	return func() tea.Msg {
		<-n.ch
		return StateChangedMsg{}
	}
}

func exportBrochureCmd(site models.Site, dir string) tea.Cmd {
	return func() tea.Msg {
		path, err := brochure.Write(site, dir, config.BrochureFileName)
		return BrochureMsg{Path: path, Err: err}
	}
}
