package tui

import (
	"fmt"

	"github.com/akyairhashvil/carebook/internal/util"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Clear transient messages on keypress
	if m.Message != "" {
		if _, ok := msg.(tea.KeyMsg); ok {
			m.Message = ""
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case StateChangedMsg:
		return m.handleStateChanged()
	case FrameMsg:
		return m.handleFrame()
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.contact.ctrl.Busy() || (m.login.ctrl != nil && m.login.ctrl.Busy()) {
			m.layout()
		}
		return m, cmd
	case BrochureMsg:
		if msg.Err != nil {
			util.LogError("export brochure", msg.Err)
			m.Message = fmt.Sprintf("Could not write brochure: %v", msg.Err)
		} else {
			m.Message = "Pricing brochure saved to " + msg.Path
		}
		return m, nil
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}
