package tui

import (
	"strconv"

	"github.com/akyairhashvil/carebook/internal/config"
	"github.com/akyairhashvil/carebook/internal/models"
	"github.com/akyairhashvil/carebook/internal/util"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m MainModel) handleWindowSize(msg tea.WindowSizeMsg) (MainModel, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	m.help.Width = msg.Width
	if !m.started {
		m.startCounters()
	}
	m.layout()
	return m, m.startFrames()
}

// handleStateChanged re-reads every component after a notification and
// waits for the next one.
func (m MainModel) handleStateChanged() (MainModel, tea.Cmd) {
	m.contact = m.contact.sync()
	if m.login.ctrl != nil {
		m.login = m.login.sync()
	}
	m.layout()
	return m, m.changes.wait()
}

func (m MainModel) handleFrame() (MainModel, tea.Cmd) {
	moving := false
	for _, l := range m.layers {
		l.Step(m.field)
		if !l.Settled(m.field) {
			moving = true
		}
	}
	if m.scroller.active {
		m.scroller.limit(m.maxOffset())
		offset, active := m.scroller.step()
		m.viewport.SetYOffset(offset)
		m.hub.EmitScroll(float64(m.viewport.YOffset))
		moving = moving || active
	}
	m.layout()
	if !moving {
		m.framing = false
		return m, nil
	}
	return m, frameCmd()
}

func (m MainModel) handleMouse(msg tea.MouseMsg) (MainModel, tea.Cmd) {
	if m.focus == FocusLogin {
		return m, nil
	}
	if msg.Action == tea.MouseActionMotion {
		m.hub.EmitPointer(float64(msg.X), float64(msg.Y))
		return m, m.startFrames()
	}
	before := m.viewport.YOffset
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	if m.viewport.YOffset != before {
		m.scroller.cancel()
		m.afterScroll()
	}
	return m, cmd
}

func (m MainModel) handleKey(msg tea.KeyMsg) (MainModel, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.Close()
		return m, tea.Quit
	}
	switch m.focus {
	case FocusLogin:
		return m.handleLoginKey(msg)
	case FocusContact:
		return m.handleContactKey(msg)
	}
	return m.handlePageKey(msg)
}

func (m MainModel) handlePageKey(msg tea.KeyMsg) (MainModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Menu):
		m.nav.ToggleMenu()
		m.layout()
		return m, nil
	case key.Matches(msg, m.keys.Navigate):
		idx, _ := strconv.Atoi(msg.String())
		if idx < 1 || idx > len(m.site.Nav) {
			return m, nil
		}
		return m.navigate(m.site.Nav[idx-1].Section)
	case key.Matches(msg, m.keys.Contact):
		next, cmd := m.navigate(models.SectionContact)
		var focusCmd tea.Cmd
		next.focus = FocusContact
		next.contact, focusCmd = next.contact.focusFirst()
		next.layout()
		return next, tea.Batch(cmd, focusCmd)
	case key.Matches(msg, m.keys.Login):
		m.nav.CloseMenu()
		cmd := m.openLogin()
		return m, cmd
	case key.Matches(msg, m.keys.Replay):
		m.startCounters()
		return m, nil
	case key.Matches(msg, m.keys.Brochure):
		return m, exportBrochureCmd(m.site, util.BrochureDir(config.AppName, m.settings.BrochureDir))
	}

	before := m.viewport.YOffset
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	if m.viewport.YOffset != before {
		m.scroller.cancel()
		m.afterScroll()
	}
	return m, cmd
}

// navigate asks the nav to bring a section into view and starts the frame
// loop that eases the viewport there.
func (m MainModel) navigate(id models.SectionID) (MainModel, tea.Cmd) {
	m.scroller.sync(m.viewport.YOffset)
	if !m.nav.Navigate(string(id)) {
		m.layout()
		return m, nil
	}
	m.layout()
	return m, m.startFrames()
}

func (m MainModel) handleContactKey(msg tea.KeyMsg) (MainModel, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) {
		m.contact = m.contact.blurAll()
		m.focus = FocusPage
		m.layout()
		return m, nil
	}
	var cmd tea.Cmd
	m.contact, cmd = m.contact.update(msg, m.keys)
	m.layout()
	return m, cmd
}

func (m MainModel) handleLoginKey(msg tea.KeyMsg) (MainModel, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) {
		m.closeLogin()
		m.layout()
		return m, nil
	}
	var cmd tea.Cmd
	m.login, cmd = m.login.update(msg, m.keys)
	m.layout()
	return m, cmd
}
