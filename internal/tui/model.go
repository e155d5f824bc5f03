package tui

import (
	"github.com/akyairhashvil/carebook/internal/clock"
	"github.com/akyairhashvil/carebook/internal/config"
	"github.com/akyairhashvil/carebook/internal/interpolate"
	"github.com/akyairhashvil/carebook/internal/models"
	"github.com/akyairhashvil/carebook/internal/nav"
	"github.com/akyairhashvil/carebook/internal/parallax"
	"github.com/akyairhashvil/carebook/internal/platform"
	"github.com/akyairhashvil/carebook/internal/submission"
	"github.com/akyairhashvil/carebook/internal/util"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Focus defines which part of the page receives keys.
type Focus int

const (
	FocusPage Focus = iota
	FocusContact
	FocusLogin
)

// Deps are the collaborators the page mounts its components on.
type Deps struct {
	Clock   clock.Clock
	Login   submission.Gateway
	Contact submission.Gateway
}

// MainModel is the root bubbletea model: the whole marketing page.
type MainModel struct {
	site     models.Site
	settings config.Settings
	deps     Deps
	theme    Theme
	keys     keyMap

	hub      *platform.Hub
	sections *platform.Sections
	changes  *notifier
	scroller *smoothScroller

	nav      *nav.ScrollSpy
	counters []*interpolate.Interpolator
	field    *parallax.Field
	layers   []*parallax.Layer
	contact  formView
	login    formView

	viewport viewport.Model
	spinner  spinner.Model
	help     help.Model

	focus   Focus
	bodyTop int
	framing bool
	started bool
	closed  *bool
	Message string
	width   int
	height  int
}

func NewMainModel(site models.Site, settings config.Settings, deps Deps) MainModel {
	if deps.Clock == nil {
		deps.Clock = clock.New()
	}
	m := MainModel{
		site:     site,
		settings: settings,
		deps:     deps,
		theme:    ResolveTheme(settings.Theme),
		keys:     newKeyMap(),
		hub:      platform.NewHub(),
		sections: platform.NewSections(),
		changes:  newNotifier(),
		scroller: newSmoothScroller(),
		viewport: viewport.New(config.MinPageWidth, 10),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:     help.New(),
		closed:   new(bool),
	}
	m.spinner.Style = m.theme.Focused
	changes := m.changes

	m.nav = nav.New(m.sections, m.scroller)
	m.nav.Attach(m.hub)
	m.nav.Subscribe(func(nav.State) { changes.notify() })

	for range site.Stats {
		c := interpolate.New(deps.Clock)
		c.Subscribe(func(interpolate.CounterState) { changes.notify() })
		m.counters = append(m.counters, c)
	}

	m.field = parallax.NewField(parallax.Rect{})
	m.field.Attach(m.hub)
	for _, coef := range config.ParallaxCoefficients {
		m.layers = append(m.layers, parallax.NewLayer(coef, config.FrameRate, config.SpringFrequency, config.SpringDamping))
	}

	ctrl := submission.NewController(submission.ContactForm(), deps.Contact, deps.Clock,
		submission.WithTimeout(settings.SubmitTimeout))
	m.contact = newFormView(ctrl, "Talk to our team", "Send message", "Message sent. We'll be in touch within one business day.", 40)
	m.contact.watch(m.changes)
	return m
}

func (m MainModel) Init() tea.Cmd {
	return tea.Batch(m.changes.wait(), m.spinner.Tick)
}

// Close tears every component down: timers stop and listeners detach.
// It is safe to call more than once.
func (m MainModel) Close() {
	if *m.closed {
		return
	}
	*m.closed = true
	for _, c := range m.counters {
		c.Close()
	}
	m.nav.Close()
	m.field.Close()
	m.contact.close()
	if m.login.ctrl != nil {
		m.login.close()
	}
}

func (m *MainModel) startCounters() {
	for i, stat := range m.site.Stats {
		util.LogError("start counter", m.counters[i].Start(stat.Value, config.CounterDuration))
	}
	m.started = true
}

func (m *MainModel) openLogin() tea.Cmd {
	ctrl := submission.NewController(submission.LoginForm(), m.deps.Login, m.deps.Clock,
		submission.WithTimeout(m.settings.SubmitTimeout))
	m.login = newFormView(ctrl, "Log in to carebook", "Log in", "Welcome back! Redirecting to your dashboard…", 32)
	m.login.watch(m.changes)
	m.focus = FocusLogin
	var cmd tea.Cmd
	m.login, cmd = m.login.focusFirst()
	return cmd
}

func (m *MainModel) closeLogin() {
	if m.login.ctrl != nil {
		m.login.close()
	}
	m.login = formView{}
	m.focus = FocusPage
}

// startFrames begins the animation frame loop unless it is already running.
func (m *MainModel) startFrames() tea.Cmd {
	if m.framing {
		return nil
	}
	m.framing = true
	return frameCmd()
}

// afterScroll publishes the viewport offset to scroll listeners.
func (m *MainModel) afterScroll() {
	m.scroller.sync(m.viewport.YOffset)
	m.hub.EmitScroll(float64(m.viewport.YOffset))
	m.layout()
}
