package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/akyairhashvil/carebook/internal/config"
	"github.com/akyairhashvil/carebook/internal/submission"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// formView binds text inputs to a submission controller. The controller is
// the source of truth; inputs mirror its fields.
type formView struct {
	ctrl    *submission.Controller
	inputs  []textinput.Model
	focus   int // len(inputs) is the submit button
	unwatch func()
	title   string
	button  string
	done    string
}

func newFormView(ctrl *submission.Controller, title, button, done string, width int) formView {
	fields := ctrl.Form().Fields
	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		ti := textinput.New()
		ti.Placeholder = f.Placeholder
		ti.Prompt = ""
		ti.Width = width
		switch f.Kind {
		case submission.FieldEmail:
			ti.CharLimit = config.MaxEmailLength
		case submission.FieldMultiline:
			ti.CharLimit = config.MaxMessageLength
		case submission.FieldSecret:
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
			ti.CharLimit = config.MaxNameLength
		default:
			ti.CharLimit = config.MaxNameLength
		}
		inputs[i] = ti
	}
	return formView{ctrl: ctrl, inputs: inputs, title: title, button: button, done: done}
}

// watch forwards controller changes to n until close.
func (f *formView) watch(n *notifier) {
	f.unwatch = f.ctrl.Subscribe(func(submission.State) { n.notify() })
}

// close tears the form down: the subscription first, then the controller.
func (f *formView) close() {
	if f.unwatch != nil {
		f.unwatch()
		f.unwatch = nil
	}
	f.ctrl.Close()
}

func (f formView) focusFirst() (formView, tea.Cmd) {
	return f.setFocus(0)
}

func (f formView) blurAll() formView {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	f.focus = 0
	return f
}

func (f formView) setFocus(idx int) (formView, tea.Cmd) {
	n := len(f.inputs) + 1
	idx = ((idx % n) + n) % n
	f.focus = idx
	var cmd tea.Cmd
	for i := range f.inputs {
		if i == idx {
			cmd = f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
	return f, cmd
}

// sync copies controller fields into the inputs, e.g. after the
// post-success reset cleared them.
func (f formView) sync() formView {
	state := f.ctrl.Current()
	for i, field := range f.ctrl.Form().Fields {
		if v := state.Fields[field.Name]; f.inputs[i].Value() != v {
			f.inputs[i].SetValue(v)
		}
	}
	return f
}

func (f formView) onButton() bool { return f.focus == len(f.inputs) }

// update handles a key while the form has focus.
func (f formView) update(msg tea.KeyMsg, keys keyMap) (formView, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Next):
		return f.setFocus(f.focus + 1)
	case key.Matches(msg, keys.Prev):
		return f.setFocus(f.focus - 1)
	case key.Matches(msg, keys.Submit):
		if f.onButton() || f.focus == len(f.inputs)-1 {
			return f.submit()
		}
		return f.setFocus(f.focus + 1)
	}

	if f.onButton() || !f.ctrl.CanSubmit() {
		return f, nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	name := f.ctrl.Form().Fields[f.focus].Name
	if err := f.ctrl.SetField(name, f.inputs[f.focus].Value()); err != nil {
		f = f.sync()
	}
	return f, cmd
}

func (f formView) submit() (formView, tea.Cmd) {
	err := f.ctrl.Submit(context.Background())
	var vErr *submission.ValidationError
	if errors.As(err, &vErr) {
		for i, field := range f.ctrl.Form().Fields {
			if field.Name == vErr.Field {
				return f.setFocus(i)
			}
		}
	}
	return f, nil
}

func (f formView) view(theme Theme, focused bool, spin string) string {
	state := f.ctrl.Current()
	fields := f.ctrl.Form().Fields
	var b strings.Builder
	b.WriteString(theme.Title.Render(f.title))
	b.WriteString("\n")

	var invalid string
	var vErr *submission.ValidationError
	if state.LastError == submission.ErrorValidation && errors.As(state.Err, &vErr) {
		invalid = vErr.Field
	}

	for i, field := range fields {
		label := field.Label
		if field.Required {
			label += " *"
		}
		b.WriteString("\n")
		b.WriteString(theme.Label.Render(label))
		b.WriteString("\n")
		style := theme.Input
		if focused && f.focus == i {
			style = theme.InputFocused
		}
		b.WriteString(style.Render(f.inputs[i].View()))
		if field.Name == invalid {
			b.WriteString("\n")
			b.WriteString(theme.Error.Render(field.Label + " " + vErr.Reason))
		}
	}
	b.WriteString("\n\n")
	b.WriteString(f.statusLine(theme, focused, spin, state))
	return b.String()
}

func (f formView) statusLine(theme Theme, focused bool, spin string, state submission.State) string {
	switch state.Status {
	case submission.StatusSubmitting:
		return theme.ButtonBusy.Render(spin + " Sending…")
	case submission.StatusSucceeded:
		return theme.Success.Render("✓ " + f.done)
	}
	button := theme.Button.Render(f.button)
	if focused && f.onButton() {
		button = theme.Focused.Render("▸ ") + button
	}
	if state.LastError == submission.ErrorNetwork {
		return lipgloss.JoinVertical(lipgloss.Left,
			theme.Error.Render("Could not reach the server. Please try again."),
			button)
	}
	return button
}
