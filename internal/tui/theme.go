package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name          string
	Border        lipgloss.Color
	Brand         lipgloss.Style
	Header        lipgloss.Style
	NavLink       lipgloss.Style
	Title         lipgloss.Style
	Body          lipgloss.Style
	Stat          lipgloss.Style
	Card          lipgloss.Style
	CardHighlight lipgloss.Style
	Label         lipgloss.Style
	Input         lipgloss.Style
	InputFocused  lipgloss.Style
	Button        lipgloss.Style
	ButtonBusy    lipgloss.Style
	Error         lipgloss.Style
	Success       lipgloss.Style
	Modal         lipgloss.Style
	Focused       lipgloss.Style
	Dim           lipgloss.Style
	Highlight     lipgloss.Style
	Layers        []lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:          "Default",
		Border:        lipgloss.Color("63"),
		Brand:         lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Header:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		NavLink:       lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
		Title:         lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Body:          lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Stat:          lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Card:          lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		CardHighlight: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1),
		Label:         lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Input:         lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		InputFocused:  lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1),
		Button:        lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("63")).Padding(0, 2),
		ButtonBusy:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Background(lipgloss.Color("237")).Padding(0, 2),
		Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Success:       lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Modal:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(1, 3),
		Focused:       lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:           lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Layers: []lipgloss.Style{
			lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
			lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
			lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		},
	},
	"dracula": {
		Name:          "Dracula",
		Border:        lipgloss.Color("62"),                                              // Purple
		Brand:         lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true), // Pink
		Header:        lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		NavLink:       lipgloss.NewStyle().Foreground(lipgloss.Color("117")), // Cyan
		Title:         lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Body:          lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Stat:          lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true), // Orange
		Card:          lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("60")).Padding(0, 1),
		CardHighlight: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("141")).Padding(0, 1),
		Label:         lipgloss.NewStyle().Foreground(lipgloss.Color("103")),
		Input:         lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("60")).Padding(0, 1),
		InputFocused:  lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("212")).Padding(0, 1),
		Button:        lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("141")).Padding(0, 2),
		ButtonBusy:    lipgloss.NewStyle().Foreground(lipgloss.Color("103")).Background(lipgloss.Color("236")).Padding(0, 2),
		Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // Red
		Success:       lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true),
		Modal:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("141")).Padding(1, 3),
		Focused:       lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:           lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
		Layers: []lipgloss.Style{
			lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
			lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
			lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		},
	},
}

// ResolveTheme returns the named theme, falling back to the default.
func ResolveTheme(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["default"]
}

// layerStyle picks the style of parallax layer i.
func (t Theme) layerStyle(i int) lipgloss.Style {
	if len(t.Layers) == 0 {
		return t.Dim
	}
	return t.Layers[i%len(t.Layers)]
}
