package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/carebook/internal/brochure"
	"github.com/akyairhashvil/carebook/internal/config"
	"github.com/akyairhashvil/carebook/internal/models"
	"github.com/akyairhashvil/carebook/internal/nav"
	"github.com/akyairhashvil/carebook/internal/parallax"
	"github.com/akyairhashvil/carebook/internal/util"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const pagePad = 2

// fieldGlyphs are the decorative marks of each parallax layer, nearest first.
var fieldGlyphs = []string{"✚", "○", "·"}

func (m MainModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.focus == FocusLogin && m.login.ctrl != nil {
		modal := m.theme.Modal.Render(m.login.view(m.theme, true, m.spinner.View()))
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
	}

	state := m.nav.Current()
	parts := []string{m.renderHeader(state)}
	if state.MenuOpen {
		parts = append(parts, m.renderMenu())
	}
	parts = append(parts, m.viewport.View(), m.renderStatus())
	return strings.Join(parts, "\n")
}

// headerHeight is the nav bar height for a nav state.
func headerHeight(state nav.State) int {
	if state.Scrolled {
		return config.HeaderHeightCompact
	}
	return config.HeaderHeightExpanded
}

func (m MainModel) contentWidth() int {
	return util.Clamp(m.width, config.MinPageWidth, config.MaxPageWidth) - 2*pagePad
}

func (m MainModel) maxOffset() int {
	return max(0, m.viewport.TotalLineCount()-m.viewport.Height)
}

// layout sizes the viewport for the current chrome, re-renders the page and
// registers where each section and the parallax field ended up.
func (m *MainModel) layout() {
	if m.width == 0 {
		return
	}
	state := m.nav.Current()
	m.bodyTop = headerHeight(state)
	if state.MenuOpen {
		m.bodyTop += len(m.site.Nav)
	}
	m.viewport.Width = m.width
	m.viewport.Height = max(1, m.height-m.bodyTop-1)

	content, fieldLine := m.renderPage()
	m.viewport.SetContent(content)
	m.field.SetBounds(parallax.Rect{
		X:      pagePad,
		Y:      float64(m.bodyTop + fieldLine - m.viewport.YOffset),
		Width:  float64(m.contentWidth()),
		Height: config.HeroFieldHeight,
	})
}

func (m MainModel) renderHeader(state nav.State) string {
	brand := m.theme.Brand.Render(m.site.Brand)
	links := make([]string, len(m.site.Nav))
	for i, item := range m.site.Nav {
		links[i] = m.theme.NavLink.Render(fmt.Sprintf("%d %s", i+1, item.Label))
	}
	login := m.theme.Highlight.Render("[l] Log in")
	if state.Scrolled {
		line := brand + "  " + strings.Join(links, "  ") + "  " + login
		return ansi.Truncate(line, m.width, "…")
	}
	top := brand + m.theme.Dim.Render("  "+m.site.Tagline)
	bottom := strings.Join(links, "   ") + "   " + login
	return strings.Join([]string{
		ansi.Truncate(top, m.width, "…"),
		ansi.Truncate(bottom, m.width, "…"),
		m.theme.Dim.Render(strings.Repeat("─", m.width)),
	}, "\n")
}

func (m MainModel) renderMenu() string {
	lines := make([]string, len(m.site.Nav))
	for i, item := range m.site.Nav {
		lines[i] = ansi.Truncate(m.theme.Focused.Render(fmt.Sprintf("  %d  ", i+1))+m.theme.Header.Render(item.Label), m.width, "…")
	}
	return strings.Join(lines, "\n")
}

func (m MainModel) renderStatus() string {
	if m.Message != "" {
		return ansi.Truncate(m.theme.Success.Render(m.Message), m.width, "…")
	}
	bindings := m.keys.pageHelp()
	if m.focus != FocusPage {
		bindings = m.keys.formHelp()
	}
	return m.help.ShortHelpView(bindings)
}

// renderPage renders every section and returns the page together with the
// line the parallax field starts on.
func (m MainModel) renderPage() (string, int) {
	page := lipgloss.NewStyle().PaddingLeft(pagePad)
	m.sections.Reset()

	var blocks []string
	line := 0
	add := func(id models.SectionID, block string) {
		m.sections.Set(string(id), float64(line))
		block = page.Render(block)
		blocks = append(blocks, block)
		line += lipgloss.Height(block) + 1
	}

	heroTop := m.renderHeroTop()
	fieldLine := lipgloss.Height(heroTop) + 1
	add(models.SectionHero, heroTop+"\n\n"+m.renderField())
	add(models.SectionFeatures, m.renderFeatures())
	add(models.SectionPricing, m.renderPricing())
	add(models.SectionContact, m.contact.view(m.theme, m.focus == FocusContact, m.spinner.View()))
	add(models.SectionFooter, m.renderFooter())
	return strings.Join(blocks, "\n\n"), fieldLine
}

func (m MainModel) renderHeroTop() string {
	width := m.contentWidth()
	headline := m.theme.Title.Width(width).Render(m.site.Headline)
	subhead := m.theme.Body.Width(width).Render(m.site.Subhead)

	cellWidth := max(12, width/max(1, len(m.site.Stats)))
	cells := make([]string, len(m.site.Stats))
	for i, stat := range m.site.Stats {
		value := m.theme.Stat.Render(FormatStat(stat, m.counters[i].Current()))
		label := m.theme.Dim.Render(stat.Label)
		cells[i] = lipgloss.NewStyle().Width(cellWidth).Render(value + "\n" + label)
	}
	return lipgloss.JoinVertical(lipgloss.Left, headline, subhead, "", lipgloss.JoinHorizontal(lipgloss.Top, cells...))
}

// renderField draws the decorative glyph field. Each layer is a fixed
// scatter of glyphs shifted by the layer's eased offset.
func (m MainModel) renderField() string {
	width, height := m.contentWidth(), config.HeroFieldHeight
	grid := make([][]string, height)
	for y := range grid {
		grid[y] = make([]string, width)
	}
	// Far layers first so near glyphs overwrite them.
	for i := len(m.layers) - 1; i >= 0; i-- {
		ox, oy := m.layers[i].Offset()
		dx, dy := util.Round(ox), util.Round(oy)
		glyph := m.theme.layerStyle(i).Render(fieldGlyphs[i%len(fieldGlyphs)])
		spacing := 7 + 4*i
		for k := 0; k*spacing < width; k++ {
			x := k*spacing + (k*3+i*5)%spacing/2 + dx
			y := (k*5+i*3)%height + dy
			if x < 0 || x >= width || y < 0 || y >= height {
				continue
			}
			grid[y][x] = glyph
		}
	}
	lines := make([]string, height)
	for y, row := range grid {
		var b strings.Builder
		for _, cell := range row {
			if cell == "" {
				cell = " "
			}
			b.WriteString(cell)
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

func (m MainModel) renderFeatures() string {
	width := m.contentWidth()
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Everything the front desk needs"))
	for _, f := range m.site.Features {
		b.WriteString("\n\n")
		b.WriteString(m.theme.Highlight.Render(f.Icon+" ") + m.theme.Header.Render(f.Title))
		b.WriteString("\n")
		b.WriteString(m.theme.Body.Width(width - 2).PaddingLeft(2).Render(f.Description))
	}
	return b.String()
}

func (m MainModel) renderPricing() string {
	width := m.contentWidth()
	cardWidth := max(16, width/max(1, len(m.site.Tiers))-2)
	cards := make([]string, len(m.site.Tiers))
	for i, tier := range m.site.Tiers {
		style := m.theme.Card
		name := m.theme.Header.Render(tier.Name)
		if tier.Highlighted {
			style = m.theme.CardHighlight
			name = m.theme.Focused.Render(tier.Name + " ★")
		}
		var b strings.Builder
		b.WriteString(name)
		b.WriteString("\n")
		b.WriteString(m.theme.Stat.Render(brochure.PriceLabel(tier)))
		b.WriteString("\n")
		b.WriteString(m.theme.Dim.Render(tier.Tagline))
		b.WriteString("\n")
		for _, f := range tier.Features {
			b.WriteString("\n• " + f)
		}
		cards[i] = style.Width(cardWidth).Render(b.String())
	}
	title := m.theme.Title.Render("Pricing")
	hint := m.theme.Dim.Render("Press p to save these plans as a PDF.")
	return lipgloss.JoinVertical(lipgloss.Left, title, hint, "", lipgloss.JoinHorizontal(lipgloss.Top, cards...))
}

func (m MainModel) renderFooter() string {
	cols := make([]string, len(m.site.Footer))
	for i, col := range m.site.Footer {
		lines := []string{m.theme.Header.Render(col.Heading)}
		for _, link := range col.Links {
			lines = append(lines, m.theme.Dim.Render(link))
		}
		cols[i] = lipgloss.NewStyle().Width(16).Render(strings.Join(lines, "\n"))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Dim.Render(strings.Repeat("─", m.contentWidth())),
		lipgloss.JoinHorizontal(lipgloss.Top, cols...),
		"",
		m.theme.Dim.Render(m.site.Legal+"  v"+versionLabel()))
}
