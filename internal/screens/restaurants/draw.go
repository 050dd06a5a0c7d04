package restaurants

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/deliverus-owner/internal/core"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(core.ColorBorder).
			Padding(0, 1)
	selectedCardStyle = cardStyle.BorderForeground(core.ColorAccent)

	titleStyle  = lipgloss.NewStyle().Bold(true)
	imageStyle  = lipgloss.NewStyle().Foreground(core.ColorMuted).Italic(true)
	labelStyle  = lipgloss.NewStyle().Bold(true)
	valueStyle  = lipgloss.NewStyle().Bold(true).Foreground(core.ColorBrand)
	mutedStyle  = lipgloss.NewStyle().Foreground(core.ColorMuted)
	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#2e7d32")).
			Padding(0, 2)
	buttonActiveStyle = buttonStyle.Background(lipgloss.Color("#1b5e20")).Bold(true)
)

// draw lays the tree out as a vertical list of blocks, scrolled so the block
// under cursor is visible.
func draw(t Tree, cursor, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	var blocks []string
	idx := 0
	if t.Header != nil {
		blocks = append(blocks, drawHeader(*t.Header, cursor == idx, width))
		idx++
	}
	if t.Empty != "" {
		used := 0
		for _, b := range blocks {
			used += lipgloss.Height(b)
		}
		empty := lipgloss.Place(width, max(1, height-used), lipgloss.Center, lipgloss.Center, mutedStyle.Render(t.Empty))
		return strings.Join(append(blocks, empty), "\n")
	}
	for _, e := range t.Entries {
		blocks = append(blocks, drawEntry(e, cursor == idx, width))
		idx++
	}
	return scrollTo(blocks, cursor, height)
}

func drawHeader(h HeaderAction, selected bool, width int) string {
	style := buttonStyle
	if selected {
		style = buttonActiveStyle
	}
	button := style.Render("+ " + h.Label)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, button) + "\n"
}

func drawEntry(e Entry, selected bool, width int) string {
	style := cardStyle
	if selected {
		style = selectedCardStyle
	}
	inner := max(1, width-style.GetHorizontalFrameSize())

	image := "[logo] " + e.Image.URI
	if e.Image.Placeholder {
		image = "[logo] placeholder"
	}
	lines := []string{
		ansi.Truncate(titleStyle.Render(e.Title), inner, "…"),
		ansi.Truncate(imageStyle.Render(image), inner, "…"),
	}
	lines = append(lines, clampLines(e.Description, inner, descriptionLines)...)
	if e.ServiceTime != "" {
		lines = append(lines, labelStyle.Render("Avg. service time: ")+valueStyle.Render(e.ServiceTime))
	}
	lines = append(lines, labelStyle.Render("Shipping: ")+valueStyle.Render(e.Shipping))
	if len(e.Actions) > 0 {
		labels := make([]string, 0, len(e.Actions))
		for _, a := range e.Actions {
			labels = append(labels, "["+a.Label+"]")
		}
		lines = append(lines, mutedStyle.Render(strings.Join(labels, " ")))
	}
	return style.Width(max(1, width-style.GetHorizontalBorderSize())).Render(strings.Join(lines, "\n"))
}

// clampLines wraps text to width and keeps at most n lines, marking the cut with an ellipsis.
func clampLines(text string, width, n int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	wrapped := strings.Split(ansi.Wordwrap(text, width, ""), "\n")
	if len(wrapped) <= n {
		return wrapped
	}
	out := wrapped[:n]
	last := strings.TrimRight(out[n-1], " ")
	if ansi.StringWidth(last)+1 > width {
		last = ansi.Truncate(last, width-1, "")
	}
	out[n-1] = last + "…"
	return out
}

func scrollTo(blocks []string, cursor, height int) string {
	if len(blocks) == 0 {
		return ""
	}
	if cursor >= len(blocks) {
		cursor = len(blocks) - 1
	}
	start := 0
	for start < cursor && spanHeight(blocks[start:cursor+1]) > height {
		start++
	}
	var out []string
	used := 0
	for _, b := range blocks[start:] {
		h := lipgloss.Height(b)
		if used > 0 && used+h > height {
			break
		}
		out = append(out, b)
		used += h
	}
	return strings.Join(out, "\n")
}

func spanHeight(blocks []string) int {
	total := 0
	for _, b := range blocks {
		total += lipgloss.Height(b)
	}
	return total
}
