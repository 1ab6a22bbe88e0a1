package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/csheth/ideascout/internal/cards"
)

type pageLayout struct {
	windowWidth    int
	windowHeight   int
	viewportWidth  int
	viewportHeight int
	inputWidth     int
	barWidth       int
}

func newPageLayout() pageLayout {
	return pageLayout{
		viewportWidth:  80,
		viewportHeight: 20,
		inputWidth:     60,
		barWidth:       60,
	}
}

func (l *pageLayout) Update(width, height int) {
	l.windowWidth = width
	l.windowHeight = height
	innerWidth := width - viewportHorizontalPadding
	if innerWidth < minViewportWidth {
		innerWidth = minViewportWidth
	}
	l.viewportWidth = innerWidth
	// hero, results header, info line, status bar and the gaps between them
	const chrome = 12
	contentHeight := height - chrome
	if contentHeight < 5 {
		contentHeight = 5
	}
	l.viewportHeight = contentHeight
	l.inputWidth = clampInt(innerWidth-8, 20, 60)
	l.barWidth = clampInt(innerWidth-8, 20, 72)
}

func clampInt(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}

type contentBuilder struct {
	builder strings.Builder
	lines   int
}

func (cb *contentBuilder) WriteString(s string) {
	cb.builder.WriteString(s)
	cb.lines += strings.Count(s, "\n")
}

func (cb *contentBuilder) WriteRune(r rune) {
	cb.builder.WriteRune(r)
	if r == '\n' {
		cb.lines++
	}
}

func (cb *contentBuilder) String() string {
	return cb.builder.String()
}

func (cb *contentBuilder) Line() int {
	return cb.lines
}

type resultsView struct {
	content string
	anchors []int
}

// buildResultsContent stacks the cards for the viewport and records the
// first line of each card so the view can jump between them.
func buildResultsContent(list []cards.Card, width int) resultsView {
	cb := &contentBuilder{}
	anchors := make([]int, 0, len(list))
	for idx, card := range list {
		if idx > 0 {
			cb.WriteRune('\n')
		}
		anchors = append(anchors, cb.Line())
		cb.WriteString(renderCard(card, width))
		cb.WriteRune('\n')
	}
	return resultsView{content: cb.String(), anchors: anchors}
}

func renderCard(card cards.Card, width int) string {
	inner := width - 4
	if inner < 20 {
		inner = 20
	}
	textWidth := inner - 2

	badge := cardBadgeStyle.Render("✓ " + card.Badge)
	title := cardTitleStyle.Render(wordwrap.String(card.Title, max(textWidth-lipgloss.Width(badge)-1, 10)))
	gap := textWidth - lipgloss.Width(title) - lipgloss.Width(badge)
	if gap < 1 {
		gap = 1
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, title, strings.Repeat(" ", gap), badge)

	lines := []string{
		header,
		helperStyle.Render(card.Subtitle),
		"",
		renderTagline(card.Tagline, textWidth),
	}
	for _, section := range card.Sections {
		lines = append(lines, "")
		lines = append(lines, sectionTitleStyle(section.Key).Render("▍"+section.Title))
		lines = append(lines, indentMultiline(renderBody(section, textWidth-2), "  "))
	}
	footer := make([]string, 0, len(card.Affordances))
	for _, label := range card.Affordances {
		footer = append(footer, affordanceStyle.Render(label))
	}
	lines = append(lines, "", lipgloss.JoinHorizontal(lipgloss.Top, footer...))
	return cardStyle.Width(inner).Render(strings.Join(lines, "\n"))
}

func renderTagline(section cards.Section, width int) string {
	if section.Fallback {
		return fallbackStyle.Render(wordwrap.String(section.Body, width))
	}
	body := wordwrap.String(section.Body, width-2)
	return cardTaglineStyle.Render(fmt.Sprintf("“%s”", body))
}

func renderBody(section cards.Section, width int) string {
	body := wordwrap.String(section.Body, width)
	if section.Fallback {
		return fallbackStyle.Render(body)
	}
	return body
}

func indentMultiline(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

func joinNonEmpty(parts []string) string {
	filtered := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		filtered = append(filtered, part)
	}
	return strings.Join(filtered, "\n\n")
}
