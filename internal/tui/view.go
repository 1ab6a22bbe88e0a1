package tui

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/csheth/ideascout/internal/guide"
	"github.com/csheth/ideascout/internal/progress"
)

func (m *model) View() string {
	switch m.stage {
	case stageResults:
		return m.viewResults()
	default:
		return m.viewForm()
	}
}

func (m *model) viewForm() string {
	parts := []string{m.heroView(), m.formPanel()}
	switch m.lifecycle.state {
	case stateLoading:
		parts = append(parts, m.loadingPanel())
	case stateFailed:
		parts = append(parts, m.errorBanner())
	}
	parts = append(parts, m.helpPanel(), helperStyle.Render(m.infoMessage), m.statusBarView())
	return joinNonEmpty(parts)
}

func (m *model) viewResults() string {
	m.refreshViewportIfDirty()
	input := m.lifecycle.input
	header := lipgloss.JoinHorizontal(
		lipgloss.Top,
		sectionHeaderStyle.Render(fmt.Sprintf("Generated Ideas (%d)", len(m.cards))),
		helperStyle.Render(fmt.Sprintf("  %s × %s  •  n: New Request", input.Industry, input.TechnologyFocus)),
	)
	return joinNonEmpty([]string{
		m.heroView(),
		header,
		m.viewport.View(),
		m.helpPanel(),
		helperStyle.Render(m.infoMessage),
		m.statusBarView(),
	})
}

func (m *model) heroView() string {
	title := lipgloss.JoinHorizontal(
		lipgloss.Center,
		heroTitleStyle.Render(heroTitle),
		"  ",
		heroBadgeStyle.Render(heroBadge),
	)
	return lipgloss.JoinVertical(lipgloss.Left, title, taglineStyle.Render(heroTagline))
}

func (m *model) formPanel() string {
	var b strings.Builder
	b.WriteString(sectionHeaderStyle.Render("Generate New Ideas"))
	b.WriteRune('\n')
	b.WriteRune('\n')
	b.WriteString(labelStyle.Render("Industry"))
	b.WriteRune('\n')
	b.WriteString(m.industryInput.View())
	b.WriteRune('\n')
	b.WriteString(labelStyle.Render("Technology Focus"))
	b.WriteRune('\n')
	b.WriteString(m.technologyInput.View())
	b.WriteRune('\n')
	b.WriteRune('\n')
	if m.lifecycle.loading() {
		b.WriteString(buttonBusyStyle.Render(m.spinner.View() + " Generating Ideas..."))
	} else {
		b.WriteString(buttonStyle.Render("Generate Ideas"))
		b.WriteString(helperStyle.Render("  Tab: switch field • Enter: generate • F1: help"))
	}
	if m.validationMessage != "" {
		b.WriteRune('\n')
		b.WriteString(errorStyle.Render(m.validationMessage))
	}
	return panelStyle.Render(b.String())
}

func (m *model) loadingPanel() string {
	sim := &m.lifecycle.sim
	var b strings.Builder
	b.WriteString(sectionHeaderStyle.Render(m.spinner.View() + " Processing Request"))
	b.WriteRune('\n')
	b.WriteString(helperStyle.Render("Our AI agents are collaborating to generate startup ideas for you"))
	b.WriteRune('\n')
	b.WriteRune('\n')
	b.WriteString(m.bar.ViewAs(sim.Percent() / 100))
	b.WriteRune('\n')
	elapsed := fmt.Sprintf("Elapsed time: %s", progress.FormatElapsed(sim.Elapsed()))
	gap := m.layout.barWidth - lipgloss.Width(elapsed) - lipgloss.Width(expectedWaitNotice)
	if gap < 2 {
		gap = 2
	}
	b.WriteString(helperStyle.Render(elapsed + strings.Repeat(" ", gap) + expectedWaitNotice))
	b.WriteRune('\n')
	b.WriteRune('\n')
	b.WriteString(labelStyle.Render("What's happening?"))
	b.WriteRune('\n')
	b.WriteString(helperStyle.Render("Multiple AI agents are working together to:"))
	for _, step := range pipelineSteps {
		b.WriteRune('\n')
		b.WriteString(helperStyle.Render(" • " + step))
	}
	return panelStyle.Render(b.String())
}

func (m *model) helpPanel() string {
	if !m.showHelp {
		return ""
	}
	screen := guide.Form
	if m.stage == stageResults {
		screen = guide.Results
	}
	steps := guide.Build(guide.Metadata{
		Screen:     screen,
		HasResults: len(m.cards) > 0,
		Failed:     m.lifecycle.state == stateFailed,
	})
	keyWidth := 0
	for _, step := range steps {
		keyWidth = max(keyWidth, lipgloss.Width(step.Keys))
	}
	lines := []string{labelStyle.Render("Keys")}
	for _, step := range steps {
		pad := strings.Repeat(" ", keyWidth-lipgloss.Width(step.Keys)+2)
		lines = append(lines, sectionHeaderStyle.Render(step.Keys)+pad+helperStyle.Render(step.Description))
	}
	return panelStyle.Render(joinLines(lines...))
}

func (m *model) errorBanner() string {
	body := joinLines(
		errorStyle.Bold(true).Render("Error"),
		errorStyle.Render(m.lifecycle.err),
		helperStyle.Render("Esc: Dismiss"),
	)
	return errorBannerStyle.Render(body)
}

func (m *model) statusBarView() string {
	stats := []string{
		fmt.Sprintf("State %s", m.lifecycle.state),
		fmt.Sprintf("Requests %d", m.lifecycle.submitted),
	}
	if m.activeJob.ID != "" {
		stats = append(stats, fmt.Sprintf("%s %s", m.activeJob.ID, m.activeJob.Status))
	} else if m.lastJob.ID != "" {
		stats = append(stats, fmt.Sprintf("%s %s in %s", m.lastJob.ID, m.lastJob.Status, m.lastJob.Duration.Round(100*time.Millisecond)))
	}
	if host := endpointHost(m.config.Client.Endpoint()); host != "" {
		stats = append(stats, host)
	}
	return statusBarStyle.Render(strings.Join(stats, "  •  "))
}

func endpointHost(endpoint string) string {
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return ""
	}
	return parsed.Host
}

func joinLines(lines ...string) string {
	return strings.Join(lines, "\n")
}
