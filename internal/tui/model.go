package tui

import (
	"fmt"
	"strings"
	"time"

	progressbar "github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/ideascout/internal/cards"
	"github.com/csheth/ideascout/internal/ideas"
	"github.com/csheth/ideascout/internal/progress"
)

// Config wires runtime options into the TUI program.
type Config struct {
	Client          ideas.Client
	Timeout         time.Duration
	Industry        string
	TechnologyFocus string
}

// New returns a tea.Model ready to be mounted into a Program.
func New(config Config) tea.Model {
	return newModel(config, progress.New())
}

func newModel(config Config, sim progress.Simulator) *model {
	if config.Client == nil {
		config.Client = ideas.New(ideas.Config{})
	}
	if config.Timeout <= 0 {
		config.Timeout = ideas.DefaultTimeout
	}

	layout := newPageLayout()

	industryInput := textinput.New()
	industryInput.Placeholder = industryPlaceholder
	industryInput.CharLimit = inputCharLimit
	industryInput.Width = layout.inputWidth
	industryInput.SetValue(strings.TrimSpace(config.Industry))
	industryInput.Focus()

	technologyInput := textinput.New()
	technologyInput.Placeholder = technologyPlaceholder
	technologyInput.CharLimit = inputCharLimit
	technologyInput.Width = layout.inputWidth
	technologyInput.SetValue(strings.TrimSpace(config.TechnologyFocus))

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	bar := progressbar.New(progressbar.WithDefaultGradient(), progressbar.WithWidth(layout.barWidth))

	vp := viewport.New(layout.viewportWidth, layout.viewportHeight)
	vp.MouseWheelEnabled = true

	return &model{
		config:          config,
		stage:           stageForm,
		focus:           fieldIndustry,
		industryInput:   industryInput,
		technologyInput: technologyInput,
		spinner:         spin,
		bar:             bar,
		viewport:        vp,
		layout:          layout,
		jobs:            newJobBus(),
		lifecycle:       newLifecycle(sim),
		infoMessage:     "Fill in both fields and press Enter to generate ideas.",
	}
}

type model struct {
	config Config
	stage  stage
	focus  formField

	industryInput   textinput.Model
	technologyInput textinput.Model
	spinner         spinner.Model
	bar             progressbar.Model
	viewport        viewport.Model
	layout          pageLayout

	jobs      *jobBus
	lifecycle lifecycle
	cards     []cards.Card

	cardAnchors       []int
	viewportDirty     bool
	validationMessage string
	infoMessage       string
	showHelp          bool
	activeJob         jobSnapshot
	lastJob           jobSnapshot
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.lifecycle.loading() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case progress.PercentTickMsg, progress.ElapsedTickMsg:
		return m, m.lifecycle.sim.Update(msg)
	case jobSignalMsg:
		m.activeJob = msg.Snapshot
		return m, nil
	case jobResultEnvelope:
		m.lastJob = msg.Snapshot
		if m.activeJob.ID == msg.Snapshot.ID {
			m.activeJob = jobSnapshot{}
		}
		if msg.Payload == nil {
			return m, nil
		}
		return m.Update(msg.Payload)
	case generateResultMsg:
		return m, m.handleGenerateResult(msg)
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, m.quit()
		case tea.KeyF1:
			m.showHelp = !m.showHelp
			return m, nil
		}
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		if m.stage == stageResults {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	}
	return m, nil
}

func (m *model) resize(width, height int) {
	m.layout.Update(width, height)
	m.viewport.Width = m.layout.viewportWidth
	m.viewport.Height = m.layout.viewportHeight
	m.industryInput.Width = m.layout.inputWidth
	m.technologyInput.Width = m.layout.inputWidth
	m.bar.Width = m.layout.barWidth
	m.markViewportDirty()
}

func (m *model) quit() tea.Cmd {
	m.lifecycle.teardown()
	return tea.Quit
}

func (m *model) handleKey(key tea.KeyMsg) tea.Cmd {
	if m.lifecycle.loading() {
		// inputs and actions stay disabled until the request resolves
		return nil
	}
	switch m.stage {
	case stageResults:
		return m.handleResultsKey(key)
	default:
		return m.handleFormKey(key)
	}
}

func (m *model) handleFormKey(key tea.KeyMsg) tea.Cmd {
	switch key.Type {
	case tea.KeyEsc:
		switch {
		case m.lifecycle.state == stateFailed:
			m.dismissError()
			return nil
		case m.validationMessage != "":
			m.validationMessage = ""
			return nil
		case len(m.cards) > 0:
			m.showResults()
			return nil
		default:
			return m.quit()
		}
	case tea.KeyTab, tea.KeyDown:
		return m.setFocus(m.focus + 1)
	case tea.KeyShiftTab, tea.KeyUp:
		return m.setFocus(m.focus - 1)
	case tea.KeyCtrlR:
		m.reset()
		return nil
	case tea.KeyEnter:
		return m.submitForm()
	}
	var cmd tea.Cmd
	if m.focus == fieldIndustry {
		m.industryInput, cmd = m.industryInput.Update(key)
	} else {
		m.technologyInput, cmd = m.technologyInput.Update(key)
	}
	if m.validationMessage != "" && m.formComplete() {
		m.validationMessage = ""
	}
	return cmd
}

func (m *model) handleResultsKey(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "n":
		m.reset()
		return nil
	case "?":
		m.showHelp = !m.showHelp
		return nil
	case "i", "e", "tab":
		m.stage = stageForm
		m.infoMessage = "Edit the fields and press Enter to generate again. Esc returns to the results."
		return m.setFocus(fieldIndustry)
	case "g":
		m.viewport.GotoTop()
		return nil
	case "G":
		m.viewport.GotoBottom()
		return nil
	case "]":
		m.jumpToRelativeCard(1)
		return nil
	case "[":
		m.jumpToRelativeCard(-1)
		return nil
	case "q", "esc":
		return m.quit()
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(key)
	return cmd
}

func (m *model) setFocus(target formField) tea.Cmd {
	if target < fieldIndustry {
		target = fieldTechnology
	}
	if target > fieldTechnology {
		target = fieldIndustry
	}
	m.focus = target
	if target == fieldIndustry {
		m.technologyInput.Blur()
		return m.industryInput.Focus()
	}
	m.industryInput.Blur()
	return m.technologyInput.Focus()
}

func (m *model) formInput() ideas.Request {
	return ideas.Request{
		Industry:        strings.TrimSpace(m.industryInput.Value()),
		TechnologyFocus: strings.TrimSpace(m.technologyInput.Value()),
	}
}

func (m *model) formComplete() bool {
	input := m.formInput()
	return input.Industry != "" && input.TechnologyFocus != ""
}

func (m *model) submitForm() tea.Cmd {
	input := m.formInput()
	if input.Industry == "" || input.TechnologyFocus == "" {
		m.validationMessage = validationMessage
		if input.Industry == "" {
			return m.setFocus(fieldIndustry)
		}
		return m.setFocus(fieldTechnology)
	}
	return m.submit(input)
}

// submit hands the input to the lifecycle. It does not validate; the form
// does that before calling.
func (m *model) submit(input ideas.Request) tea.Cmd {
	cmd := m.lifecycle.submit(m.config.Client, m.jobs, m.config.Timeout, input)
	if cmd == nil {
		return nil
	}
	m.validationMessage = ""
	m.cards = nil
	m.cardAnchors = nil
	m.stage = stageForm
	m.industryInput.Blur()
	m.technologyInput.Blur()
	m.infoMessage = "Our AI agents are collaborating to generate startup ideas for you."
	m.markViewportDirty()
	return tea.Batch(cmd, m.spinner.Tick)
}

func (m *model) handleGenerateResult(msg generateResultMsg) tea.Cmd {
	if !m.lifecycle.complete(msg) {
		return nil
	}
	elapsed := progress.FormatElapsed(m.lifecycle.sim.Elapsed())
	switch m.lifecycle.state {
	case stateFailed:
		m.stage = stageForm
		m.infoMessage = "Request failed. Press Enter to retry or Esc to dismiss."
		return m.setFocus(m.focus)
	case stateSucceeded:
		input := m.lifecycle.input
		m.cards = cards.Build(cards.Input{Industry: input.Industry, TechnologyFocus: input.TechnologyFocus}, m.lifecycle.results)
		m.markViewportDirty()
		if len(m.cards) == 0 {
			m.stage = stageForm
			m.infoMessage = fmt.Sprintf("The service returned no ideas after %s. Try another combination.", elapsed)
			return m.setFocus(m.focus)
		}
		m.showResults()
		m.viewport.GotoTop()
		m.infoMessage = fmt.Sprintf("Generated %d idea(s) in %s. ↑/↓ scroll • [/] jump between ideas • n new request • i edit • q quit", len(m.cards), elapsed)
	}
	return nil
}

func (m *model) showResults() {
	m.stage = stageResults
	m.industryInput.Blur()
	m.technologyInput.Blur()
	m.markViewportDirty()
}

func (m *model) dismissError() {
	if m.lifecycle.dismissError() {
		m.cards = nil
		m.cardAnchors = nil
		m.infoMessage = "Error dismissed."
		m.markViewportDirty()
	}
}

// reset clears both fields and any results ("New Request").
func (m *model) reset() {
	m.lifecycle.reset()
	m.industryInput.SetValue("")
	m.technologyInput.SetValue("")
	m.cards = nil
	m.cardAnchors = nil
	m.validationMessage = ""
	m.stage = stageForm
	m.viewport.SetContent("")
	m.viewport.SetYOffset(0)
	m.infoMessage = "Ready for a new request."
	m.setFocus(fieldIndustry)
	m.markViewportDirty()
}

func (m *model) markViewportDirty() {
	m.viewportDirty = true
}

func (m *model) refreshViewportIfDirty() {
	if !m.viewportDirty {
		return
	}
	m.viewportDirty = false
	offset := m.viewport.YOffset
	view := buildResultsContent(m.cards, m.viewport.Width)
	m.cardAnchors = view.anchors
	m.viewport.SetContent(view.content)
	m.viewport.SetYOffset(offset)
}

func (m *model) jumpToRelativeCard(delta int) {
	m.refreshViewportIfDirty()
	if len(m.cardAnchors) == 0 {
		m.infoMessage = "No ideas to jump between."
		return
	}
	current := m.viewport.YOffset
	if delta > 0 {
		for _, line := range m.cardAnchors {
			if line > current {
				m.viewport.SetYOffset(line)
				return
			}
		}
		m.infoMessage = "Already at the last idea."
		return
	}
	for i := len(m.cardAnchors) - 1; i >= 0; i-- {
		if m.cardAnchors[i] < current {
			m.viewport.SetYOffset(m.cardAnchors[i])
			return
		}
	}
	m.infoMessage = "Already at the first idea."
}
