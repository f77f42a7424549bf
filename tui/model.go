package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	consultx "github.com/medai-labs/medai/agent/consult"
	contractx "github.com/medai-labs/medai/agent/contract"
	historyx "github.com/medai-labs/medai/agent/history"
	specialistx "github.com/medai-labs/medai/agent/specialist"
)

const initialOutput = "🏥 Enter your health query and press Ctrl+S to receive AI-powered medical guidance from our specialists.\n\n" +
	"This is informational only. Always consult qualified healthcare professionals for medical diagnosis and treatment."

type tab int

const (
	tabConsultation tab = iota
	tabAssessment
	tabWellness
	tabSpecialists
	tabHistory
)

var tabTitles = []string{"🩺 Consultation", "📊 Health Assessment", "💡 Wellness Tips", "👨‍⚕️ Specialists", "📋 History"}

// outcomeMsg carries the completed consultation back onto the UI thread.
type outcomeMsg struct {
	outcome contractx.ConsultationOutcome
}

type Model struct {
	lifecycle *consultx.Lifecycle
	log       *historyx.Log
	roster    []specialistx.Descriptor

	textarea textarea.Model
	viewport viewport.Model
	spinner  spinner.Model
	styles   Styles

	activeTab     tab
	specialistIdx int
	output        string
	notice        string
	width, height int
}

func New(lc *consultx.Lifecycle, log *historyx.Log) Model {
	ta := textarea.New()
	ta.Placeholder = consultx.PlaceholderQuery
	ta.SetHeight(8)
	ta.CharLimit = 0
	ta.Focus()

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(Warning)),
	)

	vp := viewport.New(60, 18)
	vp.SetContent(initialOutput)

	return Model{
		lifecycle: lc,
		log:       log,
		roster:    specialistx.DesktopRoster(),
		textarea:  ta,
		viewport:  vp,
		spinner:   sp,
		styles:    DefaultStyles(),
		output:    initialOutput,
	}
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case spinner.TickMsg:
		if !m.lifecycle.Processing() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case outcomeMsg:
		m.output = msg.outcome.Body
		m.viewport.SetContent(m.output)
		m.viewport.GotoTop()
		m.notice = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "tab":
		m.activeTab = (m.activeTab + 1) % tab(len(tabTitles))
		return m, nil

	case "shift+tab":
		m.activeTab = (m.activeTab + tab(len(tabTitles)) - 1) % tab(len(tabTitles))
		return m, nil

	case "ctrl+n":
		m.specialistIdx = (m.specialistIdx + 1) % len(m.roster)
		return m, nil

	case "ctrl+p":
		m.specialistIdx = (m.specialistIdx + len(m.roster) - 1) % len(m.roster)
		return m, nil

	case "ctrl+s":
		if m.activeTab != tabConsultation {
			return m, nil
		}
		return m.submit()

	case "ctrl+l":
		m.clearAll()
		return m, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	if m.activeTab == tabConsultation {
		m.textarea, cmd = m.textarea.Update(msg)
		cmds = append(cmds, cmd)
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// submit hands the query to the lifecycle. Rejections surface as an inline
// notice; on acceptance the spinner starts and a command blocks until the
// outcome arrives.
func (m Model) submit() (tea.Model, tea.Cmd) {
	ch := make(chan contractx.ConsultationOutcome, 1)
	id := m.roster[m.specialistIdx].ID

	err := m.lifecycle.Submit(context.Background(), id, m.textarea.Value(), func(o contractx.ConsultationOutcome) error {
		ch <- o
		return nil
	})
	if err != nil {
		m.notice = err.Error()
		return m, nil
	}

	m.notice = ""
	m.output = "🔄 AI specialist is analyzing your query..."
	m.viewport.SetContent(m.output)

	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		return outcomeMsg{outcome: <-ch}
	})
}

func (m *Model) clearAll() {
	m.lifecycle.Clear()
	m.textarea.Reset()
	m.output = initialOutput
	m.viewport.SetContent(m.output)
	m.notice = ""
}

func (m *Model) resize() {
	if m.width <= 0 {
		return
	}
	half := m.width/2 - 4
	if half < 24 {
		half = 24
	}
	m.textarea.SetWidth(half)
	m.viewport.Width = half
	contentHeight := m.height - 10
	if contentHeight < 8 {
		contentHeight = 8
	}
	m.viewport.Height = contentHeight
}
