package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	consultx "github.com/medai-labs/medai/agent/consult"
)

var wellnessTips = []struct {
	Title   string
	Content string
}{
	{"🥗 Nutrition", "Eat balanced meals with fruits, vegetables, and lean proteins. Stay hydrated with 8+ glasses of water daily."},
	{"🏃 Exercise", "Aim for 150 minutes of moderate exercise weekly. Include strength training 2-3 times per week."},
	{"😴 Sleep", "Maintain 7-9 hours of quality sleep. Keep consistent sleep schedule for better health."},
	{"🧘 Stress Management", "Practice meditation, yoga, or deep breathing. Take regular breaks and maintain work-life balance."},
	{"🚫 Avoid Bad Habits", "Limit alcohol, avoid smoking, and reduce sugar intake. These significantly impact long-term health."},
	{"🏥 Regular Check-ups", "Visit healthcare providers annually. Early detection prevents serious conditions."},
	{"💚 Mental Health", "Maintain social connections. Seek professional help when needed. Mental health is crucial."},
	{"🧠 Brain Health", "Stay mentally active with reading and learning. Social engagement keeps mind sharp."},
}

const assessmentChecklist = `🏥 QUICK HEALTH ASSESSMENT

• Vital Signs Check
  - Blood Pressure, Heart Rate, Temperature
  - Oxygen Level, Respiratory Rate

• Medical History Review
  - Past conditions and treatments
  - Current medications
  - Allergies and sensitivities

• Lifestyle Evaluation
  - Sleep patterns and quality
  - Exercise and physical activity
  - Diet and nutrition habits
  - Stress levels and mental health

• Symptom Analysis
  - Current health concerns
  - Duration and severity
  - Associated factors

Switch to the Consultation tab to discuss any specific health concerns with our AI specialists.
Our medical experts can provide personalized guidance based on your assessment.`

func (m Model) View() string {
	sections := []string{
		m.renderHeader(),
		m.renderTabs(),
	}

	switch m.activeTab {
	case tabConsultation:
		sections = append(sections, m.renderConsultation())
	case tabAssessment:
		sections = append(sections, m.renderAssessment())
	case tabWellness:
		sections = append(sections, m.renderWellness())
	case tabSpecialists:
		sections = append(sections, m.renderSpecialists())
	case tabHistory:
		sections = append(sections, m.renderHistory())
	}

	sections = append(sections, m.renderFooter())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	title := m.styles.Header.Render(" 🏥 MedAI ")
	subtitle := m.styles.Subtitle.Render("Intelligent Healthcare Platform")

	var status string
	switch m.lifecycle.State() {
	case consultx.StateInFlight:
		status = lipgloss.JoinHorizontal(lipgloss.Center, m.spinner.View(), " ", m.styles.Warning.Render("● Analyzing"))
	case consultx.StateSucceeded:
		status = m.styles.Success.Render("● Complete")
	case consultx.StateFailed:
		status = m.styles.Danger.Render("● Error")
	default:
		status = m.styles.Success.Render("● Ready")
	}
	if m.lifecycle.DemoMode() {
		status = lipgloss.JoinHorizontal(lipgloss.Center, status, "  ", m.styles.Warning.Render("[DEMO MODE]"))
	}

	line := lipgloss.JoinHorizontal(lipgloss.Center, title, " ", subtitle, "   ", status)
	return lipgloss.JoinVertical(lipgloss.Left, line, m.styles.RenderDivider(m.width))
}

func (m Model) renderTabs() string {
	parts := make([]string, 0, len(tabTitles))
	for i, title := range tabTitles {
		if tab(i) == m.activeTab {
			parts = append(parts, m.styles.TabActive.Render(title))
		} else {
			parts = append(parts, m.styles.TabInactive.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

func (m Model) renderConsultation() string {
	var left strings.Builder
	left.WriteString(m.styles.CardTitle.Render("👨‍⚕️ Select Specialist") + "\n")
	left.WriteString(m.styles.Muted.Render("Ctrl+N / Ctrl+P to change") + "\n\n")
	for i, d := range m.roster {
		marker := "  "
		line := fmt.Sprintf("%s %s", d.Icon, d.DisplayName)
		if i == m.specialistIdx {
			marker = "▶ "
			line = m.styles.Selected.Render(line)
		}
		left.WriteString(marker + line + "\n")
	}
	left.WriteString("\n" + m.styles.CardTitle.Render("📝 Describe Your Health Concern") + "\n")
	left.WriteString(m.textarea.View())
	if m.notice != "" {
		left.WriteString("\n" + m.styles.Notice.Render("⚠ "+m.notice))
	}

	right := m.styles.CardTitle.Render("💡 AI Medical Guidance") + "\n" + m.viewport.View()

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.styles.Card.Render(left.String()),
		m.styles.Card.Render(right),
	)
}

func (m Model) renderSpecialists() string {
	var b strings.Builder
	b.WriteString(m.styles.CardTitle.Render("👨‍⚕️ Our Healthcare Specialists") + "\n\n")
	for _, d := range m.roster {
		b.WriteString(m.styles.Selected.Render(fmt.Sprintf("%s %s", d.Icon, d.DisplayName)) + "\n")
		b.WriteString(m.styles.Muted.Render(d.Blurb) + "\n\n")
	}
	return m.styles.Card.Render(b.String())
}

func (m Model) renderAssessment() string {
	var b strings.Builder
	b.WriteString(m.styles.CardTitle.Render("📊 Health Assessment") + "\n\n")
	b.WriteString(assessmentChecklist)
	return m.styles.Card.Render(b.String())
}

func (m Model) renderWellness() string {
	var b strings.Builder
	b.WriteString(m.styles.CardTitle.Render("💡 Wellness & Prevention Tips") + "\n\n")
	for _, tip := range wellnessTips {
		b.WriteString(m.styles.Selected.Render(tip.Title) + "\n")
		b.WriteString(m.styles.Muted.Render(tip.Content) + "\n\n")
	}
	return m.styles.Card.Render(b.String())
}

func (m Model) renderHistory() string {
	var b strings.Builder
	b.WriteString(m.styles.CardTitle.Render("📋 Consultation History") + "\n\n")

	if m.log.Empty() {
		b.WriteString("No consultations yet.\n\nUse the Consultation tab to start your first medical consultation.")
		return m.styles.Card.Render(b.String())
	}

	for _, e := range m.log.Entries() {
		marker := ""
		if e.WasFallback {
			marker = " (demo fallback)"
		}
		b.WriteString(fmt.Sprintf("[%s] %s%s: %s\n",
			e.Timestamp.Format("2006-01-02 15:04:05"), e.SpecialistID, marker, e.QueryPreview))
	}
	return m.styles.Card.Render(b.String())
}

func (m Model) renderFooter() string {
	help := "Tab: switch view | Ctrl+S: get guidance | Ctrl+L: clear | Ctrl+N/P: specialist | Ctrl+C: quit"
	return m.styles.Muted.Render(help)
}
