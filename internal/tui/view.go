package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m *Model) View() string {
	var body string
	switch m.view {
	case viewForm:
		title := "Add Objective"
		if m.tracker.IsEditing() {
			title = "Edit Objective"
		}
		body = m.styles.Header.Render(title) + "\n" + m.form.view(m.styles)

	case viewProgress:
		target := m.tracker.ProgressTarget
		header := "Update Progress"
		if target != nil {
			header = "Update Progress — " + target.Title
		}
		body = m.styles.Header.Render(header) + "\n" + m.progress.view(m.styles)

	case viewConfirm:
		body = m.styles.Header.Render("Delete Objective") + "\n" +
			"This action cannot be undone.\n\n" +
			m.styles.Muted.Render("y confirm · n cancel")

	case viewContract:
		body = m.contractView()

	default:
		body = m.objectivesView()
	}

	status := m.statusMsg
	if m.loading {
		status = "Loading…"
	}
	if status == "" {
		status = "ready"
	}
	return body + "\n" + m.styles.StatusBar.Render(status)
}

func (m *Model) objectivesView() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Header.Render("SMART Objectives"))
	sb.WriteString("\n")

	sb.WriteString(m.metricsCards())
	sb.WriteString("\n")

	if filter := filterOptions[m.statusFilter]; filter != "" {
		sb.WriteString(m.styles.Muted.Render("filter: "+filter) + "\n")
	}

	if len(m.objectives) == 0 && !m.loading {
		sb.WriteString(m.styles.Muted.Render("No objectives yet. Press 'a' to add one.") + "\n")
	}

	for i, o := range m.objectives {
		marker := "  "
		line := fmt.Sprintf("%s %-40s %s %3d%%  %s",
			marker,
			truncate(o.Title, 40),
			renderBar(o.Progress, 20),
			o.Progress,
			m.styles.statusStyle(o.Status).Render(o.Status),
		)
		if i == m.cursor {
			line = m.styles.Selected.Render("> " + strings.TrimPrefix(line, "  "))
		}
		sb.WriteString(line + "\n")

		if m.tracker.ExpandedID == o.ID {
			details := fmt.Sprintf("    %s\n    KPI: %s · Weight: %d%% · Target: %s · Due: %s",
				o.Description, o.KPI, o.Weight, o.Target, o.DueDate)
			sb.WriteString(m.styles.Muted.Render(details) + "\n")
		}
	}

	sb.WriteString("\n" + m.styles.Muted.Render("enter expand · a add · e edit · p progress · d delete · f filter · s sort · c contract · r refresh · q quit"))
	return sb.String()
}

func (m *Model) metricsCards() string {
	completed, inProgress, atRisk := m.tracker.Counts(m.objectives)

	cards := []string{
		m.styles.Card.Render(fmt.Sprintf("Completed\n%d", completed)),
		m.styles.Card.Render(fmt.Sprintf("In Progress\n%d", inProgress)),
		m.styles.Card.Render(fmt.Sprintf("At Risk\n%d", atRisk)),
	}
	if m.stats != nil {
		cards = append(cards,
			m.styles.Card.Render(fmt.Sprintf("Score\n%d%%", m.stats.Score)),
			m.styles.Card.Render(fmt.Sprintf("Weight\n%d%%", m.stats.WeightTotal)),
		)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (m *Model) contractView() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Header.Render("Performance Contract"))
	sb.WriteString("\n")

	if m.contract == nil {
		sb.WriteString(m.styles.Muted.Render("Loading contract…"))
		return sb.String()
	}

	c := m.contract
	sb.WriteString(fmt.Sprintf("Period: %s    Status: %s    Completion: %d%%    Rating: %s\n\n",
		c.Period, c.Status, c.Completion, c.Rating))

	sb.WriteString(fmt.Sprintf("%-40s %-30s %-8s %-20s %s\n", "Objective", "KPI", "Weight", "Target", "Timeline"))
	sb.WriteString(strings.Repeat("-", 110) + "\n")
	for _, t := range c.Terms {
		sb.WriteString(fmt.Sprintf("%-40s %-30s %-8s %-20s %s\n",
			truncate(t.Objective, 40), truncate(t.KPI, 30),
			fmt.Sprintf("%d%%", t.Weight), truncate(t.Target, 20), t.Timeline))
	}

	sb.WriteString("\nSignatures: ")
	sb.WriteString(signature("Employee", c.Signatures.Employee))
	sb.WriteString("  " + signature("Supervisor", c.Signatures.Supervisor))
	sb.WriteString("  " + signature("Reviewer", c.Signatures.Reviewer))

	sb.WriteString("\n\n" + m.styles.Muted.Render("esc back"))
	return sb.String()
}

func signature(label string, signed bool) string {
	if signed {
		return "✓ " + label
	}
	return "✗ " + label
}

func truncate(s string, l int) string {
	r := []rune(s)
	if len(r) > l {
		return string(r[:l-1]) + "…"
	}
	return s
}
