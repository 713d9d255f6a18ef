package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/example/perfdash/client"
)

var statusOptions = []string{"On Track", "At Risk", "Delayed", "Completed"}

// objectiveForm edits the create/edit dialog fields. Field order mirrors the
// dashboard form: title, description, kpi, weight, target, due date, plus a
// cycled status selector.
type objectiveForm struct {
	inputs    []textinput.Model
	labels    []string
	focus     int
	statusIdx int
	errText   string
}

const (
	fieldTitle = iota
	fieldDescription
	fieldKPI
	fieldWeight
	fieldTarget
	fieldDueDate
	fieldCount
)

func newObjectiveForm(existing *client.Objective) *objectiveForm {
	f := &objectiveForm{
		labels: []string{"Title", "Description", "KPI", "Weight (%)", "Target", "Due date (YYYY-MM-DD)"},
	}

	placeholders := []string{
		"Improve customer satisfaction score",
		"Increase the average customer satisfaction rating from 4.2 to 4.5",
		"Customer Satisfaction Rating",
		"10",
		"4.5/5.0",
		"2025-12-31",
	}

	for i := 0; i < fieldCount; i++ {
		input := textinput.New()
		input.Placeholder = placeholders[i]
		input.CharLimit = 200
		f.inputs = append(f.inputs, input)
	}
	f.inputs[fieldWeight].CharLimit = 3

	if existing != nil {
		f.inputs[fieldTitle].SetValue(existing.Title)
		f.inputs[fieldDescription].SetValue(existing.Description)
		f.inputs[fieldKPI].SetValue(existing.KPI)
		f.inputs[fieldWeight].SetValue(strconv.Itoa(existing.Weight))
		f.inputs[fieldTarget].SetValue(existing.Target)
		f.inputs[fieldDueDate].SetValue(existing.DueDate)
		for i, s := range statusOptions {
			if s == existing.Status {
				f.statusIdx = i
			}
		}
	} else {
		f.inputs[fieldWeight].SetValue("10")
	}

	f.inputs[0].Focus()
	return f
}

func (f *objectiveForm) nextField() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % (fieldCount + 1) // last slot is the status selector
	if f.focus < fieldCount {
		f.inputs[f.focus].Focus()
	}
}

func (f *objectiveForm) prevField() {
	if f.focus < fieldCount {
		f.inputs[f.focus].Blur()
	}
	f.focus = (f.focus + fieldCount) % (fieldCount + 1)
	if f.focus < fieldCount {
		f.inputs[f.focus].Focus()
	}
}

func (f *objectiveForm) cycleStatus(delta int) {
	f.statusIdx = (f.statusIdx + delta + len(statusOptions)) % len(statusOptions)
}

func (f *objectiveForm) update(msg tea.Msg) tea.Cmd {
	if f.focus >= fieldCount {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// values builds the form payload; validation happens on submit so a bad
// field keeps the dialog open with an error line.
func (f *objectiveForm) values() (client.ObjectiveForm, error) {
	weight, err := strconv.Atoi(strings.TrimSpace(f.inputs[fieldWeight].Value()))
	if err != nil {
		return client.ObjectiveForm{}, fmt.Errorf("weight must be a number")
	}

	form := client.ObjectiveForm{
		Title:       strings.TrimSpace(f.inputs[fieldTitle].Value()),
		Description: strings.TrimSpace(f.inputs[fieldDescription].Value()),
		KPI:         strings.TrimSpace(f.inputs[fieldKPI].Value()),
		Weight:      weight,
		Target:      strings.TrimSpace(f.inputs[fieldTarget].Value()),
		DueDate:     strings.TrimSpace(f.inputs[fieldDueDate].Value()),
		Status:      statusOptions[f.statusIdx],
	}
	if err := form.Validate(); err != nil {
		return client.ObjectiveForm{}, err
	}
	return form, nil
}

func (f *objectiveForm) view(styles Styles) string {
	var sb strings.Builder
	for i, input := range f.inputs {
		label := f.labels[i]
		if i == f.focus {
			label = styles.Selected.Render("> " + label)
		} else {
			label = "  " + label
		}
		sb.WriteString(label + "\n" + "  " + input.View() + "\n")
	}

	statusLabel := "  Status"
	if f.focus == fieldCount {
		statusLabel = styles.Selected.Render("> Status")
	}
	sb.WriteString(fmt.Sprintf("%s\n  < %s >\n", statusLabel, styles.statusStyle(statusOptions[f.statusIdx]).Render(statusOptions[f.statusIdx])))

	if f.errText != "" {
		sb.WriteString("\n" + styles.Error.Render(f.errText) + "\n")
	}
	sb.WriteString("\n" + styles.Muted.Render("tab/shift+tab fields · left/right status · enter save · esc cancel"))
	return sb.String()
}

// progressForm edits the progress-update dialog: a 0-100 slider driven by
// the arrow keys, a status selector and an optional note.
type progressForm struct {
	progress  int
	statusIdx int
	note      textinput.Model
	noteFocus bool
	errText   string
}

func newProgressForm(o client.Objective) *progressForm {
	note := textinput.New()
	note.Placeholder = "What changed since the last update?"
	note.CharLimit = 2000

	f := &progressForm{
		progress: o.Progress,
		note:     note,
	}
	for i, s := range statusOptions {
		if s == o.Status {
			f.statusIdx = i
		}
	}
	return f
}

func (f *progressForm) adjust(delta int) {
	f.progress += delta
	if f.progress < 0 {
		f.progress = 0
	}
	if f.progress > 100 {
		f.progress = 100
	}
}

func (f *progressForm) update(msg tea.Msg) tea.Cmd {
	if !f.noteFocus {
		return nil
	}
	var cmd tea.Cmd
	f.note, cmd = f.note.Update(msg)
	return cmd
}

func (f *progressForm) values() (client.ProgressForm, error) {
	form := client.ProgressForm{
		Progress: f.progress,
		Status:   statusOptions[f.statusIdx],
		Note:     strings.TrimSpace(f.note.Value()),
	}
	if err := form.Validate(); err != nil {
		return client.ProgressForm{}, err
	}
	return form, nil
}

func (f *progressForm) view(styles Styles) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Progress: %s %d%%\n", renderBar(f.progress, 30), f.progress))
	sb.WriteString(fmt.Sprintf("Status:   < %s >\n", styles.statusStyle(statusOptions[f.statusIdx]).Render(statusOptions[f.statusIdx])))
	sb.WriteString("Note:     " + f.note.View() + "\n")

	if f.errText != "" {
		sb.WriteString("\n" + styles.Error.Render(f.errText) + "\n")
	}
	sb.WriteString("\n" + styles.Muted.Render("←/→ progress · s status · n note · enter save · esc cancel"))
	return sb.String()
}

func renderBar(percent, width int) string {
	filled := percent * width / 100
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}
