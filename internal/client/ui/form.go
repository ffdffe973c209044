package ui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"taskboard/internal/client"
	"taskboard/internal/models"
)

const dateLayout = "2006-01-02"

const (
	fieldName = iota
	fieldSummary
	fieldDueDate
	numFields
)

// focusStatus is the position of the status selector in the tab order.
const focusStatus = numFields

// formSavedMsg reports the outcome of a form submission.
type formSavedMsg struct {
	failed bool
}

// formField is one input with its validation state. Error text shows only
// once the field has been left (touched) while invalid; validity is
// recomputed on every change.
type formField struct {
	label      string
	input      textinput.Model
	validators []Validator
	errorText  string
	touched    bool
	valid      bool
	isDate     bool
}

// revalidate recomputes the field verdict. Date fields are converted to
// epoch seconds first so the value rules see a number; an unparseable date
// reaches them as-is and fails.
func (f *formField) revalidate() {
	value := strings.TrimSpace(f.input.Value())
	if f.isDate {
		value = dateToEpochString(value)
	}
	f.valid = ValidateInput(value, f.validators)
}

// dateToEpochString interprets the date in the client's local timezone, at
// read as at write; crossing a timezone boundary between the two is not
// compensated.
func dateToEpochString(value string) string {
	t, err := time.ParseInLocation(dateLayout, value, time.Local)
	if err != nil {
		return value
	}
	return strconv.FormatInt(t.Unix(), 10)
}

type formModel struct {
	api    *client.Client
	mode   client.FormMode
	taskID string

	// Fallbacks for fields left blank in edit mode.
	initial client.TaskInputBody

	fields  [numFields]formField
	status  models.TaskStatus
	focus   int
	showErr bool
}

func newTaskForm(api *client.Client, mode client.FormMode, task *models.Task) formModel {
	m := formModel{
		api:    api,
		mode:   mode,
		status: models.StatusPending,
	}

	if task != nil {
		m.taskID = task.ID
		m.status = task.Status
		m.initial = client.TaskInputBody{
			Name:    task.Name,
			Summary: task.Summary,
			DueDate: task.DueDate,
			Status:  int(task.Status),
		}
	} else {
		// Add mode starts from today's date.
		m.initial.DueDate = time.Now().Unix()
	}

	m.fields[fieldName] = formField{
		label:      "Task Name",
		validators: []Validator{Required(), MinLength(models.NameMinLen), MaxLength(models.NameMaxLen)},
		errorText:  "Enter a valid name (5-50 characters).",
		valid:      true,
	}
	m.fields[fieldSummary] = formField{
		label:      "Task Summary",
		validators: []Validator{Required(), MinLength(models.SummaryMinLen), MaxLength(models.SummaryMaxLen)},
		errorText:  "Enter a valid summary (5-200 characters).",
		valid:      true,
	}
	m.fields[fieldDueDate] = formField{
		label:      "Task Due Date",
		validators: []Validator{Required(), MinValue(models.DueDateMin), MaxValue(models.DueDateMax)},
		errorText:  "Enter a valid date (Jan 1, 2020 - Dec 31, 2050).",
		isDate:     true,
		valid:      true,
	}

	for i := range m.fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 256
		m.fields[i].input = ti
	}
	m.fields[fieldDueDate].input.Placeholder = dateLayout

	if task != nil {
		m.fields[fieldName].input.SetValue(task.Name)
		m.fields[fieldSummary].input.SetValue(task.Summary)
		m.fields[fieldDueDate].input.SetValue(time.Unix(task.DueDate, 0).Format(dateLayout))
	}

	m.fields[0].input.Focus()
	return m
}

// statusOptions mirrors the form's two selector variants: a new task can
// only start as Pending or Today, editing offers all three columns.
func (m formModel) statusOptions() []models.TaskStatus {
	if m.mode == client.FormAdd {
		return []models.TaskStatus{models.StatusPending, models.StatusToday}
	}
	return []models.TaskStatus{models.StatusPending, models.StatusToday, models.StatusCompleted}
}

func (m formModel) cycleStatus(dir int) formModel {
	options := m.statusOptions()
	idx := 0
	for i, s := range options {
		if s == m.status {
			idx = i
		}
	}
	idx = (idx + dir + len(options)) % len(options)
	m.status = options[idx]
	return m
}

func (m formModel) setFocus(focus int) formModel {
	if cur := m.focus; cur < numFields {
		// Leaving a field marks it touched.
		m.fields[cur].touched = true
		m.fields[cur].revalidate()
		m.fields[cur].input.Blur()
	}
	m.focus = focus
	if focus < numFields {
		m.fields[focus].input.Focus()
	}
	return m
}

// formIsValid ANDs the stored per-field verdicts, the submit-time force
// validation. Untouched fields kept their initial verdict; blanks fall back
// to the initial values on assembly, so the server still has the last word.
func (m *formModel) formIsValid() bool {
	valid := true
	for i := range m.fields {
		valid = valid && m.fields[i].valid
	}
	return valid
}

// finalValues assembles the submission, falling back to the original value
// for any field left blank (edit mode keeps the old field that way).
func (m formModel) finalValues() client.TaskInputBody {
	body := client.TaskInputBody{Status: int(m.status)}

	if name := strings.TrimSpace(m.fields[fieldName].input.Value()); name != "" {
		body.Name = name
	} else {
		body.Name = m.initial.Name
	}

	if summary := strings.TrimSpace(m.fields[fieldSummary].input.Value()); summary != "" {
		body.Summary = summary
	} else {
		body.Summary = m.initial.Summary
	}

	due := strings.TrimSpace(m.fields[fieldDueDate].input.Value())
	if due == "" {
		body.DueDate = m.initial.DueDate
	} else if t, err := time.ParseInLocation(dateLayout, due, time.Local); err == nil {
		body.DueDate = t.Unix()
	}

	return body
}

func (m formModel) submit() tea.Cmd {
	mode, taskID, body := m.mode, m.taskID, m.finalValues()
	api := m.api
	return func() tea.Msg {
		if err := api.SubmitForm(mode, taskID, body); err != nil {
			logf("[form][submit][err] mode=%s: %v", mode, err)
			return formSavedMsg{failed: true}
		}
		return formSavedMsg{failed: false}
	}
}

// Update handles form keys; the second return value is true when the form
// wants to close without saving.
func (m formModel) Update(msg tea.Msg) (formModel, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case formSavedMsg:
		if msg.failed {
			m.showErr = true
			return m, nil, false
		}
		return m, nil, false

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, nil, true

		case "tab", "down":
			return m.setFocus((m.focus + 1) % (numFields + 1)), nil, false

		case "shift+tab", "up":
			return m.setFocus((m.focus + numFields) % (numFields + 1)), nil, false

		case "left", "right":
			if m.focus == focusStatus {
				dir := 1
				if msg.String() == "left" {
					dir = -1
				}
				return m.cycleStatus(dir), nil, false
			}

		case "enter":
			// Force-validate everything before submitting.
			for i := range m.fields {
				m.fields[i].revalidate()
			}
			if !m.formIsValid() {
				logf("[form][submit][reject] invalid inputs")
				m.showErr = true
				return m, nil, false
			}
			m.showErr = false
			return m, m.submit(), false
		}
	}

	if m.focus < numFields {
		var cmd tea.Cmd
		m.fields[m.focus].input, cmd = m.fields[m.focus].input.Update(msg)
		m.fields[m.focus].revalidate()
		return m, cmd, false
	}
	return m, nil, false
}

func (m formModel) View() string {
	labelStyle := lipgloss.NewStyle().Bold(true)
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	title := "Add Task"
	if m.mode == client.FormEdit {
		title = "Edit Task"
	}

	var lines []string
	lines = append(lines, labelStyle.Render(title))

	if m.showErr {
		lines = append(lines, errStyle.Render("Invalid Inputs. Please correct then submit form again."))
	}

	for i := range m.fields {
		f := &m.fields[i]
		label := f.label
		if i == m.focus {
			label = "> " + label
		}
		lines = append(lines, labelStyle.Render(label))
		lines = append(lines, f.input.View())
		if f.touched && !f.valid {
			lines = append(lines, errStyle.Render(f.errorText))
		}
	}

	statusLabel := "Task Status"
	if m.focus == focusStatus {
		statusLabel = "> " + statusLabel
	}
	lines = append(lines, labelStyle.Render(statusLabel))
	lines = append(lines, statusName(m.status))

	lines = append(lines, hintStyle.Render("tab: next field • left/right: status • enter: save • esc: cancel"))

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}
