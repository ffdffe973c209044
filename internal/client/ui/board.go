// Package ui renders the three-column task board and the add/edit form.
// The board model owns the column state; all server traffic goes through
// the client package and comes back as messages.
package ui

import (
	"fmt"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"taskboard/internal/client"
	"taskboard/internal/models"
)

// logf goes to the stdlib logger, which main points at a file because the
// terminal belongs to the UI.
func logf(format string, args ...interface{}) {
	log.Printf(format, args...)
}

func statusName(s models.TaskStatus) string {
	switch s {
	case models.StatusPending:
		return "Pending"
	case models.StatusToday:
		return "Today"
	case models.StatusCompleted:
		return "Completed"
	}
	return "Unknown"
}

type columnState int

const (
	columnLoading columnState = iota
	columnReady
	columnError
)

// column is one status bucket. An empty bucket comes back from the server
// as a not-found error, so it renders in the error state with a retry hint.
type column struct {
	status models.TaskStatus
	state  columnState
	tasks  []models.Task
	errMsg string
}

type columnLoadedMsg struct {
	index int
	tasks []models.Task
	err   error
}

// taskMutatedMsg reports a move or delete round trip.
type taskMutatedMsg struct {
	op  string
	err error
}

type boardMode int

const (
	modeNormal boardMode = iota
	modeForm
	modeConfirmDelete
)

type Model struct {
	api     *client.Client
	columns [3]column
	current int
	cursor  [3]int

	mode            boardMode
	form            formModel
	confirmDeleteID string
	statusMsg       string
}

func NewBoard(api *client.Client) Model {
	m := Model{api: api}
	for i := range m.columns {
		m.columns[i] = column{status: models.TaskStatus(i), state: columnLoading}
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return m.startRefresh()
}

// startRefresh re-fetches every column. Mutations do not patch column state
// in place; they flip this switch and the server's answer is the truth.
func (m Model) startRefresh() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.columns))
	for i := range m.columns {
		cmds = append(cmds, m.fetchColumn(i))
	}
	return tea.Batch(cmds...)
}

func (m Model) fetchColumn(index int) tea.Cmd {
	api, status := m.api, m.columns[index].status
	return func() tea.Msg {
		tasks, err := api.ListByStatus(status)
		return columnLoadedMsg{index: index, tasks: tasks, err: err}
	}
}

func (m Model) selectedTask() *models.Task {
	col := &m.columns[m.current]
	if col.state != columnReady || len(col.tasks) == 0 {
		return nil
	}
	return &col.tasks[m.cursor[m.current]]
}

// moveTask shifts the selected task one column over, the keyboard rendition
// of dropping a card on the adjacent list.
func (m Model) moveTask(dir int) tea.Cmd {
	task := m.selectedTask()
	if task == nil {
		return nil
	}
	target := int(m.columns[m.current].status) + dir
	if target < int(models.StatusPending) || target > int(models.StatusCompleted) {
		return nil
	}
	api, id := m.api, task.ID
	return func() tea.Msg {
		err := api.MoveTask(id, models.TaskStatus(target))
		return taskMutatedMsg{op: "move", err: err}
	}
}

func (m Model) deleteTask(id string) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		err := api.DeleteTask(id)
		return taskMutatedMsg{op: "delete", err: err}
	}
}

func (m *Model) clampCursor(index int) {
	if n := len(m.columns[index].tasks); m.cursor[index] >= n {
		if n == 0 {
			m.cursor[index] = 0
		} else {
			m.cursor[index] = n - 1
		}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case columnLoadedMsg:
		col := &m.columns[msg.index]
		if msg.err != nil {
			col.state = columnError
			col.tasks = nil
			col.errMsg = msg.err.Error()
			logf("[board][fetch][err] status=%d: %v", col.status, msg.err)
		} else {
			col.state = columnReady
			col.tasks = msg.tasks
			col.errMsg = ""
		}
		m.clampCursor(msg.index)
		return m, nil

	case taskMutatedMsg:
		if msg.err != nil {
			logf("[board][%s][err] %v", msg.op, msg.err)
			m.statusMsg = "Something went wrong. Please try again."
			return m, nil
		}
		logf("[board][%s][ok]", msg.op)
		m.statusMsg = ""
		return m, m.startRefresh()

	case formSavedMsg:
		if msg.failed {
			var cmd tea.Cmd
			m.form, cmd, _ = m.form.Update(msg)
			return m, cmd
		}
		m.mode = modeNormal
		return m, m.startRefresh()

	case tea.KeyMsg:
		switch m.mode {
		case modeForm:
			return m.updateForm(msg)
		case modeConfirmDelete:
			return m.updateConfirmDelete(msg)
		default:
			return m.updateNormal(msg)
		}
	}

	// Blink ticks and other component messages belong to the open form.
	if m.mode == modeForm {
		var cmd tea.Cmd
		m.form, cmd, _ = m.form.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "h", "left":
		if m.current > 0 {
			m.current--
		}

	case "l", "right":
		if m.current < len(m.columns)-1 {
			m.current++
		}

	case "j", "down":
		if col := m.columns[m.current]; col.state == columnReady && m.cursor[m.current] < len(col.tasks)-1 {
			m.cursor[m.current]++
		}

	case "k", "up":
		if m.cursor[m.current] > 0 {
			m.cursor[m.current]--
		}

	case "H":
		return m, m.moveTask(-1)

	case "L":
		return m, m.moveTask(1)

	case "a":
		m.mode = modeForm
		m.form = newTaskForm(m.api, client.FormAdd, nil)

	case "enter":
		if task := m.selectedTask(); task != nil {
			m.mode = modeForm
			m.form = newTaskForm(m.api, client.FormEdit, task)
		}

	case "d":
		if task := m.selectedTask(); task != nil {
			m.mode = modeConfirmDelete
			m.confirmDeleteID = task.ID
		}

	case "r":
		m.statusMsg = ""
		for i := range m.columns {
			m.columns[i].state = columnLoading
		}
		return m, m.startRefresh()
	}

	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	form, cmd, closed := m.form.Update(msg)
	m.form = form
	if closed {
		m.mode = modeNormal
		return m, nil
	}
	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		id := m.confirmDeleteID
		m.mode = modeNormal
		m.confirmDeleteID = ""
		return m, m.deleteTask(id)
	case "n", "esc":
		m.mode = modeNormal
		m.confirmDeleteID = ""
	}
	return m, nil
}

var (
	columnStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Width(32)
	focusedColumnStyle = columnStyle.
				BorderForeground(lipgloss.Color("62"))
	headerStyle   = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func (m Model) renderColumn(index int) string {
	col := m.columns[index]

	var b strings.Builder
	header := statusName(col.status)
	if col.state == columnReady {
		header = fmt.Sprintf("%s (%d)", header, len(col.tasks))
	}
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n\n")

	switch col.state {
	case columnLoading:
		b.WriteString(dimStyle.Render("Loading..."))
	case columnError:
		b.WriteString(warnStyle.Render(col.errMsg))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("press r to retry"))
	default:
		for i, task := range col.tasks {
			line := fmt.Sprintf("%s\n  due %s", task.Name, time.Unix(task.DueDate, 0).Format(dateLayout))
			if index == m.current && i == m.cursor[index] {
				line = selectedStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	style := columnStyle
	if index == m.current {
		style = focusedColumnStyle
	}
	return style.Render(b.String())
}

func (m Model) View() string {
	switch m.mode {
	case modeForm:
		return m.form.View()
	case modeConfirmDelete:
		return lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Render("Delete this task? (y/n)")
	}

	cols := make([]string, 0, len(m.columns))
	for i := range m.columns {
		cols = append(cols, m.renderColumn(i))
	}
	board := lipgloss.JoinHorizontal(lipgloss.Top, cols...)

	footer := dimStyle.Render("h/l: column • j/k: task • H/L: move • a: add • enter: edit • d: delete • r: refresh • q: quit")
	if m.statusMsg != "" {
		footer = warnStyle.Render(m.statusMsg) + "\n" + footer
	}
	return board + "\n" + footer
}
