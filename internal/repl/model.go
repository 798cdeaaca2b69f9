// Package repl implements the interactive evaluator behind `uk repl`.
package repl

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pengelbrecht/utilkit/internal/ops"
	"github.com/pengelbrecht/utilkit/internal/styles"
)

// maxHistory bounds the scroll-back.
const maxHistory = 50

// Entry is one evaluated line.
type Entry struct {
	Input  string
	Output string
	Err    error
}

// EvalFunc evaluates a command line.
type EvalFunc func(line string) (string, error)

// Model is the bubbletea model for the REPL.
type Model struct {
	input    textinput.Model
	history  []Entry
	eval     EvalFunc
	width    int
	quitting bool
}

// New returns a model that evaluates lines with ops.Eval.
func New() Model {
	return NewWithEval(ops.Eval)
}

// NewWithEval returns a model using eval for every non built-in line.
func NewWithEval(eval EvalFunc) Model {
	ti := textinput.New()
	ti.Placeholder = `pow 2 8 · reverse "Hello World" · help`
	ti.Prompt = "uk> "
	ti.CharLimit = 512
	ti.Focus()

	return Model{input: ti, eval: eval}
}

// History returns the evaluated entries, oldest first.
func (m Model) History() []Entry {
	return m.history
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-len(m.input.Prompt)-1, 10)
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc, tea.KeyCtrlD:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			return m.submit(line)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit(line string) (tea.Model, tea.Cmd) {
	switch strings.ToLower(line) {
	case "":
		return m, nil
	case "quit", "exit":
		m.quitting = true
		return m, tea.Quit
	case "clear":
		m.history = nil
		return m, nil
	case "help", "?":
		m.push(Entry{Input: line, Output: helpText()})
		return m, nil
	}

	out, err := m.eval(line)
	m.push(Entry{Input: line, Output: out, Err: err})
	return m, nil
}

func (m *Model) push(e Entry) {
	m.history = append(m.history, e)
	if len(m.history) > maxHistory {
		m.history = m.history[len(m.history)-maxHistory:]
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.RenderHeader("utilkit repl"))
	b.WriteString(styles.RenderDim("  enter to evaluate · help · esc to quit"))
	b.WriteString("\n\n")

	for _, e := range m.history {
		b.WriteString(styles.RenderDim("uk> " + e.Input))
		b.WriteString("\n")
		var out string
		if e.Err != nil {
			out = styles.RenderError("error: " + e.Err.Error())
		} else {
			out = styles.RenderValue(e.Output)
		}
		if m.width > 0 {
			out = truncateLines(out, m.width)
		}
		b.WriteString(out)
		b.WriteString("\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	return b.String()
}

func truncateLines(s string, width int) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = styles.Truncate(l, width)
	}
	return strings.Join(lines, "\n")
}

func helpText() string {
	var lines []string
	for _, o := range ops.All() {
		lines = append(lines, fmt.Sprintf("%-4s %-28s %s", o.Group, o.Usage, o.Summary))
	}
	lines = append(lines, "clear, help, quit")
	return strings.Join(lines, "\n")
}

// Run starts the REPL on the terminal and blocks until it exits.
func Run(opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(New(), opts...).Run()
	return err
}
