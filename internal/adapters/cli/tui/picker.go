package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	checkedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	uncheckedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	titleStyle     = lipgloss.NewStyle().Bold(true)
)

// pickerModel is the bubbletea model for choosing files to convert
type pickerModel struct {
	title   string
	files   []string
	checked []bool
	cursor  int
	done    bool
}

func newPickerModel(title string, files []string) pickerModel {
	checked := make([]bool, len(files))
	for i := range checked {
		checked[i] = true // everything selected by default
	}
	return pickerModel{
		title:   title,
		files:   files,
		checked: checked,
	}
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.files)-1 {
				m.cursor++
			}
		case " ", "x":
			m.checked[m.cursor] = !m.checked[m.cursor]
		case "a":
			all := m.countChecked() == len(m.files)
			for i := range m.checked {
				m.checked[i] = !all
			}
		case "enter":
			m.done = true
			return m, tea.Quit
		case "q", "ctrl+c", "esc":
			m.done = false
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m pickerModel) countChecked() int {
	count := 0
	for _, c := range m.checked {
		if c {
			count++
		}
	}
	return count
}

func (m pickerModel) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(m.title))
	sb.WriteString("\n\n")

	for i, f := range m.files {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		checkbox := "[ ]"
		style := uncheckedStyle
		if m.checked[i] {
			checkbox = "[x]"
			style = checkedStyle
		}

		line := fmt.Sprintf("%s%s %s", cursor, checkbox, f)
		sb.WriteString(style.Render(line))
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("\n%d of %d selected\n", m.countChecked(), len(m.files)))
	sb.WriteString("(space=toggle, a=all, enter=confirm, q=cancel)\n")

	return sb.String()
}

// selected returns the checked file names in order
func (m pickerModel) selected() []string {
	var result []string
	for i, f := range m.files {
		if m.checked[i] {
			result = append(result, f)
		}
	}
	return result
}

// RunFilePicker displays an interactive checkbox list of files and returns
// the chosen subset. A nil slice with nil error means the user cancelled.
func RunFilePicker(title string, files []string) ([]string, error) {
	model := newPickerModel(title, files)
	p := tea.NewProgram(model)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	result := finalModel.(pickerModel)
	if !result.done {
		return nil, nil
	}
	return result.selected(), nil
}
