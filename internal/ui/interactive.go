package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle        = lipgloss.NewStyle().MarginLeft(2)
	itemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	helpStyle         = lipgloss.NewStyle().MarginTop(2).MarginLeft(4)
)

type item string

func (i item) FilterValue() string { return string(i) }

type itemDelegate struct{}

func (d itemDelegate) Height() int                             { return 1 }
func (d itemDelegate) Spacing() int                            { return 0 }
func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(item)
	if !ok {
		return
	}

	str := fmt.Sprintf("%d. %s", index+1, string(i))

	fn := itemStyle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return selectedItemStyle.Render("> " + strings.Join(s, " "))
		}
	}

	fmt.Fprint(w, fn(str))
}

type messageSelectionModel struct {
	list   list.Model
	choice string
}

func (m messageSelectionModel) Init() tea.Cmd {
	return nil
}

func (m messageSelectionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		switch keypress := msg.String(); keypress {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "enter":
			if i, ok := m.list.SelectedItem().(item); ok {
				m.choice = string(i)
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m messageSelectionModel) View() string {
	if m.choice != "" {
		return ""
	}
	return "\n" + m.list.View()
}

// SelectMessage lets the user pick one of the generated candidates. With a
// single candidate it is returned directly without showing the list.
func SelectMessage(messages []string) (string, error) {
	if len(messages) == 0 {
		return "", fmt.Errorf("no messages to select from")
	}
	if len(messages) == 1 {
		return messages[0], nil
	}

	items := make([]list.Item, len(messages))
	for i, msg := range messages {
		items[i] = item(msg)
	}

	l := list.New(items, itemDelegate{}, 80, len(messages)+8)
	l.Title = "Select a commit message"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = lipgloss.NewStyle()
	l.Styles.HelpStyle = helpStyle

	p := tea.NewProgram(messageSelectionModel{list: l}, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("failed to run UI: %w", err)
	}

	if m, ok := finalModel.(messageSelectionModel); ok && m.choice != "" {
		return m.choice, nil
	}

	return "", fmt.Errorf("selection cancelled")
}

type messageEditModel struct {
	textInput textinput.Model
	message   string
	done      bool
}

func (m messageEditModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m messageEditModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.done = true
			m.message = ""
			return m, tea.Quit

		case "enter":
			m.done = true
			m.message = m.textInput.Value()
			return m, tea.Quit
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m messageEditModel) View() string {
	return fmt.Sprintf(
		"\nEdit commit message:\n\n%s\n\n%s",
		m.textInput.View(),
		"(enter to confirm, esc to cancel)",
	) + "\n"
}

// EditMessage presents the chosen message for a final edit before committing.
func EditMessage(initialMessage string) (string, error) {
	ti := textinput.New()
	ti.Placeholder = "Enter commit message..."
	ti.SetValue(initialMessage)
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 80

	p := tea.NewProgram(messageEditModel{textInput: ti}, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("failed to run UI: %w", err)
	}

	if m, ok := finalModel.(messageEditModel); ok && m.done && m.message != "" {
		return m.message, nil
	}

	return "", fmt.Errorf("message editing cancelled")
}
