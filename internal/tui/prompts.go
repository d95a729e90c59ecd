package tui

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// ErrInteractiveDisabled is returned when a prompt is needed but the process
// is not attached to a terminal (or STACK_TEST_NO_INTERACTIVE is set).
var ErrInteractiveDisabled = fmt.Errorf("interactive prompts are disabled")

// IsInteractive reports whether prompts can be shown
func IsInteractive() bool {
	if os.Getenv("STACK_TEST_NO_INTERACTIVE") != "" {
		return false
	}
	return (isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())) &&
		(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))
}

// textInputModel is a simple single-line text input prompt model
type textInputModel struct {
	textInput textinput.Model
	prompt    string
	done      bool
	err       error
}

func (m textInputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textInputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.err = fmt.Errorf("cancelled")
			m.done = true
			return m, tea.Quit
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m textInputModel) View() string {
	if m.done {
		return ""
	}
	style := lipgloss.NewStyle().Margin(1, 0)
	return style.Render(fmt.Sprintf("%s\n%s", m.prompt, m.textInput.View()))
}

// PromptText asks for a single line of input with an optional default value
func PromptText(prompt, defaultValue string) (string, error) {
	if !IsInteractive() {
		return "", ErrInteractiveDisabled
	}

	ti := textinput.New()
	ti.SetValue(defaultValue)
	ti.Focus()
	ti.CharLimit = 256

	model := textInputModel{
		textInput: ti,
		prompt:    prompt,
	}

	finalModel, err := tea.NewProgram(model).Run()
	if err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}

	result := finalModel.(textInputModel)
	if result.err != nil {
		return "", result.err
	}

	return result.textInput.Value(), nil
}

// PromptMultiline asks for a multiline block of text, finished with the
// editor-style terminator survey uses.
func PromptMultiline(message string) (string, error) {
	if !IsInteractive() {
		return "", ErrInteractiveDisabled
	}

	var body string
	prompt := &survey.Multiline{
		Message: message,
	}
	if err := survey.AskOne(prompt, &body); err != nil {
		return "", fmt.Errorf("canceled")
	}
	return body, nil
}

// PromptSelect asks the user to pick one option from a list
func PromptSelect(message string, options []string) (string, error) {
	if !IsInteractive() {
		return "", ErrInteractiveDisabled
	}

	var choice string
	prompt := &survey.Select{
		Message: message,
		Options: options,
	}
	if err := survey.AskOne(prompt, &choice); err != nil {
		return "", fmt.Errorf("canceled")
	}
	return choice, nil
}

// PromptConfirm asks a yes/no question, defaulting to no
func PromptConfirm(message string) (bool, error) {
	if !IsInteractive() {
		return false, ErrInteractiveDisabled
	}

	confirmed := false
	prompt := &survey.Confirm{
		Message: message,
		Default: false,
	}
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return false, fmt.Errorf("canceled")
	}
	return confirmed, nil
}
