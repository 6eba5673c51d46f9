package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type loginWaitDoneMsg struct {
	err error
}

type loginWaitSpinnerModel struct {
	spinner spinner.Model
	label   string
	wait    tea.Cmd
	err     error
	done    bool
}

func newLoginWaitSpinnerModel(label string, wait tea.Cmd) loginWaitSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return loginWaitSpinnerModel{
		spinner: s,
		label:   label,
		wait:    wait,
	}
}

func (m loginWaitSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.wait)
}

func (m loginWaitSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case loginWaitDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m loginWaitSpinnerModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
}

func runLoginWaitSpinner(ctx context.Context, output io.Writer, wait func(context.Context) error) error {
	waitCmd := func() tea.Msg {
		return loginWaitDoneMsg{err: wait(ctx)}
	}

	p := tea.NewProgram(
		newLoginWaitSpinnerModel("Waiting for the provider to return...", waitCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(loginWaitSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}
