package status

import (
	"errors"
	"io"

	"github.com/bnema/authflow-cli/internal/application"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	status application.SessionStatus
	styles styles
	output string
}

func newModel(status application.SessionStatus) model {
	return model{
		status: status,
		styles: newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderView(m.status, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

func Render(status application.SessionStatus) (string, error) {
	p := tea.NewProgram(
		newModel(status),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
