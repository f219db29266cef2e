package controller

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/ancora/internal/model"
)

// suggestDoneMsg carries the finished run back into the spinner loop.
type suggestDoneMsg struct {
	run m.SuggestionRun
	err error
}

// progressModel shows a spinner while the suggestion call is in flight.
type progressModel struct {
	spinner spinner.Model
	label   string
	call    func() (m.SuggestionRun, error)
	run     m.SuggestionRun
	err     error
	done    bool
}

func newProgressModel(label string, call func() (m.SuggestionRun, error)) progressModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = dimStyle

	return progressModel{spinner: s, label: label, call: call}
}

func (p progressModel) Init() tea.Cmd {
	return tea.Batch(p.spinner.Tick, func() tea.Msg {
		run, err := p.call()
		return suggestDoneMsg{run: run, err: err}
	})
}

func (p progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case suggestDoneMsg:
		p.run = msg.run
		p.err = msg.err
		p.done = true

		return p, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)

		return p, cmd
	default:
		return p, nil
	}
}

func (p progressModel) View() string {
	if p.done {
		return ""
	}

	return fmt.Sprintf("%s %s\n", p.spinner.View(), p.label)
}

// SuggestWithSpinner runs the suggestion call behind an animated spinner on
// an interactive terminal. The call itself always runs to completion.
func SuggestWithSpinner(label string, call func() (m.SuggestionRun, error)) (m.SuggestionRun, error) {
	final, err := tea.NewProgram(newProgressModel(label, call)).Run()
	if err != nil {
		return m.SuggestionRun{}, err
	}

	p, ok := final.(progressModel)
	if !ok {
		return m.SuggestionRun{}, fmt.Errorf("unexpected model %T", final)
	}

	return p.run, p.err
}
