package controller

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/ancora/internal/model"
)

// suggestionItem adapts a suggestion for the bubbles list.
type suggestionItem struct {
	suggestion m.Suggestion
	fromText   string
}

func (i suggestionItem) FilterValue() string {
	return i.fromText
}

// reviewDelegate renders one suggestion row with its selection mark.
type reviewDelegate struct {
	selected map[string]bool
}

func (d reviewDelegate) Height() int  { return 2 }
func (d reviewDelegate) Spacing() int { return 0 }
func (d reviewDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d reviewDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	row, ok := item.(suggestionItem)
	if !ok {
		return
	}

	mark := "[ ]"
	if d.selected[row.suggestion.ID] {
		mark = "[x]"
	}

	rowStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	reasonStyle := dimStyle

	if index == lm.Index() {
		rowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6")).Bold(true)
	}

	line := fmt.Sprintf("%s %.2f %q", mark, row.suggestion.Confidence, row.fromText)
	reason := fmt.Sprintf("    %s", truncate(row.suggestion.Reasoning, 70))

	fmt.Fprintf(w, "%s\n%s", rowStyle.Render(line), reasonStyle.Render(reason))
}

// reviewModel drives the accept/reject triage of one suggestion run.
type reviewModel struct {
	list      list.Model
	selected  map[string]bool
	confirmed bool
	quitting  bool
}

func newReviewModel(run m.SuggestionRun, fromText func(anchorID string) string) reviewModel {
	selected := make(map[string]bool)
	items := make([]list.Item, 0, len(run.Suggestions))

	for _, suggestion := range run.Suggestions {
		items = append(items, suggestionItem{
			suggestion: suggestion,
			fromText:   fromText(suggestion.FromID),
		})
	}

	l := list.New(items, reviewDelegate{selected: selected}, 80, 20)
	l.Title = fmt.Sprintf("Review run %s (space toggles, enter confirms, q cancels)", run.RunID)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	return reviewModel{
		list:     l,
		selected: selected,
	}
}

func (rm reviewModel) Init() tea.Cmd {
	return nil
}

func (rm reviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		rm.list.SetSize(msg.Width, msg.Height)
		return rm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case " ":
			if item, ok := rm.list.SelectedItem().(suggestionItem); ok {
				rm.selected[item.suggestion.ID] = !rm.selected[item.suggestion.ID]
			}

			return rm, nil
		case "a":
			for _, item := range rm.list.Items() {
				if row, ok := item.(suggestionItem); ok {
					rm.selected[row.suggestion.ID] = true
				}
			}

			return rm, nil
		case "enter":
			rm.confirmed = true
			rm.quitting = true

			return rm, tea.Quit
		case "q", "esc", "ctrl+c":
			rm.quitting = true

			return rm, tea.Quit
		}
	}

	var cmd tea.Cmd
	rm.list, cmd = rm.list.Update(msg)

	return rm, cmd
}

func (rm reviewModel) View() string {
	if rm.quitting {
		return ""
	}

	return rm.list.View()
}

func (rm reviewModel) accepted() []string {
	var out []string

	for _, item := range rm.list.Items() {
		row, ok := item.(suggestionItem)
		if !ok {
			continue
		}

		if rm.selected[row.suggestion.ID] {
			out = append(out, row.suggestion.ID)
		}
	}

	return out
}
