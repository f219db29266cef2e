package controller

import (
	"bytes"
	"errors"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/ancora/internal/domain"
	m "github.com/mouse-blink/ancora/internal/model"
)

func newCaptureUI() (*SimpleUI, *bytes.Buffer) {
	cmd := &cobra.Command{}
	out := &bytes.Buffer{}
	cmd.SetOut(out)

	return NewSimpleUI(cmd), out
}

func TestSimpleUI_ShowAnchors(t *testing.T) {
	t.Run("prints a placeholder without anchors", func(t *testing.T) {
		ui, out := newCaptureUI()

		require.NoError(t, ui.ShowAnchors(nil))
		assert.Contains(t, out.String(), "No anchors")
	})

	t.Run("prints a row per anchor", func(t *testing.T) {
		ui, out := newCaptureUI()

		anchors := []m.Anchor{
			{
				ID: "ec-s1-tc-1-given-1-1", Box: m.BoxRef{Type: m.BoxGiven, Number: 1},
				Location: m.LocationHeader, Text: "clicks the button", StartIndex: 0, EndIndex: 17,
			},
			{
				ID: "ec-s1-tc-1-given-1-2", Box: m.BoxRef{Type: m.BoxGiven, Number: 1},
				Location: m.LocationContent, Text: "cy.get('.btn').click()", StartIndex: 18, EndIndex: 40,
			},
		}

		require.NoError(t, ui.ShowAnchors(anchors))

		rendered := out.String()
		assert.Contains(t, rendered, "ec-s1-tc-1-given-1-1")
		assert.Contains(t, rendered, "given-1")
		assert.Contains(t, rendered, "header")
		assert.Contains(t, rendered, "[0,17)")
		assert.Contains(t, rendered, "clicks the button")
	})
}

func TestSimpleUI_ShowLinks(t *testing.T) {
	ui, out := newCaptureUI()

	disabledAt := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	links := []m.Binomio{
		{ID: "bin-tc-1-001-1", FromID: "ec-h1", ToID: "ec-c1", Status: m.LinkActive},
		{
			ID: "bin-tc-1-002-2", FromID: "ec-h2", ToID: "ec-c2", Status: m.LinkDisabled,
			DisabledAt: &disabledAt, DisabledReason: "selector changed",
		},
	}

	require.NoError(t, ui.ShowLinks(links))

	rendered := out.String()
	assert.Contains(t, rendered, "bin-tc-1-001-1")
	assert.Contains(t, rendered, "active")
	assert.Contains(t, rendered, "disabled 2026-03-14 10:30: selector changed")
}

func TestSimpleUI_ShowRun(t *testing.T) {
	t.Run("explains an empty run", func(t *testing.T) {
		ui, out := newCaptureUI()

		require.NoError(t, ui.ShowRun(m.SuggestionRun{}))
		assert.Contains(t, out.String(), "No suggestions")
	})

	t.Run("prints the stats line and suggestion rows", func(t *testing.T) {
		ui, out := newCaptureUI()

		run := m.SuggestionRun{
			RunID: "run-1",
			Suggestions: []m.Suggestion{
				{ID: "sug-1", FromID: "ec-h2", PatternID: "bin-1", Confidence: 0.88, Status: m.SuggestionPending},
			},
			Stats: m.RunStats{TotalAnalyzed: 3, Suggested: 1, AvgConfidence: 0.88},
		}

		require.NoError(t, ui.ShowRun(run))

		rendered := out.String()
		assert.Contains(t, rendered, "analyzed 3, suggested 1")
		assert.Contains(t, rendered, "0.88")
		assert.Contains(t, rendered, "pending")
	})
}

func TestSimpleUI_ShowConfirmation(t *testing.T) {
	ui, out := newCaptureUI()

	result := domain.ConfirmResult{
		Created:         []m.Binomio{{ID: "bin-3", FromID: "ec-h2", ToID: "ec-c1"}},
		AcceptedCount:   1,
		AmalgamationErr: errors.New("llm unavailable"),
	}

	require.NoError(t, ui.ShowConfirmation(result))

	rendered := out.String()
	assert.Contains(t, rendered, "Accepted 1 suggestion(s), created 1 link(s)")
	assert.Contains(t, rendered, "bin-3: ec-h2 -> ec-c1")
	assert.Contains(t, rendered, "context document not updated")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactlyten", truncate("exactlyten", 10))
	assert.Equal(t, "very long", truncate("very long", 9))
	assert.Equal(t, "very lon…", truncate("very long text", 9))
	assert.Equal(t, "più è me…", truncate("più è meglio che mai", 9))
	assert.True(t, utf8.ValidString(truncate("àèìòù accentate dappertutto", 9)))
}
