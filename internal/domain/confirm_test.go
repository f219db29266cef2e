package domain

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/ancora/internal/adapter"
	"github.com/mouse-blink/ancora/internal/adapter/mocks"
	m "github.com/mouse-blink/ancora/internal/model"
)

type confirmFixture struct {
	anchors   *AnchorStore
	links     *LinkGraph
	store     adapter.SessionStore
	llm       *mocks.MockLLMClient
	confirmer *Confirmer
	pattern   m.Binomio
	run       m.SuggestionRun
}

// newConfirmFixture persists a pending run with one high-confidence
// suggestion pointing at the fixture pattern.
func newConfirmFixture(t *testing.T) *confirmFixture {
	t.Helper()

	anchors := NewAnchorStore("s1", "tc-1", nil)

	_, err := anchors.Create(givenBox, m.LocationHeader, 0, 17, "clicks the button")
	require.NoError(t, err)
	_, err = anchors.Create(givenBox, m.LocationContent, 18, 40, "cy.get('.btn').click()")
	require.NoError(t, err)
	_, err = anchors.Create(m.BoxRef{Type: m.BoxThen, Number: 1}, m.LocationHeader, 0, 15, "sees the result")
	require.NoError(t, err)

	links := NewLinkGraph("tc-1", nil, anchors.Get)

	linked := anchors.List(givenBox, m.LocationHeader)[0]
	content := anchors.List(givenBox, m.LocationContent)[0]
	unlinked := anchors.List(m.BoxRef{Type: m.BoxThen, Number: 1}, m.LocationHeader)[0]

	pattern, err := links.Create(linked.ID, content.ID, m.Point{X: 1, Y: 0.5}, m.Point{X: 0, Y: 0.25})
	require.NoError(t, err)

	run := m.SuggestionRun{
		RunID:     "run-1",
		Timestamp: time.Now(),
		Suggestions: []m.Suggestion{{
			ID:         "sug-1",
			FromID:     unlinked.ID,
			PatternID:  pattern.ID,
			Confidence: 0.88,
			Reasoning:  "same interaction shape",
			Status:     m.SuggestionPending,
		}},
		Stats: m.RunStats{TotalAnalyzed: 1, Suggested: 1, AvgConfidence: 0.88},
	}

	store := adapter.NewSessionStore(t.TempDir())
	require.NoError(t, store.SaveSuggestionRun(run))

	llm := mocks.NewMockLLMClient(t)

	return &confirmFixture{
		anchors:   anchors,
		links:     links,
		store:     store,
		llm:       llm,
		confirmer: NewConfirmer(links, store, llm),
		pattern:   pattern,
		run:       run,
	}
}

func TestConfirmer_Confirm(t *testing.T) {
	t.Run("accepted suggestions become links inheriting the pattern endpoint", func(t *testing.T) {
		f := newConfirmFixture(t)

		f.llm.EXPECT().Amalgamate(mock.Anything, mock.Anything, mock.Anything).
			Return("revised document", nil)

		result, err := f.confirmer.Confirm(context.Background(), "run-1", []string{"sug-1"})
		require.NoError(t, err)
		require.NoError(t, result.AmalgamationErr)

		require.Len(t, result.Created, 1)
		assert.Equal(t, 1, result.AcceptedCount)

		link := result.Created[0]
		assert.Equal(t, f.run.Suggestions[0].FromID, link.FromID)
		assert.Equal(t, f.pattern.ToID, link.ToID)
		assert.Equal(t, f.pattern.ToPoint, link.ToPoint)
		require.NotNil(t, link.LLMMeta)
		assert.Equal(t, "sug-1", link.LLMMeta.SourceSuggestionID)
		assert.Equal(t, f.pattern.ID, link.LLMMeta.SourcePatternBinomioID)
		assert.Equal(t, 0.88, link.LLMMeta.Confidence)

		persisted, loadErr := f.store.LoadBinomi()
		require.NoError(t, loadErr)
		assert.Len(t, persisted, 2)

		doc, loadErr := f.store.LoadContextDocument()
		require.NoError(t, loadErr)
		assert.Equal(t, "revised document", doc.Text)
	})

	t.Run("an empty accept list rejects every pending suggestion", func(t *testing.T) {
		f := newConfirmFixture(t)

		result, err := f.confirmer.Confirm(context.Background(), "run-1", nil)
		require.NoError(t, err)

		assert.Empty(t, result.Created)

		persisted, loadErr := f.store.LoadSuggestionRun()
		require.NoError(t, loadErr)
		assert.True(t, persisted.Confirmed)
		assert.Equal(t, m.SuggestionRejected, persisted.Suggestions[0].Status)
		assert.Equal(t, "not selected", persisted.Suggestions[0].RejectReason)
	})

	t.Run("links of other test cases in the session survive a confirm", func(t *testing.T) {
		f := newConfirmFixture(t)

		foreign := m.Binomio{
			ID:         "bin-tc-9-001-1",
			TestCaseID: "tc-9",
			FromID:     "ec-s1-tc-9-given-1-1",
			ToID:       "ec-s1-tc-9-given-1-2",
		}
		require.NoError(t, f.store.SaveBinomi([]m.Binomio{foreign}))

		_, err := f.confirmer.Confirm(context.Background(), "run-1", nil)
		require.NoError(t, err)

		persisted, loadErr := f.store.LoadBinomi()
		require.NoError(t, loadErr)
		require.Len(t, persisted, 2)

		ids := []string{persisted[0].ID, persisted[1].ID}
		assert.Contains(t, ids, foreign.ID)
		assert.Contains(t, ids, f.pattern.ID)
	})

	t.Run("confirming twice is stale", func(t *testing.T) {
		f := newConfirmFixture(t)

		_, err := f.confirmer.Confirm(context.Background(), "run-1", nil)
		require.NoError(t, err)

		_, err = f.confirmer.Confirm(context.Background(), "run-1", nil)
		assert.ErrorIs(t, err, m.ErrStaleRun)
	})

	t.Run("a mismatched run id is stale", func(t *testing.T) {
		f := newConfirmFixture(t)

		_, err := f.confirmer.Confirm(context.Background(), "run-0", []string{"sug-1"})
		assert.ErrorIs(t, err, m.ErrStaleRun)

		persisted, loadErr := f.store.LoadSuggestionRun()
		require.NoError(t, loadErr)
		assert.False(t, persisted.Confirmed, "a stale confirmation must not touch the run")
	})

	t.Run("no persisted run yields a not-found error", func(t *testing.T) {
		f := newConfirmFixture(t)
		f.confirmer.store = adapter.NewSessionStore(t.TempDir())

		_, err := f.confirmer.Confirm(context.Background(), "run-1", nil)

		var notFound *m.NotFoundError
		assert.ErrorAs(t, err, &notFound)
	})

	t.Run("a vanished pattern rejects the suggestion without failing the run", func(t *testing.T) {
		f := newConfirmFixture(t)

		require.NoError(t, f.links.Delete(f.pattern.ID))

		result, err := f.confirmer.Confirm(context.Background(), "run-1", []string{"sug-1"})
		require.NoError(t, err)

		assert.Empty(t, result.Created)

		persisted, loadErr := f.store.LoadSuggestionRun()
		require.NoError(t, loadErr)
		assert.Equal(t, m.SuggestionRejected, persisted.Suggestions[0].Status)
		assert.Contains(t, persisted.Suggestions[0].RejectReason, "no longer exists")
	})

	t.Run("an amalgamation failure keeps the created links and the document", func(t *testing.T) {
		f := newConfirmFixture(t)

		original := m.KnowledgeDocument{Version: 1, Text: "existing knowledge"}
		require.NoError(t, f.store.SaveContextDocument(original))

		f.llm.EXPECT().Amalgamate(mock.Anything, mock.Anything, mock.Anything).
			Return("", assert.AnError)

		result, err := f.confirmer.Confirm(context.Background(), "run-1", []string{"sug-1"})
		require.NoError(t, err)

		var amalgErr *m.AmalgamationError
		require.ErrorAs(t, result.AmalgamationErr, &amalgErr)

		assert.Len(t, result.Created, 1)
		assert.Len(t, f.links.All(), 2)

		doc, loadErr := f.store.LoadContextDocument()
		require.NoError(t, loadErr)
		assert.Equal(t, "existing knowledge", doc.Text)
	})

	t.Run("amalgamation feeds the accepted reasoning to the collaborator", func(t *testing.T) {
		f := newConfirmFixture(t)

		require.NoError(t, f.store.SaveContextDocument(m.KnowledgeDocument{Version: 1, Text: "base"}))

		f.llm.EXPECT().Amalgamate(mock.Anything, "base", "- same interaction shape").
			Return("merged", nil)

		result, err := f.confirmer.Confirm(context.Background(), "run-1", []string{"sug-1"})
		require.NoError(t, err)
		require.NoError(t, result.AmalgamationErr)
	})
}
