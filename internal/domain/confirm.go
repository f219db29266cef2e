package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mouse-blink/ancora/internal/adapter"
	m "github.com/mouse-blink/ancora/internal/model"
)

// ConfirmResult reports the outcome of confirming a suggestion run.
// AmalgamationErr carries the best-effort document rewrite failure; created
// links are never rolled back because of it.
type ConfirmResult struct {
	Created         []m.Binomio
	AcceptedCount   int
	AmalgamationErr error
}

// Confirmer applies accepted suggestions as new Binomi and folds their
// reasoning back into the Context Document.
type Confirmer struct {
	links *LinkGraph
	store adapter.SessionStore
	llm   adapter.LLMClient
	now   func() time.Time
}

// NewConfirmer wires the confirmer to the link graph and its collaborators.
func NewConfirmer(links *LinkGraph, store adapter.SessionStore, llm adapter.LLMClient) *Confirmer {
	return &Confirmer{
		links: links,
		store: store,
		llm:   llm,
		now:   time.Now,
	}
}

// Confirm settles the most recent run. Every pending suggestion leaves the
// pending state: accepted ids become Binomi inheriting the pattern's To
// endpoint, the rest turn rejected. A run id mismatch or an already
// confirmed run is rejected as stale before anything changes.
func (c *Confirmer) Confirm(ctx context.Context, runID string, acceptedIDs []string) (ConfirmResult, error) {
	run, err := c.store.LoadSuggestionRun()
	if err != nil {
		return ConfirmResult{}, err
	}

	if run.RunID == "" {
		return ConfirmResult{}, &m.NotFoundError{Kind: "suggestion run", ID: runID}
	}

	if run.Confirmed || (runID != "" && runID != run.RunID) {
		return ConfirmResult{}, m.ErrStaleRun
	}

	accepted := make(map[string]bool, len(acceptedIDs))
	for _, id := range acceptedIDs {
		accepted[id] = true
	}

	var result ConfirmResult

	for i := range run.Suggestions {
		suggestion := &run.Suggestions[i]
		if suggestion.Status != m.SuggestionPending {
			continue
		}

		if !accepted[suggestion.ID] {
			suggestion.Status = m.SuggestionRejected
			suggestion.RejectReason = "not selected"

			continue
		}

		link, err := c.applySuggestion(*suggestion)
		if err != nil {
			// Resolution failures are non-fatal: mark and move on.
			suggestion.Status = m.SuggestionRejected
			suggestion.RejectReason = err.Error()

			continue
		}

		suggestion.Status = m.SuggestionAccepted
		result.Created = append(result.Created, link)
		result.AcceptedCount++
	}

	run.Confirmed = true

	if err := c.store.SaveSuggestionRun(run); err != nil {
		return ConfirmResult{}, err
	}

	if err := c.saveLinks(); err != nil {
		return ConfirmResult{}, err
	}

	if len(result.Created) > 0 {
		result.AmalgamationErr = c.amalgamate(ctx, result.Created)
	}

	return result, nil
}

// saveLinks writes the graph back to the session file. The file holds the
// links of every test case sharing the session, so entries belonging to
// other test cases are carried over untouched.
func (c *Confirmer) saveLinks() error {
	persisted, err := c.store.LoadBinomi()
	if err != nil {
		return err
	}

	merged := make([]m.Binomio, 0, len(persisted))

	for _, link := range persisted {
		if link.TestCaseID != c.links.testCaseID {
			merged = append(merged, link)
		}
	}

	merged = append(merged, c.links.All()...)

	return c.store.SaveBinomi(merged)
}

// applySuggestion resolves the pattern and creates the inherited link.
func (c *Confirmer) applySuggestion(suggestion m.Suggestion) (m.Binomio, error) {
	pattern, ok := c.links.Get(suggestion.PatternID)
	if !ok {
		return m.Binomio{}, fmt.Errorf("pattern %s no longer exists", suggestion.PatternID)
	}

	return c.links.CreateFromPattern(suggestion.FromID, pattern, m.LLMMeta{
		SourceSuggestionID:     suggestion.ID,
		SourcePatternBinomioID: pattern.ID,
		Confidence:             suggestion.Confidence,
		Reasoning:              suggestion.Reasoning,
	})
}

// amalgamate asks the collaborator to merge the reasoning of the newly
// created links into the Context Document. Failures leave the document
// unchanged.
func (c *Confirmer) amalgamate(ctx context.Context, created []m.Binomio) error {
	doc, err := c.store.LoadContextDocument()
	if err != nil {
		return &m.AmalgamationError{Cause: err}
	}

	var reasons []string

	for _, link := range created {
		if link.LLMMeta != nil && link.LLMMeta.Reasoning != "" {
			reasons = append(reasons, "- "+link.LLMMeta.Reasoning)
		}
	}

	revised, err := c.llm.Amalgamate(ctx, doc.Text, strings.Join(reasons, "\n"))
	if err != nil {
		return &m.AmalgamationError{Cause: err}
	}

	if err := c.store.SaveContextDocument(doc.WithText(revised, c.now())); err != nil {
		return &m.AmalgamationError{Cause: err}
	}

	return nil
}
