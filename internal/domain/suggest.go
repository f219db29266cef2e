package domain

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mouse-blink/ancora/internal/adapter"
	m "github.com/mouse-blink/ancora/internal/model"
)

// minConfidence gates suggestions after clamping; everything below is
// dropped silently.
const minConfidence = 0.6

// SuggestionEngine assembles the knowledge documents, active patterns and
// unlinked header anchors into one LLM request and validates the response
// into a persisted suggestion run.
type SuggestionEngine struct {
	anchors *AnchorStore
	links   *LinkGraph
	store   adapter.SessionStore
	llm     adapter.LLMClient
	now     func() time.Time
	newID   func() string
}

// NewSuggestionEngine wires the engine to the in-memory state and its
// collaborators.
func NewSuggestionEngine(anchors *AnchorStore, links *LinkGraph, store adapter.SessionStore, llm adapter.LLMClient) *SuggestionEngine {
	return &SuggestionEngine{
		anchors: anchors,
		links:   links,
		store:   store,
		llm:     llm,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Run produces and persists a new suggestion run, replacing any prior run
// for the session. Without unlinked anchors or active patterns it returns
// an empty run immediately, never reaching the collaborator. A malformed
// response is fatal for the run: nothing is persisted, the prior run stays.
func (e *SuggestionEngine) Run(ctx context.Context) (m.SuggestionRun, error) {
	unlinked := e.unlinkedHeaders()
	patterns := e.links.Active()

	if len(unlinked) == 0 || len(patterns) == 0 {
		return m.SuggestionRun{}, nil
	}

	prompt, err := e.assemblePrompt(unlinked, patterns)
	if err != nil {
		return m.SuggestionRun{}, err
	}

	response, err := e.llm.Suggest(ctx, prompt)
	if err != nil {
		return m.SuggestionRun{}, err
	}

	run := e.validate(response, unlinked)
	if err := e.store.SaveSuggestionRun(run); err != nil {
		return m.SuggestionRun{}, err
	}

	return run, nil
}

// unlinkedHeaders returns header anchors with no active outgoing Binomio.
func (e *SuggestionEngine) unlinkedHeaders() []m.Anchor {
	var out []m.Anchor

	for _, anchor := range e.anchors.All() {
		if anchor.Location != m.LocationHeader {
			continue
		}

		if e.links.HasActiveFrom(anchor.ID) {
			continue
		}

		out = append(out, anchor)
	}

	return out
}

func (e *SuggestionEngine) assemblePrompt(unlinked []m.Anchor, patterns []m.Binomio) (adapter.SuggestionPrompt, error) {
	contextDoc, err := e.store.LoadContextDocument()
	if err != nil {
		return adapter.SuggestionPrompt{}, err
	}

	businessSpec, err := e.store.LoadBusinessSpec()
	if err != nil {
		return adapter.SuggestionPrompt{}, err
	}

	prompt := adapter.SuggestionPrompt{
		ContextDocument: contextDoc.Text,
		BusinessSpec:    businessSpec,
	}

	for _, pattern := range patterns {
		from, okFrom := e.anchors.Get(pattern.FromID)

		to, okTo := e.anchors.Get(pattern.ToID)
		if !okFrom || !okTo {
			continue
		}

		prompt.Patterns = append(prompt.Patterns, adapter.PatternSample{
			BinomioID: pattern.ID,
			FromText:  from.Text,
			ToText:    to.Text,
		})
	}

	for _, anchor := range unlinked {
		candidate := adapter.CandidateAnchor{
			AnchorID: anchor.ID,
			Text:     anchor.Text,
		}

		// Content anchors of the same box hint at what code already exists
		// near the statement.
		for _, sibling := range e.anchors.List(anchor.Box, m.LocationContent) {
			candidate.Hints = append(candidate.Hints, sibling.Text)
		}

		prompt.Candidates = append(prompt.Candidates, candidate)
	}

	return prompt, nil
}

// validate runs the mandatory pipeline over the parsed response: clamp
// confidence, drop suggestions referencing unknown anchors, inactive
// patterns or gated confidence, then assign fresh ids and compute stats.
func (e *SuggestionEngine) validate(response adapter.SuggestionResponse, unlinked []m.Anchor) m.SuggestionRun {
	unlinkedSet := make(map[string]bool, len(unlinked))
	for _, anchor := range unlinked {
		unlinkedSet[anchor.ID] = true
	}

	run := m.SuggestionRun{
		RunID:     e.newID(),
		Timestamp: e.now(),
	}

	var confidenceSum float64

	for _, raw := range response.Suggestions {
		confidence := clamp(raw.Confidence, 0, 1)

		if !unlinkedSet[raw.FromObjectID] {
			continue
		}

		if pattern, ok := e.links.Get(raw.PatternID); !ok || !pattern.Active() {
			continue
		}

		// A confidence outside [0,1] is out of contract: clamping keeps the
		// stored value well-formed but never rescues the suggestion.
		if confidence < minConfidence || raw.Confidence != confidence {
			continue
		}

		confidenceSum += confidence

		run.Suggestions = append(run.Suggestions, m.Suggestion{
			ID:         e.newID(),
			FromID:     raw.FromObjectID,
			PatternID:  raw.PatternID,
			Confidence: confidence,
			Reasoning:  raw.Reasoning,
			Status:     m.SuggestionPending,
		})
	}

	run.Stats = m.RunStats{
		TotalAnalyzed: len(unlinked),
		Suggested:     len(run.Suggestions),
	}

	if len(run.Suggestions) > 0 {
		run.Stats.AvgConfidence = confidenceSum / float64(len(run.Suggestions))
	}

	return run
}
