// Package adapter provides the driven side of the engine: session file
// stores and the LLM collaborator client.
package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	m "github.com/mouse-blink/ancora/internal/model"
)

// PatternSample is an active Binomio rendered for the suggestion prompt.
type PatternSample struct {
	BinomioID string
	FromText  string
	ToText    string
}

// CandidateAnchor is an unlinked header anchor offered for matching, with
// the content anchors of the same box as contextual hints.
type CandidateAnchor struct {
	AnchorID string
	Text     string
	Hints    []string
}

// SuggestionPrompt is the assembled input of one suggestion run.
type SuggestionPrompt struct {
	ContextDocument string
	BusinessSpec    string
	Patterns        []PatternSample
	Candidates      []CandidateAnchor
}

// RawSuggestion is one candidate match as returned by the collaborator,
// before validation.
type RawSuggestion struct {
	FromObjectID string  `json:"fromObjectId"`
	PatternID    string  `json:"suggestedPatternBinomioId"`
	Confidence   float64 `json:"confidence"`
	Reasoning    string  `json:"reasoning"`
}

// RawStats mirrors the stats object of the collaborator response.
type RawStats struct {
	TotalAnalyzed int     `json:"totalAnalyzed"`
	Suggested     int     `json:"suggested"`
	AvgConfidence float64 `json:"avgConfidence"`
}

// SuggestionResponse is the parsed collaborator output.
type SuggestionResponse struct {
	Suggestions []RawSuggestion
	Stats       RawStats
}

// LLMClient is the contract of the LLM collaborator. Suggest returns a
// *model.SuggestionParseError when the response does not match the expected
// shape; Amalgamate returns the revised document as plain text.
type LLMClient interface {
	Suggest(ctx context.Context, prompt SuggestionPrompt) (SuggestionResponse, error)
	Amalgamate(ctx context.Context, documentText, newReasoning string) (string, error)
}

// responseEnvelope enforces the response contract: both keys must be
// present, anything else is a parse failure.
type responseEnvelope struct {
	Suggestions *[]RawSuggestion `json:"suggestions"`
	Stats       *RawStats        `json:"stats"`
}

// ParseSuggestionResponse decodes the collaborator's JSON payload, tolerating
// a markdown code fence around it.
func ParseSuggestionResponse(raw string) (SuggestionResponse, error) {
	cleaned := stripFences(raw)

	var envelope responseEnvelope
	if err := json.Unmarshal([]byte(cleaned), &envelope); err != nil {
		return SuggestionResponse{}, &m.SuggestionParseError{Cause: err}
	}

	if envelope.Suggestions == nil || envelope.Stats == nil {
		return SuggestionResponse{}, &m.SuggestionParseError{
			Cause: fmt.Errorf("missing suggestions or stats object"),
		}
	}

	return SuggestionResponse{
		Suggestions: *envelope.Suggestions,
		Stats:       *envelope.Stats,
	}, nil
}

func stripFences(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")

	return strings.TrimSpace(cleaned)
}

// BuildSuggestionPrompt renders the prompt text sent to the collaborator.
func BuildSuggestionPrompt(p SuggestionPrompt) string {
	var sb strings.Builder

	sb.WriteString("Match unlinked test statements to existing automation patterns. Return JSON only.\n\n")

	if p.ContextDocument != "" {
		sb.WriteString("Context document (accumulated project rules):\n")
		sb.WriteString(p.ContextDocument)
		sb.WriteString("\n\n")
	}

	if p.BusinessSpec != "" {
		sb.WriteString("Business specification:\n")
		sb.WriteString(p.BusinessSpec)
		sb.WriteString("\n\n")
	}

	sb.WriteString("Active patterns (statement -> code):\n")

	for _, pattern := range p.Patterns {
		fmt.Fprintf(&sb, "- [%s] %q -> %q\n", pattern.BinomioID, pattern.FromText, pattern.ToText)
	}

	sb.WriteString("\nUnlinked statements:\n")

	for _, candidate := range p.Candidates {
		fmt.Fprintf(&sb, "- [%s] %q\n", candidate.AnchorID, candidate.Text)

		for _, hint := range candidate.Hints {
			fmt.Fprintf(&sb, "  code nearby: %q\n", hint)
		}
	}

	sb.WriteString(`
Return a JSON object with this structure:
{
  "suggestions": [
    {"fromObjectId": "...", "suggestedPatternBinomioId": "...", "confidence": 0.9, "reasoning": "..."}
  ],
  "stats": {"totalAnalyzed": 0, "suggested": 0, "avgConfidence": 0.0}
}

Rules:
- Only reference the statement and pattern ids listed above
- Confidence is 0.0-1.0 based on how certain the match is
- Omit statements with no plausible pattern

Return ONLY the JSON, no other text.`)

	return sb.String()
}

// BuildAmalgamationPrompt renders the context-document merge request.
func BuildAmalgamationPrompt(documentText, newReasoning string) string {
	var sb strings.Builder

	sb.WriteString("Merge new linking rules into an existing context document.\n\n")
	sb.WriteString("Current document:\n")
	sb.WriteString(documentText)
	sb.WriteString("\n\nNew rules from confirmed links:\n")
	sb.WriteString(newReasoning)
	sb.WriteString("\n\nReturn the full revised document as plain text, merging the new rules without duplicating existing ones. Return ONLY the document text.")

	return sb.String()
}
