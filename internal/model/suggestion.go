package model

import "time"

// SuggestionStatus is the lifecycle state of one suggestion. Accepted and
// rejected are terminal.
type SuggestionStatus string

const (
	// SuggestionPending means the suggestion awaits confirmation.
	SuggestionPending SuggestionStatus = "pending"
	// SuggestionAccepted means a Binomio was created from the suggestion.
	SuggestionAccepted SuggestionStatus = "accepted"
	// SuggestionRejected means the suggestion was not selected, or its
	// pattern could no longer be resolved at confirmation time.
	SuggestionRejected SuggestionStatus = "rejected"
)

// Suggestion proposes linking an unlinked header anchor the way an existing
// active Binomio pattern links its own.
type Suggestion struct {
	ID           string           `json:"id"`
	FromID       string           `json:"fromObjectId"`
	PatternID    string           `json:"suggestedPatternBinomioId"`
	Confidence   float64          `json:"confidence"`
	Reasoning    string           `json:"reasoning"`
	Status       SuggestionStatus `json:"status"`
	RejectReason string           `json:"rejectReason,omitempty"`
}

// RunStats summarizes one suggestion run.
type RunStats struct {
	TotalAnalyzed int     `json:"totalAnalyzed"`
	Suggested     int     `json:"suggested"`
	AvgConfidence float64 `json:"avgConfidence"`
}

// SuggestionRun is one batch output of the suggestion engine. A new run
// replaces the previous one entirely; Confirmed guards against confirming
// the same run twice.
type SuggestionRun struct {
	RunID       string       `json:"runId"`
	Timestamp   time.Time    `json:"timestamp"`
	Suggestions []Suggestion `json:"suggestions"`
	Stats       RunStats     `json:"stats"`
	Confirmed   bool         `json:"confirmed,omitempty"`
}

// Empty reports whether the run carries no suggestions.
func (r SuggestionRun) Empty() bool {
	return len(r.Suggestions) == 0
}

// Pending returns the suggestions still awaiting confirmation.
func (r SuggestionRun) Pending() []Suggestion {
	var out []Suggestion

	for _, s := range r.Suggestions {
		if s.Status == SuggestionPending {
			out = append(out, s)
		}
	}

	return out
}
