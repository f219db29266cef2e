package model

import "time"

// LinkStatus is the lifecycle state of a Binomio.
type LinkStatus string

const (
	// LinkActive marks a link that participates in rendering and suggestion
	// pattern matching.
	LinkActive LinkStatus = "active"
	// LinkDisabled marks a link kept for audit but excluded from patterns.
	LinkDisabled LinkStatus = "disabled"
)

// Point is a normalized (x, y) coordinate in [0,1]² relative to an anchor's
// rendered bounding box.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LLMMeta records the provenance of a link created through the suggestion
// pipeline.
type LLMMeta struct {
	SourceSuggestionID     string  `json:"sourceSuggestionId"`
	SourcePatternBinomioID string  `json:"sourcePatternBinomioId"`
	Confidence             float64 `json:"confidence"`
	Reasoning              string  `json:"reasoning"`
}

// Binomio is a directed link from a header anchor to a content anchor of the
// same test case. Status toggles carry an audit trail: exactly one of the
// disabled/enabled field pairs is set at a time.
type Binomio struct {
	ID         string     `json:"id"`
	TestCaseID string     `json:"testCaseId"`
	FromID     string     `json:"fromObjectId"`
	ToID       string     `json:"toObjectId"`
	FromPoint  Point      `json:"fromPoint"`
	ToPoint    Point      `json:"toPoint"`
	Status     LinkStatus `json:"status"`
	CreatedAt  time.Time  `json:"createdAt"`

	DisabledAt     *time.Time `json:"disabledAt,omitempty"`
	DisabledReason string     `json:"disabledReason,omitempty"`
	EnabledAt      *time.Time `json:"enabledAt,omitempty"`
	EnabledReason  string     `json:"enabledReason,omitempty"`

	LLMMeta *LLMMeta `json:"llmMeta,omitempty"`
}

// Active reports whether the link participates in patterns.
func (b Binomio) Active() bool {
	return b.Status == LinkActive
}

// Incident reports whether the anchor id is one of the link's endpoints.
func (b Binomio) Incident(anchorID string) bool {
	return b.FromID == anchorID || b.ToID == anchorID
}
