package model

import (
	"errors"
	"fmt"
)

// ErrStaleRun signals a confirmation attempt against a suggestion run that
// was already confirmed or superseded by a newer run.
var ErrStaleRun = errors.New("suggestion run is stale")

// OverlapError reports an anchor range colliding with an existing anchor of
// the same partition.
type OverlapError struct {
	Start      int
	End        int
	ConflictID string
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("range [%d,%d) overlaps anchor %s", e.Start, e.End, e.ConflictID)
}

// ValidationError reports malformed input rejected before any state change.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports an operation on a missing entity id.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// EditBlockedError reports a buffer edit rejected by the isolation rule: the
// edit landed inside an anchor that is not under an explicit edit session.
// The UI boundary drops the input silently; nothing surfaces to the user.
type EditBlockedError struct {
	AnchorID  string
	EditStart int
}

func (e *EditBlockedError) Error() string {
	return fmt.Sprintf("edit at %d blocked by anchor %s", e.EditStart, e.AnchorID)
}

// SuggestionParseError reports a malformed LLM response. It is fatal to the
// whole run: nothing is persisted and the prior run stays untouched.
type SuggestionParseError struct {
	Cause error
}

func (e *SuggestionParseError) Error() string {
	return fmt.Sprintf("malformed suggestion response: %v", e.Cause)
}

func (e *SuggestionParseError) Unwrap() error {
	return e.Cause
}

// AmalgamationError reports a failed context-document rewrite. It is
// best-effort: confirmed links are retained and the document is unchanged.
type AmalgamationError struct {
	Cause error
}

func (e *AmalgamationError) Error() string {
	return fmt.Sprintf("amalgamation failed: %v", e.Cause)
}

func (e *AmalgamationError) Unwrap() error {
	return e.Cause
}
