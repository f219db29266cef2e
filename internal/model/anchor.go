// Package model defines the data structures for semantic anchors and links.
package model

import (
	"fmt"
	"time"
)

// BoxType identifies which Gherkin box of a test case a buffer belongs to.
type BoxType string

const (
	// BoxGiven is the precondition box of a test case.
	BoxGiven BoxType = "given"
	// BoxWhen is the action box of a test case.
	BoxWhen BoxType = "when"
	// BoxThen is the assertion box of a test case.
	BoxThen BoxType = "then"
)

// Location says which of the two parallel buffers an anchor lives in.
type Location string

const (
	// LocationHeader marks anchors inside the natural-language From statement.
	LocationHeader Location = "header"
	// LocationContent marks anchors inside the generated To code block.
	LocationContent Location = "content"
)

// BoxRef addresses one box of one test case. A test case may carry several
// boxes of the same type, distinguished by Number.
type BoxRef struct {
	Type   BoxType `json:"boxType"`
	Number int     `json:"boxNumber"`
}

func (b BoxRef) String() string {
	return fmt.Sprintf("%s-%d", b.Type, b.Number)
}

// Anchor is a semantic marker bound to a half-open text range
// [StartIndex, EndIndex) of one buffer. Text is a denormalized cache of the
// buffer slice and must match it whenever the anchor is persisted.
type Anchor struct {
	ID         string    `json:"id"`
	TestCaseID string    `json:"testCaseId"`
	Box        BoxRef    `json:"box"`
	Location   Location  `json:"location"`
	Text       string    `json:"text"`
	StartIndex int       `json:"startIndex"`
	EndIndex   int       `json:"endIndex"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Len returns the length of the anchored range.
func (a Anchor) Len() int {
	return a.EndIndex - a.StartIndex
}

// Contains reports whether the position lies inside the anchored range.
func (a Anchor) Contains(pos int) bool {
	return pos >= a.StartIndex && pos < a.EndIndex
}

// Validate checks the range invariant: a non-empty range whose cached text
// has exactly the range's length.
func (a Anchor) Validate() error {
	if a.EndIndex <= a.StartIndex {
		return &ValidationError{Field: "endIndex", Reason: "must be greater than startIndex"}
	}

	if len(a.Text) != a.Len() {
		return &ValidationError{Field: "text", Reason: "length does not match anchored range"}
	}

	return nil
}
