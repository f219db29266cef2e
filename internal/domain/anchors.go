// Package domain implements the semantic anchor and linkage engine: anchor
// partitions, index reconciliation under buffer edits, edit isolation, the
// Binomi link graph and the LLM suggestion pipeline.
package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	m "github.com/mouse-blink/ancora/internal/model"
)

// partitionKey addresses one anchor partition: one location of one box.
type partitionKey struct {
	box m.BoxRef
	loc m.Location
}

// AnchorStore holds the anchors of one test case, partitioned by
// (box, location). Within a partition anchors stay pairwise non-overlapping
// and sorted by start index. All mutations are synchronous and touch only
// the in-memory partition; persistence is a separate explicit step.
type AnchorStore struct {
	sessionID  string
	testCaseID string
	parts      map[partitionKey][]m.Anchor
	seq        int
	now        func() time.Time
}

// NewAnchorStore builds a store seeded with previously persisted anchors of
// the test case. The id sequence resumes past the highest seen suffix.
func NewAnchorStore(sessionID, testCaseID string, existing []m.Anchor) *AnchorStore {
	s := &AnchorStore{
		sessionID:  sessionID,
		testCaseID: testCaseID,
		parts:      make(map[partitionKey][]m.Anchor),
		now:        time.Now,
	}

	for _, anchor := range existing {
		if anchor.TestCaseID != testCaseID {
			continue
		}

		key := partitionKey{box: anchor.Box, loc: anchor.Location}
		s.parts[key] = append(s.parts[key], anchor)

		if suffix := idSuffix(anchor.ID); suffix > s.seq {
			s.seq = suffix
		}
	}

	for key := range s.parts {
		sortAnchors(s.parts[key])
	}

	return s
}

// Create converts a text selection into an anchor. It fails with an
// OverlapError when the range intersects an existing anchor of the same
// partition, leaving no partial state behind.
func (s *AnchorStore) Create(box m.BoxRef, loc m.Location, start, end int, text string) (m.Anchor, error) {
	anchor := m.Anchor{
		TestCaseID: s.testCaseID,
		Box:        box,
		Location:   loc,
		Text:       text,
		StartIndex: start,
		EndIndex:   end,
		CreatedAt:  s.now(),
	}

	if err := anchor.Validate(); err != nil {
		return m.Anchor{}, err
	}

	key := partitionKey{box: box, loc: loc}

	for _, other := range s.parts[key] {
		if start < other.EndIndex && other.StartIndex < end {
			return m.Anchor{}, &m.OverlapError{Start: start, End: end, ConflictID: other.ID}
		}
	}

	s.seq++
	anchor.ID = fmt.Sprintf("ec-%s-%s-%s-%d", s.sessionID, s.testCaseID, box, s.seq)

	s.parts[key] = append(s.parts[key], anchor)
	sortAnchors(s.parts[key])

	return anchor, nil
}

// Get looks an anchor up by id across all partitions.
func (s *AnchorStore) Get(id string) (m.Anchor, bool) {
	for _, anchors := range s.parts {
		for _, anchor := range anchors {
			if anchor.ID == id {
				return anchor, true
			}
		}
	}

	return m.Anchor{}, false
}

// List returns the partition's anchors sorted by start index. The slice is
// a copy; callers cannot reach the store's state through it.
func (s *AnchorStore) List(box m.BoxRef, loc m.Location) []m.Anchor {
	key := partitionKey{box: box, loc: loc}

	out := make([]m.Anchor, len(s.parts[key]))
	copy(out, s.parts[key])

	return out
}

// All returns every anchor of the test case in stable partition order.
func (s *AnchorStore) All() []m.Anchor {
	keys := make([]partitionKey, 0, len(s.parts))
	for key := range s.parts {
		keys = append(keys, key)
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].box.Type != keys[j].box.Type {
			return keys[i].box.Type < keys[j].box.Type
		}

		if keys[i].box.Number != keys[j].box.Number {
			return keys[i].box.Number < keys[j].box.Number
		}

		return keys[i].loc < keys[j].loc
	})

	var out []m.Anchor
	for _, key := range keys {
		out = append(out, s.parts[key]...)
	}

	return out
}

// Delete removes the anchor and returns it. Cascading incident links is the
// caller's job; the store does not know about the link graph.
func (s *AnchorStore) Delete(id string) (m.Anchor, error) {
	for key, anchors := range s.parts {
		for i, anchor := range anchors {
			if anchor.ID != id {
				continue
			}

			s.parts[key] = append(anchors[:i:i], anchors[i+1:]...)

			return anchor, nil
		}
	}

	return m.Anchor{}, &m.NotFoundError{Kind: "anchor", ID: id}
}

// Replace swaps a whole partition after reconciliation. The caller
// guarantees the new anchors are sorted and non-overlapping.
func (s *AnchorStore) Replace(box m.BoxRef, loc m.Location, anchors []m.Anchor) {
	key := partitionKey{box: box, loc: loc}

	replacement := make([]m.Anchor, len(anchors))
	copy(replacement, anchors)

	s.parts[key] = replacement
}

func sortAnchors(anchors []m.Anchor) {
	sort.Slice(anchors, func(i, j int) bool {
		return anchors[i].StartIndex < anchors[j].StartIndex
	})
}

// idSuffix extracts the trailing sequence number of an anchor id, 0 when
// the id does not end in a number.
func idSuffix(id string) int {
	idx := strings.LastIndexByte(id, '-')
	if idx < 0 {
		return 0
	}

	n, err := strconv.Atoi(id[idx+1:])
	if err != nil {
		return 0
	}

	return n
}
