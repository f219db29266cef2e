package domain

import (
	"strings"

	m "github.com/mouse-blink/ancora/internal/model"
)

// CanApplyEdit decides whether an edit may touch the anchored range. An
// edit intersecting the range is allowed only from that anchor's own edit
// session, and then only while staying inside the range and leaving it
// non-empty. From outside, the single allowed touch is a bare newline
// inserted immediately before the anchor, which pushes it down without
// entering it.
func CanApplyEdit(anchor m.Anchor, edit m.Edit) bool {
	if edit.EditingAnchorID == anchor.ID {
		if edit.Start < anchor.StartIndex || edit.Start+edit.Deleted > anchor.EndIndex {
			return false
		}

		return anchor.Len()+edit.Delta() > 0
	}

	if edit.Start == anchor.StartIndex && edit.IsNewlinePush() {
		return true
	}

	if anchor.Contains(edit.Start) {
		return false
	}

	// A deletion starting before the anchor must not eat into it.
	return edit.Start >= anchor.StartIndex || edit.Start+edit.Deleted <= anchor.StartIndex
}

// EnforceSeparation re-derives the buffer so every content anchor is
// preceded and followed by a line break, unless it sits at a buffer
// boundary or is under active editing. Buffer and anchors change together;
// returning one without the other would break the range invariants.
func EnforceSeparation(buffer string, anchors []m.Anchor, editingAnchorID string) (string, []m.Anchor) {
	updated := make([]m.Anchor, len(anchors))
	copy(updated, anchors)
	sortAnchors(updated)

	for i := range updated {
		if updated[i].Location != m.LocationContent || updated[i].ID == editingAnchorID {
			continue
		}

		start := updated[i].StartIndex
		if start > 0 && buffer[start-1] != '\n' {
			buffer = insertAt(buffer, start, "\n")
			shiftFrom(updated, start, 1)
		}

		end := updated[i].EndIndex
		if end < len(buffer) && buffer[end] != '\n' {
			buffer = insertAt(buffer, end, "\n")
			// The separator sits after the anchor: only later anchors move.
			shiftFrom(updated, end, 1)
		}
	}

	for i := range updated {
		updated[i].Text = buffer[updated[i].StartIndex:updated[i].EndIndex]
	}

	return buffer, updated
}

func insertAt(buffer string, pos int, text string) string {
	var sb strings.Builder

	sb.Grow(len(buffer) + len(text))
	sb.WriteString(buffer[:pos])
	sb.WriteString(text)
	sb.WriteString(buffer[pos:])

	return sb.String()
}

// shiftFrom moves every anchor bound at or past pos by delta.
func shiftFrom(anchors []m.Anchor, pos, delta int) {
	for i := range anchors {
		if anchors[i].StartIndex >= pos {
			anchors[i].StartIndex += delta
		}

		if anchors[i].EndIndex > pos {
			anchors[i].EndIndex += delta
		}
	}
}
