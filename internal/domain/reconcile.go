package domain

import (
	m "github.com/mouse-blink/ancora/internal/model"
)

// ReconcileEdit applies one buffer edit to a partition: the buffer is
// rewritten, anchors past the edit point shift by the edit's delta, and the
// anchor owning an in-range edit grows or shrinks. Callers pass each edit
// exactly once, before committing the new buffer; the function itself is
// pure and returns fresh copies.
//
// An edit touching an anchor that is not under an explicit edit session is
// rejected with an EditBlockedError and nothing changes. The single allowed
// exception is a bare newline inserted immediately before an anchor, which
// pushes it down without entering it.
func ReconcileEdit(buffer string, anchors []m.Anchor, edit m.Edit) (string, []m.Anchor, error) {
	if !edit.InRange(buffer) {
		return "", nil, &m.ValidationError{Field: "edit", Reason: "range outside buffer"}
	}

	// Validate isolation for every anchor before shifting anything, so a
	// blocked edit leaves no partial state.
	for _, anchor := range anchors {
		if !CanApplyEdit(anchor, edit) {
			return "", nil, &m.EditBlockedError{AnchorID: anchor.ID, EditStart: edit.Start}
		}
	}

	delta := edit.Delta()
	newBuffer := edit.Apply(buffer)
	updated := make([]m.Anchor, len(anchors))

	for i, anchor := range anchors {
		switch {
		case edit.Start >= anchor.EndIndex:
			// Edit lies at or past the anchor's end: untouched.
		case anchor.Contains(edit.Start) && edit.EditingAnchorID == anchor.ID:
			// The edit belongs to this anchor's session: attribute it.
			anchor.EndIndex += delta
		default:
			// Edit lies before the anchor (including the newline push):
			// both bounds shift.
			anchor.StartIndex += delta
			anchor.EndIndex += delta
		}

		anchor.Text = newBuffer[anchor.StartIndex:anchor.EndIndex]
		updated[i] = anchor
	}

	sortAnchors(updated)

	return newBuffer, updated, nil
}
