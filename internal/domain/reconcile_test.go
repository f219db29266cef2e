package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/ancora/internal/model"
)

func contentAnchor(id string, start, end int, buffer string) m.Anchor {
	return m.Anchor{
		ID:         id,
		TestCaseID: "tc-1",
		Box:        givenBox,
		Location:   m.LocationContent,
		Text:       buffer[start:end],
		StartIndex: start,
		EndIndex:   end,
	}
}

func TestReconcileEdit(t *testing.T) {
	t.Run("shifts anchors after the edit point by the delta", func(t *testing.T) {
		buffer := "0123456789ABCDEFGHIJ"
		anchors := []m.Anchor{contentAnchor("a1", 10, 15, buffer)}

		newBuffer, updated, err := ReconcileEdit(buffer, anchors, m.Edit{Start: 2, Deleted: 0, Inserted: "xxx"})
		require.NoError(t, err)

		assert.Equal(t, "01xxx23456789ABCDEFGHIJ", newBuffer)
		assert.Equal(t, 13, updated[0].StartIndex)
		assert.Equal(t, 18, updated[0].EndIndex)
		assert.Equal(t, "ABCDE", updated[0].Text)
	})

	t.Run("leaves anchors before the edit point untouched", func(t *testing.T) {
		buffer := "0123456789ABCDEFGHIJ"
		anchors := []m.Anchor{contentAnchor("a1", 0, 5, buffer)}

		_, updated, err := ReconcileEdit(buffer, anchors, m.Edit{Start: 10, Deleted: 3, Inserted: ""})
		require.NoError(t, err)

		assert.Equal(t, 0, updated[0].StartIndex)
		assert.Equal(t, 5, updated[0].EndIndex)
	})

	t.Run("treats an edit at the end boundary as outside the anchor", func(t *testing.T) {
		buffer := "0123456789"
		anchors := []m.Anchor{contentAnchor("a1", 0, 5, buffer)}

		_, updated, err := ReconcileEdit(buffer, anchors, m.Edit{Start: 5, Deleted: 0, Inserted: "zz"})
		require.NoError(t, err)

		assert.Equal(t, 5, updated[0].EndIndex, "anchor must not grow from an edit at its end boundary")
	})

	t.Run("blocks an edit inside an anchor outside an edit session", func(t *testing.T) {
		buffer := "0123456789ABCDEFGHIJ"
		anchors := []m.Anchor{contentAnchor("a1", 10, 20, buffer)}

		_, _, err := ReconcileEdit(buffer, anchors, m.Edit{Start: 15, Deleted: 0, Inserted: "x"})

		var blocked *m.EditBlockedError
		require.ErrorAs(t, err, &blocked)
		assert.Equal(t, "a1", blocked.AnchorID)

		// The caller keeps the old state: the anchor range is unchanged.
		assert.Equal(t, 10, anchors[0].StartIndex)
		assert.Equal(t, 20, anchors[0].EndIndex)
	})

	t.Run("attributes an in-session edit to the anchor and grows its end", func(t *testing.T) {
		buffer := "0123456789ABCDEFGHIJ"
		anchors := []m.Anchor{contentAnchor("a1", 10, 20, buffer)}

		newBuffer, updated, err := ReconcileEdit(buffer, anchors, m.Edit{
			Start:           15,
			Deleted:         0,
			Inserted:        "xyz",
			EditingAnchorID: "a1",
		})
		require.NoError(t, err)

		assert.Equal(t, 10, updated[0].StartIndex)
		assert.Equal(t, 23, updated[0].EndIndex)
		assert.Equal(t, newBuffer[10:23], updated[0].Text)
	})

	t.Run("shrinks the anchor on an in-session deletion", func(t *testing.T) {
		buffer := "0123456789ABCDEFGHIJ"
		anchors := []m.Anchor{contentAnchor("a1", 10, 20, buffer)}

		_, updated, err := ReconcileEdit(buffer, anchors, m.Edit{
			Start:           12,
			Deleted:         4,
			Inserted:        "",
			EditingAnchorID: "a1",
		})
		require.NoError(t, err)

		assert.Equal(t, 10, updated[0].StartIndex)
		assert.Equal(t, 16, updated[0].EndIndex)
	})

	t.Run("allows a newline push immediately before an anchor", func(t *testing.T) {
		buffer := "0123456789ABCDEFGHIJ"
		anchors := []m.Anchor{contentAnchor("a1", 10, 15, buffer)}

		newBuffer, updated, err := ReconcileEdit(buffer, anchors, m.Edit{Start: 10, Deleted: 0, Inserted: "\n"})
		require.NoError(t, err)

		assert.Equal(t, 11, updated[0].StartIndex)
		assert.Equal(t, 16, updated[0].EndIndex)
		assert.Equal(t, "ABCDE", updated[0].Text)
		assert.Equal(t, byte('\n'), newBuffer[10])
	})

	t.Run("blocks a non-newline insertion at the anchor start", func(t *testing.T) {
		buffer := "0123456789ABCDEFGHIJ"
		anchors := []m.Anchor{contentAnchor("a1", 10, 15, buffer)}

		_, _, err := ReconcileEdit(buffer, anchors, m.Edit{Start: 10, Deleted: 0, Inserted: "x"})

		var blocked *m.EditBlockedError
		require.ErrorAs(t, err, &blocked)
	})

	t.Run("blocks a deletion eating into an anchor from before it", func(t *testing.T) {
		buffer := "0123456789ABCDEFGHIJ"
		anchors := []m.Anchor{contentAnchor("a1", 10, 15, buffer)}

		_, _, err := ReconcileEdit(buffer, anchors, m.Edit{Start: 8, Deleted: 4, Inserted: ""})

		var blocked *m.EditBlockedError
		require.ErrorAs(t, err, &blocked)
	})

	t.Run("blocks an in-session deletion crossing the anchor end", func(t *testing.T) {
		buffer := "0123456789ABCDEFGHIJ"
		anchors := []m.Anchor{contentAnchor("a1", 10, 15, buffer)}

		_, _, err := ReconcileEdit(buffer, anchors, m.Edit{
			Start:           13,
			Deleted:         5,
			Inserted:        "",
			EditingAnchorID: "a1",
		})

		var blocked *m.EditBlockedError
		require.ErrorAs(t, err, &blocked)
	})

	t.Run("blocks an in-session deletion emptying the anchor", func(t *testing.T) {
		buffer := "0123456789ABCDEFGHIJ"
		anchors := []m.Anchor{contentAnchor("a1", 10, 20, buffer)}

		_, _, err := ReconcileEdit(buffer, anchors, m.Edit{
			Start:           10,
			Deleted:         10,
			Inserted:        "",
			EditingAnchorID: "a1",
		})

		var blocked *m.EditBlockedError
		require.ErrorAs(t, err, &blocked)
	})

	t.Run("allows an in-session replacement of the whole anchored text", func(t *testing.T) {
		buffer := "0123456789ABCDEFGHIJ"
		anchors := []m.Anchor{contentAnchor("a1", 10, 20, buffer)}

		newBuffer, updated, err := ReconcileEdit(buffer, anchors, m.Edit{
			Start:           10,
			Deleted:         10,
			Inserted:        "xy",
			EditingAnchorID: "a1",
		})
		require.NoError(t, err)

		assert.Equal(t, 10, updated[0].StartIndex)
		assert.Equal(t, 12, updated[0].EndIndex)
		assert.Equal(t, "xy", updated[0].Text)
		assert.Equal(t, "0123456789xy", newBuffer)
	})

	t.Run("rejects an edit outside the buffer", func(t *testing.T) {
		_, _, err := ReconcileEdit("short", nil, m.Edit{Start: 3, Deleted: 10, Inserted: ""})

		var invalid *m.ValidationError
		require.ErrorAs(t, err, &invalid)
	})

	t.Run("shifts every anchor of a multi-anchor partition consistently", func(t *testing.T) {
		buffer := "aaaa bbbb cccc dddd eeee"
		anchors := []m.Anchor{
			contentAnchor("a1", 0, 4, buffer),
			contentAnchor("a2", 10, 14, buffer),
			contentAnchor("a3", 20, 24, buffer),
		}

		newBuffer, updated, err := ReconcileEdit(buffer, anchors, m.Edit{Start: 5, Deleted: 4, Inserted: "XX"})
		require.NoError(t, err)

		assert.Equal(t, "aaaa XX cccc dddd eeee", newBuffer)
		assert.Equal(t, 0, updated[0].StartIndex)
		assert.Equal(t, 8, updated[1].StartIndex)
		assert.Equal(t, 18, updated[2].StartIndex)

		for _, anchor := range updated {
			assert.Equal(t, newBuffer[anchor.StartIndex:anchor.EndIndex], anchor.Text)
		}
	})
}
