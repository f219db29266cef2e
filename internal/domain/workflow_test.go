package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/ancora/internal/adapter"
	"github.com/mouse-blink/ancora/internal/adapter/mocks"
	m "github.com/mouse-blink/ancora/internal/model"
)

func newWorkflow(t *testing.T, store adapter.SessionStore, bus *Bus) Workflow {
	t.Helper()

	wf, err := NewWorkflow("s1", "tc-1", store, mocks.NewMockLLMClient(t), bus)
	require.NoError(t, err)

	return wf
}

func TestWorkflow_SaveAndReload(t *testing.T) {
	store := adapter.NewSessionStore(t.TempDir())
	wf := newWorkflow(t, store, nil)

	header, err := wf.CreateAnchor(givenBox, m.LocationHeader, 0, 5, "types")
	require.NoError(t, err)
	content, err := wf.CreateAnchor(givenBox, m.LocationContent, 0, 9, "cy.type()")
	require.NoError(t, err)

	link, err := wf.CreateLink(header.ID, content.ID, m.Point{X: 1, Y: 0.5}, m.Point{X: 0, Y: 0.5})
	require.NoError(t, err)

	require.NoError(t, wf.Save(context.Background()))

	reloaded := newWorkflow(t, store, nil)

	anchors := reloaded.AllAnchors()
	require.Len(t, anchors, 2)
	assert.Contains(t, []string{anchors[0].ID, anchors[1].ID}, header.ID)

	links := reloaded.ListLinks()
	require.Len(t, links, 1)
	assert.Equal(t, link.ID, links[0].ID)
	assert.Equal(t, link.FromPoint, links[0].FromPoint)
	assert.Equal(t, link.CreatedAt.UnixMilli(), links[0].CreatedAt.UnixMilli())
}

func TestWorkflow_ForeignTestCasesSurviveSave(t *testing.T) {
	store := adapter.NewSessionStore(t.TempDir())

	foreignAnchor := m.Anchor{
		ID: "ec-s1-tc-9-given-1-1", TestCaseID: "tc-9", Box: givenBox,
		Location: m.LocationHeader, Text: "other", StartIndex: 0, EndIndex: 5,
	}
	require.NoError(t, store.SaveAnchors([]m.Anchor{foreignAnchor}))
	require.NoError(t, store.SaveBinomi([]m.Binomio{{
		ID: "bin-tc-9-001-1", TestCaseID: "tc-9", FromID: "x", ToID: "y", Status: m.LinkActive,
	}}))

	wf := newWorkflow(t, store, nil)

	_, err := wf.CreateAnchor(givenBox, m.LocationHeader, 0, 4, "mine")
	require.NoError(t, err)
	require.NoError(t, wf.Save(context.Background()))

	anchors, err := store.LoadAnchors()
	require.NoError(t, err)
	assert.Len(t, anchors, 2)

	links, err := store.LoadBinomi()
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, "tc-9", links[0].TestCaseID)

	// The foreign test case stays invisible to this workflow.
	assert.Len(t, wf.AllAnchors(), 1)
	assert.Empty(t, wf.ListLinks())
}

func TestWorkflow_DeleteAnchorCascades(t *testing.T) {
	store := adapter.NewSessionStore(t.TempDir())
	wf := newWorkflow(t, store, nil)

	header, err := wf.CreateAnchor(givenBox, m.LocationHeader, 0, 5, "types")
	require.NoError(t, err)
	content, err := wf.CreateAnchor(givenBox, m.LocationContent, 0, 9, "cy.type()")
	require.NoError(t, err)

	link, err := wf.CreateLink(header.ID, content.ID, m.Point{}, m.Point{})
	require.NoError(t, err)

	cascaded, err := wf.DeleteAnchor(content.ID)
	require.NoError(t, err)

	assert.Equal(t, []string{link.ID}, cascaded)
	assert.Empty(t, wf.ListLinks())

	for _, anchor := range wf.AllAnchors() {
		assert.NotEqual(t, content.ID, anchor.ID)
	}
}

func TestWorkflow_ApplyEdit(t *testing.T) {
	store := adapter.NewSessionStore(t.TempDir())
	wf := newWorkflow(t, store, nil)

	buffer := "before\ncy.get('.btn')\nafter"
	wf.SetBuffer(givenBox, m.LocationContent, buffer)

	anchor, err := wf.CreateAnchor(givenBox, m.LocationContent, 7, 21, "cy.get('.btn')")
	require.NoError(t, err)

	newBuffer, anchors, err := wf.ApplyEdit(givenBox, m.LocationContent, m.Edit{
		Start: 0, Deleted: 0, Inserted: "x",
	})
	require.NoError(t, err)

	require.Len(t, anchors, 1)
	assert.Equal(t, 8, anchors[0].StartIndex)
	assert.Equal(t, 22, anchors[0].EndIndex)
	assert.Equal(t, "cy.get('.btn')", anchors[0].Text)
	assert.Equal(t, newBuffer, wf.Buffer(givenBox, m.LocationContent))

	_, _, err = wf.ApplyEdit(givenBox, m.LocationContent, m.Edit{Start: 10, Inserted: "x"})

	var blocked *m.EditBlockedError
	require.ErrorAs(t, err, &blocked)
	assert.Equal(t, anchor.ID, blocked.AnchorID)
}

func TestWorkflow_SnapshotIsDetached(t *testing.T) {
	store := adapter.NewSessionStore(t.TempDir())
	wf := newWorkflow(t, store, nil)

	_, err := wf.CreateAnchor(givenBox, m.LocationHeader, 0, 5, "types")
	require.NoError(t, err)

	snap := wf.Snapshot()
	require.Len(t, snap.Anchors, 1)

	snap.Anchors[0].Text = "mutated"

	assert.Equal(t, "types", wf.AllAnchors()[0].Text)
	assert.Equal(t, "s1", snap.SessionID)
	assert.Equal(t, "tc-1", snap.TestCaseID)
}

func TestWorkflow_Documents(t *testing.T) {
	store := adapter.NewSessionStore(t.TempDir())
	wf := newWorkflow(t, store, nil)

	require.NoError(t, wf.SetContextDocument("accumulated knowledge"))
	require.NoError(t, wf.SetBusinessSpec("the user signs in"))

	doc, err := wf.ContextDocument()
	require.NoError(t, err)
	assert.Equal(t, "accumulated knowledge", doc.Text)

	spec, err := wf.BusinessSpec()
	require.NoError(t, err)
	assert.Equal(t, "the user signs in", spec)
}

func TestWorkflow_PublishesEvents(t *testing.T) {
	store := adapter.NewSessionStore(t.TempDir())
	bus := NewBus()

	var events []Event

	bus.Subscribe(func(e Event) {
		events = append(events, e)
	})

	wf := newWorkflow(t, store, bus)

	header, err := wf.CreateAnchor(givenBox, m.LocationHeader, 0, 5, "types")
	require.NoError(t, err)
	content, err := wf.CreateAnchor(givenBox, m.LocationContent, 0, 9, "cy.type()")
	require.NoError(t, err)

	link, err := wf.CreateLink(header.ID, content.ID, m.Point{}, m.Point{})
	require.NoError(t, err)

	_, err = wf.DeleteAnchor(content.ID)
	require.NoError(t, err)

	kinds := make([]EventKind, len(events))
	for i, e := range events {
		kinds[i] = e.Kind
	}

	assert.Equal(t, []EventKind{
		EventAnchorCreated,
		EventAnchorCreated,
		EventLinkCreated,
		EventLinkDeleted,
		EventAnchorDeleted,
	}, kinds)

	assert.Equal(t, link.ID, events[2].ID)
	assert.Equal(t, "tc-1", events[2].TestCaseID)
}
