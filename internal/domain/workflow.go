package domain

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/ancora/internal/adapter"
	m "github.com/mouse-blink/ancora/internal/model"
)

// Snapshot is an immutable view of one test case's anchors and links,
// handed to diagnostics and export consumers instead of live references.
type Snapshot struct {
	SessionID  string      `json:"sessionId"`
	TestCaseID string      `json:"testCaseId"`
	Anchors    []m.Anchor  `json:"anchors"`
	Links      []m.Binomio `json:"links"`
}

// Workflow is the engine facade exposed to the rest of the application.
// The in-memory state is the source of truth; Save mirrors it to the
// session store as a separate explicit step.
type Workflow interface {
	CreateAnchor(box m.BoxRef, loc m.Location, start, end int, text string) (m.Anchor, error)
	DeleteAnchor(id string) (cascaded []string, err error)
	ListAnchors(box m.BoxRef, loc m.Location) []m.Anchor
	AllAnchors() []m.Anchor

	SetBuffer(box m.BoxRef, loc m.Location, text string)
	Buffer(box m.BoxRef, loc m.Location) string
	ApplyEdit(box m.BoxRef, loc m.Location, edit m.Edit) (string, []m.Anchor, error)

	CreateLink(fromID, toID string, fromPoint, toPoint m.Point) (m.Binomio, error)
	SetLinkStatus(id string, status m.LinkStatus, reason string) (m.Binomio, error)
	DeleteLink(id string) error
	ListLinks() []m.Binomio

	Suggest(ctx context.Context) (m.SuggestionRun, error)
	Confirm(ctx context.Context, runID string, acceptedIDs []string) (ConfirmResult, error)

	ContextDocument() (m.KnowledgeDocument, error)
	SetContextDocument(text string) error
	BusinessSpec() (string, error)
	SetBusinessSpec(text string) error

	Snapshot() Snapshot
	Save(ctx context.Context) error
}

type workflow struct {
	sessionID  string
	testCaseID string
	anchors    *AnchorStore
	links      *LinkGraph
	engine     *SuggestionEngine
	confirmer  *Confirmer
	store      adapter.SessionStore
	bus        *Bus
	buffers    map[partitionKey]string

	// Anchors of other test cases sharing the session files; carried
	// through Save untouched.
	foreignAnchors []m.Anchor
	foreignLinks   []m.Binomio
}

// NewWorkflow loads the session state for one test case and wires the
// engine components around it.
func NewWorkflow(sessionID, testCaseID string, store adapter.SessionStore, llm adapter.LLMClient, bus *Bus) (Workflow, error) {
	allAnchors, err := store.LoadAnchors()
	if err != nil {
		return nil, err
	}

	allLinks, err := store.LoadBinomi()
	if err != nil {
		return nil, err
	}

	anchors := NewAnchorStore(sessionID, testCaseID, allAnchors)
	links := NewLinkGraph(testCaseID, allLinks, anchors.Get)

	w := &workflow{
		sessionID:  sessionID,
		testCaseID: testCaseID,
		anchors:    anchors,
		links:      links,
		engine:     NewSuggestionEngine(anchors, links, store, llm),
		confirmer:  NewConfirmer(links, store, llm),
		store:      store,
		bus:        bus,
		buffers:    make(map[partitionKey]string),
	}

	for _, anchor := range allAnchors {
		if anchor.TestCaseID != testCaseID {
			w.foreignAnchors = append(w.foreignAnchors, anchor)
		}
	}

	for _, link := range allLinks {
		if link.TestCaseID != testCaseID {
			w.foreignLinks = append(w.foreignLinks, link)
		}
	}

	return w, nil
}

func (w *workflow) CreateAnchor(box m.BoxRef, loc m.Location, start, end int, text string) (m.Anchor, error) {
	anchor, err := w.anchors.Create(box, loc, start, end, text)
	if err != nil {
		return m.Anchor{}, err
	}

	w.publish(EventAnchorCreated, anchor.ID)

	return anchor, nil
}

// DeleteAnchor removes the anchor and cascades over its incident links.
// The cascade completes before success is reported.
func (w *workflow) DeleteAnchor(id string) ([]string, error) {
	if _, err := w.anchors.Delete(id); err != nil {
		return nil, err
	}

	cascaded := w.links.DeleteForAnchor(id)

	for _, linkID := range cascaded {
		w.publish(EventLinkDeleted, linkID)
	}

	w.publish(EventAnchorDeleted, id)

	return cascaded, nil
}

func (w *workflow) ListAnchors(box m.BoxRef, loc m.Location) []m.Anchor {
	return w.anchors.List(box, loc)
}

func (w *workflow) AllAnchors() []m.Anchor {
	return w.anchors.All()
}

// SetBuffer syncs one buffer from the editing surface.
func (w *workflow) SetBuffer(box m.BoxRef, loc m.Location, text string) {
	w.buffers[partitionKey{box: box, loc: loc}] = text
}

func (w *workflow) Buffer(box m.BoxRef, loc m.Location) string {
	return w.buffers[partitionKey{box: box, loc: loc}]
}

// ApplyEdit reconciles anchor indices with the edit, re-derives the content
// separation and commits buffer and anchors together. The updated buffer
// and anchor list go back to the editing surface as one unit.
func (w *workflow) ApplyEdit(box m.BoxRef, loc m.Location, edit m.Edit) (string, []m.Anchor, error) {
	key := partitionKey{box: box, loc: loc}

	buffer, anchors, err := ReconcileEdit(w.buffers[key], w.anchors.List(box, loc), edit)
	if err != nil {
		return "", nil, err
	}

	buffer, anchors = EnforceSeparation(buffer, anchors, edit.EditingAnchorID)

	w.buffers[key] = buffer
	w.anchors.Replace(box, loc, anchors)
	w.publish(EventBufferChanged, box.String())

	return buffer, anchors, nil
}

func (w *workflow) CreateLink(fromID, toID string, fromPoint, toPoint m.Point) (m.Binomio, error) {
	link, err := w.links.Create(fromID, toID, fromPoint, toPoint)
	if err != nil {
		return m.Binomio{}, err
	}

	w.publish(EventLinkCreated, link.ID)

	return link, nil
}

func (w *workflow) SetLinkStatus(id string, status m.LinkStatus, reason string) (m.Binomio, error) {
	link, err := w.links.SetStatus(id, status, reason)
	if err != nil {
		return m.Binomio{}, err
	}

	w.publish(EventLinkStatusSet, link.ID)

	return link, nil
}

func (w *workflow) DeleteLink(id string) error {
	if err := w.links.Delete(id); err != nil {
		return err
	}

	w.publish(EventLinkDeleted, id)

	return nil
}

func (w *workflow) ListLinks() []m.Binomio {
	return w.links.All()
}

func (w *workflow) Suggest(ctx context.Context) (m.SuggestionRun, error) {
	run, err := w.engine.Run(ctx)
	if err != nil {
		return m.SuggestionRun{}, err
	}

	if run.RunID != "" {
		w.publish(EventRunReplaced, run.RunID)
	}

	return run, nil
}

func (w *workflow) Confirm(ctx context.Context, runID string, acceptedIDs []string) (ConfirmResult, error) {
	result, err := w.confirmer.Confirm(ctx, runID, acceptedIDs)
	if err != nil {
		return ConfirmResult{}, err
	}

	for _, link := range result.Created {
		w.publish(EventLinkCreated, link.ID)
	}

	return result, nil
}

func (w *workflow) ContextDocument() (m.KnowledgeDocument, error) {
	return w.store.LoadContextDocument()
}

func (w *workflow) SetContextDocument(text string) error {
	doc, err := w.store.LoadContextDocument()
	if err != nil {
		return err
	}

	if err := w.store.SaveContextDocument(doc.WithText(text, time.Now())); err != nil {
		return err
	}

	w.publish(EventDocumentUpdated, "context-document")

	return nil
}

func (w *workflow) BusinessSpec() (string, error) {
	return w.store.LoadBusinessSpec()
}

func (w *workflow) SetBusinessSpec(text string) error {
	if err := w.store.SaveBusinessSpec(text); err != nil {
		return err
	}

	w.publish(EventDocumentUpdated, "business-spec")

	return nil
}

// Snapshot copies the current state; diagnostics never see live internals.
func (w *workflow) Snapshot() Snapshot {
	return Snapshot{
		SessionID:  w.sessionID,
		TestCaseID: w.testCaseID,
		Anchors:    w.anchors.All(),
		Links:      w.links.All(),
	}
}

// Save mirrors the in-memory state into the session files, merging back the
// entities of other test cases. The two collections write concurrently.
func (w *workflow) Save(ctx context.Context) error {
	anchors := append(append([]m.Anchor{}, w.foreignAnchors...), w.anchors.All()...)
	links := append(append([]m.Binomio{}, w.foreignLinks...), w.links.All()...)

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		return w.store.SaveAnchors(anchors)
	})

	g.Go(func() error {
		return w.store.SaveBinomi(links)
	})

	return g.Wait()
}

func (w *workflow) publish(kind EventKind, id string) {
	if w.bus == nil {
		return
	}

	w.bus.Publish(Event{Kind: kind, TestCaseID: w.testCaseID, ID: id})
}
