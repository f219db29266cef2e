package domain

import (
	"fmt"
	"time"

	m "github.com/mouse-blink/ancora/internal/model"
)

// AnchorResolver looks up an anchor by id; the link graph uses it to
// validate endpoints without owning the anchor partitions.
type AnchorResolver func(id string) (m.Anchor, bool)

// LinkGraph maintains the directed Binomi of one test case: edges from a
// header anchor to a content anchor, carrying attachment points and a
// status audit trail.
type LinkGraph struct {
	testCaseID string
	links      []m.Binomio
	resolve    AnchorResolver
	seq        int
	now        func() time.Time
}

// NewLinkGraph builds a graph seeded with previously persisted links of the
// test case.
func NewLinkGraph(testCaseID string, existing []m.Binomio, resolve AnchorResolver) *LinkGraph {
	g := &LinkGraph{
		testCaseID: testCaseID,
		resolve:    resolve,
		now:        time.Now,
	}

	for _, link := range existing {
		if link.TestCaseID != testCaseID {
			continue
		}

		g.links = append(g.links, link)
		g.seq++
	}

	return g
}

// Create links a header anchor to a content anchor. Validation happens
// before any write: distinct endpoints, both resolvable inside this test
// case, correct direction.
func (g *LinkGraph) Create(fromID, toID string, fromPoint, toPoint m.Point) (m.Binomio, error) {
	link, err := g.build(fromID, toID, fromPoint, toPoint)
	if err != nil {
		return m.Binomio{}, err
	}

	g.links = append(g.links, link)

	return link, nil
}

// CreateFromPattern creates a link whose To endpoint and attachment point
// are inherited from an existing pattern Binomio, stamped with the
// suggestion provenance.
func (g *LinkGraph) CreateFromPattern(fromID string, pattern m.Binomio, meta m.LLMMeta) (m.Binomio, error) {
	link, err := g.build(fromID, pattern.ToID, m.Point{X: 1, Y: 0.5}, pattern.ToPoint)
	if err != nil {
		return m.Binomio{}, err
	}

	link.LLMMeta = &meta
	g.links = append(g.links, link)

	return link, nil
}

func (g *LinkGraph) build(fromID, toID string, fromPoint, toPoint m.Point) (m.Binomio, error) {
	if fromID == toID {
		return m.Binomio{}, &m.ValidationError{Field: "toObjectId", Reason: "endpoints must differ"}
	}

	from, ok := g.resolve(fromID)
	if !ok || from.TestCaseID != g.testCaseID {
		return m.Binomio{}, &m.ValidationError{Field: "fromObjectId", Reason: "does not resolve in this test case"}
	}

	to, ok := g.resolve(toID)
	if !ok || to.TestCaseID != g.testCaseID {
		return m.Binomio{}, &m.ValidationError{Field: "toObjectId", Reason: "does not resolve in this test case"}
	}

	if from.Location != m.LocationHeader || to.Location != m.LocationContent {
		return m.Binomio{}, &m.ValidationError{Field: "location", Reason: "links go from header to content"}
	}

	now := g.now()
	g.seq++

	return m.Binomio{
		// Sequence plus timestamp suffix keeps ids distinguishable under
		// rapid successive creation.
		ID:         fmt.Sprintf("bin-%s-%03d-%d", g.testCaseID, g.seq, now.UnixMilli()),
		TestCaseID: g.testCaseID,
		FromID:     fromID,
		ToID:       toID,
		FromPoint:  fromPoint,
		ToPoint:    toPoint,
		Status:     m.LinkActive,
		CreatedAt:  now,
	}, nil
}

// SetStatus toggles a link between active and disabled. A non-empty reason
// is required; the matching audit pair is stamped and the opposite pair
// cleared.
func (g *LinkGraph) SetStatus(id string, status m.LinkStatus, reason string) (m.Binomio, error) {
	if reason == "" {
		return m.Binomio{}, &m.ValidationError{Field: "reason", Reason: "must not be empty"}
	}

	if status != m.LinkActive && status != m.LinkDisabled {
		return m.Binomio{}, &m.ValidationError{Field: "status", Reason: "unknown status"}
	}

	for i := range g.links {
		if g.links[i].ID != id {
			continue
		}

		now := g.now()
		g.links[i].Status = status

		if status == m.LinkDisabled {
			g.links[i].DisabledAt = &now
			g.links[i].DisabledReason = reason
			g.links[i].EnabledAt = nil
			g.links[i].EnabledReason = ""
		} else {
			g.links[i].EnabledAt = &now
			g.links[i].EnabledReason = reason
			g.links[i].DisabledAt = nil
			g.links[i].DisabledReason = ""
		}

		return g.links[i], nil
	}

	return m.Binomio{}, &m.NotFoundError{Kind: "binomio", ID: id}
}

// Delete removes one link.
func (g *LinkGraph) Delete(id string) error {
	for i := range g.links {
		if g.links[i].ID == id {
			g.links = append(g.links[:i:i], g.links[i+1:]...)

			return nil
		}
	}

	return &m.NotFoundError{Kind: "binomio", ID: id}
}

// DeleteForAnchor removes every link incident to the anchor and returns the
// removed ids; used for cascade cleanup on anchor deletion.
func (g *LinkGraph) DeleteForAnchor(anchorID string) []string {
	var removed []string

	kept := g.links[:0]

	for _, link := range g.links {
		if link.Incident(anchorID) {
			removed = append(removed, link.ID)

			continue
		}

		kept = append(kept, link)
	}

	g.links = kept

	return removed
}

// Get looks a link up by id.
func (g *LinkGraph) Get(id string) (m.Binomio, bool) {
	for _, link := range g.links {
		if link.ID == id {
			return link, true
		}
	}

	return m.Binomio{}, false
}

// All returns a copy of every link in creation order.
func (g *LinkGraph) All() []m.Binomio {
	out := make([]m.Binomio, len(g.links))
	copy(out, g.links)

	return out
}

// Active returns the links usable as suggestion patterns.
func (g *LinkGraph) Active() []m.Binomio {
	var out []m.Binomio

	for _, link := range g.links {
		if link.Active() {
			out = append(out, link)
		}
	}

	return out
}

// HasActiveFrom reports whether the anchor has an active outgoing link.
func (g *LinkGraph) HasActiveFrom(anchorID string) bool {
	for _, link := range g.links {
		if link.FromID == anchorID && link.Active() {
			return true
		}
	}

	return false
}
