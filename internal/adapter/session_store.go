package adapter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	m "github.com/mouse-blink/ancora/internal/model"
)

// Session entity file names, one file per entity collection.
const (
	ecObjectsFile    = "ec-objects.json"
	binomiFile       = "binomi-fondamentali.json"
	suggestionsFile  = "llm-suggestions.json"
	contextDocFile   = "context-document.json"
	businessSpecFile = "business-spec.txt"
)

const storeVersion = 1

// SessionStore persists the per-session entity collections. Reads never
// fail on a missing or corrupt file: they return a typed default instead,
// shared by all read paths. Writes are best-effort read-modify-write.
type SessionStore interface {
	LoadAnchors() ([]m.Anchor, error)
	SaveAnchors(anchors []m.Anchor) error
	LoadBinomi() ([]m.Binomio, error)
	SaveBinomi(binomi []m.Binomio) error
	LoadSuggestionRun() (m.SuggestionRun, error)
	SaveSuggestionRun(run m.SuggestionRun) error
	LoadContextDocument() (m.KnowledgeDocument, error)
	SaveContextDocument(doc m.KnowledgeDocument) error
	LoadBusinessSpec() (string, error)
	SaveBusinessSpec(text string) error
}

// anchorsEnvelope is the on-disk shape of ec-objects.json.
type anchorsEnvelope struct {
	Version     int        `json:"version"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastUpdated time.Time  `json:"lastUpdated"`
	Objects     []m.Anchor `json:"objects"`
}

// binomiEnvelope is the on-disk shape of binomi-fondamentali.json.
type binomiEnvelope struct {
	Version     int         `json:"version"`
	CreatedAt   time.Time   `json:"createdAt"`
	LastUpdated time.Time   `json:"lastUpdated"`
	Binomi      []m.Binomio `json:"binomi"`
}

type fileSessionStore struct {
	dir string
	now func() time.Time
}

// NewSessionStore creates a store rooted at the session directory. The
// directory is created on first write.
func NewSessionStore(dir string) SessionStore {
	return &fileSessionStore{
		dir: dir,
		now: time.Now,
	}
}

func (s *fileSessionStore) LoadAnchors() ([]m.Anchor, error) {
	envelope := readOrDefault(s.path(ecObjectsFile), anchorsEnvelope{Version: storeVersion})

	return envelope.Objects, nil
}

func (s *fileSessionStore) SaveAnchors(anchors []m.Anchor) error {
	previous := readOrDefault(s.path(ecObjectsFile), anchorsEnvelope{Version: storeVersion})

	return s.writeJSON(ecObjectsFile, anchorsEnvelope{
		Version:     storeVersion,
		CreatedAt:   s.createdAt(previous.CreatedAt),
		LastUpdated: s.now(),
		Objects:     anchors,
	})
}

func (s *fileSessionStore) LoadBinomi() ([]m.Binomio, error) {
	envelope := readOrDefault(s.path(binomiFile), binomiEnvelope{Version: storeVersion})

	return envelope.Binomi, nil
}

func (s *fileSessionStore) SaveBinomi(binomi []m.Binomio) error {
	previous := readOrDefault(s.path(binomiFile), binomiEnvelope{Version: storeVersion})

	return s.writeJSON(binomiFile, binomiEnvelope{
		Version:     storeVersion,
		CreatedAt:   s.createdAt(previous.CreatedAt),
		LastUpdated: s.now(),
		Binomi:      binomi,
	})
}

func (s *fileSessionStore) LoadSuggestionRun() (m.SuggestionRun, error) {
	return readOrDefault(s.path(suggestionsFile), m.SuggestionRun{}), nil
}

func (s *fileSessionStore) SaveSuggestionRun(run m.SuggestionRun) error {
	return s.writeJSON(suggestionsFile, run)
}

func (s *fileSessionStore) LoadContextDocument() (m.KnowledgeDocument, error) {
	return readOrDefault(s.path(contextDocFile), m.KnowledgeDocument{Version: storeVersion}), nil
}

func (s *fileSessionStore) SaveContextDocument(doc m.KnowledgeDocument) error {
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = s.now()
	}

	return s.writeJSON(contextDocFile, doc)
}

func (s *fileSessionStore) LoadBusinessSpec() (string, error) {
	data, err := os.ReadFile(s.path(businessSpecFile))
	if err != nil {
		return "", nil //nolint:nilerr // Missing spec reads as empty, like other defaults
	}

	return string(data), nil
}

func (s *fileSessionStore) SaveBusinessSpec(text string) error {
	if err := s.ensureDir(); err != nil {
		return err
	}

	if err := os.WriteFile(s.path(businessSpecFile), []byte(text), 0o600); err != nil {
		return fmt.Errorf("write %s: %w", businessSpecFile, err)
	}

	return nil
}

func (s *fileSessionStore) path(name string) string {
	return filepath.Join(s.dir, name)
}

func (s *fileSessionStore) createdAt(previous time.Time) time.Time {
	if previous.IsZero() {
		return s.now()
	}

	return previous
}

func (s *fileSessionStore) ensureDir() error {
	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	return nil
}

func (s *fileSessionStore) writeJSON(name string, value any) error {
	if err := s.ensureDir(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}

	if err := os.WriteFile(s.path(name), data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}

	return nil
}

// readOrDefault is the single schema-validated read path: a missing or
// unparsable file yields the typed default.
func readOrDefault[T any](path string, fallback T) T {
	data, err := os.ReadFile(path)
	if err != nil {
		return fallback
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return fallback
	}

	return value
}
