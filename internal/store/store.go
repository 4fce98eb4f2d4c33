package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/clubware/roster/internal/models"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

// ErrTeamNotFound is returned when an id does not match any stored team
var ErrTeamNotFound = errors.New("team not found")

// ErrNoDocument is returned by a Backend whose medium holds no document yet
var ErrNoDocument = errors.New("no document")

// Document is the single persisted unit: every team plus a write timestamp.
// The whole document is re-serialized on every save and delete.
type Document struct {
	Teams       []models.Team `json:"teams"`
	LastUpdated time.Time     `json:"lastUpdated"`
}

// Store defines what the synchronization layer needs from persistence
type Store interface {
	GetAll(ctx context.Context) ([]models.Team, error)
	GetByID(ctx context.Context, id string) (*models.Team, error)
	Save(ctx context.Context, team models.Team) error
	Delete(ctx context.Context, id string) error
}

// Backend is the raw medium a DocumentStore serializes into. Load returns
// ErrNoDocument when the medium exists but holds nothing yet.
type Backend interface {
	Load(ctx context.Context) ([]byte, error)
	Persist(ctx context.Context, data []byte) error
}

// DocumentStore implements Store over a swappable byte Backend. Every
// operation is a full read-modify-write of the document; there is no locking,
// so when two writers interleave the later write wins.
type DocumentStore struct {
	backend Backend
	clock   clockwork.Clock
	log     zerolog.Logger
}

// NewDocumentStore creates a store over the given backend
func NewDocumentStore(backend Backend, clock clockwork.Clock, log zerolog.Logger) *DocumentStore {
	return &DocumentStore{
		backend: backend,
		clock:   clock,
		log:     log,
	}
}

// GetAll returns every stored team. A missing or unreadable document is
// recovered as an empty collection, never an error.
func (s *DocumentStore) GetAll(ctx context.Context) ([]models.Team, error) {
	doc := s.load(ctx)
	return doc.Teams, nil
}

// GetByID returns the team with the given id
func (s *DocumentStore) GetByID(ctx context.Context, id string) (*models.Team, error) {
	doc := s.load(ctx)
	for i := range doc.Teams {
		if doc.Teams[i].ID == id {
			team := doc.Teams[i]
			return &team, nil
		}
	}
	return nil, fmt.Errorf("get team %s: %w", id, ErrTeamNotFound)
}

// Save upserts a team: replaces the entry with a matching id, appends
// otherwise. LastUpdated is refreshed on every save.
func (s *DocumentStore) Save(ctx context.Context, team models.Team) error {
	doc := s.load(ctx)

	replaced := false
	for i := range doc.Teams {
		if doc.Teams[i].ID == team.ID {
			doc.Teams[i] = team
			replaced = true
			break
		}
	}
	if !replaced {
		doc.Teams = append(doc.Teams, team)
	}

	return s.persist(ctx, doc)
}

// Delete removes the team with the given id
func (s *DocumentStore) Delete(ctx context.Context, id string) error {
	doc := s.load(ctx)

	idx := -1
	for i := range doc.Teams {
		if doc.Teams[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("delete team %s: %w", id, ErrTeamNotFound)
	}

	doc.Teams = append(doc.Teams[:idx], doc.Teams[idx+1:]...)
	return s.persist(ctx, doc)
}

// load reads and decodes the document, degrading to an empty collection when
// the medium is unavailable or the content does not parse
func (s *DocumentStore) load(ctx context.Context) Document {
	data, err := s.backend.Load(ctx)
	if err != nil {
		if !errors.Is(err, ErrNoDocument) {
			s.log.Warn().Err(err).Msg("storage unavailable, starting from empty collection")
		}
		return Document{}
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		s.log.Warn().Err(err).Msg("stored document is unparsable, starting from empty collection")
		return Document{}
	}
	return doc
}

func (s *DocumentStore) persist(ctx context.Context, doc Document) error {
	doc.LastUpdated = s.clock.Now()
	if doc.Teams == nil {
		doc.Teams = []models.Team{}
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	if err := s.backend.Persist(ctx, data); err != nil {
		return fmt.Errorf("failed to persist document: %w", err)
	}
	return nil
}
