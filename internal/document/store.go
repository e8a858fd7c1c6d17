// Package document holds the editor's working copies of menu
// configurations. Documents live in memory only; the YAML text a user
// loads or exports is the durable form.
package document

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/deluxetools/menued/internal/domain"
)

// Document is one menu configuration being edited.
type Document struct {
	ID          uuid.UUID
	Name        string
	GameVersion string
	Settings    *domain.MenuSettings
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Store manages documents for the lifetime of the process.
// Updates are last-write-wins; there is no revision tracking.
type Store interface {
	Create(ctx context.Context, name, gameVersion string, settings *domain.MenuSettings) (*Document, error)
	Get(ctx context.Context, id uuid.UUID) (*Document, error)
	List(ctx context.Context) []*Document
	Update(ctx context.Context, id uuid.UUID, name, gameVersion string, settings *domain.MenuSettings) (*Document, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type memoryStore struct {
	mu   sync.RWMutex
	docs map[uuid.UUID]*Document
	now  func() time.Time
}

// NewStore creates an empty in-memory store.
func NewStore() Store {
	return &memoryStore{
		docs: make(map[uuid.UUID]*Document),
		now:  time.Now,
	}
}

func (s *memoryStore) Create(ctx context.Context, name, gameVersion string, settings *domain.MenuSettings) (*Document, error) {
	if settings == nil {
		return nil, fmt.Errorf("%w: settings must not be nil", domain.ErrInvalidInput)
	}
	if name == "" {
		name = "untitled"
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	doc := &Document{
		ID:          uuid.New(),
		Name:        name,
		GameVersion: gameVersion,
		Settings:    settings,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.docs[doc.ID] = doc
	return snapshot(doc), nil
}

func (s *memoryStore) Get(ctx context.Context, id uuid.UUID) (*Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrDocumentNotFound, id)
	}
	return snapshot(doc), nil
}

// List returns all documents ordered by creation time, oldest first.
func (s *memoryStore) List(ctx context.Context) []*Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]*Document, 0, len(s.docs))
	for _, doc := range s.docs {
		docs = append(docs, snapshot(doc))
	}
	sort.Slice(docs, func(i, j int) bool {
		if docs[i].CreatedAt.Equal(docs[j].CreatedAt) {
			return docs[i].ID.String() < docs[j].ID.String()
		}
		return docs[i].CreatedAt.Before(docs[j].CreatedAt)
	})
	return docs
}

func (s *memoryStore) Update(ctx context.Context, id uuid.UUID, name, gameVersion string, settings *domain.MenuSettings) (*Document, error) {
	if settings == nil {
		return nil, fmt.Errorf("%w: settings must not be nil", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrDocumentNotFound, id)
	}

	if name != "" {
		doc.Name = name
	}
	if gameVersion != "" {
		doc.GameVersion = gameVersion
	}
	doc.Settings = settings
	doc.UpdatedAt = s.now()
	return snapshot(doc), nil
}

func (s *memoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[id]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrDocumentNotFound, id)
	}
	delete(s.docs, id)
	return nil
}

// snapshot copies the document header so callers cannot mutate stored
// state through the returned pointer. Settings are shared; handlers
// treat them as read-only and replace them wholesale on update.
func snapshot(doc *Document) *Document {
	copied := *doc
	return &copied
}
