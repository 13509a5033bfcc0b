package repository

import (
	"encoding/json"
	"fmt"
	"sync"

	model "scrap-auction/internal/models"
)

// DocumentStore defines whole-document persistence for the workflow engine.
// Load returns an empty default document when nothing has been saved yet;
// Save overwrites the stored blob last-write-wins.
type DocumentStore interface {
	Load() (*model.Document, error)
	Save(doc *model.Document) error
}

// MemoryStore is a concurrency-safe in-memory implementation of DocumentStore.
// Saved documents are deep-copied so callers cannot alias stored state.
type MemoryStore struct {
	mu  sync.RWMutex
	doc *model.Document
}

// NewMemoryStore creates a new in-memory store instance with no saved document.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns a copy of the last saved document, or an empty default.
func (s *MemoryStore) Load() (*model.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.doc == nil {
		return model.NewDocument(), nil
	}

	copied, err := cloneDocument(s.doc)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}
	return copied, nil
}

// Save overwrites the stored document with a copy of doc.
func (s *MemoryStore) Save(doc *model.Document) error {
	copied, err := cloneDocument(doc)
	if err != nil {
		return fmt.Errorf("save document: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = copied
	return nil
}

// cloneDocument deep-copies a document through its JSON form.
func cloneDocument(doc *model.Document) (*model.Document, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	copied := &model.Document{}
	if err := json.Unmarshal(raw, copied); err != nil {
		return nil, err
	}
	return copied, nil
}
