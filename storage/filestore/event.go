package filestore

import (
	"sync"

	"github.com/unidubna/portal/core/event"
)

type eventDocument struct {
	Events []event.Item `json:"events"`
}

type EventStore struct {
	mu   sync.Mutex
	path string
}

var _ event.Repository = (*EventStore)(nil)

func (s *EventStore) QueryAllItems() ([]event.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *EventStore) AppendItem(it event.Item) (event.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return event.Item{}, err
	}
	it.ID = nextID(eventIDs(items))
	items = append(items, it)
	if err = writeJSONFile(s.path, eventDocument{Events: items}); err != nil {
		return event.Item{}, err
	}
	return it, nil
}

func (s *EventStore) DeleteItemByID(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return err
	}
	kept := make([]event.Item, 0, len(items))
	for _, it := range items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(items) {
		return event.ErrNotFound
	}
	return writeJSONFile(s.path, eventDocument{Events: kept})
}

func (s *EventStore) load() ([]event.Item, error) {
	var doc eventDocument
	if _, err := readJSONFile(s.path, &doc); err != nil {
		return nil, err
	}
	if doc.Events == nil {
		doc.Events = []event.Item{}
	}
	return doc.Events, nil
}

func eventIDs(items []event.Item) []int {
	ids := make([]int, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}
