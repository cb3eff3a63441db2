package filestore

import (
	"sync"

	"github.com/unidubna/portal/core/news"
)

// newsDocument mirrors the on-disk shape: records live under a "news" key.
type newsDocument struct {
	News []news.Item `json:"news"`
}

type NewsStore struct {
	mu   sync.Mutex
	path string
}

var _ news.Repository = (*NewsStore)(nil)

func (s *NewsStore) QueryAllItems() ([]news.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// AppendItem assigns the next id (max existing + 1, starting at 1) and
// rewrites the whole document.
func (s *NewsStore) AppendItem(it news.Item) (news.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return news.Item{}, err
	}
	it.ID = nextID(newsIDs(items))
	items = append(items, it)
	if err = writeJSONFile(s.path, newsDocument{News: items}); err != nil {
		return news.Item{}, err
	}
	return it, nil
}

func (s *NewsStore) DeleteItemByID(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return err
	}
	kept := make([]news.Item, 0, len(items))
	for _, it := range items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(items) {
		return news.ErrNotFound
	}
	return writeJSONFile(s.path, newsDocument{News: kept})
}

func (s *NewsStore) load() ([]news.Item, error) {
	var doc newsDocument
	if _, err := readJSONFile(s.path, &doc); err != nil {
		return nil, err
	}
	if doc.News == nil {
		doc.News = []news.Item{}
	}
	return doc.News, nil
}

func newsIDs(items []news.Item) []int {
	ids := make([]int, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}

// nextID is max(ids) + 1, or 1 for an empty collection.
func nextID(ids []int) int {
	max := 0
	for _, id := range ids {
		if id > max {
			max = id
		}
	}
	return max + 1
}
