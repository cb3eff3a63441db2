package news

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	items   []Item
	saveErr error
}

var _ Repository = (*fakeRepo)(nil)

func (r *fakeRepo) QueryAllItems() ([]Item, error) {
	return r.items, nil
}

func (r *fakeRepo) AppendItem(it Item) (Item, error) {
	if r.saveErr != nil {
		return Item{}, r.saveErr
	}
	max := 0
	for _, existing := range r.items {
		if existing.ID > max {
			max = existing.ID
		}
	}
	it.ID = max + 1
	r.items = append(r.items, it)
	return it, nil
}

func (r *fakeRepo) DeleteItemByID(id int) error {
	for i, it := range r.items {
		if it.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func TestService_Query_sortsNewestFirst(t *testing.T) {
	repo := &fakeRepo{items: []Item{
		{ID: 1, Title: "old", Date: "2026-01-10"},
		{ID: 2, Title: "dateless"},
		{ID: 3, Title: "new", Date: "2026-03-01"},
		{ID: 4, Title: "garbled", Date: "soon"},
		{ID: 5, Title: "mid", Date: "2026-02-05T10:00:00"},
	}}
	svc := NewService(repo)

	items, err := svc.Query(QueryFilter{})
	assert.NoError(t, err)
	titles := make([]string, len(items))
	for i, it := range items {
		titles[i] = it.Title
	}
	// parsable dates descending, then the unparsable ones
	assert.Equal(t, []string{"new", "mid", "old", "dateless", "garbled"}, titles)
}

func TestService_Query_filters(t *testing.T) {
	repo := &fakeRepo{items: []Item{
		{ID: 1, Category: "Стипендия", IsImportant: true, Date: "2026-01-01"},
		{ID: 2, Category: "Мероприятие", Date: "2026-01-02"},
		{ID: 3, Category: "Стипендия", Date: "2026-01-03"},
	}}
	svc := NewService(repo)

	items, err := svc.Query(QueryFilter{Category: "Стипендия"})
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	for _, it := range items {
		assert.Equal(t, "Стипендия", it.Category)
	}

	items, err = svc.Query(QueryFilter{ImportantOnly: true})
	assert.NoError(t, err)
	if assert.Len(t, items, 1) {
		assert.Equal(t, 1, items[0].ID)
	}

	items, err = svc.Query(QueryFilter{Category: "Важное объявление"})
	assert.NoError(t, err)
	assert.Empty(t, items)
}

func TestService_Add(t *testing.T) {
	repo := &fakeRepo{items: []Item{{ID: 7, Title: "existing"}}}
	svc := NewService(repo)

	it, err := svc.Add(NewItem{Title: "t", Content: "c", Category: "Мероприятие"})
	assert.NoError(t, err)
	assert.Equal(t, 8, it.ID)

	date, ok := it.PublishedAt()
	assert.True(t, ok)
	assert.WithinDuration(t, time.Now().UTC(), date, time.Minute)
}

func TestService_Delete(t *testing.T) {
	repo := &fakeRepo{items: []Item{{ID: 1}, {ID: 2}}}
	svc := NewService(repo)

	assert.NoError(t, svc.Delete(2))
	assert.Len(t, repo.items, 1)

	assert.Equal(t, ErrNotFound, svc.Delete(2))
	assert.Len(t, repo.items, 1)
}
