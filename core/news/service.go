package news

import (
	"sort"
	"time"

	"github.com/pkg/errors"
)

// ErrNotFound reports a delete for an id that is not in the collection,
// distinct from an I/O failure while rewriting the file.
var ErrNotFound = errors.New("news item not found")

type (
	// Repository keeps the read-modify-rewrite contract: Append assigns
	// max(existing ids)+1 (1 when empty) and DeleteByID returns ErrNotFound
	// when nothing was removed.
	Repository interface {
		QueryAllItems() ([]Item, error)
		AppendItem(it Item) (Item, error)
		DeleteItemByID(id int) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Query lists news matching the filter, newest first; items with missing or
// unparsable dates sort last.
func (svc *Service) Query(filter QueryFilter) ([]Item, error) {
	all, err := svc.repo.QueryAllItems()
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(all))
	for _, it := range all {
		if filter.Category != "" && it.Category != filter.Category {
			continue
		}
		if filter.ImportantOnly && !it.IsImportant {
			continue
		}
		items = append(items, it)
	}

	sort.SliceStable(items, func(i, j int) bool {
		di, iok := items[i].PublishedAt()
		dj, jok := items[j].PublishedAt()
		if iok != jok {
			return iok // parsable dates before unparsable ones
		}
		return di.After(dj)
	})
	return items, nil
}

// Add publishes a news item stamped with the current time.
func (svc *Service) Add(ni NewItem) (Item, error) {
	return svc.repo.AppendItem(Item{
		Title:       ni.Title,
		Content:     ni.Content,
		Date:        time.Now().UTC().Format(time.RFC3339),
		Category:    ni.Category,
		IsImportant: ni.IsImportant,
		ImageURL:    ni.ImageURL,
	})
}

func (svc *Service) Delete(id int) error {
	return svc.repo.DeleteItemByID(id)
}
