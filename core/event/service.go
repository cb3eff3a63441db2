package event

import (
	"sort"

	"github.com/pkg/errors"
)

// ErrNotFound reports a delete for an id that is not in the collection.
var ErrNotFound = errors.New("event not found")

type (
	// Repository keeps the read-modify-rewrite contract of the events file.
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

// Query lists events matching the filter, soonest first. Records without a
// parsable date are dropped; the range is inclusive on both ends.
func (svc *Service) Query(filter QueryFilter) ([]Item, error) {
	all, err := svc.repo.QueryAllItems()
	if err != nil {
		return nil, err
	}

	withRange := !filter.From.IsZero() && !filter.To.IsZero()
	items := make([]Item, 0, len(all))
	for _, it := range all {
		date, ok := it.StartsAt()
		if !ok {
			continue
		}
		if withRange && (date.Before(filter.From) || date.After(filter.To)) {
			continue
		}
		if filter.Type != "" && filter.Type != TypeAll && it.Type != filter.Type {
			continue
		}
		items = append(items, it)
	}

	sort.SliceStable(items, func(i, j int) bool {
		di, _ := items[i].StartsAt()
		dj, _ := items[j].StartsAt()
		return di.Before(dj)
	})
	return items, nil
}

// Types returns the distinct event types on record, sorted, for the filter
// dropdown options.
func (svc *Service) Types() ([]string, error) {
	all, err := svc.repo.QueryAllItems()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(all))
	types := make([]string, 0, len(all))
	for _, it := range all {
		if _, ok := it.StartsAt(); !ok {
			continue
		}
		if !seen[it.Type] {
			seen[it.Type] = true
			types = append(types, it.Type)
		}
	}
	sort.Strings(types)
	return types, nil
}

// Add announces an event. Registration fields start unset; they are edited
// directly in the events file when needed.
func (svc *Service) Add(ni NewItem) (Item, error) {
	return svc.repo.AppendItem(Item{
		Title:       ni.Title,
		Description: ni.Description,
		Date:        ni.Date,
		Time:        ni.Time,
		Location:    ni.Location,
		Type:        ni.Type,
	})
}

func (svc *Service) Delete(id int) error {
	return svc.repo.DeleteItemByID(id)
}
