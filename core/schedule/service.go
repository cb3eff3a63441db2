package schedule

import (
	"sort"
	"time"
)

type (
	// Repository lists the whole schedule collection; there is no mutation path.
	Repository interface {
		QueryAllEntries() ([]Entry, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) QueryAll() ([]Entry, error) {
	return svc.repo.QueryAllEntries()
}

// ForDate returns the lessons applying on the given calendar date, ascending
// by pair number. The date's weekday and week parity are recomputed here;
// entries tagged "always" match either parity.
func (svc *Service) ForDate(date time.Time) ([]Entry, error) {
	all, err := svc.repo.QueryAllEntries()
	if err != nil {
		return nil, err
	}

	dayName, parity := DayInfo(date)
	lessons := make([]Entry, 0, len(all))
	for _, e := range all {
		if e.matchesDay(dayName, parity) {
			lessons = append(lessons, e)
		}
	}
	sort.SliceStable(lessons, func(i, j int) bool { return lessons[i].PairNumber < lessons[j].PairNumber })
	return lessons, nil
}
