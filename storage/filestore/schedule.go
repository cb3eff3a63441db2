package filestore

import (
	"sync"

	"github.com/unidubna/portal/core/schedule"
)

type scheduleDocument struct {
	Schedule []schedule.Entry `json:"schedule"`
}

// ScheduleStore reads the static term schedule. The portal never writes it;
// the file is maintained by hand.
type ScheduleStore struct {
	mu   sync.Mutex
	path string
}

var _ schedule.Repository = (*ScheduleStore)(nil)

func (s *ScheduleStore) QueryAllEntries() ([]schedule.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var doc scheduleDocument
	if _, err := readJSONFile(s.path, &doc); err != nil {
		return nil, err
	}
	if doc.Schedule == nil {
		doc.Schedule = []schedule.Entry{}
	}
	return doc.Schedule, nil
}
