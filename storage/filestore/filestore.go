// Package filestore implements the repositories on flat files under a data
// directory: a CSV user table and one JSON document per content collection.
// Every mutation reads the whole file, edits in memory and rewrites it, so
// the files stay hand-editable between runs.
package filestore

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Store bundles the repositories sharing one data directory.
type Store struct {
	Users    *UserStore
	News     *NewsStore
	Events   *EventStore
	Schedule *ScheduleStore
}

// Open prepares the data directory and the repositories on it. Missing
// collection files are created lazily on first use.
func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating data dir %s", dataDir)
	}
	return &Store{
		Users:    &UserStore{path: filepath.Join(dataDir, "users.csv")},
		News:     &NewsStore{path: filepath.Join(dataDir, "news.json")},
		Events:   &EventStore{path: filepath.Join(dataDir, "events.json")},
		Schedule: &ScheduleStore{path: filepath.Join(dataDir, "schedule.json")},
	}, nil
}

// readJSONFile loads a JSON document. A missing or unparsable file yields
// ok == false and no error: collections need no seed files and a corrupt
// hand-edit degrades to an empty listing instead of taking the section down.
func readJSONFile(path string, v interface{}) (ok bool, err error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "reading %s", path)
	}
	if err = json.Unmarshal(data, v); err != nil {
		return false, nil
	}
	return true, nil
}

func writeJSONFile(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "encoding %s", path)
	}
	if err = os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}
