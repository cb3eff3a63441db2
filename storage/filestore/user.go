package filestore

import (
	"encoding/csv"
	"os"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/unidubna/portal/core/user"
)

var userHeader = []string{"email", "password", "base_role", "permissions"}

// UserStore keeps the user table in a CSV file. Permission tags share one
// column, joined with commas inside the field.
type UserStore struct {
	mu   sync.Mutex
	path string
}

var _ user.Repository = (*UserStore)(nil)

func (s *UserStore) GetUserByEmail(email string) (user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return user.User{}, err
	}
	for _, usr := range users {
		if strings.EqualFold(usr.Email, email) {
			return usr, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (s *UserStore) UserExists(email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return false, err
	}
	for _, usr := range users {
		if strings.EqualFold(usr.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (s *UserStore) CreateUser(usr user.User) (user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return user.User{}, err
	}
	users = append(users, usr)
	if err = s.save(users); err != nil {
		return user.User{}, err
	}
	return usr, nil
}

func (s *UserStore) QueryAllUsers() ([]user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *UserStore) UpdateUserPermissions(email string, perms []user.Capability) (user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return user.User{}, err
	}
	for i, usr := range users {
		if strings.EqualFold(usr.Email, email) {
			users[i].Permissions = perms
			if err = s.save(users); err != nil {
				return user.User{}, err
			}
			return users[i], nil
		}
	}
	return user.User{}, user.ErrNotFound
}

// load reads the whole table. A missing file is created with just the header
// so the first run leaves an editable file behind.
func (s *UserStore) load() ([]user.User, error) {
	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		if err = s.save(nil); err != nil {
			return nil, err
		}
		return []user.User{}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", s.path)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", s.path)
	}

	users := make([]user.User, 0, len(records))
	for i, rec := range records {
		if i == 0 || len(rec) < len(userHeader) {
			continue
		}
		users = append(users, user.User{
			Email:       rec[0],
			Password:    rec[1],
			BaseRole:    rec[2],
			Permissions: splitCapabilities(rec[3]),
		})
	}
	return users, nil
}

func (s *UserStore) save(users []user.User) error {
	f, err := os.Create(s.path)
	if err != nil {
		return errors.Wrapf(err, "rewriting %s", s.path)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err = w.Write(userHeader); err != nil {
		return errors.Wrapf(err, "rewriting %s", s.path)
	}
	for _, usr := range users {
		rec := []string{usr.Email, usr.Password, usr.BaseRole, joinCapabilities(usr.Permissions)}
		if err = w.Write(rec); err != nil {
			return errors.Wrapf(err, "rewriting %s", s.path)
		}
	}
	w.Flush()
	if err = w.Error(); err != nil {
		return errors.Wrapf(err, "rewriting %s", s.path)
	}
	return nil
}

func splitCapabilities(field string) []user.Capability {
	perms := []user.Capability{}
	for _, tag := range strings.Split(field, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			perms = append(perms, user.Capability(tag))
		}
	}
	return perms
}

func joinCapabilities(perms []user.Capability) string {
	tags := make([]string, len(perms))
	for i, p := range perms {
		tags[i] = string(p)
	}
	return strings.Join(tags, ",")
}
