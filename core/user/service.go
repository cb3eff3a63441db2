package user

import (
	"fmt"
	"net/mail"

	"github.com/pkg/errors"

	"github.com/unidubna/portal/core"
)

var (
	// errors
	ErrNotFound       = errors.New("user not found")
	ErrEmailExists    = errors.New("a user with this email is already registered")
	ErrBadEmailFormat = errors.New("invalid email: a @uni-dubna.ru address is required")
)

type (
	// Repository reads and rewrites the whole user table on every call;
	// email lookups are case-insensitive.
	Repository interface {
		GetUserByEmail(email string) (User, error)
		UserExists(email string) (bool, error)
		CreateUser(usr User) (User, error)
		QueryAllUsers() ([]User, error)
		UpdateUserPermissions(email string, perms []Capability) (User, error)
	}

	Service struct {
		repo    Repository
		mailSvc core.EmailService
		conf    *core.Config
	}
)

func NewService(repo Repository, mailSvc core.EmailService, conf *core.Config) *Service {
	return &Service{repo: repo, mailSvc: mailSvc, conf: conf}
}

// Authenticate resolves a credential pair to the stored user. Any lookup miss
// or password mismatch fails open to ErrNotFound.
func (svc *Service) Authenticate(email, password string) (User, error) {
	usr, err := svc.repo.GetUserByEmail(core.CleanString(email, true /* lower */))
	if err != nil {
		return User{}, err
	}
	if usr.Password != password {
		return User{}, ErrNotFound
	}
	return usr, nil
}

// Register creates a user with an empty permission list. The duplicate check
// runs before the format check so an already-registered address always fails
// with ErrEmailExists and never mutates the store.
func (svc *Service) Register(nu NewUser) (User, error) {
	email := core.CleanString(nu.Email, true /* lower */)

	exists, err := svc.repo.UserExists(email)
	if err != nil {
		return User{}, errors.Wrap(err, "checking user existence")
	}
	if exists {
		return User{}, core.NewValidationError(ErrEmailExists, core.FieldError{Field: "email", Error: ErrEmailExists.Error()})
	}

	role, ok := RoleFromEmail(email)
	if !ok {
		return User{}, core.NewValidationError(ErrBadEmailFormat, core.FieldError{Field: "email", Error: ErrBadEmailFormat.Error()})
	}

	usr, err := svc.repo.CreateUser(User{
		Email:       email,
		Password:    nu.Password,
		BaseRole:    role,
		Permissions: []Capability{},
	})
	if err != nil {
		return User{}, errors.Wrap(err, "creating user")
	}

	svc.sendWelcomeEmail(usr)
	return usr, nil
}

func (svc *Service) GetByEmail(email string) (User, error) {
	return svc.repo.GetUserByEmail(core.CleanString(email, true /* lower */))
}

func (svc *Service) QueryAll() ([]User, error) {
	return svc.repo.QueryAllUsers()
}

// GrantPermissions replaces a user's stored capability tags. Only the admin
// CLI calls this; the portal itself has no UI for it.
func (svc *Service) GrantPermissions(g Grant) (User, error) {
	return svc.repo.UpdateUserPermissions(core.CleanString(g.Email, true /* lower */), g.Permissions)
}

func (svc *Service) sendWelcomeEmail(usr User) {
	if svc.mailSvc == nil {
		return
	}
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:          []mail.Address{{Address: usr.Email}},
		Subject:     "Welcome to the student portal",
		TextContent: fmt.Sprintf("You have successfully registered as %s.", usr.BaseRole),
	})
}
