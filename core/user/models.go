package user

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/unidubna/portal/core"
)

// Base roles, derived from the email's local-part shape at registration
// and never changed afterwards.
const (
	RoleStudent = "student"
	RoleStaff   = "staff"
)

// Capability tags stored in the user table and carried in the session.
type Capability string

const (
	// CapSuperAdmin expands to AdminCapabilities at login time.
	CapSuperAdmin Capability = "SUPER_ADMIN"

	CapEditNews       Capability = "EDIT_NEWS"
	CapDeleteNews     Capability = "DELETE_NEWS"
	CapEditEvents     Capability = "EDIT_EVENTS"
	CapDeleteEvents   Capability = "DELETE_EVENTS"
	CapEditSchedule   Capability = "EDIT_SCHEDULE"
	CapDeleteSchedule Capability = "DELETE_SCHEDULE"
	CapEditUsers      Capability = "EDIT_USERS"
)

var (
	// AdminCapabilities is the full edit/delete set granted to super admins.
	AdminCapabilities = []Capability{
		CapEditNews, CapDeleteNews,
		CapEditEvents, CapDeleteEvents,
		CapEditSchedule, CapDeleteSchedule,
		CapEditUsers,
	}

	AllCapabilities = append([]Capability{CapSuperAdmin}, AdminCapabilities...)

	// email patterns: `name.NN@uni-dubna.ru` is a student, `name@uni-dubna.ru` is staff
	studentEmailRegex = regexp.MustCompile(`^[a-z.]+\.\d{2}@uni-dubna\.ru$`)
	staffEmailRegex   = regexp.MustCompile(`^[a-z.]+@uni-dubna\.ru$`)
)

func IsKnownCapability(c Capability) bool {
	for _, known := range AllCapabilities {
		if c == known {
			return true
		}
	}
	return false
}

// RoleFromEmail classifies an email into a base role. ok is false when the
// address matches neither the student nor the staff pattern.
func RoleFromEmail(email string) (role string, ok bool) {
	email = core.CleanString(email, true /* lower */)
	if studentEmailRegex.MatchString(email) {
		return RoleStudent, true
	}
	if staffEmailRegex.MatchString(email) {
		return RoleStaff, true
	}
	return "", false
}

// User is a row of the user table. The password is stored as plain text:
// the table is a human-editable flat file and hardening is out of scope.
type User struct {
	Email       string       `json:"email"`
	Password    string       `json:"-"`
	BaseRole    string       `json:"base_role"`
	Permissions []Capability `json:"permissions"`
}

func (u User) HasPermission(c Capability) bool {
	for _, p := range u.Permissions {
		if p == c {
			return true
		}
	}
	return false
}

// Session is the client-held authorization state for one browser tab.
// It is minted at login and is the sole source of authorization truth.
type Session struct {
	BaseRole    string       `json:"base_role"`
	Permissions []Capability `json:"permissions"`
}

// Can reports whether the session carries the given capability tag.
func (s *Session) Can(c Capability) bool {
	if s == nil {
		return false
	}
	for _, p := range s.Permissions {
		if p == c {
			return true
		}
	}
	return false
}

// NewSession builds the session for a freshly authenticated user. A stored
// CapSuperAdmin marker is expanded to the union with AdminCapabilities; the
// expansion is recomputed on every login and never persisted back.
func NewSession(usr User) Session {
	perms := make([]Capability, len(usr.Permissions))
	copy(perms, usr.Permissions)

	if usr.HasPermission(CapSuperAdmin) {
		for _, c := range AdminCapabilities {
			if !usr.HasPermission(c) {
				perms = append(perms, c)
			}
		}
	}
	return Session{BaseRole: usr.BaseRole, Permissions: perms}
}

// NewUser contains information needed to register a new User.
type NewUser struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (nu *NewUser) Validate(validate *validator.Validate) error {
	nu.Email = core.CleanString(nu.Email, true /* lower */)
	return validate.Struct(nu)
}

// Credentials is a login attempt.
type Credentials struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (c *Credentials) Validate(validate *validator.Validate) error {
	c.Email = core.CleanString(c.Email, true /* lower */)
	return validate.Struct(c)
}

// Grant assigns capability tags to an existing user; there is no in-app UI
// for this, it is only reachable through the admin CLI.
type Grant struct {
	Email       string       `json:"email" validate:"required"`
	Permissions []Capability `json:"permissions" validate:"required,dive,capability"`
}

func (g *Grant) Validate(validate *validator.Validate) error {
	g.Email = core.CleanString(g.Email, true /* lower */)
	return validate.Struct(g)
}
