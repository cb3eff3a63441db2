package portal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/unidubna/portal/core/user"
)

func TestGate_anonymous(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		wantRoute Route
		wantClear bool
	}{
		{name: "login form", path: "/login", wantRoute: RouteLogin},
		{name: "register stays reachable", path: "/register", wantRoute: RouteRegister},
		{name: "logout clears and shows login", path: "/logout", wantRoute: RouteLogin, wantClear: true},
		{name: "home falls back to login", path: "/", wantRoute: RouteLogin},
		{name: "content section falls back to login", path: "/news", wantRoute: RouteLogin},
		{name: "unknown path falls back to login", path: "/secret", wantRoute: RouteLogin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Gate(tt.path, nil)
			assert.Equal(t, Render, d.Kind)
			assert.Equal(t, tt.wantRoute, d.Route)
			assert.Equal(t, tt.wantClear, d.ClearSession)
		})
	}
}

func TestGate_authenticated(t *testing.T) {
	student := &user.Session{BaseRole: user.RoleStudent}
	staff := &user.Session{BaseRole: user.RoleStaff}

	tests := []struct {
		name         string
		path         string
		sess         *user.Session
		wantKind     DecisionKind
		wantRoute    Route
		wantLocation string
		wantClear    bool
	}{
		{name: "home renders", path: "/", sess: student, wantKind: Render, wantRoute: RouteHome},
		{name: "news renders", path: "/news", sess: student, wantKind: Render, wantRoute: RouteNews},
		{name: "login redirects home", path: "/login", sess: student, wantKind: Redirect, wantLocation: "/"},
		{name: "register redirects home", path: "/register", sess: student, wantKind: Redirect, wantLocation: "/"},
		{name: "logout clears and redirects", path: "/logout", sess: student, wantKind: Redirect, wantLocation: "/login", wantClear: true},
		{name: "services renders for students", path: "/services", sess: student, wantKind: Render, wantRoute: RouteServices},
		{name: "staff services redirect students", path: "/services-staff", sess: student, wantKind: Redirect, wantLocation: "/services"},
		{name: "staff services render for staff", path: "/services-staff", sess: staff, wantKind: Render, wantRoute: RouteServicesStaff},
		{name: "unknown path renders 404", path: "/secret", sess: student, wantKind: Render, wantRoute: RouteNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Gate(tt.path, tt.sess)
			assert.Equal(t, tt.wantKind, d.Kind)
			assert.Equal(t, tt.wantRoute, d.Route)
			assert.Equal(t, tt.wantLocation, d.Location)
			assert.Equal(t, tt.wantClear, d.ClearSession)
		})
	}
}

func TestGate_notFoundCarriesPath(t *testing.T) {
	d := Gate("/no/such/page", &user.Session{BaseRole: user.RoleStudent})
	assert.Equal(t, RouteNotFound, d.Route)
	assert.Equal(t, "/no/such/page", d.Path)
}
