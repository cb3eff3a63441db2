package portal

import "github.com/unidubna/portal/core/user"

// Route is the closed enumeration of navigable sections.
type Route string

const (
	RouteHome          Route = "home"
	RouteLogin         Route = "login"
	RouteRegister      Route = "register"
	RouteLogout        Route = "logout"
	RouteSchedule      Route = "schedule"
	RouteNews          Route = "news"
	RouteEvents        Route = "events"
	RouteServices      Route = "services"
	RouteServicesStaff Route = "services-staff"
	RouteNotFound      Route = "not-found"
)

var routesByPath = map[string]Route{
	"/":               RouteHome,
	"/login":          RouteLogin,
	"/register":       RouteRegister,
	"/logout":         RouteLogout,
	"/schedule":       RouteSchedule,
	"/news":           RouteNews,
	"/events":         RouteEvents,
	"/services":       RouteServices,
	"/services-staff": RouteServicesStaff,
}

// Resolve maps a pathname onto the route enumeration; ok is false for
// unknown paths (the 404 fragment).
func Resolve(path string) (r Route, ok bool) {
	r, ok = routesByPath[path]
	return r, ok
}

type DecisionKind int

const (
	// Render composes the decision's route for the current state.
	Render DecisionKind = iota
	// Redirect navigates the client to Decision.Location.
	Redirect
)

// Decision is the outcome of gating one navigation: what to render or where
// to go, and whether the client-held session must be dropped first.
type Decision struct {
	Kind         DecisionKind
	Route        Route
	Path         string // offending pathname, set for RouteNotFound
	Location     string
	ClearSession bool
}

// Gate is the routing/session state machine. Each navigation is a complete,
// synchronous recomputation from (pathname, session); an absent session only
// ever reaches the login and register forms.
func Gate(path string, sess *user.Session) Decision {
	route, known := Resolve(path)

	if sess == nil {
		switch route {
		case RouteRegister:
			return Decision{Kind: Render, Route: RouteRegister}
		case RouteLogout:
			return Decision{Kind: Render, Route: RouteLogin, ClearSession: true}
		default: // including unknown paths: fall back to the login form
			return Decision{Kind: Render, Route: RouteLogin}
		}
	}

	switch route {
	case RouteLogin, RouteRegister:
		return Decision{Kind: Redirect, Location: "/"}
	case RouteLogout:
		return Decision{Kind: Redirect, Location: "/login", ClearSession: true}
	case RouteServices:
		return Decision{Kind: Render, Route: RouteServices}
	case RouteServicesStaff:
		if sess.BaseRole != user.RoleStaff {
			return Decision{Kind: Redirect, Location: "/services"}
		}
		return Decision{Kind: Render, Route: RouteServicesStaff}
	}
	if !known {
		return Decision{Kind: Render, Route: RouteNotFound, Path: path}
	}
	return Decision{Kind: Render, Route: route}
}
