// Package portal composes the dashboard pages. Composers are pure functions
// from (session, filter selections, loaded records) to a Page fragment tree;
// the reactive UI layer renders the trees and is not this server's concern.
package portal

type (
	// Page is the fragment returned for one navigation state.
	Page struct {
		Route   Route       `json:"route"`
		Title   string      `json:"title"`
		Navbar  *Navbar     `json:"navbar,omitempty"`
		Sidebar *Sidebar    `json:"sidebar,omitempty"`
		Alerts  []Alert     `json:"alerts,omitempty"`
		Content interface{} `json:"content,omitempty"`
	}

	// Alert is a dismissable banner; Level follows the bootstrap palette
	// (info, warning, danger, success).
	Alert struct {
		Level string `json:"level"`
		Text  string `json:"text"`
	}

	Navbar struct {
		Brand   string `json:"brand"`
		LogoURL string `json:"logo_url"`
		Href    string `json:"href"`
	}

	Sidebar struct {
		Links []NavLink `json:"links"`
	}

	NavLink struct {
		Label  string `json:"label"`
		Href   string `json:"href"`
		Active bool   `json:"active"`
	}
)

func infoAlert(text string) Alert    { return Alert{Level: "info", Text: text} }
func warningAlert(text string) Alert { return Alert{Level: "warning", Text: text} }

// chrome wraps an authenticated section with the shared navbar and sidebar.
func chrome(p Page) Page {
	p.Navbar = &Navbar{Brand: "Student Dashboard", LogoURL: "/assets/logo.png", Href: "/"}
	p.Sidebar = &Sidebar{Links: []NavLink{
		{Label: "Home", Href: "/", Active: p.Route == RouteHome},
		{Label: "Schedule", Href: "/schedule", Active: p.Route == RouteSchedule},
		{Label: "News", Href: "/news", Active: p.Route == RouteNews},
		{Label: "Events", Href: "/events", Active: p.Route == RouteEvents},
		{Label: "Services", Href: "/services", Active: p.Route == RouteServices || p.Route == RouteServicesStaff},
	}}
	return p
}
