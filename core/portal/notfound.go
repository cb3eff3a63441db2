package portal

type NotFoundContent struct {
	Path     string `json:"path"`
	HomeHref string `json:"home_href"`
}

// NotFoundPage is the 404 fragment for authenticated sessions; it keeps the
// chrome so the user can navigate away.
func NotFoundPage(path string) Page {
	return chrome(Page{
		Route:  RouteNotFound,
		Title:  "Page not found",
		Alerts: []Alert{warningAlert("There is no page at " + path)},
		Content: NotFoundContent{
			Path:     path,
			HomeHref: "/",
		},
	})
}
