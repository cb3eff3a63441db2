package echoapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/unidubna/portal/core"
	"github.com/unidubna/portal/core/event"
	"github.com/unidubna/portal/core/news"
	"github.com/unidubna/portal/core/portal"
	"github.com/unidubna/portal/core/user"
)

type portalApi struct {
	deps ServerDeps
}

// registerPortalPages mounts a GET handler per navigable path plus a
// catch-all; every navigation goes through the gate first.
func registerPortalPages(app *echo.Echo, session echo.MiddlewareFunc, deps ServerDeps) {
	api := portalApi{deps: deps}

	paths := []string{
		"/", "/login", "/register", "/logout",
		"/schedule", "/news", "/events",
		"/services", "/services-staff",
	}
	for _, path := range paths {
		app.GET(path, api.page, session)
	}
	app.GET("/*", api.page, session)
}

func (api *portalApi) page(ctx echo.Context) error {
	path := ctx.Request().URL.Path
	sess := getContextSession(ctx)

	decision := portal.Gate(path, sess)
	if decision.ClearSession {
		clearSessionCookie(ctx)
	}
	if decision.Kind == portal.Redirect {
		return ctx.Redirect(http.StatusFound, decision.Location)
	}

	page, err := api.compose(ctx, decision, sess)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, page)
}

func (api *portalApi) compose(ctx echo.Context, decision portal.Decision, sess *user.Session) (portal.Page, error) {
	switch decision.Route {
	case portal.RouteLogin:
		return portal.LoginPage(), nil
	case portal.RouteRegister:
		return portal.RegisterPage(), nil
	case portal.RouteHome:
		return portal.HomePage(sess, time.Now()), nil
	case portal.RouteSchedule:
		return api.schedulePage(ctx, sess)
	case portal.RouteNews:
		return api.newsPage(ctx, sess)
	case portal.RouteEvents:
		return api.eventsPage(ctx, sess)
	case portal.RouteServices, portal.RouteServicesStaff:
		return portal.ServicesPage(sess), nil
	default:
		return portal.NotFoundPage(decision.Path), nil
	}
}

func (api *portalApi) schedulePage(ctx echo.Context, sess *user.Session) (portal.Page, error) {
	date := time.Now()
	if raw := ctx.QueryParam("date"); raw != "" {
		if parsed, ok := core.ParseDate(raw); ok {
			date = parsed
		}
	}

	lessons, err := api.deps.ScheduleSvc.ForDate(date)
	if err != nil {
		return portal.Page{}, errors.Wrap(err, "loading schedule")
	}
	return portal.SchedulePage(sess, date, lessons), nil
}

func (api *portalApi) newsPage(ctx echo.Context, sess *user.Session) (portal.Page, error) {
	var filter news.QueryFilter
	if err := ctx.Bind(&filter); err != nil {
		return portal.Page{}, errors.Wrap(err, "binding news filter")
	}

	items, err := api.deps.NewsSvc.Query(filter)
	if err != nil {
		return portal.Page{}, errors.Wrap(err, "loading news")
	}
	all, err := api.deps.NewsSvc.Query(news.QueryFilter{})
	if err != nil {
		return portal.Page{}, errors.Wrap(err, "loading news")
	}
	return portal.NewsPage(sess, filter, items, len(all)), nil
}

func (api *portalApi) eventsPage(ctx echo.Context, sess *user.Session) (portal.Page, error) {
	filter := event.QueryFilter{Type: ctx.QueryParam("type")}
	if from, ok := core.ParseDate(ctx.QueryParam("from")); ok {
		filter.From = from
	}
	if to, ok := core.ParseDate(ctx.QueryParam("to")); ok {
		filter.To = to
	}

	items, err := api.deps.EventSvc.Query(filter)
	if err != nil {
		return portal.Page{}, errors.Wrap(err, "loading events")
	}
	all, err := api.deps.EventSvc.Query(event.QueryFilter{})
	if err != nil {
		return portal.Page{}, errors.Wrap(err, "loading events")
	}
	types, err := api.deps.EventSvc.Types()
	if err != nil {
		return portal.Page{}, errors.Wrap(err, "loading event types")
	}
	return portal.EventsPage(sess, filter, types, items, len(all)), nil
}
