package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/unidubna/portal/core"
	"github.com/unidubna/portal/core/event"
	"github.com/unidubna/portal/core/user"
)

type eventApi struct {
	deps ServerDeps
}

func registerEventAPI(app *echo.Echo, session echo.MiddlewareFunc, deps ServerDeps) {
	api := eventApi{deps: deps}

	g := app.Group("/events", session)
	g.POST("", api.create, capabilityMiddleware(user.CapEditEvents))
	g.DELETE("/:id", api.destroy, capabilityMiddleware(user.CapDeleteEvents))
}

func (api *eventApi) create(ctx echo.Context) error {
	var data event.NewItem
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewItem")
	}
	if err := data.Validate(api.deps.Validate); err != nil {
		return err
	}

	it, err := api.deps.EventSvc.Add(data)
	if err != nil {
		return errors.Wrap(err, "adding event")
	}
	return ctx.JSON(http.StatusCreated, it)
}

func (api *eventApi) destroy(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return core.NewValidationError(nil, core.FieldError{Field: "id", Error: "id must be a number"})
	}

	if err = api.deps.EventSvc.Delete(id); err != nil {
		if errors.Cause(err) == event.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "deleting event")
	}
	return ctx.NoContent(http.StatusNoContent)
}
