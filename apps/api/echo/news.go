package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/unidubna/portal/core"
	"github.com/unidubna/portal/core/news"
	"github.com/unidubna/portal/core/user"
)

type newsApi struct {
	deps ServerDeps
}

func registerNewsAPI(app *echo.Echo, session echo.MiddlewareFunc, deps ServerDeps) {
	api := newsApi{deps: deps}

	g := app.Group("/news", session)
	g.POST("", api.create, capabilityMiddleware(user.CapEditNews))
	g.DELETE("/:id", api.destroy, capabilityMiddleware(user.CapDeleteNews))
}

func (api *newsApi) create(ctx echo.Context) error {
	var data news.NewItem
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewItem")
	}
	if err := data.Validate(api.deps.Validate); err != nil {
		return err
	}

	it, err := api.deps.NewsSvc.Add(data)
	if err != nil {
		return errors.Wrap(err, "adding news item")
	}
	return ctx.JSON(http.StatusCreated, it)
}

// destroy removes one record by id. The id is validated before the store is
// touched so a bad id never costs a file rewrite.
func (api *newsApi) destroy(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return core.NewValidationError(nil, core.FieldError{Field: "id", Error: "id must be a number"})
	}

	if err = api.deps.NewsSvc.Delete(id); err != nil {
		if errors.Cause(err) == news.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "deleting news item")
	}
	return ctx.NoContent(http.StatusNoContent)
}
