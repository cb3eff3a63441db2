package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/unidubna/portal/core"
	"github.com/unidubna/portal/core/user"
)

type (
	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	SuccessResponse struct {
		Success string `json:"success"`
	}
)

type authApi struct {
	deps ServerDeps
}

func registerAuthAPI(app *echo.Echo, session echo.MiddlewareFunc, deps ServerDeps) {
	api := authApi{deps: deps}

	app.POST("/login", api.login, session)
	app.POST("/register", api.register, session)
}

// login authenticates a credential pair and mints the session token; it is
// returned in the body and set as the session cookie.
func (api *authApi) login(ctx echo.Context) error {
	var data user.Credentials
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Credentials")
	}
	if err := data.Validate(api.deps.Validate); err != nil {
		return err
	}

	usr, err := api.deps.UserSvc.Authenticate(data.Email, data.Password)
	if err != nil {
		if errors.Cause(err) == user.ErrNotFound {
			return core.NewValidationError(errors.New("invalid email or password"))
		}
		return errors.Wrap(err, "authenticating")
	}

	token, err := GenerateToken(GetSessionClaims(usr, api.deps.Conf), api.deps.Conf)
	if err != nil {
		return errors.Wrap(err, "generating token")
	}

	setSessionCookie(ctx, token, api.deps.Conf)
	return ctx.JSON(http.StatusOK, LoginResponse{Token: token, Role: usr.BaseRole})
}

func (api *authApi) register(ctx echo.Context) error {
	var data user.NewUser
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewUser")
	}
	if err := data.Validate(api.deps.Validate); err != nil {
		return err
	}

	usr, err := api.deps.UserSvc.Register(data)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, SuccessResponse{
		Success: "registered as " + usr.BaseRole + ", you can now sign in",
	})
}
