package echoapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/unidubna/portal/core"
	"github.com/unidubna/portal/core/user"
)

const (
	sessionCookieName = "session"
	contextSessionKey = "session"
)

// Claims is the client-held session transmitted via a JWT, in the cookie for
// page navigations and as a bearer token for direct API calls.
type Claims struct {
	jwt.StandardClaims
	BaseRole    string            `json:"base_role"`
	Permissions []user.Capability `json:"permissions"`
}

// Session rebuilds the authorization state the claims carry.
func (c *Claims) Session() *user.Session {
	return &user.Session{BaseRole: c.BaseRole, Permissions: c.Permissions}
}

// GetSessionClaims mints the claims for a freshly authenticated user. The
// stored SUPER_ADMIN marker is expanded here and nowhere else.
func GetSessionClaims(usr user.User, conf *core.Config) *Claims {
	now := time.Now()
	sess := user.NewSession(usr)

	return &Claims{
		StandardClaims: jwt.StandardClaims{
			Id:        uuid.New().String(),
			Issuer:    conf.AppName,
			Subject:   usr.Email,
			ExpiresAt: now.Add(conf.Server.JWTExpirationDelta).Unix(),
			IssuedAt:  now.Unix(),
		},
		BaseRole:    sess.BaseRole,
		Permissions: sess.Permissions,
	}
}

// GenerateToken generates a signed JWT token string representing the Claims.
func GenerateToken(claims *Claims, conf *core.Config) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	ss, err := token.SignedString([]byte(conf.SecretKey))
	if err != nil {
		return "", errors.Wrap(err, "signing token")
	}
	return ss, nil
}

func parseToken(raw string, conf *core.Config) (*Claims, error) {
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(conf.SecretKey), nil
	})
	if err != nil || !token.Valid {
		return nil, errUnauthorized
	}
	return claims, nil
}

// sessionMiddleware resolves the client-held session, from the session cookie
// or an Authorization bearer token. An absent or invalid token is not an
// error: the gate decides what anonymous navigations may see.
func sessionMiddleware(conf *core.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if raw := rawToken(ctx); raw != "" {
				if claims, err := parseToken(raw, conf); err == nil {
					ctx.Set(contextSessionKey, claims.Session())
				}
			}
			return next(ctx)
		}
	}
}

func rawToken(ctx echo.Context) string {
	if cookie, err := ctx.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	auth := ctx.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// getContextSession returns the resolved session, nil when anonymous.
func getContextSession(ctx echo.Context) *user.Session {
	if sess, ok := ctx.Get(contextSessionKey).(*user.Session); ok {
		return sess
	}
	return nil
}

func setSessionCookie(ctx echo.Context, token string, conf *core.Config) {
	ctx.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(conf.Server.JWTExpirationDelta),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(ctx echo.Context) {
	ctx.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
