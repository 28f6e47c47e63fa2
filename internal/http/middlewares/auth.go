package middleware

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	errs "worklog-system.com/worklog-system/internal/errors"
)

const ownerContextKey = "owner_id"

// Auth resolves the owner identity from a bearer JWT and stores it in the
// request context. Everything behind it can treat the owner id as an
// opaque, already-validated string.
func Auth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, "Bearer ") {
				return unauthorized()
			}

			token, err := jwt.Parse(
				strings.TrimPrefix(header, "Bearer "),
				func(t *jwt.Token) (interface{}, error) {
					if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
						return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
					}
					return []byte(secret), nil
				},
			)
			if err != nil || !token.Valid {
				return unauthorized()
			}

			subject, err := token.Claims.GetSubject()
			if err != nil || subject == "" {
				return unauthorized()
			}

			c.Set(ownerContextKey, subject)
			return next(c)
		}
	}
}

func unauthorized() error {
	return echo.NewHTTPError(errs.ErrUnauthorized.StatusCode, errs.ErrUnauthorized.Message)
}

// OwnerID returns the owner resolved by Auth, empty when unauthenticated.
func OwnerID(c echo.Context) string {
	owner, _ := c.Get(ownerContextKey).(string)
	return owner
}
