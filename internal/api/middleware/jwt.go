package middleware

import (
	"log"
	"net/http"
	"strings"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

const tokenContextKey = "user"

// OptionalJWT verifies a bearer token when one is sent and rejects it with 401
// when it is invalid. Requests without an Authorization header pass through
// anonymously. With no signing key every request is anonymous.
func OptionalJWT(signingKey string) echo.MiddlewareFunc {
	if signingKey == "" {
		log.Println("[JWT] no signing key configured, bearer tokens are ignored")
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}

	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(signingKey),
		ContextKey: tokenContextKey,
		Skipper: func(c echo.Context) bool {
			return c.Request().Header.Get(echo.HeaderAuthorization) == ""
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		},
	})
}

// ExtractUsernameFromJWT copies the token's username claim into the request
// context.
func ExtractUsernameFromJWT() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get(tokenContextKey).(*jwtv5.Token)
			if !ok || token == nil {
				return next(c)
			}

			claims, ok := token.Claims.(jwtv5.MapClaims)
			if !ok {
				return next(c)
			}

			username, ok := claims["username"].(string)
			if !ok || strings.TrimSpace(username) == "" {
				return next(c)
			}

			ctx := ContextWithUsername(c.Request().Context(), strings.TrimSpace(username))
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
