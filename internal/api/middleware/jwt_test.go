package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestToken(claims jwtv5.MapClaims, signingKey string) *jwtv5.Token {
	token := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	// Sign the token so it's marked as valid
	token.Raw, _ = token.SignedString([]byte(signingKey))
	token.Valid = true
	return token
}

func TestExtractUsernameFromJWT(t *testing.T) {
	middleware := ExtractUsernameFromJWT()

	run := func(t *testing.T, value interface{}) (string, bool) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if value != nil {
			c.Set("user", value)
		}

		var username string
		var found bool
		called := false
		handler := middleware(func(c echo.Context) error {
			called = true
			username, found = UsernameFromContext(c.Request().Context())
			return nil
		})

		require.NoError(t, handler(c))
		assert.True(t, called)
		return username, found
	}

	t.Run("valid token sets username in context", func(t *testing.T) {
		token := createTestToken(jwtv5.MapClaims{
			"username": " budi ",
			"exp":      time.Now().Add(72 * time.Hour).Unix(),
		}, "test-secret")

		username, found := run(t, token)
		assert.True(t, found)
		assert.Equal(t, "budi", username)
	})

	t.Run("no token in context passes through", func(t *testing.T) {
		_, found := run(t, nil)
		assert.False(t, found)
	})

	t.Run("wrong type in context passes through", func(t *testing.T) {
		_, found := run(t, "not-a-token")
		assert.False(t, found)
	})

	t.Run("nil token passes through", func(t *testing.T) {
		_, found := run(t, (*jwtv5.Token)(nil))
		assert.False(t, found)
	})

	t.Run("token without username claim passes through", func(t *testing.T) {
		token := createTestToken(jwtv5.MapClaims{"id": "x"}, "test-secret")
		_, found := run(t, token)
		assert.False(t, found)
	})

	t.Run("token with non-string username passes through", func(t *testing.T) {
		token := createTestToken(jwtv5.MapClaims{"username": 12345}, "test-secret")
		_, found := run(t, token)
		assert.False(t, found)
	})
}

func TestOptionalJWT(t *testing.T) {
	const key = "test-secret"

	e := echo.New()
	e.GET("/", func(c echo.Context) error {
		username, ok := UsernameFromContext(c.Request().Context())
		if !ok {
			username = "anonymous"
		}
		return c.String(http.StatusOK, username)
	}, OptionalJWT(key), ExtractUsernameFromJWT())

	do := func(authorization string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if authorization != "" {
			req.Header.Set(echo.HeaderAuthorization, authorization)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	t.Run("no header is anonymous", func(t *testing.T) {
		rec := do("")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "anonymous", rec.Body.String())
	})

	t.Run("signed token", func(t *testing.T) {
		signed, err := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, jwtv5.MapClaims{
			"username": "siti",
			"exp":      time.Now().Add(time.Hour).Unix(),
		}).SignedString([]byte(key))
		require.NoError(t, err)

		rec := do("Bearer " + signed)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "siti", rec.Body.String())
	})

	t.Run("bad signature", func(t *testing.T) {
		signed, err := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, jwtv5.MapClaims{
			"username": "mallory",
		}).SignedString([]byte("other-key"))
		require.NoError(t, err)

		rec := do("Bearer " + signed)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("no signing key ignores tokens", func(t *testing.T) {
		e := echo.New()
		e.GET("/", func(c echo.Context) error {
			return c.NoContent(http.StatusNoContent)
		}, OptionalJWT(""))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer garbage")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestUsernameFromContext(t *testing.T) {
	t.Run("set", func(t *testing.T) {
		username, ok := UsernameFromContext(ContextWithUsername(context.Background(), "budi"))
		assert.True(t, ok)
		assert.Equal(t, "budi", username)
	})

	t.Run("empty", func(t *testing.T) {
		_, ok := UsernameFromContext(ContextWithUsername(context.Background(), ""))
		assert.False(t, ok)
	})

	t.Run("missing", func(t *testing.T) {
		_, ok := UsernameFromContext(context.Background())
		assert.False(t, ok)
	})

	t.Run("wrong type", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), usernameKey, 12345)
		_, ok := UsernameFromContext(ctx)
		assert.False(t, ok)
	})
}
