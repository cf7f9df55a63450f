package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONFormValues(t *testing.T) {
	values, err := jsonFormValues(strings.NewReader(`{
		"name": "Warung",
		"rating": 4.5,
		"menu": ["a", "b"],
		"lat": null,
		"open": true
	}`))
	require.NoError(t, err)

	assert.Equal(t, "Warung", values.Get("name"))
	assert.Equal(t, "4.5", values.Get("rating"))
	assert.Equal(t, `["a", "b"]`, values.Get("menu"))
	assert.Equal(t, "true", values.Get("open"))
	_, present := values["lat"]
	assert.False(t, present)
}

func TestJSONFormValues_EmptyBody(t *testing.T) {
	values, err := jsonFormValues(strings.NewReader("  "))
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestJSONFormValues_NotAnObject(t *testing.T) {
	_, err := jsonFormValues(strings.NewReader(`"text"`))
	assert.Error(t, err)
}

func TestPlaceInputFromValues(t *testing.T) {
	input := placeInputFromValues(url.Values{
		"name": {"Kopi"},
		"area": {""},
		"menu": {"a", "b"},
	})

	require.NotNil(t, input.Name)
	assert.Equal(t, "Kopi", *input.Name)
	require.NotNil(t, input.Area)
	assert.Equal(t, "", *input.Area)
	assert.Nil(t, input.Rating)
	assert.Nil(t, input.Description)
	assert.Equal(t, []string{"a", "b"}, input.Menu)
}

func TestFormValues_URLEncoded(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/places?name=query", strings.NewReader("name=body&rating=2"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	c := e.NewContext(req, httptest.NewRecorder())

	values, err := formValues(c)
	require.NoError(t, err)
	assert.Equal(t, []string{"body"}, values["name"])
	assert.Equal(t, "2", values.Get("rating"))
}

func TestBaseURL(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Host = "places.local:4000"
	c := e.NewContext(req, httptest.NewRecorder())

	assert.Equal(t, "http://places.local:4000", baseURL(c, ""))
	assert.Equal(t, "https://cdn.example.com", baseURL(c, "https://cdn.example.com/"))
}
