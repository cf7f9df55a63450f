package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"placehub/internal/storage"
)

const maxUploadMemory = 10 << 20

var errInvalidForm = errors.New("invalid form data")

// formValues returns the submitted body fields for multipart, urlencoded and
// JSON requests. Query parameters are not included.
func formValues(c echo.Context) (url.Values, error) {
	req := c.Request()
	contentType := req.Header.Get(echo.HeaderContentType)

	switch {
	case strings.HasPrefix(contentType, echo.MIMEApplicationJSON):
		return jsonFormValues(req.Body)
	case strings.HasPrefix(contentType, echo.MIMEMultipartForm):
		if err := req.ParseMultipartForm(maxUploadMemory); err != nil {
			return nil, err
		}
	default:
		if err := req.ParseForm(); err != nil {
			return nil, err
		}
	}

	if req.PostForm == nil {
		return url.Values{}, nil
	}
	return req.PostForm, nil
}

// jsonFormValues flattens a JSON object into form values. Numbers and booleans
// keep their literal text, arrays and objects stay JSON encoded, and null
// fields are treated as not submitted.
func jsonFormValues(body io.Reader) (url.Values, error) {
	values := url.Values{}
	if body == nil {
		return values, nil
	}

	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return values, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("body must be a JSON object: %w", err)
	}

	for key, value := range fields {
		text := strings.TrimSpace(string(value))
		switch {
		case text == "null":
			continue
		case strings.HasPrefix(text, `"`):
			var s string
			if err := json.Unmarshal(value, &s); err != nil {
				return nil, err
			}
			values.Set(key, s)
		default:
			values.Set(key, text)
		}
	}
	return values, nil
}

func optional(values url.Values, key string) *string {
	v, ok := values[key]
	if !ok || len(v) == 0 {
		return nil
	}
	return &v[0]
}

// saveUpload stores the request's image file, if any, and returns its URL.
func saveUpload(c echo.Context, uploader storage.Uploader, publicURL string) (*string, error) {
	if uploader == nil || !strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		return nil, nil
	}

	file, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}

	u, err := uploader.Save(c.Request().Context(), file, baseURL(c, publicURL))
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func baseURL(c echo.Context, publicURL string) string {
	if publicURL != "" {
		return strings.TrimRight(publicURL, "/")
	}
	return c.Scheme() + "://" + c.Request().Host
}

// respondBindError writes the response for a request body that could not be
// read or whose upload could not be stored.
func respondBindError(c echo.Context, component string, err error) error {
	if errors.Is(err, errInvalidForm) {
		return ErrBadRequest(c, errInvalidForm.Error())
	}
	log.Printf("[%s] failed to store upload: %v", component, err)
	return ErrInternalServerError(c)
}
