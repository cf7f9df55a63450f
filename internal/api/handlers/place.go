package handlers

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"placehub/internal/api/dto"
	"placehub/internal/api/services"
	"placehub/internal/storage"
)

type PlaceHandler struct {
	placeService *services.PlaceService
	uploader     storage.Uploader
	publicURL    string
}

func NewPlaceHandler(placeService *services.PlaceService, uploader storage.Uploader, publicURL string) *PlaceHandler {
	return &PlaceHandler{
		placeService: placeService,
		uploader:     uploader,
		publicURL:    publicURL,
	}
}

// ListPlaces godoc
// @Summary List places
// @Description List places newest first, optionally filtered by area id, slug or name
// @Tags places
// @Produce json
// @Param area query string false "Area id, slug or name"
// @Success 200 {array} dto.Place
// @Failure 500 {object} map[string]string
// @Router /api/places [get]
func (h *PlaceHandler) ListPlaces(c echo.Context) error {
	places, err := h.placeService.List(c.Request().Context(), services.PlaceFilter{Area: c.QueryParam("area")})
	if err != nil {
		return respondError(c, "PlaceHandler", err)
	}
	return c.JSON(http.StatusOK, dto.PlacesFromDomain(places))
}

// GetPlace godoc
// @Summary Get place
// @Tags places
// @Produce json
// @Param id path string true "Place id"
// @Success 200 {object} dto.Place
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/places/{id} [get]
func (h *PlaceHandler) GetPlace(c echo.Context) error {
	place, err := h.placeService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, "PlaceHandler", err)
	}
	return c.JSON(http.StatusOK, dto.PlaceFromDomain(place))
}

// CreatePlace godoc
// @Summary Create place
// @Description Create a place from a multipart form. An unknown area name is created on the fly.
// @Tags places
// @Accept mpfd
// @Produce json
// @Param name formData string true "Name"
// @Param description formData string false "Description"
// @Param area formData string false "Area id, slug or name"
// @Param address formData string false "Address"
// @Param openHours formData string false "Opening hours"
// @Param lat formData number false "Latitude"
// @Param lng formData number false "Longitude"
// @Param rating formData number false "Rating"
// @Param menu formData string false "Menu as JSON array or plain item"
// @Param image formData file false "Image"
// @Success 201 {object} dto.Place
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Router /api/places [post]
func (h *PlaceHandler) CreatePlace(c echo.Context) error {
	input, err := h.bindInput(c)
	if err != nil {
		return respondBindError(c, "PlaceHandler", err)
	}

	place, err := h.placeService.Create(c.Request().Context(), *input)
	if err != nil {
		return respondError(c, "PlaceHandler", err)
	}
	return c.JSON(http.StatusCreated, dto.PlaceFromDomain(place))
}

// UpdatePlace godoc
// @Summary Update place
// @Description Update the submitted fields of a place. An empty area clears it.
// @Tags places
// @Accept mpfd
// @Produce json
// @Param id path string true "Place id"
// @Param name formData string false "Name"
// @Param area formData string false "Area id, slug or name"
// @Param image formData file false "Image"
// @Success 200 {object} dto.Place
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /api/places/{id} [put]
func (h *PlaceHandler) UpdatePlace(c echo.Context) error {
	input, err := h.bindInput(c)
	if err != nil {
		return respondBindError(c, "PlaceHandler", err)
	}

	place, err := h.placeService.Update(c.Request().Context(), c.Param("id"), *input)
	if err != nil {
		return respondError(c, "PlaceHandler", err)
	}
	return c.JSON(http.StatusOK, dto.PlaceFromDomain(place))
}

// bindInput reads the place form and stores the uploaded image.
func (h *PlaceHandler) bindInput(c echo.Context) (*services.PlaceInput, error) {
	values, err := formValues(c)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidForm, err)
	}

	input := placeInputFromValues(values)

	image, err := saveUpload(c, h.uploader, h.publicURL)
	if err != nil {
		return nil, err
	}
	input.Image = image

	return &input, nil
}

func placeInputFromValues(values url.Values) services.PlaceInput {
	return services.PlaceInput{
		Name:        optional(values, "name"),
		Description: optional(values, "description"),
		Address:     optional(values, "address"),
		OpenHours:   optional(values, "openHours"),
		Area:        optional(values, "area"),
		Rating:      optional(values, "rating"),
		Lat:         optional(values, "lat"),
		Lng:         optional(values, "lng"),
		Menu:        values["menu"],
	}
}
