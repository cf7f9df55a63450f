package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"placehub/internal/api/dto"
	"placehub/internal/api/services"
)

type AreaHandler struct {
	areaService *services.AreaService
	seeder      *services.SeedCoordinator
}

func NewAreaHandler(areaService *services.AreaService, seeder *services.SeedCoordinator) *AreaHandler {
	return &AreaHandler{
		areaService: areaService,
		seeder:      seeder,
	}
}

// ListAreas godoc
// @Summary List areas
// @Tags areas
// @Produce json
// @Success 200 {array} dto.Area
// @Failure 500 {object} map[string]string
// @Router /api/areas [get]
func (h *AreaHandler) ListAreas(c echo.Context) error {
	areas, err := h.areaService.List(c.Request().Context())
	if err != nil {
		return respondError(c, "AreaHandler", err)
	}
	return c.JSON(http.StatusOK, dto.AreasFromDomain(areas))
}

// CreateArea godoc
// @Summary Create area
// @Description Create an area. The slug defaults to the canonical form of the name.
// @Tags areas
// @Accept json
// @Produce json
// @Param request body dto.CreateAreaRequest true "Area"
// @Success 201 {object} dto.Area
// @Failure 400 {object} map[string]interface{}
// @Router /api/areas [post]
func (h *AreaHandler) CreateArea(c echo.Context) error {
	var req dto.CreateAreaRequest
	if err := c.Bind(&req); err != nil {
		return ErrBadRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondValidateError(c, err)
	}

	area, err := h.areaService.Create(c.Request().Context(), services.CreateAreaInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	})
	if err != nil {
		return respondError(c, "AreaHandler", err)
	}
	return c.JSON(http.StatusCreated, dto.AreaFromDomain(area))
}

// SeedAreas godoc
// @Summary Seed areas
// @Description Ensure the given areas exist, or the default campus areas when none are given. Safe to repeat.
// @Tags areas
// @Accept json
// @Produce json
// @Param request body dto.SeedAreasRequest false "Area names"
// @Success 200 {object} dto.SeedAreasResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Router /api/areas/seed [post]
func (h *AreaHandler) SeedAreas(c echo.Context) error {
	var req dto.SeedAreasRequest
	if err := c.Bind(&req); err != nil {
		return ErrBadRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondValidateError(c, err)
	}

	result, err := h.seeder.Seed(c.Request().Context(), req.Areas)
	if err != nil {
		return respondError(c, "AreaHandler", err)
	}

	return c.JSON(http.StatusOK, dto.SeedAreasResponse{
		Created: dto.AreasFromDomain(result.Created),
		All:     dto.AreasFromDomain(result.Areas),
	})
}

func respondValidateError(c echo.Context, err error) error {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		return ErrValidation(c, verr)
	}
	return ErrBadRequest(c, err.Error())
}
