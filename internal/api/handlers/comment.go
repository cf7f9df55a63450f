package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"placehub/internal/api/dto"
	"placehub/internal/api/middleware"
	"placehub/internal/api/services"
	"placehub/internal/storage"
)

type CommentHandler struct {
	commentService *services.CommentService
	uploader       storage.Uploader
	publicURL      string
}

func NewCommentHandler(commentService *services.CommentService, uploader storage.Uploader, publicURL string) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		uploader:       uploader,
		publicURL:      publicURL,
	}
}

// ListComments godoc
// @Summary List comments
// @Description List the comments on a place, newest first
// @Tags comments
// @Produce json
// @Param placeId path string true "Place id"
// @Success 200 {array} dto.Comment
// @Failure 400 {object} map[string]string
// @Router /api/comments/{placeId} [get]
func (h *CommentHandler) ListComments(c echo.Context) error {
	comments, err := h.commentService.ListByPlace(c.Request().Context(), c.Param("placeId"))
	if err != nil {
		return respondError(c, "CommentHandler", err)
	}
	return c.JSON(http.StatusOK, dto.CommentsFromDomain(comments))
}

// CreateComment godoc
// @Summary Comment on a place
// @Description Post a comment with an optional image. A bearer token supplies the username, otherwise the comment is anonymous.
// @Tags comments
// @Accept mpfd
// @Produce json
// @Security Bearer
// @Param placeId path string true "Place id"
// @Param text formData string true "Comment text"
// @Param image formData file false "Image"
// @Success 201 {object} dto.Comment
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/comments/{placeId} [post]
func (h *CommentHandler) CreateComment(c echo.Context) error {
	values, err := formValues(c)
	if err != nil {
		return ErrBadRequest(c, errInvalidForm.Error())
	}

	image, err := saveUpload(c, h.uploader, h.publicURL)
	if err != nil {
		return respondBindError(c, "CommentHandler", err)
	}

	input := services.CreateCommentInput{
		PlaceID: c.Param("placeId"),
		Text:    values.Get("text"),
	}
	if username, ok := middleware.UsernameFromContext(c.Request().Context()); ok {
		input.Username = username
	}
	if image != nil {
		input.Image = *image
	}

	comment, err := h.commentService.Create(c.Request().Context(), input)
	if err != nil {
		return respondError(c, "CommentHandler", err)
	}
	return c.JSON(http.StatusCreated, dto.CommentFromDomain(comment))
}
