package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/blog-api/internal/core/ports"
)

type createCommentRequest struct {
	ArticleID string `json:"article_id" validate:"required,uuid"`
	Content   string `json:"content"    validate:"required,min=1,max=2000"`
}

type updateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
}

// CommentHandler handles HTTP requests for comment operations. The comment
// author is always the authenticated principal, never a body field.
type CommentHandler struct {
	service ports.CommentService
}

func NewCommentHandler(service ports.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

// List handles GET /comments.
//
// @Summary      List all comments
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dataResponse
// @Failure      401  {object}  map[string]string
// @Router       /comments [get]
func (h *CommentHandler) List(c echo.Context) error {
	comments, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "comments retrieved", comments)
}

// Get handles GET /comments/:id.
//
// @Summary      Get a comment by id
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Comment id"
// @Success      200  {object}  dataResponse
// @Failure      404  {object}  map[string]string
// @Router       /comments/{id} [get]
func (h *CommentHandler) Get(c echo.Context) error {
	comment, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "comment retrieved", comment)
}

// Create handles POST /comments.
//
// @Summary      Create a comment on an article
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCommentRequest  true  "Comment details"
// @Success      201   {object}  dataResponse
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	var req createCommentRequest
	if err := c.Bind(&req); err != nil {
		return badPayload()
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	comment, err := h.service.Create(c.Request().Context(), ports.CommentInput{
		UserID:    principal.ID,
		ArticleID: req.ArticleID,
		Content:   req.Content,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "comment created", comment)
}

// Update handles PUT /comments/:id.
//
// @Summary      Update a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Comment id"
// @Param        body  body      updateCommentRequest  true  "Comment details"
// @Success      200   {object}  dataResponse
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /comments/{id} [put]
func (h *CommentHandler) Update(c echo.Context) error {
	var req updateCommentRequest
	if err := c.Bind(&req); err != nil {
		return badPayload()
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.service.Update(c.Request().Context(), c.Param("id"), req.Content)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "comment updated", comment)
}

// Delete handles DELETE /comments/:id.
//
// @Summary      Delete a comment
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Comment id"
// @Success      200  {object}  dataResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /comments/{id} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	comment, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "comment deleted", comment)
}
