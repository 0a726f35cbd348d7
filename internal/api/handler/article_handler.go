package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/blog-api/internal/core/ports"
)

// ArticleHandler handles HTTP requests for article operations.
type ArticleHandler struct {
	service ports.ArticleService
}

func NewArticleHandler(service ports.ArticleService) *ArticleHandler {
	return &ArticleHandler{service: service}
}

// List handles GET /articles.
//
// @Summary      List all articles
// @Tags         articles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dataResponse
// @Failure      401  {object}  map[string]string
// @Router       /articles [get]
func (h *ArticleHandler) List(c echo.Context) error {
	articles, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "articles retrieved", articles)
}

// Get handles GET /articles/:id.
//
// @Summary      Get an article by id
// @Tags         articles
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Article id"
// @Success      200  {object}  dataResponse
// @Failure      404  {object}  map[string]string
// @Router       /articles/{id} [get]
func (h *ArticleHandler) Get(c echo.Context) error {
	article, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "article retrieved", article)
}

// Create handles POST /articles.
//
// @Summary      Create an article
// @Tags         articles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      articleRequest  true  "Article details"
// @Success      201   {object}  dataResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /articles [post]
func (h *ArticleHandler) Create(c echo.Context) error {
	var req articleRequest
	if err := c.Bind(&req); err != nil {
		return badPayload()
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	article, err := h.service.Create(c.Request().Context(), toArticleInput(req))
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "article created", article)
}

// Update handles PUT /articles/:id.
//
// @Summary      Update an article
// @Tags         articles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Article id"
// @Param        body  body      articleRequest  true  "Article details"
// @Success      200   {object}  dataResponse
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /articles/{id} [put]
func (h *ArticleHandler) Update(c echo.Context) error {
	var req articleRequest
	if err := c.Bind(&req); err != nil {
		return badPayload()
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	article, err := h.service.Update(c.Request().Context(), c.Param("id"), toArticleInput(req))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "article updated", article)
}

// Delete handles DELETE /articles/:id.
//
// @Summary      Delete an article
// @Tags         articles
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Article id"
// @Success      200  {object}  dataResponse
// @Failure      404  {object}  map[string]string
// @Router       /articles/{id} [delete]
func (h *ArticleHandler) Delete(c echo.Context) error {
	article, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "article deleted", article)
}

// toArticleInput maps the HTTP request to the service DTO.
func toArticleInput(r articleRequest) ports.ArticleInput {
	return ports.ArticleInput{
		Title:       r.Title,
		Content:     r.Content,
		Thumbnail:   r.Thumbnail,
		AuthorID:    r.AuthorID,
		CategoryIDs: r.CategoryIDs,
		PublishedAt: r.PublishedAt,
	}
}
