package http

import (
	"errors"
	"log/slog"
	"net/http"

	"marketing_site/internal/domain/models"
	"marketing_site/internal/lib/logger/sl"
	"marketing_site/internal/services"
	"marketing_site/internal/transport/http/dto"
	"marketing_site/internal/transport/http/dto/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ListArticles godoc
// @Summary List published articles
// @Description Newest first. Content rows are filtered by language when given.
// @Tags articles
// @Produce json
// @Param lang query string false "Content language" Enums(en, he)
// @Success 200 {object} response.Response{data=[]models.Article}
// @Router /api/articles [get]
func (r *Routers) ListArticles(c echo.Context) error {
	return r.listArticles(c, false)
}

// ListAllArticles godoc
// @Summary List every article including drafts
// @Tags articles
// @Produce json
// @Success 200 {object} response.Response{data=[]models.Article}
// @Security ApiKeyAuth
// @Router /api/admin/articles [get]
func (r *Routers) ListAllArticles(c echo.Context) error {
	return r.listArticles(c, true)
}

func (r *Routers) listArticles(c echo.Context, admin bool) error {
	const op = "http.routers.listArticles"

	articles, err := r.ArticleService.ListArticles(
		c.Request().Context(),
		language(c.QueryParam("lang")),
		admin,
	)
	if err != nil {
		r.log.Error("failed to list articles", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(articles))
}

// GetArticle godoc
// @Summary Get an article by id
// @Tags articles
// @Produce json
// @Param id path string true "Article UUID" format(uuid)
// @Param lang query string false "Content language" Enums(en, he)
// @Success 200 {object} response.Response{data=models.Article}
// @Failure 404 {object} response.ErrorResponse
// @Router /api/articles/{id} [get]
func (r *Routers) GetArticle(c echo.Context) error {
	const op = "http.routers.GetArticle"

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "invalid article id"))
	}

	article, err := r.ArticleService.GetArticle(c.Request().Context(), id, language(c.QueryParam("lang")))
	if err != nil {
		if errors.Is(err, services.ErrArticleNotFound) {
			return c.JSON(http.StatusNotFound, response.ErrNotFound)
		}
		r.log.Error("failed to get article", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(article))
}

// GetArticleBySlug godoc
// @Summary Get an article by slug
// @Tags articles
// @Produce json
// @Param slug path string true "Article slug"
// @Param lang query string false "Content language" Enums(en, he)
// @Success 200 {object} response.Response{data=models.Article}
// @Failure 404 {object} response.ErrorResponse
// @Router /api/articles/slug/{slug} [get]
func (r *Routers) GetArticleBySlug(c echo.Context) error {
	const op = "http.routers.GetArticleBySlug"

	article, err := r.ArticleService.GetArticleBySlug(
		c.Request().Context(),
		c.Param("slug"),
		language(c.QueryParam("lang")),
	)
	if err != nil {
		if errors.Is(err, services.ErrArticleNotFound) {
			return c.JSON(http.StatusNotFound, response.ErrNotFound)
		}
		r.log.Error("failed to get article by slug", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(article))
}

// CreateArticle godoc
// @Summary Create an article
// @Tags articles
// @Accept json
// @Produce json
// @Param request body dto.CreateArticleRequest true "Article"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "Slug already taken"
// @Security ApiKeyAuth
// @Router /api/admin/articles [post]
func (r *Routers) CreateArticle(c echo.Context) error {
	const op = "http.routers.CreateArticle"

	log := r.log.With(slog.String("op", op))

	var req dto.CreateArticleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("invalid article payload", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	id, err := r.ArticleService.CreateArticle(c.Request().Context(), req.ToModel())
	if err != nil {
		if errors.Is(err, services.ErrSlugTaken) {
			return c.JSON(http.StatusConflict, response.ErrSlugTaken)
		}
		log.Error("failed to create article", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(map[string]uuid.UUID{"id": id}))
}

// UpdateArticle godoc
// @Summary Update article fields
// @Tags articles
// @Accept json
// @Produce json
// @Param id path string true "Article UUID" format(uuid)
// @Param request body dto.UpdateArticleRequest true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "Slug already taken"
// @Security ApiKeyAuth
// @Router /api/admin/articles/{id} [put]
func (r *Routers) UpdateArticle(c echo.Context) error {
	const op = "http.routers.UpdateArticle"

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "invalid article id"))
	}

	var req dto.UpdateArticleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := r.ArticleService.UpdateArticle(c.Request().Context(), id, req.Updates()); err != nil {
		if errors.Is(err, services.ErrSlugTaken) {
			return c.JSON(http.StatusConflict, response.ErrSlugTaken)
		}
		if errors.Is(err, services.ErrArticleNotFound) {
			return c.JSON(http.StatusNotFound, response.ErrNotFound)
		}
		r.log.Error("failed to update article", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, response.Response{Status: "success"})
}

// UpsertArticleContent godoc
// @Summary Write one language's content for an article
// @Tags articles
// @Accept json
// @Produce json
// @Param id path string true "Article UUID" format(uuid)
// @Param request body dto.ArticleContentInput true "Content"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/admin/articles/{id}/content [put]
func (r *Routers) UpsertArticleContent(c echo.Context) error {
	const op = "http.routers.UpsertArticleContent"

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "invalid article id"))
	}

	var req dto.ArticleContentInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	err = r.ArticleService.UpsertArticleContent(c.Request().Context(), models.ArticleContent{
		ArticleID: id,
		Language:  req.Language,
		Title:     req.Title,
		Excerpt:   req.Excerpt,
		Content:   req.Content,
		ImageURL:  req.ImageURL,
		PDFURL:    req.PDFURL,
	})
	if err != nil {
		if errors.Is(err, services.ErrArticleNotFound) {
			return c.JSON(http.StatusNotFound, response.ErrNotFound)
		}
		r.log.Error("failed to upsert article content", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, response.Response{Status: "success"})
}

// DeleteArticle godoc
// @Summary Delete an article
// @Tags articles
// @Produce json
// @Param id path string true "Article UUID" format(uuid)
// @Success 200 {object} response.Response
// @Failure 404 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/admin/articles/{id} [delete]
func (r *Routers) DeleteArticle(c echo.Context) error {
	const op = "http.routers.DeleteArticle"

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "invalid article id"))
	}

	if err := r.ArticleService.DeleteArticle(c.Request().Context(), id); err != nil {
		if errors.Is(err, services.ErrArticleNotFound) {
			return c.JSON(http.StatusNotFound, response.ErrNotFound)
		}
		r.log.Error("failed to delete article", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, response.Response{Status: "success"})
}
