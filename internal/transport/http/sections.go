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

// GetSections godoc
// @Summary List published page sections
// @Description Returns published sections ordered by order index. Filter by type and language.
// @Tags sections
// @Produce json
// @Param type query string false "Section type" Enums(hero, about, services, header)
// @Param lang query string false "Content language" Enums(en, he)
// @Success 200 {object} response.Response{data=[]models.Section}
// @Router /api/sections [get]
func (r *Routers) GetSections(c echo.Context) error {
	const op = "http.routers.GetSections"

	sections, err := r.SectionService.GetSections(
		c.Request().Context(),
		c.QueryParam("type"),
		language(c.QueryParam("lang")),
		false,
	)
	if err != nil {
		r.log.Error("failed to list sections", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(sections))
}

// ListAllSections godoc
// @Summary List every section including drafts
// @Description Admin listing: unpublished sections and all language rows are included.
// @Tags sections
// @Produce json
// @Param type query string false "Section type" Enums(hero, about, services, header)
// @Success 200 {object} response.Response{data=[]models.Section}
// @Security ApiKeyAuth
// @Router /api/admin/sections [get]
func (r *Routers) ListAllSections(c echo.Context) error {
	const op = "http.routers.ListAllSections"

	sections, err := r.SectionService.GetSections(
		c.Request().Context(),
		c.QueryParam("type"),
		"",
		true,
	)
	if err != nil {
		r.log.Error("failed to list sections", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(sections))
}

// GetSectionByType godoc
// @Summary Get the first section of a type
// @Description Returns the section with all content rows when the requested language is missing, so clients can fall back.
// @Tags sections
// @Produce json
// @Param type path string true "Section type" Enums(hero, about, services, header)
// @Param lang query string false "Content language" Enums(en, he)
// @Success 200 {object} response.Response{data=models.Section}
// @Failure 404 {object} response.ErrorResponse
// @Router /api/sections/type/{type} [get]
func (r *Routers) GetSectionByType(c echo.Context) error {
	const op = "http.routers.GetSectionByType"

	section, err := r.SectionService.GetSectionByType(
		c.Request().Context(),
		c.Param("type"),
		language(c.QueryParam("lang")),
	)
	if err != nil {
		if errors.Is(err, services.ErrSectionNotFound) {
			return c.JSON(http.StatusNotFound, response.ErrNotFound)
		}
		r.log.Error("failed to get section", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(section))
}

// GetSection godoc
// @Summary Get a section with all language rows
// @Tags sections
// @Produce json
// @Param id path string true "Section UUID" format(uuid)
// @Success 200 {object} response.Response{data=models.Section}
// @Failure 404 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/admin/sections/{id} [get]
func (r *Routers) GetSection(c echo.Context) error {
	const op = "http.routers.GetSection"

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "invalid section id"))
	}

	section, err := r.SectionService.GetSection(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrSectionNotFound) {
			return c.JSON(http.StatusNotFound, response.ErrNotFound)
		}
		r.log.Error("failed to get section", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(section))
}

// CreateSection godoc
// @Summary Create a section
// @Tags sections
// @Accept json
// @Produce json
// @Param request body dto.CreateSectionRequest true "Section"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/admin/sections [post]
func (r *Routers) CreateSection(c echo.Context) error {
	const op = "http.routers.CreateSection"

	log := r.log.With(slog.String("op", op))

	var req dto.CreateSectionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("invalid section payload", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	id, err := r.SectionService.CreateSection(c.Request().Context(), req.ToModel())
	if err != nil {
		log.Error("failed to create section", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(map[string]uuid.UUID{"id": id}))
}

// UpdateSection godoc
// @Summary Update section fields
// @Tags sections
// @Accept json
// @Produce json
// @Param id path string true "Section UUID" format(uuid)
// @Param request body dto.UpdateSectionRequest true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/admin/sections/{id} [put]
func (r *Routers) UpdateSection(c echo.Context) error {
	const op = "http.routers.UpdateSection"

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "invalid section id"))
	}

	var req dto.UpdateSectionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	if err := r.SectionService.UpdateSection(c.Request().Context(), id, req.Updates()); err != nil {
		if errors.Is(err, services.ErrSectionNotFound) {
			return c.JSON(http.StatusNotFound, response.ErrNotFound)
		}
		r.log.Error("failed to update section", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, response.Response{Status: "success"})
}

// UpsertSectionContent godoc
// @Summary Write one language's content for a section
// @Description Creates or replaces the content row for the given language.
// @Tags sections
// @Accept json
// @Produce json
// @Param id path string true "Section UUID" format(uuid)
// @Param request body dto.SectionContentInput true "Content"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/admin/sections/{id}/content [put]
func (r *Routers) UpsertSectionContent(c echo.Context) error {
	const op = "http.routers.UpsertSectionContent"

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "invalid section id"))
	}

	var req dto.SectionContentInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	err = r.SectionService.UpsertSectionContent(c.Request().Context(), models.SectionContent{
		SectionID:      id,
		Language:       req.Language,
		Title:          req.Title,
		Subtitle:       req.Subtitle,
		BottomSubtitle: req.BottomSubtitle,
		Content:        req.Content,
		ImageURL:       req.ImageURL,
	})
	if err != nil {
		if errors.Is(err, services.ErrSectionNotFound) {
			return c.JSON(http.StatusNotFound, response.ErrNotFound)
		}
		r.log.Error("failed to upsert section content", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, response.Response{Status: "success"})
}

// DeleteSection godoc
// @Summary Delete a section and all its content
// @Tags sections
// @Produce json
// @Param id path string true "Section UUID" format(uuid)
// @Success 200 {object} response.Response
// @Failure 404 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/admin/sections/{id} [delete]
func (r *Routers) DeleteSection(c echo.Context) error {
	const op = "http.routers.DeleteSection"

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "invalid section id"))
	}

	if err := r.SectionService.DeleteSection(c.Request().Context(), id); err != nil {
		if errors.Is(err, services.ErrSectionNotFound) {
			return c.JSON(http.StatusNotFound, response.ErrNotFound)
		}
		r.log.Error("failed to delete section", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, response.Response{Status: "success"})
}
