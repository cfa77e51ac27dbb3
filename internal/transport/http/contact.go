package http

import (
	"errors"
	"log/slog"
	"net/http"

	"marketing_site/internal/email"
	"marketing_site/internal/lib/logger/sl"
	"marketing_site/internal/metrics"
	"marketing_site/internal/services"
	"marketing_site/internal/transport/http/dto"
	"marketing_site/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

// GetContact godoc
// @Summary Get contact info for a language
// @Description Each language has its own row. 404 when the requested language has none.
// @Tags contact
// @Produce json
// @Param lang query string false "Language" Enums(en, he)
// @Success 200 {object} response.Response{data=models.ContactInfo}
// @Failure 404 {object} response.ErrorResponse
// @Router /api/contact [get]
func (r *Routers) GetContact(c echo.Context) error {
	const op = "http.routers.GetContact"

	info, err := r.ContactService.GetContact(c.Request().Context(), language(c.QueryParam("lang")))
	if err != nil {
		if errors.Is(err, services.ErrContactNotFound) {
			return c.JSON(http.StatusNotFound, response.ErrNotFound)
		}
		r.log.Error("failed to get contact info", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(info))
}

// UpdateContact godoc
// @Summary Upsert contact info for a language
// @Tags contact
// @Accept json
// @Produce json
// @Param request body dto.UpdateContactRequest true "Contact info"
// @Success 200 {object} response.Response{data=models.ContactInfo}
// @Failure 400 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/admin/contact [put]
func (r *Routers) UpdateContact(c echo.Context) error {
	const op = "http.routers.UpdateContact"

	log := r.log.With(slog.String("op", op))

	var req dto.UpdateContactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("invalid contact payload", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	info, err := r.ContactService.UpdateContact(c.Request().Context(), req.ToModel())
	if err != nil {
		log.Error("failed to update contact info", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(info))
}

// SendContactMessage godoc
// @Summary Submit the public contact form
// @Tags contact
// @Accept json
// @Produce json
// @Param request body dto.ContactMessageRequest true "Message"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Failure 429 {object} response.ErrorResponse
// @Router /api/contact/message [post]
func (r *Routers) SendContactMessage(c echo.Context) error {
	const op = "http.routers.SendContactMessage"

	log := r.log.With(slog.String("op", op))

	var req dto.ContactMessageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("invalid contact message", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", err.Error()))
	}

	err := r.ContactService.SendMessage(c.Request().Context(), email.ContactMessageData{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		if errors.Is(err, services.ErrTooManyMessages) {
			metrics.ContactMessagesTotal.WithLabelValues("throttled").Inc()
			return c.JSON(http.StatusTooManyRequests, response.ErrTooManyRequests)
		}
		metrics.ContactMessagesTotal.WithLabelValues("error").Inc()
		log.Error("failed to send contact message", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	metrics.ContactMessagesTotal.WithLabelValues("ok").Inc()

	return c.JSON(http.StatusOK, response.Response{Status: "success", Message: "message sent"})
}
