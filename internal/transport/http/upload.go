package http

import (
	"errors"
	"log/slog"
	"net/http"

	"marketing_site/internal/lib/logger/sl"
	"marketing_site/internal/metrics"
	"marketing_site/internal/storage"
	"marketing_site/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

// uploadFields are the multipart field names the upload endpoint accepts.
// The field name is carried into the stored filename.
var uploadFields = []string{"image", "pdf", "file"}

// Upload godoc
// @Summary Upload an image or PDF
// @Description Accepts a multipart form with an image, pdf or file field. Returns the public URL of the stored file.
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Param image formData file false "Image file (jpeg, png, gif)"
// @Param pdf formData file false "PDF file"
// @Success 201 {object} response.Response{data=models.Media}
// @Failure 400 {object} response.ErrorResponse
// @Failure 413 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/admin/upload [post]
func (r *Routers) Upload(c echo.Context) error {
	const op = "http.routers.Upload"

	log := r.log.With(slog.String("op", op))

	var field string
	for _, name := range uploadFields {
		if _, err := c.FormFile(name); err == nil {
			field = name
			break
		}
	}
	if field == "" {
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_request", "no file in request"))
	}

	file, err := c.FormFile(field)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	media, err := r.MediaService.Upload(c.Request().Context(), field, file)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidFileType):
			metrics.UploadsTotal.WithLabelValues("rejected").Inc()
			return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("invalid_file_type", "only jpeg, png, gif and pdf files are accepted"))
		case errors.Is(err, storage.ErrFileTooLarge):
			metrics.UploadsTotal.WithLabelValues("rejected").Inc()
			return c.JSON(http.StatusRequestEntityTooLarge, response.ErrorResponseWithDetails("file_too_large", "file exceeds the upload size limit"))
		default:
			metrics.UploadsTotal.WithLabelValues("error").Inc()
			log.Error("upload failed", sl.Err(err))
			return c.JSON(http.StatusInternalServerError, response.ErrInternal)
		}
	}

	metrics.UploadsTotal.WithLabelValues("ok").Inc()
	log.Info("file uploaded", slog.String("path", media.Path))

	return c.JSON(http.StatusCreated, response.SuccessResponse(media))
}
