package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gabriel-vasile/mimetype"
	"github.com/labstack/echo/v4"

	"mediahub/internal/application/usecase/abstraction"
	"mediahub/internal/domain/dto"
	"mediahub/internal/domain/entity"
	"mediahub/internal/presentation"
	"mediahub/pkg/logger"
)

type UploadHandler struct {
	uploader abstraction.Uploader
}

func NewUploadHandler(uploader abstraction.Uploader) *UploadHandler {
	return &UploadHandler{
		uploader: uploader,
	}
}

// HandleUpload handles POST /media with a multipart "file" field.
func (h *UploadHandler) HandleUpload(c echo.Context) error {
	header, err := c.FormFile(presentation.FileField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return fail(c, http.StatusBadRequest, "file is required")
		}

		logger.Warn("failed to parse multipart form", "err", err)

		return fail(c, http.StatusBadRequest, "invalid multipart form")
	}

	file, err := header.Open()
	if err != nil {
		logger.Error("failed to open uploaded file", "err", err)

		return fail(c, http.StatusInternalServerError, "failed to read uploaded file")
	}
	defer file.Close()

	mimeType := header.Header.Get(echo.HeaderContentType)
	if mimeType == "" {
		detected, err := mimetype.DetectReader(file)
		if err != nil {
			logger.Error("failed to detect content type", "err", err)

			return fail(c, http.StatusInternalServerError, "failed to read uploaded file")
		}
		mimeType = detected.String()

		if _, err := file.Seek(0, io.SeekStart); err != nil {
			logger.Error("failed to rewind uploaded file", "err", err)

			return fail(c, http.StatusInternalServerError, "failed to read uploaded file")
		}
	}

	media, err := h.uploader.Upload(c.Request().Context(), entity.UploadInput{
		Filename: header.Filename,
		Body:     file,
		Size:     header.Size,
		MimeType: mimeType,
	})
	if err != nil {
		logger.Error("upload failed", "filename", header.Filename, "err", err)

		return fail(c, http.StatusInternalServerError, "failed to upload file, please try again later")
	}

	return c.JSON(http.StatusCreated, dto.NewMediaDescriptor(media))
}
