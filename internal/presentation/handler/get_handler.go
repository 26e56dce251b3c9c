package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"mediahub/internal/application/usecase/abstraction"
	"mediahub/internal/domain/model"
	"mediahub/internal/domain/repository"
	"mediahub/internal/presentation"
	"mediahub/pkg/logger"
)

const cacheControl = "private, max-age=31536000"

type GetHandler struct {
	getter abstraction.Getter
}

func NewGetHandler(getter abstraction.Getter) *GetHandler {
	return &GetHandler{
		getter: getter,
	}
}

// HandleGet handles GET /media/:id requests by streaming the stored bytes.
func (h *GetHandler) HandleGet(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return fail(c, http.StatusBadRequest, "id must be a valid uuid")
	}

	ctx := c.Request().Context()

	media, err := h.getter.FindByID(ctx, id)
	if errors.Is(err, repository.ErrMediaNotFound) {
		return fail(c, http.StatusNotFound, "media not found")
	}
	if err != nil {
		logger.Error("failed to find media", "id", id, "err", err)

		return fail(c, http.StatusInternalServerError, "failed to retrieve media")
	}

	stream, err := h.getter.FileStream(ctx, media.ObjectKey)
	if errors.Is(err, repository.ErrObjectNotFound) {
		logger.Warn("media record has no blob", "id", id, "key", media.ObjectKey)

		return fail(c, http.StatusNotFound, "media not found")
	}
	if err != nil {
		logger.Error("failed to open media stream", "id", id, "err", err)

		return fail(c, http.StatusInternalServerError, "failed to retrieve media")
	}
	defer stream.Close()

	setMediaHeaders(c, media, media.Size)
	c.Response().WriteHeader(http.StatusOK)

	if _, err := io.Copy(c.Response(), stream); err != nil {
		// headers are already sent, the client sees a truncated body
		logger.Warn("media stream interrupted", "id", id, "err", err)
	}

	return nil
}

// parseID accepts only the canonical 36 character form; uuid.Parse would also
// take the urn, braced and undashed forms.
func parseID(c echo.Context) (string, bool) {
	raw := c.Param(presentation.IDParam)
	if len(raw) != 36 {
		return "", false
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return "", false
	}

	return id.String(), true
}

func setMediaHeaders(c echo.Context, media *model.Media, size int64) {
	h := c.Response().Header()
	h.Set(echo.HeaderContentType, media.MimeType)
	h.Set(echo.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", media.Filename))
	h.Set("Cache-Control", cacheControl)
	h.Set(echo.HeaderContentLength, strconv.FormatInt(size, 10))
}
