package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"mediahub/internal/application/usecase/abstraction"
	"mediahub/internal/domain/entity"
	"mediahub/internal/domain/repository"
	"mediahub/pkg/logger"
)

type HeadHandler struct {
	getter abstraction.Getter
}

func NewHeadHandler(getter abstraction.Getter) *HeadHandler {
	return &HeadHandler{
		getter: getter,
	}
}

// HandleHead handles HEAD /media/:id requests. A blob that cannot be looked
// up is reported as 502, a blob that is confirmed missing as 404.
func (h *HeadHandler) HandleHead(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return failHead(c, http.StatusBadRequest, "id must be a valid uuid")
	}

	media, stat, err := h.getter.Stat(c.Request().Context(), id)
	if errors.Is(err, repository.ErrMediaNotFound) {
		return failHead(c, http.StatusNotFound, "media not found")
	}
	if err != nil {
		logger.Error("failed to find media", "id", id, "err", err)

		return failHead(c, http.StatusInternalServerError, "failed to retrieve media")
	}

	switch stat.Status {
	case entity.StatFound:
		setMediaHeaders(c, media, stat.Info.Size)

		return c.NoContent(http.StatusOK)
	case entity.StatNotFound:
		return failHead(c, http.StatusNotFound, "media not found")
	default:
		logger.Error("blob lookup failed", "id", id, "key", media.ObjectKey, "err", stat.Err)

		return failHead(c, http.StatusBadGateway, "object store lookup failed")
	}
}
