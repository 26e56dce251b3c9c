package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mediahub/internal/application/usecase/abstraction"
	"mediahub/pkg/logger"
)

type DeleteHandler struct {
	deleter abstraction.Deleter
}

func NewDeleteHandler(deleter abstraction.Deleter) *DeleteHandler {
	return &DeleteHandler{
		deleter: deleter,
	}
}

// HandleDelete handles DELETE /media/:id requests.
func (h *DeleteHandler) HandleDelete(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return fail(c, http.StatusBadRequest, "id must be a valid uuid")
	}

	deleted, err := h.deleter.Delete(c.Request().Context(), id)
	if err != nil {
		logger.Error("failed to delete media", "id", id, "err", err)

		return fail(c, http.StatusInternalServerError, "failed to delete media")
	}

	if !deleted {
		return fail(c, http.StatusNotFound, "media not found")
	}

	return c.NoContent(http.StatusNoContent)
}
