package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mediahub/internal/application/usecase/abstraction"
	"mediahub/internal/domain/dto"
	"mediahub/pkg/logger"
)

type ListHandler struct {
	lister abstraction.Lister
}

func NewListHandler(lister abstraction.Lister) *ListHandler {
	return &ListHandler{
		lister: lister,
	}
}

// HandleList handles GET /media requests.
func (h *ListHandler) HandleList(c echo.Context) error {
	media, err := h.lister.ListPublic(c.Request().Context())
	if err != nil {
		logger.Error("failed to list media", "err", err)

		return fail(c, http.StatusInternalServerError, "failed to list media")
	}

	descriptors := make([]dto.MediaDescriptor, 0, len(media))
	for i := range media {
		descriptors = append(descriptors, dto.NewMediaDescriptor(&media[i]))
	}

	return c.JSON(http.StatusOK, descriptors)
}
