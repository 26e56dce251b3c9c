package handler

import (
	"github.com/labstack/echo/v4"

	"mediahub/internal/domain/dto"
	"mediahub/internal/presentation"
)

func fail(c echo.Context, status int, reason string) error {
	c.Response().Header().Set(presentation.ReasonTag, reason)

	return c.JSON(status, dto.ErrorResponse{Message: reason})
}

// failHead answers HEAD requests, which carry no body.
func failHead(c echo.Context, status int, reason string) error {
	c.Response().Header().Set(presentation.ReasonTag, reason)

	return c.NoContent(status)
}
