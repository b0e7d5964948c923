package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/driver-registry/internal/api/dto"
	"github.com/spec-kit/driver-registry/internal/observability"
	"github.com/spec-kit/driver-registry/internal/service"
	apperrors "github.com/spec-kit/driver-registry/pkg/util"
)

// DriverHandler exposes the roster lookup endpoint.
type DriverHandler struct {
	drivers *service.DriverService
}

// NewDriverHandler constructs handler.
func NewDriverHandler(drivers *service.DriverService) *DriverHandler {
	return &DriverHandler{drivers: drivers}
}

// Lookup handles GET /driver. Token verification already happened in the
// auth middleware; only lookup parameters are read here.
func (h *DriverHandler) Lookup(c *fiber.Ctx) error {
	headerRow := c.QueryInt("header_row", 0)
	if headerRow < 0 {
		return apperrors.NewValidationError("header_row must be a positive integer", nil)
	}

	record, err := h.drivers.Lookup(c.UserContext(), service.LookupRequest{
		RequestID:    observability.RequestID(c),
		Identifier:   c.Query("doc"),
		SheetName:    c.Query("sheet_name"),
		HeaderRow:    headerRow,
		ForceRefresh: c.QueryBool("refresh", false),
	})
	if err != nil {
		return err
	}

	return c.JSON(dto.DriverResponse{OK: true, Driver: record})
}
